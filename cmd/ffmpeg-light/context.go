package main

import (
	"log/slog"
	"strings"
	"sync"

	"ffmpeglight/internal/config"
	"ffmpeglight/internal/deps"
	"ffmpeglight/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg)
}

// resolveBinaries honors configured binary paths and falls back to PATH
// discovery when the config leaves them unset.
func (c *commandContext) resolveBinaries() (deps.Binaries, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return deps.Binaries{}, err
	}
	if cfg.Tools.FFmpeg != "" && cfg.Tools.FFprobe != "" {
		return deps.LocateWith(cfg.Tools.FFmpeg, cfg.Tools.FFprobe)
	}
	return deps.Locate()
}
