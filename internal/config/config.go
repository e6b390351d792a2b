package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools configures where the external binaries live. Empty values mean
// "search PATH at run time".
type Tools struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
}

// Logging configures log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Transcode holds defaults applied when the CLI flags leave a field unset.
type Transcode struct {
	Preset       string `toml:"preset"`
	VideoCodec   string `toml:"video_codec"`
	AudioCodec   string `toml:"audio_codec"`
	VideoBitrate int    `toml:"video_bitrate_kbps"`
	AudioBitrate int    `toml:"audio_bitrate_kbps"`
}

// Thumbnail holds defaults for thumbnail extraction.
type Thumbnail struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Format      string  `toml:"format"`
	TimeSeconds float64 `toml:"time_seconds"`
}

// Config is the root configuration document.
type Config struct {
	Tools     Tools     `toml:"tools"`
	Logging   Logging   `toml:"logging"`
	Transcode Transcode `toml:"transcode"`
	Thumbnail Thumbnail `toml:"thumbnail"`
}

// Sample returns the annotated sample configuration document.
func Sample() string {
	return sampleConfig
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/ffmpeg-light/config.toml")
}

// Load locates, parses, and validates a configuration file. When path is
// empty the default location is tried; a missing file yields defaults. The
// boolean reports whether a file was actually read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg); c.Tools.FFmpeg != "" {
		if c.Tools.FFmpeg, err = expandPath(c.Tools.FFmpeg); err != nil {
			return fmt.Errorf("tools.ffmpeg: %w", err)
		}
	}
	if c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe); c.Tools.FFprobe != "" {
		if c.Tools.FFprobe, err = expandPath(c.Tools.FFprobe); err != nil {
			return fmt.Errorf("tools.ffprobe: %w", err)
		}
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Thumbnail.Format = strings.ToLower(strings.TrimSpace(c.Thumbnail.Format))
	if c.Thumbnail.Format == "" {
		c.Thumbnail.Format = defaultThumbnailFormat
	}
	return nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
