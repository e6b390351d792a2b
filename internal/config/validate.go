package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks field values after normalization. It reports every problem
// at once so a bad file can be fixed in one pass.
func (c *Config) Validate() error {
	var problems []error

	if !validLogLevels[c.Logging.Level] {
		problems = append(problems, fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format))
	}
	if c.Transcode.VideoBitrate < 0 {
		problems = append(problems, errors.New("transcode.video_bitrate_kbps: must not be negative"))
	}
	if c.Transcode.AudioBitrate < 0 {
		problems = append(problems, errors.New("transcode.audio_bitrate_kbps: must not be negative"))
	}
	if c.Thumbnail.Width < 0 || c.Thumbnail.Height < 0 {
		problems = append(problems, errors.New("thumbnail: dimensions must not be negative"))
	}
	switch c.Thumbnail.Format {
	case "png", "jpeg", "jpg":
	default:
		problems = append(problems, fmt.Errorf("thumbnail.format: unsupported value %q", c.Thumbnail.Format))
	}
	if c.Thumbnail.TimeSeconds < 0 {
		problems = append(problems, errors.New("thumbnail.time_seconds: must not be negative"))
	}

	if len(problems) == 0 {
		return nil
	}
	messages := make([]string, 0, len(problems))
	for _, p := range problems {
		messages = append(messages, p.Error())
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
