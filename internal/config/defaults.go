package config

const (
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
	defaultPreset           = "medium"
	defaultThumbnailWidth   = 320
	defaultThumbnailHeight  = 180
	defaultThumbnailFormat  = "png"
	defaultThumbnailSeconds = 1.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Transcode: Transcode{
			Preset: defaultPreset,
		},
		Thumbnail: Thumbnail{
			Width:       defaultThumbnailWidth,
			Height:      defaultThumbnailHeight,
			Format:      defaultThumbnailFormat,
			TimeSeconds: defaultThumbnailSeconds,
		},
	}
}
