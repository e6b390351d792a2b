// Package config loads the TOML configuration file controlling binary
// locations, logging, and transcode/thumbnail defaults. Missing files fall
// back to defaults; an existing file must parse and validate.
package config
