// Package filters models the ffmpeg filter fragments the transcode builder
// can chain. Each filter renders independently to one comma-chain-safe
// fragment; chains are joined with "," and passed as a single -vf or -af
// value.
package filters
