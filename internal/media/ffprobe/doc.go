// Package ffprobe runs the external prober and converts its JSON report into
// the typed model in package media.
//
// ffprobe emits several numeric fields (bit rate, duration, size, sample
// rate) as JSON strings, so the raw report decodes those as optional strings
// first and converts best-effort afterward. A malformed top-level report is
// a hard error; any field-level problem inside a well-formed report degrades
// to an absent value instead.
package ffprobe
