// Package media holds the domain types shared across probing and
// transcoding: timestamps, codec identifiers, and container/stream metadata.
//
// Optional numeric fields use pointers because ffprobe omits them freely;
// a nil pointer means the tool did not report the value.
package media
