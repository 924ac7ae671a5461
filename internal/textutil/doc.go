// Package textutil provides value parsing, display formatting, and filename
// sanitization helpers shared by the metadata extractors and section
// builders.
//
// The parse functions accept the loosely formatted values emitted by
// mediainfo and ffprobe (textual sizes like "3.07 GiB", durations like
// "1 h 43 min" or "01:43:12", rational frame rates like "24000/1001") and
// normalize them into numeric types. The format functions render those
// numbers back into the fixed presentation used in the final document
// (GiB sizes, HH:MM:SS durations, kb/s bitrates, 1080p quality labels).
package textutil
