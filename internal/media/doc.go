// Package media extracts the technical metadata of a video file into the
// typed model consumed by the section builders.
//
// Extraction prefers mediainfo when the binary is installed and falls back
// to ffprobe; both tools' loosely formatted output is normalized into
// TechInfo with numeric sizes, durations, and bitrates. Only when both
// tools fail does extraction report an error.
package media
