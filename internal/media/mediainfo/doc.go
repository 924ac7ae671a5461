// Package mediainfo wraps `mediainfo --Output=JSON` invocation and parsing.
//
// MediaInfo's JSON schema is loose: most values are strings, the same fact
// can appear under several keys depending on the build ("Duration",
// "Duration_String3", ...), and numbers occasionally arrive as JSON
// numbers. Track therefore stays a generic map with multi-key string
// accessors rather than a rigid struct.
package mediainfo
