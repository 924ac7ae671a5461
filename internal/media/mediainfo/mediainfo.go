package mediainfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Track type labels as reported by mediainfo.
const (
	TrackGeneral = "General"
	TrackVideo   = "Video"
	TrackAudio   = "Audio"
	TrackText    = "Text"
)

// Report is the decoded mediainfo JSON document.
type Report struct {
	Media Media `json:"media"`
}

// Media holds the track list.
type Media struct {
	Tracks []Track `json:"track"`
}

// Track is a single mediainfo track with loosely typed values.
type Track map[string]any

// Binary is the mediainfo executable name.
const Binary = "mediainfo"

// Available reports whether the mediainfo binary is on PATH.
func Available() bool {
	_, err := exec.LookPath(Binary)
	return err == nil
}

// Inspect executes mediainfo against the provided path and decodes the JSON
// response.
func Inspect(ctx context.Context, binary string, path string) (Report, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = Binary
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Report{}, errors.New("mediainfo inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "--Output=JSON", path)
	output, err := cmd.Output()
	if err != nil {
		return Report{}, fmt.Errorf("mediainfo inspect: %w", err)
	}
	return Parse(output)
}

// Parse decodes a raw mediainfo JSON payload.
func Parse(payload []byte) (Report, error) {
	var report Report
	if err := json.Unmarshal(payload, &report); err != nil {
		return Report{}, fmt.Errorf("mediainfo parse: %w", err)
	}
	return report, nil
}

// Type returns the track's "@type" label.
func (t Track) Type() string {
	return t.Value("@type")
}

// Value returns the first non-empty value among the given keys, stringified.
func (t Track) Value(keys ...string) string {
	for _, key := range keys {
		raw, ok := t[key]
		if !ok || raw == nil {
			continue
		}
		var value string
		switch v := raw.(type) {
		case string:
			value = v
		case float64:
			value = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			if v {
				value = "Yes"
			} else {
				value = "No"
			}
		default:
			value = fmt.Sprint(v)
		}
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// Bool interprets Yes/No style values. The second result reports whether
// the value was present and recognizable.
func (t Track) Bool(keys ...string) (bool, bool) {
	switch strings.ToLower(t.Value(keys...)) {
	case "yes", "true", "1":
		return true, true
	case "no", "false", "0":
		return false, true
	}
	return false, false
}
