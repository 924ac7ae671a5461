package textutil

import (
	"fmt"
	"math"
)

// NotAvailable is the sentinel rendered for values that could not be
// determined.
const NotAvailable = "N/A"

// FormatSize renders a byte count as GiB with two decimals.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f GiB", float64(bytes)/(1<<30))
}

// FormatDuration renders seconds as HH:MM:SS.
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return NotAvailable
	}
	total := int64(math.Round(seconds))
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// FormatBitrate renders bits per second as kb/s.
func FormatBitrate(bitsPerSec int64) string {
	if bitsPerSec <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%d kb/s", int64(math.Round(float64(bitsPerSec)/1000)))
}

// QualityLabel derives a display quality (2160p, 1080p, ...) from frame
// dimensions. Height takes precedence; width catches anamorphic or cropped
// frames.
func QualityLabel(width, height int64) string {
	if width <= 0 && height <= 0 {
		return NotAvailable
	}
	switch {
	case height >= 2160:
		return "2160p"
	case height >= 1440:
		return "1440p"
	case height >= 1080:
		return "1080p"
	case width >= 3840:
		return "2160p"
	case width >= 2560:
		return "1440p"
	case width >= 1920:
		return "1080p"
	case height >= 720:
		return "720p"
	case width >= 1280:
		return "720p"
	case height >= 576:
		return "576p"
	}
	if height > 0 {
		return fmt.Sprintf("%dp", height)
	}
	return fmt.Sprintf("%dp", width)
}
