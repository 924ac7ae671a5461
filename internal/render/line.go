package render

import (
	"strings"
	"unicode/utf8"
)

// dotLeaderEdgePad is the literal space reserve on each end of a dot-leader
// line.
const dotLeaderEdgePad = 5

// FormatLine renders one logical line to exactly width characters. When
// useDots is set and the line carries a ':' separator, the key and value are
// joined by a run of dots; otherwise the text is centered. Output length is
// always exactly width: shorter input is padded, longer input truncated.
func FormatLine(line string, width int, useDots bool) string {
	if width < 0 {
		width = 0
	}
	if useDots && strings.Contains(line, ":") {
		key, value, _ := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if value == "" {
			return centerRunes(truncateRunes(key, width), width)
		}
		usable := width - 2*dotLeaderEdgePad
		key = truncateRunes(key, usable)
		value = truncateRunes(value, usable)
		dotWidth := usable - runeLen(key) - runeLen(value)
		if dotWidth < 2 {
			dotWidth = 2
		}
		edge := strings.Repeat(" ", dotLeaderEdgePad)
		combined := edge + key + strings.Repeat(".", dotWidth) + value + edge
		return padRightRunes(truncateRunes(combined, width), width)
	}
	return centerRunes(truncateRunes(line, width), width)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func padRightRunes(s string, n int) string {
	if pad := n - runeLen(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// centerRunes centers s within n columns. When the padding is odd the extra
// space goes on the right.
func centerRunes(s string, n int) string {
	pad := n - runeLen(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
