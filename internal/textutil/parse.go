package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	digitsRe   = regexp.MustCompile(`\d+`)
	byteSizeRe = regexp.MustCompile(`(?i)([0-9.]+)\s*([KMGTP]?i?B)`)
	hoursRe    = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutesRe  = regexp.MustCompile(`(?i)(\d+)\s*min`)
	secondsRe  = regexp.MustCompile(`(?i)(\d+)\s*s`)
)

// ParseInt extracts an integer from a raw value, tolerating embedded
// separators and unit suffixes ("192 000", "1 500 kb/s"). Returns false
// when no digits are present.
func ParseInt(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	digits := digitsRe.FindAllString(value, -1)
	if len(digits) == 0 {
		return 0, false
	}
	parsed, err := strconv.ParseInt(strings.Join(digits, ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// ParseFloat parses a decimal value, accepting a comma decimal separator.
func ParseFloat(value string) (float64, bool) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	if value == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// ParseRational parses "24000/1001" style rationals, falling back to a
// plain float parse.
func ParseRational(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if num, den, found := strings.Cut(value, "/"); found {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN == nil && errD == nil && d != 0 {
			return n / d, true
		}
		return 0, false
	}
	return ParseFloat(value)
}

// ParseBytes converts a textual size ("3.07 GiB", "734 MB", "123456") into
// bytes.
func ParseBytes(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
		return parsed, true
	}
	match := byteSizeRe.FindStringSubmatch(value)
	if match == nil {
		return ParseInt(value)
	}
	number, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	factor := float64(1)
	switch strings.ToLower(match[2]) {
	case "kb", "kib":
		factor = 1 << 10
	case "mb", "mib":
		factor = 1 << 20
	case "gb", "gib":
		factor = 1 << 30
	case "tb", "tib":
		factor = 1 << 40
	case "pb", "pib":
		factor = 1 << 50
	}
	return int64(number * factor), true
}

// ParseDuration converts a duration value into seconds. Bare numbers above
// 10000 are treated as milliseconds (mediainfo's raw Duration field);
// textual forms like "1 h 43 min", "43 min 12 s", "01:43:12", and "43:12"
// are decoded positionally.
func ParseDuration(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if number, err := strconv.ParseFloat(value, 64); err == nil {
		if number > 10000 {
			return number / 1000, true
		}
		return number, true
	}

	var hours, minutes, seconds int64
	matched := false
	if m := hoursRe.FindStringSubmatch(value); m != nil {
		hours, _ = strconv.ParseInt(m[1], 10, 64)
		matched = true
	}
	if m := minutesRe.FindStringSubmatch(value); m != nil {
		minutes, _ = strconv.ParseInt(m[1], 10, 64)
		matched = true
	}
	if m := secondsRe.FindStringSubmatch(stripMinutes(value)); m != nil {
		seconds, _ = strconv.ParseInt(m[1], 10, 64)
		matched = true
	}
	if matched {
		return float64(hours*3600 + minutes*60 + seconds), true
	}

	if strings.Contains(value, ":") {
		parts := strings.Split(value, ":")
		nums := make([]int64, 0, len(parts))
		for _, part := range parts {
			n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return 0, false
			}
			nums = append(nums, n)
		}
		switch len(nums) {
		case 3:
			return float64(nums[0]*3600 + nums[1]*60 + nums[2]), true
		case 2:
			return float64(nums[0]*60 + nums[1]), true
		}
	}
	return 0, false
}

// stripMinutes removes "N min" segments so the bare-seconds pattern cannot
// rebind the minute count.
func stripMinutes(value string) string {
	return minutesRe.ReplaceAllString(value, "")
}
