package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of leading/trailing
// whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// DotSlug converts a title into the dotted form used in release names:
// ASCII letters and digits survive, every other character becomes a dot,
// and runs of dots collapse.
func DotSlug(value string) string {
	return slugWith(value, '.')
}

// DashSlug converts a title into a dash-separated ASCII slug.
func DashSlug(value string) string {
	return slugWith(value, '-')
}

func slugWith(value string, sep byte) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(value) {
		if r < 128 && (r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		} else {
			b.WriteByte(sep)
		}
	}
	slug := b.String()
	double := string([]byte{sep, sep})
	single := string(sep)
	for strings.Contains(slug, double) {
		slug = strings.ReplaceAll(slug, double, single)
	}
	return strings.Trim(slug, single)
}
