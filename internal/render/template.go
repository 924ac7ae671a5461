package render

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed banners/header.txt
var defaultHeaderBanner string

//go:embed banners/footer.txt
var defaultFooterBanner string

//go:embed banners/separator.txt
var defaultSeparatorTemplate string

// Template is an ordered sequence of raw banner lines read verbatim from a
// template artifact. A nil template means the artifact is absent and layout
// degrades to unbordered output.
type Template []string

// Templates bundles the three optional layout artifacts. Header and Footer
// are emitted verbatim; Separator is structural: line 0 fixes the document
// width, lines 0-2 form the titled separator, and lines 3+ supply the
// border motifs.
type Templates struct {
	Header    Template
	Footer    Template
	Separator Template
}

// ParseTemplate splits raw artifact content into lines. No parsing beyond
// line splitting happens here.
func ParseTemplate(content string) Template {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// DefaultTemplates returns the banner set embedded in the binary.
func DefaultTemplates() Templates {
	return Templates{
		Header:    ParseTemplate(defaultHeaderBanner),
		Footer:    ParseTemplate(defaultFooterBanner),
		Separator: ParseTemplate(defaultSeparatorTemplate),
	}
}

// LoadTemplates reads header.txt, footer.txt, and separator.txt from dir.
// An empty dir selects the embedded defaults. Missing files yield nil
// templates so rendering degrades gracefully; any other read error is
// reported.
func LoadTemplates(dir string) (Templates, error) {
	if strings.TrimSpace(dir) == "" {
		return DefaultTemplates(), nil
	}

	var tpl Templates
	for _, artifact := range []struct {
		name   string
		target *Template
	}{
		{"header.txt", &tpl.Header},
		{"footer.txt", &tpl.Footer},
		{"separator.txt", &tpl.Separator},
	} {
		content, err := os.ReadFile(filepath.Join(dir, artifact.name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Templates{}, fmt.Errorf("read template %s: %w", artifact.name, err)
		}
		*artifact.target = ParseTemplate(string(content))
	}
	return tpl, nil
}

// Width reports the document width defined by the separator template, or 0
// when no separator is available.
func (t Templates) Width() int {
	if len(t.Separator) == 0 {
		return 0
	}
	return runeLen(t.Separator[0])
}
