package render

import (
	"strings"
	"testing"
)

func TestAssembleDegradedToPlainText(t *testing.T) {
	sections := []Section{{Name: "General", Lines: []string{"X: Y"}}}
	got := Assemble(sections, Templates{})
	want := "General\nX: Y\n"
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestAssembleIdempotent(t *testing.T) {
	tpl := Templates{
		Header:    Template{"HEADER BANNER"},
		Footer:    Template{"FOOTER BANNER"},
		Separator: sepTemplate(),
	}
	sections := []Section{
		{Name: "Header", Lines: []string{"Title (2020)\nSource: BLURAY | Resolution: 1080p"}},
		{Name: "General", Lines: []string{"Filename: movie.mkv", "Container: Matroska"}},
		{Name: "Summary", Lines: []string{"A man walks into a bar and nothing is ever the same again."}},
	}
	first := Assemble(sections, tpl)
	second := Assemble(sections, tpl)
	if first != second {
		t.Errorf("Assemble() is not deterministic:\n%s\n---\n%s", first, second)
	}
}

func TestAssembleHeaderSection(t *testing.T) {
	tpl := Templates{Separator: sepTemplate()}
	sections := []Section{
		{Name: "Header", Lines: []string{"Title (2020)\nSource: BLURAY | Resolution: 1080p"}},
	}
	got := strings.Split(strings.TrimSuffix(Assemble(sections, tpl), "\n"), "\n")
	if len(got) != 2 {
		t.Fatalf("Assemble() produced %d lines, want 2:\n%s", len(got), strings.Join(got, "\n"))
	}
	motifs := []Motif{{Left: "((-", Right: "-))"}, {Left: "-=<", Right: ">=-"}}
	for i, line := range got {
		if runeLen(line) != 60 {
			t.Errorf("line %d length = %d, want 60", i, runeLen(line))
		}
		want := motifs[i%2]
		if !strings.HasPrefix(line, want.Left) || !strings.HasSuffix(line, want.Right) {
			t.Errorf("line %d = %q, want motif %v", i, line, want)
		}
	}
	if !strings.Contains(got[0], "Title (2020)") {
		t.Errorf("first line = %q, want title", got[0])
	}
	if !strings.Contains(got[1], "Source: BLURAY | Resolution: 1080p") {
		t.Errorf("second line = %q, want source summary", got[1])
	}
}

func TestAssembleSeparatorFallback(t *testing.T) {
	tpl := Templates{Separator: Template{"====", "|  |"}}
	sections := []Section{{Name: "Video", Lines: []string{"Format: AV1"}}}
	got := Assemble(sections, tpl)
	if !strings.HasPrefix(got, "Video\n") {
		t.Errorf("Assemble() = %q, want bare section name fallback", got)
	}
}

func TestAssembleFooterBlankLine(t *testing.T) {
	tpl := Templates{
		Footer:    Template{"FOOTER"},
		Separator: sepTemplate(),
	}
	sections := []Section{{Name: "General", Lines: []string{"X: Y"}}}
	got := Assemble(sections, tpl)
	if !strings.HasSuffix(got, "\nFOOTER\n") {
		t.Fatalf("Assemble() = %q, want footer as final line", got)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) < 2 || lines[len(lines)-2] != "" {
		t.Errorf("Assemble() = %q, want one blank line before footer", got)
	}
}

func TestAssembleTrailingNewline(t *testing.T) {
	got := Assemble([]Section{{Name: "General", Lines: []string{"X: Y"}}}, DefaultTemplates())
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("Assemble() missing trailing newline")
	}
	if strings.HasSuffix(got, "\n\n") {
		t.Errorf("Assemble() has more than one trailing newline")
	}
}

func TestDefaultTemplates(t *testing.T) {
	tpl := DefaultTemplates()
	if len(tpl.Header) == 0 || len(tpl.Footer) == 0 {
		t.Fatalf("DefaultTemplates() missing banners")
	}
	if len(tpl.Separator) < 4 {
		t.Fatalf("DefaultTemplates() separator has %d lines, want at least 4", len(tpl.Separator))
	}
	if tpl.Width() != 70 {
		t.Errorf("Width() = %d, want 70", tpl.Width())
	}
	if motifs := ExtractMotifs(tpl.Separator[3:]); len(motifs) == 0 {
		t.Errorf("embedded separator yields no motifs")
	}
}
