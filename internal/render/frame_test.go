package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrameSectionWidthInvariant(t *testing.T) {
	tpl := sepTemplate()
	lines := []string{"Title: Value", "Another: Thing", "Plain text"}
	got := FrameSection(lines, tpl, Flags{Pad: 1, UseDots: true, AddPadLines: true})
	if len(got) != 5 {
		t.Fatalf("FrameSection() returned %d lines, want 5", len(got))
	}
	for i, line := range got {
		if runeLen(line) != 60 {
			t.Errorf("line %d length = %d, want 60: %q", i, runeLen(line), line)
		}
	}
}

func TestFrameSectionMotifCycling(t *testing.T) {
	tpl := sepTemplate()
	lines := []string{"a", "b", "c", "d", "e"}
	got := FrameSection(lines, tpl, Flags{Pad: 1})
	if len(got) != 5 {
		t.Fatalf("FrameSection() returned %d lines, want 5", len(got))
	}
	motifs := []Motif{{Left: "((-", Right: "-))"}, {Left: "-=<", Right: ">=-"}}
	for i, line := range got {
		want := motifs[i%2]
		if !strings.HasPrefix(line, want.Left) || !strings.HasSuffix(line, want.Right) {
			t.Errorf("line %d = %q, want motif %v", i, line, want)
		}
	}
}

func TestFrameSectionDropsBlankLines(t *testing.T) {
	tpl := sepTemplate()
	got := FrameSection([]string{"", "  ", "x", "\t"}, tpl, Flags{Pad: 1})
	if len(got) != 1 {
		t.Fatalf("FrameSection() returned %d lines, want 1", len(got))
	}
}

func TestFrameSectionPadLines(t *testing.T) {
	tpl := sepTemplate()
	got := FrameSection([]string{"x"}, tpl, Flags{Pad: 1, AddPadLines: true})
	if len(got) != 3 {
		t.Fatalf("FrameSection() returned %d lines, want 3", len(got))
	}
	blank := "((- " + strings.Repeat(" ", 52) + " -))"
	if got[0] != blank {
		t.Errorf("first pad line = %q, want %q", got[0], blank)
	}
}

func TestFrameSectionDegradesWithoutTemplate(t *testing.T) {
	lines := []string{"X: Y", "Z"}

	tests := []struct {
		name      string
		separator Template
	}{
		{"nil template", nil},
		{"too few lines", Template{"===", "| |", "==="}},
		{"no usable motifs", Template{"========", "|      |", "========", "::", ".."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrameSection(lines, tt.separator, Flags{Pad: 1, UseDots: true})
			if diff := cmp.Diff(lines, got); diff != "" {
				t.Errorf("FrameSection() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFrameSectionWrapsSummaryProse(t *testing.T) {
	tpl := sepTemplate()
	prose := strings.Repeat("lorem ipsum dolor sit amet ", 6)
	got := FrameSection([]string{prose}, tpl, Flags{Wrap: true, Pad: 1})
	if len(got) < 2 {
		t.Fatalf("FrameSection() returned %d lines, want wrapped output", len(got))
	}
	for i, line := range got {
		if runeLen(line) != 60 {
			t.Errorf("line %d length = %d, want 60", i, runeLen(line))
		}
	}
}

func TestFrameSectionOversizedTokenOverflows(t *testing.T) {
	tpl := sepTemplate()
	token := strings.Repeat("x", 70)
	got := FrameSection([]string{token}, tpl, Flags{Wrap: true, Pad: 1})
	if len(got) != 1 {
		t.Fatalf("FrameSection() returned %d lines, want 1", len(got))
	}
	// Unbroken tokens are never split, so this one line exceeds the width.
	if runeLen(got[0]) <= 60 {
		t.Errorf("line length = %d, want overflow beyond 60", runeLen(got[0]))
	}
	if !strings.Contains(got[0], token) {
		t.Errorf("line = %q, want token kept intact", got[0])
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"splits on width", "hello world again", 11, []string{"hello world", "again"}},
		{"keeps hyphenated token", "a long-hyphenated-token here", 10, []string{"a", "long-hyphenated-token", "here"}},
		{"empty", "", 10, []string{""}},
		{"embedded newline", "one\ntwo three", 20, []string{"one", "two three"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("wrapText() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
