package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sepTemplate() Template {
	return Template{
		"+" + strings.Repeat("=", 58) + "+",
		"|" + strings.Repeat(" ", 58) + "|",
		"+" + strings.Repeat("=", 58) + "+",
		"((-" + strings.Repeat(" ", 54) + "-))",
		"-=<" + strings.Repeat(" ", 54) + ">=-",
	}
}

func TestBuildSeparator(t *testing.T) {
	tpl := sepTemplate()
	got := BuildSeparator("General", tpl)
	if len(got) != 3 {
		t.Fatalf("BuildSeparator() returned %d lines, want 3", len(got))
	}
	for i, line := range got {
		if runeLen(line) != 60 {
			t.Errorf("line %d length = %d, want 60", i, runeLen(line))
		}
	}
	if got[0] != tpl[0] || got[2] != tpl[2] {
		t.Errorf("BuildSeparator() altered the top or bottom rule")
	}
	middle := got[1]
	if middle[0] != '|' || middle[len(middle)-1] != '|' {
		t.Errorf("BuildSeparator() middle = %q, want bracket characters preserved", middle)
	}
	if !strings.Contains(middle, "General") {
		t.Errorf("BuildSeparator() middle = %q, want title present", middle)
	}
}

func TestBuildSeparatorTooFewLines(t *testing.T) {
	if got := BuildSeparator("X", Template{"===", "| |"}); got != nil {
		t.Errorf("BuildSeparator() = %v, want nil for short template", got)
	}
	if got := BuildSeparator("X", nil); got != nil {
		t.Errorf("BuildSeparator() = %v, want nil for empty template", got)
	}
}

func TestBuildSeparatorNarrowMiddle(t *testing.T) {
	tpl := Template{"==", "||", "=="}
	got := BuildSeparator("Title", tpl)
	want := []string{"==", "||", "=="}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildSeparator() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSeparatorTruncatesLongTitle(t *testing.T) {
	tpl := Template{"=====", "|   |", "====="}
	got := BuildSeparator("Subtitles", tpl)
	if len(got) != 3 {
		t.Fatalf("BuildSeparator() returned %d lines, want 3", len(got))
	}
	if got[1] != "|Sub|" {
		t.Errorf("BuildSeparator() middle = %q, want %q", got[1], "|Sub|")
	}
}
