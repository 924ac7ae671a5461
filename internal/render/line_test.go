package render

import (
	"strings"
	"testing"
)

func TestFormatLineDotLeader(t *testing.T) {
	got := FormatLine("Key: Value", 40, true)
	if runeLen(got) != 40 {
		t.Fatalf("FormatLine() length = %d, want 40", runeLen(got))
	}
	if !strings.Contains(got, "Key") || !strings.Contains(got, "Value") {
		t.Fatalf("FormatLine() = %q, missing key or value", got)
	}
	// usable = 40 - 10; dots fill what the key and value leave over.
	wantDots := 30 - len("Key") - len("Value")
	if !strings.Contains(got, strings.Repeat(".", wantDots)) {
		t.Errorf("FormatLine() = %q, want %d-dot leader", got, wantDots)
	}
	if strings.Contains(got, strings.Repeat(".", wantDots+1)) {
		t.Errorf("FormatLine() = %q, dot leader longer than %d", got, wantDots)
	}
}

func TestFormatLineDotLeaderMinimumDots(t *testing.T) {
	got := FormatLine("A Rather Long Key Name: An Equally Long Value", 24, true)
	if runeLen(got) != 24 {
		t.Fatalf("FormatLine() length = %d, want 24", runeLen(got))
	}
	if !strings.Contains(got, "..") {
		t.Errorf("FormatLine() = %q, want at least two dots", got)
	}
}

func TestFormatLineEmptyValueCenters(t *testing.T) {
	got := FormatLine("Audio #1:", 20, true)
	if runeLen(got) != 20 {
		t.Fatalf("FormatLine() length = %d, want 20", runeLen(got))
	}
	if strings.Contains(got, ".") {
		t.Errorf("FormatLine() = %q, want centered fallback without dots", got)
	}
	if !strings.Contains(got, "Audio #1") {
		t.Errorf("FormatLine() = %q, want key preserved", got)
	}
}

func TestFormatLineCentering(t *testing.T) {
	got := FormatLine("TITLE", 21, false)
	if runeLen(got) != 21 {
		t.Fatalf("FormatLine() length = %d, want 21", runeLen(got))
	}
	left := len(got) - len(strings.TrimLeft(got, " "))
	right := len(got) - len(strings.TrimRight(got, " "))
	if left > right || right-left > 1 {
		t.Errorf("FormatLine() padding = (%d, %d), want symmetric with extra space on the right", left, right)
	}
	if idx := strings.Index(got, "TITLE"); idx != 8 {
		t.Errorf("FormatLine() title offset = %d, want 8", idx)
	}
}

func TestFormatLineWidthInvariant(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		width   int
		useDots bool
	}{
		{"short centered", "x", 30, false},
		{"long centered", strings.Repeat("x", 80), 30, false},
		{"short dotted", "K: V", 30, true},
		{"long dotted", "Key: " + strings.Repeat("v", 80), 30, true},
		{"empty", "", 30, false},
		{"colon without dots", "K: V", 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLine(tt.line, tt.width, tt.useDots)
			if runeLen(got) != tt.width {
				t.Errorf("FormatLine(%q) length = %d, want %d", tt.line, runeLen(got), tt.width)
			}
		})
	}
}

func TestCenterRunesExtraSpaceRight(t *testing.T) {
	got := centerRunes("ab", 5)
	if got != " ab  " {
		t.Errorf("centerRunes() = %q, want %q", got, " ab  ")
	}
}
