package language

import "testing"

func TestShort(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"iso639-2", "fra", "FR"},
		{"legacy alternate", "fre", "FR"},
		{"iso639-1", "en", "EN"},
		{"full word", "english", "EN"},
		{"mixed case word", "French", "FR"},
		{"unknown passes through uppercased", "xx", "XX"},
		{"empty", "", ""},
		{"whitespace", "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Short(tt.code); got != tt.want {
				t.Errorf("Short(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestKnown(t *testing.T) {
	if !Known("jpn") {
		t.Errorf("Known(jpn) = false, want true")
	}
	if Known("tlh") {
		t.Errorf("Known(tlh) = true, want false")
	}
}
