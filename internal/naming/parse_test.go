package naming

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     ParsedName
	}{
		{
			name:     "dots with year and tags",
			filename: "The.Matrix.1999.1080p.BluRay.x264-GRP.mkv",
			want: ParsedName{
				Title: "The Matrix",
				Year:  1999,
				Raw:   "The.Matrix.1999.1080p.BluRay.x264-GRP.mkv",
			},
		},
		{
			name:     "language tokens collected",
			filename: "Amelie.2001.FRENCH.1080p.BluRay.x265.mkv",
			want: ParsedName{
				Title:     "Amelie",
				Year:      2001,
				Languages: []string{"FR"},
				Raw:       "Amelie.2001.FRENCH.1080p.BluRay.x265.mkv",
			},
		},
		{
			name:     "multi language",
			filename: "Dune.Part.Two.2024.MULTI.2160p.WEB-DL.AV1.mkv",
			want: ParsedName{
				Title:     "Dune Part Two",
				Year:      2024,
				Languages: []string{"MULTI"},
				Raw:       "Dune.Part.Two.2024.MULTI.2160p.WEB-DL.AV1.mkv",
			},
		},
		{
			name:     "bracketed group removed",
			filename: "Heat [1995] 720p.mkv",
			want: ParsedName{
				Title: "Heat",
				Raw:   "Heat [1995] 720p.mkv",
			},
		},
		{
			name:     "underscores and trailing group",
			filename: "Blade_Runner_1982_2160p_REMUX - SCENE.mkv",
			want: ParsedName{
				Title: "Blade Runner",
				Year:  1982,
				Raw:   "Blade_Runner_1982_2160p_REMUX - SCENE.mkv",
			},
		},
		{
			name:     "only tags falls back to stem",
			filename: "1080p.x264.mkv",
			want: ParsedName{
				Title: "1080p.x264",
				Raw:   "1080p.x264.mkv",
			},
		},
		{
			name:     "first year wins",
			filename: "2001.A.Space.Odyssey.1968.mkv",
			want: ParsedName{
				Title: "A Space Odyssey 1968",
				Year:  2001,
				Raw:   "2001.A.Space.Odyssey.1968.mkv",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.filename)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.filename, diff)
			}
		})
	}
}

func TestDetectSource(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"Movie.2020.1080p.BDRip.x264.mkv", "BDRIP"},
		{"Movie.2020.WEB-DL.mkv", "WEBDL"},
		{"Movie.2020.WEBRip.mkv", "WEBRIP"},
		{"Movie.2020.BluRay.REMUX.mkv", "BLURAY"},
		{"Movie.2020.x264.mkv", ""},
	}
	for _, tt := range tests {
		if got := DetectSource(tt.filename); got != tt.want {
			t.Errorf("DetectSource(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
