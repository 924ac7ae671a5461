package nfo

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nfomaker/internal/media"
	"nfomaker/internal/render"
	"nfomaker/internal/testsupport"
	"nfomaker/internal/tmdb"
)

func sampleMovie() *tmdb.Movie {
	return &tmdb.Movie{
		ID:            603,
		Title:         "The Matrix",
		OriginalTitle: "The Matrix",
		ReleaseDate:   "1999-03-31",
		Runtime:       136,
		Genres:        []tmdb.Genre{{Name: "Action"}, {Name: "Science Fiction"}},
		ProductionCountries: []tmdb.Country{
			{ISO: "US", Name: "United States of America"},
		},
		Overview: "A computer hacker learns the truth.",
		IMDbID:   "tt0133093",
	}
}

func sampleTech() *media.TechInfo {
	yes := true
	no := false
	return &media.TechInfo{
		General: media.GeneralInfo{
			Filename:       "The.Matrix.1999.mkv",
			Extension:      "mkv",
			SizeBytes:      2 << 30,
			DurationSec:    8160,
			OverallBitrate: 2200000,
			Container:      "Matroska",
		},
		Videos: []media.VideoTrack{
			{Codec: "HEVC", Profile: "Main 10", Width: 1920, Height: 1080, FrameRate: 23.976, BitDepth: 10, Chroma: "4:2:0"},
		},
		Audios: []media.AudioTrack{
			{Codec: "E-AC-3", Channels: 6, Language: "EN", Default: &yes, Forced: &no},
		},
		Subtitles: []media.SubtitleTrack{
			{Format: "UTF-8", Language: "FR", Forced: &yes},
		},
	}
}

func TestBuildSectionsOrder(t *testing.T) {
	sections := BuildSections(sampleMovie(), sampleTech(), FileInfo{}, BuildOptions{})
	want := []string{"Header", "Movie", "Summary", "General", "Video", "Audio", "Subtitles", "File"}
	var got []string
	for _, section := range sections {
		got = append(got, section.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("section order mismatch (-want +got):\n%s", diff)
	}
}

func TestHeaderLines(t *testing.T) {
	sections := BuildSections(sampleMovie(), sampleTech(), FileInfo{}, BuildOptions{Source: "BLURAY"})
	header := sections[0]
	if len(header.Lines) != 2 {
		t.Fatalf("header lines = %d, want 2", len(header.Lines))
	}
	if header.Lines[0] != "The Matrix (1999)" {
		t.Errorf("title line = %q", header.Lines[0])
	}
	want := "Source: BLURAY  |  Resolution: 1080p  |  Video: H.265 (HEVC)  |  Audio: EN E-AC3 5.1"
	if header.Lines[1] != want {
		t.Errorf("detail line = %q, want %q", header.Lines[1], want)
	}
}

func TestMovieSection(t *testing.T) {
	sections := BuildSections(sampleMovie(), sampleTech(), FileInfo{}, BuildOptions{MatchNote: "603 The Matrix (1999)"})
	want := []string{
		"Title: The Matrix",
		"Original Title: The Matrix",
		"Year: 1999",
		"Runtime: 136 min",
		"Genres: Action, Science Fiction",
		"Countries: United States of America",
		"TMDB URL: https://www.themoviedb.org/movie/603",
		"IMDb URL: https://www.imdb.com/title/tt0133093/",
		"TMDB Match: 603 The Matrix (1999)",
	}
	if diff := cmp.Diff(want, sections[1].Lines); diff != "" {
		t.Errorf("movie lines mismatch (-want +got):\n%s", diff)
	}
}

func TestMovieSectionWithoutMovie(t *testing.T) {
	sections := BuildSections(nil, sampleTech(), FileInfo{}, BuildOptions{Title: "Some Film"})
	if diff := cmp.Diff([]string{"Title: Some Film"}, sections[1].Lines); diff != "" {
		t.Errorf("fallback movie lines mismatch (-want +got):\n%s", diff)
	}
	if sections[2].Lines[0] != "N/A" {
		t.Errorf("summary without movie = %q, want sentinel", sections[2].Lines[0])
	}
}

func TestAudioSectionNumbersTracks(t *testing.T) {
	tech := sampleTech()
	tech.Audios = append(tech.Audios, media.AudioTrack{Codec: "DTS", Channels: 8, Language: "FR"})
	sections := BuildSections(nil, tech, FileInfo{}, BuildOptions{})

	audio := sections[5]
	if audio.Lines[0] != "Audio #1" {
		t.Errorf("first line = %q", audio.Lines[0])
	}
	joined := strings.Join(audio.Lines, "\n")
	if !strings.Contains(joined, "Audio #2") {
		t.Errorf("missing second track header:\n%s", joined)
	}
	if !strings.Contains(joined, "Channels: 7.1") {
		t.Errorf("missing channel label:\n%s", joined)
	}
	if !strings.Contains(joined, "Default: Yes") || !strings.Contains(joined, "Forced: No") {
		t.Errorf("missing flag labels:\n%s", joined)
	}
}

func TestEmptySectionsGetSentinel(t *testing.T) {
	sections := BuildSections(nil, nil, FileInfo{}, BuildOptions{Title: "X"})
	for _, name := range []string{"Video", "Audio", "Subtitles"} {
		for _, section := range sections {
			if section.Name == name {
				if len(section.Lines) != 1 || section.Lines[0] != "N/A" {
					t.Errorf("%s lines = %#v, want [N/A]", name, section.Lines)
				}
			}
		}
	}
}

func TestFileSection(t *testing.T) {
	file := FileInfo{
		Path:        "/films/movie.mkv",
		SizeBytes:   int64(3.07 * float64(1<<30)),
		DurationSec: 6000,
		Hash:        "SHA1 da39a3ee5e6b4b0d3255bfef95601890afd80709",
	}
	sections := BuildSections(nil, nil, file, BuildOptions{Title: "X"})
	want := []string{
		"Size: 3.07 GiB",
		"Duration: 01:40:00",
		"Hash: SHA1 da39a3ee5e6b4b0d3255bfef95601890afd80709",
	}
	if diff := cmp.Diff(want, sections[7].Lines); diff != "" {
		t.Errorf("file lines mismatch (-want +got):\n%s", diff)
	}
}

func TestVideoSummaryCodecMapping(t *testing.T) {
	tests := []struct {
		codec string
		want  string
	}{
		{"AVC", "H.264 (AVC)"},
		{"hevc", "H.265 (HEVC)"},
		{"AV1", "AV1"},
		{"VP9", "VP9"},
	}
	for _, tt := range tests {
		got := videoSummary([]media.VideoTrack{{Codec: tt.codec}})
		if got != tt.want {
			t.Errorf("videoSummary(%q) = %q, want %q", tt.codec, got, tt.want)
		}
	}
}

func TestBuildSectionsRendersSharedFixtures(t *testing.T) {
	movie := testsupport.SampleMovie()
	tech := testsupport.SampleTech()
	file := FileInfo{
		Path:        "/films/The.Matrix.1999.mkv",
		SizeBytes:   tech.General.SizeBytes,
		DurationSec: tech.General.DurationSec,
	}

	sections := BuildSections(movie, tech, file, BuildOptions{Source: "BLURAY"})
	document := render.Assemble(sections, render.DefaultTemplates())

	for _, want := range []string{
		"The Matrix (1999)",
		"Source: BLURAY",
		"H.265 (HEVC)",
		"tt0133093",
	} {
		if !strings.Contains(document, want) {
			t.Errorf("document missing %q", want)
		}
	}
}
