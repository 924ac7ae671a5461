package naming

import (
	"testing"

	"nfomaker/internal/media"
)

func sampleTech() *media.TechInfo {
	return &media.TechInfo{
		General: media.GeneralInfo{Filename: "movie.mkv"},
		Videos: []media.VideoTrack{
			{Codec: "HEVC", Width: 1920, Height: 1080},
		},
		Audios: []media.AudioTrack{
			{Codec: "E-AC-3", Language: "FR"},
			{Codec: "DTS", Language: "EN"},
		},
	}
}

func TestReleaseName(t *testing.T) {
	got := ReleaseName("/films/movie.mkv", "The Matrix", 1999, sampleTech(), "BLURAY", "")
	want := "The.Matrix.1999.MULTi.1080p.BLURAY.H265-TSC.mkv"
	if got != want {
		t.Errorf("ReleaseName = %q, want %q", got, want)
	}
}

func TestReleaseNameSingleLanguage(t *testing.T) {
	tech := sampleTech()
	tech.Audios = tech.Audios[:1]
	got := ReleaseName("/films/movie.mkv", "Amelie", 2001, tech, "webrip", "CREW")
	want := "Amelie.2001.FR.1080p.WEBRIP.H265-CREW.mkv"
	if got != want {
		t.Errorf("ReleaseName = %q, want %q", got, want)
	}
}

func TestReleaseNamePlaceholders(t *testing.T) {
	got := ReleaseName("/films/movie.mkv", "", 0, nil, "", "")
	want := "movie.YEAR.LANG.RESOLUTION.SOURCE.VIDEO-TSC.mkv"
	if got != want {
		t.Errorf("ReleaseName = %q, want %q", got, want)
	}
}

func TestCodecTag(t *testing.T) {
	tests := []struct {
		codec string
		want  string
	}{
		{"HEVC", "H265"},
		{"h264", "H264"},
		{"AVC", "H264"},
		{"AV1", "AV1"},
		{"VP9", "VP9"},
		{"", "VIDEO"},
	}
	for _, tt := range tests {
		if got := codecTag(tt.codec); got != tt.want {
			t.Errorf("codecTag(%q) = %q, want %q", tt.codec, got, tt.want)
		}
	}
}
