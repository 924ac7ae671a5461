// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"nfomaker/internal/config"
	"nfomaker/internal/media"
	"nfomaker/internal/tmdb"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.TMDB.APIKey = "test"
	cfg.OMDb.APIKey = "test"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithTMDBKey sets the TMDB API key on the test config.
func WithTMDBKey(key string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.TMDB.APIKey = key
	}
}

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	const chunkSize = 32 * 1024
	buf := make([]byte, chunkSize)
	for i := range buf {
		buf[i] = 0x42
	}

	remaining := size
	for remaining > 0 {
		toWrite := int64(chunkSize)
		if remaining < toWrite {
			toWrite = remaining
		}
		if _, err := f.Write(buf[:toWrite]); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		remaining -= toWrite
	}
}

// SampleMovie returns a resolved TMDB movie fixture.
func SampleMovie() *tmdb.Movie {
	return &tmdb.Movie{
		ID:            603,
		Title:         "The Matrix",
		OriginalTitle: "The Matrix",
		ReleaseDate:   "1999-03-31",
		Runtime:       136,
		Genres:        []tmdb.Genre{{ID: 28, Name: "Action"}},
		ProductionCountries: []tmdb.Country{
			{ISO: "US", Name: "United States of America"},
		},
		Overview: "A computer hacker learns from mysterious rebels about the true nature of his reality.",
		IMDbID:   "tt0133093",
	}
}

// SampleTech returns a single-video, single-audio technical metadata fixture.
func SampleTech() *media.TechInfo {
	defaultTrack := true
	return &media.TechInfo{
		General: media.GeneralInfo{
			Filename:       "The.Matrix.1999.1080p.BluRay.x265.mkv",
			Extension:      "mkv",
			SizeBytes:      2 << 30,
			DurationSec:    8160,
			OverallBitrate: 2200000,
			Container:      "Matroska",
		},
		Videos: []media.VideoTrack{{
			Codec:     "HEVC",
			Profile:   "Main 10",
			Width:     1920,
			Height:    1080,
			FrameRate: 23.976,
			BitDepth:  10,
			Chroma:    "4:2:0",
		}},
		Audios: []media.AudioTrack{{
			Codec:    "E-AC-3",
			Channels: 6,
			Language: "EN",
			Default:  &defaultTrack,
		}},
		Tool: media.ToolMediaInfo,
	}
}
