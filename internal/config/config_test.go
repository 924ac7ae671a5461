package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nfomaker/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("OMDB_API_KEY", "")

	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("exists should be false for missing file")
	}
	if path == "" {
		t.Fatal("resolved path should not be empty")
	}
	if cfg.TMDB.BaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("tmdb base url = %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.Language != "fr-FR" {
		t.Errorf("tmdb language = %q", cfg.TMDB.Language)
	}
	if cfg.Naming.Group != "TSC" || cfg.Naming.HashAlgo != "sha1" {
		t.Errorf("naming defaults = %+v", cfg.Naming)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
}

func TestLoadParsesAndExpands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
banners_dir = "~/banners"

[tmdb]
api_key = "abc123"
language = "en-US"

[naming]
group = "CREW"
hash_algo = "SHA256"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.TMDB.APIKey != "abc123" || cfg.TMDB.Language != "en-US" {
		t.Errorf("tmdb = %+v", cfg.TMDB)
	}
	if cfg.Naming.Group != "CREW" || cfg.Naming.HashAlgo != "sha256" {
		t.Errorf("naming = %+v", cfg.Naming)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("home dir: %v", err)
	}
	if want := filepath.Join(home, "banners"); cfg.Paths.BannersDir != want {
		t.Errorf("banners_dir = %q, want %q", cfg.Paths.BannersDir, want)
	}
}

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")
	t.Setenv("OMDB_API_KEY", "omdb-env")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TMDB.APIKey != "from-env" {
		t.Errorf("tmdb api key = %q", cfg.TMDB.APIKey)
	}
	if cfg.OMDb.APIKey != "omdb-env" {
		t.Errorf("omdb api key = %q", cfg.OMDb.APIKey)
	}
}

func TestLoadRejectsBadHashAlgo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[naming]\nhash_algo = \"md5\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported hash algorithm")
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"verbose\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported log level")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[tmdb]") {
		t.Errorf("sample missing tmdb section:\n%s", data)
	}
	if err := config.CreateSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}
}
