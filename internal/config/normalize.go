package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTMDB()
	c.normalizeOMDb()
	c.normalizeNaming()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.BannersDir = strings.TrimSpace(c.Paths.BannersDir); c.Paths.BannersDir != "" {
		if c.Paths.BannersDir, err = expandPath(c.Paths.BannersDir); err != nil {
			return err
		}
	}
	if c.Paths.CacheDir = strings.TrimSpace(c.Paths.CacheDir); c.Paths.CacheDir != "" {
		if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
			return err
		}
	}
	if c.Paths.LogDir = strings.TrimSpace(c.Paths.LogDir); c.Paths.LogDir != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) normalizeTMDB() {
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	if c.TMDB.APIKey == "" {
		c.TMDB.APIKey = strings.TrimSpace(os.Getenv("TMDB_API_KEY"))
	}
	c.TMDB.BaseURL = strings.TrimSpace(c.TMDB.BaseURL)
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	if c.TMDB.Language == "" {
		c.TMDB.Language = defaultTMDBLanguage
	}
}

func (c *Config) normalizeOMDb() {
	c.OMDb.APIKey = strings.TrimSpace(c.OMDb.APIKey)
	if c.OMDb.APIKey == "" {
		c.OMDb.APIKey = strings.TrimSpace(os.Getenv("OMDB_API_KEY"))
	}
	c.OMDb.BaseURL = strings.TrimSpace(c.OMDb.BaseURL)
	if c.OMDb.BaseURL == "" {
		c.OMDb.BaseURL = defaultOMDbBaseURL
	}
}

func (c *Config) normalizeNaming() {
	c.Naming.Group = strings.TrimSpace(c.Naming.Group)
	if c.Naming.Group == "" {
		c.Naming.Group = defaultGroup
	}
	c.Naming.HashAlgo = strings.ToLower(strings.TrimSpace(c.Naming.HashAlgo))
	if c.Naming.HashAlgo == "" {
		c.Naming.HashAlgo = defaultHashAlgo
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
