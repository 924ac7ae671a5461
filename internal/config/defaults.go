package config

const (
	defaultCacheDir     = "~/.cache/nfomaker"
	defaultLogDir       = "~/.local/state/nfomaker/logs"
	defaultTMDBBaseURL  = "https://api.themoviedb.org/3"
	defaultTMDBLanguage = "fr-FR"
	defaultOMDbBaseURL  = "https://www.omdbapi.com/"
	defaultGroup        = "TSC"
	defaultHashAlgo     = "sha1"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
		},
		TMDB: TMDB{
			BaseURL:  defaultTMDBBaseURL,
			Language: defaultTMDBLanguage,
		},
		OMDb: OMDb{
			BaseURL: defaultOMDbBaseURL,
		},
		Naming: Naming{
			Group:    defaultGroup,
			HashAlgo: defaultHashAlgo,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
