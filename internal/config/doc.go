// Package config loads and validates the nfomaker configuration.
//
// Configuration is TOML. The resolver checks an explicit path first, then
// ~/.config/nfomaker/config.toml, then ./nfomaker.toml; a missing file yields
// the defaults. API keys fall back to the TMDB_API_KEY and OMDB_API_KEY
// environment variables during normalization.
package config
