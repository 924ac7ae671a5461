// Package omdb provides a minimal OMDb API client used as a title-lookup
// fallback when TMDB resolution fails.
package omdb
