// Package tmdb provides a small TMDB API client for movie lookups.
//
// The client covers title search, full movie details, and external IDs.
// Resolve layers the selection logic on top: a known TMDB ID wins, otherwise
// the search results are ranked by popularity with a boost for exact year
// matches, or handed to a caller-supplied chooser for interactive sessions.
// Movie detail payloads can be cached through the Cache interface; cache
// failures degrade to uncached operation.
package tmdb
