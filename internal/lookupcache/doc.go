// Package lookupcache persists TMDB movie detail payloads in a small SQLite
// database so repeated runs against the same title avoid API round trips.
package lookupcache
