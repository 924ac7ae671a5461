// Package language provides unified language code normalization.
//
// Audio and subtitle tracks carry language tags in whatever form the
// container muxer chose (ISO 639-1, ISO 639-2 including legacy alternates,
// or full words). All conversions to the short display codes used in the
// document and in release names are consolidated here.
package language
