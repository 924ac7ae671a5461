// Package nfo assembles the labeled text sections of a release document
// from resolved movie metadata and extracted technical metadata. The
// sections carry plain "Key: Value" lines; layout (borders, dot leaders,
// wrapping) happens later in the render engine.
package nfo
