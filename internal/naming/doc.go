// Package naming guesses movie metadata from release-style filenames and
// builds conventional release names back from resolved metadata.
package naming
