// Package fileutil provides file hashing and guarded output writing.
package fileutil

import (
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/gofrs/flock"
)

// Supported hash algorithm names.
const (
	HashSHA1   = "sha1"
	HashSHA256 = "sha256"
)

// HashFile streams the file through the named hash algorithm and returns the
// lowercase hex digest.
func HashFile(path, algo string) (string, error) {
	var hasher hash.Hash
	switch strings.ToLower(strings.TrimSpace(algo)) {
	case HashSHA1:
		hasher = sha1.New()
	case HashSHA256:
		hasher = sha256.New()
	default:
		return "", fmt.Errorf("unsupported hash algorithm %q", algo)
	}

	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer in.Close()

	if _, err := io.Copy(hasher, in); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// WriteFileLocked writes data to path under an advisory file lock so two
// concurrent runs against the same target cannot interleave.
func WriteFileLocked(path string, data []byte, mode os.FileMode) error {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("output %s is locked by another process", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
