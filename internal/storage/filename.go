// Package storage writes uploaded files to their destination.
package storage

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrInvalidFilename is returned when a client supplied filename has no usable base name.
var ErrInvalidFilename = errors.New("invalid filename")

// CleanFilename reduces a client supplied filename to its base name so it
// cannot address anything outside the upload destination.
func CleanFilename(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	switch base {
	case "", ".", "..", "/":
		return "", ErrInvalidFilename
	}
	return base, nil
}
