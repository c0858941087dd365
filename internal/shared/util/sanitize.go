package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName is returned for names that could leave their directory.
var ErrInvalidFileName = errors.New("invalid file name")

// CheckFileName trims name and rejects traversal patterns and separators.
func CheckFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	if s == "" || strings.Contains(s, "..") || strings.ContainsAny(s, `/\`) {
		return "", ErrInvalidFileName
	}
	return s, nil
}
