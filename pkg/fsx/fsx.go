// Package fsx abstracts key addressed blob storage. Paths are slash separated
// keys; backends decide how they map onto buckets, keys or rows.
package fsx

import (
	"context"
	"errors"
	"strings"
)

// ErrNotExist is returned (possibly wrapped) when a path has no content
var ErrNotExist = errors.New("fsx: file does not exist")

// FileReader is the read side of a FileSystem
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	Exists(ctx context.Context, path string) (bool, error)
}

// FileWriter is the write side of a FileSystem. Documents are overwritten
// whole and never removed.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

type FileSystem interface {
	FileReader
	FileWriter
}

// IsNotExist reports whether err means the path was absent
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// JoinPath joins non-empty elements with "/" and strips duplicate slashes
func JoinPath(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		e = strings.Trim(e, "/")
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, "/")
}
