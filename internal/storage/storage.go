// Package storage provides the file access the batch runner works
// through. Paths are always relative to a base directory; traversal
// outside it is rejected.
package storage

import "context"

// Store abstracts file IO for batch enhancement.
type Store interface {
	Load(ctx context.Context, path string) ([]byte, error)
	Save(ctx context.Context, path string, data []byte) error
	List(ctx context.Context, pattern string) ([]string, error)
	Exists(ctx context.Context, path string) bool
}
