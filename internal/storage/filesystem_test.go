package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, "drafts/chapter1.txt", []byte("Sarah walked.")))
	assert.True(t, fs.Exists(ctx, "drafts/chapter1.txt"))

	data, err := fs.Load(ctx, "drafts/chapter1.txt")
	require.NoError(t, err)
	assert.Equal(t, "Sarah walked.", string(data))

	matches, err := fs.List(ctx, "drafts/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("drafts", "chapter1.txt")}, matches)
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	tempDir := t.TempDir()

	outside := filepath.Join(filepath.Dir(tempDir), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0644))
	defer os.Remove(outside)

	fs := NewFileStore(tempDir)
	ctx := context.Background()

	tests := []struct {
		name string
		path string
		ok   bool
	}{
		{"normal path", "test.txt", true},
		{"subdirectory", "subdir/test.txt", true},
		{"parent traversal", "../outside.txt", false},
		{"nested traversal", "subdir/../../outside.txt", false},
		{"absolute path", "/etc/passwd", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fs.Save(ctx, tt.path, []byte("x"))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}

			_, err = fs.Load(ctx, tt.path)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	assert.False(t, fs.Exists(ctx, "../outside.txt"))

	_, err := fs.List(ctx, "../*.txt")
	assert.Error(t, err)
}

func TestFileStoreLoadMissing(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	_, err := fs.Load(context.Background(), "missing.txt")
	assert.Error(t, err)
}
