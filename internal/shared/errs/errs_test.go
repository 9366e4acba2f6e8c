package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindIO, "IOError"},
		{KindNotFound, "NotFound"},
		{KindNotADirectory, "NotADirectory"},
		{KindPermissionDenied, "PermissionDenied"},
		{KindArchiveOpen, "ArchiveOpenError"},
		{KindArchiveParse, "ArchiveParseError"},
		{KindArchiveEntry, "ArchiveEntryError"},
		{KindInvalidArgument, "InvalidArgument"},
		{Kind(99), "Kind(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestFromOSClassifiesMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	_, err := os.Stat(missing)
	require.Error(t, err)

	wrapped := FromOS("stat", missing, err)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.True(t, errors.Is(wrapped, fs.ErrNotExist))
	assert.False(t, errors.Is(wrapped, ErrPermissionDenied))
	assert.Contains(t, wrapped.Error(), missing)
}

func TestFromOSKeepsExistingError(t *testing.T) {
	orig := New(KindNotADirectory, "list", "/x", nil)
	assert.Same(t, orig, FromOS("other", "/y", orig))
	assert.Nil(t, FromOS("op", "/p", nil))
}

func TestEntryError(t *testing.T) {
	err := Entry(3, "a/b.txt", fmt.Errorf("disk full"))

	assert.Equal(t, KindArchiveEntry, KindOf(err))
	assert.Equal(t, 3, err.Index)
	assert.Contains(t, err.Error(), "entry 3")
	assert.Contains(t, err.Error(), "disk full")

	var target *Error
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.Equal(t, 3, target.Index)
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindIO, KindOf(errors.New("boom")))
	assert.Equal(t, KindPermissionDenied, KindOf(fs.ErrPermission))
}
