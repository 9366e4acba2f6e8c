package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filearchitect/desktop/backend/internal/shared/errs"
)

type recorder struct {
	calls [][]string
	err   error
}

func (r *recorder) run(name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func TestOpenFolder(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}
	shell := NewNativeWithRunner(rec.run, nil)

	require.NoError(t, shell.OpenFolder(dir))

	name, args := openFolderCommand(dir)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, append([]string{name}, args...), rec.calls[0])
}

func TestOpenFolderRejectsFilesAndMissingPaths(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	rec := &recorder{}
	shell := NewNativeWithRunner(rec.run, nil)

	err := shell.OpenFolder(file)
	assert.Equal(t, errs.KindNotADirectory, errs.KindOf(err))

	err = shell.OpenFolder(filepath.Join(dir, "missing"))
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	assert.Empty(t, rec.calls)
}

func TestRevealFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	rec := &recorder{}
	shell := NewNativeWithRunner(rec.run, nil)
	require.NoError(t, shell.RevealFile(file))

	name, args := revealFileCommand(file)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, append([]string{name}, args...), rec.calls[0])
}

func TestRunnerFailureIsIOError(t *testing.T) {
	rec := &recorder{err: errors.New("not installed")}
	shell := NewNativeWithRunner(rec.run, nil)

	err := shell.OpenFolder(t.TempDir())
	assert.Equal(t, errs.KindIO, errs.KindOf(err))
	assert.Contains(t, err.Error(), "not installed")
}

func TestFixedDocumentsDir(t *testing.T) {
	shell := Fixed{Shell: NewNative(nil), Dir: "/tmp/docs/"}
	dir, err := shell.DocumentsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/tmp/docs"), dir)
}
