package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/filearchitect/desktop/backend/internal/providers"
	"github.com/filearchitect/desktop/backend/internal/shared/errs"
	"github.com/filearchitect/desktop/backend/internal/shared/paths"
	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

// Deleter abstracts filesystem delete operations so tests can record them
type Deleter interface {
	Remove(path string) error
	RemoveAll(path string) error
}

// OSDeleter implements Deleter using the os package
type OSDeleter struct{}

func (OSDeleter) Remove(path string) error {
	return os.Remove(path)
}

func (OSDeleter) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// FakeDeleter records delete calls without touching the filesystem
type FakeDeleter struct {
	mu    sync.Mutex
	Calls []string
}

func (f *FakeDeleter) Remove(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "rm:"+path)
	return nil
}

func (f *FakeDeleter) RemoveAll(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "rmall:"+path)
	return nil
}

// RemoveOps handles file and directory removal
type RemoveOps struct {
	*FilesystemOps
}

// GetTools returns removal tool definitions
func (r *RemoveOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.remove_file",
			Name:        "Remove File",
			Description: "Delete exactly one file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "null",
		},
		{
			ID:          "filesystem.remove_path",
			Name:        "Remove Path",
			Description: "Delete a file or directory; a missing path is not an error",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
				{Name: "recursive", Type: "boolean", Description: "Remove directory contents too", Required: false},
			},
			Returns: "null",
		},
	}
}

// File deletes a single file
func (r *RemoveOps) File(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	path, err := providers.String(params, "path")
	if err != nil {
		return providers.FailureErr(err)
	}
	return providers.Done(r.RemoveFile(path))
}

// Path deletes a file or directory
func (r *RemoveOps) Path(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	path, err := providers.String(params, "path")
	if err != nil {
		return providers.FailureErr(err)
	}
	recursive, err := providers.Bool(params, "recursive", false)
	if err != nil {
		return providers.FailureErr(err)
	}
	return providers.Done(r.RemovePath(path, recursive))
}

// RemoveFile deletes exactly one file. A missing target is NotFound and a
// directory is an IOError.
func (r *RemoveOps) RemoveFile(path string) error {
	target := paths.ExpandPath(path)

	info, err := os.Lstat(target)
	if err != nil {
		return errs.FromOS("remove_file", target, err)
	}
	if info.IsDir() {
		return errs.Newf(errs.KindIO, "remove_file", target, "is a directory")
	}

	if err := r.Deleter.Remove(target); err != nil {
		return errs.FromOS("remove_file", target, err)
	}

	r.log().Info("removed file", zap.String("path", target))
	return nil
}

// RemovePath deletes path. A missing path succeeds. Directories are removed
// with their contents when recursive is set, otherwise only when empty.
// Files are removed regardless of recursive.
func (r *RemoveOps) RemovePath(path string, recursive bool) error {
	target := paths.ExpandPath(path)

	info, err := os.Lstat(target)
	if errors.Is(err, fs.ErrNotExist) {
		r.log().Debug("path already gone", zap.String("path", target))
		return nil
	}
	if err != nil {
		return errs.FromOS("remove_path", target, err)
	}

	switch {
	case recursive:
		err = r.Deleter.RemoveAll(target)
	default:
		// os.Remove handles both files and empty directories
		err = r.Deleter.Remove(target)
	}
	if err != nil {
		return errs.FromOS("remove_path", target, err)
	}

	r.log().Info("removed path",
		zap.String("path", target),
		zap.Bool("recursive", recursive),
		zap.Bool("directory", info.IsDir()),
	)
	return nil
}
