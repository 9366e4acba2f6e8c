package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"

	"github.com/filearchitect/desktop/backend/internal/providers"
	"github.com/filearchitect/desktop/backend/internal/shared/errs"
	"github.com/filearchitect/desktop/backend/internal/shared/paths"
	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

// DirectoryOps handles directory listings
type DirectoryOps struct {
	*FilesystemOps
}

// GetTools returns directory tool definitions
func (d *DirectoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.read_directory_structure",
			Name:        "List Directory",
			Description: "List immediate children: directories first, then by name",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "filesystem.read_directory_contents",
			Name:        "List Directory Contents",
			Description: "List immediate children with indent and existence flags",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "filesystem.read_directory_tree",
			Name:        "Directory Tree",
			Description: "List a directory recursively in pre-order with depth as indent",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
				{Name: "maxDepth", Type: "number", Description: "Max depth (0=unlimited)", Required: false},
			},
			Returns: "array",
		},
	}
}

// List lists immediate children as DirectoryEntry rows
func (d *DirectoryOps) List(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	path, err := providers.String(params, "path")
	if err != nil {
		return providers.FailureErr(err)
	}

	entries, err := d.ListEntries(path)
	if err != nil {
		return providers.FailureErr(err)
	}
	return providers.Success(entries)
}

// Contents lists immediate children as FileInfo rows
func (d *DirectoryOps) Contents(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	path, err := providers.String(params, "path")
	if err != nil {
		return providers.FailureErr(err)
	}

	files, err := d.ListFiles(path)
	if err != nil {
		return providers.FailureErr(err)
	}
	return providers.Success(files)
}

// Tree lists a directory recursively
func (d *DirectoryOps) Tree(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	path, err := providers.String(params, "path")
	if err != nil {
		return providers.FailureErr(err)
	}
	maxDepth, err := providers.Int(params, "maxDepth", 0)
	if err != nil {
		return providers.FailureErr(err)
	}

	rows, err := d.ReadTree(path, maxDepth)
	if err != nil {
		return providers.FailureErr(err)
	}
	return providers.Success(rows)
}

// ListEntries returns the visible immediate children of path
func (d *DirectoryOps) ListEntries(path string) ([]types.DirectoryEntry, error) {
	children, err := readVisible(paths.ExpandPath(path))
	if err != nil {
		return nil, err
	}

	entries := make([]types.DirectoryEntry, len(children))
	for i, c := range children {
		entries[i] = types.DirectoryEntry{Name: c.name, IsDirectory: c.isDir}
	}
	return entries, nil
}

// ListFiles returns the visible immediate children of path as FileInfo rows
// with zero indent
func (d *DirectoryOps) ListFiles(path string) ([]types.FileInfo, error) {
	children, err := readVisible(paths.ExpandPath(path))
	if err != nil {
		return nil, err
	}

	files := make([]types.FileInfo, len(children))
	for i, c := range children {
		files[i] = types.FileInfo{Name: c.name, Exists: true, IsDirectory: c.isDir}
	}
	return files, nil
}

// ReadTree walks path and returns every visible descendant in pre-order.
// Indent is the depth below path, starting at 0. Siblings follow the listing
// order. Hidden directories are not descended into and symlinks are not
// followed. maxDepth <= 0 means unlimited.
func (d *DirectoryOps) ReadTree(path string, maxDepth int) ([]types.FileInfo, error) {
	root := filepath.Clean(paths.ExpandPath(path))
	if err := requireDir("read_tree", root); err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		children = make(map[string][]child)
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, de fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			d.log().Debug("skipping unreadable entry", zap.String("path", p), zap.Error(err))
			return nil
		}
		if p == root {
			return nil
		}

		name := de.Name()
		isDir := de.IsDir()
		if paths.IsHidden(name) {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return nil
		}
		depth := strings.Count(rel, string(filepath.Separator))

		mu.Lock()
		parent := filepath.Dir(p)
		children[parent] = append(children[parent], child{name: name, isDir: isDir})
		mu.Unlock()

		if isDir && maxDepth > 0 && depth+1 >= maxDepth {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, errs.FromOS("read_tree", root, err)
	}

	rows := []types.FileInfo{}
	var emit func(dir string, depth int)
	emit = func(dir string, depth int) {
		list := children[dir]
		sortChildren(list)
		for _, c := range list {
			rows = append(rows, types.FileInfo{Name: c.name, Indent: depth, Exists: true, IsDirectory: c.isDir})
			if c.isDir {
				emit(filepath.Join(dir, c.name), depth+1)
			}
		}
	}
	emit(root, 0)

	return rows, nil
}

type child struct {
	name  string
	isDir bool
}

// readVisible reads dir, drops hidden names and sorts the rest
func readVisible(dir string) ([]child, error) {
	if err := requireDir("read_dir", dir); err != nil {
		return nil, err
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, errs.FromOS("read_dir", dir, err)
	}

	out := make([]child, 0, len(dirents))
	for _, de := range dirents {
		if paths.IsHidden(de.Name()) {
			continue
		}
		out = append(out, child{name: de.Name(), isDir: de.IsDir()})
	}
	sortChildren(out)
	return out, nil
}

// requireDir fails with NotFound or NotADirectory before any read is attempted
func requireDir(op, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errs.FromOS(op, dir, err)
	}
	if !info.IsDir() {
		return errs.New(errs.KindNotADirectory, op, dir, nil)
	}
	return nil
}

// sortChildren orders directories first, then names by byte value
func sortChildren(list []child) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].isDir != list[j].isDir {
			return list[i].isDir
		}
		return list[i].name < list[j].name
	})
}
