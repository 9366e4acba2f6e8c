package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filearchitect/desktop/backend/internal/shared/errs"
	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

func TestListEntriesOrderingAndHidden(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, map[string]string{
		"b.txt":        "b",
		"C.txt":        "C",
		"a.txt":        "a",
		"zeta/":        "",
		"Alpha/":       "",
		".git/":        "",
		".hidden.txt":  "h",
		"_under.txt":   "u",
		"10-second.md": "",
		"2-first.md":   "",
	})

	d := &DirectoryOps{FilesystemOps: newTestOps(t)}
	entries, err := d.ListEntries(root)
	require.NoError(t, err)

	// Byte order: digits, uppercase, underscore, lowercase
	assert.Equal(t, []types.DirectoryEntry{
		{Name: "Alpha", IsDirectory: true},
		{Name: "zeta", IsDirectory: true},
		{Name: "10-second.md"},
		{Name: "2-first.md"},
		{Name: "C.txt"},
		{Name: "_under.txt"},
		{Name: "a.txt"},
		{Name: "b.txt"},
	}, entries)
}

func TestListFilesMirrorsListEntries(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, map[string]string{"src/": "", "main.go": "", ".env": ""})

	d := &DirectoryOps{FilesystemOps: newTestOps(t)}
	files, err := d.ListFiles(root)
	require.NoError(t, err)

	assert.Equal(t, []types.FileInfo{
		{Name: "src", Indent: 0, Exists: true, IsDirectory: true},
		{Name: "main.go", Indent: 0, Exists: true, IsDirectory: false},
	}, files)
}

func TestListEmptyDirectory(t *testing.T) {
	d := &DirectoryOps{FilesystemOps: newTestOps(t)}
	entries, err := d.ListEntries(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListErrors(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, map[string]string{"file.txt": "x"})
	d := &DirectoryOps{FilesystemOps: newTestOps(t)}

	_, err := d.ListEntries(filepath.Join(root, "missing"))
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	_, err = d.ListFiles(filepath.Join(root, "file.txt"))
	assert.Equal(t, errs.KindNotADirectory, errs.KindOf(err))

	_, err = d.ReadTree(filepath.Join(root, "file.txt"), 0)
	assert.Equal(t, errs.KindNotADirectory, errs.KindOf(err))
}

func TestListExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
	mkTree(t, home, map[string]string{"Projects/demo/": ""})

	d := &DirectoryOps{FilesystemOps: newTestOps(t)}
	entries, err := d.ListEntries("~/Projects")
	require.NoError(t, err)
	assert.Equal(t, []types.DirectoryEntry{{Name: "demo", IsDirectory: true}}, entries)
}

func TestReadTree(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, map[string]string{
		"src/components/Button.jsx": "",
		"src/App.jsx":               "",
		"src/.cache/blob":           "",
		"public/index.html":         "",
		"package.json":              "",
		".git/HEAD":                 "",
	})

	d := &DirectoryOps{FilesystemOps: newTestOps(t)}

	t.Run("unlimited depth", func(t *testing.T) {
		rows, err := d.ReadTree(root, 0)
		require.NoError(t, err)

		assert.Equal(t, []types.FileInfo{
			{Name: "public", Indent: 0, Exists: true, IsDirectory: true},
			{Name: "index.html", Indent: 1, Exists: true},
			{Name: "src", Indent: 0, Exists: true, IsDirectory: true},
			{Name: "components", Indent: 1, Exists: true, IsDirectory: true},
			{Name: "Button.jsx", Indent: 2, Exists: true},
			{Name: "App.jsx", Indent: 1, Exists: true},
			{Name: "package.json", Indent: 0, Exists: true},
		}, rows)
	})

	t.Run("depth limited", func(t *testing.T) {
		rows, err := d.ReadTree(root, 1)
		require.NoError(t, err)

		assert.Equal(t, []types.FileInfo{
			{Name: "public", Indent: 0, Exists: true, IsDirectory: true},
			{Name: "src", Indent: 0, Exists: true, IsDirectory: true},
			{Name: "package.json", Indent: 0, Exists: true},
		}, rows)
	})
}

func TestReadTreeDoesNotFollowSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}
	root := t.TempDir()
	outside := t.TempDir()
	mkTree(t, outside, map[string]string{"secret.txt": "s"})
	mkTree(t, root, map[string]string{"real/": ""})
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link")))

	d := &DirectoryOps{FilesystemOps: newTestOps(t)}
	rows, err := d.ReadTree(root, 0)
	require.NoError(t, err)

	assert.Equal(t, []types.FileInfo{
		{Name: "real", Indent: 0, Exists: true, IsDirectory: true},
		{Name: "link", Indent: 0, Exists: true, IsDirectory: false},
	}, rows)
}

func TestDirectoryCommands(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, map[string]string{"a/b.txt": ""})
	d := &DirectoryOps{FilesystemOps: newTestOps(t)}
	ctx := context.Background()

	res, err := d.List(ctx, map[string]interface{}{"path": root})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []types.DirectoryEntry{{Name: "a", IsDirectory: true}}, res.Data)

	res, err = d.Tree(ctx, map[string]interface{}{"path": root, "maxDepth": 2.0})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Len(t, res.Data, 2)

	res, err = d.Contents(ctx, map[string]interface{}{"path": filepath.Join(root, "nope")})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "NotFound", res.Kind)

	res, err = d.Tree(ctx, map[string]interface{}{"path": root, "maxDepth": "deep"})
	require.NoError(t, err)
	assert.Equal(t, "InvalidArgument", res.Kind)
}
