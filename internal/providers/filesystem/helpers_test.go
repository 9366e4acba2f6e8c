package filesystem

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fixture is one archive entry; names ending in "/" are directories
type fixture struct {
	name string
	body string
}

var sampleTree = []fixture{
	{name: "project/"},
	{name: "project/src/"},
	{name: "project/src/main.go", body: "package main\n"},
	{name: "project/README.md", body: "# readme"},
	{name: "project/docs/guide.txt", body: "nested without a directory marker"},
}

func newTestOps(t *testing.T) *FilesystemOps {
	t.Helper()
	return NewOps(zap.NewNop(), nil)
}

func writeZip(t *testing.T, path string, entries []fixture) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		ew, err := w.Create(e.name)
		require.NoError(t, err)
		if !strings.HasSuffix(e.name, "/") {
			_, err = io.WriteString(ew, e.body)
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())
}

func writeTar(t *testing.T, path, compression string, entries []fixture) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	var out io.Writer = f
	var closer io.Closer
	switch compression {
	case "gzip":
		gz := gzip.NewWriter(f)
		out, closer = gz, gz
	case "zstd":
		zw, err := zstd.NewWriter(f)
		require.NoError(t, err)
		out, closer = zw, zw
	}

	tw := tar.NewWriter(out)
	for _, e := range entries {
		hdr := &tar.Header{Name: e.name, Mode: 0o644, Typeflag: tar.TypeReg, Size: int64(len(e.body))}
		if strings.HasSuffix(e.name, "/") {
			hdr.Typeflag = tar.TypeDir
			hdr.Mode = 0o755
			hdr.Size = 0
		}
		require.NoError(t, tw.WriteHeader(hdr))
		if hdr.Typeflag == tar.TypeReg {
			_, err := io.WriteString(tw, e.body)
			require.NoError(t, err)
		}
	}
	require.NoError(t, tw.Close())
	if closer != nil {
		require.NoError(t, closer.Close())
	}
}

// snapshot maps every path under root to its content ("/" for directories)
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	out := map[string]string{}
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		rel, _ := filepath.Rel(root, p)
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			out[rel] = "/"
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		out[rel] = string(b)
		return nil
	})
	require.NoError(t, err)
	return out
}

func mkTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, body := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
}
