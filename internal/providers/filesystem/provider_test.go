package filesystem

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

func TestProviderDefinition(t *testing.T) {
	p := New(zap.NewNop(), 0, nil)
	def := p.Definition()

	assert.Equal(t, "filesystem", def.ID)
	assert.Equal(t, types.CategoryFilesystem, def.Category)

	ids := make(map[string]bool)
	for _, tool := range def.Tools {
		ids[tool.ID] = true
		assert.NotEmpty(t, tool.Name)
		assert.NotEmpty(t, tool.Description)
	}

	for _, id := range []string{
		"filesystem.expand_path",
		"filesystem.check_file_exists",
		"filesystem.read_directory_structure",
		"filesystem.read_directory_contents",
		"filesystem.read_directory_tree",
		"filesystem.remove_file",
		"filesystem.remove_path",
		"filesystem.extract_zip",
	} {
		assert.True(t, ids[id], id)
	}
}

func TestProviderExecute(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, map[string]string{"a.txt": ""})
	t.Setenv("HOME", root)

	p := New(zap.NewNop(), 0, nil)
	ctx := context.Background()

	res, err := p.Execute(ctx, "filesystem.expand_path", map[string]interface{}{"path": "~/a.txt"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a.txt"), res.Data)

	res, err = p.Execute(ctx, "filesystem.check_file_exists", map[string]interface{}{"path": "~/a.txt"})
	require.NoError(t, err)
	assert.Equal(t, true, res.Data)

	res, err = p.Execute(ctx, "filesystem.check_file_exists", map[string]interface{}{"path": "~/b.txt"})
	require.NoError(t, err)
	assert.Equal(t, false, res.Data)

	_, err = p.Execute(ctx, "filesystem.format_disk", nil)
	assert.Error(t, err)
}
