package system

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filearchitect/desktop/backend/internal/platform/platformtest"
	"github.com/filearchitect/desktop/backend/internal/shared/errs"
)

func TestDefinition(t *testing.T) {
	def := NewProvider(new(platformtest.MockShell), nil).Definition()

	assert.Equal(t, "system", def.ID)
	require.Len(t, def.Tools, 2)
	assert.Equal(t, "system.open_folder_command", def.Tools[0].ID)
	assert.Equal(t, "system.reveal_file_command", def.Tools[1].ID)
}

func TestOpenFolderExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	shell := new(platformtest.MockShell)
	shell.On("OpenFolder", filepath.Join(home, "Projects")).Return(nil).Once()

	res, err := NewProvider(shell, nil).Execute(context.Background(), "system.open_folder_command",
		map[string]interface{}{"path": "~/Projects"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	shell.AssertExpectations(t)
}

func TestRevealFile(t *testing.T) {
	shell := new(platformtest.MockShell)
	shell.On("RevealFile", "/tmp/report.pdf").Return(nil).Once()

	res, err := NewProvider(shell, nil).Execute(context.Background(), "system.reveal_file_command",
		map[string]interface{}{"path": "/tmp/report.pdf"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	shell.AssertExpectations(t)
}

func TestShellFailureIsReported(t *testing.T) {
	shell := new(platformtest.MockShell)
	shell.On("OpenFolder", "/missing").Return(errs.New(errs.KindNotFound, "open folder", "/missing", nil))

	res, err := NewProvider(shell, nil).Execute(context.Background(), "system.open_folder_command",
		map[string]interface{}{"path": "/missing"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "NotFound", res.Kind)
	require.NotNil(t, res.Error)
	assert.Contains(t, *res.Error, "/missing")
}

func TestArgumentErrors(t *testing.T) {
	shell := new(platformtest.MockShell)
	p := NewProvider(shell, nil)

	res, err := p.Execute(context.Background(), "system.reveal_file_command", map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "InvalidArgument", res.Kind)

	res, err = p.Execute(context.Background(), "system.reveal_file_command", map[string]interface{}{"path": ""})
	require.NoError(t, err)
	assert.Equal(t, "InvalidArgument", res.Kind)

	_, err = p.Execute(context.Background(), "system.shutdown", nil)
	assert.Error(t, err)

	shell.AssertNotCalled(t, "RevealFile", "")
}
