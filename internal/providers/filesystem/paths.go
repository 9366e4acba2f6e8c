package filesystem

import (
	"context"

	"github.com/filearchitect/desktop/backend/internal/providers"
	"github.com/filearchitect/desktop/backend/internal/shared/paths"
	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

// PathOps handles path expansion and existence checks
type PathOps struct {
	*FilesystemOps
}

// GetTools returns path tool definitions
func (p *PathOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.expand_path",
			Name:        "Expand Path",
			Description: "Replace a leading ~ with the home directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Path that may start with ~", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.check_file_exists",
			Name:        "Check Existence",
			Description: "Check whether a file or directory exists",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Expand expands a leading ~
func (p *PathOps) Expand(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	path, err := providers.String(params, "path")
	if err != nil {
		return providers.FailureErr(err)
	}
	return providers.Success(paths.ExpandPath(path))
}

// Exists reports whether the expanded path exists
func (p *PathOps) Exists(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	path, err := providers.String(params, "path")
	if err != nil {
		return providers.FailureErr(err)
	}
	return providers.Success(paths.Exists(path))
}
