package system

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/filearchitect/desktop/backend/internal/infrastructure/logging"
	"github.com/filearchitect/desktop/backend/internal/platform"
	"github.com/filearchitect/desktop/backend/internal/providers"
	"github.com/filearchitect/desktop/backend/internal/shared/paths"
	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

// Provider hands paths to the desktop's file browser
type Provider struct {
	shell  platform.Shell
	logger *zap.Logger
}

// NewProvider creates a system provider over shell
func NewProvider(shell platform.Shell, logger *zap.Logger) *Provider {
	return &Provider{shell: shell, logger: logging.OrNop(logger)}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	pathParam := []types.Parameter{
		{Name: "path", Type: "string", Description: "Path, ~ is expanded", Required: true},
	}

	return types.Service{
		ID:           "system",
		Name:         "System Shell",
		Description:  "Open folders and reveal files in the system file browser",
		Category:     types.CategorySystem,
		Capabilities: []string{"open", "reveal"},
		Tools: []types.Tool{
			{
				ID:          "system.open_folder_command",
				Name:        "Open Folder",
				Description: "Open a directory in the system file browser",
				Parameters:  pathParam,
				Returns:     "null",
			},
			{
				ID:          "system.reveal_file_command",
				Name:        "Reveal File",
				Description: "Show a file selected in the system file browser",
				Parameters:  pathParam,
				Returns:     "null",
			},
		},
	}
}

// Execute runs a system operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	var action func(string) error
	switch toolID {
	case "system.open_folder_command":
		action = p.shell.OpenFolder
	case "system.reveal_file_command":
		action = p.shell.RevealFile
	default:
		return nil, fmt.Errorf("unknown tool: %s", toolID)
	}

	raw, err := providers.String(params, "path")
	if err != nil {
		return providers.FailureErr(err)
	}
	if raw == "" {
		return providers.Failure("path must not be empty")
	}

	path := paths.ExpandPath(raw)
	if err := action(path); err != nil {
		p.logger.Warn("shell action failed", zap.String("tool", toolID), zap.String("path", path), zap.Error(err))
		return providers.FailureErr(err)
	}
	return providers.Success(nil)
}
