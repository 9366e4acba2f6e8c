package filesystem

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

// Provider exposes the filesystem modules as commands
type Provider struct {
	paths     *PathOps
	directory *DirectoryOps
	remove    *RemoveOps
	archives  *ArchivesOps
}

// NewProvider creates a filesystem provider over ops
func NewProvider(ops *FilesystemOps) *Provider {
	return &Provider{
		paths:     &PathOps{FilesystemOps: ops},
		directory: &DirectoryOps{FilesystemOps: ops},
		remove:    &RemoveOps{FilesystemOps: ops},
		archives:  &ArchivesOps{FilesystemOps: ops},
	}
}

// New creates a provider backed by the real filesystem
func New(logger *zap.Logger, maxEntries int, observer ExtractObserver) *Provider {
	ops := NewOps(logger, OSDeleter{})
	ops.MaxEntries = maxEntries
	ops.Observer = observer
	return NewProvider(ops)
}

// Directory returns the listing module
func (p *Provider) Directory() *DirectoryOps { return p.directory }

// Remove returns the removal module
func (p *Provider) Remove() *RemoveOps { return p.remove }

// Archives returns the extraction module
func (p *Provider) Archives() *ArchivesOps { return p.archives }

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	var tools []types.Tool
	tools = append(tools, p.paths.GetTools()...)
	tools = append(tools, p.directory.GetTools()...)
	tools = append(tools, p.remove.GetTools()...)
	tools = append(tools, p.archives.GetTools()...)

	return types.Service{
		ID:          "filesystem",
		Name:        "Filesystem Service",
		Description: "Path expansion, directory listings, removal and archive extraction",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"expand",
			"exists",
			"list",
			"tree",
			"remove",
			"extract",
		},
		Tools: tools,
	}
}

// Execute runs a filesystem operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	case "filesystem.expand_path":
		return p.paths.Expand(ctx, params)
	case "filesystem.check_file_exists":
		return p.paths.Exists(ctx, params)
	case "filesystem.read_directory_structure":
		return p.directory.List(ctx, params)
	case "filesystem.read_directory_contents":
		return p.directory.Contents(ctx, params)
	case "filesystem.read_directory_tree":
		return p.directory.Tree(ctx, params)
	case "filesystem.remove_file":
		return p.remove.File(ctx, params)
	case "filesystem.remove_path":
		return p.remove.Path(ctx, params)
	case "filesystem.extract_zip":
		return p.archives.ExtractCommand(ctx, params)
	default:
		return nil, fmt.Errorf("unknown tool: %s", toolID)
	}
}
