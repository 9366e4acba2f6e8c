package templates

import (
	"context"
	"fmt"

	"github.com/filearchitect/desktop/backend/internal/providers"
	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

// Provider exposes the template store as commands
type Provider struct {
	store *Store
}

// NewProvider creates a templates provider
func NewProvider(store *Store) *Provider {
	return &Provider{store: store}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:           "templates",
		Name:         "Template Store",
		Description:  "Named folder/file blueprints stored in the documents directory",
		Category:     types.CategoryTemplates,
		Capabilities: []string{"list", "save", "reorder", "seed"},
		Tools: []types.Tool{
			{
				ID:          "templates.get_templates",
				Name:        "List Templates",
				Description: "List stored templates ordered by front matter order, then name",
				Returns:     "array",
			},
			{
				ID:          "templates.save_template",
				Name:        "Save Template",
				Description: "Create or overwrite a template",
				Parameters: []types.Parameter{
					{Name: "name", Type: "string", Description: "Template name (file name without .txt)", Required: true},
					{Name: "content", Type: "string", Description: "Template content", Required: true},
				},
				Returns: "null",
			},
			{
				ID:          "templates.reorder_templates",
				Name:        "Reorder Templates",
				Description: "Persist a 1-based order for the named templates",
				Parameters: []types.Parameter{
					{Name: "names", Type: "array", Description: "Template names in the desired order", Required: true},
				},
				Returns: "null",
			},
			{
				ID:          "templates.initialize_app",
				Name:        "Initialize",
				Description: "Create the template store and seed defaults on first run",
				Returns:     "null",
			},
		},
	}
}

// Execute runs a template operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	case "templates.get_templates":
		list, err := p.store.List()
		if err != nil {
			return providers.FailureErr(err)
		}
		return providers.Success(list)

	case "templates.save_template":
		name, err := providers.String(params, "name")
		if err != nil {
			return providers.FailureErr(err)
		}
		content, err := providers.String(params, "content")
		if err != nil {
			return providers.FailureErr(err)
		}
		return providers.Done(p.store.Save(name, content))

	case "templates.reorder_templates":
		names, err := providers.Strings(params, "names")
		if err != nil {
			return providers.FailureErr(err)
		}
		return providers.Done(p.store.Reorder(names))

	case "templates.initialize_app":
		return providers.Done(p.store.InitializeApp())

	default:
		return nil, fmt.Errorf("unknown tool: %s", toolID)
	}
}
