package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/filearchitect/desktop/backend/internal/infrastructure/logging"
	"github.com/filearchitect/desktop/backend/internal/infrastructure/monitoring"
	"github.com/filearchitect/desktop/backend/internal/shared/errs"
	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

// Registry maps command names to the providers that implement them
type Registry struct {
	services sync.Map
	commands map[string]string // command -> tool ID
	mu       sync.RWMutex

	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error)
}

// NewRegistry creates a new service registry
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		commands: make(map[string]string),
		logger:   logging.OrNop(logger),
	}
}

// WithMetrics records every invocation in m
func (r *Registry) WithMetrics(m *monitoring.Metrics) *Registry {
	r.metrics = m
	return r
}

// Register adds a service provider and indexes its commands. A command
// name (the part of the tool ID after the service prefix) may only be
// claimed once.
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.services.Load(def.ID); exists {
		return fmt.Errorf("service already registered: %s", def.ID)
	}

	names := make([]string, 0, len(def.Tools))
	for _, tool := range def.Tools {
		serviceID, command, ok := splitToolID(tool.ID)
		if !ok || serviceID != def.ID {
			return fmt.Errorf("tool %q does not belong to service %s", tool.ID, def.ID)
		}
		if owner, taken := r.commands[command]; taken {
			return fmt.Errorf("command %s already provided by %s", command, owner)
		}
		names = append(names, command)
	}

	for i, tool := range def.Tools {
		r.commands[names[i]] = tool.ID
	}
	r.services.Store(def.ID, provider)

	r.logger.Debug("registered service", zap.String("service", def.ID), zap.Strings("commands", names))
	return nil
}

// Unregister removes a service provider and its commands
func (r *Registry) Unregister(serviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.services.Delete(serviceID)
	for command, toolID := range r.commands {
		if strings.HasPrefix(toolID, serviceID+".") {
			delete(r.commands, command)
		}
	}
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// Resolve maps a command name or full tool ID to a tool ID
func (r *Registry) Resolve(command string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if toolID, ok := r.commands[command]; ok {
		return toolID, true
	}
	if _, name, ok := splitToolID(command); ok {
		if toolID, ok := r.commands[name]; ok && toolID == command {
			return toolID, true
		}
	}
	return "", false
}

// Commands returns every registered command name, sorted
func (r *Registry) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.commands))
	for command := range r.commands {
		out = append(out, command)
	}
	sort.Strings(out)
	return out
}

// List returns all registered services ordered by ID
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services
}

// Invoke runs command with params. Failures, including unknown commands,
// come back as an unsuccessful Result; the result is never nil.
func (r *Registry) Invoke(ctx context.Context, command string, params map[string]interface{}) *types.Result {
	if params == nil {
		params = map[string]interface{}{}
	}

	toolID, ok := r.Resolve(command)
	if !ok {
		return failure(errs.Newf(errs.KindInvalidArgument, "invoke", "", "unknown command: %s", command))
	}

	serviceID, name, _ := splitToolID(toolID)
	provider, ok := r.Get(serviceID)
	if !ok {
		return failure(errs.Newf(errs.KindInvalidArgument, "invoke", "", "service not found: %s", serviceID))
	}

	timer := monitoring.NewTimer(r.metrics, serviceID, name)
	result, err := provider.Execute(ctx, toolID, params)
	if err != nil {
		result = failure(errs.New(errs.KindInvalidArgument, "invoke", "", err))
	}
	if result == nil {
		result = &types.Result{Success: true}
	}

	if result.Success {
		timer.Stop("success")
		return result
	}

	timer.Stop("error")
	if r.metrics != nil {
		r.metrics.RecordCommandError(serviceID, name, result.Kind)
	}
	r.logger.Debug("command failed",
		zap.String("command", name),
		zap.String("kind", result.Kind),
		zap.Stringp("error", result.Error),
	)
	return result
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func splitToolID(toolID string) (serviceID, command string, ok bool) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func failure(err error) *types.Result {
	msg := err.Error()
	return &types.Result{Success: false, Error: &msg, Kind: errs.KindOf(err).String()}
}
