package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/filearchitect/desktop/backend/internal/infrastructure/logging"
	"github.com/filearchitect/desktop/backend/internal/infrastructure/monitoring"
	"github.com/filearchitect/desktop/backend/internal/service"
	"github.com/filearchitect/desktop/backend/internal/shared/types"
	"github.com/filearchitect/desktop/backend/internal/shared/utils"
)

// Handlers serves the command surface
type Handlers struct {
	registry  *service.Registry
	metrics   *monitoring.Metrics
	validator *utils.JSONSizeValidator
	logger    *zap.Logger
	version   string
}

// NewHandlers creates the HTTP handlers. metrics may be nil.
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *zap.Logger, version string) *Handlers {
	return &Handlers{
		registry:  registry,
		metrics:   metrics,
		validator: utils.DefaultJSONValidator(),
		logger:    logging.OrNop(logger),
		version:   version,
	}
}

// WithBodyLimit overrides the maximum request body size
func (h *Handlers) WithBodyLimit(bytes int) *Handlers {
	h.validator = utils.NewJSONSizeValidator(bytes)
	return h
}

// Register mounts every route on r
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.GET("/commands", h.ListCommands)
	r.POST("/invoke/:command", h.Invoke)
	if h.metrics != nil {
		r.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}
}

// Health reports liveness and running totals
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"version":          h.version,
		"service_registry": h.registry.Stats(),
	}
	if h.metrics != nil {
		body["uptime_seconds"] = h.metrics.UptimeSeconds()
		body["totals"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// ListCommands returns every service definition and the flat command list
func (h *Handlers) ListCommands(c *gin.Context) {
	var category *types.Category
	if raw := c.Query("category"); raw != "" {
		cat := types.Category(raw)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"commands": h.registry.Commands(),
	})
}

// Invoke decodes the JSON body as the command's arguments and runs it.
// Command failures are reported in the body with status 200; only a
// malformed request gets an HTTP error status.
func (h *Handlers) Invoke(c *gin.Context) {
	command := c.Param("command")
	if err := utils.ValidateCommand(command); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error(), "kind": "InvalidArgument"})
		return
	}

	params, status, err := h.decodeArgs(c.Request.Body)
	if err != nil {
		h.logger.Debug("rejected invoke body", zap.String("command", command), zap.Error(err))
		c.JSON(status, gin.H{"success": false, "error": err.Error(), "kind": "InvalidArgument"})
		return
	}

	result := h.registry.Invoke(c.Request.Context(), command, params)
	if !result.Success && result.Error != nil {
		_ = c.Error(errors.New(*result.Error))
	}
	c.JSON(http.StatusOK, result)
}

// decodeArgs reads at most the size limit plus one byte so oversized bodies
// are detected without buffering them whole. An empty body means no
// arguments.
func (h *Handlers) decodeArgs(body io.Reader) (map[string]interface{}, int, error) {
	params := map[string]interface{}{}
	if body == nil {
		return params, http.StatusOK, nil
	}

	data, err := io.ReadAll(io.LimitReader(body, int64(h.validator.Limit())+1))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	if err := h.validator.ValidateSize(data); err != nil {
		return nil, http.StatusRequestEntityTooLarge, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return params, http.StatusOK, nil
	}

	if err := sonic.Unmarshal(data, &params); err != nil {
		return nil, http.StatusBadRequest, errors.New("arguments must be a JSON object")
	}
	if params == nil {
		params = map[string]interface{}{}
	}
	if err := utils.ValidateJSONDepth(params, utils.MaxJSONDepth); err != nil {
		return nil, http.StatusBadRequest, err
	}
	return params, http.StatusOK, nil
}
