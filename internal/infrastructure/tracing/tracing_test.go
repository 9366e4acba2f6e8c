package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedTracer(t *testing.T) (*Tracer, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	tracer := New("test", zap.New(core))
	return tracer, logs
}

func TestStartSpanGeneratesTrace(t *testing.T) {
	tracer, _ := newObservedTracer(t)
	defer tracer.Close()

	span, ctx := tracer.StartSpan(context.Background(), "op")

	assert.True(t, strings.HasPrefix(string(span.TraceID), "trace_"))
	assert.NotEmpty(t, span.SpanID)
	assert.Empty(t, span.ParentID)
	assert.Equal(t, span.TraceID, GetTraceID(ctx))
	assert.Equal(t, span.SpanID, GetSpanID(ctx))
}

func TestChildSpanKeepsTrace(t *testing.T) {
	tracer, _ := newObservedTracer(t)
	defer tracer.Close()

	parent, ctx := tracer.StartSpan(context.Background(), "parent")
	child, _ := tracer.StartSpan(ctx, "child")

	assert.Equal(t, parent.TraceID, child.TraceID)
	assert.Equal(t, parent.SpanID, child.ParentID)
	assert.NotEqual(t, parent.SpanID, child.SpanID)
}

func TestInjectExtractRoundTrip(t *testing.T) {
	tracer, _ := newObservedTracer(t)
	defer tracer.Close()

	_, ctx := tracer.StartSpan(context.Background(), "op")

	headers := map[string]string{}
	InjectTraceContext(ctx, headers)
	traceID, spanID := ExtractTraceContext(headers)

	assert.Equal(t, GetTraceID(ctx), traceID)
	assert.Equal(t, GetSpanID(ctx), spanID)
}

func TestHTTPMiddlewareEchoesTraceHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracer, logs := newObservedTracer(t)

	router := gin.New()
	router.Use(HTTPMiddleware(tracer))
	router.POST("/invoke/:command", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("propagates caller trace", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/invoke/get_templates", nil)
		req.Header.Set(TraceHeader, "trace_from_shell")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, "trace_from_shell", w.Header().Get(TraceHeader))
		assert.NotEmpty(t, w.Header().Get(SpanHeader))
	})

	t.Run("generates trace when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/invoke/get_templates", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.True(t, strings.HasPrefix(w.Header().Get(TraceHeader), "trace_"))
	})

	tracer.Close()

	entries := logs.FilterMessage("span completed").All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "trace_from_shell", fields["trace_id"])
	assert.Equal(t, "/invoke/:command", fields["operation"])
	assert.Equal(t, "get_templates", fields["command"])
	assert.Equal(t, int64(http.StatusNoContent), fields["status"])
}

func TestCloseIsIdempotent(t *testing.T) {
	tracer, _ := newObservedTracer(t)
	tracer.Close()
	tracer.Close()
}
