package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/tasks-api/internal/api/middleware"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddleware(t *testing.T) {
	logBuf, base := logger.NewTestLogger(t)

	var seenTraceID string
	var sawLogger bool
	handler := middleware.NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		sawLogger = logger.FromContext(r.Context()) != slog.Default()
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Len(t, seenTraceID, 32)
	assert.True(t, sawLogger, "request logger should be in context")
	assert.Equal(t, seenTraceID, rec.Header().Get(middleware.TraceIDHeader))

	logger.AssertLogContains(t, logBuf, `"msg":"request started"`)
	logger.AssertLogContains(t, logBuf, `"msg":"request completed"`)
	logger.AssertLogContains(t, logBuf, `"status":418`)
	logger.AssertLogContains(t, logBuf, seenTraceID)
}

func TestTraceMiddleware_DistinctIDs(t *testing.T) {
	handler := middleware.NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get(middleware.TraceIDHeader), second.Header().Get(middleware.TraceIDHeader))
}
