package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/uuidfeed/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recLogger struct {
	msgs *[]string
}

func (r recLogger) Debug(_ context.Context, msg string, _ ...any) { *r.msgs = append(*r.msgs, msg) }
func (r recLogger) Info(_ context.Context, msg string, _ ...any)  { *r.msgs = append(*r.msgs, msg) }
func (r recLogger) Warn(_ context.Context, msg string, _ ...any)  { *r.msgs = append(*r.msgs, msg) }
func (r recLogger) Error(_ context.Context, msg string, _ ...any) { *r.msgs = append(*r.msgs, msg) }
func (r recLogger) With(...any) logging.Logger                    { return r }

func TestTimeout_SetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Timeout(time.Second))

	var hasDeadline bool
	engine.GET("/x", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, hasDeadline)
}

func TestTimeout_ZeroDisables(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Timeout(0))

	var hasDeadline bool
	engine.GET("/x", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
	})

	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.False(t, hasDeadline)
}

func TestRecovery_Returns500AndLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var msgs []string
	engine := gin.New()
	engine.Use(RequestLogger(recLogger{&msgs}), Recovery(recLogger{&msgs}))
	engine.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	assert.Equal(t, []string{"panic recovered", "request failed"}, msgs)
}
