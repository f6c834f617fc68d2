// Package api wires the HTTP surface of uuidfeed onto a gin engine and
// runs the HTTP server.
package api

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/uuidfeed/internal/logging"
	"github.com/dmitrijs2005/uuidfeed/internal/server/api/handlers"
	"github.com/dmitrijs2005/uuidfeed/internal/server/api/middleware"
	"github.com/gin-gonic/gin"
)

// mountPoints lists the prefixes every route is served under; "/api"
// keeps URLs used by older clients working.
var mountPoints = []string{"/", "/api"}

type Router struct {
	generateHandler *handlers.GenerateHandler
	statsHandler    *handlers.StatsHandler
	feedHandler     *handlers.FeedHandler
	logger          logging.Logger
	requestTimeout  time.Duration
}

func NewRouter(
	generateHandler *handlers.GenerateHandler,
	statsHandler *handlers.StatsHandler,
	feedHandler *handlers.FeedHandler,
	l logging.Logger,
	requestTimeout time.Duration,
) *Router {
	return &Router{
		generateHandler: generateHandler,
		statsHandler:    statsHandler,
		feedHandler:     feedHandler,
		logger:          l,
		requestTimeout:  requestTimeout,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.RequestLogger(r.logger), middleware.Recovery(r.logger))

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for _, prefix := range mountPoints {
		group := engine.Group(prefix)

		// request/response endpoints
		api := group.Group("/")
		api.Use(middleware.Timeout(r.requestTimeout))
		{
			api.POST("/generate", r.generateHandler.Generate)
			api.POST("/bulk-generate", r.generateHandler.BulkGenerate)
			api.GET("/stats", r.statsHandler.Stats)
			api.GET("/history", r.statsHandler.History)
			api.GET("/config", r.feedHandler.Config)
		}

		// long-lived stream, no request deadline
		group.GET("/events", r.feedHandler.Events)
	}
}
