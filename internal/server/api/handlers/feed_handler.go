package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/uuidfeed/internal/common"
	"github.com/dmitrijs2005/uuidfeed/internal/logging"
	"github.com/gin-gonic/gin"
)

// FeedHandler exposes the live feed: credentials for the gRPC stream and a
// Server-Sent Events stream for plain HTTP clients.
type FeedHandler struct {
	issuer FeedIssuer
	hub    Broadcaster
	logger logging.Logger
}

func NewFeedHandler(i FeedIssuer, hub Broadcaster, l logging.Logger) *FeedHandler {
	return &FeedHandler{
		issuer: i,
		hub:    hub,
		logger: l.With("module", "feed_handler"),
	}
}

// Config handles GET /config?clientId=...
func (h *FeedHandler) Config(c *gin.Context) {
	fc, err := h.issuer.Issue(c.Query("clientId"))
	if err != nil {
		if errors.Is(err, common.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "clientId is required"})
			return
		}
		h.logger.Error(c.Request.Context(), "error issuing feed token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue feed token"})
		return
	}

	c.JSON(http.StatusOK, fc)
}

// Events handles GET /events. Each inserted record is sent as an "insert"
// event until the client disconnects.
func (h *FeedHandler) Events(c *gin.Context) {
	records, cancel := h.hub.Subscribe()
	defer cancel()

	ctx := c.Request.Context()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	h.logger.Debug(ctx, "SSE subscriber connected", "remote", c.ClientIP())

	for {
		select {
		case <-ctx.Done():
			return
		case rec, ok := <-records:
			if !ok {
				return
			}
			c.SSEvent("insert", rec)
			c.Writer.Flush()
		}
	}
}
