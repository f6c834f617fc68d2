package handlers

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/uuidfeed/internal/logging"
	"github.com/gin-gonic/gin"
)

// StatsHandler serves the read-only endpoints.
type StatsHandler struct {
	stats   StatsReader
	history HistoryReader
	logger  logging.Logger
}

func NewStatsHandler(s StatsReader, h HistoryReader, l logging.Logger) *StatsHandler {
	return &StatsHandler{
		stats:   s,
		history: h,
		logger:  l.With("module", "stats_handler"),
	}
}

// Stats handles GET /stats
func (h *StatsHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.stats.Get(ctx)
	if err != nil {
		h.logger.Error(ctx, "error reading stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, st)
}

// History handles GET /history[?limit=n]
func (h *StatsHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	ctx := c.Request.Context()

	items, err := h.history.Recent(ctx, limit)
	if err != nil {
		h.logger.Error(ctx, "error reading history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, items)
}
