package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/uuidfeed/internal/common"
	"github.com/dmitrijs2005/uuidfeed/internal/logging"
	"github.com/gin-gonic/gin"
)

type GenerateHandler struct {
	generator Generator
	logger    logging.Logger
}

func NewGenerateHandler(g Generator, l logging.Logger) *GenerateHandler {
	return &GenerateHandler{
		generator: g,
		logger:    l.With("module", "generate_handler"),
	}
}

type GenerateRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	IsGift   bool   `json:"isGift"`
}

// Generate handles POST /generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	res, err := h.generator.Generate(ctx, req.ClientID, req.IsGift)
	if err != nil {
		h.logger.Error(ctx, "generation failed", "error", err, "client_id", req.ClientID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate UUID"})
		return
	}

	if res.Collision {
		h.logger.Warn(ctx, "collision detected", "uuid", res.UUID, "client_id", req.ClientID)
		c.JSON(http.StatusConflict, gin.H{"error": "Collision detected", "uuid": res.UUID})
		return
	}

	c.JSON(http.StatusOK, gin.H{"uuid": res.UUID, "data": res.Record})
}

type BulkGenerateRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	Count    int    `json:"count"`
}

// BulkGenerate handles POST /bulk-generate
func (h *GenerateHandler) BulkGenerate(c *gin.Context) {
	var req BulkGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	uuids, err := h.generator.BulkGenerate(ctx, req.ClientID, req.Count)
	if err != nil {
		if errors.Is(err, common.ErrCollision) {
			h.logger.Warn(ctx, "collision detected during bulk generation", "client_id", req.ClientID)
			c.JSON(http.StatusConflict, gin.H{"error": "Collision detected during bulk generation"})
			return
		}
		h.logger.Error(ctx, "bulk generation failed", "error", err, "client_id", req.ClientID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate UUIDs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"uuids": uuids})
}
