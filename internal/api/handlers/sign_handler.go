package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thanhnp/txsigner/internal/models"
)

// BatchSigner signs a batch of raw transactions, all-or-nothing: on any
// fatal error no partial result is returned.
type BatchSigner interface {
	SignBatch(entries []models.TxEntry) ([]models.TxEntry, error)
}

// SignHandler handles batch signing API requests
type SignHandler struct {
	signer BatchSigner
}

// NewSignHandler creates a new SignHandler
func NewSignHandler(signer BatchSigner) *SignHandler {
	return &SignHandler{signer: signer}
}

// Sign signs a JSON array of raw transactions and returns the array with
// each entry replaced by its signing outcome
// POST /api/v1/sign
func (h *SignHandler) Sign(c *gin.Context) {
	var entries []models.TxEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	signed, err := h.signer.SignBatch(entries)
	if err != nil {
		// The node/wallet CLI is the upstream here; surface its
		// diagnostic but emit no partial output.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, signed)
}
