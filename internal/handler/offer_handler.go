package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Moha-Bremoo/RouaProject/internal/models"
	"github.com/Moha-Bremoo/RouaProject/internal/service"
)

type OfferHandler struct {
	service *service.OfferService
	logger  *zap.Logger
}

func NewOfferHandler(service *service.OfferService, logger *zap.Logger) *OfferHandler {
	return &OfferHandler{
		service: service,
		logger:  logger,
	}
}

// CreateOffer handles POST /api/v1/offers
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req models.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offer, err := h.service.CreateOffer(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create offer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create offer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"offer": offer})
}

// GetOffer handles GET /api/v1/offers/:id
func (h *OfferHandler) GetOffer(c *gin.Context) {
	offer, err := h.service.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to get offer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get offer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offer": offer})
}

// AttemptPayment handles POST /api/v1/payments
func (h *OfferHandler) AttemptPayment(c *gin.Context) {
	var req models.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, err := h.service.AttemptPayment(c.Request.Context(), req.OfferID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrOfferNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrOfferNotPayable), errors.Is(err, models.ErrOfferNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to process payment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process payment"})
		}
		return
	}

	c.JSON(http.StatusOK, models.PayResponse{
		Success:       true,
		TransactionID: txn.ID,
		Message:       "payment processed successfully",
	})
}
