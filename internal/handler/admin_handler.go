// Package handler exposes the HTTP surface of the decision service.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Moha-Bremoo/RouaProject/internal/service"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

type AdminHandler struct {
	offers *service.OfferService
	fraud  *service.FraudService
	logger *zap.Logger
}

func NewAdminHandler(offers *service.OfferService, fraud *service.FraudService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		offers: offers,
		fraud:  fraud,
		logger: logger,
	}
}

// ListOffers handles GET /admin/offers
func (h *AdminHandler) ListOffers(c *gin.Context) {
	skip, limit := pagination(c)

	offers, err := h.offers.ListOffers(c.Request.Context(), skip, limit)
	if err != nil {
		h.logger.Error("failed to list offers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list offers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// ListTransactions handles GET /admin/transactions
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	skip, limit := pagination(c)

	txns, err := h.offers.ListTransactions(c.Request.Context(), skip, limit)
	if err != nil {
		h.logger.Error("failed to list transactions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}

// ListFraudChecks handles GET /admin/fraud-checks
func (h *AdminHandler) ListFraudChecks(c *gin.Context) {
	skip, limit := pagination(c)

	checks, err := h.fraud.ListChecks(c.Request.Context(), skip, limit)
	if err != nil {
		h.logger.Error("failed to list fraud checks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list fraud checks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fraud_checks": checks})
}

func pagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	return skip, limit
}
