package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Moha-Bremoo/RouaProject/internal/models"
	"github.com/Moha-Bremoo/RouaProject/internal/service"
)

type FraudHandler struct {
	service *service.FraudService
	logger  *zap.Logger
}

func NewFraudHandler(service *service.FraudService, logger *zap.Logger) *FraudHandler {
	return &FraudHandler{
		service: service,
		logger:  logger,
	}
}

// RunCheck handles POST /api/v1/fraud-checks
func (h *FraudHandler) RunCheck(c *gin.Context) {
	var req models.FraudCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.RunCheck(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("failed to run fraud check", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run fraud check"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"fraud_check": result})
}
