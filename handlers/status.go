package handlers

import (
	"net/http"

	statusRepo "markhamtaxi/database/repository/status"
	"markhamtaxi/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusHandler records and lists diagnostic heartbeat entries. The
// entity carries no business logic, so the handler talks to the
// repository directly.
type StatusHandler struct {
	Repo   statusRepo.StatusCheckRepository
	Logger *zap.Logger
}

func NewStatusHandler(repo statusRepo.StatusCheckRepository, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{Repo: repo, Logger: logger}
}

// CreateStatusHandler handles POST /api/status.
func (h *StatusHandler) CreateStatusHandler(c *gin.Context) {
	var req models.StatusCheckCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	check := models.NewStatusCheck(req.ClientName)
	if err := h.Repo.Insert(c.Request.Context(), check); err != nil {
		h.Logger.Error("Status check insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.Logger.Info("Status check recorded", zap.String("clientName", check.ClientName))
	c.JSON(http.StatusOK, check)
}

// ListStatusHandler handles GET /api/status.
func (h *StatusHandler) ListStatusHandler(c *gin.Context) {
	checks, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("Status check list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if checks == nil {
		checks = []models.StatusCheck{}
	}
	c.JSON(http.StatusOK, checks)
}
