package handlers

import (
	"net/http"

	"markhamtaxi/models"
	"markhamtaxi/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking submission and listing endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler handles POST /api/book.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("Invalid booking payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "detail": err.Error()})
		return
	}

	resp, err := h.Service.Submit(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("Booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("Booking list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "detail": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
