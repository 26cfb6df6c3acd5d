package handlers

import (
	"net/http"
	"time"

	"delivery-ops-api-server/internal/api/middleware"
	"delivery-ops-api-server/internal/lifecycle"
	"delivery-ops-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Engine *lifecycle.Engine
	Store  store.Store
}

type CreateBookingPayload struct {
	Reference  string     `json:"reference" binding:"required"`
	Customer   string     `json:"customer" binding:"required"`
	Pickup     string     `json:"pickup"`
	Dropoff    string     `json:"dropoff"`
	WindowFrom *time.Time `json:"window_from"`
	WindowTo   *time.Time `json:"window_to"`
	Status     string     `json:"status"`
}

type UpdateBookingStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// ListBookings returns bookings newest-first, capped at 200 rows.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Store.ListBookings(c.Request.Context(), maxListRows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload CreateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference and customer are required"})
		return
	}

	booking, err := h.Engine.CreateBooking(c.Request.Context(), lifecycle.CreateBookingInput{
		Reference:  payload.Reference,
		Customer:   payload.Customer,
		Pickup:     payload.Pickup,
		Dropoff:    payload.Dropoff,
		WindowFrom: payload.WindowFrom,
		WindowTo:   payload.WindowTo,
		Status:     payload.Status,
	}, c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": booking.ID, "created_at": booking.CreatedAt})
}

func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var payload UpdateBookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	if err := h.Engine.SetBookingStatus(c.Request.Context(), c.Param("id"), payload.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
