package handlers

import (
	"net/http"

	"delivery-ops-api-server/internal/lifecycle"
	"delivery-ops-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	Engine *lifecycle.Engine
	Store  store.Store
}

type CreateAssignmentPayload struct {
	BookingID string  `json:"booking_id" binding:"required"`
	DriverID  string  `json:"driver_id" binding:"required"`
	VehicleID *string `json:"vehicle_id"`
	Status    string  `json:"status"`
}

type UpdateAssignmentStatusPayload struct {
	AssignmentID string `json:"assignment_id" binding:"required"`
	Status       string `json:"status" binding:"required"`
}

// ListAssignments returns assignments newest-first with booking, driver and
// vehicle joined, capped at 200 rows.
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	details, err := h.Store.ListAssignmentDetails(c.Request.Context(), maxListRows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var payload CreateAssignmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id and driver_id are required"})
		return
	}

	assignment, err := h.Engine.CreateAssignment(c.Request.Context(), lifecycle.CreateAssignmentInput{
		BookingID: payload.BookingID,
		DriverID:  payload.DriverID,
		VehicleID: payload.VehicleID,
		Status:    payload.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": assignment.ID, "assigned_at": assignment.AssignedAt})
}

func (h *AssignmentHandler) UpdateAssignmentStatus(c *gin.Context) {
	var payload UpdateAssignmentStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assignment_id and valid status are required"})
		return
	}

	if err := h.Engine.SetAssignmentStatus(c.Request.Context(), payload.AssignmentID, payload.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
