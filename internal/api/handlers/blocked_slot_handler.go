package handlers

import (
	"net/http"
	"time"

	"delivery-ops-api-server/internal/models"
	"delivery-ops-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BlockedSlotHandler struct {
	Store store.Store
}

type CreateBlockedSlotPayload struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
	Reason   string `json:"reason"`
}

func (h *BlockedSlotHandler) ListBlockedSlots(c *gin.Context) {
	slots, err := h.Store.ListBlockedSlots(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *BlockedSlotHandler) CreateBlockedSlot(c *gin.Context) {
	var payload CreateBlockedSlotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and time_slot are required"})
		return
	}

	slot := &models.BlockedSlot{
		ID:        uuid.NewString(),
		Date:      payload.Date,
		TimeSlot:  payload.TimeSlot,
		Reason:    payload.Reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.CreateBlockedSlot(c.Request.Context(), slot); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, slot)
}
