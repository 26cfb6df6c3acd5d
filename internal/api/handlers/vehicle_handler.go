package handlers

import (
	"net/http"
	"time"

	"delivery-ops-api-server/internal/models"
	"delivery-ops-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	Store store.Store
}

type CreateVehiclePayload struct {
	Plate string `json:"plate" binding:"required"`
	Type  string `json:"type"`
}

// ListVehicles returns all vehicles ordered by plate.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.Store.ListVehicles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload CreateVehiclePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plate is required"})
		return
	}

	vehicle := &models.Vehicle{
		ID:        uuid.NewString(),
		Plate:     payload.Plate,
		Type:      payload.Type,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.CreateVehicle(c.Request.Context(), vehicle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}
