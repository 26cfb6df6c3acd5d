package handlers

import (
	"net/http"
	"time"

	"delivery-ops-api-server/internal/models"
	"delivery-ops-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DriverHandler struct {
	Store store.Store
}

type CreateDriverPayload struct {
	FullName  string `json:"full_name" binding:"required"`
	Phone     string `json:"phone"`
	LicenseNo string `json:"license_no"`
	Active    *bool  `json:"active"`
}

// ListDrivers returns all drivers ordered by name.
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.Store.ListDrivers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var payload CreateDriverPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full_name is required"})
		return
	}

	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	driver := &models.Driver{
		ID:        uuid.NewString(),
		FullName:  payload.FullName,
		Phone:     payload.Phone,
		LicenseNo: payload.LicenseNo,
		Active:    active,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.CreateDriver(c.Request.Context(), driver); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, driver)
}
