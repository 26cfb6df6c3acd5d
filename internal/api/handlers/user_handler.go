package handlers

import (
	"net/http"
	"time"

	"delivery-ops-api-server/internal/auth"
	"delivery-ops-api-server/internal/models"
	"delivery-ops-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	Store store.Store
}

type LoginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterUserPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	profile, err := h.Store.GetProfileByEmail(c.Request.Context(), payload.Email)
	if err != nil || !auth.CheckPasswordHash(payload.Password, profile.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateJWT(profile.ID, profile.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"role":  profile.Role,
		"user":  profile,
	})
}

// RegisterUser creates a profile with a role. Admin-only; everyone else gets
// accounts handed to them.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var payload RegisterUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, password and full_name are required"})
		return
	}

	if _, err := h.Store.GetProfileByEmail(c.Request.Context(), payload.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Profile with this email already exists"})
		return
	}

	hashed, err := auth.HashPassword(payload.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	role := payload.Role
	if role == "" {
		role = "staff"
	}

	profile := &models.Profile{
		ID:        uuid.NewString(),
		Email:     payload.Email,
		FullName:  payload.FullName,
		Password:  hashed,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.CreateProfile(c.Request.Context(), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": profile.ID, "email": profile.Email, "role": profile.Role})
}
