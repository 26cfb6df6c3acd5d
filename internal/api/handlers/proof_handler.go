package handlers

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"delivery-ops-api-server/internal/api/middleware"
	"delivery-ops-api-server/internal/models"
	"delivery-ops-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProofSigner issues presigned URLs against the external proofs bucket.
type ProofSigner interface {
	SignUpload(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error)
	SignDownload(ctx context.Context, objectKey string, expires time.Duration) (string, error)
}

const (
	defaultMimeType     = "application/octet-stream"
	uploadURLExpiry     = 10 * time.Minute
	defaultDownloadSecs = 600
)

var unsafePathChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

type ProofHandler struct {
	Store  store.Store
	Signer ProofSigner
}

type RecordProofPayload struct {
	BookingID    string  `json:"booking_id" binding:"required"`
	AssignmentID *string `json:"assignment_id"`
	Path         string  `json:"path" binding:"required"`
	MimeType     string  `json:"mime_type"`
	Notes        string  `json:"notes"`
}

type SignProofPayload struct {
	BookingID   string `json:"booking_id" binding:"required"`
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
}

type DownloadProofPayload struct {
	Path      string `json:"path" binding:"required"`
	ExpiresIn int64  `json:"expires_in"`
}

// ListProofs returns all proofs for a booking, newest-first.
func (h *ProofHandler) ListProofs(c *gin.Context) {
	bookingID := c.Query("booking_id")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id is required"})
		return
	}

	proofs, err := h.Store.ListProofsByBooking(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, proofs)
}

// RecordProof stores metadata for an already-uploaded file. Any authenticated
// caller may record; proofs are append-only evidence and never mutated.
func (h *ProofHandler) RecordProof(c *gin.Context) {
	var payload RecordProofPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id and path are required"})
		return
	}

	if _, err := h.Store.GetBooking(c.Request.Context(), payload.BookingID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking_id"})
		return
	}

	mimeType := payload.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	proof := &models.DeliveryProof{
		ID:           uuid.NewString(),
		BookingID:    payload.BookingID,
		AssignmentID: payload.AssignmentID,
		Path:         payload.Path,
		MimeType:     mimeType,
		Notes:        payload.Notes,
		UploadedBy:   c.GetString(middleware.CtxUserID),
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Store.CreateProof(c.Request.Context(), proof); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, proof)
}

// SignProofUpload returns a presigned PUT URL for a new proof object. The
// token field is kept for client compatibility with the previous storage
// backend, which used a separate upload token; presigned PUTs need none.
func (h *ProofHandler) SignProofUpload(c *gin.Context) {
	var payload SignProofPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id and filename are required"})
		return
	}

	if _, err := h.Store.GetBooking(c.Request.Context(), payload.BookingID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking_id"})
		return
	}

	contentType := payload.ContentType
	if contentType == "" {
		contentType = defaultMimeType
	}

	safeName := unsafePathChars.ReplaceAllString(payload.Filename, "_")
	objectKey := fmt.Sprintf("%s/%s/%d_%s",
		c.GetString(middleware.CtxUserID), payload.BookingID, time.Now().UnixMilli(), safeName)

	signedURL, err := h.Signer.SignUpload(c.Request.Context(), objectKey, contentType, uploadURLExpiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"path":        objectKey,
		"signedUrl":   signedURL,
		"token":       "",
		"contentType": contentType,
	})
}

// SignProofDownload returns a short-lived GET URL for a stored proof object.
func (h *ProofHandler) SignProofDownload(c *gin.Context) {
	var payload DownloadProofPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}

	expiresIn := payload.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = defaultDownloadSecs
	}

	url, err := h.Signer.SignDownload(c.Request.Context(), payload.Path, time.Duration(expiresIn)*time.Second)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "expires_in": expiresIn})
}
