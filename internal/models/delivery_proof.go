package models

import "time"

// DeliveryProof is an append-only evidence record for an uploaded file.
// Rows are never updated or deleted.
type DeliveryProof struct {
	ID           string    `bson:"_id" json:"id"`
	BookingID    string    `bson:"bookingID" json:"booking_id"`
	AssignmentID *string   `bson:"assignmentID,omitempty" json:"assignment_id,omitempty"`
	Path         string    `bson:"path" json:"path"`
	MimeType     string    `bson:"mimeType" json:"mime_type"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	UploadedBy   string    `bson:"uploadedBy" json:"uploaded_by"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
}
