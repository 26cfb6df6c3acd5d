package models

import "time"

// Booking is a customer delivery order tracked through a status lifecycle.
// Status values live in internal/lifecycle.
type Booking struct {
	ID         string     `bson:"_id" json:"id"`
	Reference  string     `bson:"reference" json:"reference"` // human-readable DO number
	Customer   string     `bson:"customer" json:"customer"`
	Pickup     string     `bson:"pickup,omitempty" json:"pickup,omitempty"`
	Dropoff    string     `bson:"dropoff,omitempty" json:"dropoff,omitempty"`
	WindowFrom *time.Time `bson:"windowFrom,omitempty" json:"window_from,omitempty"`
	WindowTo   *time.Time `bson:"windowTo,omitempty" json:"window_to,omitempty"`
	Status     string     `bson:"status" json:"status"`
	CreatedBy  string     `bson:"createdBy" json:"created_by"`
	CreatedAt  time.Time  `bson:"createdAt" json:"created_at"`
}
