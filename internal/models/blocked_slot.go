package models

import "time"

// BlockedSlot marks a delivery time slot as unavailable for new bookings.
type BlockedSlot struct {
	ID        string    `bson:"_id" json:"id"`
	Date      string    `bson:"date" json:"date"` // YYYY-MM-DD
	TimeSlot  string    `bson:"timeSlot" json:"time_slot"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
