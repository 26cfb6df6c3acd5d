package models

import "time"

type Vehicle struct {
	ID        string    `bson:"_id" json:"id"`
	Plate     string    `bson:"plate" json:"plate"`
	Type      string    `bson:"type,omitempty" json:"type,omitempty"` // TRUCK, VAN, MOTORBIKE
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
