package models

import "time"

// Assignment pairs a booking with a driver (and optionally a vehicle) for
// fulfillment. At most one non-Declined assignment per booking is the
// business expectation; the store does not enforce it.
type Assignment struct {
	ID         string    `bson:"_id" json:"id"`
	BookingID  string    `bson:"bookingID" json:"booking_id"`
	DriverID   string    `bson:"driverID" json:"driver_id"`
	VehicleID  *string   `bson:"vehicleID,omitempty" json:"vehicle_id,omitempty"`
	Status     string    `bson:"status" json:"status"`
	AssignedAt time.Time `bson:"assignedAt" json:"assigned_at"`
}

// AssignmentDetail is the joined row returned by the assignment listing.
type AssignmentDetail struct {
	ID         string    `bson:"_id" json:"id"`
	Status     string    `bson:"status" json:"status"`
	AssignedAt time.Time `bson:"assignedAt" json:"assigned_at"`
	Booking    *Booking  `bson:"booking,omitempty" json:"booking"`
	Driver     *Driver   `bson:"driver,omitempty" json:"driver"`
	Vehicle    *Vehicle  `bson:"vehicle,omitempty" json:"vehicle"`
}
