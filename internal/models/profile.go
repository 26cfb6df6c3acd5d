package models

import "time"

// Roles gating mutating operations. Everyone else is unprivileged.
const (
	RoleAdmin            = "admin"
	RoleWarehouseManager = "warehouse-manager"
)

// Profile keys the caller identity to a role. The role is always read from
// here, never from token claims, so a role change takes effect immediately.
type Profile struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	FullName  string    `bson:"fullName" json:"full_name"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
