package models

import "time"

// Driver is soft-deactivated via Active once referenced by an assignment,
// never deleted.
type Driver struct {
	ID        string    `bson:"_id" json:"id"`
	FullName  string    `bson:"fullName" json:"full_name"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	LicenseNo string    `bson:"licenseNo,omitempty" json:"license_no,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
