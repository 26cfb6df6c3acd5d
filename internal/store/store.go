package store

import (
	"context"

	"delivery-ops-api-server/internal/models"
)

// Store is the single source of truth for all entities. Implementations must
// return apperr.NotFound (wrapped or bare) when a looked-up id does not exist.
// Conflicting writes are serialized by the storage layer; callers do no
// application-level locking.
type Store interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
	ListBookings(ctx context.Context, limit int64) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id, status string) error

	CreateDriver(ctx context.Context, d *models.Driver) error
	GetDriver(ctx context.Context, id string) (*models.Driver, error)
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	CountActiveDrivers(ctx context.Context) (int64, error)

	CreateVehicle(ctx context.Context, v *models.Vehicle) error
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)

	CreateAssignment(ctx context.Context, a *models.Assignment) error
	GetAssignment(ctx context.Context, id string) (*models.Assignment, error)
	UpdateAssignmentStatus(ctx context.Context, id, status string) error
	ListAssignmentDetails(ctx context.Context, limit int64) ([]models.AssignmentDetail, error)

	CreateProof(ctx context.Context, p *models.DeliveryProof) error
	ListProofsByBooking(ctx context.Context, bookingID string) ([]models.DeliveryProof, error)

	CreateProfile(ctx context.Context, p *models.Profile) error
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)

	CreateBlockedSlot(ctx context.Context, s *models.BlockedSlot) error
	ListBlockedSlots(ctx context.Context) ([]models.BlockedSlot, error)

	CountBookingsByStatus(ctx context.Context) (map[string]int64, error)
}
