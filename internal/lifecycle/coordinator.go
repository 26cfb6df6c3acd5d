package lifecycle

import (
	"context"
	"fmt"
	"time"

	"delivery-ops-api-server/internal/apperr"
	"delivery-ops-api-server/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CreateAssignmentInput links a booking to a driver and, optionally, a
// vehicle. Status defaults to Assigned.
type CreateAssignmentInput struct {
	BookingID string
	DriverID  string
	VehicleID *string
	Status    string
}

// CreateAssignment validates that the referenced rows exist, inserts the
// assignment and cascades the booking to Assigned if it is not already. The
// three existence checks have no ordering dependency and run concurrently,
// failing fast on the first miss. The insert happens before the cascade so a
// cascade failure never loses the assignment.
func (e *Engine) CreateAssignment(ctx context.Context, in CreateAssignmentInput) (*models.Assignment, error) {
	if in.BookingID == "" || in.DriverID == "" {
		return nil, fmt.Errorf("booking_id and driver_id are required: %w", apperr.Invalid)
	}

	status := in.Status
	if status == "" {
		status = AssignmentAssigned
	}
	if !ValidAssignmentStatus(status) {
		return nil, fmt.Errorf("unknown assignment status %q: %w", status, apperr.Invalid)
	}

	var booking *models.Booking
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := e.Store.GetBooking(gctx, in.BookingID)
		if err != nil {
			return fmt.Errorf("invalid booking_id: %w", apperr.Invalid)
		}
		booking = b
		return nil
	})
	g.Go(func() error {
		if _, err := e.Store.GetDriver(gctx, in.DriverID); err != nil {
			return fmt.Errorf("invalid driver_id: %w", apperr.Invalid)
		}
		return nil
	})
	g.Go(func() error {
		if in.VehicleID == nil {
			return nil
		}
		if _, err := e.Store.GetVehicle(gctx, *in.VehicleID); err != nil {
			return fmt.Errorf("invalid vehicle_id: %w", apperr.Invalid)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		ID:         uuid.NewString(),
		BookingID:  in.BookingID,
		DriverID:   in.DriverID,
		VehicleID:  in.VehicleID,
		Status:     status,
		AssignedAt: time.Now().UTC(),
	}
	if err := e.Store.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	// Idempotent: an already-Assigned booking is left alone.
	if booking.Status != BookingAssigned {
		if err := e.Store.UpdateBookingStatus(ctx, in.BookingID, BookingAssigned); err != nil {
			e.Logger.Error("assignment created but booking cascade failed; re-trigger the booking status update manually",
				zap.String("assignment_id", assignment.ID),
				zap.String("booking_id", in.BookingID),
				zap.Error(err))
		}
	}
	return assignment, nil
}
