package lifecycle

import (
	"context"
	"fmt"
	"time"

	"delivery-ops-api-server/internal/apperr"
	"delivery-ops-api-server/internal/models"
	"delivery-ops-api-server/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine applies status changes to bookings and assignments and owns the
// cascading side effects between them. All authorization happens before the
// engine is reached.
type Engine struct {
	Store  store.Store
	Logger *zap.Logger
}

// CreateBookingInput carries caller-supplied booking fields. Status is
// optional and defaults to Pending.
type CreateBookingInput struct {
	Reference  string
	Customer   string
	Pickup     string
	Dropoff    string
	WindowFrom *time.Time
	WindowTo   *time.Time
	Status     string
}

func (e *Engine) CreateBooking(ctx context.Context, in CreateBookingInput, creator string) (*models.Booking, error) {
	if in.Reference == "" || in.Customer == "" {
		return nil, fmt.Errorf("reference and customer are required: %w", apperr.Invalid)
	}

	status := in.Status
	if status == "" {
		status = BookingPending
	}
	if !ValidBookingStatus(status) {
		return nil, fmt.Errorf("unknown booking status %q: %w", status, apperr.Invalid)
	}

	booking := &models.Booking{
		ID:         uuid.NewString(),
		Reference:  in.Reference,
		Customer:   in.Customer,
		Pickup:     in.Pickup,
		Dropoff:    in.Dropoff,
		WindowFrom: in.WindowFrom,
		WindowTo:   in.WindowTo,
		Status:     status,
		CreatedBy:  creator,
		CreatedAt:  time.Now().UTC(),
	}
	if err := e.Store.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// SetBookingStatus overwrites a booking's status. Any transition between
// known statuses is permitted; see the note on the status constants.
func (e *Engine) SetBookingStatus(ctx context.Context, id, status string) error {
	if !ValidBookingStatus(status) {
		return fmt.Errorf("unknown booking status %q: %w", status, apperr.Invalid)
	}
	return e.Store.UpdateBookingStatus(ctx, id, status)
}

// SetAssignmentStatus updates an assignment's status against the allow-list.
// Marking an assignment Delivered cascades the booking to Delivered
// regardless of the booking's current status. The cascade runs after the
// assignment write is durable; if it fails the assignment keeps its new
// status and an operator must re-trigger the booking update.
func (e *Engine) SetAssignmentStatus(ctx context.Context, id, status string) error {
	if !ValidAssignmentStatus(status) {
		return fmt.Errorf("unknown assignment status %q: %w", status, apperr.Invalid)
	}

	assignment, err := e.Store.GetAssignment(ctx, id)
	if err != nil {
		return err
	}

	if err := e.Store.UpdateAssignmentStatus(ctx, id, status); err != nil {
		return err
	}

	if status == AssignmentDelivered {
		if err := e.Store.UpdateBookingStatus(ctx, assignment.BookingID, BookingDelivered); err != nil {
			e.Logger.Error("assignment marked Delivered but booking cascade failed; re-trigger the booking status update manually",
				zap.String("assignment_id", id),
				zap.String("booking_id", assignment.BookingID),
				zap.Error(err))
		}
	}
	return nil
}
