package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"delivery-ops-api-server/internal/apperr"
	"delivery-ops-api-server/internal/lifecycle"
	"delivery-ops-api-server/internal/models"
	"delivery-ops-api-server/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEngine() (*lifecycle.Engine, *store.Memory) {
	mem := store.NewMemory()
	return &lifecycle.Engine{Store: mem, Logger: zap.NewNop()}, mem
}

func seedBooking(t *testing.T, mem *store.Memory, status string) *models.Booking {
	t.Helper()
	b := &models.Booking{
		ID:        uuid.NewString(),
		Reference: "DO-" + uuid.NewString()[:8],
		Customer:  "Acme",
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, mem.CreateBooking(context.Background(), b))
	return b
}

func seedAssignment(t *testing.T, mem *store.Memory, bookingID, status string) *models.Assignment {
	t.Helper()
	a := &models.Assignment{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		DriverID:   uuid.NewString(),
		Status:     status,
		AssignedAt: time.Now().UTC(),
	}
	require.NoError(t, mem.CreateAssignment(context.Background(), a))
	return a
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to Pending and records the creator", func(t *testing.T) {
		engine, _ := newEngine()

		booking, err := engine.CreateBooking(ctx, lifecycle.CreateBookingInput{
			Reference: "DO-1",
			Customer:  "A",
		}, "user-1")

		require.NoError(t, err)
		assert.Equal(t, lifecycle.BookingPending, booking.Status)
		assert.Equal(t, "user-1", booking.CreatedBy)
		assert.NotEmpty(t, booking.ID)
		assert.False(t, booking.CreatedAt.IsZero())
	})

	t.Run("keeps an explicit status", func(t *testing.T) {
		engine, _ := newEngine()

		booking, err := engine.CreateBooking(ctx, lifecycle.CreateBookingInput{
			Reference: "DO-2",
			Customer:  "A",
			Status:    lifecycle.BookingAssigned,
		}, "user-1")

		require.NoError(t, err)
		assert.Equal(t, lifecycle.BookingAssigned, booking.Status)
	})

	t.Run("rejects missing reference or customer", func(t *testing.T) {
		engine, mem := newEngine()

		_, err := engine.CreateBooking(ctx, lifecycle.CreateBookingInput{Customer: "A"}, "u")
		require.ErrorIs(t, err, apperr.Invalid)

		_, err = engine.CreateBooking(ctx, lifecycle.CreateBookingInput{Reference: "DO-3"}, "u")
		require.ErrorIs(t, err, apperr.Invalid)

		bookings, err := mem.ListBookings(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, bookings)
	})

	t.Run("rejects an unknown explicit status", func(t *testing.T) {
		engine, _ := newEngine()

		_, err := engine.CreateBooking(ctx, lifecycle.CreateBookingInput{
			Reference: "DO-4",
			Customer:  "A",
			Status:    "Teleported",
		}, "u")
		require.ErrorIs(t, err, apperr.Invalid)
	})
}

func TestSetBookingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites between known statuses, including backwards", func(t *testing.T) {
		engine, mem := newEngine()
		b := seedBooking(t, mem, lifecycle.BookingDelivered)

		require.NoError(t, engine.SetBookingStatus(ctx, b.ID, lifecycle.BookingPending))

		got, err := mem.GetBooking(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.BookingPending, got.Status)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		engine, mem := newEngine()
		b := seedBooking(t, mem, lifecycle.BookingPending)

		err := engine.SetBookingStatus(ctx, b.ID, "Misplaced")
		require.ErrorIs(t, err, apperr.Invalid)

		got, err := mem.GetBooking(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.BookingPending, got.Status)
	})

	t.Run("returns NotFound for a missing booking", func(t *testing.T) {
		engine, _ := newEngine()
		err := engine.SetBookingStatus(ctx, "nope", lifecycle.BookingCancelled)
		require.ErrorIs(t, err, apperr.NotFound)
	})
}

func TestSetAssignmentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivered cascades the booking regardless of its prior status", func(t *testing.T) {
		for _, prior := range []string{
			lifecycle.BookingPending,
			lifecycle.BookingAssigned,
			lifecycle.BookingCancelled,
		} {
			engine, mem := newEngine()
			b := seedBooking(t, mem, prior)
			a := seedAssignment(t, mem, b.ID, lifecycle.AssignmentPickedUp)

			require.NoError(t, engine.SetAssignmentStatus(ctx, a.ID, lifecycle.AssignmentDelivered))

			gotA, err := mem.GetAssignment(ctx, a.ID)
			require.NoError(t, err)
			assert.Equal(t, lifecycle.AssignmentDelivered, gotA.Status)

			gotB, err := mem.GetBooking(ctx, b.ID)
			require.NoError(t, err)
			assert.Equal(t, lifecycle.BookingDelivered, gotB.Status, "prior status %s", prior)
		}
	})

	t.Run("non-Delivered statuses do not touch the booking", func(t *testing.T) {
		engine, mem := newEngine()
		b := seedBooking(t, mem, lifecycle.BookingAssigned)
		a := seedAssignment(t, mem, b.ID, lifecycle.AssignmentAssigned)

		require.NoError(t, engine.SetAssignmentStatus(ctx, a.ID, lifecycle.AssignmentDeclined))

		gotB, err := mem.GetBooking(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.BookingAssigned, gotB.Status)
	})

	t.Run("rejects a status outside the allow-list and leaves the assignment unmodified", func(t *testing.T) {
		engine, mem := newEngine()
		b := seedBooking(t, mem, lifecycle.BookingAssigned)
		a := seedAssignment(t, mem, b.ID, lifecycle.AssignmentAssigned)

		err := engine.SetAssignmentStatus(ctx, a.ID, "Unknown")
		require.ErrorIs(t, err, apperr.Invalid)

		got, err := mem.GetAssignment(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.AssignmentAssigned, got.Status)
	})

	t.Run("returns NotFound for a missing assignment", func(t *testing.T) {
		engine, _ := newEngine()
		err := engine.SetAssignmentStatus(ctx, "nope", lifecycle.AssignmentDelivered)
		require.ErrorIs(t, err, apperr.NotFound)
	})

	t.Run("a failed cascade does not fail the assignment update", func(t *testing.T) {
		mem := store.NewMemory()
		failing := &failingBookingUpdates{Memory: mem}
		engine := &lifecycle.Engine{Store: failing, Logger: zap.NewNop()}

		b := seedBooking(t, mem, lifecycle.BookingAssigned)
		a := seedAssignment(t, mem, b.ID, lifecycle.AssignmentPickedUp)
		failing.fail = true

		require.NoError(t, engine.SetAssignmentStatus(ctx, a.ID, lifecycle.AssignmentDelivered))

		gotA, err := mem.GetAssignment(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.AssignmentDelivered, gotA.Status)

		gotB, err := mem.GetBooking(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.BookingAssigned, gotB.Status, "booking stays stale until re-triggered")
	})
}

// failingBookingUpdates makes booking status writes fail on demand.
type failingBookingUpdates struct {
	*store.Memory
	fail bool
}

func (f *failingBookingUpdates) UpdateBookingStatus(ctx context.Context, id, status string) error {
	if f.fail {
		return errors.New("write timeout")
	}
	return f.Memory.UpdateBookingStatus(ctx, id, status)
}
