package lifecycle_test

import (
	"context"
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

func seedDriver(t *testing.T, mem *store.Memory) *models.Driver {
	t.Helper()
	d := &models.Driver{ID: uuid.NewString(), FullName: "Driver", Active: true, CreatedAt: time.Now().UTC()}
	require.NoError(t, mem.CreateDriver(context.Background(), d))
	return d
}

func TestCreateAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades a Pending booking to Assigned", func(t *testing.T) {
		engine, mem := newEngine()
		b := seedBooking(t, mem, lifecycle.BookingPending)
		d := seedDriver(t, mem)

		a, err := engine.CreateAssignment(ctx, lifecycle.CreateAssignmentInput{
			BookingID: b.ID,
			DriverID:  d.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, lifecycle.AssignmentAssigned, a.Status)
		assert.False(t, a.AssignedAt.IsZero())

		got, err := mem.GetBooking(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.BookingAssigned, got.Status)
	})

	t.Run("does not re-write an already-Assigned booking", func(t *testing.T) {
		mem := store.NewMemory()
		counting := &countingBookingUpdates{Memory: mem}
		engine := &lifecycle.Engine{Store: counting, Logger: zap.NewNop()}

		b := seedBooking(t, mem, lifecycle.BookingAssigned)
		d := seedDriver(t, mem)

		_, err := engine.CreateAssignment(ctx, lifecycle.CreateAssignmentInput{
			BookingID: b.ID,
			DriverID:  d.ID,
		})

		require.NoError(t, err)
		assert.Zero(t, counting.updates, "no duplicate status write")

		got, err := mem.GetBooking(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.BookingAssigned, got.Status)
	})

	t.Run("fails with InvalidDriver and inserts nothing", func(t *testing.T) {
		engine, mem := newEngine()
		b := seedBooking(t, mem, lifecycle.BookingPending)

		_, err := engine.CreateAssignment(ctx, lifecycle.CreateAssignmentInput{
			BookingID: b.ID,
			DriverID:  "nope",
		})

		require.ErrorIs(t, err, apperr.Invalid)
		assert.Contains(t, err.Error(), "driver_id")

		details, err := mem.ListAssignmentDetails(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, details)

		got, err := mem.GetBooking(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.BookingPending, got.Status, "no cascade on failed validation")
	})

	t.Run("fails with InvalidBooking for a missing booking", func(t *testing.T) {
		engine, mem := newEngine()
		d := seedDriver(t, mem)

		_, err := engine.CreateAssignment(ctx, lifecycle.CreateAssignmentInput{
			BookingID: "nope",
			DriverID:  d.ID,
		})

		require.ErrorIs(t, err, apperr.Invalid)
		assert.Contains(t, err.Error(), "booking_id")
	})

	t.Run("validates the vehicle only when one is given", func(t *testing.T) {
		engine, mem := newEngine()
		b := seedBooking(t, mem, lifecycle.BookingPending)
		d := seedDriver(t, mem)

		bad := "nope"
		_, err := engine.CreateAssignment(ctx, lifecycle.CreateAssignmentInput{
			BookingID: b.ID,
			DriverID:  d.ID,
			VehicleID: &bad,
		})
		require.ErrorIs(t, err, apperr.Invalid)
		assert.Contains(t, err.Error(), "vehicle_id")

		v := &models.Vehicle{ID: uuid.NewString(), Plate: "A 12345", CreatedAt: time.Now().UTC()}
		require.NoError(t, mem.CreateVehicle(ctx, v))

		a, err := engine.CreateAssignment(ctx, lifecycle.CreateAssignmentInput{
			BookingID: b.ID,
			DriverID:  d.ID,
			VehicleID: &v.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, a.VehicleID)
		assert.Equal(t, v.ID, *a.VehicleID)
	})

	t.Run("rejects an unknown initial status", func(t *testing.T) {
		engine, mem := newEngine()
		b := seedBooking(t, mem, lifecycle.BookingPending)
		d := seedDriver(t, mem)

		_, err := engine.CreateAssignment(ctx, lifecycle.CreateAssignmentInput{
			BookingID: b.ID,
			DriverID:  d.ID,
			Status:    "Lost",
		})
		require.ErrorIs(t, err, apperr.Invalid)
	})

	t.Run("requires booking_id and driver_id", func(t *testing.T) {
		engine, _ := newEngine()
		_, err := engine.CreateAssignment(ctx, lifecycle.CreateAssignmentInput{})
		require.ErrorIs(t, err, apperr.Invalid)
	})
}

// countingBookingUpdates counts booking status writes.
type countingBookingUpdates struct {
	*store.Memory
	updates int
}

func (cs *countingBookingUpdates) UpdateBookingStatus(ctx context.Context, id, status string) error {
	cs.updates++
	return cs.Memory.UpdateBookingStatus(ctx, id, status)
}
