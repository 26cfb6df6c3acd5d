package store

import (
	"context"
	"errors"
	"fmt"

	"delivery-ops-api-server/internal/apperr"
	"delivery-ops-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	colBookings     = "bookings"
	colDrivers      = "drivers"
	colVehicles     = "vehicles"
	colAssignments  = "assignments"
	colProofs       = "delivery_proofs"
	colProfiles     = "profiles"
	colBlockedSlots = "blocked_slots"
)

// Mongo implements Store on top of a mongo database.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func wrapNotFound(err error, what, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", what, id, apperr.NotFound)
	}
	return err
}

// --- Bookings ---

func (m *Mongo) CreateBooking(ctx context.Context, b *models.Booking) error {
	_, err := m.db.Collection(colBookings).InsertOne(ctx, b)
	return err
}

func (m *Mongo) ListBookings(ctx context.Context, limit int64) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := m.db.Collection(colBookings).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (m *Mongo) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := m.db.Collection(colBookings).FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		return nil, wrapNotFound(err, "booking", id)
	}
	return &b, nil
}

func (m *Mongo) UpdateBookingStatus(ctx context.Context, id, status string) error {
	res, err := m.db.Collection(colBookings).UpdateOne(ctx,
		bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s: %w", id, apperr.NotFound)
	}
	return nil
}

// --- Drivers ---

func (m *Mongo) CreateDriver(ctx context.Context, d *models.Driver) error {
	_, err := m.db.Collection(colDrivers).InsertOne(ctx, d)
	return err
}

func (m *Mongo) GetDriver(ctx context.Context, id string) (*models.Driver, error) {
	var d models.Driver
	err := m.db.Collection(colDrivers).FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		return nil, wrapNotFound(err, "driver", id)
	}
	return &d, nil
}

func (m *Mongo) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fullName", Value: 1}})
	cursor, err := m.db.Collection(colDrivers).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	drivers := []models.Driver{}
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (m *Mongo) CountActiveDrivers(ctx context.Context) (int64, error) {
	return m.db.Collection(colDrivers).CountDocuments(ctx, bson.M{"active": true})
}

// --- Vehicles ---

func (m *Mongo) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	_, err := m.db.Collection(colVehicles).InsertOne(ctx, v)
	return err
}

func (m *Mongo) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	var v models.Vehicle
	err := m.db.Collection(colVehicles).FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if err != nil {
		return nil, wrapNotFound(err, "vehicle", id)
	}
	return &v, nil
}

func (m *Mongo) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "plate", Value: 1}})
	cursor, err := m.db.Collection(colVehicles).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// --- Assignments ---

func (m *Mongo) CreateAssignment(ctx context.Context, a *models.Assignment) error {
	_, err := m.db.Collection(colAssignments).InsertOne(ctx, a)
	return err
}

func (m *Mongo) GetAssignment(ctx context.Context, id string) (*models.Assignment, error) {
	var a models.Assignment
	err := m.db.Collection(colAssignments).FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		return nil, wrapNotFound(err, "assignment", id)
	}
	return &a, nil
}

func (m *Mongo) UpdateAssignmentStatus(ctx context.Context, id, status string) error {
	res, err := m.db.Collection(colAssignments).UpdateOne(ctx,
		bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("assignment %s: %w", id, apperr.NotFound)
	}
	return nil
}

// ListAssignmentDetails returns assignments newest-first with their booking,
// driver and vehicle joined in a single aggregation round-trip.
func (m *Mongo) ListAssignmentDetails(ctx context.Context, limit int64) ([]models.AssignmentDetail, error) {
	lookup := func(from, local string) bson.D {
		return bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "localField", Value: local},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: local[:len(local)-2]}, // bookingID -> booking
		}}}
	}
	unwind := func(path string) bson.D {
		return bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + path},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "assignedAt", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		lookup(colBookings, "bookingID"),
		unwind("booking"),
		lookup(colDrivers, "driverID"),
		unwind("driver"),
		lookup(colVehicles, "vehicleID"),
		unwind("vehicle"),
	}

	cursor, err := m.db.Collection(colAssignments).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	details := []models.AssignmentDetail{}
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// --- Delivery proofs ---

func (m *Mongo) CreateProof(ctx context.Context, p *models.DeliveryProof) error {
	_, err := m.db.Collection(colProofs).InsertOne(ctx, p)
	return err
}

func (m *Mongo) ListProofsByBooking(ctx context.Context, bookingID string) ([]models.DeliveryProof, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.db.Collection(colProofs).Find(ctx, bson.M{"bookingID": bookingID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	proofs := []models.DeliveryProof{}
	if err := cursor.All(ctx, &proofs); err != nil {
		return nil, err
	}
	return proofs, nil
}

// --- Profiles ---

func (m *Mongo) CreateProfile(ctx context.Context, p *models.Profile) error {
	_, err := m.db.Collection(colProfiles).InsertOne(ctx, p)
	return err
}

func (m *Mongo) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	var p models.Profile
	err := m.db.Collection(colProfiles).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return nil, wrapNotFound(err, "profile", id)
	}
	return &p, nil
}

func (m *Mongo) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var p models.Profile
	err := m.db.Collection(colProfiles).FindOne(ctx, bson.M{"email": email}).Decode(&p)
	if err != nil {
		return nil, wrapNotFound(err, "profile", email)
	}
	return &p, nil
}

// --- Blocked slots ---

func (m *Mongo) CreateBlockedSlot(ctx context.Context, s *models.BlockedSlot) error {
	_, err := m.db.Collection(colBlockedSlots).InsertOne(ctx, s)
	return err
}

func (m *Mongo) ListBlockedSlots(ctx context.Context) ([]models.BlockedSlot, error) {
	cursor, err := m.db.Collection(colBlockedSlots).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	slots := []models.BlockedSlot{}
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// --- Aggregates ---

func (m *Mongo) CountBookingsByStatus(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := m.db.Collection(colBookings).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(rows))
	for _, r := range rows {
		byStatus[r.Status] = r.Count
	}
	return byStatus, nil
}
