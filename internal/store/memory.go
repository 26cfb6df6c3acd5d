package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"delivery-ops-api-server/internal/apperr"
	"delivery-ops-api-server/internal/models"
)

// Memory is an in-process Store used by tests. It mirrors the mongo
// implementation's ordering and not-found semantics.
type Memory struct {
	mu           sync.RWMutex
	bookings     map[string]models.Booking
	drivers      map[string]models.Driver
	vehicles     map[string]models.Vehicle
	assignments  map[string]models.Assignment
	proofs       map[string]models.DeliveryProof
	profiles     map[string]models.Profile
	blockedSlots map[string]models.BlockedSlot
}

func NewMemory() *Memory {
	return &Memory{
		bookings:     map[string]models.Booking{},
		drivers:      map[string]models.Driver{},
		vehicles:     map[string]models.Vehicle{},
		assignments:  map[string]models.Assignment{},
		proofs:       map[string]models.DeliveryProof{},
		profiles:     map[string]models.Profile{},
		blockedSlots: map[string]models.BlockedSlot{},
	}
}

func notFound(what, id string) error {
	return fmt.Errorf("%s %s: %w", what, id, apperr.NotFound)
}

func (m *Memory) CreateBooking(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[b.ID] = *b
	return nil
}

func (m *Memory) ListBookings(_ context.Context, limit int64) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, notFound("booking", id)
	}
	return &b, nil
}

func (m *Memory) UpdateBookingStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return notFound("booking", id)
	}
	b.Status = status
	m.bookings[id] = b
	return nil
}

func (m *Memory) CreateDriver(_ context.Context, d *models.Driver) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[d.ID] = *d
	return nil
}

func (m *Memory) GetDriver(_ context.Context, id string) (*models.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drivers[id]
	if !ok {
		return nil, notFound("driver", id)
	}
	return &d, nil
}

func (m *Memory) ListDrivers(_ context.Context) ([]models.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Driver, 0, len(m.drivers))
	for _, d := range m.drivers {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (m *Memory) CountActiveDrivers(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, d := range m.drivers {
		if d.Active {
			n++
		}
	}
	return n, nil
}

func (m *Memory) CreateVehicle(_ context.Context, v *models.Vehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vehicles[v.ID] = *v
	return nil
}

func (m *Memory) GetVehicle(_ context.Context, id string) (*models.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vehicles[id]
	if !ok {
		return nil, notFound("vehicle", id)
	}
	return &v, nil
}

func (m *Memory) ListVehicles(_ context.Context) ([]models.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Vehicle, 0, len(m.vehicles))
	for _, v := range m.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Plate < out[j].Plate })
	return out, nil
}

func (m *Memory) CreateAssignment(_ context.Context, a *models.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignments[a.ID] = *a
	return nil
}

func (m *Memory) GetAssignment(_ context.Context, id string) (*models.Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assignments[id]
	if !ok {
		return nil, notFound("assignment", id)
	}
	return &a, nil
}

func (m *Memory) UpdateAssignmentStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assignments[id]
	if !ok {
		return notFound("assignment", id)
	}
	a.Status = status
	m.assignments[id] = a
	return nil
}

func (m *Memory) ListAssignmentDetails(_ context.Context, limit int64) ([]models.AssignmentDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.AssignmentDetail, 0, len(m.assignments))
	for _, a := range m.assignments {
		detail := models.AssignmentDetail{ID: a.ID, Status: a.Status, AssignedAt: a.AssignedAt}
		if b, ok := m.bookings[a.BookingID]; ok {
			b := b
			detail.Booking = &b
		}
		if d, ok := m.drivers[a.DriverID]; ok {
			d := d
			detail.Driver = &d
		}
		if a.VehicleID != nil {
			if v, ok := m.vehicles[*a.VehicleID]; ok {
				v := v
				detail.Vehicle = &v
			}
		}
		out = append(out, detail)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignedAt.After(out[j].AssignedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) CreateProof(_ context.Context, p *models.DeliveryProof) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.proofs[p.ID] = *p
	return nil
}

func (m *Memory) ListProofsByBooking(_ context.Context, bookingID string) ([]models.DeliveryProof, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.DeliveryProof{}
	for _, p := range m.proofs {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) CreateProfile(_ context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.ID] = *p
	return nil
}

func (m *Memory) GetProfile(_ context.Context, id string) (*models.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, notFound("profile", id)
	}
	return &p, nil
}

func (m *Memory) GetProfileByEmail(_ context.Context, email string) (*models.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.profiles {
		if p.Email == email {
			p := p
			return &p, nil
		}
	}
	return nil, notFound("profile", email)
}

func (m *Memory) CreateBlockedSlot(_ context.Context, s *models.BlockedSlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blockedSlots[s.ID] = *s
	return nil
}

func (m *Memory) ListBlockedSlots(_ context.Context) ([]models.BlockedSlot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.BlockedSlot, 0, len(m.blockedSlots))
	for _, s := range m.blockedSlots {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) CountBookingsByStatus(_ context.Context) (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	byStatus := map[string]int64{}
	for _, b := range m.bookings {
		byStatus[b.Status]++
	}
	return byStatus, nil
}
