package handler

// In-memory store implementations used by the handler tests. memBookingStore
// serializes Create under a mutex exactly the way the unique key on
// (bus_id, seat_number) serializes concurrent inserts, so the concurrency
// tests exercise the same winner-takes-seat semantics as the database.

import (
	"context"
	"sort"
	"sync"

	"github.com/iliyamo/bus-seat-booking/internal/repository"
)

type memBusStore struct {
	buses map[uint64]repository.Bus
}

func newMemBusStore(buses ...repository.Bus) *memBusStore {
	m := &memBusStore{buses: make(map[uint64]repository.Bus)}
	for _, b := range buses {
		m.buses[b.ID] = b
	}
	return m
}

func (m *memBusStore) ListAll(ctx context.Context) ([]repository.Bus, error) {
	out := make([]repository.Bus, 0, len(m.buses))
	for _, b := range m.buses {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memBusStore) GetByID(ctx context.Context, id uint64) (repository.Bus, error) {
	b, ok := m.buses[id]
	if !ok {
		return repository.Bus{}, repository.ErrBusNotFound
	}
	return b, nil
}

type seatKey struct {
	busID uint64
	seat  uint32
}

type memBookingStore struct {
	mu     sync.Mutex
	nextID uint64
	taken  map[seatKey]uint64 // seat -> owning user
}

func newMemBookingStore() *memBookingStore {
	return &memBookingStore{taken: make(map[seatKey]uint64)}
}

func (m *memBookingStore) Create(ctx context.Context, busID, userID uint64, seatNumber uint32) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := seatKey{busID: busID, seat: seatNumber}
	if _, ok := m.taken[k]; ok {
		return 0, repository.ErrSeatTaken
	}
	m.taken[k] = userID
	m.nextID++
	return m.nextID, nil
}

func (m *memBookingStore) OccupiedSeats(ctx context.Context, busID uint64) ([]repository.OccupiedSeat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repository.OccupiedSeat, 0)
	for k, uid := range m.taken {
		if k.busID == busID {
			out = append(out, repository.OccupiedSeat{SeatNumber: k.seat, UserID: uid})
		}
	}
	return out, nil
}

type memUserStore struct {
	mu   sync.Mutex
	ids  map[string]uint64
	next uint64
}

func newMemUserStore() *memUserStore {
	return &memUserStore{ids: make(map[string]uint64)}
}

func (m *memUserStore) UpsertByEmail(ctx context.Context, email string) (repository.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.ids[email]; ok {
		return repository.User{ID: id, Email: email}, nil
	}
	m.next++
	m.ids[email] = m.next
	return repository.User{ID: m.next, Email: email}, nil
}
