package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "littlenest/database/repository/booking"
	"littlenest/models"

	"go.uber.org/zap"
)

// fakeBookingRepo is an in-memory BookingRepository. The mutex matters: the
// concurrency tests hammer it from multiple goroutines.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) GetByUser(userID string, status models.BookingStatus) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID && (status == "" || b.Status == status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByProvider(providerID string, status models.BookingStatus) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && (status == "" || b.Status == status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindConflicting(providerID, startDate, endDate string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID != providerID || !b.Status.Occupies() {
			continue
		}
		// Inclusive ranges overlap iff each starts on or before the other ends.
		if b.StartDate <= endDate && b.EndDate >= startDate {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	if b.Status != from {
		return nil, bookingRepo.ErrStaleStatus
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) UpdateNotes(id string, notes string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	b.Notes = notes
	b.UpdatedAt = time.Now()
	clone := *b
	return &clone, nil
}

// fakeProviderRepo serves providers from a map; absent ids return (nil, nil)
// like the mongo implementation.
type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func (r *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	return r.providers[id], nil
}

// fakeChildRepo knows a fixed set of child ids.
type fakeChildRepo struct {
	known map[string]bool
}

func (r *fakeChildRepo) GetByIDs(ids []string) ([]models.Child, error) {
	var out []models.Child
	for _, id := range ids {
		if r.known[id] {
			out = append(out, models.Child{ID: id, ParentID: "parent-1"})
		}
	}
	return out, nil
}

// fakeLocker is a process-local ProviderLocker with real mutual exclusion per
// provider, so the concurrency tests exercise the same discipline production
// gets from redis.
type fakeLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *fakeLocker) Acquire(_ context.Context, providerID string) (string, error) {
	l.mu.Lock()
	m, ok := l.locks[providerID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[providerID] = m
	}
	l.mu.Unlock()
	m.Lock()
	return "token", nil
}

func (l *fakeLocker) Release(_ context.Context, providerID, _ string) error {
	l.mu.Lock()
	m := l.locks[providerID]
	l.mu.Unlock()
	m.Unlock()
	return nil
}

func newTestService(providers ...*models.Provider) (*DefaultBookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	provMap := make(map[string]*models.Provider)
	for _, p := range providers {
		provMap[p.ID] = p
	}
	svc := &DefaultBookingService{
		Bookings:  repo,
		Providers: &fakeProviderRepo{providers: provMap},
		Children:  &fakeChildRepo{known: map[string]bool{"child-1": true, "child-2": true, "child-3": true}},
		Engine:    &DefaultAvailabilityEngine{Repo: repo, Logger: zap.NewNop()},
		Lock:      newFakeLocker(),
		Logger:    zap.NewNop(),
	}
	return svc, repo
}
