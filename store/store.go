// Package store is the client-side resource cache: appointments, time
// slots, equipment and customers fetched from the booking API, kept in
// memory for dashboard views and persisted as one snapshot so a restart
// does not begin empty. It is a disposable projection of backend state;
// a periodic refresh replaces its contents wholesale.
package store

import (
	"context"
	"sync"
	"time"

	"studiobook/models"
	"studiobook/utils"

	"go.uber.org/zap"
)

// Options carries the knobs for building a Store.
type Options struct {
	// Snapshots persists the cache between runs; nil keeps the cache
	// memory-only.
	Snapshots SnapshotStore
	Logger    *zap.Logger
}

// Store holds the cached collections behind one RW mutex. Each operation
// runs to completion before another observes its effects; there are no
// transactions spanning calls.
type Store struct {
	mu           sync.RWMutex
	appointments []models.Appointment
	timeSlots    []models.TimeSlot
	equipment    []models.Equipment
	customers    []models.Customer

	snapshots SnapshotStore
	logger    *zap.Logger
}

// New builds an empty Store.
func New(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &Store{
		snapshots: opts.Snapshots,
		logger:    logger,
	}
}

// Load hydrates the cache from the snapshot store. Starting without a
// stored snapshot is not an error.
func (s *Store) Load(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		return nil
	}

	s.mu.Lock()
	s.appointments = snap.Appointments
	s.timeSlots = snap.TimeSlots
	s.equipment = snap.Equipment
	s.customers = snap.Customers
	s.mu.Unlock()

	s.logger.Info("Cache loaded",
		zap.Int("appointments", len(snap.Appointments)),
		zap.Int("timeSlots", len(snap.TimeSlots)),
		zap.Int("equipment", len(snap.Equipment)),
		zap.Int("customers", len(snap.Customers)),
		zap.Time("savedAt", snap.SavedAt))
	return nil
}

// Flush writes the snapshot now and reports the outcome, unlike the
// best-effort persistence mutations do.
func (s *Store) Flush(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	s.mu.RLock()
	snap := s.snapshotLocked()
	s.mu.RUnlock()
	return s.snapshots.Save(ctx, snap)
}

// Reset empties every collection and deletes the stored snapshot.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.appointments = nil
	s.timeSlots = nil
	s.equipment = nil
	s.customers = nil
	s.mu.Unlock()

	if s.snapshots == nil {
		return nil
	}
	return s.snapshots.Clear(ctx)
}

// Counts returns the size of each collection, for logging and health
// output.
func (s *Store) Counts() (appointments, timeSlots, equipment, customers int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments), len(s.timeSlots), len(s.equipment), len(s.customers)
}

// snapshotLocked copies the collections into a Snapshot. Callers hold at
// least the read lock.
func (s *Store) snapshotLocked() *Snapshot {
	snap := &Snapshot{
		Appointments: make([]models.Appointment, len(s.appointments)),
		TimeSlots:    make([]models.TimeSlot, len(s.timeSlots)),
		Equipment:    make([]models.Equipment, len(s.equipment)),
		Customers:    make([]models.Customer, len(s.customers)),
		SavedAt:      time.Now(),
	}
	copy(snap.Appointments, s.appointments)
	copy(snap.TimeSlots, s.timeSlots)
	copy(snap.Equipment, s.equipment)
	copy(snap.Customers, s.customers)
	return snap
}

// persistLocked writes the snapshot after a mutation. Failures are
// logged, never surfaced: the cache stays authoritative in memory and the
// next successful write heals the file. Callers hold the write lock.
func (s *Store) persistLocked(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(ctx, s.snapshotLocked()); err != nil {
		s.logger.Warn("Failed to persist cache snapshot", zap.Error(err))
	}
}
