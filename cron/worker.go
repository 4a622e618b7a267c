// File: studiobook/cron/worker.go

// Package cron keeps the local resource cache in step with the booking
// API by re-fetching the configured studio's collections on a schedule.
package cron

import (
	"context"
	"errors"
	"sync"
	"time"

	"studiobook/client"
	"studiobook/models"
	"studiobook/store"
	"studiobook/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ErrNoToken is returned when a refresh runs without an authenticated
// client; the owner-scoped lists all require a bearer token.
var ErrNoToken = errors.New("cache refresh requires an authenticated client")

// ErrNoStudio is returned when neither a studio id nor a slug is configured.
var ErrNoStudio = errors.New("no studio configured for cache refresh")

// refreshTimeout bounds one full refresh pass.
const refreshTimeout = 2 * time.Minute

// RefresherConfig carries the knobs for building a Refresher.
type RefresherConfig struct {
	// Spec is a cron expression ("*/5 * * * *", "@every 10m"). Empty
	// leaves scheduling to the caller; RefreshOnce still works.
	Spec string
	// StudioID pins the studio to sync. When empty, StudioSlug is
	// resolved through the public profile endpoint on first refresh.
	StudioID   string
	StudioSlug string
	Logger     *zap.Logger
}

// Refresher periodically replaces the cached collections with the
// backend's view. A failed fetch keeps the previous data for that
// collection; divergence heals on the next successful pass.
type Refresher struct {
	api    *client.Client
	cache  *store.Store
	cfg    RefresherConfig
	logger *zap.Logger

	scheduler *cron.Cron

	mu       sync.Mutex
	studioID string
}

// NewRefresher wires a Refresher; Start launches the schedule.
func NewRefresher(api *client.Client, cache *store.Store, cfg RefresherConfig) *Refresher {
	logger := cfg.Logger
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &Refresher{
		api:      api,
		cache:    cache,
		cfg:      cfg,
		logger:   logger,
		studioID: cfg.StudioID,
	}
}

// resolveStudioID returns the configured studio id, resolving the slug
// through the public endpoint once and memoizing the result.
func (r *Refresher) resolveStudioID(ctx context.Context) (string, error) {
	r.mu.Lock()
	id := r.studioID
	r.mu.Unlock()
	if id != "" {
		return id, nil
	}
	if r.cfg.StudioSlug == "" {
		return "", ErrNoStudio
	}

	studio, err := r.api.GetStudioBySlug(ctx, r.cfg.StudioSlug)
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	r.studioID = studio.ID
	r.mu.Unlock()
	return studio.ID, nil
}

// RefreshOnce runs one full sync pass: time slots, appointments (with
// customers lifted from their snapshots), and equipment. Collections are
// replaced independently, so one failed fetch leaves that collection's
// previous data in place.
func (r *Refresher) RefreshOnce(ctx context.Context) error {
	studioID, err := r.resolveStudioID(ctx)
	if err != nil {
		r.logger.Warn("Cache refresh could not resolve studio", zap.Error(err))
		return err
	}
	if !r.api.Authenticated() {
		r.logger.Warn("Skipping cache refresh", zap.Error(ErrNoToken))
		return ErrNoToken
	}

	var firstErr error

	slots, err := r.api.ListTimeSlots(ctx, studioID, "", "")
	if err != nil {
		r.logger.Warn("Failed to refresh time slots", zap.Error(err))
		firstErr = err
	} else {
		r.cache.SetTimeSlots(ctx, slots)
	}

	appointments, err := r.api.ListAppointments(ctx, models.AppointmentFilter{StudioID: studioID})
	if err != nil {
		r.logger.Warn("Failed to refresh appointments", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	} else {
		r.cache.SetAppointments(ctx, appointments)
		for _, appt := range appointments {
			if appt.Customer != nil {
				r.cache.UpsertCustomer(ctx, *appt.Customer)
			}
		}
	}

	equipment, err := r.api.ListEquipment(ctx, studioID)
	if err != nil {
		r.logger.Warn("Failed to refresh equipment", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	} else {
		r.cache.SetEquipment(ctx, equipment)
	}

	if firstErr == nil {
		appts, ts, eq, customers := r.cache.Counts()
		r.logger.Info("Cache refreshed",
			zap.String("studioID", studioID),
			zap.Int("appointments", appts),
			zap.Int("timeSlots", ts),
			zap.Int("equipment", eq),
			zap.Int("customers", customers),
		)
	}
	return firstErr
}

// Start launches the cron schedule. It is a no-op when Spec is empty.
func (r *Refresher) Start() error {
	if r.cfg.Spec == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.scheduler != nil {
		return errors.New("refresher already started")
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(r.cfg.Spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		// Errors are logged inside; the next tick retries.
		_ = r.RefreshOnce(ctx)
	})
	if err != nil {
		return err
	}

	r.scheduler = scheduler
	scheduler.Start()
	r.logger.Info("Cache refresh scheduler started", zap.String("spec", r.cfg.Spec))
	return nil
}

// Stop halts the schedule and waits for an in-flight refresh to finish.
func (r *Refresher) Stop() {
	r.mu.Lock()
	scheduler := r.scheduler
	r.scheduler = nil
	r.mu.Unlock()

	if scheduler == nil {
		return
	}
	<-scheduler.Stop().Done()
	r.logger.Info("Cache refresh scheduler stopped")
}
