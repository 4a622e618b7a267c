// File: studiobook/store/snapshot.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"studiobook/models"
	"studiobook/utils"

	"github.com/go-redis/redis/v8"
)

// Snapshot is the single document the cache persists: all four
// collections in insertion order, under one named entry.
type Snapshot struct {
	Appointments []models.Appointment `json:"appointments"`
	TimeSlots    []models.TimeSlot    `json:"time_slots"`
	Equipment    []models.Equipment   `json:"equipment"`
	Customers    []models.Customer    `json:"customers"`
	SavedAt      time.Time            `json:"saved_at"`
}

// SnapshotStore persists the cache between runs.
type SnapshotStore interface {
	// Load returns the stored snapshot, or nil when none exists.
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
	Clear(ctx context.Context) error
}

// FileSnapshotStore keeps the snapshot in one JSON file, written
// atomically via a temp file rename.
type FileSnapshotStore struct {
	Path string
}

func NewFileSnapshotStore(path string) *FileSnapshotStore {
	return &FileSnapshotStore{Path: path}
}

func (s *FileSnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache file: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding cache file: %w", err)
	}
	return &snap, nil
}

func (s *FileSnapshotStore) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	if err := os.Rename(tmp, filepath.Clean(s.Path)); err != nil {
		return fmt.Errorf("replacing cache file: %w", err)
	}
	return nil
}

func (s *FileSnapshotStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing cache file: %w", err)
	}
	return nil
}

// RedisSnapshotStore keeps the snapshot under a single Redis key with a
// TTL, for agents that share a cache host.
type RedisSnapshotStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, key: utils.SnapshotCacheKey, ttl: ttl}
}

func (s *RedisSnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, snap *Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, b, s.ttl).Err()
}

func (s *RedisSnapshotStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
