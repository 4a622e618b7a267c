// File: utils/constants.go
package utils

import "time"

// SnapshotCacheKey is the Redis key holding the serialized resource cache.
const SnapshotCacheKey = "studiobook:cache"

// SnapshotCacheTTL is the time-to-live for the Redis cache snapshot.
const SnapshotCacheTTL = 24 * time.Hour

// Wire layouts used by the booking API.
const (
	DateLayout        = "2006-01-02"
	TimeLayout        = "15:04"
	TimeLayoutSeconds = "15:04:05"
)

// Display layouts used by the formatting helpers.
const (
	DisplayDateLayout = "January 2, 2006"
	DisplayTimeLayout = "3:04 PM"
)
