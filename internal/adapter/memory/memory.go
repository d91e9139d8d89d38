// Package memory implements an in-memory record store for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"bmitracker/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu        sync.Mutex
	records   []domain.Record
	idCounter int64
	now       func() time.Time
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{now: time.Now}
}

// Ensure interfaces are met.
var _ domain.RecordRepository = (*DB)(nil)

// Save appends a record.
func (db *DB) Save(ctx context.Context, rec domain.Record) (domain.Record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.idCounter++
	rec.ID = db.idCounter
	if rec.Timestamp.IsZero() {
		rec.Timestamp = db.now()
	}
	// Match the SQL stores, which keep microsecond UTC timestamps.
	rec.Timestamp = rec.Timestamp.UTC().Truncate(time.Microsecond)
	db.records = append(db.records, rec)
	return rec, nil
}

// History returns a user's records ordered by timestamp, then insertion.
func (db *DB) History(ctx context.Context, userID string) ([]domain.Record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Record, 0)
	for _, r := range db.records {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].ID < result[j].ID
		}
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}

// AllUsers returns the sorted distinct user ids.
func (db *DB) AllUsers(ctx context.Context) ([]string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	seen := make(map[string]struct{})
	users := make([]string, 0)
	for _, r := range db.records {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		users = append(users, r.UserID)
	}
	sort.Strings(users)
	return users, nil
}

// Latest returns the newest record for a user, or nil.
func (db *DB) Latest(ctx context.Context, userID string) (*domain.Record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var latest *domain.Record
	for i := range db.records {
		r := &db.records[i]
		if r.UserID != userID {
			continue
		}
		if latest == nil || !r.Timestamp.Before(latest.Timestamp) {
			latest = r
		}
	}
	if latest == nil {
		return nil, nil
	}
	ret := *latest
	return &ret, nil
}

// Close is a no-op.
func (db *DB) Close() error {
	return nil
}
