// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// Record is one persisted BMI observation for a user.
type Record struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	WeightKg  float64   `json:"weightKg"`
	HeightM   float64   `json:"heightM"`
	BMI       float64   `json:"bmi"`
	Category  Category  `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRecord builds an unsaved record for userID from a computation result.
func NewRecord(userID string, r Result) Record {
	return Record{
		UserID:   userID,
		WeightKg: r.WeightKg,
		HeightM:  r.HeightM,
		BMI:      r.BMI,
		Category: r.Category,
	}
}

// RecordRepository is the port for the append-only measurement store.
type RecordRepository interface {
	// Save appends rec and returns it with ID and Timestamp set. A zero
	// Timestamp is replaced by the current time.
	Save(ctx context.Context, rec Record) (Record, error)
	// History returns userID's records ordered by timestamp ascending.
	History(ctx context.Context, userID string) ([]Record, error)
	// AllUsers returns the distinct user ids in the store, sorted.
	AllUsers(ctx context.Context) ([]string, error)
	// Latest returns userID's newest record or nil.
	Latest(ctx context.Context, userID string) (*Record, error)
	Close() error
}
