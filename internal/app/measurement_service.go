// Package app holds the application services shared by the CLI and web shells.
package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"bmitracker/internal/domain"
	"bmitracker/internal/metrics"

	"go.uber.org/zap"
)

// MeasurementService encapsulates the compute, record and history use cases.
type MeasurementService struct {
	repo    domain.RecordRepository
	metrics *metrics.Recorder
	log     *zap.Logger
	now     func() time.Time

	// mu serializes timestamp assignment and save.
	mu sync.Mutex
}

// NewMeasurementService creates a MeasurementService backed by the given
// repository. rec and log may be nil.
func NewMeasurementService(repo domain.RecordRepository, rec *metrics.Recorder, log *zap.Logger) *MeasurementService {
	if log == nil {
		log = zap.NewNop()
	}
	return &MeasurementService{repo: repo, metrics: rec, log: log, now: time.Now}
}

// WithClock replaces the service clock. Used by tests.
func (s *MeasurementService) WithClock(now func() time.Time) *MeasurementService {
	s.now = now
	return s
}

// Calculate computes BMI and category without touching the store.
func (s *MeasurementService) Calculate(weightKg, heightM float64) (domain.Result, error) {
	res, err := domain.Compute(weightKg, heightM)
	if err != nil {
		s.metrics.ObserveFailure("calculate", err)
		return domain.Result{}, err
	}
	s.metrics.ObserveComputation(res)
	return res, nil
}

// Record computes BMI for userID and appends the result to the store. The
// timestamp is strictly after the user's latest stored record.
func (s *MeasurementService) Record(ctx context.Context, userID string, weightKg, heightM float64) (domain.Record, error) {
	if err := checkUser(userID); err != nil {
		s.metrics.ObserveFailure("record", err)
		return domain.Record{}, err
	}
	res, err := s.Calculate(weightKg, heightM)
	if err != nil {
		return domain.Record{}, err
	}
	return s.save(ctx, strings.TrimSpace(userID), res)
}

// RecordResult appends a result already returned by Calculate. BMI and
// category are recomputed from weight and height, but not counted again.
func (s *MeasurementService) RecordResult(ctx context.Context, userID string, res domain.Result) (domain.Record, error) {
	if err := checkUser(userID); err != nil {
		s.metrics.ObserveFailure("record", err)
		return domain.Record{}, err
	}
	res, err := domain.Compute(res.WeightKg, res.HeightM)
	if err != nil {
		s.metrics.ObserveFailure("record", err)
		return domain.Record{}, err
	}
	return s.save(ctx, strings.TrimSpace(userID), res)
}

func checkUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	return nil
}

func (s *MeasurementService) save(ctx context.Context, userID string, res domain.Result) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	rec := domain.NewRecord(userID, res)
	rec.Timestamp, err = s.nextTimestamp(ctx, userID)
	if err != nil {
		return domain.Record{}, s.storageFailure("record", userID, err)
	}

	saved, err := s.repo.Save(ctx, rec)
	if err != nil {
		return domain.Record{}, s.storageFailure("record", userID, err)
	}
	s.metrics.ObserveSave()
	s.log.Debug("record saved",
		zap.String("user", userID),
		zap.Int64("id", saved.ID),
		zap.Float64("bmi", saved.BMI),
		zap.String("category", string(saved.Category)),
	)
	return saved, nil
}

func (s *MeasurementService) nextTimestamp(ctx context.Context, userID string) (time.Time, error) {
	ts := s.now().UTC().Truncate(time.Microsecond)
	last, err := s.repo.Latest(ctx, userID)
	if err != nil {
		return time.Time{}, err
	}
	if last != nil && !ts.After(last.Timestamp) {
		ts = last.Timestamp.UTC().Add(time.Microsecond)
	}
	return ts, nil
}

// History returns userID's records in ascending timestamp order.
func (s *MeasurementService) History(ctx context.Context, userID string) ([]domain.Record, error) {
	recs, err := s.repo.History(ctx, strings.TrimSpace(userID))
	if err != nil {
		return nil, s.storageFailure("history", userID, err)
	}
	return recs, nil
}

// Users returns every user id seen in the store.
func (s *MeasurementService) Users(ctx context.Context) ([]string, error) {
	users, err := s.repo.AllUsers(ctx)
	if err != nil {
		return nil, s.storageFailure("users", "", err)
	}
	return users, nil
}

func (s *MeasurementService) storageFailure(op, userID string, err error) error {
	s.metrics.ObserveFailure(op, err)
	s.log.Error("store operation failed",
		zap.String("op", op),
		zap.String("user", userID),
		zap.Error(err),
	)
	return err
}
