package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bmitracker/internal/app"
	"bmitracker/internal/domain"
)

func TestThresholds(t *testing.T) {
	th := app.Thresholds()
	want := []app.Threshold{
		{Value: 18.5, Label: "Underweight/Normal weight"},
		{Value: 25, Label: "Normal weight/Overweight"},
		{Value: 30, Label: "Overweight/Obese"},
	}
	if len(th) != len(want) {
		t.Fatalf("expected %d thresholds, got %d", len(want), len(th))
	}
	for i := range want {
		if th[i] != want[i] {
			t.Errorf("threshold %d = %+v; want %+v", i, th[i], want[i])
		}
	}
}

func TestTrend_NoRecords(t *testing.T) {
	svc := app.NewChartsService(&mockRecordRepo{})
	_, err := svc.Trend(context.Background(), "ghost")
	if !errors.Is(err, app.ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestTrend_RepoError(t *testing.T) {
	repo := &mockRecordRepo{
		historyFn: func(_ context.Context, _ string) ([]domain.Record, error) {
			return nil, domain.ErrStorage
		},
	}
	svc := app.NewChartsService(repo)
	if _, err := svc.Trend(context.Background(), "alice"); !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestTrend_Success(t *testing.T) {
	t0 := time.Date(2026, 2, 1, 7, 0, 0, 0, time.UTC)
	repo := &mockRecordRepo{
		historyFn: func(_ context.Context, userID string) ([]domain.Record, error) {
			if userID != "alice" {
				t.Fatalf("unexpected user: %q", userID)
			}
			return []domain.Record{
				{ID: 1, UserID: "alice", WeightKg: 80, HeightM: 1.7, BMI: 80 / (1.7 * 1.7), Category: domain.Overweight, Timestamp: t0},
				{ID: 2, UserID: "alice", WeightKg: 70, HeightM: 1.7, BMI: 70 / (1.7 * 1.7), Category: domain.NormalWeight, Timestamp: t0.Add(24 * time.Hour)},
			}, nil
		},
	}
	svc := app.NewChartsService(repo)
	trend, err := svc.Trend(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trend.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(trend.Points))
	}
	if trend.Points[0].BMI != 27.68 {
		t.Errorf("expected rounded BMI 27.68, got %v", trend.Points[0].BMI)
	}
	if trend.Points[1].WeightKg != 70 || trend.Points[1].Category != domain.NormalWeight {
		t.Errorf("unexpected second point: %+v", trend.Points[1])
	}
	if len(trend.Thresholds) != 3 {
		t.Errorf("expected 3 thresholds, got %d", len(trend.Thresholds))
	}
}
