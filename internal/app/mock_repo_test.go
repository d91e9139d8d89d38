package app_test

import (
	"context"

	"bmitracker/internal/domain"
)

type mockRecordRepo struct {
	saveFn    func(ctx context.Context, rec domain.Record) (domain.Record, error)
	historyFn func(ctx context.Context, userID string) ([]domain.Record, error)
	usersFn   func(ctx context.Context) ([]string, error)
	latestFn  func(ctx context.Context, userID string) (*domain.Record, error)
}

func (m *mockRecordRepo) Save(ctx context.Context, rec domain.Record) (domain.Record, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, rec)
	}
	rec.ID = 1
	return rec, nil
}

func (m *mockRecordRepo) History(ctx context.Context, userID string) ([]domain.Record, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockRecordRepo) AllUsers(ctx context.Context) ([]string, error) {
	if m.usersFn != nil {
		return m.usersFn(ctx)
	}
	return nil, nil
}

func (m *mockRecordRepo) Latest(ctx context.Context, userID string) (*domain.Record, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockRecordRepo) Close() error { return nil }
