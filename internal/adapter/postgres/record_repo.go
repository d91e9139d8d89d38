package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bmitracker/internal/domain"
)

const recordColumns = "id, user_id, weight_kg, height_m, bmi, category, created_at"

// Save appends a measurement record.
func (d *DB) Save(ctx context.Context, rec domain.Record) (domain.Record, error) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	rec.Timestamp = rec.Timestamp.UTC().Truncate(time.Microsecond)

	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO bmi_records(user_id, weight_kg, height_m, bmi, category, created_at) VALUES($1, $2, $3, $4, $5, $6) RETURNING id;",
		rec.UserID, rec.WeightKg, rec.HeightM, rec.BMI, string(rec.Category), rec.Timestamp,
	).Scan(&rec.ID)
	if err != nil {
		return domain.Record{}, storageErr("save", err)
	}
	return rec, nil
}

// History returns a user's records ordered by created_at ascending.
func (d *DB) History(ctx context.Context, userID string) ([]domain.Record, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM bmi_records WHERE user_id=$1 ORDER BY created_at ASC, id ASC;", userID)
	if err != nil {
		return nil, storageErr("history", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Record, 0)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, storageErr("history", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("history", err)
	}
	return out, nil
}

// AllUsers returns the distinct user ids.
func (d *DB) AllUsers(ctx context.Context) ([]string, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT DISTINCT user_id FROM bmi_records ORDER BY user_id;")
	if err != nil {
		return nil, storageErr("users", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]string, 0)
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, storageErr("users", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("users", err)
	}
	return out, nil
}

// Latest returns the newest record for a user.
func (d *DB) Latest(ctx context.Context, userID string) (*domain.Record, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM bmi_records WHERE user_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1;", userID)
	r, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("latest", err)
	}
	return &r, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (domain.Record, error) {
	var (
		r        domain.Record
		category string
	)
	if err := s.Scan(&r.ID, &r.UserID, &r.WeightKg, &r.HeightM, &r.BMI, &category, &r.Timestamp); err != nil {
		return domain.Record{}, err
	}
	r.Category = domain.Category(category)
	r.Timestamp = r.Timestamp.UTC()
	return r, nil
}
