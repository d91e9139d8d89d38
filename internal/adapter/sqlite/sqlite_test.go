package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"bmitracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func mustRecord(t *testing.T, user string, w, h float64, ts time.Time) domain.Record {
	t.Helper()
	res, err := domain.Compute(w, h)
	require.NoError(t, err)
	rec := domain.NewRecord(user, res)
	rec.Timestamp = ts
	return rec
}

func TestSaveAndHistory_RoundTrip(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 10, 6, 45, 0, 987654321, time.UTC)

	in := mustRecord(t, "alice", 75, 1.75, t0)
	saved, err := db.Save(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	hist, err := db.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, hist, 1)
	got := hist[0]
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "alice", got.UserID)
	assert.Equal(t, in.WeightKg, got.WeightKg)
	assert.Equal(t, in.HeightM, got.HeightM)
	assert.Equal(t, in.BMI, got.BMI)
	assert.Equal(t, domain.NormalWeight, got.Category)
	assert.True(t, got.Timestamp.Equal(t0.Truncate(time.Microsecond)), "timestamp %v", got.Timestamp)
}

func TestHistory_AscendingAfterNSaves(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Out-of-order inserts still read back in timestamp order.
	offsets := []time.Duration{3 * time.Hour, time.Hour, 2 * time.Hour, 0, 4 * time.Hour}
	for i, off := range offsets {
		_, err := db.Save(ctx, mustRecord(t, "bob", 80+float64(i), 1.8, t0.Add(off)))
		require.NoError(t, err)
	}
	_, err := db.Save(ctx, mustRecord(t, "carol", 60, 1.6, t0))
	require.NoError(t, err)

	hist, err := db.History(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, hist, len(offsets))
	for i := 1; i < len(hist); i++ {
		assert.True(t, hist[i].Timestamp.After(hist[i-1].Timestamp), "record %d out of order", i)
	}
}

func TestHistory_UnknownUser(t *testing.T) {
	db := openMemory(t)
	hist, err := db.History(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, hist)
	assert.Empty(t, hist)
}

func TestSave_AssignsTimestamp(t *testing.T) {
	db := openMemory(t)
	before := time.Now().UTC().Add(-time.Second)
	saved, err := db.Save(context.Background(), mustRecord(t, "dave", 70, 1.8, time.Time{}))
	require.NoError(t, err)
	assert.True(t, saved.Timestamp.After(before))
}

func TestAllUsersAndLatest(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()
	t0 := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, u := range []string{"zoe", "alice", "zoe", "mike"} {
		_, err := db.Save(ctx, mustRecord(t, u, 70+float64(i), 1.75, t0.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	users, err := db.AllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "mike", "zoe"}, users)

	latest, err := db.Latest(ctx, "zoe")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 72.0, latest.WeightKg)

	none, err := db.Latest(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestOpen_FileReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "bmi.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = db.Save(ctx, mustRecord(t, "erin", 65, 1.68, time.Date(2026, 2, 2, 2, 2, 2, 0, time.UTC)))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Migrations are idempotent and data survives.
	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	hist, err := db.History(ctx, "erin")
	require.NoError(t, err)
	assert.Len(t, hist, 1)
}

func TestSave_ClosedStore(t *testing.T) {
	db, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = db.Save(context.Background(), mustRecord(t, "frank", 70, 1.8, time.Time{}))
	assert.ErrorIs(t, err, domain.ErrStorage)
}
