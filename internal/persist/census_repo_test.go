package persist

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DomWilliams0/minecraft-fs/internal/mcfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "census.sqlite"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCensusRecordAndLatest(t *testing.T) {
	ctx := context.Background()
	repo := NewCensusRepo(openTestDB(t))

	latest, err := repo.Latest(ctx, "overworld")
	require.NoError(t, err)
	assert.Nil(t, latest)

	first := time.UnixMilli(1_700_000_000_000)
	_, err = repo.Record(ctx, CensusSnapshot{World: "overworld", TakenAt: first})
	require.NoError(t, err)

	snap := CensusSnapshot{
		World:   "overworld",
		TakenAt: first.Add(time.Minute),
		Entities: []CensusEntity{
			{EntityID: 9, Type: "cow", Position: mcfs.Position{X: 1, Y: 2, Z: 3}, Health: 10, Living: true},
			{EntityID: 4, Type: "item", Position: mcfs.Position{X: -1.5, Y: 60, Z: 0}, Health: 5},
		},
	}
	id, err := repo.Record(ctx, snap)
	require.NoError(t, err)

	latest, err = repo.Latest(ctx, "overworld")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, id, latest.ID)
	assert.Equal(t, 2, latest.EntityCount)
	assert.True(t, snap.TakenAt.Equal(latest.TakenAt))

	rows, err := repo.Entities(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []CensusEntity{snap.Entities[1], snap.Entities[0]}, rows)

	other, err := repo.Latest(ctx, "nether")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "census.sqlite")

	db, err := Open(ctx, path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, path, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, RunMigrations(ctx, db.SQL))
}

func TestRecordRejectsDuplicateEntity(t *testing.T) {
	ctx := context.Background()
	repo := NewCensusRepo(openTestDB(t))

	_, err := repo.Record(ctx, CensusSnapshot{
		World:   "end",
		TakenAt: time.Now(),
		Entities: []CensusEntity{
			{EntityID: 1, Type: "enderman"},
			{EntityID: 1, Type: "enderman"},
		},
	})
	require.Error(t, err)

	// the failed census was rolled back
	latest, err := repo.Latest(ctx, "end")
	require.NoError(t, err)
	assert.Nil(t, latest)
}
