package seed

import (
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relieflabs/aid-receipts/internal/models"
	"github.com/relieflabs/aid-receipts/internal/repository"
)

func newTestSeeder(t *testing.T) (*Seeder, *repository.SQLiteDB) {
	db, err := repository.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSeeder(db, db, clockwork.NewFakeClock()), db
}

func TestSeedPackages(t *testing.T) {
	s, db := newTestSeeder(t)
	ctx := context.Background()

	created, err := s.SeedPackages(ctx)
	require.NoError(t, err)
	assert.Len(t, created, 10)

	byID := map[string]models.Package{}
	for _, p := range created {
		assert.NotEmpty(t, p.ID)
		byID[p.PackageID] = p
	}

	// Category detection and priority computation ran at seed time.
	hospital := byID["DEMO-001-HOSPITAL-CRIT"]
	assert.Equal(t, "medicine", hospital.Category)
	assert.Equal(t, "high", hospital.PriorityLabel)

	warehouse := byID["DEMO-004-WAREHOUSE-FLEX"]
	assert.Equal(t, "", warehouse.Category)
	assert.Equal(t, "", warehouse.PriorityLabel)

	retail := byID["DEMO-005-RETAIL-DELAYED"]
	assert.Equal(t, "clothes", retail.Category)
	assert.Equal(t, "medium", retail.PriorityLabel)

	gallery := byID["DEMO-009-LUXURY-FLEX"]
	assert.Equal(t, "fancy", gallery.Category)
	assert.Equal(t, "low", gallery.PriorityLabel)

	stored, err := db.ListPackages(ctx, repository.Filter{})
	require.NoError(t, err)
	assert.Len(t, stored, 10)
}

func TestSeedReceipts(t *testing.T) {
	s, db := newTestSeeder(t)
	ctx := context.Background()

	created, err := s.SeedReceipts(ctx)
	require.NoError(t, err)
	assert.Len(t, created, 10)

	disasterTypes := map[string]int{}
	for _, r := range created {
		assert.NotEmpty(t, r.ID)
		disasterTypes[r.DisasterType]++
	}
	assert.Equal(t, 2, disasterTypes["earthquake"])
	assert.Equal(t, 2, disasterTypes["flood"])
	assert.Equal(t, 1, disasterTypes["cyclone"])
	assert.Equal(t, 1, disasterTypes["landslide"])
	assert.Equal(t, 1, disasterTypes["storm"])
	assert.Equal(t, 3, disasterTypes[""])

	stored, err := db.ListReceipts(ctx, repository.Filter{})
	require.NoError(t, err)
	assert.Len(t, stored, 10)
}

func TestSeed_Idempotent(t *testing.T) {
	s, _ := newTestSeeder(t)
	ctx := context.Background()

	_, err := s.SeedPackages(ctx)
	require.NoError(t, err)
	_, err = s.SeedReceipts(ctx)
	require.NoError(t, err)

	// Second run skips every existing natural key.
	pkgs, err := s.SeedPackages(ctx)
	require.NoError(t, err)
	assert.Empty(t, pkgs)

	rcpts, err := s.SeedReceipts(ctx)
	require.NoError(t, err)
	assert.Empty(t, rcpts)
}
