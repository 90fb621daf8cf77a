package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/kolhub/kolhub/internal/domain/brand/valueobjects"
	"github.com/kolhub/kolhub/internal/shared/db"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

func TestBrandRepository_CreateAndGet(t *testing.T) {
	repo := NewBrandRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := t.Context()

	created := createBrand(t, repo, "acme", vo.PlanTypePersonal, true, baseTime)
	assert.NotZero(t, created.ID())

	found, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.UUID(), found.UUID())
	assert.Equal(t, vo.PlanTypePersonal, found.PlanType())
	assert.True(t, found.IsPaid())
	assert.True(t, created.PlanExpiresAt().Equal(*found.PlanExpiresAt()))
	assert.Nil(t, found.LastReminderAt())

	missing, err := repo.GetByID(ctx, 9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBrandRepository_UpdateClearsNullableColumns(t *testing.T) {
	repo := NewBrandRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := t.Context()

	b := createBrand(t, repo, "acme", vo.PlanTypeFree, false, baseTime)
	b.MarkReminderSent(baseTime.Add(time.Hour))
	b.Lock(baseTime.Add(2 * time.Hour))
	require.NoError(t, repo.Update(ctx, b))

	found, err := repo.GetByID(ctx, b.ID())
	require.NoError(t, err)
	require.NotNil(t, found.LastReminderAt())
	assert.True(t, found.IsLocked())

	require.NoError(t, found.Renew(vo.PlanTypeProfessional, 365, baseTime.Add(3*time.Hour)))
	require.NoError(t, repo.Update(ctx, found))

	renewed, err := repo.GetByID(ctx, b.ID())
	require.NoError(t, err)
	assert.False(t, renewed.IsLocked())
	assert.Nil(t, renewed.LockedAt())
	assert.Nil(t, renewed.LastReminderAt())
	assert.Equal(t, vo.PlanTypeProfessional, renewed.PlanType())
}

func TestBrandRepository_LockExpired(t *testing.T) {
	repo := NewBrandRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := t.Context()

	// FREE trials last 30 days, paid PROFESSIONAL plans 365.
	expired := createBrand(t, repo, "expired", vo.PlanTypeFree, false, baseTime.AddDate(0, 0, -31))
	boundary := createBrand(t, repo, "boundary", vo.PlanTypeFree, false, baseTime.AddDate(0, 0, -30))
	active := createBrand(t, repo, "active", vo.PlanTypeProfessional, true, baseTime)

	count, err := repo.LockExpired(ctx, baseTime)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	for _, id := range []uint{expired.ID(), boundary.ID()} {
		b, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, b.IsLocked())
		require.NotNil(t, b.LockedAt())
		assert.True(t, baseTime.Equal(*b.LockedAt()))
	}

	stillActive, err := repo.GetByID(ctx, active.ID())
	require.NoError(t, err)
	assert.False(t, stillActive.IsLocked())

	again, err := repo.LockExpired(ctx, baseTime.Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, again)

	relocked, err := repo.GetByID(ctx, expired.ID())
	require.NoError(t, err)
	assert.True(t, baseTime.Equal(*relocked.LockedAt()), "second sweep keeps the first lock time")
}

func TestBrandRepository_LockExpiredInsideTransaction(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBrandRepository(gdb, logger.NewNopLogger())
	tm := db.NewTransactionManager(gdb)

	createBrand(t, repo, "expired", vo.PlanTypeFree, false, baseTime.AddDate(0, 0, -40))

	var count int64
	err := tm.RunInTransaction(t.Context(), func(ctx context.Context) error {
		var err error
		count, err = repo.LockExpired(ctx, baseTime)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestBrandRepository_ListReminderCandidates(t *testing.T) {
	repo := NewBrandRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := t.Context()

	soon := createBrand(t, repo, "soon", vo.PlanTypeFree, false, baseTime.AddDate(0, 0, -27))
	past := createBrand(t, repo, "past", vo.PlanTypeFree, false, baseTime.AddDate(0, 0, -35))
	createBrand(t, repo, "far", vo.PlanTypeEnterprise, true, baseTime)
	locked := createBrand(t, repo, "locked", vo.PlanTypeFree, false, baseTime.AddDate(0, 0, -60))
	locked.Lock(baseTime)
	require.NoError(t, repo.Update(ctx, locked))

	candidates, err := repo.ListReminderCandidates(ctx, baseTime, 30)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, past.ID(), candidates[0].ID())
	assert.Equal(t, soon.ID(), candidates[1].ID())
}
