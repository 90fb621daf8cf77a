package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

func TestStaffRepository_CreateAndFind(t *testing.T) {
	repo := NewStaffRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := t.Context()

	s, err := staff.NewStaff(1, "Lin", "lin@acme.test", staff.RoleStaff, baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, s))
	require.NotZero(t, s.ID())

	byID, err := repo.GetByID(ctx, s.ID())
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, permission.TemplateBasic, byID.Template())

	byEmail, err := repo.GetByEmail(ctx, "LIN@acme.test")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, s.ID(), byEmail.ID())

	missing, err := repo.GetByID(ctx, 404)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStaffRepository_UpdatePermissionsRoundTrip(t *testing.T) {
	repo := NewStaffRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := t.Context()

	s, err := staff.NewStaff(1, "Lin", "lin@acme.test", staff.RoleStaff, baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, s))

	for _, tmpl := range permission.Templates() {
		if tmpl.ID == permission.TemplateCustom {
			continue
		}
		s.UpdatePermissions(tmpl.Permissions, baseTime)
		require.NoError(t, repo.UpdatePermissions(ctx, s))

		stored, err := repo.GetByID(ctx, s.ID())
		require.NoError(t, err)
		assert.Equal(t, tmpl.ID, stored.Template())
	}

	partial := permission.Set{permission.CategoryOperations: {permission.KeyExportData: true}}
	s.UpdatePermissions(partial, baseTime)
	require.NoError(t, repo.UpdatePermissions(ctx, s))

	stored, err := repo.GetByID(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, partial, stored.Permissions())
	assert.Equal(t, permission.TemplateCustom, stored.Template())
}

func TestStaffRepository_ListByBrandID(t *testing.T) {
	repo := NewStaffRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := t.Context()

	for i, email := range []string{"a@acme.test", "b@acme.test"} {
		s, err := staff.NewStaff(1, "member", email, staff.RoleStaff, baseTime)
		require.NoError(t, err, i)
		require.NoError(t, repo.Create(ctx, s))
	}
	other, err := staff.NewStaff(2, "other", "c@other.test", staff.RoleOwner, baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListByBrandID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
