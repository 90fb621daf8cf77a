package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/infrastructure/persistence/models"
)

func TestStaffMapper_KeepsPartialPermissions(t *testing.T) {
	m := NewStaffMapper()
	model := &models.StaffModel{
		ID:          4,
		BrandID:     1,
		Name:        "Lin",
		Email:       "lin@acme.test",
		Role:        "staff",
		Permissions: datatypes.JSON(`{"operations":{"exportData":true}}`),
	}

	entity, err := m.ToEntity(model)
	require.NoError(t, err)
	assert.True(t, entity.Can("operations.exportData"))
	assert.Equal(t, permission.TemplateCustom, entity.Template())

	back, err := m.ToModel(entity)
	require.NoError(t, err)
	assert.JSONEq(t, `{"operations":{"exportData":true}}`, string(back.Permissions))
}

func TestStaffMapper_RejectsCorruptPermissions(t *testing.T) {
	_, err := NewStaffMapper().ToEntity(&models.StaffModel{
		ID:          4,
		Role:        "staff",
		Permissions: datatypes.JSON(`{"operations":{"exportData":"yes"}}`),
	})
	assert.Error(t, err)
}

func TestStaffMapper_NewStaffRoundTrip(t *testing.T) {
	s, err := staff.NewStaff(1, "Lin", "lin@acme.test", staff.RoleAdmin, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.SetID(9))

	m := NewStaffMapper()
	model, err := m.ToModel(s)
	require.NoError(t, err)

	back, err := m.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, permission.TemplateBasic, back.Template())
	assert.Equal(t, staff.RoleAdmin, back.Role())
}

func TestBrandMapper_RejectsUnknownPlan(t *testing.T) {
	_, err := NewBrandMapper().ToEntity(&models.BrandModel{ID: 1, PlanType: "GOLD"})
	assert.Error(t, err)
}
