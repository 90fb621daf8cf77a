package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

func newSeededEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	e, err := NewMemoryEnforcer(logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, e.SeedPolicies())
	return e
}

func TestEnforcer_RoleInheritance(t *testing.T) {
	e := newSeededEnforcer(t)

	tests := []struct {
		role     string
		resource string
		action   string
		want     bool
	}{
		{"staff", permission.ResourcePermissionTemplate, permission.ActionRead, true},
		{"staff", permission.ResourceStaffPermission, permission.ActionUpdate, false},
		{"staff", permission.ResourceStaff, permission.ActionCreate, false},
		{"staff", permission.ResourceStaff, permission.ActionRead, true},
		{"admin", permission.ResourceStaffPermission, permission.ActionUpdate, true},
		{"admin", permission.ResourceSubscription, permission.ActionAck, true},
		{"admin", permission.ResourceSubscription, permission.ActionRenew, false},
		{"owner", permission.ResourceStaff, permission.ActionCreate, true},
		{"owner", permission.ResourceLockSweep, permission.ActionRun, false},
		{"platform_admin", permission.ResourceLockSweep, permission.ActionRun, true},
		{"platform_admin", permission.ResourceStaffPermission, permission.ActionUpdate, true},
		{"intern", permission.ResourcePermissionTemplate, permission.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+" "+tt.resource+" "+tt.action, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestEnforcer_SeedIsRepeatable(t *testing.T) {
	e := newSeededEnforcer(t)
	require.NoError(t, e.SeedPolicies())

	allowed, err := e.Enforce("owner", permission.ResourceStaffPermission, permission.ActionUpdate)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestEnforcer_GormAdapterPersistsPolicies(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e, err := NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, e.SeedPolicies())

	reloaded, err := NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)
	allowed, err := reloaded.Enforce("admin", permission.ResourceStaff, permission.ActionCreate)
	require.NoError(t, err)
	assert.True(t, allowed)
}
