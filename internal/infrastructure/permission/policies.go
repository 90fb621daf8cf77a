package permission

import (
	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/infrastructure/auth"
)

var defaultPolicies = [][]string{
	{string(staff.RoleStaff), permission.ResourcePermissionTemplate, permission.ActionRead},
	{string(staff.RoleStaff), permission.ResourceStaffPermission, permission.ActionRead},
	{string(staff.RoleStaff), permission.ResourceCapability, permission.ActionRead},
	{string(staff.RoleStaff), permission.ResourceStaff, permission.ActionRead},
	{string(staff.RoleStaff), permission.ResourceSubscription, permission.ActionRead},
	{string(staff.RoleStaff), permission.ResourceSubscription, permission.ActionAck},

	{string(staff.RoleAdmin), permission.ResourceStaffPermission, permission.ActionUpdate},
	{string(staff.RoleAdmin), permission.ResourceStaff, permission.ActionCreate},

	{auth.RolePlatformAdmin, permission.ResourceBrand, permission.ActionCreate},
	{auth.RolePlatformAdmin, permission.ResourceBrand, permission.ActionRead},
	{auth.RolePlatformAdmin, permission.ResourceSubscription, permission.ActionRenew},
	{auth.RolePlatformAdmin, permission.ResourceSubscription, permission.ActionUnlock},
	{auth.RolePlatformAdmin, permission.ResourceLockSweep, permission.ActionRun},
}

// roleHierarchy: each member inherits every permission of the role it points to.
var roleHierarchy = [][]string{
	{string(staff.RoleAdmin), string(staff.RoleStaff)},
	{string(staff.RoleOwner), string(staff.RoleAdmin)},
	{auth.RolePlatformAdmin, string(staff.RoleOwner)},
}
