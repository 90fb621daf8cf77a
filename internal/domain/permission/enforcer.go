package permission

// Role based policy, separate from the per-staff capability matrix. It gates
// administrative routes by the caller's role.

// Policy resources
const (
	ResourcePermissionTemplate = "permission_template"
	ResourceStaffPermission    = "staff_permission"
	ResourceStaff              = "staff"
	ResourceCapability         = "capability"
	ResourceSubscription       = "subscription"
	ResourceBrand              = "brand"
	ResourceLockSweep          = "subscription_sweep"
)

// Policy actions
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionAck    = "ack"
	ActionRenew  = "renew"
	ActionUnlock = "unlock"
	ActionRun    = "run"
)

// PolicyEnforcer decides whether a role may perform action on resource.
type PolicyEnforcer interface {
	Enforce(subject string, resource string, action string) (bool, error)
}
