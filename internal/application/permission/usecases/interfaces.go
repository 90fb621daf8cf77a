package usecases

// Actor is the authenticated caller. A zero BrandID means a platform admin,
// who is not scoped to one brand.
type Actor struct {
	StaffID uint
	BrandID uint
}

func (a Actor) canReach(brandID uint) bool {
	return a.BrandID == 0 || a.BrandID == brandID
}

// PermissionMetrics records permission writes. Optional.
type PermissionMetrics interface {
	PermissionsUpdated(template string)
}

type nopMetrics struct{}

func (nopMetrics) PermissionsUpdated(string) {}
