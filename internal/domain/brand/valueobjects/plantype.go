package valueobjects

import "fmt"

// PlanType is the commercial plan a brand is subscribed to.
type PlanType string

const (
	PlanTypeFree         PlanType = "FREE"
	PlanTypePersonal     PlanType = "PERSONAL"
	PlanTypeProfessional PlanType = "PROFESSIONAL"
	PlanTypeEnterprise   PlanType = "ENTERPRISE"
)

var validPlanTypes = map[PlanType]bool{
	PlanTypeFree:         true,
	PlanTypePersonal:     true,
	PlanTypeProfessional: true,
	PlanTypeEnterprise:   true,
}

// IsValid checks if the plan type is one of the known plans
func (pt PlanType) IsValid() bool {
	return validPlanTypes[pt]
}

// String returns the string representation of the plan type
func (pt PlanType) String() string {
	return string(pt)
}

// NewPlanType creates a new PlanType from a string
func NewPlanType(s string) (PlanType, error) {
	pt := PlanType(s)
	if !pt.IsValid() {
		return "", fmt.Errorf("invalid plan type: %s, must be FREE, PERSONAL, PROFESSIONAL or ENTERPRISE", s)
	}
	return pt, nil
}

// IsTrial reports whether a brand on this plan is treated as a trial.
// FREE is always a trial; PERSONAL is a trial until paid.
func (pt PlanType) IsTrial(isPaid bool) bool {
	return pt == PlanTypeFree || (pt == PlanTypePersonal && !isPaid)
}
