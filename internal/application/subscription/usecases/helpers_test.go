package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kolhub/kolhub/internal/domain/brand"
	vo "github.com/kolhub/kolhub/internal/domain/brand/valueobjects"
)

// brandExpiringIn builds a persisted-looking brand whose plan ends d after testNow.
func brandExpiringIn(t *testing.T, id uint, planType vo.PlanType, isPaid bool, d time.Duration) *brand.Brand {
	t.Helper()
	started := testNow.Add(-24 * time.Hour)
	expires := testNow.Add(d)
	b, err := brand.Reconstruct(brand.ReconstructParams{
		ID:            id,
		UUID:          "00000000-0000-0000-0000-000000000001",
		Name:          "Acme",
		ContactEmail:  "ops@acme.test",
		PlanType:      planType,
		IsPaid:        isPaid,
		PlanStartedAt: &started,
		PlanExpiresAt: &expires,
		CreatedAt:     started,
		UpdatedAt:     started,
	})
	require.NoError(t, err)
	return b
}
