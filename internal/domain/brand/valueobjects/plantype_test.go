package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanType(t *testing.T) {
	for _, s := range []string{"FREE", "PERSONAL", "PROFESSIONAL", "ENTERPRISE"} {
		pt, err := NewPlanType(s)
		require.NoError(t, err)
		assert.Equal(t, s, pt.String())
	}

	_, err := NewPlanType("free")
	assert.Error(t, err)
	_, err = NewPlanType("")
	assert.Error(t, err)
}

func TestPlanType_IsTrial(t *testing.T) {
	assert.True(t, PlanTypeFree.IsTrial(false))
	assert.True(t, PlanTypeFree.IsTrial(true))
	assert.True(t, PlanTypePersonal.IsTrial(false))
	assert.False(t, PlanTypePersonal.IsTrial(true))
	assert.False(t, PlanTypeProfessional.IsTrial(false))
	assert.False(t, PlanTypeEnterprise.IsTrial(false))
}
