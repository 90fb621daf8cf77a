package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasPermission(t *testing.T) {
	supervisor, ok := TemplateByID(TemplateSupervisor)
	require.True(t, ok)
	basic := DefaultSet()

	tests := []struct {
		name string
		set  Set
		path string
		want bool
	}{
		{"granted capability", basic, "operations.manageInfluencers", true},
		{"denied capability", basic, "operations.deleteCollaborations", false},
		{"supervisor sees ranking", supervisor.Permissions, "dataVisibility.viewRanking", true},
		{"nil set", nil, "operations.manageInfluencers", false},
		{"empty path", basic, "", false},
		{"single segment", basic, "operations", false},
		{"three segments", basic, "operations.manageInfluencers.extra", false},
		{"empty category segment", basic, ".manageInfluencers", false},
		{"empty key segment", basic, "operations.", false},
		{"unknown category", basic, "billing.manageInfluencers", false},
		{"unknown key", basic, "operations.launchRockets", false},
		{"category with nil map", Set{CategoryOperations: nil}, "operations.manageSamples", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.set, tt.path))
		})
	}
}

func TestIdentifyTemplate_RoundTripsEveryPreset(t *testing.T) {
	for _, tmpl := range Templates() {
		if tmpl.ID == TemplateCustom {
			continue
		}
		t.Run(string(tmpl.ID), func(t *testing.T) {
			assert.Equal(t, tmpl.ID, IdentifyTemplate(tmpl.Permissions))
		})
	}
}

func TestIdentifyTemplate_IndependentOfFieldOrder(t *testing.T) {
	// Same values as the advanced preset, written in reverse key order.
	raw := []byte(`{
		"advanced": {"modifyOthersData": false, "viewROIData": false, "viewCostData": false},
		"operations": {
			"batchOperations": false, "exportData": true, "deleteCollaborations": false,
			"manageCollaborations": true, "manageSamples": true, "manageInfluencers": true
		},
		"dataVisibility": {
			"viewRanking": false, "viewTeamData": true, "viewOthersPerformance": false,
			"viewOthersCollaborations": true, "viewOthersInfluencers": true
		}
	}`)

	set, err := ParseSet(raw)
	require.NoError(t, err)

	assert.Equal(t, TemplateAdvanced, IdentifyTemplate(set))
}

func TestIdentifyTemplate_FallsBackToCustom(t *testing.T) {
	t.Run("nil set", func(t *testing.T) {
		assert.Equal(t, TemplateCustom, IdentifyTemplate(nil))
	})

	t.Run("missing category", func(t *testing.T) {
		set := DefaultSet()
		delete(set, CategoryAdvanced)
		assert.Equal(t, TemplateCustom, IdentifyTemplate(set))
	})

	t.Run("missing key inside a category", func(t *testing.T) {
		set := DefaultSet()
		delete(set[CategoryOperations], KeyExportData)
		assert.False(t, set.IsWellFormed())
		assert.Equal(t, TemplateCustom, IdentifyTemplate(set))
	})

	t.Run("one flipped capability", func(t *testing.T) {
		set := DefaultSet()
		set[CategoryAdvanced][KeyViewCostData] = true
		assert.True(t, set.IsWellFormed())
		assert.Equal(t, TemplateCustom, IdentifyTemplate(set))
	})

	t.Run("category present but null", func(t *testing.T) {
		set, err := ParseSet([]byte(`{"dataVisibility": null, "operations": {}, "advanced": {}}`))
		require.NoError(t, err)
		assert.Equal(t, TemplateCustom, IdentifyTemplate(set))
	})
}

func TestIdentifyTemplate_IgnoresUnknownKeys(t *testing.T) {
	set := DefaultSet()
	set[CategoryOperations]["legacyFlag"] = true
	set["experimental"] = map[string]bool{"beta": true}

	assert.Equal(t, TemplateBasic, IdentifyTemplate(set))
}

func TestParseSet_RejectsNonBooleanValues(t *testing.T) {
	_, err := ParseSet([]byte(`{"operations": {"exportData": "yes"}}`))
	assert.Error(t, err)
}
