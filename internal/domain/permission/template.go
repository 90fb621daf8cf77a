package permission

// TemplateID identifies a permission template.
type TemplateID string

const (
	TemplateBasic      TemplateID = "basic"
	TemplateAdvanced   TemplateID = "advanced"
	TemplateSupervisor TemplateID = "supervisor"
	// TemplateCustom is the fallback label; it is never a comparison target.
	TemplateCustom TemplateID = "custom"
)

// Template is a named preset of a full capability matrix.
type Template struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Permissions Set        `json:"permissions"`
}

func newSet(dataVisibility, operations, advanced map[string]bool) Set {
	return Set{
		CategoryDataVisibility: dataVisibility,
		CategoryOperations:     operations,
		CategoryAdvanced:       advanced,
	}
}

var basicSet = newSet(
	map[string]bool{
		KeyViewOthersInfluencers:    false,
		KeyViewOthersCollaborations: false,
		KeyViewOthersPerformance:    false,
		KeyViewTeamData:             false,
		KeyViewRanking:              false,
	},
	map[string]bool{
		KeyManageInfluencers:    true,
		KeyManageSamples:        true,
		KeyManageCollaborations: true,
		KeyDeleteCollaborations: false,
		KeyExportData:           false,
		KeyBatchOperations:      false,
	},
	map[string]bool{
		KeyViewCostData:     false,
		KeyViewROIData:      false,
		KeyModifyOthersData: false,
	},
)

var advancedSet = newSet(
	map[string]bool{
		KeyViewOthersInfluencers:    true,
		KeyViewOthersCollaborations: true,
		KeyViewOthersPerformance:    false,
		KeyViewTeamData:             true,
		KeyViewRanking:              false,
	},
	map[string]bool{
		KeyManageInfluencers:    true,
		KeyManageSamples:        true,
		KeyManageCollaborations: true,
		KeyDeleteCollaborations: false,
		KeyExportData:           true,
		KeyBatchOperations:      false,
	},
	map[string]bool{
		KeyViewCostData:     false,
		KeyViewROIData:      false,
		KeyModifyOthersData: false,
	},
)

var supervisorSet = newSet(
	map[string]bool{
		KeyViewOthersInfluencers:    true,
		KeyViewOthersCollaborations: true,
		KeyViewOthersPerformance:    true,
		KeyViewTeamData:             true,
		KeyViewRanking:              true,
	},
	map[string]bool{
		KeyManageInfluencers:    true,
		KeyManageSamples:        true,
		KeyManageCollaborations: true,
		KeyDeleteCollaborations: true,
		KeyExportData:           true,
		KeyBatchOperations:      true,
	},
	map[string]bool{
		KeyViewCostData:     true,
		KeyViewROIData:      true,
		KeyModifyOthersData: true,
	},
)

// catalog order is also the matching order of IdentifyTemplate.
var catalog = []Template{
	{
		ID:          TemplateBasic,
		Name:        "Basic staff",
		Description: "Works on own influencers, samples and collaborations only",
		Permissions: basicSet,
	},
	{
		ID:          TemplateAdvanced,
		Name:        "Advanced staff",
		Description: "Sees colleagues' influencers, collaborations and team data; can export",
		Permissions: advancedSet,
	},
	{
		ID:          TemplateSupervisor,
		Name:        "Supervisor",
		Description: "Full visibility including ranking, cost and ROI; may modify others' data",
		Permissions: supervisorSet,
	},
	{
		ID:          TemplateCustom,
		Name:        "Custom",
		Description: "Hand-picked capabilities that match no preset",
		Permissions: basicSet,
	},
}

// Templates returns the four templates in catalog order. The result is a
// copy; callers may modify it freely.
func Templates() []Template {
	out := make([]Template, len(catalog))
	for i, t := range catalog {
		t.Permissions = t.Permissions.Clone()
		out[i] = t
	}
	return out
}

// TemplateByID looks a template up by id.
func TemplateByID(id TemplateID) (Template, bool) {
	for _, t := range catalog {
		if t.ID == id {
			t.Permissions = t.Permissions.Clone()
			return t, true
		}
	}
	return Template{}, false
}

// DefaultSet is the set given to a newly created staff account.
func DefaultSet() Set {
	return basicSet.Clone()
}
