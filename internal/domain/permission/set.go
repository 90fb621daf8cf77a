package permission

import "encoding/json"

// Category is the first segment of a permission path.
type Category string

const (
	CategoryDataVisibility Category = "dataVisibility"
	CategoryOperations     Category = "operations"
	CategoryAdvanced       Category = "advanced"
)

// Capability keys, grouped by category.
const (
	KeyViewOthersInfluencers    = "viewOthersInfluencers"
	KeyViewOthersCollaborations = "viewOthersCollaborations"
	KeyViewOthersPerformance    = "viewOthersPerformance"
	KeyViewTeamData             = "viewTeamData"
	KeyViewRanking              = "viewRanking"

	KeyManageInfluencers    = "manageInfluencers"
	KeyManageSamples        = "manageSamples"
	KeyManageCollaborations = "manageCollaborations"
	KeyDeleteCollaborations = "deleteCollaborations"
	KeyExportData           = "exportData"
	KeyBatchOperations      = "batchOperations"

	KeyViewCostData     = "viewCostData"
	KeyViewROIData      = "viewROIData"
	KeyModifyOthersData = "modifyOthersData"
)

// Field names one capability of the matrix.
type Field struct {
	Category Category
	Key      string
}

// Path returns the dotted "category.key" form used by HasPermission.
func (f Field) Path() string {
	return string(f.Category) + "." + f.Key
}

var categories = []Category{CategoryDataVisibility, CategoryOperations, CategoryAdvanced}

// fields is the fixed shape of a well-formed set.
var fields = []Field{
	{CategoryDataVisibility, KeyViewOthersInfluencers},
	{CategoryDataVisibility, KeyViewOthersCollaborations},
	{CategoryDataVisibility, KeyViewOthersPerformance},
	{CategoryDataVisibility, KeyViewTeamData},
	{CategoryDataVisibility, KeyViewRanking},
	{CategoryOperations, KeyManageInfluencers},
	{CategoryOperations, KeyManageSamples},
	{CategoryOperations, KeyManageCollaborations},
	{CategoryOperations, KeyDeleteCollaborations},
	{CategoryOperations, KeyExportData},
	{CategoryOperations, KeyBatchOperations},
	{CategoryAdvanced, KeyViewCostData},
	{CategoryAdvanced, KeyViewROIData},
	{CategoryAdvanced, KeyModifyOthersData},
}

// Set is a staff account's capability matrix, keyed by category then key.
// It is kept as a plain map so that partially populated sets read from
// storage or requests survive unchanged.
type Set map[Category]map[string]bool

// Lookup returns the stored value and whether the key was present.
func (s Set) Lookup(category Category, key string) (value bool, ok bool) {
	if s == nil {
		return false, false
	}
	values, ok := s[category]
	if !ok || values == nil {
		return false, false
	}
	value, ok = values[key]
	return value, ok
}

// IsWellFormed reports whether every catalog field is present.
func (s Set) IsWellFormed() bool {
	for _, f := range fields {
		if _, ok := s.Lookup(f.Category, f.Key); !ok {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for category, values := range s {
		if values == nil {
			out[category] = nil
			continue
		}
		copied := make(map[string]bool, len(values))
		for k, v := range values {
			copied[k] = v
		}
		out[category] = copied
	}
	return out
}

// ParseSet decodes a JSON object. Missing categories or keys are kept
// missing; non-boolean values are a decode error.
func ParseSet(data []byte) (Set, error) {
	var s Set
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}
