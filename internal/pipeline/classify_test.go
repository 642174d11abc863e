package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/nibrs-cli/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		agencyName   string
		existingType string
		expected     model.AgencyType
	}{
		{
			name:       "police department maps to city",
			agencyName: "Springfield Police Department",
			expected:   model.TypeCity,
		},
		{
			name:       "county sheriff's office maps to county",
			agencyName: "Lee County Sheriff's Office",
			expected:   model.TypeCounty,
		},
		{
			name:       "state police",
			agencyName: "Michigan State Police",
			expected:   model.TypeState,
		},
		{
			name:       "state patrol",
			agencyName: "Washington State Patrol",
			expected:   model.TypeState,
		},
		{
			name:       "highway patrol",
			agencyName: "California Highway Patrol",
			expected:   model.TypeState,
		},
		{
			name:       "state park",
			agencyName: "Custer State Park Rangers",
			expected:   model.TypeOtherState,
		},
		{
			name:       "state fire",
			agencyName: "Oregon State Fire Marshal",
			expected:   model.TypeOtherState,
		},
		{
			name:       "tribal",
			agencyName: "Oneida Tribal Police",
			expected:   model.TypeTribal,
		},
		{
			name:       "university",
			agencyName: "University of Georgia Public Safety",
			expected:   model.TypeUniversity,
		},
		{
			name:       "college",
			agencyName: "Dartmouth College Security",
			expected:   model.TypeUniversity,
		},
		{
			name:       "matching is case-insensitive",
			agencyName: "SPRINGFIELD POLICE DEPARTMENT",
			expected:   model.TypeCity,
		},
		{
			name:         "catch-all label folds into other state agencies",
			agencyName:   "Bureau of Widgets",
			existingType: "Other State Agency",
			expected:     model.TypeOtherState,
		},
		{
			name:         "other label folds into other state agencies",
			agencyName:   "Bureau of Widgets",
			existingType: "Other",
			expected:     model.TypeOtherState,
		},
		{
			name:         "unknown label falls through to catch-all",
			agencyName:   "Bureau of Widgets",
			existingType: "Unknown",
			expected:     model.TypeOtherState,
		},
		{
			name:       "missing label falls through to catch-all",
			agencyName: "Bureau of Widgets",
			expected:   model.TypeOtherState,
		},
		{
			name:       "empty name falls through to catch-all",
			agencyName: "",
			expected:   model.TypeOtherState,
		},
		{
			name:       "first match wins over later rules",
			agencyName: "ABC County Sheriff's Office at University Plaza",
			expected:   model.TypeCounty,
		},
		{
			name:         "name pattern outranks existing label",
			agencyName:   "Dover Police Department",
			existingType: "Other State Agency",
			expected:     model.TypeCity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.agencyName, tt.existingType)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestClassify_Totality(t *testing.T) {
	canonical := make(map[model.AgencyType]bool)
	for _, typ := range model.CanonicalTypes() {
		canonical[typ] = true
	}

	inputs := []struct{ name, existing string }{
		{"", ""},
		{"???", "garbage"},
		{"Springfield Police Department", ""},
		{"Some Unmatched Bureau", "Unknown"},
		{"Tribal University Police Department", "Other"},
	}
	for _, in := range inputs {
		result := Classify(in.name, in.existing)
		assert.True(t, canonical[result], "non-canonical result %q for %q", result, in.name)
	}
}

func TestClassifyAll(t *testing.T) {
	records := []model.AgencyRecord{
		{AgencyName: "Springfield Police Department", AgencyType: "City"},
		{AgencyName: "Lee County Sheriff's Office", AgencyType: "Unknown"},
		{AgencyName: "Bureau of Widgets", AgencyType: "Other"},
	}

	out, changed := ClassifyAll(records)
	assert.Equal(t, 2, changed) // first record already canonical
	assert.Equal(t, string(model.TypeCity), out[0].AgencyType)
	assert.Equal(t, string(model.TypeCounty), out[1].AgencyType)
	assert.Equal(t, string(model.TypeOtherState), out[2].AgencyType)

	// Input untouched.
	assert.Equal(t, "Unknown", records[1].AgencyType)
}
