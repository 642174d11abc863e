package pipeline

import (
	"strings"

	"github.com/sells-group/nibrs-cli/internal/model"
)

// nameRule maps agency-name substrings to a canonical type. Matching is
// case-insensitive; the first rule with any matching substring wins.
type nameRule struct {
	substrings []string
	result     model.AgencyType
}

// nameRules is evaluated in order. Name patterns outrank the upstream
// agency_type label, which is known to be unreliable.
var nameRules = []nameRule{
	{substrings: []string{"police department"}, result: model.TypeCity},
	{substrings: []string{"county sheriff's office"}, result: model.TypeCounty},
	{substrings: []string{"state police", "state patrol", "highway patrol"}, result: model.TypeState},
	{substrings: []string{"state park", "state fire"}, result: model.TypeOtherState},
	{substrings: []string{"tribal"}, result: model.TypeTribal},
	{substrings: []string{"university", "college"}, result: model.TypeUniversity},
}

// Classify returns the canonical agency type for a record. Total: every
// input resolves to one of the six canonical values, with unmatched names
// and catch-all upstream labels collapsing into Other State Agencies.
func Classify(agencyName, existingType string) model.AgencyType {
	lower := strings.ToLower(agencyName)

	for _, rule := range nameRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.result
			}
		}
	}

	// No name pattern fired. Upstream catch-all labels ("Other State
	// Agency", "Other") and everything unrecognized, including a missing
	// label, collapse into the same bucket to avoid a long tail of
	// low-count categories.
	return model.TypeOtherState
}

// ClassifyAll applies Classify to every record, returning the rewritten
// dataset and the number of records whose type changed.
func ClassifyAll(records []model.AgencyRecord) ([]model.AgencyRecord, int) {
	out := make([]model.AgencyRecord, len(records))
	copy(out, records)

	var changed int
	for i := range out {
		canonical := Classify(out[i].AgencyName, out[i].AgencyType)
		if out[i].AgencyType != string(canonical) {
			changed++
		}
		out[i].AgencyType = string(canonical)
	}
	return out, changed
}
