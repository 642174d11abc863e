// Package report computes descriptive adoption statistics over a cleaned
// agency snapshot for the downstream narrative report.
package report

import (
	"sort"

	"github.com/sells-group/nibrs-cli/internal/model"
)

// Summary holds nationwide and grouped NIBRS adoption statistics.
type Summary struct {
	TotalAgencies int            `json:"total_agencies"`
	Reporting     int            `json:"reporting"`
	ReportingPct  float64        `json:"reporting_pct"`
	States        []StateSummary `json:"states"`
	Types         []TypeSummary  `json:"types"`
	Adoption      []YearAdoption `json:"adoption_by_year"`
}

// StateSummary is per-state adoption.
type StateSummary struct {
	State        string  `json:"state"`
	Total        int     `json:"total"`
	Reporting    int     `json:"reporting"`
	ReportingPct float64 `json:"reporting_pct"`
}

// TypeSummary is per-agency-type adoption.
type TypeSummary struct {
	Type         model.AgencyType `json:"type"`
	Total        int              `json:"total"`
	Reporting    int              `json:"reporting"`
	ReportingPct float64          `json:"reporting_pct"`
}

// YearAdoption is one point of the cumulative adoption series.
type YearAdoption struct {
	Year       int `json:"year"`
	Adopted    int `json:"adopted"`
	Cumulative int `json:"cumulative"`
}

// Build computes adoption statistics from a cleaned snapshot. States are
// sorted alphabetically, types in canonical order, years ascending.
func Build(records []model.AgencyRecord) *Summary {
	s := &Summary{TotalAgencies: len(records)}

	stateTotals := make(map[string]int)
	stateReporting := make(map[string]int)
	typeTotals := make(map[model.AgencyType]int)
	typeReporting := make(map[model.AgencyType]int)
	yearCounts := make(map[int]int)

	for _, r := range records {
		reporting := r.NIBRSConfirmed()
		if reporting {
			s.Reporting++
		}

		stateTotals[r.State]++
		typeTotals[model.AgencyType(r.AgencyType)]++
		if reporting {
			stateReporting[r.State]++
			typeReporting[model.AgencyType(r.AgencyType)]++
		}

		if r.Year != nil {
			yearCounts[*r.Year]++
		}
	}

	s.ReportingPct = pct(s.Reporting, s.TotalAgencies)

	states := make([]string, 0, len(stateTotals))
	for st := range stateTotals {
		states = append(states, st)
	}
	sort.Strings(states)
	for _, st := range states {
		s.States = append(s.States, StateSummary{
			State:        st,
			Total:        stateTotals[st],
			Reporting:    stateReporting[st],
			ReportingPct: pct(stateReporting[st], stateTotals[st]),
		})
	}

	for _, typ := range model.CanonicalTypes() {
		if typeTotals[typ] == 0 {
			continue
		}
		s.Types = append(s.Types, TypeSummary{
			Type:         typ,
			Total:        typeTotals[typ],
			Reporting:    typeReporting[typ],
			ReportingPct: pct(typeReporting[typ], typeTotals[typ]),
		})
	}

	years := make([]int, 0, len(yearCounts))
	for y := range yearCounts {
		years = append(years, y)
	}
	sort.Ints(years)
	var cumulative int
	for _, y := range years {
		cumulative += yearCounts[y]
		s.Adoption = append(s.Adoption, YearAdoption{
			Year:       y,
			Adopted:    yearCounts[y],
			Cumulative: cumulative,
		})
	}

	return s
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
