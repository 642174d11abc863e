package pipeline

import (
	"github.com/sells-group/nibrs-cli/internal/model"
)

// Placeholder county values that must not act as grouping keys for
// centroid computation.
const (
	countyNotSpecified = "NOT SPECIFIED"
	countyUnknown      = "Unknown"
)

// peerKey groups rows that describe the same physical agency split across
// multiple partial records.
type peerKey struct {
	Name   string
	County string
	State  string
}

// countyKey groups records for county-centroid computation.
type countyKey struct {
	County string
	State  string
}

// ImputeStats reports how many records gained coordinates at each fallback
// level, and how many remained without any.
type ImputeStats struct {
	Peer      int
	County    int
	State     int
	Remaining int
}

// coordAgg accumulates a null-safe running mean per axis. Latitude and
// longitude are aggregated independently: a record may carry one axis and
// not the other.
type coordAgg struct {
	latSum, lonSum     float64
	latCount, lonCount int
}

func (a *coordAgg) add(r model.AgencyRecord) {
	if r.Latitude != nil {
		a.latSum += *r.Latitude
		a.latCount++
	}
	if r.Longitude != nil {
		a.lonSum += *r.Longitude
		a.lonCount++
	}
}

// latMean returns the mean latitude and whether any value contributed.
// A group with zero non-null members yields no centroid rather than NaN.
func (a *coordAgg) latMean() (float64, bool) {
	if a.latCount == 0 {
		return 0, false
	}
	return a.latSum / float64(a.latCount), true
}

func (a *coordAgg) lonMean() (float64, bool) {
	if a.lonCount == 0 {
		return 0, false
	}
	return a.lonSum / float64(a.lonCount), true
}

// ImputeCoordinates fills missing latitude/longitude values through a
// three-level fallback hierarchy: peer mean, county centroid, state
// centroid. Each level only fills nulls the prior level left behind, and
// each level's centroids are computed over the values present after the
// prior level ran. A record no level can reach stays null; that is a data
// fact, not an error.
func ImputeCoordinates(records []model.AgencyRecord) ([]model.AgencyRecord, ImputeStats) {
	out := make([]model.AgencyRecord, len(records))
	copy(out, records)

	var stats ImputeStats

	// Level 1: peer mean over (agency_name, county, state). Recovers
	// fragmented rows of the same agency entity.
	peers := make(map[peerKey]*coordAgg)
	for _, r := range out {
		k := peerKey{Name: r.AgencyName, County: r.County, State: r.State}
		agg, ok := peers[k]
		if !ok {
			agg = &coordAgg{}
			peers[k] = agg
		}
		agg.add(r)
	}
	stats.Peer = fill(out, func(r model.AgencyRecord) *coordAgg {
		return peers[peerKey{Name: r.AgencyName, County: r.County, State: r.State}]
	})

	// Level 2: county centroid over (county, state). Placeholder county
	// values are excluded from both computation and matching.
	counties := make(map[countyKey]*coordAgg)
	for _, r := range out {
		if !validCounty(r.County) {
			continue
		}
		k := countyKey{County: r.County, State: r.State}
		agg, ok := counties[k]
		if !ok {
			agg = &coordAgg{}
			counties[k] = agg
		}
		agg.add(r)
	}
	stats.County = fill(out, func(r model.AgencyRecord) *coordAgg {
		if !validCounty(r.County) {
			return nil
		}
		return counties[countyKey{County: r.County, State: r.State}]
	})

	// Level 3: state centroid.
	states := make(map[string]*coordAgg)
	for _, r := range out {
		agg, ok := states[r.State]
		if !ok {
			agg = &coordAgg{}
			states[r.State] = agg
		}
		agg.add(r)
	}
	stats.State = fill(out, func(r model.AgencyRecord) *coordAgg {
		return states[r.State]
	})

	for _, r := range out {
		if !r.HasCoordinates() {
			stats.Remaining++
		}
	}

	return out, stats
}

// fill merges group means onto records with missing axes. Returns the
// number of records that gained at least one axis.
func fill(records []model.AgencyRecord, lookup func(model.AgencyRecord) *coordAgg) int {
	var filled int
	for i := range records {
		r := &records[i]
		if r.Latitude != nil && r.Longitude != nil {
			continue
		}

		agg := lookup(*r)
		if agg == nil {
			continue
		}

		var changed bool
		if r.Latitude == nil {
			if m, ok := agg.latMean(); ok {
				v := m
				r.Latitude = &v
				changed = true
			}
		}
		if r.Longitude == nil {
			if m, ok := agg.lonMean(); ok {
				v := m
				r.Longitude = &v
				changed = true
			}
		}
		if changed {
			filled++
		}
	}
	return filled
}

// validCounty reports whether a county value is a meaningful grouping key.
func validCounty(county string) bool {
	return county != "" && county != countyNotSpecified && county != countyUnknown
}
