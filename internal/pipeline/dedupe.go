// Package pipeline implements the agency dataset cleaning pipeline:
// deduplication, coordinate imputation, type classification, NIBRS
// flag/date consistency repair, and adoption-year derivation.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/sells-group/nibrs-cli/internal/model"
)

// identityKey is the composite key that uniquely identifies an agency.
// Agencies in different counties or states may legitimately share an ORI.
type identityKey struct {
	ORI    string
	County string
	State  string
}

func identity(r model.AgencyRecord) identityKey {
	return identityKey{ORI: r.ORI, County: r.County, State: r.State}
}

// DedupeStats reports what deduplication removed and observed.
type DedupeStats struct {
	Exact          int // fully identical rows dropped
	Key            int // identity-duplicate rows dropped
	NameCollisions int // distinct agencies sharing a name, preserved
}

// Dedupe removes duplicate rows in two passes: first rows identical across
// every field, then rows sharing (ORI, county, state), keeping the
// first-seen representative. Input order is preserved for the survivors.
//
// Records that share an agency name but differ in identity are counted for
// diagnostics and kept; same-named departments in different states are
// distinct agencies, not duplicates.
func Dedupe(records []model.AgencyRecord) ([]model.AgencyRecord, DedupeStats) {
	var stats DedupeStats

	seen := make(map[string]struct{}, len(records))
	keys := make(map[identityKey]struct{}, len(records))
	out := make([]model.AgencyRecord, 0, len(records))

	for _, r := range records {
		fp := fingerprint(r)
		if _, ok := seen[fp]; ok {
			stats.Exact++
			continue
		}
		seen[fp] = struct{}{}

		key := identity(r)
		if _, ok := keys[key]; ok {
			stats.Key++
			continue
		}
		keys[key] = struct{}{}

		out = append(out, r)
	}

	stats.NameCollisions = countNameCollisions(out)
	return out, stats
}

// countNameCollisions counts surviving records whose agency name also
// appears under a different identity key.
func countNameCollisions(records []model.AgencyRecord) int {
	byName := make(map[string]int, len(records))
	for _, r := range records {
		byName[r.AgencyName]++
	}

	var n int
	for _, r := range records {
		if byName[r.AgencyName] > 1 {
			n++
		}
	}
	return n
}

// fingerprint serializes every field of a record for exact-duplicate
// detection. Nil pointers render distinctly from zero values.
func fingerprint(r model.AgencyRecord) string {
	parts := []string{
		r.ORI,
		r.AgencyName,
		r.County,
		r.State,
		r.AgencyType,
	}
	if r.Latitude != nil {
		parts = append(parts, fmt.Sprintf("%g", *r.Latitude))
	} else {
		parts = append(parts, "\x00")
	}
	if r.Longitude != nil {
		parts = append(parts, fmt.Sprintf("%g", *r.Longitude))
	} else {
		parts = append(parts, "\x00")
	}
	if r.IsNIBRS != nil {
		parts = append(parts, fmt.Sprintf("%t", *r.IsNIBRS))
	} else {
		parts = append(parts, "\x00")
	}
	if r.NIBRSStart != nil {
		parts = append(parts, r.NIBRSStart.Format("2006-01-02"))
	} else {
		parts = append(parts, "\x00")
	}
	return strings.Join(parts, "\x1f")
}
