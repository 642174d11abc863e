package pipeline

import (
	"github.com/sells-group/nibrs-cli/internal/model"
)

// MismatchCounts reports the two directions of flag/date disagreement.
// Only FlagFalseWithDate is a contradiction the pipeline corrects;
// FlagTrueNoDate is a plausible state (adoption confirmed, start date
// unknown) surfaced for audit only.
type MismatchCounts struct {
	FlagFalseWithDate int
	FlagTrueNoDate    int
}

// CountMismatches computes both mismatch directions without modifying
// the dataset. Call before Repair for audit numbers.
func CountMismatches(records []model.AgencyRecord) MismatchCounts {
	var c MismatchCounts
	for _, r := range records {
		hasDate := r.NIBRSStart != nil
		switch {
		case hasDate && r.IsNIBRS != nil && !*r.IsNIBRS:
			c.FlagFalseWithDate++
		case !hasDate && r.NIBRSConfirmed():
			c.FlagTrueNoDate++
		}
	}
	return c
}

// Repair enforces flag/date consistency: a record with a NIBRS start date
// is a NIBRS reporter, whatever its flag said. The repair is
// one-directional; a true flag without a date is left alone. Returns the
// repaired dataset and the number of records whose flag was rewritten.
func Repair(records []model.AgencyRecord) ([]model.AgencyRecord, int) {
	out := make([]model.AgencyRecord, len(records))
	copy(out, records)

	var repaired int
	for i := range out {
		if out[i].NIBRSStart == nil {
			continue
		}
		if out[i].IsNIBRS == nil || !*out[i].IsNIBRS {
			repaired++
		}
		v := true
		out[i].IsNIBRS = &v
	}
	return out, repaired
}
