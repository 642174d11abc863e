package pipeline

import (
	"github.com/sells-group/nibrs-cli/internal/model"
)

// DeriveYear extracts the adoption year from each record's NIBRS start
// date. Records without a date keep a null year.
func DeriveYear(records []model.AgencyRecord) []model.AgencyRecord {
	out := make([]model.AgencyRecord, len(records))
	copy(out, records)

	for i := range out {
		if out[i].NIBRSStart == nil {
			out[i].Year = nil
			continue
		}
		y := out[i].NIBRSStart.Year()
		out[i].Year = &y
	}
	return out
}
