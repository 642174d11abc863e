// Package export writes cleaned agency snapshots as CSV and GeoJSON
// artifacts for the downstream reporting and mapping collaborators.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/nibrs-cli/internal/model"
)

// csvColumns is the output schema contract: the raw input columns plus the
// derived year appended.
var csvColumns = []string{
	"ori", "agency_name", "county", "state",
	"latitude", "longitude", "agency_type",
	"is_nibrs", "nibrs_start_date", "year",
}

// WriteCSVFile writes the cleaned snapshot to path.
func WriteCSVFile(path string, records []model.AgencyRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}

	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return eris.Wrapf(f.Close(), "export: close %s", path)
}

// WriteCSV writes the cleaned snapshot to w. Null values render as empty
// cells, booleans as true/false, dates as 2006-01-02.
func WriteCSV(w io.Writer, records []model.AgencyRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvColumns); err != nil {
		return eris.Wrap(err, "export: write CSV header")
	}

	for _, r := range records {
		row := []string{
			r.ORI,
			r.AgencyName,
			r.County,
			r.State,
			floatCell(r.Latitude),
			floatCell(r.Longitude),
			r.AgencyType,
			boolCell(r.IsNIBRS),
			dateCell(r.NIBRSStart),
			intCell(r.Year),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrapf(err, "export: write CSV row %s", r.ORI)
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush CSV")
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func boolCell(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func dateCell(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02")
}
