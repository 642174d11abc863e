// Package ingest loads the raw agency dataset from CSV into memory.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/nibrs-cli/internal/model"
)

// requiredColumns are the columns the raw dataset must carry. A header
// missing any of these is a structural failure, not a cleanable defect.
var requiredColumns = []string{
	"ori",
	"agency_name",
	"county",
	"state",
	"latitude",
	"longitude",
	"agency_type",
	"is_nibrs",
	"nibrs_start_date",
}

// dateLayouts are the accepted nibrs_start_date formats, tried in order.
var dateLayouts = []string{"2006-01-02", "01/02/2006", time.RFC3339}

// LoadFile reads an agency dataset from disk, dispatching on the file
// extension: .xlsx workbooks go through the XLSX path, everything else is
// treated as CSV.
func LoadFile(path string) ([]model.AgencyRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open %s", path)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads agency records from r. Malformed field values degrade to null;
// a missing required column aborts with the column named.
func Parse(r io.Reader) ([]model.AgencyRecord, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read CSV header")
	}

	colIdx := mapColumns(header)
	if err := checkRequired(colIdx); err != nil {
		return nil, err
	}

	var records []model.AgencyRecord
	var skipped int

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue // skip structurally malformed rows
		}

		records = append(records, buildRecord(record, colIdx))
	}

	if skipped > 0 {
		zap.L().Warn("ingest: skipped malformed CSV rows", zap.Int("rows", skipped))
	}

	return records, nil
}

// checkRequired verifies every required column is present in the header map.
func checkRequired(colIdx map[string]int) error {
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return eris.Errorf("ingest: required column %q missing from header", col)
		}
	}
	return nil
}

// buildRecord converts one raw row into an AgencyRecord.
func buildRecord(record []string, colIdx map[string]int) model.AgencyRecord {
	rec := model.AgencyRecord{
		ORI:        trimQuotes(getCol(record, colIdx, "ori")),
		AgencyName: sanitizeUTF8(trimQuotes(getCol(record, colIdx, "agency_name"))),
		County:     sanitizeUTF8(trimQuotes(getCol(record, colIdx, "county"))),
		State:      trimQuotes(getCol(record, colIdx, "state")),
		AgencyType: sanitizeUTF8(trimQuotes(getCol(record, colIdx, "agency_type"))),
		Latitude:   parseFloatPtr(getCol(record, colIdx, "latitude")),
		Longitude:  parseFloatPtr(getCol(record, colIdx, "longitude")),
		IsNIBRS:    parseBoolPtr(getCol(record, colIdx, "is_nibrs")),
		NIBRSStart: parseDatePtr(getCol(record, colIdx, "nibrs_start_date")),
	}

	// Present only in cleaned snapshots; optional on read.
	if _, ok := colIdx["year"]; ok {
		rec.Year = parseIntPtr(getCol(record, colIdx, "year"))
	}

	return rec
}

// mapColumns builds a lowercased column name → index map.
func mapColumns(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, col := range header {
		m[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return m
}

// getCol gets a column value by name, or "" when absent.
func getCol(record []string, colIdx map[string]int, name string) string {
	idx, ok := colIdx[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// trimQuotes removes surrounding double quotes from a CSV field.
func trimQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}

// sanitizeUTF8 replaces invalid UTF-8 byte sequences (e.g., Latin-1 data)
// with empty strings.
func sanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "")
}

// parseFloatPtr parses a coordinate value, returning nil for empty,
// sentinel, or non-numeric input.
func parseFloatPtr(s string) *float64 {
	s = trimQuotes(s)
	if s == "" || strings.EqualFold(s, "NA") || strings.EqualFold(s, "null") {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseIntPtr parses an integer value, returning nil when unparseable.
func parseIntPtr(s string) *int {
	s = trimQuotes(s)
	if s == "" || strings.EqualFold(s, "NA") {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// parseBoolPtr parses a reporting flag. Accepts true/false, t/f, yes/no,
// y/n, and 1/0 case-insensitively; anything else is null.
func parseBoolPtr(s string) *bool {
	s = strings.ToLower(trimQuotes(s))
	switch s {
	case "true", "t", "yes", "y", "1":
		v := true
		return &v
	case "false", "f", "no", "n", "0":
		v := false
		return &v
	default:
		return nil
	}
}

// parseDatePtr parses a date value against the accepted layouts, returning
// nil when none match.
func parseDatePtr(s string) *time.Time {
	s = trimQuotes(s)
	if s == "" || strings.EqualFold(s, "NA") {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
