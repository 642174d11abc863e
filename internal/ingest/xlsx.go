package ingest

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/nibrs-cli/internal/model"
)

// LoadXLSX reads agency records from the first sheet of an XLSX workbook.
// The sheet follows the same column contract as the CSV form: the first row
// is the header, and the required columns must all be present.
func LoadXLSX(path string) ([]model.AgencyRecord, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open %s", path)
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("ingest: workbook %s has no sheets", path)
	}

	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("ingest: sheet %q is empty", sheet.Name)
	}

	colIdx := mapColumns(rowToStrings(sheet.Rows[0]))
	if err := checkRequired(colIdx); err != nil {
		return nil, err
	}

	var records []model.AgencyRecord
	for _, row := range sheet.Rows[1:] {
		cells := rowToStrings(row)
		if blankRow(cells) {
			continue
		}
		records = append(records, buildRecord(cells, colIdx))
	}

	return records, nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}

// blankRow reports whether every cell is empty. Spreadsheets commonly carry
// trailing formatting-only rows.
func blankRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
