package report

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// WriteXLSX writes a summary workbook with one sheet per breakdown:
// nationwide totals, per-state adoption, per-type adoption, and the
// cumulative adoption-by-year series.
func WriteXLSX(path string, s *Summary) error {
	f := xlsx.NewFile()

	nationwide, err := f.AddSheet("Nationwide")
	if err != nil {
		return eris.Wrap(err, "xlsx: add nationwide sheet")
	}
	headerRow(nationwide, "Total Agencies", "Reporting", "Reporting %")
	row := nationwide.AddRow()
	row.AddCell().SetInt(s.TotalAgencies)
	row.AddCell().SetInt(s.Reporting)
	row.AddCell().SetFloatWithFormat(s.ReportingPct, "0.0")

	states, err := f.AddSheet("By State")
	if err != nil {
		return eris.Wrap(err, "xlsx: add state sheet")
	}
	headerRow(states, "State", "Total", "Reporting", "Reporting %")
	for _, st := range s.States {
		row := states.AddRow()
		row.AddCell().Value = st.State
		row.AddCell().SetInt(st.Total)
		row.AddCell().SetInt(st.Reporting)
		row.AddCell().SetFloatWithFormat(st.ReportingPct, "0.0")
	}

	types, err := f.AddSheet("By Agency Type")
	if err != nil {
		return eris.Wrap(err, "xlsx: add type sheet")
	}
	headerRow(types, "Agency Type", "Total", "Reporting", "Reporting %")
	for _, ts := range s.Types {
		row := types.AddRow()
		row.AddCell().Value = string(ts.Type)
		row.AddCell().SetInt(ts.Total)
		row.AddCell().SetInt(ts.Reporting)
		row.AddCell().SetFloatWithFormat(ts.ReportingPct, "0.0")
	}

	adoption, err := f.AddSheet("Adoption By Year")
	if err != nil {
		return eris.Wrap(err, "xlsx: add adoption sheet")
	}
	headerRow(adoption, "Year", "Adopted", "Cumulative")
	for _, ya := range s.Adoption {
		row := adoption.AddRow()
		row.AddCell().SetInt(ya.Year)
		row.AddCell().SetInt(ya.Adopted)
		row.AddCell().SetInt(ya.Cumulative)
	}

	return eris.Wrapf(f.Save(path), "xlsx: save %s", path)
}

func headerRow(sheet *xlsx.Sheet, names ...string) {
	row := sheet.AddRow()
	for _, name := range names {
		row.AddCell().Value = name
	}
}
