//go:build !integration

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/nibrs-cli/internal/model"
	"github.com/sells-group/nibrs-cli/internal/report"
)

func TestFormatSummary(t *testing.T) {
	flag := true
	start := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	year := 2020

	records := []model.AgencyRecord{
		{
			ORI:        "GA0990000",
			AgencyName: "Lee County Sheriff's Office",
			State:      "GA",
			AgencyType: string(model.TypeCounty),
			IsNIBRS:    &flag,
			NIBRSStart: &start,
			Year:       &year,
		},
		{
			ORI:        "OH0120100",
			AgencyName: "Springfield Police Department",
			State:      "OH",
			AgencyType: string(model.TypeCity),
		},
	}

	var buf bytes.Buffer
	formatSummary(&buf, report.Build(records))

	output := buf.String()
	assert.Contains(t, output, "Agencies:")
	assert.Contains(t, output, "2")
	assert.Contains(t, output, "Reporting NIBRS:")
	assert.Contains(t, output, "50.0%")
	assert.Contains(t, output, "TYPE")
	assert.Contains(t, output, "County")
	assert.Contains(t, output, "City")
	assert.Contains(t, output, "YEAR")
	assert.Contains(t, output, "2020")
	assert.Contains(t, output, "CUMULATIVE")
}
