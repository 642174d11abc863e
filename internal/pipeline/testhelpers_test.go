package pipeline

import (
	"time"

	"github.com/sells-group/nibrs-cli/internal/model"
)

func fptr(v float64) *float64 { return &v }

func bptr(v bool) *bool { return &v }

func dptr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func agency(ori, name, county, state string) model.AgencyRecord {
	return model.AgencyRecord{ORI: ori, AgencyName: name, County: county, State: state}
}

func located(ori, name, county, state string, lat, lon float64) model.AgencyRecord {
	r := agency(ori, name, county, state)
	r.Latitude = fptr(lat)
	r.Longitude = fptr(lon)
	return r
}
