// Package model defines the agency dataset records and cleaning run metadata.
package model

import "time"

// AgencyType is a canonical agency classification.
type AgencyType string

// Canonical agency types. Every record leaves the cleaning pipeline with
// exactly one of these.
const (
	TypeCity       AgencyType = "City"
	TypeCounty     AgencyType = "County"
	TypeState      AgencyType = "State Police"
	TypeTribal     AgencyType = "Tribal"
	TypeUniversity AgencyType = "University or College"
	TypeOtherState AgencyType = "Other State Agencies"
)

// CanonicalTypes returns the closed set of post-cleaning agency types.
func CanonicalTypes() []AgencyType {
	return []AgencyType{
		TypeCity,
		TypeCounty,
		TypeState,
		TypeTribal,
		TypeUniversity,
		TypeOtherState,
	}
}

// AgencyRecord is one row of the working dataset. Nullable columns use
// pointers; a nil pointer means the raw field was absent or unparseable.
type AgencyRecord struct {
	ORI        string     `json:"ori"`
	AgencyName string     `json:"agency_name"`
	County     string     `json:"county"`
	State      string     `json:"state"`
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
	AgencyType string     `json:"agency_type,omitempty"`
	IsNIBRS    *bool      `json:"is_nibrs,omitempty"`
	NIBRSStart *time.Time `json:"nibrs_start_date,omitempty"`
	Year       *int       `json:"year,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are present.
func (r AgencyRecord) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// NIBRSConfirmed reports whether the record is flagged as a NIBRS reporter.
func (r AgencyRecord) NIBRSConfirmed() bool {
	return r.IsNIBRS != nil && *r.IsNIBRS
}
