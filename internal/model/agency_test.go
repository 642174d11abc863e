package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasCoordinates(t *testing.T) {
	lat, lon := 31.78, -84.14

	assert.False(t, AgencyRecord{}.HasCoordinates())
	assert.False(t, AgencyRecord{Latitude: &lat}.HasCoordinates())
	assert.False(t, AgencyRecord{Longitude: &lon}.HasCoordinates())
	assert.True(t, AgencyRecord{Latitude: &lat, Longitude: &lon}.HasCoordinates())
}

func TestNIBRSConfirmed(t *testing.T) {
	flagTrue := true
	flagFalse := false
	start := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.False(t, AgencyRecord{}.NIBRSConfirmed())
	assert.False(t, AgencyRecord{IsNIBRS: &flagFalse}.NIBRSConfirmed())
	assert.True(t, AgencyRecord{IsNIBRS: &flagTrue}.NIBRSConfirmed())
	assert.True(t, AgencyRecord{IsNIBRS: &flagTrue, NIBRSStart: &start}.NIBRSConfirmed())
}

func TestCanonicalTypes(t *testing.T) {
	types := CanonicalTypes()
	assert.Len(t, types, 6)
	assert.Equal(t, TypeCity, types[0])
	assert.Contains(t, types, TypeOtherState)
}
