package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/nibrs-cli/internal/model"
)

// WriteGeoJSONFile writes geocoded agencies to path as a GeoJSON
// FeatureCollection.
func WriteGeoJSONFile(path string, records []model.AgencyRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}

	if err := WriteGeoJSON(f, records); err != nil {
		f.Close()
		return err
	}
	return eris.Wrapf(f.Close(), "export: close %s", path)
}

// WriteGeoJSON writes one point feature per geocoded agency. Records
// still missing coordinates after imputation carry no spatial information
// and are skipped; the CSV artifact remains the complete record of those.
func WriteGeoJSON(w io.Writer, records []model.AgencyRecord) error {
	fc := geojson.FeatureCollection{}

	for _, r := range records {
		if !r.HasCoordinates() {
			continue
		}

		props := map[string]any{
			"ori":         r.ORI,
			"agency_name": r.AgencyName,
			"county":      r.County,
			"state":       r.State,
			"agency_type": r.AgencyType,
			"is_nibrs":    r.NIBRSConfirmed(),
		}
		if r.Year != nil {
			props["year"] = *r.Year
		}

		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry:   geom.NewPointFlat(geom.XY, []float64{*r.Longitude, *r.Latitude}).SetSRID(4326),
			Properties: props,
		})
	}

	enc := json.NewEncoder(w)
	return eris.Wrap(enc.Encode(&fc), "export: encode GeoJSON")
}
