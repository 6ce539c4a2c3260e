package prep

import (
	"fmt"
	"os"
	"strings"

	pourpt "github.com/agd1021/downstream-pour-point"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ReadSites reads the survey points. Names come from the Sites field (spaces
// replaced, as downstream file naming depends on them), falling back to the
// feature's position in the collection; all feature properties are carried
// through to the output untouched.
func ReadSites(fp string) ([]pourpt.Site, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf(" ReadSites %v", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, fmt.Errorf(" ReadSites %v", err)
	}

	sites := make([]pourpt.Site, 0, len(fc.Features))
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, &SchemaError{i, "geometry", "not a point"}
		}
		nam := fmt.Sprintf("site%d", i)
		if v, ok := f.Properties["Sites"]; ok {
			nam = strings.ReplaceAll(fmt.Sprint(v), " ", "_")
		}
		sites = append(sites, pourpt.Site{Pt: pt, Name: nam, Props: f.Properties})
	}
	return sites, nil
}
