package pourpt

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/im7mortal/UTM"
	"github.com/maseology/mmio"
	"github.com/paulmach/orb/geojson"
)

// WriteGeoJSON writes one output feature per input site, in input order,
// carrying the site's properties, its name, and the trace status. Confluence
// and outlet features are placed at the traced point; unmatched and cycle
// features echo the site's own location so every site appears in the output.
// utmzone > 0 appends geographic coordinates to the feature properties.
func WriteGeoJSON(fp string, res []Result, utmzone int) error {
	fc := geojson.NewFeatureCollection()
	for _, r := range res {
		pt := r.Site.Pt
		if r.Status == Confluence || r.Status == Outlet {
			pt = r.PP
		}
		f := geojson.NewFeature(pt)
		for k, v := range r.Site.Props {
			f.Properties[k] = v
		}
		f.Properties["Site"] = r.Site.Name
		f.Properties["Status"] = r.Status.String()
		if r.Status == Confluence || r.Status == Outlet {
			f.Properties["SwumLength"] = r.Swum
			f.Properties["Nsegments"] = r.Nseg
		}
		if utmzone > 0 {
			latitude, longitude, err := UTM.ToLatLon(pt[0], pt[1], utmzone, "", true)
			if err != nil {
				return fmt.Errorf(" WriteGeoJSON %v", err)
			}
			f.Properties["Lat"], f.Properties["Lng"] = latitude, longitude
		}
		fc.Append(f)
	}
	b, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf(" WriteGeoJSON %v", err)
	}
	if err := os.WriteFile(fp, b, 0644); err != nil { // see: https://en.wikipedia.org/wiki/File_system_permissions
		return fmt.Errorf(" WriteGeoJSON %v", err)
	}
	return nil
}

// WriteSummary one csv line per site
func WriteSummary(fp string, res []Result) {
	lns := make([]string, len(res)+1)
	lns[0] = "site,status,x,y,swum,nseg"
	for i, r := range res {
		switch r.Status {
		case Confluence, Outlet:
			lns[i+1] = fmt.Sprintf("%s,%s,%f,%f,%f,%d", r.Site.Name, r.Status, r.PP[0], r.PP[1], r.Swum, r.Nseg)
		default:
			lns[i+1] = fmt.Sprintf("%s,%s,,,,", r.Site.Name, r.Status)
		}
	}
	mmio.WriteLines(fp, lns)
}
