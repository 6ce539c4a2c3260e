// Package prep ingests and validates the vector inputs ahead of the core
// computation: stream network polylines and survey site points, both read
// from GeoJSON feature collections.
package prep

import (
	"fmt"
	"math"
	"os"

	pourpt "github.com/agd1021/downstream-pour-point"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// SchemaError a required field is missing or mistyped on an input feature.
// Fatal: nothing partial is returned and no network is built.
type SchemaError struct {
	Feature int
	Field   string
	Msg     string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input schema error: feature %d, field %q: %s", e.Feature, e.Field, e.Msg)
}

// ReadStreams reads the stream network. Every feature must carry a polyline
// geometry and the fields StrahlerOr (>0), FROM_NODE and TO_NODE.
func ReadStreams(fp string) ([]pourpt.Segment, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf(" ReadStreams %v", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, fmt.Errorf(" ReadStreams %v", err)
	}

	segs := make([]pourpt.Segment, 0, len(fc.Features))
	for i, f := range fc.Features {
		var ls orb.LineString
		switch g := f.Geometry.(type) {
		case orb.LineString:
			ls = g
		case orb.MultiLineString:
			if len(g) != 1 {
				return nil, &SchemaError{i, "geometry", "multi-part polyline"}
			}
			ls = g[0]
		default:
			return nil, &SchemaError{i, "geometry", "not a polyline"}
		}
		if len(ls) < 2 {
			return nil, &SchemaError{i, "geometry", "degenerate polyline"}
		}

		ord, err := reqInt(f, i, "StrahlerOr")
		if err != nil {
			return nil, err
		}
		if ord <= 0 {
			return nil, &SchemaError{i, "StrahlerOr", "must be positive"}
		}
		fn, err := reqInt(f, i, "FROM_NODE")
		if err != nil {
			return nil, err
		}
		tn, err := reqInt(f, i, "TO_NODE")
		if err != nil {
			return nil, err
		}

		segs = append(segs, pourpt.Segment{Geom: ls, Order: ord, FromNode: fn, ToNode: tn, ID: i})
	}
	return segs, nil
}

func reqInt(f *geojson.Feature, i int, key string) (int, error) {
	v, ok := f.Properties[key]
	if !ok {
		return 0, &SchemaError{i, key, "missing"}
	}
	switch n := v.(type) {
	case float64: // json numbers
		if n != math.Trunc(n) {
			return 0, &SchemaError{i, key, "not an integer"}
		}
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, &SchemaError{i, key, "not a number"}
}
