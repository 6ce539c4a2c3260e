package pourpt

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Site a survey point located transiently against the network; Props are
// carried through to the output untouched.
type Site struct {
	Pt    orb.Point
	Name  string
	Props geojson.Properties
}

// Anchor a site snapped onto the network
type Anchor struct {
	Iseg int     // index into Network.Segs
	F    float64 // fraction along the segment polyline (0..1)
	Dist float64 // site-to-segment distance
}

// Status trace outcome tag
type Status int

const (
	Confluence Status = iota
	Outlet
	Unmatched
	Cycle
)

func (s Status) String() string {
	switch s {
	case Confluence:
		return "confluence"
	case Outlet:
		return "outlet"
	case Unmatched:
		return "unmatched"
	case Cycle:
		return "cycle"
	}
	return "unknown"
}

// Result one per input site, in input order
type Result struct {
	Status Status
	PP     orb.Point // pour point; valid for Confluence and Outlet only
	Swum   float64   // length of full segments traversed below the anchor segment
	Nseg   int       // segments traversed, anchor included
	Site   Site
}
