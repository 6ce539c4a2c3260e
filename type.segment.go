package pourpt

import "github.com/paulmach/orb"

// Segment one directed reach of the stream network; FromNode-->ToNode is
// assumed to point downstream.
type Segment struct {
	Geom     orb.LineString
	Order    int // Strahler order
	FromNode int
	ToNode   int
	ID       int // source record id
}

// EndPoint the segment's downstream node coordinate
func (s *Segment) EndPoint() orb.Point {
	return s.Geom[len(s.Geom)-1]
}
