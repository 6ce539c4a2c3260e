package pourpt

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/tidwall/rtree"
)

// SegmentIndex bounding-box r-tree over segment geometries, used to snap
// sites onto the network without scanning every reach.
type SegmentIndex struct {
	segs []Segment
	tr   rtree.RTreeG[int]
}

func NewSegmentIndex(segs []Segment) *SegmentIndex {
	x := &SegmentIndex{segs: segs}
	for i, s := range segs {
		b := s.Geom.Bound()
		x.tr.Insert([2]float64{b.Min[0], b.Min[1]}, [2]float64{b.Max[0], b.Max[1]}, i)
	}
	return x
}

// Locate snaps a site onto its nearest segment. The tolerance bound is
// inclusive; ok=false means no segment lies within tol of the site.
// Equidistant candidates resolve to the lower Strahler order (start the swim
// as far upstream as possible), then to record order.
func (x *SegmentIndex) Locate(p orb.Point, tol float64) (Anchor, bool) {
	a, ok := Anchor{Iseg: -1, Dist: math.Inf(1)}, false
	x.tr.Search([2]float64{p[0] - tol, p[1] - tol}, [2]float64{p[0] + tol, p[1] + tol},
		func(_, _ [2]float64, i int) bool {
			d, f := nearestOn(x.segs[i].Geom, p)
			if d > tol {
				return true
			}
			if d > a.Dist+nearzero {
				return true
			}
			if d > a.Dist-nearzero && ok { // equidistant
				if x.segs[i].Order > x.segs[a.Iseg].Order {
					return true
				}
				if x.segs[i].Order == x.segs[a.Iseg].Order && i > a.Iseg {
					return true
				}
			}
			a, ok = Anchor{Iseg: i, F: f, Dist: d}, true
			return true
		})
	return a, ok
}

// nearestOn returns the distance from p to the polyline and the fractional
// position (by length) of the closest point along it. orb/planar supplies the
// distance and the nearest chord; the parametric position is not exposed
// there, so the single-chord projection is computed locally.
func nearestOn(ls orb.LineString, p orb.Point) (float64, float64) {
	d, i := planar.DistanceFromWithIndex(ls, p)
	a, b := ls[i], ls[i+1]
	dx, dy := b[0]-a[0], b[1]-a[1]
	t := 0.
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / l2
		if t < 0. {
			t = 0.
		} else if t > 1. {
			t = 1.
		}
	}
	tot, pre := 0., 0.
	for j := 0; j < len(ls)-1; j++ {
		l := planar.Distance(ls[j], ls[j+1])
		if j < i {
			pre += l
		} else if j == i {
			pre += t * l
		}
		tot += l
	}
	if tot == 0. {
		return d, 0.
	}
	return d, pre / tot
}
