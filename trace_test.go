package pourpt

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestTrace_Confluence(t *testing.T) {
	// orders [1,1,2] chained 1->2->3->4; anchored on the first reach, the
	// swim passes the second and stops at node 3 where order steps to 2
	n := BuildNetwork([]Segment{
		{Geom: orb.LineString{{0, 0}, {10, 0}}, Order: 1, FromNode: 1, ToNode: 2, ID: 0},
		{Geom: orb.LineString{{10, 0}, {20, 0}}, Order: 1, FromNode: 2, ToNode: 3, ID: 1},
		{Geom: orb.LineString{{20, 0}, {30, 0}}, Order: 2, FromNode: 3, ToNode: 4, ID: 2},
	})

	r := n.Trace(Anchor{Iseg: 0, F: 0.5})
	if r.Status != Confluence {
		t.Fatalf("expected confluence, got %v", r.Status)
	}
	if !r.PP.Equal(orb.Point{20, 0}) {
		t.Errorf("pour point at %v, expected node 3 coordinate (20 0)", r.PP)
	}
	if r.Nseg != 2 {
		t.Errorf("expected 2 segments traversed, got %d", r.Nseg)
	}
	if r.Swum != 10. {
		t.Errorf("expected swum length 10, got %f", r.Swum)
	}
}

func TestTrace_AnchorAtConfluence(t *testing.T) {
	// anchored on the reach immediately above the order increase
	n := BuildNetwork([]Segment{
		{Geom: orb.LineString{{10, 0}, {20, 0}}, Order: 1, FromNode: 2, ToNode: 3, ID: 0},
		{Geom: orb.LineString{{20, 0}, {30, 0}}, Order: 2, FromNode: 3, ToNode: 4, ID: 1},
	})
	r := n.Trace(Anchor{Iseg: 0, F: 1.})
	if r.Status != Confluence || !r.PP.Equal(orb.Point{20, 0}) {
		t.Errorf("expected confluence at (20 0), got %v at %v", r.Status, r.PP)
	}
	if r.Swum != 0. {
		t.Errorf("no advance expected, swum %f", r.Swum)
	}
}

func TestTrace_Outlet(t *testing.T) {
	n := BuildNetwork([]Segment{
		{Geom: orb.LineString{{0, 0}, {10, 0}}, Order: 1, FromNode: 1, ToNode: 2, ID: 0},
		{Geom: orb.LineString{{10, 0}, {20, 5}}, Order: 1, FromNode: 2, ToNode: 3, ID: 1},
	})
	r := n.Trace(Anchor{Iseg: 0, F: 0.})
	if r.Status != Outlet {
		t.Fatalf("expected outlet, got %v", r.Status)
	}
	if !r.PP.Equal(orb.Point{20, 5}) {
		t.Errorf("expected outlet at the network's end coordinate, got %v", r.PP)
	}
}

func TestTrace_CycleSelfLoop(t *testing.T) {
	n := BuildNetwork([]Segment{
		{Geom: orb.LineString{{0, 0}, {5, 5}, {0, 0}}, Order: 1, FromNode: 5, ToNode: 5, ID: 0},
		{Geom: orb.LineString{{0, 0}, {5, -5}, {0, 0}}, Order: 1, FromNode: 5, ToNode: 5, ID: 1},
	})
	r := n.Trace(Anchor{Iseg: 0, F: 0.5})
	if r.Status != Cycle {
		t.Errorf("expected cycle, got %v", r.Status)
	}
}

func TestTrace_CycleLoopBack(t *testing.T) {
	n := BuildNetwork([]Segment{
		{Geom: orb.LineString{{0, 0}, {10, 0}}, Order: 1, FromNode: 1, ToNode: 2, ID: 0},
		{Geom: orb.LineString{{10, 0}, {10, 10}}, Order: 1, FromNode: 2, ToNode: 3, ID: 1},
		{Geom: orb.LineString{{10, 10}, {0, 0}}, Order: 1, FromNode: 3, ToNode: 1, ID: 2},
	})
	r := n.Trace(Anchor{Iseg: 0, F: 0.})
	if r.Status != Cycle {
		t.Errorf("expected cycle, got %v", r.Status)
	}
}

func TestTrace_OrderDecreaseAdvances(t *testing.T) {
	// decreasing order downstream is bad data but must not abort the swim
	n := BuildNetwork([]Segment{
		{Geom: orb.LineString{{0, 0}, {10, 0}}, Order: 2, FromNode: 1, ToNode: 2, ID: 0},
		{Geom: orb.LineString{{10, 0}, {20, 0}}, Order: 1, FromNode: 2, ToNode: 3, ID: 1},
		{Geom: orb.LineString{{20, 0}, {30, 0}}, Order: 3, FromNode: 3, ToNode: 4, ID: 2},
	})
	r := n.Trace(Anchor{Iseg: 0, F: 0.})
	if r.Status != Confluence {
		t.Fatalf("expected confluence, got %v", r.Status)
	}
	if !r.PP.Equal(orb.Point{20, 0}) {
		t.Errorf("expected pour point at (20 0), got %v", r.PP)
	}
}

func TestTrace_MainstemTieBreak(t *testing.T) {
	// several qualifying downstream reaches: follow the highest order <=
	// current, first-encountered on ties
	n := BuildNetwork([]Segment{
		{Geom: orb.LineString{{0, 0}, {10, 0}}, Order: 2, FromNode: 1, ToNode: 2, ID: 0},
		{Geom: orb.LineString{{10, 0}, {20, 5}}, Order: 1, FromNode: 2, ToNode: 3, ID: 1},
		{Geom: orb.LineString{{10, 0}, {20, 0}}, Order: 2, FromNode: 2, ToNode: 4, ID: 2},
		{Geom: orb.LineString{{10, 0}, {20, -5}}, Order: 2, FromNode: 2, ToNode: 5, ID: 3},
	})
	r := n.Trace(Anchor{Iseg: 0, F: 0.})
	if r.Status != Outlet {
		t.Fatalf("expected outlet, got %v", r.Status)
	}
	if !r.PP.Equal(orb.Point{20, 0}) { // advanced along segment 2, not 1 or 3
		t.Errorf("expected the first order-2 reach, ended at %v", r.PP)
	}
}
