package pourpt

import "github.com/paulmach/orb/planar"

// Trace swims downstream from an anchored segment until an outgoing segment
// of higher Strahler order is met (the pour point is the shared node), the
// network ends (an outlet), or a node repeats (looping topology). Explicit
// loop with a visited-node set; every walk is bounded by the node count.
func (n *Network) Trace(a Anchor) Result {
	cur := &n.Segs[a.Iseg]
	res := Result{Nseg: 1}
	visited := map[int]bool{}
	for {
		nd := cur.ToNode
		if visited[nd] {
			res.Status = Cycle
			return res
		}
		visited[nd] = true

		outs := n.Out[nd]
		if len(outs) == 0 {
			res.Status, res.PP = Outlet, cur.EndPoint()
			return res
		}

		next := -1
		for _, i := range outs {
			if n.Segs[i].Order > cur.Order {
				res.Status, res.PP = Confluence, cur.EndPoint()
				return res
			}
			if next < 0 || n.Segs[i].Order > n.Segs[next].Order {
				next = i // continue along the mainstem; record order breaks ties
			}
		}
		cur = &n.Segs[next]
		res.Swum += planar.Length(cur.Geom) // higher-order reach excluded, as is the anchor remainder
		res.Nseg++
	}
}
