package pourpt

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/maseology/mmio"
)

// Network the stream network as a directed graph: Segs holds every input
// segment in record order, Out maps a node id to the indices of the segments
// leaving it (encounter order preserved). Nodes absent from Out are outlets.
// Built once, read-only thereafter.
type Network struct {
	Segs []Segment
	Out  map[int][]int
}

// BuildNetwork groups segments by their FROM node. Purely structural;
// duplicate FROM/TO pairs and self-loops are kept as found.
func BuildNetwork(segs []Segment) *Network {
	out := make(map[int][]int, len(segs))
	for i, s := range segs {
		out[s.FromNode] = append(out[s.FromNode], i)
	}
	return &Network{Segs: segs, Out: out}
}

func (n *Network) CheckAndPrint() {
	nout, nself, mxord := 0, 0, 0
	nds := make(map[int]bool, 2*len(n.Segs))
	for _, s := range n.Segs {
		nds[s.FromNode] = true
		nds[s.ToNode] = true
		if s.FromNode == s.ToNode {
			nself++
		}
		if s.Order > mxord {
			mxord = s.Order
		}
	}
	for nd := range nds {
		if len(n.Out[nd]) == 0 {
			nout++
		}
	}
	fmt.Println("Network summary:")
	fmt.Printf(" %s segments, %s nodes\n", mmio.Thousands(int64(len(n.Segs))), mmio.Thousands(int64(len(nds))))
	fmt.Printf(" %d outlets, max Strahler order %d\n", nout, mxord)
	if nself > 0 {
		fmt.Printf(" warning: %d self-looping segments\n", nself)
	}
}

func (n *Network) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" network.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(n); err != nil {
		return fmt.Errorf(" network.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobNetwork(fp string) (*Network, error) {
	var n Network
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&n)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &n, nil
}
