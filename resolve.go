package pourpt

import (
	"runtime"
	"sync"

	"github.com/gosuri/uiprogress"
)

// Resolve locates then traces every site over a pool of nwrkrs workers
// (GOMAXPROCS when nwrkrs < 1). Sites are independent and the network and
// index are read-only, so no locking; each worker writes only its own result
// slot and the returned slice is in input site order.
func Resolve(n *Network, x *SegmentIndex, sites []Site, tol float64, nwrkrs int) []Result {
	if nwrkrs < 1 {
		nwrkrs = runtime.GOMAXPROCS(0)
	}
	res := make([]Result, len(sites))
	var wg sync.WaitGroup
	ich := make(chan int, nwrkrs)
	for w := 0; w < nwrkrs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range ich {
				res[i] = resolveOne(n, x, sites[i], tol)
			}
		}()
	}
	for i := range sites {
		ich <- i
	}
	close(ich)
	wg.Wait()
	return res
}

// ResolveSerial single-threaded resolve with a progress bar
func ResolveSerial(n *Network, x *SegmentIndex, sites []Site, tol float64) []Result {
	uiprogress.Start()
	sitename := make(chan string)
	bar := uiprogress.AddBar(len(sites)).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return <-sitename
	})

	res := make([]Result, len(sites))
	for i, s := range sites {
		sitename <- s.Name
		res[i] = resolveOne(n, x, s, tol)
		bar.Incr()
	}
	close(sitename)
	uiprogress.Stop()
	return res
}

func resolveOne(n *Network, x *SegmentIndex, s Site, tol float64) Result {
	a, ok := x.Locate(s.Pt, tol)
	if !ok {
		return Result{Status: Unmatched, Site: s}
	}
	r := n.Trace(a)
	r.Site = s
	return r
}
