package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"

	pourpt "github.com/agd1021/downstream-pour-point"
	"github.com/agd1021/downstream-pour-point/prep"
	"github.com/maseology/mmio"
)

func main() {

	if len(os.Args) != 2 {
		log.Fatalln("usage: pourpt <control file>")
	}

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	var sitesFP, streamsFP, outputFP, netgobFP string
	var tol float64
	var nwrkrs, utmzone int
	func(cfp string) { // getFilePaths
		var err error
		ins := mmio.NewInstruct(cfp)
		sitesFP = ins.Param["sites"][0]
		streamsFP = ins.Param["streams"][0]
		outputFP = ins.Param["output"][0]
		if tol, err = strconv.ParseFloat(ins.Param["tolerance"][0], 64); err != nil {
			log.Fatalln(err)
		}
		if tol <= 0. {
			log.Fatalln("tolerance must be positive")
		}
		if v, ok := ins.Param["netgob"]; ok {
			netgobFP = v[0] // network cache
		}
		if v, ok := ins.Param["nwrkrs"]; ok {
			if nwrkrs, err = strconv.Atoi(v[0]); err != nil {
				log.Fatalln(err)
			}
		}
		if v, ok := ins.Param["utmzone"]; ok {
			if utmzone, err = strconv.Atoi(v[0]); err != nil {
				log.Fatalln(err)
			}
		}
	}(os.Args[1])

	n := func() *pourpt.Network {
		if len(netgobFP) > 0 {
			if _, ok := mmio.FileExists(netgobFP); ok {
				n, err := pourpt.LoadGobNetwork(netgobFP)
				if err != nil {
					log.Fatalln(err)
				}
				return n
			}
		}
		println("load streams..")
		segs, err := prep.ReadStreams(streamsFP)
		if err != nil {
			log.Fatalln(err)
		}
		n := pourpt.BuildNetwork(segs)
		if len(netgobFP) > 0 {
			if err := n.SaveGob(netgobFP); err != nil {
				log.Fatalln(err)
			}
		}
		return n
	}()
	n.CheckAndPrint()
	tt.Print("network build complete")

	x := pourpt.NewSegmentIndex(n.Segs)
	tt.Print("segment index build complete")

	println("load sites..")
	sites, err := prep.ReadSites(sitesFP)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf(" %s sites\n", mmio.Thousands(int64(len(sites))))

	println("swimming downstream..")
	var res []pourpt.Result
	if nwrkrs == 1 {
		res = pourpt.ResolveSerial(n, x, sites, tol)
	} else {
		res = pourpt.Resolve(n, x, sites, tol, nwrkrs)
	}

	nc, no, nu, ncy := 0, 0, 0, 0
	for _, r := range res {
		switch r.Status {
		case pourpt.Confluence:
			nc++
		case pourpt.Outlet:
			no++
		case pourpt.Unmatched:
			nu++
		case pourpt.Cycle:
			ncy++
		}
	}
	fmt.Printf(" %d confluence, %d outlet, %d unmatched, %d cycle\n", nc, no, nu, ncy)

	if err := pourpt.WriteGeoJSON(outputFP, res, utmzone); err != nil {
		log.Fatalln(err)
	}
	pourpt.WriteSummary(mmio.RemoveExtension(outputFP)+".summary.csv", res)
}
