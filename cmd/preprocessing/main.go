package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/lintang-b-s/modalroute/pkg/network"
)

var (
	inFile     = flag.String("f", "", "network definition to convert (.json, .bin, .zst). empty = built-in five city network")
	outFile    = flag.String("o", "network.bin.zst", "output file, format picked from the extension (.json, .bin, .zst)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	def := network.ReferenceDefinition()
	if *inFile != "" {
		log.Printf("reading network definition %s", *inFile)
		var err error
		def, err = network.LoadDefinition(*inFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	// build once so a broken definition is never written out
	n, err := network.Build(def)
	if err != nil {
		log.Fatal(err)
	}

	if err := network.WriteDefinition(*outFile, def); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d cities and %d routes to %s", n.NumCities(), len(n.Routes()), *outFile)
}
