package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	kitlog "github.com/go-kit/kit/log"

	solarsystem "github.com/erla2996/SolarSystem"
)

// NOTE: This tool regenerates the precomputed position tables for all planets
// (or a single one with -planet). Each planet's sweep runs on -cpus
// goroutines, so regenerating the full 100k-point tables stays in the
// minutes range on a modern machine.

var (
	numCPUs    int
	jdeMax     int
	planetName string
	vsop87Dir  string
	outputDir  string
)

func init() {
	flag.IntVar(&numCPUs, "cpus", -1, "number of CPUs to use per planet sweep (set to 0 for max CPUs)")
	flag.IntVar(&jdeMax, "jdemax", 100000, "compute positions for JDE 0 through jdemax-1")
	flag.StringVar(&planetName, "planet", "", "only precompute this planet (default: all eight)")
	flag.StringVar(&vsop87Dir, "vsop87", "", "directory holding the VSOP87C series files (default: from conf.toml)")
	flag.StringVar(&outputDir, "out", "", "output directory (default: from conf.toml)")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "cmd", "precompute")

	availableCPUs := runtime.NumCPU()
	if numCPUs <= 0 || numCPUs > availableCPUs {
		numCPUs = availableCPUs
	}

	if vsop87Dir == "" || outputDir == "" {
		cfg, err := solarsystem.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "need -vsop87 and -out flags, or a config file: %s\n", err)
			os.Exit(1)
		}
		if vsop87Dir == "" {
			vsop87Dir = cfg.VSOP87Dir
		}
		if outputDir == "" {
			outputDir = cfg.OutputDir
		}
	}

	planets := solarsystem.Planets[:]
	if planetName != "" {
		planet, err := solarsystem.PlanetFromName(planetName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		planets = []solarsystem.Planet{planet}
	}

	reg := solarsystem.NewRegistry(vsop87Dir)
	err := solarsystem.PrecomputeAll(reg, planets, solarsystem.PrecomputeConfig{
		OutputDir: outputDir,
		JDEMax:    jdeMax,
		Workers:   numCPUs,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
