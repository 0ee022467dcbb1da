package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/julian"

	solarsystem "github.com/erla2996/SolarSystem"
)

// Prints the heliocentric position of one planet at one instant, either a
// raw JDE (-jde) or a UTC calendar date (-date), straight from the series
// evaluation rather than a precomputed table.

var (
	planetName string
	jde        float64
	dateStr    string
	vsop87Dir  string
)

func init() {
	flag.StringVar(&planetName, "planet", "EARTH", "planet to evaluate")
	flag.Float64Var(&jde, "jde", solarsystem.J2000, "Julian day ephemeris to evaluate at")
	flag.StringVar(&dateStr, "date", "", "UTC date (RFC 3339, e.g. 2026-08-31T00:00:00Z); overrides -jde")
	flag.StringVar(&vsop87Dir, "vsop87", "", "directory holding the VSOP87C series files (default: from conf.toml)")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	flag.Parse()
	planet, err := solarsystem.PlanetFromName(planetName)
	if err != nil {
		fatal(err)
	}
	if dateStr != "" {
		dt, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			fatal(fmt.Errorf("parsing -date: %w", err))
		}
		jde = julian.TimeToJD(dt)
	}
	if vsop87Dir == "" {
		cfg, err := solarsystem.LoadConfig()
		if err != nil {
			fatal(fmt.Errorf("need the -vsop87 flag, or a config file: %w", err))
		}
		vsop87Dir = cfg.VSOP87Dir
	}
	table, err := solarsystem.NewRegistry(vsop87Dir).Table(planet)
	if err != nil {
		fatal(err)
	}
	v0, v1, v2 := table.Evaluate(jde)
	fmt.Printf("%s @ JDE %v\n%v %v %v\n", planet, jde, v0, v1, v2)
}
