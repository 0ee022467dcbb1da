package solarsystem

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Planet identifies one of the eight planets covered by the VSOP87 theory.
type Planet uint8

const (
	Mercury Planet = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// Planets lists all supported planets in increasing distance from the Sun.
var Planets = [...]Planet{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}

var planetNames = [...]string{"MERCURY", "VENUS", "EARTH", "MARS", "JUPITER", "SATURN", "URANUS", "NEPTUNE"}

// The VSOP87 distribution names its files by a three letter planet
// abbreviation.
var planetAbbrevs = [...]string{"mer", "ven", "ear", "mar", "jup", "sat", "ura", "nep"}

// String implements the Stringer interface, upper case as in the VSOP87
// distribution and the precomputed file banners.
func (p Planet) String() string {
	return planetNames[p]
}

// DataFile returns the name of this planet's series file in the VSOP87C
// distribution, e.g. "VSOP87C.mer".
func (p Planet) DataFile() string {
	return "VSOP87C." + planetAbbrevs[p]
}

// PrecompFile returns the name of this planet's precomputed output file.
func (p Planet) PrecompFile() string {
	return p.DataFile() + ".precomp"
}

// PlanetFromName returns the planet with the given name, case insensitively.
func PlanetFromName(name string) (Planet, error) {
	for i, n := range planetNames {
		if strings.EqualFold(name, n) {
			return Planet(i), nil
		}
	}
	return 0, fmt.Errorf("unknown planet %q", name)
}

// Registry owns the parsed series tables for a run. Tables are loaded from
// the data directory on first use and cached for the lifetime of the
// registry, so repeated Evaluate sweeps for the same planet parse the file
// exactly once. Safe for concurrent use.
type Registry struct {
	dir    string
	mu     sync.Mutex
	tables map[Planet]*SeriesTable
}

// NewRegistry returns a registry reading series files from dir.
func NewRegistry(dir string) *Registry {
	return &Registry{dir: dir, tables: make(map[Planet]*SeriesTable)}
}

// Table returns the parsed series table for the given planet, loading it if
// this is the first request. A load failure is not cached: a subsequent call
// retries the file.
func (r *Registry) Table(p Planet) (*SeriesTable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if table, found := r.tables[p]; found {
		return table, nil
	}
	table, err := LoadTable(filepath.Join(r.dir, p.DataFile()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	table.Name = p.String()
	r.tables[p] = table
	return table, nil
}
