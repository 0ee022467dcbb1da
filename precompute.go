package solarsystem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// Position is one evaluated coordinate triple.
type Position [3]float64

// Sweep evaluates the table at every integer JDE in [0, jdeMax), in
// increasing order. The range is split into contiguous chunks evaluated by
// workers goroutines; each chunk writes to its own slice segment, so no
// locking is needed and the result preserves JDE order. workers <= 0 means
// one per CPU.
func Sweep(table *SeriesTable, jdeMax, workers int) []Position {
	if jdeMax <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > jdeMax {
		workers = jdeMax
	}
	out := make([]Position, jdeMax)
	chunk := (jdeMax + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < jdeMax; start += chunk {
		end := start + chunk
		if end > jdeMax {
			end = jdeMax
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for jde := start; jde < end; jde++ {
				v0, v1, v2 := table.Evaluate(float64(jde))
				out[jde] = Position{v0, v1, v2}
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

// Precompute writes the banner and one position line per JDE in [0, jdeMax)
// to w.
func Precompute(w io.Writer, table *SeriesTable, planet Planet, jdeMax, workers int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "*** Precomputed data for planet %s, up to JDE : %d ***\n", planet, jdeMax+1)
	for _, pos := range Sweep(table, jdeMax, workers) {
		fmt.Fprintf(bw, "%v %v %v\n", pos[0], pos[1], pos[2])
	}
	return bw.Flush()
}

// PrecomputeConfig configures a precompute run.
type PrecomputeConfig struct {
	OutputDir string        // where the .precomp files land
	JDEMax    int           // positions are computed for JDE 0..JDEMax-1
	Workers   int           // goroutines per planet sweep; <= 0 means NumCPU
	Logger    kitlog.Logger // nil disables logging
}

// PrecomputeAll writes one precomputed table per requested planet into the
// output directory, creating it if needed. A planet whose series table fails
// to load is skipped, so one corrupted data file does not sink the other
// seven; the failures are reported together once all planets have run.
func PrecomputeAll(reg *Registry, planets []Planet, cfg PrecomputeConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	var failures []error
	for _, planet := range planets {
		table, err := reg.Table(planet)
		if err != nil {
			logger.Log("planet", planet, "err", err, "msg", "skipping, series table failed to load")
			failures = append(failures, err)
			continue
		}
		start := time.Now()
		if err := precomputeFile(filepath.Join(cfg.OutputDir, planet.PrecompFile()), table, planet, cfg); err != nil {
			logger.Log("planet", planet, "err", err)
			failures = append(failures, err)
			continue
		}
		logger.Log("planet", planet, "terms", table.NumTerms(), "positions", cfg.JDEMax, "duration", time.Since(start))
	}
	return errors.Join(failures...)
}

func precomputeFile(path string, table *SeriesTable, planet Planet, cfg PrecomputeConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", planet, err)
	}
	defer f.Close()
	if err := Precompute(f, table, planet, cfg.JDEMax, cfg.Workers); err != nil {
		return fmt.Errorf("%s: %w", planet, err)
	}
	return f.Close()
}
