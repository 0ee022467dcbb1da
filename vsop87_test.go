package solarsystem

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonum/floats"
	"github.com/soniakeys/meeus/julian"
)

// synthTable builds a full 3x6 table with decaying pseudo-random terms, in
// the ballpark of a real VSOP87C file (amplitudes shrink with degree,
// frequencies up to planetary orders of magnitude).
func synthTable(termsPerBucket int, seed int64) *SeriesTable {
	rng := rand.New(rand.NewSource(seed))
	table := &SeriesTable{Name: "SYNTH"}
	for v := 0; v < numVariables; v++ {
		for d := 0; d < numDegrees; d++ {
			bucket := make([]Term, termsPerBucket)
			for i := range bucket {
				bucket[i] = Term{
					A: rng.Float64() * math.Pow(10, -float64(d)),
					B: rng.Float64() * 2 * math.Pi,
					C: rng.Float64() * 30000,
				}
			}
			table.terms[v][d] = bucket
		}
	}
	return table
}

func TestEvaluateDeterminism(t *testing.T) {
	table := synthTable(25, 1)
	const jde = 2448976.5
	e0, e1, e2 := table.Evaluate(jde)
	for i := 0; i < 100; i++ {
		v0, v1, v2 := table.Evaluate(jde)
		if v0 != e0 || v1 != e1 || v2 != e2 {
			t.Fatalf("call %d: got (%v %v %v), want (%v %v %v)", i, v0, v1, v2, e0, e1, e2)
		}
	}
}

// At the epoch T is exactly zero, so every degree above zero must drop out
// no matter how large its sums are.
func TestEvaluateAtEpoch(t *testing.T) {
	epoch := julian.CalendarGregorianToJD(2000, 1, 1.5)
	if epoch != J2000 {
		t.Fatalf("julian epoch = %v, want %v", epoch, J2000)
	}
	table := &SeriesTable{Name: "test"}
	table.terms[0][0] = []Term{{A: 1.25, B: 0, C: 0}}
	table.terms[1][0] = []Term{{A: -3.5, B: 0, C: 0}}
	// Large high-degree sums which must not contribute at T=0.
	for d := 1; d < numDegrees; d++ {
		table.terms[0][d] = []Term{{A: 1e9, B: 0, C: 0}}
		table.terms[1][d] = []Term{{A: 1e9, B: 0, C: 0}}
		table.terms[2][d] = []Term{{A: 1e9, B: 0, C: 0}}
	}
	v0, v1, v2 := table.Evaluate(epoch)
	if v0 != 1.25 || v1 != -3.5 || v2 != 0 {
		t.Fatalf("got (%v %v %v), want (1.25 -3.5 0)", v0, v1, v2)
	}
}

func TestEvaluatePolynomial(t *testing.T) {
	const s0, s1 = 0.7546, -0.0132
	table := &SeriesTable{Name: "test"}
	table.terms[0][0] = []Term{{A: s0, B: 0, C: 0}}
	table.terms[0][1] = []Term{{A: s1, B: 0, C: 0}}
	for _, jde := range []float64{0, 2451545, 2448976.5, 2500000.25} {
		T := (jde - J2000) / JulianMillennium
		want := s0 + s1*T
		v0, v1, v2 := table.Evaluate(jde)
		if !floats.EqualWithinAbsOrRel(v0, want, 1e-12, 1e-9) {
			t.Fatalf("jde %v: v0 = %v, want %v", jde, v0, want)
		}
		if v1 != 0 || v2 != 0 {
			t.Fatalf("jde %v: empty variables returned (%v, %v)", jde, v1, v2)
		}
	}
}

// Horner and the explicit power expansion must agree to well below the
// accuracy of the series themselves over a long sweep.
func TestEvaluateHornerParity(t *testing.T) {
	table := synthTable(50, 2)
	for jde := 0.0; jde < 1000; jde++ {
		h0, h1, h2 := table.Evaluate(jde)
		d0, d1, d2 := table.evaluateDirect(jde)
		if !floats.EqualWithinAbs(h0, d0, 1e-6) ||
			!floats.EqualWithinAbs(h1, d1, 1e-6) ||
			!floats.EqualWithinAbs(h2, d2, 1e-6) {
			t.Fatalf("jde %v: horner (%v %v %v) vs direct (%v %v %v)", jde, h0, h1, h2, d0, d1, d2)
		}
	}
}

func TestEvaluateBatch(t *testing.T) {
	table := synthTable(10, 3)
	positions := Sweep(table, 100, 4)
	if len(positions) != 100 {
		t.Fatalf("got %d positions, want 100", len(positions))
	}
	for jde, pos := range positions {
		for i, v := range pos {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("jde %d: component %d is %v", jde, i, v)
			}
		}
	}
}

func TestNumTerms(t *testing.T) {
	if n := synthTable(10, 4).NumTerms(); n != 10*numVariables*numDegrees {
		t.Fatalf("NumTerms = %d, want %d", n, 10*numVariables*numDegrees)
	}
	if n := (&SeriesTable{}).NumTerms(); n != 0 {
		t.Fatalf("NumTerms of empty table = %d", n)
	}
}
