package solarsystem

import (
	"math"
)

const (
	// J2000 is the Julian date of the J2000.0 epoch (2000 January 1.5 TT).
	J2000 = 2451545.0
	// JulianMillennium is the number of days in a Julian millennium.
	JulianMillennium = 365250.0

	numVariables = 3 // X, Y, Z (or L, B, R depending on the series family)
	numDegrees   = 6 // powers of T, *T**0 through *T**5
)

// Term is one periodic component of a VSOP87 series: its contribution at
// time T is A*cos(B + C*T).
type Term struct {
	A float64 // amplitude
	B float64 // phase, radians
	C float64 // frequency, radians per Julian millennium
}

// SeriesTable holds the full parsed series of one planet, with terms grouped
// by coordinate variable and power of T. Tables are read-only once built, so
// any number of goroutines may call Evaluate concurrently without locking.
type SeriesTable struct {
	Name  string // planet or file name, used in error reports and banners
	terms [numVariables][numDegrees][]Term
}

// Terms returns the bucket for the given variable and degree.
func (t *SeriesTable) Terms(variable, degree int) []Term {
	return t.terms[variable][degree]
}

// NumTerms returns the total number of terms across all buckets.
func (t *SeriesTable) NumTerms() (n int) {
	for v := 0; v < numVariables; v++ {
		for d := 0; d < numDegrees; d++ {
			n += len(t.terms[v][d])
		}
	}
	return
}

// Evaluate computes the three heliocentric coordinate values at the given
// Julian date ephemeris. It is a pure function of (t, jde): each bucket's
// terms are summed as A*cos(B+C*T) and the per-degree sums are combined as a
// polynomial in T, Julian millennia since J2000.0. Exceptional values from
// pathological input propagate unmasked.
func (t *SeriesTable) Evaluate(jde float64) (v0, v1, v2 float64) {
	T := (jde - J2000) / JulianMillennium
	var out [numVariables]float64
	for v := 0; v < numVariables; v++ {
		var sums [numDegrees]float64
		for d := 0; d < numDegrees; d++ {
			s := 0.0
			for _, term := range t.terms[v][d] {
				s += term.A * math.Cos(term.B+term.C*T)
			}
			sums[d] = s
		}
		out[v] = horner(sums[:], T)
	}
	return out[0], out[1], out[2]
}

// evaluateDirect is the textbook power-by-power evaluation of the same
// polynomial. Slower than Evaluate (it computes each T^d explicitly) but
// kept as the reference the Horner path is checked against.
func (t *SeriesTable) evaluateDirect(jde float64) (v0, v1, v2 float64) {
	T := (jde - J2000) / JulianMillennium
	powersT := powers(T, numDegrees)
	var out [numVariables]float64
	for v := 0; v < numVariables; v++ {
		sums := make([]float64, numDegrees)
		for d := 0; d < numDegrees; d++ {
			for _, term := range t.terms[v][d] {
				sums[d] += term.A * math.Cos(term.B+term.C*T)
			}
		}
		out[v] = dot(sums, powersT)
	}
	return out[0], out[1], out[2]
}
