package solarsystem

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// horner evaluates the polynomial with the given coefficients (constant term
// first) at x using Horner's method.
func horner(coeffs []float64, x float64) float64 {
	s := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		s = s*x + coeffs[i]
	}
	return s
}

// powers returns [1, x, x^2, ..., x^(n-1)] via explicit exponentiation.
func powers(x float64, n int) []float64 {
	p := make([]float64, n)
	for i := range p {
		p[i] = math.Pow(x, float64(i))
	}
	return p
}

// dot performs the inner product via mat64/BLAS.
func dot(a, b []float64) float64 {
	return mat64.Dot(mat64.NewVector(len(a), a), mat64.NewVector(len(b), b))
}
