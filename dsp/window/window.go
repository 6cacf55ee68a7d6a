// Package window provides the symmetric Hann edge taper applied to
// pressure signatures before spectral analysis.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Hann returns symmetric Hann window coefficients of the given length.
//
// The symmetric form uses a size-1 denominator, so the first and last
// coefficients are exactly zero for size > 1.
func Hann(size int) []float64 {
	if size <= 0 {
		return nil
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out
	}

	den := float64(size - 1)
	for i := range out {
		out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/den))
	}

	return out
}

// EdgeTaper multiplies the first halfLen samples by the rising half of a
// Hann window of length 2*halfLen and the last halfLen samples by its
// falling half. Samples between the two tapered regions are unchanged.
//
// The input is not modified; a new slice is returned. EdgeTaper fails when
// the two tapered regions would overlap (2*halfLen > len(samples)).
func EdgeTaper(samples []float64, halfLen int) ([]float64, error) {
	if halfLen < 0 {
		return nil, errNegativeTaper
	}

	if 2*halfLen > len(samples) {
		return nil, errTaperTooLong(len(samples), halfLen)
	}

	out := make([]float64, len(samples))
	copy(out, samples)

	if halfLen == 0 {
		return out, nil
	}

	coeffs := Hann(2 * halfLen)
	head := out[:halfLen]
	tail := out[len(out)-halfLen:]

	vecmath.MulBlock(head, samples[:halfLen], coeffs[:halfLen])
	vecmath.MulBlock(tail, samples[len(samples)-halfLen:], coeffs[halfLen:])

	return out, nil
}
