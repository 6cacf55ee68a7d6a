// Package pad provides zero padding of uniformly sampled signatures with a
// matching extension of the time axis.
package pad

import (
	"github.com/cwbudde/algo-pldb/dsp/core"
)

// spacingEps is the relative tolerance for the uniform-spacing check.
const spacingEps = 1e-9

// Extend returns the pressure sequence zero-padded with front leading and
// rear trailing zeros, together with a time axis covering the extended
// domain.
//
// The output time axis is exactly uniform at the input spacing: sample k is
// time[0] + k*dt, which shifts the original samples forward by front*dt.
// Keeping the spacing exact is required for consistent FFT bin frequencies
// downstream.
func Extend(time, pressure []float64, front, rear int) ([]float64, []float64, error) {
	if len(time) != len(pressure) {
		return nil, nil, errLengthMismatch(len(time), len(pressure))
	}

	if len(time) < 2 {
		return nil, nil, errTooShort(len(time))
	}

	if front < 0 || rear < 0 {
		return nil, nil, errNegativePad(front, rear)
	}

	dt, ok := uniformSpacing(time)
	if !ok {
		return nil, nil, errNonUniform
	}

	n := len(pressure) + front + rear

	outPressure := make([]float64, n)
	copy(outPressure[front:], pressure)

	outTime := make([]float64, n)
	for k := range outTime {
		outTime[k] = time[0] + float64(k)*dt
	}

	return outTime, outPressure, nil
}

// uniformSpacing returns the sample spacing of x and whether every
// consecutive pair matches it within tolerance.
func uniformSpacing(x []float64) (float64, bool) {
	dt := x[1] - x[0]
	if dt <= 0 {
		return 0, false
	}

	for i := 2; i < len(x); i++ {
		if !core.NearlyEqual(x[i]-x[i-1], dt, spacingEps*dt) {
			return 0, false
		}
	}

	return dt, true
}
