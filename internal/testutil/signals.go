// Package testutil provides deterministic signal generators and tolerance
// helpers shared by tests.
package testutil

import "math"

// LinSpace returns count values evenly spaced from start to stop inclusive.
func LinSpace(start, stop float64, count int) []float64 {
	out := make([]float64, count)
	if count == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(count-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// DeterministicSine generates a sine wave sampled at the given time points.
// freq is in cycles per time unit, so milliseconds-based time axes take
// cycles per millisecond.
func DeterministicSine(time []float64, freq, amplitude float64) []float64 {
	out := make([]float64, len(time))
	for i, t := range time {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*t)
	}

	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}
