package pldb

import "gonum.org/v1/gonum/floats"

// sonesPerBand converts equivalent loudness values to sones via table
// lookup.
func sonesPerBand(leq []float64) []float64 {
	out := make([]float64, len(leq))
	for i, v := range leq {
		out[i] = sonesFromLoudness(v)
	}
	return out
}

// totalLoudness combines per-band sones into a single loudness: the loudest
// band counts fully, all others contribute a remainder damped by the
// tabulated summation factor.
func totalLoudness(sones []float64) float64 {
	max := floats.Max(sones)
	factor := summationFactor(max)

	return max + factor*(floats.Sum(sones)-max)
}
