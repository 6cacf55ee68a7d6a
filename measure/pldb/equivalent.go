package pldb

import "math"

// loudLimits holds the per-band limit pairs and offsets for bands 20..26,
// taken verbatim from Stevens' tables.
var loudLimits = [7]struct {
	lower, upper, offset float64
}{
	{85.0, 130.0, 9.0},  // band 20, 100 Hz
	{83.5, 128.5, 7.5},  // band 21, 125 Hz
	{82.0, 127.0, 6.0},  // band 22, 160 Hz
	{80.5, 125.5, 4.5},  // band 23, 200 Hz
	{79.0, 124.0, 3.0},  // band 24, 250 Hz
	{77.5, 122.5, 1.5},  // band 25, 315 Hz
	{76.0, 121.0, 0.0},  // band 26, 400 Hz
}

// equivalentLoudness maps each band's sound pressure level to an equivalent
// loudness referenced to the 3150 Hz band.
//
// The tier boundaries over the band index mix strict and inclusive
// comparisons exactly as tabulated by Stevens; they are empirical and must
// not be regularized.
func equivalentLoudness(spl []float64) []float64 {
	leq := make([]float64, NumBands)

	for i, l := range spl {
		switch {
		case i > 39:
			leq[i] = l + 4*float64(39-i)
		case i >= 35:
			leq[i] = l
		case i >= 32:
			leq[i] = l - 2*float64(35-i)
		case i > 26:
			leq[i] = l - 8
		case i >= 20:
			lim := loudLimits[i-20]
			leq[i] = loudLimits400(bands[i].Center, lim.lower, lim.upper, l, lim.offset)
		default:
			// Remap low bands against the 80 Hz / 160 dB reference pair
			// before applying the common 400 Hz rule.
			remapped := 160 - (160-l)*math.Log10(80)/math.Log10(bands[i].Center)
			leq[i] = loudLimits400(80, 86.5, 131.5, remapped, 10.5)
		}
	}

	return leq
}

// loudLimits400 selects the equivalent-loudness transformation according to
// the dB limits of Stevens' methodology. All comparisons are inclusive on
// the upper bound.
func loudLimits400(centerFreq, lowerLimit, upperLimit, loudness, offset float64) float64 {
	logRatio := math.Log10(400) / math.Log10(centerFreq)

	switch {
	case loudness <= lowerLimit:
		return 115 - (115-loudness)*logRatio - 8
	case loudness <= upperLimit:
		return loudness - offset - 8
	default:
		return 160 - (160-loudness)*logRatio - 8
	}
}
