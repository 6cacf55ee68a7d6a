package pldb

import (
	"sort"

	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-pldb/dsp/core"
)

const (
	// Auditory critical integration time in seconds.
	criticalTime = 0.07

	// Reference pressure, 2.900755e-9 psi converted to psf.
	referencePressure = 2.900755e-9 * 144
)

// bandLevels integrates the merged power spectrum over each band and
// converts the result to a sound pressure level.
//
// freq must be sorted ascending and contain an entry at every band boundary
// (see spectrum.MergeInterpolated). A band without at least two spectral
// points keeps zero energy and a -Inf level; its index is reported in the
// returned empty list.
func bandLevels(freq, power []float64) (energy, spl []float64, empty []int) {
	energy = make([]float64, NumBands)
	spl = make([]float64, NumBands)

	ref2 := referencePressure * referencePressure

	for j, b := range bands {
		lo := sort.SearchFloat64s(freq, b.Lower)
		hi := sort.Search(len(freq), func(k int) bool { return freq[k] > b.Upper })

		if hi-lo < 2 {
			empty = append(empty, j)
			spl[j] = core.LinearPowerToDB(0)
			continue
		}

		energy[j] = integrate.Trapezoidal(freq[lo:hi], power[lo:hi]) / criticalTime
		spl[j] = core.LinearPowerToDB(energy[j]/ref2) - 3
	}

	return energy, spl, empty
}
