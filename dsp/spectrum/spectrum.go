package spectrum

import (
	"math"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"github.com/mjibson/go-dsp/fft"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// EnergyDensity computes the one-sided energy spectral density of a
// uniformly sampled real signal.
//
// dt is the sample spacing in seconds. The density per bin is |X[k]|^2*dt^2
// with every bin except DC doubled to fold the negative-frequency half into
// the returned one. Output length is len(samples)/2, with bin k at frequency
// k/(n*dt) Hz.
func EnergyDensity(samples []float64, dt float64) (freq, density []float64, err error) {
	if len(samples) < 2 {
		return nil, nil, errTooFewSamples(len(samples))
	}
	if dt <= 0 || math.IsInf(dt, 0) || math.IsNaN(dt) {
		return nil, nil, errInvalidSpacing(dt)
	}

	n := len(samples)
	coeffs := fft.FFTReal(samples)
	half := n / 2

	density = Power(coeffs[:half])
	dt2 := dt * dt
	for k := range density {
		density[k] *= dt2
		if k > 0 {
			density[k] *= 2
		}
	}

	freq = make([]float64, half)
	binWidth := 1 / (float64(n) * dt)
	for k := range freq {
		freq[k] = float64(k) * binWidth
	}

	return freq, density, nil
}

// MergeInterpolated evaluates the spectrum at each query frequency by
// linear interpolation and merges the interpolated points into the raw
// spectrum, re-sorted by ascending frequency.
//
// Queries outside the spectrum's frequency range take the nearest endpoint
// value. Duplicate frequencies are permitted in the output; interpolated
// points coexist with the sampled bins.
func MergeInterpolated(freq, density, queries []float64) ([]float64, []float64, error) {
	values, err := InterpolateLinear(freq, density, queries)
	if err != nil {
		return nil, nil, err
	}

	n := len(freq) + len(queries)
	mergedFreq := make([]float64, 0, n)
	mergedVal := make([]float64, 0, n)
	mergedFreq = append(append(mergedFreq, freq...), queries...)
	mergedVal = append(append(mergedVal, density...), values...)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return mergedFreq[order[a]] < mergedFreq[order[b]]
	})

	outFreq := make([]float64, n)
	outVal := make([]float64, n)
	for i, idx := range order {
		outFreq[i] = mergedFreq[idx]
		outVal[i] = mergedVal[idx]
	}

	return outFreq, outVal, nil
}

// InterpolateLinear performs piecewise-linear interpolation at queryX.
//
// x must be strictly increasing and have the same length as y. Queries
// outside the domain are clamped to the endpoint values.
func InterpolateLinear(x, y, queryX []float64) ([]float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, errEmptyInterp
	}
	if len(x) != len(y) {
		return nil, errInterpMismatch(len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, errNotIncreasing(i)
		}
	}

	out := make([]float64, len(queryX))
	for i, q := range queryX {
		if q <= x[0] {
			out[i] = y[0]
			continue
		}
		if q >= x[len(x)-1] {
			out[i] = y[len(y)-1]
			continue
		}

		j := sort.SearchFloat64s(x, q)
		x0, x1 := x[j-1], x[j]
		t := (q - x0) / (x1 - x0)
		out[i] = y[j-1] + t*(y[j]-y[j-1])
	}
	return out, nil
}
