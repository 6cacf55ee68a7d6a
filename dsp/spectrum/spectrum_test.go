package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pldb/internal/testutil"
)

func TestEnergyDensityImpulse(t *testing.T) {
	// A unit impulse has |X[k]| = 1 for every bin, so the one-sided density
	// is dt^2 at DC and 2*dt^2 elsewhere.
	dt := 0.001
	sig := testutil.Impulse(64, 0)

	freq, density, err := EnergyDensity(sig, dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(freq) != 32 || len(density) != 32 {
		t.Fatalf("lengths = %d/%d, want 32/32", len(freq), len(density))
	}

	testutil.RequireNearlyEqual(t, density[0], dt*dt, 1e-15)
	for k := 1; k < len(density); k++ {
		testutil.RequireNearlyEqual(t, density[k], 2*dt*dt, 1e-15)
	}

	// Bin k sits at k/(n*dt) Hz.
	testutil.RequireNearlyEqual(t, freq[1], 1.0/(64*dt), 1e-9)
}

func TestEnergyDensitySinePeak(t *testing.T) {
	// 100 Hz sine sampled at 1 kHz for exactly 100 cycles lands on bin 100.
	n := 1000
	dt := 0.001
	amp := 0.04
	time := testutil.LinSpace(0, float64(n-1)*dt, n)
	sig := testutil.DeterministicSine(time, 100, amp)

	freq, density, err := EnergyDensity(sig, dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	peak := 0
	for k := range density {
		if density[k] > density[peak] {
			peak = k
		}
	}

	if peak != 100 {
		t.Fatalf("peak bin = %d (%.1f Hz), want 100", peak, freq[peak])
	}

	// |X| = amp*n/2 at the tone bin; one-sided density doubles the power.
	want := 2 * math.Pow(amp*float64(n)/2, 2) * dt * dt
	testutil.RequireNearlyEqual(t, density[100], want, want*1e-9)
}

func TestEnergyDensityQuadraticScaling(t *testing.T) {
	n := 1000
	dt := 0.001
	time := testutil.LinSpace(0, float64(n-1)*dt, n)

	_, d1, err := EnergyDensity(testutil.DeterministicSine(time, 100, 0.04), dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, d2, err := EnergyDensity(testutil.DeterministicSine(time, 100, 0.08), dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ratio := d2[100] / d1[100]
	testutil.RequireNearlyEqual(t, ratio, 4, 1e-9)
}

func TestEnergyDensityErrors(t *testing.T) {
	if _, _, err := EnergyDensity([]float64{1}, 0.001); err == nil {
		t.Fatal("expected error for single sample")
	}
	if _, _, err := EnergyDensity([]float64{1, 2}, 0); err == nil {
		t.Fatal("expected error for zero spacing")
	}
	if _, _, err := EnergyDensity([]float64{1, 2}, math.NaN()); err == nil {
		t.Fatal("expected error for NaN spacing")
	}
}

func TestMergeInterpolated(t *testing.T) {
	freq := []float64{0, 10, 20, 30}
	density := []float64{0, 1, 2, 3}

	mf, mv, err := MergeInterpolated(freq, density, []float64{5, 25, 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFreq := []float64{0, 5, 10, 20, 25, 30, 40}
	wantVal := []float64{0, 0.5, 1, 2, 2.5, 3, 3}
	testutil.RequireSliceNearlyEqual(t, mf, wantFreq, 1e-12)
	testutil.RequireSliceNearlyEqual(t, mv, wantVal, 1e-12)
}

func TestMergeInterpolatedKeepsDuplicates(t *testing.T) {
	freq := []float64{0, 10, 20}
	density := []float64{0, 1, 2}

	mf, _, err := MergeInterpolated(freq, density, []float64{10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mf) != 4 {
		t.Fatalf("merged length = %d, want 4 (duplicates kept)", len(mf))
	}
}

func TestInterpolateLinear(t *testing.T) {
	x := []float64{1, 2, 4}
	y := []float64{10, 20, 40}

	out, err := InterpolateLinear(x, y, []float64{0, 1, 1.5, 3, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{10, 10, 15, 30, 40, 40}
	testutil.RequireSliceNearlyEqual(t, out, want, 1e-12)
}

func TestInterpolateLinearErrors(t *testing.T) {
	if _, err := InterpolateLinear(nil, nil, []float64{1}); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := InterpolateLinear([]float64{1, 2}, []float64{1}, nil); err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if _, err := InterpolateLinear([]float64{1, 1}, []float64{1, 2}, nil); err == nil {
		t.Fatal("expected error for non-increasing x")
	}
}

func TestPowerMatchesDefinition(t *testing.T) {
	bins := []complex128{1 + 0i, 0 + 2i, 3 - 4i}
	p := Power(bins)
	testutil.RequireSliceNearlyEqual(t, p, []float64{1, 4, 25}, 1e-12)
}
