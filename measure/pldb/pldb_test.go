package pldb

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-pldb/internal/testutil"
)

// Regression fixtures computed with an independent implementation of the
// full Mark VII pipeline on the same band and sone tables.
const fixtureTolerance = 1e-6

func TestPerceivedStepSignature(t *testing.T) {
	time := testutil.LinSpace(0, 100, 10000)
	pressure := testutil.DC(0.04, 10000)

	got, err := Perceived(time, pressure)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNearlyEqual(t, got, 56.8729929763, fixtureTolerance)
}

func TestAnalyzeStepSignatureTotalSones(t *testing.T) {
	time := testutil.LinSpace(0, 100, 10000)
	pressure := testutil.DC(0.04, 10000)

	res, err := Analyze(time, pressure)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNearlyEqual(t, res.TotalSones, 6.791197016126, 1e-6)

	if len(res.SPL) != NumBands || len(res.Sones) != NumBands {
		t.Fatalf("per-band slice lengths = %d, %d; want %d", len(res.SPL), len(res.Sones), NumBands)
	}
	if len(res.Time) != 3*len(time) || len(res.Pressure) != 3*len(pressure) {
		t.Fatalf("padded lengths = %d, %d; want %d", len(res.Time), len(res.Pressure), 3*len(time))
	}
}

func TestPerceivedSineSignature(t *testing.T) {
	time := testutil.LinSpace(0, 100, 10000)
	pressure := testutil.DeterministicSine(time, 0.05, 0.04) // 50 Hz

	got, err := Perceived(time, pressure)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNearlyEqual(t, got, 71.1577269900, fixtureTolerance)
}

func TestAnalyzeLeavesInputsUnmodified(t *testing.T) {
	time := testutil.LinSpace(0, 100, 10000)
	pressure := testutil.DeterministicSine(time, 0.05, 0.04)

	timeCopy := append([]float64(nil), time...)
	pressureCopy := append([]float64(nil), pressure...)

	if _, err := Analyze(time, pressure); err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, time, timeCopy, 0)
	testutil.RequireSliceNearlyEqual(t, pressure, pressureCopy, 0)
}

func TestAnalyzeEnergyScalesQuadratically(t *testing.T) {
	time := testutil.LinSpace(0, 100, 10000)

	low, err := Analyze(time, testutil.DeterministicSine(time, 0.05, 0.04))
	if err != nil {
		t.Fatal(err)
	}
	high, err := Analyze(time, testutil.DeterministicSine(time, 0.05, 0.08))
	if err != nil {
		t.Fatal(err)
	}

	// Band 17 is centered at 50 Hz; doubling the amplitude must
	// quadruple its energy.
	ratio := high.Energy[17] / low.Energy[17]
	testutil.RequireNearlyEqual(t, ratio, 4, 1e-9)
}

func TestAnalyzeZeroSignature(t *testing.T) {
	time := testutil.LinSpace(0, 100, 10000)
	pressure := make([]float64, 10000)

	_, err := Analyze(time, pressure)
	if !errors.Is(err, ErrNonPositiveLoudness) {
		t.Fatalf("err = %v, want ErrNonPositiveLoudness", err)
	}
}

func TestAnalyzeWindowTooLong(t *testing.T) {
	time := testutil.LinSpace(0, 1, 100)
	pressure := testutil.DC(0.04, 100)

	// The default taper half-width exceeds half the signature length.
	if _, err := Analyze(time, pressure); err == nil {
		t.Fatal("expected windowing error for a 100-sample signature")
	}
}

func TestAnalyzeNonUniformTime(t *testing.T) {
	time := testutil.LinSpace(0, 100, 10000)
	time[5000] += 0.003
	pressure := testutil.DC(0.04, 10000)

	if _, err := Analyze(time, pressure); err == nil {
		t.Fatal("expected error for non-uniform time axis")
	}
}

func TestAnalyzeStrictDomainRejectsNaN(t *testing.T) {
	time := testutil.LinSpace(0, 100, 10000)
	pressure := testutil.DC(0.04, 10000)
	pressure[123] = math.NaN()

	_, err := Analyze(time, pressure, WithStrictDomain())
	if !errors.Is(err, ErrNonFiniteInput) {
		t.Fatalf("err = %v, want ErrNonFiniteInput", err)
	}
}

func TestAnalyzeWritesDiagnostics(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")

	time := testutil.LinSpace(0, 100, 10000)
	pressure := testutil.DC(0.04, 10000)

	res, err := Analyze(time, pressure, WithResultsDir(dir))
	if err != nil {
		t.Fatal(err)
	}

	names := []string{diagSignature, diagSpectrum, diagLevels, diagEquivalent, diagSones}
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing diagnostic %s: %v", name, err)
		}
	}

	// The signature table must round-trip through the text importer.
	tRead, pRead, err := ReadSignature(filepath.Join(dir, diagSignature), 0, "")
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, tRead, res.Time, 1e-12)
	testutil.RequireSliceNearlyEqual(t, pRead, res.Pressure, 1e-12)
}

func TestApplyOptionsDefaultsAndOverrides(t *testing.T) {
	cfg := ApplyOptions()
	if cfg.PadFront != 1 || cfg.PadRear != 1 || cfg.WindowLength != 800 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	cfg = ApplyOptions(WithPadFront(3), WithPadRear(0), WithWindowLength(200), nil)
	if cfg.PadFront != 3 || cfg.PadRear != 0 || cfg.WindowLength != 200 {
		t.Fatalf("options not applied: %+v", cfg)
	}

	// Negative values are rejected, keeping the defaults.
	cfg = ApplyOptions(WithPadFront(-1), WithWindowLength(-5))
	if cfg.PadFront != 1 || cfg.WindowLength != 800 {
		t.Fatalf("negative values should be ignored: %+v", cfg)
	}
}
