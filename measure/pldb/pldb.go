package pldb

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pldb/dsp/pad"
	"github.com/cwbudde/algo-pldb/dsp/spectrum"
	"github.com/cwbudde/algo-pldb/dsp/window"
)

const msToSeconds = 1e-3

// Config defines the tuning parameters of the loudness calculation.
type Config struct {
	// PadFront and PadRear are zero-padding multipliers: the number of
	// zeros added on each side is the multiplier times the signature
	// length.
	PadFront int
	PadRear  int

	// WindowLength is the half-width of the Hann edge taper in samples.
	WindowLength int

	// ResultsDir, when non-empty, receives the five diagnostic tables of
	// the analysis (created if absent).
	ResultsDir string

	// StrictDomain rejects signatures containing NaN or Inf samples
	// before any computation.
	StrictDomain bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		PadFront:     1,
		PadRear:      1,
		WindowLength: 800,
	}
}

// WithPadFront sets the front zero-padding multiplier.
func WithPadFront(multiplier int) Option {
	return func(cfg *Config) {
		if multiplier >= 0 {
			cfg.PadFront = multiplier
		}
	}
}

// WithPadRear sets the rear zero-padding multiplier.
func WithPadRear(multiplier int) Option {
	return func(cfg *Config) {
		if multiplier >= 0 {
			cfg.PadRear = multiplier
		}
	}
}

// WithWindowLength sets the edge taper half-width in samples.
func WithWindowLength(samples int) Option {
	return func(cfg *Config) {
		if samples >= 0 {
			cfg.WindowLength = samples
		}
	}
}

// WithResultsDir enables diagnostic output into dir.
func WithResultsDir(dir string) Option {
	return func(cfg *Config) {
		cfg.ResultsDir = dir
	}
}

// WithStrictDomain rejects non-finite input samples up front.
func WithStrictDomain() Option {
	return func(cfg *Config) {
		cfg.StrictDomain = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Result holds the outcome of one loudness analysis.
type Result struct {
	// PLdB is the perceived loudness in decibels.
	PLdB float64

	// TotalSones is the summed loudness before the PLdB conversion.
	TotalSones float64

	// Time and Pressure hold the final windowed, zero-padded signature
	// (time in ms, pressure in psf).
	Time     []float64
	Pressure []float64

	// Frequency and Power hold the merged one-sided power spectrum,
	// including the interpolated band-boundary points.
	Frequency []float64
	Power     []float64

	// Per-band quantities, indexed like Bands().
	Energy     []float64
	SPL        []float64
	Equivalent []float64
	Sones      []float64

	// EmptyBands lists band indices without spectral support. Their
	// energy is zero and their SPL -Inf; this is informational, not an
	// error.
	EmptyBands []int
}

// Analyze computes the perceived loudness of a pressure signature and
// returns the full set of intermediate quantities.
//
// time is in milliseconds and must be uniformly spaced; pressure is in
// lbs/ft^2 (psf). Both inputs are left unmodified.
func Analyze(time, pressure []float64, opts ...Option) (*Result, error) {
	cfg := ApplyOptions(opts...)

	if cfg.StrictDomain {
		if err := requireFinite(time, pressure); err != nil {
			return nil, err
		}
	}

	windowed, err := window.EdgeTaper(pressure, cfg.WindowLength)
	if err != nil {
		return nil, fmt.Errorf("windowing signature: %w", err)
	}

	n := len(pressure)
	timePad, pressurePad, err := pad.Extend(time, windowed, cfg.PadFront*n, cfg.PadRear*n)
	if err != nil {
		return nil, fmt.Errorf("padding signature: %w", err)
	}

	// Bin spacing follows the (t_end - t_start)/N convention of the
	// reference tables, not (N-1).
	np := len(timePad)
	dt := (timePad[np-1] - timePad[0]) / float64(np) * msToSeconds

	freq, density, err := spectrum.EnergyDensity(pressurePad, dt)
	if err != nil {
		return nil, fmt.Errorf("computing power spectrum: %w", err)
	}

	mergedFreq, mergedPower, err := spectrum.MergeInterpolated(freq, density, boundaryFrequencies())
	if err != nil {
		return nil, fmt.Errorf("interpolating band boundaries: %w", err)
	}

	energy, spl, empty := bandLevels(mergedFreq, mergedPower)
	leq := equivalentLoudness(spl)
	sones := sonesPerBand(leq)

	total := totalLoudness(sones)
	if math.IsNaN(total) || total <= 0 {
		return nil, fmt.Errorf("%w: total %v sones", ErrNonPositiveLoudness, total)
	}

	res := &Result{
		PLdB:       32 + 9*math.Log2(total),
		TotalSones: total,
		Time:       timePad,
		Pressure:   pressurePad,
		Frequency:  mergedFreq,
		Power:      mergedPower,
		Energy:     energy,
		SPL:        spl,
		Equivalent: leq,
		Sones:      sones,
		EmptyBands: empty,
	}

	if cfg.ResultsDir != "" {
		if err := writeDiagnostics(cfg.ResultsDir, res); err != nil {
			return nil, fmt.Errorf("writing diagnostics: %w", err)
		}
	}

	return res, nil
}

// Perceived computes the perceived loudness in PLdB of a pressure
// signature. It is a convenience wrapper around [Analyze].
func Perceived(time, pressure []float64, opts ...Option) (float64, error) {
	res, err := Analyze(time, pressure, opts...)
	if err != nil {
		return 0, err
	}
	return res.PLdB, nil
}

func requireFinite(time, pressure []float64) error {
	for i, v := range time {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: time sample %d is %v", ErrNonFiniteInput, i, v)
		}
	}
	for i, v := range pressure {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: pressure sample %d is %v", ErrNonFiniteInput, i, v)
		}
	}
	return nil
}
