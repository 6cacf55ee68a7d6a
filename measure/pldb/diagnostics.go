package pldb

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Diagnostic artifact file names, one two-column table each.
const (
	diagSignature  = "final_signature"
	diagSpectrum   = "power_spectrum"
	diagLevels     = "sound_pressure_levels"
	diagEquivalent = "equivalent_loudness"
	diagSones      = "sones"
)

// writeDiagnostics dumps the intermediate quantities of one analysis as
// plain two-column numeric tables. Zero-support bands show up as -Inf in
// the sound pressure level table.
func writeDiagnostics(dir string, res *Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	centers := make([]float64, NumBands)
	for i, b := range bands {
		centers[i] = b.Center
	}

	artifacts := []struct {
		name string
		x, y []float64
	}{
		{diagSignature, res.Time, res.Pressure},
		{diagSpectrum, res.Frequency, res.Power},
		{diagLevels, centers, res.SPL},
		{diagEquivalent, centers, res.Equivalent},
		{diagSones, centers, res.Sones},
	}

	for _, a := range artifacts {
		if err := writeColumns(filepath.Join(dir, a.name), a.x, a.y); err != nil {
			return err
		}
	}

	return nil
}

func writeColumns(path string, x, y []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for i := range x {
		fmt.Fprintf(w, "%.18e %.18e\n", x[i], y[i])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
