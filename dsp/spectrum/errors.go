package spectrum

import (
	"errors"
	"fmt"
)

var errEmptyInterp = errors.New("interpolate requires non-empty x and y")

func errInterpMismatch(nx, ny int) error {
	return fmt.Errorf("interpolate x/y length mismatch: %d != %d", nx, ny)
}

func errNotIncreasing(i int) error {
	return fmt.Errorf("interpolate x must be strictly increasing at index %d", i)
}

func errTooFewSamples(n int) error {
	return fmt.Errorf("energy density requires at least 2 samples: %d", n)
}

func errInvalidSpacing(dt float64) error {
	return fmt.Errorf("energy density sample spacing must be finite and > 0: %v", dt)
}
