package pad

import (
	"errors"
	"fmt"
)

var errNonUniform = errors.New("time axis must be uniformly spaced and increasing")

func errLengthMismatch(nt, np int) error {
	return fmt.Errorf("time and pressure lengths differ: %d != %d", nt, np)
}

func errTooShort(n int) error {
	return fmt.Errorf("signature needs at least 2 samples: %d", n)
}

func errNegativePad(front, rear int) error {
	return fmt.Errorf("pad counts must be >= 0: front %d, rear %d", front, rear)
}
