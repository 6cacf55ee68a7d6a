package pldb

import "errors"

var (
	// ErrNonPositiveLoudness reports a signature whose summed loudness is
	// zero or negative, so no finite PLdB exists. Silence triggers this.
	ErrNonPositiveLoudness = errors.New("total loudness is not positive")

	// ErrNonFiniteInput reports NaN or Inf input samples in strict mode.
	ErrNonFiniteInput = errors.New("signature contains non-finite samples")
)
