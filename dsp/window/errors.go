package window

import (
	"errors"
	"fmt"
)

var errNegativeTaper = errors.New("taper half-length must be >= 0")

func errTaperTooLong(n, halfLen int) error {
	return fmt.Errorf("taper half-length %d exceeds half the signal length %d", halfLen, n)
}
