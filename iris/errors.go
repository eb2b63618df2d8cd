package iris

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput reports malformed, non-finite or out-of-domain numeric input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownVersion reports an instrument version outside IRIS_1..IRIS_3.
	ErrUnknownVersion = errors.New("unknown instrument version")
	// ErrNumericalInstability reports a rank-deficient or ill-conditioned fit.
	ErrNumericalInstability = errors.New("numerical instability")
	// ErrDivisionByZero reports a vanishing formula denominator.
	ErrDivisionByZero = errors.New("division by zero")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// round2 rounds half to even at two decimals.
func round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}
