package iris

import "fmt"

// ToOpticalRadius converts SSA to the equivalent spherical grain radius in mm.
// The result is not rounded.
func (e *Estimator) ToOpticalRadius(ssa float64) (float64, error) {
	if !finite(ssa) {
		return 0, invalidf("ssa %v is not finite", ssa)
	}
	if ssa < 0 {
		return 0, invalidf("ssa %v is negative", ssa)
	}
	if ssa == 0 {
		return 0, fmt.Errorf("%w: %w: ssa is zero", ErrInvalidInput, ErrDivisionByZero)
	}
	r := (3.0 / (e.c.IceDensity * ssa)) * 1e3
	if !finite(r) {
		return 0, invalidf("optical radius for ssa %v overflows", ssa)
	}
	return r, nil
}

// ToOpticalRadius uses the default IRIS constants.
func ToOpticalRadius(ssa float64) (float64, error) {
	return defaultEstimator.ToOpticalRadius(ssa)
}
