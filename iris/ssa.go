package iris

import (
	"fmt"
	"math"
)

// Estimator converts reflectance to SSA and SSA to optical radius using a
// fixed set of constants. It holds no mutable state and is safe for
// concurrent use.
type Estimator struct {
	c Constants
}

// NewEstimator returns an Estimator bound to c.
func NewEstimator(c Constants) *Estimator {
	return &Estimator{c: c}
}

// Constants returns the estimator's configuration.
func (e *Estimator) Constants() Constants { return e.c }

var defaultEstimator = NewEstimator(DefaultConstants())

// ToSSA computes the specific surface area (m2.kg-1) for a reflectance in
// percent measured with the given instrument version, rounded half to even
// at two decimals.
func (e *Estimator) ToSSA(reflectance float64, version Version) (float64, error) {
	k0, err := e.c.K0For(version)
	if err != nil {
		return 0, err
	}
	if !finite(reflectance) {
		return 0, invalidf("reflectance %v is not finite", reflectance)
	}
	if reflectance <= 0 {
		return 0, invalidf("reflectance %v must be positive", reflectance)
	}
	if reflectance == 100 {
		return 0, fmt.Errorf("%w: reflectance of 100%% gives ln(1) = 0", ErrDivisionByZero)
	}
	x := reflectance / 100
	if x <= 0 {
		return 0, invalidf("reflectance %v underflows the ln argument", reflectance)
	}
	c := e.c
	t := k0 * c.ShapeB / math.Log(x)
	ssa := 4 * math.Pi * c.ImaginaryIndex / c.AbsorptionWavelength * 6 / c.IceDensity * (t * t)
	return round2(ssa), nil
}

// ToSSA uses the default IRIS constants.
func ToSSA(reflectance float64, version Version) (float64, error) {
	return defaultEstimator.ToSSA(reflectance, version)
}
