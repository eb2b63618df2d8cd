package iris

import "fmt"

// Physical constants of the SSA model.
const (
	IceDensity           = 916.7  // kg.m-3
	AbsorptionWavelength = 1.3e-6 // ice absorption wavelength parameter
	ImaginaryIndex       = 1.3e-5 // imaginary refractive index of ice
	ShapeB               = 4.53
)

// Per-instrument calibration constants.
const (
	K0Iris1 = 1.26
	K0Iris2 = 1.205
	K0Iris3 = 1.258
)

// K0Table binds each instrument version to its calibration constant.
type K0Table struct {
	Iris1 float64
	Iris2 float64
	Iris3 float64
}

// Constants is the fixed configuration of the estimators. It is a value type;
// copies handed to an Estimator cannot be changed from outside.
type Constants struct {
	IceDensity           float64
	AbsorptionWavelength float64
	ImaginaryIndex       float64
	ShapeB               float64
	K0                   K0Table
}

// DefaultConstants returns the constants of the IRIS instruments.
func DefaultConstants() Constants {
	return Constants{
		IceDensity:           IceDensity,
		AbsorptionWavelength: AbsorptionWavelength,
		ImaginaryIndex:       ImaginaryIndex,
		ShapeB:               ShapeB,
		K0: K0Table{
			Iris1: K0Iris1,
			Iris2: K0Iris2,
			Iris3: K0Iris3,
		},
	}
}

// K0For resolves the calibration constant of version v.
func (c Constants) K0For(v Version) (float64, error) {
	switch v {
	case Iris1:
		return c.K0.Iris1, nil
	case Iris2:
		return c.K0.Iris2, nil
	case Iris3:
		return c.K0.Iris3, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownVersion, int(v))
}
