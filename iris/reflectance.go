package iris

// Polynomial holds calibration coefficients highest degree first:
// reflectance = p[0]*v^3 + p[1]*v^2 + p[2]*v + p[3].
type Polynomial []float64

// Eval evaluates p at v without rounding.
func (p Polynomial) Eval(v float64) float64 {
	return p[0]*v*v*v + p[1]*v*v + p[2]*v + p[3]
}

func (p Polynomial) validate() error {
	if len(p) != Degree+1 {
		return invalidf("calibration polynomial has %d coefficients, want %d", len(p), Degree+1)
	}
	for i, c := range p {
		if !finite(c) {
			return invalidf("calibration coefficient %d is %v", i, c)
		}
	}
	return nil
}

// ToReflectance converts a measured voltage to reflectance (percent), rounded
// half to even at two decimals. The voltage range is not checked.
func ToReflectance(voltage float64, p Polynomial) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	if !finite(voltage) {
		return 0, invalidf("voltage %v is not finite", voltage)
	}
	r := p.Eval(voltage)
	if !finite(r) {
		return 0, invalidf("reflectance at %v V overflows", voltage)
	}
	return round2(r), nil
}
