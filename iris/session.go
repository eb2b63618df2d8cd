package iris

import "fmt"

// Result is one voltage carried through the whole pipeline.
type Result struct {
	Voltage       float64 `json:"voltage"`
	Reflectance   float64 `json:"reflectance"`
	SSA           float64 `json:"ssa"`
	OpticalRadius float64 `json:"optical_radius_mm"`
}

// Session chains reflectance, SSA and optical radius for one measurement
// session: a calibration polynomial and the instrument that took the readings.
type Session struct {
	poly    Polynomial
	version Version
	est     *Estimator
}

// NewSession validates p and v and returns a Session using constants c.
func NewSession(p Polynomial, v Version, c Constants) (*Session, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if _, err := c.K0For(v); err != nil {
		return nil, err
	}
	return &Session{
		poly:    append(Polynomial(nil), p...),
		version: v,
		est:     NewEstimator(c),
	}, nil
}

// Polynomial returns a copy of the session's calibration polynomial.
func (s *Session) Polynomial() Polynomial {
	return append(Polynomial(nil), s.poly...)
}

func (s *Session) Version() Version { return s.version }

// Process converts one voltage.
func (s *Session) Process(voltage float64) (Result, error) {
	res := Result{Voltage: voltage}
	var err error
	if res.Reflectance, err = ToReflectance(voltage, s.poly); err != nil {
		return res, err
	}
	if res.SSA, err = s.est.ToSSA(res.Reflectance, s.version); err != nil {
		return res, err
	}
	if res.OpticalRadius, err = s.est.ToOpticalRadius(res.SSA); err != nil {
		return res, err
	}
	return res, nil
}

// ProcessAll converts voltages in order. On the first failure it returns no
// results, only the error naming the failing index.
func (s *Session) ProcessAll(voltages []float64) ([]Result, error) {
	out := make([]Result, 0, len(voltages))
	for i, v := range voltages {
		res, err := s.Process(v)
		if err != nil {
			return nil, fmt.Errorf("measurement %d: %w", i, err)
		}
		out = append(out, res)
	}
	return out, nil
}
