package iris

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Degree of the calibration polynomial.
const Degree = 3

// MinSamples is the smallest calibration set a cubic fit accepts.
const MinSamples = Degree + 1

const (
	eps = 0x1p-52
	// maxCond bounds the condition number of the column-scaled design matrix.
	maxCond = 1e12
)

// FitReport describes how well a calibration polynomial matches its samples.
type FitReport struct {
	Samples int     `json:"samples"`
	Rank    int     `json:"rank"`
	Cond    float64 `json:"cond"`
	RSS     float64 `json:"rss"`
}

// Fit computes the least-squares cubic mapping voltages to reflectance
// standards (percent, e.g. 80 for 80%). Coefficients are highest degree first.
func Fit(standards, voltages []float64) (Polynomial, error) {
	p, _, err := FitWithReport(standards, voltages)
	return p, err
}

// FitWithReport is Fit plus the rank, condition number and residual sum of
// squares of the solve.
//
// The design matrix rows are [v^3 v^2 v 1]. Each column is scaled to unit norm
// before an SVD solve; a rank below 4 (relative tolerance N*eps) or a scaled
// condition number above 1e12 fails with ErrNumericalInstability.
func FitWithReport(standards, voltages []float64) (Polynomial, FitReport, error) {
	n := len(voltages)
	rep := FitReport{Samples: n}
	if len(standards) != n {
		return nil, rep, invalidf("%d reflectance standards for %d voltages", len(standards), n)
	}
	if n < MinSamples {
		return nil, rep, invalidf("need at least %d calibration samples, got %d", MinSamples, n)
	}
	for i := 0; i < n; i++ {
		if !finite(voltages[i]) || !finite(standards[i]) {
			return nil, rep, invalidf("calibration sample %d is not finite (standard=%v voltage=%v)", i, standards[i], voltages[i])
		}
	}

	const cols = Degree + 1
	columns := make([][]float64, cols)
	for j := range columns {
		columns[j] = make([]float64, n)
	}
	for i, v := range voltages {
		x := 1.0
		for j := cols - 1; j >= 0; j-- {
			columns[j][i] = x
			x *= v
		}
	}
	scale := make([]float64, cols)
	for j, col := range columns {
		s := floats.Norm(col, 2)
		if s == 0 || !finite(s) {
			return nil, rep, fmt.Errorf("%w: design column for v^%d has norm %v", ErrNumericalInstability, cols-1-j, s)
		}
		floats.Scale(1/s, col)
		scale[j] = s
	}
	a := mat.NewDense(n, cols, nil)
	for j, col := range columns {
		a.SetCol(j, col)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, rep, fmt.Errorf("%w: SVD factorization failed", ErrNumericalInstability)
	}
	rep.Rank = svd.Rank(float64(n) * eps)
	rep.Cond = svd.Cond()
	if rep.Rank < cols {
		return nil, rep, fmt.Errorf("%w: design matrix rank %d < %d", ErrNumericalInstability, rep.Rank, cols)
	}
	if rep.Cond > maxCond {
		return nil, rep, fmt.Errorf("%w: design matrix condition number %.3g", ErrNumericalInstability, rep.Cond)
	}

	b := mat.NewDense(n, 1, append([]float64(nil), standards...))
	var sol mat.Dense
	svd.SolveTo(&sol, b, rep.Rank)

	p := make(Polynomial, cols)
	for j := range p {
		p[j] = sol.At(j, 0) / scale[j]
		if !finite(p[j]) {
			return nil, rep, fmt.Errorf("%w: coefficient %d is %v", ErrNumericalInstability, j, p[j])
		}
	}
	for i, v := range voltages {
		r := p.Eval(v) - standards[i]
		rep.RSS += r * r
	}
	return p, rep, nil
}
