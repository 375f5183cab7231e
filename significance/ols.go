// Package significance implements simplify.Fitter with ordinary least
// squares, using gonum for the regression and the Student's t reference
// distribution (spec §4.5; replaces the Python original's
// statsmodels.ols(...).fit() usage).
package significance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/wlattner/segreg/simplify"
)

// ConfidenceLevel is the two-sided confidence level used for coefficient
// intervals, matching the Python original's 95% default.
const ConfidenceLevel = 0.95

// OLSFitter fits a simple linear regression y = slope*x + intercept via
// ordinary least squares and reports significance diagnostics for both
// coefficients.
type OLSFitter struct{}

var _ simplify.Fitter = OLSFitter{}

// Fit implements simplify.Fitter.
func (OLSFitter) Fit(xs, ys []float64) (simplify.Result, error) {
	n := len(xs)
	if n != len(ys) {
		return simplify.Result{}, fmt.Errorf("significance: len(xs)=%d != len(ys)=%d", n, len(ys))
	}
	if n < 3 {
		return simplify.Result{}, fmt.Errorf("significance: need at least 3 observations, got %d", n)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	var rss, sx2 float64
	meanX := stat.Mean(xs, nil)
	for i := range xs {
		resid := ys[i] - (slope*xs[i] + intercept)
		rss += resid * resid
		d := xs[i] - meanX
		sx2 += d * d
	}

	dof := float64(n - 2)
	if dof <= 0 || sx2 == 0 {
		return simplify.Result{}, fmt.Errorf("significance: degenerate input (dof=%v, var(x)=%v)", dof, sx2)
	}
	residualVar := rss / dof

	slopeSE := math.Sqrt(residualVar / sx2)
	interceptSE := math.Sqrt(residualVar * (1/float64(n) + meanX*meanX/sx2))

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}

	slopeT := slope / slopeSE
	interceptT := intercept / interceptSE

	slopeP := 2 * (1 - t.CDF(math.Abs(slopeT)))
	interceptP := 2 * (1 - t.CDF(math.Abs(interceptT)))

	crit := t.Quantile(1 - (1-ConfidenceLevel)/2)

	return simplify.Result{
		Slope:       slope,
		Intercept:   intercept,
		SlopeP:      slopeP,
		InterceptP:  interceptP,
		SlopeCI:     [2]float64{slope - crit*slopeSE, slope + crit*slopeSE},
		InterceptCI: [2]float64{intercept - crit*interceptSE, intercept + crit*interceptSE},
	}, nil
}
