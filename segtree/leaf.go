package segtree

import (
	"fmt"
	"math"

	"github.com/wlattner/segreg/stats"
)

// Leaf is a contiguous run of observations fit by a single linear
// regression y = alpha*x + beta (spec §4.2). It owns six incremental
// moment accumulators and derives alpha, beta, and RSS from them in O(1).
type Leaf struct {
	cfg *Config

	x, y   *stats.Moments
	xy     *stats.Moments
	x2, y2 *stats.Moments
	cov    *stats.Moments // accumulates dx*(y - meanY), per-add, see Add

	trace *ErrorTrace
}

func newLeaf(cfg *Config) *Leaf {
	return &Leaf{
		cfg: cfg,
		x:   stats.New(),
		y:   stats.New(),
		xy:  stats.New(),
		x2:  stats.Squared(),
		y2:  stats.Squared(),
		cov: stats.New(),
	}
}

// NewLeaf builds a Leaf by ingesting xs/ys in order. Returns an InputError
// if the slices have different lengths.
func NewLeaf(xs, ys []float64, cfg *Config) (*Leaf, error) {
	if len(xs) != len(ys) {
		return nil, &InputError{Msg: fmt.Sprintf("len(xs)=%d != len(ys)=%d", len(xs), len(ys))}
	}
	l := newLeaf(cfg)
	for i := range xs {
		l.Add(xs[i], ys[i])
	}
	return l, nil
}

// Add appends the pair (x, y), updating all six accumulators in O(1). The
// covariance update must read x's pre-update mean and y's post-update
// mean, in that order — see spec §4.2's numbered algorithm.
func (l *Leaf) Add(x, y float64) {
	dx := x - l.x.Mean()

	l.x.Add(x)
	l.y.Add(y)
	l.xy.Add(x * y)
	l.x2.Add(x)
	l.y2.Add(y)

	l.cov.Add(dx * (y - l.y.Mean()))
}

// Pop removes and returns the most recently added pair, reversing Add's
// six pushes.
func (l *Leaf) Pop() (float64, float64) {
	l.cov.Pop()
	l.xy.Pop()
	l.x2.Pop()
	l.y2.Pop()
	x, _ := l.x.Pop()
	y, _ := l.y.Pop()
	return x, y
}

// Len returns the number of observations currently held.
func (l *Leaf) Len() int { return l.x.Count() }

// MeanX returns the mean of the x values.
func (l *Leaf) MeanX() float64 { return l.x.Mean() }

// MeanY returns the mean of the y values.
func (l *Leaf) MeanY() float64 { return l.y.Mean() }

// StdX returns the population standard deviation of the x values.
func (l *Leaf) StdX() float64 { return l.x.Std() }

// Cov returns the covariance between x and y.
func (l *Leaf) Cov() float64 { return l.cov.Mean() }

// Corr returns the Pearson correlation coefficient between x and y.
func (l *Leaf) Corr() float64 {
	return l.Cov() / (l.x.Std() * l.y.Std())
}

// degenerate reports whether the leaf has fewer than two distinct x
// values, making the slope undefined (spec §3).
func (l *Leaf) degenerate() bool {
	return l.Len() < 2 || l.x.Variance() == 0
}

// Slope returns alpha = cov(x,y) / var(x).
func (l *Leaf) Slope() float64 {
	return l.Cov() / l.x.Variance()
}

// Intercept returns beta = mean(y) - alpha*mean(x).
func (l *Leaf) Intercept() float64 {
	return l.MeanY() - l.Slope()*l.MeanX()
}

// RSquared returns the coefficient of determination, corr^2.
func (l *Leaf) RSquared() float64 {
	c := l.Corr()
	return c * c
}

// RSS returns the residual sum of squares of the linear fit, computed
// incrementally from the six accumulated sums rather than by replaying
// the residuals (spec §3). Degenerate leaves report +Inf.
func (l *Leaf) RSS() float64 {
	if l.degenerate() {
		return math.Inf(1)
	}
	a, b := l.Slope(), l.Intercept()
	n := float64(l.Len())
	sx, sy := l.x.Sum(), l.y.Sum()
	sx2, sy2, sxy := l.x2.Sum(), l.y2.Sum(), l.xy.Sum()

	return sy2 - 2*(a*sxy+b*sy) + (a*a*sx2 + 2*a*b*sx + n*b*b)
}

// RecomputeRSS recomputes the residual sum of squares from scratch by
// replaying every residual, O(n). Slower and marginally more precise than
// RSS; used to sanity-check the incremental formula (supplements the
// Python original's compute_RSS, see SPEC_FULL.md).
func (l *Leaf) RecomputeRSS() float64 {
	if l.degenerate() {
		return math.Inf(1)
	}
	xs, ys := l.x.Values(), l.y.Values()
	rss := 0.0
	for i := range xs {
		d := ys[i] - l.Predict(xs[i])
		rss += d * d
	}
	return rss
}

// NbParams returns the number of parameters of the linear fit: slope,
// intercept, and the residual standard deviation (spec §4.6).
func (l *Leaf) NbParams() int { return 3 }

// MSE returns RSS/n, or 0 for an empty leaf.
func (l *Leaf) MSE() float64 {
	if l.Len() == 0 {
		return 0
	}
	return l.RSS() / float64(l.Len())
}

// AIC returns the Akaike information criterion of the fit.
func (l *Leaf) AIC() float64 {
	return informationCriterion(l.RSS(), 2*float64(l.NbParams()), l.Len(), l.cfg)
}

// BIC returns the Bayesian information criterion of the fit.
func (l *Leaf) BIC() float64 {
	return informationCriterion(l.RSS(), float64(l.NbParams())*math.Log(float64(l.Len())), l.Len(), l.cfg)
}

// Error returns the configured objective's value for this leaf. Degenerate
// leaves (zero x variance) report +Inf so they can never win a split
// comparison (spec §4.6).
func (l *Leaf) Error() float64 {
	if l.x.Std() == 0 {
		return math.Inf(1)
	}
	switch l.cfg.Mode {
	case AIC:
		return l.AIC()
	case BIC:
		return l.BIC()
	default: // RSS
		mse := l.MSE()
		if mse < 0 {
			return 0
		}
		return math.Sqrt(mse)
	}
}

// Predict returns alpha*x + beta. Behavior is unspecified for degenerate
// leaves (spec §4.2); callers are expected to avoid calling it on one.
func (l *Leaf) Predict(x float64) float64 {
	return l.Slope()*x + l.Intercept()
}

// Breakpoints returns no thresholds: a leaf is a single segment.
func (l *Leaf) Breakpoints() []float64 { return nil }

// String renders the fit in scientific notation with 3 significant
// digits, or the degenerate marker "⊥" (spec §6).
func (l *Leaf) String() string {
	if l.degenerate() {
		return "⊥"
	}
	return fmt.Sprintf("y ~ %.2ex + %.2e", l.Slope(), l.Intercept())
}

// RawXY returns the x/y values in their current internal storage order
// (ascending for a leaf built from sorted input or as a node's left side,
// descending for a node's right side, which the splitter's left-to-right
// moves fill from high x to low x; see the
// orientation invariant, spec §4.3/§9). Used by Concat and by the
// significance collaborator, which only cares about the set of points,
// not their order.
func (l *Leaf) RawXY() ([]float64, []float64) {
	return l.x.Values(), l.y.Values()
}

// Concat builds a fresh leaf containing this leaf's points followed by
// other's points in reverse order, matching the convention that a node's
// right child stores its points in decreasing x order (spec §4.2). The
// caller is responsible for calling this on a left/right sibling pair, in
// that order, so the result is ascending in x.
func (l *Leaf) Concat(other *Leaf) (*Leaf, error) {
	xs1, ys1 := l.RawXY()
	xs2, ys2 := other.RawXY()

	xs := make([]float64, 0, len(xs1)+len(xs2))
	ys := make([]float64, 0, len(ys1)+len(ys2))
	xs = append(xs, xs1...)
	ys = append(ys, ys1...)
	for i := len(xs2) - 1; i >= 0; i-- {
		xs = append(xs, xs2[i])
		ys = append(ys, ys2[i])
	}

	return NewLeaf(xs, ys, l.cfg)
}

// clone returns a deep, independent copy of the leaf — used to snapshot
// the "no split" baseline before the splitter's sweep mutates the
// original (spec §4.4, §9).
func (l *Leaf) clone() *Leaf {
	return &Leaf{
		cfg: l.cfg,
		x:   l.x.Clone(),
		y:   l.y.Clone(),
		xy:  l.xy.Clone(),
		x2:  l.x2.Clone(),
		y2:  l.y2.Clone(),
		cov: l.cov.Clone(),
	}
}
