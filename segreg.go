// Package segreg fits a segmented (piecewise linear) regression to a
// single-feature dataset: a binary tree of linear-regression leaves,
// split recursively by sweeping a single threshold across the sorted
// observations and scoring each candidate by an information criterion
// (spec §1-§4).
package segreg

import (
	"fmt"
	"io"
	"math"

	"github.com/wlattner/segreg/export"
	"github.com/wlattner/segreg/internal/sortpair"
	"github.com/wlattner/segreg/segtree"
	"github.com/wlattner/segreg/significance"
	"github.com/wlattner/segreg/simplify"
)

// Tree is a fitted segmented regression: a read-only wrapper around the
// internal segtree.Segment exposing the public operations callers need
// (spec §6).
type Tree struct {
	seg segtree.Segment
	cfg *segtree.Config
}

// Predict returns the fitted value at x, dispatching through the tree's
// splits to the owning leaf (spec §4.3).
func (t *Tree) Predict(x float64) float64 { return t.seg.Predict(x) }

// Breakpoints returns every split threshold in the tree, in ascending
// order. A tree with no splits returns an empty slice.
func (t *Tree) Breakpoints() []float64 {
	bp := t.seg.Breakpoints()
	if bp == nil {
		return []float64{}
	}
	return bp
}

// RSS returns the tree's aggregate residual sum of squares.
func (t *Tree) RSS() float64 { return t.seg.RSS() }

// NbParams returns the total number of fitted parameters across every
// leaf plus one per split threshold.
func (t *Tree) NbParams() int { return t.seg.NbParams() }

// MSE returns the aggregate mean squared error.
func (t *Tree) MSE() float64 { return t.seg.MSE() }

// AIC returns the tree's Akaike information criterion.
func (t *Tree) AIC() float64 { return t.seg.AIC() }

// BIC returns the tree's Bayesian information criterion.
func (t *Tree) BIC() float64 { return t.seg.BIC() }

// Error returns the configured scoring objective's value for the tree.
func (t *Tree) Error() float64 { return t.seg.Error() }

// String renders the tree as an ASCII box-drawing diagram (spec §6).
func (t *Tree) String() string { return t.seg.String() }

// ExportDOT writes a Graphviz DOT rendering of the tree to w.
func (t *Tree) ExportDOT(w io.Writer) error { return export.WriteDOT(w, t.seg) }

// options collects functional-option settings, following the teacher's
// tree.NewClassifier(options ...func(treeConfiger)) pattern.
type options struct {
	mode      segtree.ScoreMode
	epsilon   float64
	hasEps    bool
	simplify  bool
	fitter    simplify.Fitter
	hasFitter bool
}

// Option configures a call to Compute.
type Option func(*options)

// WithMode selects the scoring objective (default BIC).
func WithMode(mode segtree.ScoreMode) Option {
	return func(o *options) { o.mode = mode }
}

// WithEpsilon overrides the default epsilon (min(|y|) over the dataset).
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		o.epsilon = epsilon
		o.hasEps = true
	}
}

// WithSimplify enables the post-hoc leaf-merging pass (spec §4.5), using
// an OLS significance Fitter unless WithFitter overrides it.
func WithSimplify() Option {
	return func(o *options) { o.simplify = true }
}

// WithFitter supplies a custom simplify.Fitter for the simplifier,
// implying WithSimplify.
func WithFitter(fit simplify.Fitter) Option {
	return func(o *options) {
		o.simplify = true
		o.fitter = fit
		o.hasFitter = true
	}
}

// Compute fits a segmented regression to xs/ys (spec §6, "compute_regression").
// xs and ys must be the same length and non-empty; they need not already
// be sorted by x. Observations are sorted ascending by x before fitting.
func Compute(xs, ys []float64, opts ...Option) (*Tree, error) {
	if len(xs) != len(ys) {
		return nil, &segtree.InputError{Msg: fmt.Sprintf("len(xs)=%d != len(ys)=%d", len(xs), len(ys))}
	}
	if len(xs) == 0 {
		return nil, &segtree.InputError{Msg: "no observations"}
	}

	o := &options{mode: segtree.BIC}
	for _, opt := range opts {
		opt(o)
	}

	if !o.hasEps {
		o.epsilon = minAbs(ys)
		if o.epsilon == 0 {
			o.epsilon = 1e-9
		}
	}

	cfg, err := segtree.NewConfig(o.mode, o.epsilon)
	if err != nil {
		return nil, err
	}

	sxs, sys := sortedCopy(xs, ys)

	seg, err := segtree.BuildTree(sxs, sys, cfg)
	if err != nil {
		return nil, err
	}

	if o.simplify {
		fit := o.fitter
		if !o.hasFitter {
			fit = significance.OLSFitter{}
		}
		seg = simplify.Simplify(seg, fit)
	}

	return &Tree{seg: seg, cfg: cfg}, nil
}

// sortedCopy returns xs/ys sorted ascending by x, leaving the caller's
// slices untouched.
func sortedCopy(xs, ys []float64) ([]float64, []float64) {
	sx := append([]float64(nil), xs...)
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sortpair.Sort(sx, idx)

	sy := make([]float64, len(ys))
	for i, j := range idx {
		sy[i] = ys[j]
	}
	return sx, sy
}

func minAbs(ys []float64) float64 {
	m := math.Inf(1)
	for _, y := range ys {
		if a := math.Abs(y); a < m {
			m = a
		}
	}
	if math.IsInf(m, 1) {
		return 0
	}
	return m
}
