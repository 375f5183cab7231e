// Package simplify merges statistically indistinguishable adjacent leaves
// of a fitted tree, post hoc (spec §4.5). It depends on segtree but not on
// any particular statistics library: callers supply significance testing
// through the narrow Fitter interface (spec §9 design note).
package simplify

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/wlattner/segreg/segtree"
)

// Result is the outcome of fitting a simple linear regression to a set of
// (x, y) observations: slope and intercept, their p-values under a
// null-coefficient test, and their 95% confidence intervals.
type Result struct {
	Slope      float64
	Intercept  float64
	SlopeP     float64
	InterceptP float64
	SlopeCI    [2]float64
	InterceptCI [2]float64
}

// Fitter computes significance diagnostics for a candidate merged leaf.
// Implementations wrap a concrete regression library; segtree and
// simplify never import one directly (spec §9).
type Fitter interface {
	Fit(xs, ys []float64) (Result, error)
}

var warnOnce sync.Once

// Simplify walks seg bottom-up and merges any adjacent sibling leaves that
// are statistically indistinguishable under fit, reattaching the original
// split's diagnostics trace to the merged leaf (spec §4.5). A nil Fitter
// disables merging entirely: Simplify logs a one-time warning and returns
// seg unchanged. Simplify is idempotent — running it again on its own
// output is a no-op.
func Simplify(seg segtree.Segment, fit Fitter) segtree.Segment {
	if fit == nil {
		warnOnce.Do(func() {
			log.Warn("simplify: no Fitter configured, tree returned unsimplified")
		})
		return seg
	}
	return simplify(seg, fit)
}

func simplify(seg segtree.Segment, fit Fitter) segtree.Segment {
	node, ok := seg.(*segtree.Node)
	if !ok {
		return seg
	}

	left := simplify(node.Left(), fit)
	right := simplify(node.Right(), fit)

	leftLeaf, leftIsLeaf := left.(*segtree.Leaf)
	rightLeaf, rightIsLeaf := right.(*segtree.Leaf)

	if leftIsLeaf && rightIsLeaf {
		merged, err := leftLeaf.Concat(rightLeaf)
		if err == nil && (equivalentPair(leftLeaf, rightLeaf, fit) ||
			equivalentPair(merged, leftLeaf, fit) ||
			equivalentPair(merged, rightLeaf, fit)) {
			merged.SetTrace(node.Trace())
			return merged
		}
	}

	return segtree.NewMergedNode(left, right, node.Config(), node.Trace())
}

// equivalentPair implements the Python original's Leaf.__eq__ rule (spec
// §4.5): a and b are "not significantly different" unless at least one of
// four conditions holds — one and only one of the two intercepts is
// significant, one and only one of the two slopes is significant, both
// intercepts are significant with non-overlapping confidence intervals, or
// both slopes are significant with non-overlapping confidence intervals.
// Leaves with five or fewer observations on either side are always
// equivalent — too little data to tell apart. simplify calls this
// pairwise, three times, as an OR across (left, right), (merged, left),
// and (merged, right): merging improves the fit in some cases without the
// two original segments individually looking alike, so the merged-vs-one
// comparisons must stand on their own rather than being ANDed together.
func equivalentPair(a, b *segtree.Leaf, fit Fitter) bool {
	if a.Len() <= 5 || b.Len() <= 5 {
		return true
	}

	axs, ays := a.RawXY()
	bxs, bys := b.RawXY()

	ra, err := fit.Fit(axs, ays)
	if err != nil {
		return false
	}
	rb, err := fit.Fit(bxs, bys)
	if err != nil {
		return false
	}

	const sigLevel = 1e-3
	const ciTol = 1e-3

	aInterceptSig := ra.InterceptP < sigLevel
	bInterceptSig := rb.InterceptP < sigLevel
	switch {
	case aInterceptSig && bInterceptSig:
		if !ciOverlap(ra.InterceptCI, rb.InterceptCI, ciTol) {
			return false
		}
	case aInterceptSig || bInterceptSig:
		return false
	}

	aSlopeSig := ra.SlopeP < sigLevel
	bSlopeSig := rb.SlopeP < sigLevel
	switch {
	case aSlopeSig && bSlopeSig:
		if !ciOverlap(ra.SlopeCI, rb.SlopeCI, ciTol) {
			return false
		}
	case aSlopeSig || bSlopeSig:
		return false
	}

	return true
}

func ciOverlap(a, b [2]float64, tol float64) bool {
	return a[0]-tol <= b[1] && b[0]-tol <= a[1]
}
