package segreg

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlattner/segreg/segtree"
)

func TestComputeSingleLineNoNoise(t *testing.T) {
	var xs, ys []float64
	for x := 0.0; x < 100; x++ {
		xs = append(xs, x)
		ys = append(ys, 2*x+5)
	}

	tree, err := Compute(xs, ys)
	require.NoError(t, err)

	assert.Empty(t, tree.Breakpoints())
	assert.InDelta(t, 0, tree.RSS(), 1e-6)

	for _, x := range []float64{0, 25, 50, 99} {
		assert.InDelta(t, 2*x+5, tree.Predict(x), 1e-6)
	}
}

func TestComputeTwoSegmentsCleanBreak(t *testing.T) {
	var xs, ys []float64
	for x := 0.0; x < 100; x++ {
		xs = append(xs, x)
		if x < 50 {
			ys = append(ys, 2*x)
		} else {
			ys = append(ys, (x-50)+100)
		}
	}

	tree, err := Compute(xs, ys)
	require.NoError(t, err)

	bp := tree.Breakpoints()
	require.Len(t, bp, 1)
	assert.True(t, bp[0] >= 49 && bp[0] <= 50, "threshold %v not in [49, 50]", bp[0])
}

func TestComputeConstantData(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	ys := []float64{7, 7, 7, 7, 7, 7, 7, 7, 7, 7}

	tree, err := Compute(xs, ys)
	require.NoError(t, err)

	assert.Empty(t, tree.Breakpoints())
	assert.InDelta(t, 0, tree.RSS(), 1e-9)
	assert.InDelta(t, 7, tree.Predict(4), 1e-9)
}

func TestComputeDegenerateX(t *testing.T) {
	xs := []float64{3, 3, 3, 3, 3, 3, 3, 3, 3, 3}
	ys := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tree, err := Compute(xs, ys)
	require.NoError(t, err)

	assert.Empty(t, tree.Breakpoints())
	assert.True(t, math.IsInf(tree.Error(), 1), "Error() = %v, want +Inf", tree.Error())
}

func TestComputeNoisySingleLineBICMode(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var xs, ys []float64
	for x := 0.0; x < 1000; x++ {
		xs = append(xs, x)
		ys = append(ys, 3*x-1+rng.NormFloat64())
	}

	tree, err := Compute(xs, ys, WithMode(segtree.BIC))
	require.NoError(t, err)

	assert.Empty(t, tree.Breakpoints(), "BIC should resist noise-driven splits")
}

func TestComputeThreeSegmentsWithSimplify(t *testing.T) {
	var xs, ys []float64
	for x := 0.0; x < 40; x++ {
		xs = append(xs, x)
		ys = append(ys, x)
	}
	for x := 40.0; x < 80; x++ {
		xs = append(xs, x)
		ys = append(ys, -2*x+120)
	}
	for x := 80.0; x < 120; x++ {
		xs = append(xs, x)
		ys = append(ys, 0.5*x-80)
	}

	tree, err := Compute(xs, ys, WithSimplify())
	require.NoError(t, err)

	bp := tree.Breakpoints()
	require.Len(t, bp, 2)
	assert.InDelta(t, 40, bp[0], 1)
	assert.InDelta(t, 80, bp[1], 1)
}

func TestComputeInputOrderInvariance(t *testing.T) {
	var xs, ys []float64
	for x := 0.0; x < 60; x++ {
		xs = append(xs, x)
		if x < 30 {
			ys = append(ys, x)
		} else {
			ys = append(ys, -x+60)
		}
	}

	treeA, err := Compute(xs, ys)
	require.NoError(t, err)

	// permute both slices identically, preserving the (x, y) pairing.
	perm := rand.New(rand.NewSource(7)).Perm(len(xs))
	pxs := make([]float64, len(xs))
	pys := make([]float64, len(ys))
	for i, j := range perm {
		pxs[i] = xs[j]
		pys[i] = ys[j]
	}

	treeB, err := Compute(pxs, pys)
	require.NoError(t, err)

	assert.InDelta(t, treeA.RSS(), treeB.RSS(), 1e-9)
	require.Len(t, treeB.Breakpoints(), len(treeA.Breakpoints()))
	for i := range treeA.Breakpoints() {
		assert.InDelta(t, treeA.Breakpoints()[i], treeB.Breakpoints()[i], 1e-9)
	}
}

func TestComputeRejectsMismatchedLengths(t *testing.T) {
	_, err := Compute([]float64{1, 2, 3}, []float64{1, 2})
	require.Error(t, err)
	assert.IsType(t, &segtree.InputError{}, err)
}

func TestComputeRejectsEmptyInput(t *testing.T) {
	_, err := Compute(nil, nil)
	require.Error(t, err)
}

func TestComputeRejectsBadEpsilon(t *testing.T) {
	_, err := Compute([]float64{1, 2, 3}, []float64{1, 2, 3}, WithEpsilon(-1))
	require.Error(t, err)
	assert.IsType(t, &segtree.ConfigError{}, err)
}
