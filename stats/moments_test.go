package stats

import (
	"math"
	"testing"
)

func TestMomentsSumLaw(t *testing.T) {
	vals := []float64{1.5, -2.25, 3.0, 10.75, -0.5, 4.25}

	m := New()
	for _, v := range vals {
		m.Add(v)
	}

	want := 0.0
	for _, v := range vals {
		want += v
	}

	if got := m.Sum(); math.Abs(got-want) > 1e-9*math.Abs(want) {
		t.Errorf("Sum() = %v, want %v", got, want)
	}
}

func TestMomentsVarianceLaw(t *testing.T) {
	vals := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	m := New()
	for _, v := range vals {
		m.Add(v)
	}

	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))

	want := 0.0
	for _, v := range vals {
		d := v - mean
		want += d * d
	}
	want /= float64(len(vals))

	if got := m.Variance(); math.Abs(got-want) > 1e-9*want {
		t.Errorf("Variance() = %v, want %v", got, want)
	}
}

func TestMomentsPushPopRoundtrip(t *testing.T) {
	vals := []float64{3.1, -4.1, 5.9, 2.6, 5.3, 5.8}

	m := New()
	for _, v := range vals {
		m.Add(v)
	}

	wantCount := m.Count()
	wantMean := m.Mean()
	wantM2 := m.m2[len(m.m2)-1]

	m.Add(42.0)
	if _, err := m.Pop(); err != nil {
		t.Fatalf("Pop() error = %v", err)
	}

	if m.Count() != wantCount {
		t.Errorf("Count() = %d, want %d", m.Count(), wantCount)
	}
	if m.Mean() != wantMean {
		t.Errorf("Mean() = %v, want %v", m.Mean(), wantMean)
	}
	if got := m.m2[len(m.m2)-1]; got != wantM2 {
		t.Errorf("M2 = %v, want %v", got, wantM2)
	}
}

func TestMomentsPopEmpty(t *testing.T) {
	m := New()
	if _, err := m.Pop(); err != ErrEmpty {
		t.Errorf("Pop() on empty accumulator: err = %v, want ErrEmpty", err)
	}
}

func TestMomentsEmptyMeanVarianceAreZero(t *testing.T) {
	m := New()
	if m.Mean() != 0 {
		t.Errorf("Mean() on empty = %v, want 0", m.Mean())
	}
	if m.Variance() != 0 {
		t.Errorf("Variance() on empty = %v, want 0", m.Variance())
	}
}

func TestMomentsSquaredProjection(t *testing.T) {
	m := Squared()
	m.Add(3)
	m.Add(4)

	want := 9.0 + 16.0
	if got := m.Sum(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Sum() of squares = %v, want %v", got, want)
	}
}

func TestMomentsCloneIsIndependent(t *testing.T) {
	m := New()
	m.Add(1)
	m.Add(2)
	m.Add(3)

	c := m.Clone()

	m.Add(100)
	if _, err := m.Pop(); err != nil {
		t.Fatalf("Pop() error = %v", err)
	}
	if _, err := m.Pop(); err != nil {
		t.Fatalf("Pop() error = %v", err)
	}

	if c.Count() != 3 {
		t.Errorf("clone Count() = %d, want 3 (mutating original must not affect clone)", c.Count())
	}
	if c.Mean() == m.Mean() && m.Count() != 3 {
		t.Errorf("clone shares state with original")
	}
}

func TestMomentsFirstLast(t *testing.T) {
	m := New()
	if _, err := m.First(); err != ErrEmpty {
		t.Errorf("First() on empty: err = %v, want ErrEmpty", err)
	}

	m.Add(7)
	m.Add(8)
	m.Add(9)

	first, err := m.First()
	if err != nil || first != 7 {
		t.Errorf("First() = %v, %v, want 7, nil", first, err)
	}
	last, err := m.Last()
	if err != nil || last != 9 {
		t.Errorf("Last() = %v, %v, want 9, nil", last, err)
	}
}
