// Package sortpair sorts a slice of x values and a parallel slice of
// indices together, in place, by x. segreg.Compute uses it to order
// observations by x before handing them to the splitter, which requires
// its input pre-sorted (spec §4.1).
//
// The teacher's tree package hand-rolls a quicksort/heapsort/insertion
// hybrid (tree/sort.go) because its splitter resorts every feature column
// at every node of every tree in the forest — specializing away from
// sort.Interface's indirection measurably mattered there. segreg sorts
// once per Compute call, on a single column, so that case doesn't apply
// here: a sort.Interface over the (x, inx) pair is exactly as fast as this
// package needs and a lot less code to get wrong.
package sortpair

import "sort"

// pairs sorts x ascending while keeping inx, a parallel slice of original
// indices, in lockstep.
type pairs struct {
	x   []float64
	inx []int
}

func (p *pairs) Len() int { return len(p.x) }

func (p *pairs) Less(i, j int) bool { return p.x[i] < p.x[j] }

func (p *pairs) Swap(i, j int) {
	p.x[i], p.x[j] = p.x[j], p.x[i]
	p.inx[i], p.inx[j] = p.inx[j], p.inx[i]
}

// Sort sorts x ascending, permuting inx identically so callers can recover
// the original position of each element.
func Sort(x []float64, inx []int) {
	sort.Sort(&pairs{x: x, inx: inx})
}
