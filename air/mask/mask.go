// Package mask implements the mask-point shape helpers shared across
// components: building the TreeVec<ColumnVec<_>> of opening points a
// component's Component.MaskPoints must return, and checking it against
// trace_log_degree_bounds' shape (spec.md §8 item 5, "mask shape law").
package mask

import (
	"fmt"

	"github.com/BaoNinh2808/circle-stark/circlemath"
	"github.com/BaoNinh2808/circle-stark/qm31"
)

// Point is a circle-domain point, represented by its two coordinates
// over the secure field (the circle-curve arithmetic that would
// constrain x^2+y^2=1 is out of scope here; this package only cares
// about point identity and shape bookkeeping).
type Point struct {
	X, Y qm31.Element
}

// Shifted is the mask point obtained by shifting z by one step of
// the trace domain's generator in the direction `offset` (e.g. -1, 0,
// +1 for "previous row, current row, next row"). The actual circle-group
// addition is an out-of-scope collaborator; this records the offset so
// tests can check shape without needing real curve arithmetic.
type Shifted struct {
	Base   Point
	Offset int
}

// FixedMask returns a TreeVec<ColumnVec<[]Shifted>> where every column
// in tree t is opened at the same offsets, given per-tree column counts.
// This is the common case (every column of a component masked
// identically) that a row-based AIR (like the Fibonacci example) uses.
func FixedMask(z Point, columnsPerTree []int, offsets []int) circlemath.TreeVec[circlemath.ColumnVec[[]Shifted]] {
	trees := make(circlemath.TreeVec[circlemath.ColumnVec[[]Shifted]], len(columnsPerTree))
	for t, nCols := range columnsPerTree {
		cols := make(circlemath.ColumnVec[[]Shifted], nCols)
		for c := range cols {
			pts := make([]Shifted, len(offsets))
			for i, off := range offsets {
				pts[i] = Shifted{Base: z, Offset: off}
			}
			cols[c] = pts
		}
		trees[t] = cols
	}
	return trees
}

// CheckShape verifies the mask-shape law (spec.md §8 item 5): the
// number of trees and, within each tree, the number of columns in mask
// must match trace_log_degree_bounds exactly. It returns a descriptive
// error rather than a bare bool, per the conforming-implementation note
// in spec.md §9 on surfacing structured errors at the verifier boundary.
func CheckShape[T any](mask circlemath.TreeVec[circlemath.ColumnVec[[]Shifted]], bounds circlemath.TreeVec[circlemath.ColumnVec[T]]) error {
	if mask.NumTrees() != bounds.NumTrees() {
		return fmt.Errorf("mask: %d trees, trace_log_degree_bounds has %d", mask.NumTrees(), bounds.NumTrees())
	}
	for t := range mask {
		if mask[t].NumColumns() != bounds[t].NumColumns() {
			return fmt.Errorf("mask: tree %d has %d mask columns, trace_log_degree_bounds has %d",
				t, mask[t].NumColumns(), bounds[t].NumColumns())
		}
	}
	return nil
}
