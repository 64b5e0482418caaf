package circlemath

import "testing"

func TestTreeVecColumnVecOrdering(t *testing.T) {
	tv := NewTreeVec(
		NewColumnVec(1, 2, 3),
		NewColumnVec(4, 5),
	)
	if tv.NumTrees() != 2 {
		t.Fatalf("expected 2 trees, got %d", tv.NumTrees())
	}
	if tv[0].NumColumns() != 3 || tv[1].NumColumns() != 2 {
		t.Fatalf("unexpected column counts: %v", tv)
	}
	if tv[0][1] != 2 {
		t.Fatalf("expected insertion order preserved, got %d", tv[0][1])
	}
}

func TestMapTreeVecPreservesShape(t *testing.T) {
	tv := NewTreeVec(NewColumnVec(1, 2), NewColumnVec(3))
	doubled := MapTreeVec(tv, func(_ int, cols ColumnVec[int]) ColumnVec[int] {
		return MapColumnVec(cols, func(_ int, v int) int { return v * 2 })
	})
	if !ShapesMatch(tv, doubled) {
		t.Fatal("expected shapes to match after mapping")
	}
	if doubled[0][0] != 2 || doubled[0][1] != 4 || doubled[1][0] != 6 {
		t.Fatalf("unexpected mapped values: %v", doubled)
	}
}

func TestShapesMatchDetectsMismatch(t *testing.T) {
	a := NewTreeVec(NewColumnVec(1, 2))
	b := NewTreeVec(NewColumnVec(1))
	if ShapesMatch(a, b) {
		t.Fatal("expected mismatched column counts to be detected")
	}
	c := NewTreeVec(NewColumnVec(1, 2), NewColumnVec(3))
	if ShapesMatch(a, c) {
		t.Fatal("expected mismatched tree counts to be detected")
	}
}
