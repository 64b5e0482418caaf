package circlemath

import (
	"testing"

	"github.com/BaoNinh2808/circle-stark/m31"
)

func makeColumn(n int) CirclePoly[m31.Element] {
	return CirclePoly[m31.Element]{Backend: "cpu", Coeffs: make([]m31.Element, n)}
}

func makeEval(n int) CircleEvaluation[m31.Element] {
	return FromNaturalOrder[m31.Element]("cpu", make([]m31.Element, n))
}

func TestComponentTraceValidateAcceptsMatchingShape(t *testing.T) {
	trace := ComponentTrace[m31.Element]{
		Polys: NewTreeVec(NewColumnVec(makeColumn(4), makeColumn(4))),
		Evals: NewTreeVec(NewColumnVec(makeEval(8), makeEval(8))),
	}
	if err := trace.Validate(); err != nil {
		t.Fatalf("expected valid trace, got %v", err)
	}
}

func TestComponentTraceValidateRejectsShapeMismatch(t *testing.T) {
	trace := ComponentTrace[m31.Element]{
		Polys: NewTreeVec(NewColumnVec(makeColumn(4), makeColumn(4))),
		Evals: NewTreeVec(NewColumnVec(makeEval(8))),
	}
	if err := trace.Validate(); err == nil {
		t.Fatal("expected shape mismatch error")
	}
}

func TestComponentTraceValidateRejectsNonPowerOfTwoEval(t *testing.T) {
	trace := ComponentTrace[m31.Element]{
		Polys: NewTreeVec(NewColumnVec(makeColumn(4))),
		Evals: NewTreeVec(NewColumnVec(CircleEvaluation[m31.Element]{Backend: "cpu", Values: make([]m31.Element, 6)})),
	}
	if err := trace.Validate(); err == nil {
		t.Fatal("expected non-power-of-two evaluation length to be rejected")
	}
}

func TestTraceLogDegreeBounds(t *testing.T) {
	trace := ComponentTrace[m31.Element]{
		Polys: NewTreeVec(NewColumnVec(makeColumn(4), makeColumn(8))),
	}
	bounds := trace.TraceLogDegreeBounds()
	if bounds[0][0] != 2 || bounds[0][1] != 3 {
		t.Fatalf("unexpected bounds: %v", bounds)
	}
}
