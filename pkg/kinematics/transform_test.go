package kinematics

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestIdentityPosition(t *testing.T) {
	p := Identity().Position()

	expected := Vector3{}
	if p != expected {
		t.Errorf("Identity position: expected %v, got %v", expected, p)
	}
}

func TestMulIdentity(t *testing.T) {
	tr := Translate(1, 2, 3)

	if got := Mul(Identity(), tr); got != tr {
		t.Errorf("I*T: expected %v, got %v", tr, got)
	}
	if got := Mul(tr, Identity()); got != tr {
		t.Errorf("T*I: expected %v, got %v", tr, got)
	}
}

func TestTranslateComposition(t *testing.T) {
	p := Mul(Translate(1, 2, 3), Translate(4, 5, 6)).Position()

	expected := Vector3{X: 5, Y: 7, Z: 9}
	if p.Distance(expected) > tol {
		t.Errorf("composed translation: expected %v, got %v", expected, p)
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	// Rotating a unit X offset by +90 degrees about Z lands on +Y.
	p := Mul(RotateZ(math.Pi/2), Translate(1, 0, 0)).Position()

	expected := Vector3{X: 0, Y: 1, Z: 0}
	if p.Distance(expected) > tol {
		t.Errorf("RotateZ(90): expected %v, got %v", expected, p)
	}
}

func TestRotateYSignConvention(t *testing.T) {
	// RotateY with a negated angle lifts +X toward +Z; this is the
	// convention ComputeChain relies on.
	p := Mul(RotateY(-math.Pi/2), Translate(1, 0, 0)).Position()

	expected := Vector3{X: 0, Y: 0, Z: 1}
	if p.Distance(expected) > tol {
		t.Errorf("RotateY(-90): expected %v, got %v", expected, p)
	}
}

func TestMulAssociativity(t *testing.T) {
	a := RotateZ(0.3)
	b := RotateY(-0.7)
	c := Translate(0.5, -1, 2)

	left := Mul(Mul(a, b), c)
	right := Mul(a, Mul(b, c))
	for i := range left {
		if math.Abs(left[i]-right[i]) > tol {
			t.Fatalf("associativity broken at element %d: %v vs %v", i, left[i], right[i])
		}
	}
}
