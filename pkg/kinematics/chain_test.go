package kinematics

import (
	"math"
	"testing"
)

func TestComputeChainZeroPose(t *testing.T) {
	p := ComputeChain(Angles{})

	if p.O != (Vector3{}) {
		t.Errorf("O: expected origin, got %v", p.O)
	}
	if p.A.Distance(Vector3{Z: BoxH}) > tol {
		t.Errorf("A: expected (0,0,%v), got %v", BoxH, p.A)
	}
	// With all pitch joints at zero the arm points straight out along +X.
	if p.D.Distance(Vector3{X: Reach, Z: BoxH}) > tol {
		t.Errorf("D: expected (%v,0,%v), got %v", Reach, BoxH, p.D)
	}
}

func TestComputeChainDeterminism(t *testing.T) {
	a := Angles{Yaw: 12.5, Shoulder: -40, Elbow: 77, Wrist: -110}

	p1 := ComputeChain(a)
	p2 := ComputeChain(a)
	if p1 != p2 {
		t.Errorf("identical inputs gave different poses: %v vs %v", p1, p2)
	}
}

func TestComputeChainSegmentLengths(t *testing.T) {
	poses := []Angles{
		{},
		{Yaw: 45, Shoulder: 30, Elbow: -60, Wrist: 90},
		{Yaw: -90, Shoulder: -90, Elbow: 135, Wrist: -135},
		{Yaw: 10, Shoulder: 85, Elbow: 20, Wrist: 5},
	}

	for _, a := range poses {
		p := ComputeChain(a)
		if d := p.A.Distance(p.B); math.Abs(d-L1) > tol {
			t.Errorf("%+v: |AB| = %v, want %v", a, d, L1)
		}
		if d := p.B.Distance(p.C); math.Abs(d-L2) > tol {
			t.Errorf("%+v: |BC| = %v, want %v", a, d, L2)
		}
		if d := p.C.Distance(p.D); math.Abs(d-L3) > tol {
			t.Errorf("%+v: |CD| = %v, want %v", a, d, L3)
		}
	}
}

func TestShoulderLiftsTip(t *testing.T) {
	flat := ComputeChain(Angles{})
	raised := ComputeChain(Angles{Shoulder: 30})

	if raised.D.Z <= flat.D.Z {
		t.Errorf("positive shoulder should raise the tip: %v -> %v", flat.D.Z, raised.D.Z)
	}
}

func TestYawPreservesTipRadius(t *testing.T) {
	a := Angles{Shoulder: 20, Elbow: -35, Wrist: 10}

	r0 := ComputeChain(a).TipRadius()
	a.Yaw = 60
	r1 := ComputeChain(a).TipRadius()
	if math.Abs(r0-r1) > tol {
		t.Errorf("yaw changed tip radius: %v vs %v", r0, r1)
	}

	// Yaw 90 swings the whole plane onto the Y axis.
	d := ComputeChain(Angles{Yaw: 90}).D
	if d.Distance(Vector3{Y: Reach, Z: BoxH}) > tol {
		t.Errorf("yaw 90: expected (0,%v,%v), got %v", Reach, BoxH, d)
	}
}

func TestWrap180(t *testing.T) {
	cases := []struct{ in, out float64 }{
		{0, 0},
		{180, -180},
		{-180, -180},
		{270, -90},
		{-270, 90},
		{540, -180},
		{359, -1},
	}
	for _, c := range cases {
		if got := Wrap180(c.in); math.Abs(got-c.out) > tol {
			t.Errorf("Wrap180(%v): expected %v, got %v", c.in, c.out, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp above: expected 1, got %v", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp below: expected 0, got %v", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp inside: expected 0.5, got %v", got)
	}
}
