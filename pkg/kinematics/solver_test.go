package kinematics

import (
	"math"
	"testing"
)

func checkLimits(t *testing.T, sol PlaneAngles, r, z float64) {
	t.Helper()
	if math.IsNaN(sol.Shoulder) || math.IsNaN(sol.Elbow) || math.IsNaN(sol.Wrist) {
		t.Fatalf("Solve(%v, %v): NaN in result %+v", r, z, sol)
	}
	if sol.Shoulder < ShoulderMin || sol.Shoulder > ShoulderMax {
		t.Errorf("Solve(%v, %v): shoulder %v outside limits", r, z, sol.Shoulder)
	}
	if sol.Elbow < ElbowMin || sol.Elbow > ElbowMax {
		t.Errorf("Solve(%v, %v): elbow %v outside limits", r, z, sol.Elbow)
	}
	if sol.Wrist < WristMin || sol.Wrist > WristMax {
		t.Errorf("Solve(%v, %v): wrist %v outside limits", r, z, sol.Wrist)
	}
}

func TestSolveRoundTrip(t *testing.T) {
	r, z := 1.5, BoxH

	sol := Solve(r, z, nil)
	checkLimits(t, sol, r, z)

	p := ComputeChain(Angles{Shoulder: sol.Shoulder, Elbow: sol.Elbow, Wrist: sol.Wrist})
	if math.Abs(p.TipRadius()-r) > 1e-2 {
		t.Errorf("tip radius: expected %v, got %v", r, p.TipRadius())
	}
	if math.Abs(p.D.Z-z) > 1e-2 {
		t.Errorf("tip height: expected %v, got %v", z, p.D.Z)
	}
}

func TestSolveJointLimitClosure(t *testing.T) {
	for r := 0.0; r <= Reach; r += 0.3 {
		for z := 0.0; z <= BoxH+Reach; z += 0.3 {
			checkLimits(t, Solve(r, z, nil), r, z)
		}
	}
}

func TestSolveContinuity(t *testing.T) {
	r, z := 1.5, BoxH+0.4

	prev := Solve(r, z, nil)
	next := Solve(r+0.01, z, &prev)

	const bound = 2.0
	if d := math.Abs(next.Shoulder - prev.Shoulder); d > bound {
		t.Errorf("shoulder jumped %v deg on a 0.01 target move", d)
	}
	if d := math.Abs(next.Elbow - prev.Elbow); d > bound {
		t.Errorf("elbow jumped %v deg on a 0.01 target move", d)
	}
	if d := math.Abs(next.Wrist - prev.Wrist); d > bound {
		t.Errorf("wrist jumped %v deg on a 0.01 target move", d)
	}
}

func TestSolveDragSequenceStaysSmooth(t *testing.T) {
	// Simulate a horizontal drag across the workspace and verify no
	// branch flips between consecutive solves.
	z := BoxH + 0.3
	prev := Solve(0.8, z, nil)
	for r := 0.82; r <= 2.0; r += 0.02 {
		next := Solve(r, z, &prev)
		checkLimits(t, next, r, z)
		jump := math.Abs(next.Shoulder-prev.Shoulder) +
			math.Abs(next.Elbow-prev.Elbow) +
			math.Abs(next.Wrist-prev.Wrist)
		if jump > 15 {
			t.Fatalf("r=%v: total joint jump %v deg between consecutive solves", r, jump)
		}
		prev = next
	}
}

func TestSolveUnreachableFallback(t *testing.T) {
	checkLimits(t, Solve(Reach*2, 0, nil), Reach*2, 0)
	checkLimits(t, Solve(0, 100, nil), 0, 100)
}

func TestSolveNegativeRadiusClamped(t *testing.T) {
	sol := Solve(-1, BoxH+1, nil)
	checkLimits(t, sol, -1, BoxH+1)

	// A negative radius solves as radius zero.
	ref := Solve(0, BoxH+1, nil)
	if sol != ref {
		t.Errorf("Solve(-1) = %+v, Solve(0) = %+v", sol, ref)
	}
}

func TestSolveOriginTarget(t *testing.T) {
	// Degenerate target on the base axis at shoulder height exercises
	// the atan2 epsilon guard.
	checkLimits(t, Solve(0, BoxH, nil), 0, BoxH)
}

func TestSolveExactReconstruction(t *testing.T) {
	// Every candidate that passes the filters solves the 2-link
	// sub-problem analytically, so the winner reconstructs reachable
	// targets essentially exactly.
	cases := []struct{ r, z float64 }{
		{1.5, BoxH},
		{1.0, BoxH + 0.8},
		{0.6, BoxH + 1.2},
		{2.0, BoxH + 0.2},
	}
	for _, c := range cases {
		sol := Solve(c.r, c.z, nil)
		p := ComputeChain(Angles{Shoulder: sol.Shoulder, Elbow: sol.Elbow, Wrist: sol.Wrist})
		err := math.Hypot(p.TipRadius()-c.r, p.D.Z-c.z)
		if err > 1e-6 {
			t.Errorf("Solve(%v, %v): reconstruction error %v", c.r, c.z, err)
		}
	}
}
