package projection

import (
	"math"
	"testing"

	"github.com/armviz/armviz/pkg/kinematics"
)

const tol = 1e-9

func TestProjectOriginHitsViewportCenter(t *testing.T) {
	v := DefaultView(700, 650)

	sx, sy := v.Project(kinematics.Vector3{})
	if math.Abs(sx-350) > tol || math.Abs(sy-338) > tol {
		t.Errorf("origin projected to (%v, %v), want (350, 338)", sx, sy)
	}
}

func TestProjectVerticalDisplacement(t *testing.T) {
	v := DefaultView(700, 650)
	v.Azimuth = 0

	x0, y0 := v.Project(kinematics.Vector3{X: 0.5, Y: 0.3, Z: 0})
	x1, y1 := v.Project(kinematics.Vector3{X: 0.5, Y: 0.3, Z: 1})

	if math.Abs(x1-x0) > tol {
		t.Errorf("world-Z offset moved screen X by %v, want 0", x1-x0)
	}
	// The elevation tilt feeds -sin(el)*z into the pre-flip vertical,
	// so with positive elevation a raised point lands at a larger
	// screen Y.
	if y1 <= y0 {
		t.Errorf("raising a point should increase screen Y: %v -> %v", y0, y1)
	}
}

func TestProjectScaleLinearity(t *testing.T) {
	v := DefaultView(700, 650)

	x0, _ := v.Project(kinematics.Vector3{})
	x1, _ := v.Project(kinematics.Vector3{X: 1})
	x2, _ := v.Project(kinematics.Vector3{X: 2})
	if math.Abs((x2-x0)-2*(x1-x0)) > tol {
		t.Errorf("orthographic projection should be linear: %v, %v, %v", x0, x1, x2)
	}
}

func TestDragGainsWithinBounds(t *testing.T) {
	v := DefaultView(700, 650)

	points := []kinematics.Vector3{
		{},
		{X: 2.4, Z: 0.35},
		{X: -1, Y: 1.5, Z: 2},
		{Y: -2, Z: 0.1},
	}
	for _, p := range points {
		for yaw := -90.0; yaw <= 90; yaw += 30 {
			gr, gz := v.DragGains(p, yaw)
			if gr < GainMin || gr > GainMax {
				t.Errorf("gr = %v outside [%v, %v] at %v yaw %v", gr, GainMin, GainMax, p, yaw)
			}
			if gz < GainMin || gz > GainMax {
				t.Errorf("gz = %v outside [%v, %v] at %v yaw %v", gz, GainMin, GainMax, p, yaw)
			}
		}
	}
}

func TestDragGainsDegenerateProbe(t *testing.T) {
	// A zero-scale view collapses every probe displacement; the pixel
	// floor must cap the gain at the maximum instead of dividing by
	// zero.
	v := View{Cx: 100, Cy: 100, Scale: 0}

	gr, gz := v.DragGains(kinematics.Vector3{X: 1}, 0)
	if gr != GainMax || gz != GainMax {
		t.Errorf("degenerate probe: expected gains clamped to %v, got %v, %v", GainMax, gr, gz)
	}
}

func TestDragGainsHugeScaleClampedLow(t *testing.T) {
	v := View{Cx: 0, Cy: 0, Scale: 1e6, Elevation: 0.5, Azimuth: -1}

	gr, gz := v.DragGains(kinematics.Vector3{X: 1, Y: 0.2, Z: 0.5}, 20)
	if gr != GainMin {
		t.Errorf("expected gr clamped to %v, got %v", GainMin, gr)
	}
	if gz != GainMin {
		t.Errorf("expected gz clamped to %v, got %v", GainMin, gz)
	}
}

func TestTargetClamped(t *testing.T) {
	got := Target{R: -1, Z: 100}.Clamped()
	if got.R != 0 {
		t.Errorf("R: expected 0, got %v", got.R)
	}
	if got.Z != kinematics.BoxH+kinematics.Reach {
		t.Errorf("Z: expected %v, got %v", kinematics.BoxH+kinematics.Reach, got.Z)
	}

	inside := Target{R: 1, Z: 1}
	if inside.Clamped() != inside {
		t.Errorf("in-range target should be unchanged")
	}
}

func TestTargetFromTipRoundTrip(t *testing.T) {
	pose := kinematics.ComputeChain(kinematics.Angles{Yaw: 30, Shoulder: 25, Elbow: -40, Wrist: 15})
	tgt := TargetFromTip(pose.D)

	if math.Abs(tgt.R-pose.TipRadius()) > tol {
		t.Errorf("R: expected %v, got %v", pose.TipRadius(), tgt.R)
	}
	if math.Abs(tgt.Z-pose.D.Z) > tol {
		t.Errorf("Z: expected %v, got %v", pose.D.Z, tgt.Z)
	}

	// World reconstructs the tip when yaw matches the pose.
	w := tgt.World(30)
	if w.Distance(pose.D) > tol {
		t.Errorf("World: expected %v, got %v", pose.D, w)
	}
}
