// Package projection maps world coordinates of the arm onto the 2D
// viewport under a fixed oblique view, and calibrates mouse-drag gains
// from the projection's local derivative so dragging the end-effector
// feels consistent regardless of pose and foreshortening.
package projection

import (
	"math"

	"github.com/armviz/armviz/pkg/kinematics"
)

// Default view orientation, matching the conventional 3D plotting view.
const (
	DefaultAzimuthDeg   = -60.0
	DefaultElevationDeg = 30.0
)

// Drag gain bounds in world units per pixel.
const (
	GainMin = 0.003
	GainMax = 0.06
)

// probeEps is the finite-difference step in world units used for gain
// calibration.
const probeEps = 0.05

// View is a fixed oblique projection onto a viewport: azimuth rotation
// about the vertical axis, elevation tilt, then an orthographic map to
// pixels with the screen Y axis growing downward.
type View struct {
	Cx, Cy    float64 // viewport center in pixels
	Scale     float64 // world units to pixels
	Azimuth   float64 // radians
	Elevation float64 // radians
}

// DefaultView returns the standard view for a viewport of the given
// pixel size. The scale fits the arm's full reach into the viewport.
func DefaultView(width, height float64) View {
	return View{
		Cx:        width * 0.5,
		Cy:        height * 0.52,
		Scale:     width * 0.17,
		Azimuth:   DefaultAzimuthDeg * math.Pi / 180,
		Elevation: DefaultElevationDeg * math.Pi / 180,
	}
}

// Project maps a world point to screen pixels.
func (v View) Project(p kinematics.Vector3) (sx, sy float64) {
	ca, sa := math.Cos(v.Azimuth), math.Sin(v.Azimuth)
	ce, se := math.Cos(v.Elevation), math.Sin(v.Elevation)

	// Azimuth rotation about the world Z axis.
	rx := ca*p.X - sa*p.Y
	ry := sa*p.X + ca*p.Y

	// Elevation tilt about the resulting horizontal axis; depth is
	// discarded by the orthographic map.
	ex := rx
	ey := ce*ry - se*p.Z

	return v.Cx + v.Scale*ex, v.Cy - v.Scale*ey
}

// DragGains estimates world units per pixel for radial and vertical
// target motion at a world point, by projecting small offsets along the
// current radial direction (set by yawDeg) and along world Z and
// measuring the screen displacement. The pixel displacement is floored
// at half a pixel so a degenerate probe cannot blow the gain up, and
// the result is clamped into [GainMin, GainMax].
func (v View) DragGains(p kinematics.Vector3, yawDeg float64) (gr, gz float64) {
	yr := yawDeg * math.Pi / 180
	rxHat, ryHat := math.Cos(yr), math.Sin(yr)

	x0, y0 := v.Project(p)
	x1, _ := v.Project(kinematics.Vector3{X: p.X + probeEps*rxHat, Y: p.Y + probeEps*ryHat, Z: p.Z})
	_, y2 := v.Project(kinematics.Vector3{X: p.X, Y: p.Y, Z: p.Z + probeEps})

	horizR := math.Abs(x1 - x0)
	vertZ := math.Abs(y2 - y0)

	gr = kinematics.Clamp(probeEps/math.Max(horizR, 0.5), GainMin, GainMax)
	gz = kinematics.Clamp(probeEps/math.Max(vertZ, 0.5), GainMin, GainMax)
	return gr, gz
}

// Target is the commanded end-effector position in the arm plane:
// forward radial distance from the base axis and world height.
type Target struct {
	R, Z float64
}

// TargetFromTip derives the target matching an end-effector position,
// used to keep Target and joint angles consistent after a manual
// slider edit without invoking the solver.
func TargetFromTip(d kinematics.Vector3) Target {
	return Target{R: math.Hypot(d.X, d.Y), Z: d.Z}
}

// Clamped limits the target to the physically meaningful box:
// R in [0, Reach], Z in [0, BoxH+Reach].
func (t Target) Clamped() Target {
	return Target{
		R: kinematics.Clamp(t.R, 0, kinematics.Reach),
		Z: kinematics.Clamp(t.Z, 0, kinematics.BoxH+kinematics.Reach),
	}
}

// World returns the 3D world position of the target given the current
// base yaw, for rendering the target marker.
func (t Target) World(yawDeg float64) kinematics.Vector3 {
	yr := yawDeg * math.Pi / 180
	return kinematics.Vector3{
		X: t.R * math.Cos(yr),
		Y: t.R * math.Sin(yr),
		Z: t.Z,
	}
}
