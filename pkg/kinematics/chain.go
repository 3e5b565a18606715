// Package kinematics implements forward and inverse kinematics for a
// 4-DOF robot arm: a base yaw joint on a fixed-height column followed by
// three pitch joints (shoulder, elbow, wrist) forming a planar chain.
//
// All angles cross this package's API in degrees, matching the slider
// ranges of the front-ends; radians stay internal.
package kinematics

import "math"

// Arm geometry in world units. BoxH is the height of the base column,
// L1..L3 the three link lengths.
const (
	BoxH = 0.35
	L1   = 1.00
	L2   = 0.80
	L3   = 0.60

	// Reach is the maximum planar reach of the 3-link chain measured
	// from the shoulder origin.
	Reach = L1 + L2 + L3
)

// Joint limits in degrees.
const (
	YawMin      = -90.0
	YawMax      = 90.0
	ShoulderMin = -90.0
	ShoulderMax = 90.0
	ElbowMin    = -135.0
	ElbowMax    = 135.0
	WristMin    = -135.0
	WristMax    = 135.0
)

// Angles holds a full joint configuration in degrees.
type Angles struct {
	Yaw, Shoulder, Elbow, Wrist float64
}

// Pose holds the Cartesian position of every joint: base origin O,
// shoulder A, elbow B, wrist C and end-effector D.
type Pose struct {
	O, A, B, C, D Vector3
}

// ComputeChain evaluates the forward kinematics for a joint
// configuration. It is defined for all real inputs; joint limits are
// enforced by the IK solver and the UI, not here.
//
// Shoulder, elbow and wrist are negated before the Y rotation so a
// positive slider value lifts the arm toward +Z. The IK plane solve
// assumes the same convention.
func ComputeChain(a Angles) Pose {
	yaw := degToRad(a.Yaw)
	sh := degToRad(a.Shoulder)
	el := degToRad(a.Elbow)
	wr := degToRad(a.Wrist)

	tA := Mul(RotateZ(yaw), Translate(0, 0, BoxH))
	tB := Mul(tA, Mul(RotateY(-sh), Translate(L1, 0, 0)))
	tC := Mul(tB, Mul(RotateY(-el), Translate(L2, 0, 0)))
	tD := Mul(tC, Mul(RotateY(-wr), Translate(L3, 0, 0)))

	return Pose{
		O: Vector3{},
		A: tA.Position(),
		B: tB.Position(),
		C: tC.Position(),
		D: tD.Position(),
	}
}

// TipRadius returns the forward radial distance of the end-effector
// from the base axis, paired with Pose.D.Z to re-derive the IK target
// after a manual joint edit.
func (p Pose) TipRadius() float64 {
	return math.Hypot(p.D.X, p.D.Y)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap180 normalizes an angle in degrees into [-180, 180)
func Wrap180(deg float64) float64 {
	for deg >= 180 {
		deg -= 360
	}
	for deg < -180 {
		deg += 360
	}
	return deg
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }

func radToDeg(r float64) float64 { return r * 180 / math.Pi }
