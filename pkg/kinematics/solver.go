package kinematics

import "math"

// PlaneAngles holds the three pitch joints solved in the arm plane,
// in degrees. Yaw is not part of the planar problem.
type PlaneAngles struct {
	Shoulder, Elbow, Wrist float64
}

// Tool returns the orientation of the final link in the solving plane,
// the free parameter of the redundant 3-link problem.
func (p PlaneAngles) Tool() float64 {
	return p.Shoulder + p.Elbow + p.Wrist
}

// Candidate pool sizing: 37 from the base-tool fan, 25 from the global
// sweep, 21 from the continuity fan.
const maxCandidates = 96

// Cost weights. The magnitude penalty prefers neutral poses when
// several solutions reconstruct the target equally well; the continuity
// penalty keeps consecutive drag solves on the same branch.
const (
	effortWeight     = 0.001
	continuityWeight = 0.005
)

// Solve finds joint-limit valid shoulder/elbow/wrist angles placing the
// end-effector at forward distance rForward from the base axis and
// world height zWorld.
//
// The 3-link planar chain is redundant, so Solve searches a discretized
// pool of tool angles, solving the remaining 2-link problem analytically
// for each and scoring by FK reconstruction error plus penalties. prev,
// when non-nil, seeds extra candidates around the previous tool
// orientation and biases scoring toward it so incremental target motion
// (mouse drag) yields incremental joint motion.
//
// Solve never fails: when no candidate passes the reachability and
// joint-limit filters it returns a clamped direct solution aimed at the
// target, which is inaccurate but always finite and within limits.
func Solve(rForward, zWorld float64, prev *PlaneAngles) PlaneAngles {
	if rForward < 0 {
		rForward = 0
	}
	px := rForward
	pz := zWorld - BoxH

	// Direction from the shoulder origin to the target, guarded
	// against atan2(0, 0) at the base axis.
	guard := px
	if guard < 1e-9 {
		guard = 1e-9
	}
	baseTool := math.Atan2(pz, guard)

	var pool [maxCandidates]float64
	n := 0
	for d := -90; d <= 90; d += 5 {
		pool[n] = baseTool + degToRad(float64(d))
		n++
	}
	for d := -180; d <= 180; d += 15 {
		pool[n] = degToRad(float64(d))
		n++
	}
	if prev != nil {
		prevTool := degToRad(prev.Tool())
		for d := -20; d <= 20; d += 2 {
			pool[n] = prevTool + degToRad(float64(d))
			n++
		}
	}

	var best PlaneAngles
	bestCost := 0.0
	found := false

	for _, tool := range pool[:n] {
		// Wrist center: step back from the target along the tool
		// direction by the final link length.
		cx := px - L3*math.Cos(tool)
		cz := pz - L3*math.Sin(tool)

		d2 := cx*cx + cz*cz
		d := math.Sqrt(d2)
		if d > L1+L2 || d < math.Abs(L1-L2) {
			continue
		}

		// Law of cosines; the clamp only absorbs round-off at the
		// reachability boundary since d already passed the band check.
		cosEl := Clamp((d2-L1*L1-L2*L2)/(2*L1*L2), -1, 1)
		el0 := math.Acos(cosEl)

		for _, elbow := range [2]float64{el0, -el0} {
			sh := math.Atan2(cz, cx) - math.Atan2(L2*math.Sin(elbow), L1+L2*math.Cos(elbow))

			shDeg := radToDeg(sh)
			elDeg := radToDeg(elbow)
			wrDeg := Wrap180(radToDeg(tool - sh - elbow))

			if shDeg < ShoulderMin || shDeg > ShoulderMax {
				continue
			}
			if elDeg < ElbowMin || elDeg > ElbowMax {
				continue
			}
			if wrDeg < WristMin || wrDeg > WristMax {
				continue
			}

			// Exact in-plane FK of the candidate; the error term
			// also absorbs the epsilon guard on the base tool angle.
			th1 := sh
			th2 := sh + elbow
			th3 := sh + elbow + degToRad(wrDeg)
			xFK := L1*math.Cos(th1) + L2*math.Cos(th2) + L3*math.Cos(th3)
			zFK := L1*math.Sin(th1) + L2*math.Sin(th2) + L3*math.Sin(th3)

			cost := math.Hypot(xFK-px, zFK-pz)
			cost += effortWeight * (math.Abs(shDeg) + math.Abs(elDeg) + math.Abs(wrDeg))
			if prev != nil {
				cost += continuityWeight * (math.Abs(shDeg-prev.Shoulder) +
					math.Abs(elDeg-prev.Elbow) +
					math.Abs(wrDeg-prev.Wrist))
			}

			if !found || cost < bestCost {
				bestCost = cost
				best = PlaneAngles{Shoulder: shDeg, Elbow: elDeg, Wrist: wrDeg}
				found = true
			}
		}
	}

	if found {
		return best
	}
	return fallback(px, pz, baseTool)
}

// fallback force-clamps the straight-at-target solution when every
// candidate was filtered out. The result does not reach the target but
// is always finite and joint-limit valid.
func fallback(px, pz, tool float64) PlaneAngles {
	cx := px - L3*math.Cos(tool)
	cz := pz - L3*math.Sin(tool)

	d := Clamp(math.Sqrt(cx*cx+cz*cz), 1e-6, L1+L2-1e-6)
	cosEl := Clamp((d*d-L1*L1-L2*L2)/(2*L1*L2), -1, 1)
	elbow := math.Acos(cosEl)
	sh := math.Atan2(cz, cx) - math.Atan2(L2*math.Sin(elbow), L1+L2*math.Cos(elbow))
	wr := tool - sh - elbow

	return PlaneAngles{
		Shoulder: Clamp(radToDeg(sh), ShoulderMin, ShoulderMax),
		Elbow:    Clamp(radToDeg(elbow), ElbowMin, ElbowMax),
		Wrist:    Clamp(Wrap180(radToDeg(wr)), WristMin, WristMax),
	}
}
