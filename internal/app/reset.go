package app

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// resetDuration is the length of the return-to-home animation in
// seconds.
const resetDuration = 0.35

// startReset begins animating all joints back to the zero pose.
func (app *App) startReset() {
	app.Drag.dragging = false
	app.Reset.active = true
	from := [4]float64{
		app.Arm.angles.Yaw,
		app.Arm.angles.Shoulder,
		app.Arm.angles.Elbow,
		app.Arm.angles.Wrist,
	}
	for i, v := range from {
		app.Reset.tweens[i] = gween.New(float32(v), 0, resetDuration, ease.OutQuad)
	}
}

// updateReset advances the reset animation by dt seconds.
func (app *App) updateReset(dt float32) {
	if !app.Reset.active {
		return
	}

	var vals [4]float64
	done := true
	for i, tw := range app.Reset.tweens {
		v, finished := tw.Update(dt)
		vals[i] = float64(v)
		if !finished {
			done = false
		}
	}

	app.Arm.angles.Yaw = vals[0]
	app.Arm.angles.Shoulder = vals[1]
	app.Arm.angles.Elbow = vals[2]
	app.Arm.angles.Wrist = vals[3]
	app.syncTargetToPose()

	if done {
		app.Reset.active = false
	}
}
