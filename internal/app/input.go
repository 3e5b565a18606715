package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/armviz/armviz/pkg/kinematics"
)

// tipGrabRadius is the pick distance around the projected end-effector
// in pixels.
const tipGrabRadius = 20.0

// handleInput processes user input for one frame.
func (app *App) handleInput() {
	app.handlePanelInput()

	if rl.IsKeyPressed(rl.KeyR) {
		app.startReset()
	}

	mouse := rl.GetMousePosition()
	p := app.pose()
	sx, sy := app.View.Project(p.D)

	dist := math.Hypot(float64(mouse.X)-sx, float64(mouse.Y)-sy)
	app.Drag.hoverTip = !app.Drag.dragging && float64(mouse.X) >= panelWidth && dist <= tipGrabRadius

	// Start a drag session on the end-effector. Gains are calibrated
	// once from the projection at the grab pose and held for the whole
	// drag so the target moves at a steady rate under the cursor.
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && app.Drag.hoverTip {
		app.Drag.dragging = true
		app.Reset.active = false
		app.Drag.gainR, app.Drag.gainZ = app.View.DragGains(p.D, app.Arm.angles.Yaw)
	}

	if app.Drag.dragging {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Arm.target.R += float64(delta.X) * app.Drag.gainR
			app.Arm.target.Z -= float64(delta.Y) * app.Drag.gainZ
			app.Arm.target = app.Arm.target.Clamped()

			sol := kinematics.Solve(app.Arm.target.R, app.Arm.target.Z, &app.Arm.planeAngles)
			app.Arm.planeAngles = sol
			app.Arm.angles.Shoulder = sol.Shoulder
			app.Arm.angles.Elbow = sol.Elbow
			app.Arm.angles.Wrist = sol.Wrist
		}

		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			app.Drag.dragging = false
		}
	}
}
