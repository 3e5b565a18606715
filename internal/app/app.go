package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/armviz/armviz/pkg/kinematics"
	"github.com/armviz/armviz/pkg/projection"
)

const (
	screenWidth   = 980
	screenHeight  = 650
	panelWidth    = 280
	viewportWidth = screenWidth - panelWidth
)

// Run starts the interactive arm visualizer.
func Run() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "armviz")
	rl.SetTargetFPS(60)

	pose := kinematics.ComputeChain(kinematics.Angles{})
	app := &App{
		Arm: ArmState{
			planeAngles: kinematics.PlaneAngles{},
			target:      projection.TargetFromTip(pose.D),
		},
		Panel: PanelState{
			activeSlider:  -1,
			hoveredSlider: -1,
		},
		View: viewportView(),
	}
	app.UI.font = rl.GetFontDefault()

	for !rl.WindowShouldClose() {
		app.handleInput()
		app.updateReset(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		app.drawViewport()
		app.drawPanel()
		app.drawReadout()

		rl.EndDrawing()
	}

	rl.CloseWindow()
}

// viewportView builds the projection for the 3D viewport, which
// occupies the window to the right of the control panel.
func viewportView() projection.View {
	v := projection.DefaultView(viewportWidth, screenHeight)
	v.Cx += panelWidth
	return v
}

// pose recomputes the joint positions from the current angles.
func (app *App) pose() kinematics.Pose {
	return kinematics.ComputeChain(app.Arm.angles)
}

// syncTargetToPose re-derives the target from the end-effector so a
// later drag starts from where the arm actually is. Called after
// manual slider edits and reset; the solver is not involved.
func (app *App) syncTargetToPose() {
	p := app.pose()
	app.Arm.target = projection.TargetFromTip(p.D)
	app.Arm.planeAngles = kinematics.PlaneAngles{
		Shoulder: app.Arm.angles.Shoulder,
		Elbow:    app.Arm.angles.Elbow,
		Wrist:    app.Arm.angles.Wrist,
	}
}
