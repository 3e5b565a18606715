package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/armviz/armviz/pkg/kinematics"
)

// segmentColors for base column, upper arm, forearm, and wrist link.
var segmentColors = [4]rl.Color{
	rl.NewColor(33, 150, 243, 255),
	rl.NewColor(76, 175, 80, 255),
	rl.NewColor(255, 152, 0, 255),
	rl.NewColor(233, 30, 99, 255),
}

var jointLabels = [5]string{"O", "A", "B", "C", "D"}

// screenPos projects a world point into the viewport.
func (app *App) screenPos(p kinematics.Vector3) rl.Vector2 {
	sx, sy := app.View.Project(p)
	return rl.Vector2{X: float32(sx), Y: float32(sy)}
}

// drawViewport renders the 3D scene: ground grid, shadow, arm,
// target marker, and axis legend.
func (app *App) drawViewport() {
	p := app.pose()

	app.drawGrid()
	app.drawShadow(p)
	app.drawArm(p)
	app.drawTargetMarker()
	app.drawAxisLegend()
}

// drawGrid draws the ground plane grid at z=0.
func (app *App) drawGrid() {
	gridColor := rl.NewColor(45, 52, 65, 255)
	const extent = 2.5
	const step = 0.5

	for v := -extent; v <= extent+1e-9; v += step {
		a := app.screenPos(kinematics.Vector3{X: v, Y: -extent})
		b := app.screenPos(kinematics.Vector3{X: v, Y: extent})
		rl.DrawLineV(a, b, gridColor)

		c := app.screenPos(kinematics.Vector3{X: -extent, Y: v})
		d := app.screenPos(kinematics.Vector3{X: extent, Y: v})
		rl.DrawLineV(c, d, gridColor)
	}
}

// drawShadow draws the arm's projection onto the ground plane.
func (app *App) drawShadow(p kinematics.Pose) {
	shadowColor := rl.NewColor(0, 0, 0, 90)
	flat := func(v kinematics.Vector3) rl.Vector2 {
		return app.screenPos(kinematics.Vector3{X: v.X, Y: v.Y})
	}

	pts := [5]rl.Vector2{flat(p.O), flat(p.A), flat(p.B), flat(p.C), flat(p.D)}
	for i := 0; i < 4; i++ {
		rl.DrawLineEx(pts[i], pts[i+1], 3, shadowColor)
	}
}

// drawArm draws the four links and five joint markers.
func (app *App) drawArm(p kinematics.Pose) {
	pts := [5]rl.Vector2{
		app.screenPos(p.O),
		app.screenPos(p.A),
		app.screenPos(p.B),
		app.screenPos(p.C),
		app.screenPos(p.D),
	}

	for i := 0; i < 4; i++ {
		rl.DrawLineEx(pts[i], pts[i+1], 5, segmentColors[i])
	}

	for i, pt := range pts {
		rl.DrawCircleV(pt, 6, rl.NewColor(230, 235, 245, 255))
		rl.DrawCircleLines(int32(pt.X), int32(pt.Y), 6, rl.NewColor(15, 18, 25, 255))
		rl.DrawTextEx(app.UI.font, jointLabels[i],
			rl.Vector2{X: pt.X + 9, Y: pt.Y - 16}, 14, 1, rl.LightGray)
	}

	// End-effector grab highlight
	if app.Drag.hoverTip || app.Drag.dragging {
		color := rl.NewColor(255, 255, 255, 120)
		if app.Drag.dragging {
			color = rl.NewColor(255, 255, 255, 200)
		}
		rl.DrawCircleLines(int32(pts[4].X), int32(pts[4].Y), tipGrabRadius, color)
	}
}

// drawTargetMarker draws a red X at the commanded target position.
func (app *App) drawTargetMarker() {
	pt := app.screenPos(app.Arm.target.World(app.Arm.angles.Yaw))
	const s = 7
	color := rl.NewColor(244, 67, 54, 255)
	rl.DrawLineEx(rl.Vector2{X: pt.X - s, Y: pt.Y - s}, rl.Vector2{X: pt.X + s, Y: pt.Y + s}, 2, color)
	rl.DrawLineEx(rl.Vector2{X: pt.X - s, Y: pt.Y + s}, rl.Vector2{X: pt.X + s, Y: pt.Y - s}, 2, color)
}

// drawAxisLegend draws small world axes in the viewport corner.
func (app *App) drawAxisLegend() {
	origin := kinematics.Vector3{X: -2.3, Y: -2.3}
	o := app.screenPos(origin)
	x := app.screenPos(kinematics.Vector3{X: origin.X + 0.5, Y: origin.Y})
	y := app.screenPos(kinematics.Vector3{X: origin.X, Y: origin.Y + 0.5})
	z := app.screenPos(kinematics.Vector3{X: origin.X, Y: origin.Y, Z: 0.5})

	rl.DrawLineEx(o, x, 2, rl.NewColor(255, 80, 80, 255))
	rl.DrawLineEx(o, y, 2, rl.NewColor(80, 255, 80, 255))
	rl.DrawLineEx(o, z, 2, rl.NewColor(80, 120, 255, 255))

	rl.DrawTextEx(app.UI.font, "X", rl.Vector2{X: x.X + 3, Y: x.Y - 6}, 12, 1, rl.NewColor(255, 80, 80, 255))
	rl.DrawTextEx(app.UI.font, "Y", rl.Vector2{X: y.X + 3, Y: y.Y - 6}, 12, 1, rl.NewColor(80, 255, 80, 255))
	rl.DrawTextEx(app.UI.font, "Z", rl.Vector2{X: z.X + 3, Y: z.Y - 6}, 12, 1, rl.NewColor(80, 120, 255, 255))
}
