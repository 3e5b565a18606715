package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/armviz/armviz/pkg/kinematics"
	"github.com/armviz/armviz/version"
)

// reachWarnFraction is the reach percentage above which the readout
// warns that the arm is close to a singular stretch.
const reachWarnFraction = 0.93

// drawReadout draws the numeric state readout below the sliders.
func (app *App) drawReadout() {
	y := float32(330)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)

	p := app.pose()
	reach := p.A.Distance(p.D)
	reachFrac := reach / kinematics.Reach

	rl.DrawTextEx(app.UI.font, "State:", rl.Vector2{X: panelPadding, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Tip: (%.2f, %.2f, %.2f)", p.D.X, p.D.Y, p.D.Z),
		rl.Vector2{X: panelPadding, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Target: r=%.2f z=%.2f", app.Arm.target.R, app.Arm.target.Z),
		rl.Vector2{X: panelPadding, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight

	reachColor := rl.NewColor(100, 200, 255, 255)
	if reachFrac > reachWarnFraction {
		reachColor = rl.NewColor(255, 120, 80, 255)
	}
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Extension: %.0f%%", reachFrac*100),
		rl.Vector2{X: panelPadding, Y: y}, fontSize14, 1, reachColor)
	y += lineHeight
	if reachFrac > reachWarnFraction {
		rl.DrawTextEx(app.UI.font, "  Near full stretch",
			rl.Vector2{X: panelPadding, Y: y}, fontSize14, 1, reachColor)
	}
	y += lineHeight * 2

	rl.DrawTextEx(app.UI.font, "Drag the tip to move the arm",
		rl.Vector2{X: panelPadding, Y: y}, 12, 1, rl.NewColor(120, 140, 180, 255))
	y += lineHeight - 4
	rl.DrawTextEx(app.UI.font, "Sliders set joints directly",
		rl.Vector2{X: panelPadding, Y: y}, 12, 1, rl.NewColor(120, 140, 180, 255))

	rl.DrawTextEx(app.UI.font, version.GetVersion(),
		rl.Vector2{X: panelPadding, Y: screenHeight - 24}, 12, 1, rl.NewColor(90, 100, 120, 255))
}
