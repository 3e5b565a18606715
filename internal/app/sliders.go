package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/armviz/armviz/pkg/kinematics"
)

const (
	sliderWidth        = 180.0
	sliderHeight       = 8.0
	sliderHandleRadius = 6.0
	sliderSpacing      = 52.0
	panelPadding       = 15.0
	panelTitleHeight   = 30.0
)

var jointNames = [4]string{"Yaw", "Shoulder", "Elbow", "Wrist"}

// jointColors match the segment colors in the viewport.
var jointColors = [4]rl.Color{
	rl.NewColor(33, 150, 243, 255), // Yaw - blue
	rl.NewColor(76, 175, 80, 255),  // Shoulder - green
	rl.NewColor(255, 152, 0, 255),  // Elbow - orange
	rl.NewColor(233, 30, 99, 255),  // Wrist - pink
}

// jointRange returns the limit range for a slider index.
func jointRange(i int) (min, max float64) {
	switch i {
	case 0:
		return kinematics.YawMin, kinematics.YawMax
	case 1:
		return kinematics.ShoulderMin, kinematics.ShoulderMax
	case 2:
		return kinematics.ElbowMin, kinematics.ElbowMax
	default:
		return kinematics.WristMin, kinematics.WristMax
	}
}

func (app *App) jointValue(i int) float64 {
	switch i {
	case 0:
		return app.Arm.angles.Yaw
	case 1:
		return app.Arm.angles.Shoulder
	case 2:
		return app.Arm.angles.Elbow
	default:
		return app.Arm.angles.Wrist
	}
}

func (app *App) setJointValue(i int, v float64) {
	switch i {
	case 0:
		app.Arm.angles.Yaw = v
	case 1:
		app.Arm.angles.Shoulder = v
	case 2:
		app.Arm.angles.Elbow = v
	default:
		app.Arm.angles.Wrist = v
	}
}

// drawPanel renders the joint control panel on the left.
func (app *App) drawPanel() {
	rl.DrawRectangle(0, 0, panelWidth, screenHeight, rl.NewColor(20, 25, 35, 255))
	rl.DrawLine(panelWidth, 0, panelWidth, screenHeight, rl.NewColor(60, 80, 120, 150))

	titleColor := rl.NewColor(100, 200, 255, 255)
	rl.DrawTextEx(app.UI.font, "JOINT CONTROL", rl.Vector2{X: panelPadding, Y: 12}, 18, 1, titleColor)

	separatorY := float32(panelTitleHeight + 8)
	rl.DrawLineEx(
		rl.Vector2{X: panelPadding, Y: separatorY},
		rl.Vector2{X: panelWidth - panelPadding, Y: separatorY},
		1,
		rl.NewColor(60, 80, 120, 150),
	)

	currentY := separatorY + 18
	for i := 0; i < 4; i++ {
		min, max := jointRange(i)
		app.drawSlider(
			rl.Vector2{X: panelPadding, Y: currentY},
			jointNames[i],
			app.jointValue(i),
			min, max,
			i,
			jointColors[i],
		)
		currentY += sliderSpacing
	}

	// Reset button
	buttonY := currentY + 8
	app.Panel.resetBounds = rl.Rectangle{X: panelPadding, Y: buttonY, Width: panelWidth - panelPadding*2, Height: 28}

	bg := rl.NewColor(40, 45, 55, 255)
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), app.Panel.resetBounds) {
		bg = rl.NewColor(50, 55, 65, 255)
	}
	rl.DrawRectangleRounded(app.Panel.resetBounds, 0.3, 8, bg)
	rl.DrawRectangleRoundedLines(app.Panel.resetBounds, 0.3, 8, rl.NewColor(80, 160, 255, 255))

	label := "Reset [R]"
	size := rl.MeasureTextEx(app.UI.font, label, 14, 1)
	rl.DrawTextEx(app.UI.font, label,
		rl.Vector2{
			X: app.Panel.resetBounds.X + (app.Panel.resetBounds.Width-size.X)/2,
			Y: buttonY + (app.Panel.resetBounds.Height-size.Y)/2,
		}, 14, 1, rl.NewColor(180, 200, 255, 255))
}

// drawSlider renders a single joint slider.
func (app *App) drawSlider(pos rl.Vector2, label string, value, min, max float64, sliderIndex int, color rl.Color) {
	labelColor := rl.LightGray
	rl.DrawTextEx(app.UI.font, label, rl.Vector2{X: pos.X, Y: pos.Y}, 13, 1, labelColor)

	valueText := fmt.Sprintf("%+.1f deg", value)
	valueSize := rl.MeasureTextEx(app.UI.font, valueText, 13, 1)
	rl.DrawTextEx(app.UI.font, valueText,
		rl.Vector2{X: panelWidth - panelPadding - valueSize.X, Y: pos.Y}, 13, 1, labelColor)

	trackX := pos.X
	trackY := pos.Y + 20
	trackBounds := rl.Rectangle{X: trackX, Y: trackY, Width: sliderWidth, Height: sliderHeight}

	// Store padded bounds for interaction
	app.Panel.sliderBounds[sliderIndex] = rl.Rectangle{
		X:      trackX - sliderHandleRadius,
		Y:      trackY - sliderHandleRadius,
		Width:  sliderWidth + sliderHandleRadius*2,
		Height: sliderHeight + sliderHandleRadius*2,
	}

	trackBg := rl.NewColor(40, 45, 55, 255)
	if app.Panel.hoveredSlider == sliderIndex {
		trackBg = rl.NewColor(50, 55, 65, 255)
	}
	rl.DrawRectangleRounded(trackBounds, 0.5, 8, trackBg)

	normalized := float32((value - min) / (max - min))
	handleX := trackX + normalized*sliderWidth

	fillColor := color
	fillColor.A = 100
	rl.DrawRectangleRounded(rl.Rectangle{X: trackX, Y: trackY, Width: handleX - trackX, Height: sliderHeight}, 0.5, 8, fillColor)

	handleColor := color
	if app.Panel.activeSlider == sliderIndex && app.Panel.isDragging {
		handleColor = rl.White
	} else if app.Panel.hoveredSlider == sliderIndex {
		handleColor.R = uint8(math.Min(float64(handleColor.R)+30, 255))
		handleColor.G = uint8(math.Min(float64(handleColor.G)+30, 255))
		handleColor.B = uint8(math.Min(float64(handleColor.B)+30, 255))
	}

	handleY := trackY + sliderHeight/2
	rl.DrawCircleV(rl.Vector2{X: handleX, Y: handleY}, sliderHandleRadius, handleColor)
	rl.DrawCircleLines(int32(handleX), int32(handleY), sliderHandleRadius, rl.NewColor(255, 255, 255, 150))
}

// handlePanelInput handles slider dragging and the reset button.
func (app *App) handlePanelInput() {
	mousePos := rl.GetMousePosition()

	app.Panel.hoveredSlider = -1
	for i := 0; i < 4; i++ {
		if rl.CheckCollisionPointRec(mousePos, app.Panel.sliderBounds[i]) {
			app.Panel.hoveredSlider = i
			break
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if rl.CheckCollisionPointRec(mousePos, app.Panel.resetBounds) {
			app.startReset()
			return
		}
		if app.Panel.hoveredSlider != -1 {
			app.Panel.activeSlider = app.Panel.hoveredSlider
			app.Panel.isDragging = true
			app.Reset.active = false
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Panel.isDragging = false
		app.Panel.activeSlider = -1
	}

	if app.Panel.isDragging && app.Panel.activeSlider != -1 {
		idx := app.Panel.activeSlider
		bounds := app.Panel.sliderBounds[idx]

		trackX := bounds.X + sliderHandleRadius
		trackWidth := bounds.Width - sliderHandleRadius*2
		normalized := (mousePos.X - trackX) / trackWidth
		normalized = float32(math.Max(0, math.Min(1, float64(normalized))))

		min, max := jointRange(idx)
		app.setJointValue(idx, min+float64(normalized)*(max-min))

		// Manual edits move the target with the arm so the next drag
		// picks up from the new pose.
		app.syncTargetToPose()
	}
}
