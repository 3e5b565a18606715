package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/armviz/armviz/pkg/kinematics"
	"github.com/armviz/armviz/pkg/viewer"
)

type App struct {
	window   fyne.Window
	renderer *viewer.ArmRenderer
	sliders  [4]*widget.Slider
	values   [4]*widget.Label
	tipLabel *widget.Label

	// Guards against slider callbacks re-entering while we push
	// drag-solved angles back into the sliders.
	internalUpdate bool
}

var jointNames = [4]string{"Yaw", "Shoulder", "Elbow", "Wrist"}

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

func main() {
	a := app.New()
	w := a.NewWindow("armviz")

	appInstance := &App{
		window: w,
	}
	appInstance.setupMainUI()

	w.Resize(fyne.NewSize(1000, 700))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.renderer = viewer.NewArmRenderer()
	a.renderer.SetOnAnglesChanged(func(angles kinematics.Angles) {
		a.syncFromRenderer(angles)
	})

	controls := make([]fyne.CanvasObject, 0)
	for i := 0; i < 4; i++ {
		i := i
		min, max := jointRange(i)

		a.values[i] = widget.NewLabel("0.0 deg")
		a.sliders[i] = widget.NewSlider(min, max)
		a.sliders[i].Step = 0.5
		a.sliders[i].OnChanged = func(v float64) {
			a.values[i].SetText(fmt.Sprintf("%.1f deg", v))
			if a.internalUpdate {
				return
			}
			a.applySliders()
		}

		controls = append(controls,
			container.NewBorder(nil, nil, widget.NewLabel(jointNames[i]), a.values[i]),
			a.sliders[i],
		)
	}

	a.tipLabel = widget.NewLabel("")
	a.tipLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.updateTipLabel()

	resetButton := widget.NewButton("Reset", func() {
		a.renderer.Reset()
		a.syncFromRenderer(a.renderer.Angles())
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag the end-effector to move the arm\n" +
			"• Sliders set joints directly\n" +
			"• Reset returns to the home pose",
	)
	instructions.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		widget.NewLabel("Joint Control:"),
		widget.NewSeparator(),
	)
	panel.Add(container.NewVBox(controls...))
	panel.Add(widget.NewSeparator())
	panel.Add(a.tipLabel)
	panel.Add(widget.NewSeparator())
	panel.Add(instructions)
	panel.Add(widget.NewSeparator())
	panel.Add(resetButton)

	panelScroll := container.NewVScroll(panel)
	panelScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,         // top
		nil,         // bottom
		nil,         // left
		panelScroll, // right
		a.renderer,  // center
	)

	a.window.SetContent(content)
	a.renderer.Render(700, 700)
}

// applySliders pushes the slider values into the renderer as a direct
// joint edit.
func (a *App) applySliders() {
	a.renderer.SetAngles(kinematics.Angles{
		Yaw:      a.sliders[0].Value,
		Shoulder: a.sliders[1].Value,
		Elbow:    a.sliders[2].Value,
		Wrist:    a.sliders[3].Value,
	})
	a.updateTipLabel()
}

// syncFromRenderer pushes drag-solved angles back into the sliders.
func (a *App) syncFromRenderer(angles kinematics.Angles) {
	a.internalUpdate = true
	a.sliders[0].SetValue(angles.Yaw)
	a.sliders[1].SetValue(angles.Shoulder)
	a.sliders[2].SetValue(angles.Elbow)
	a.sliders[3].SetValue(angles.Wrist)
	a.internalUpdate = false
	a.updateTipLabel()
}

func (a *App) updateTipLabel() {
	p := kinematics.ComputeChain(a.renderer.Angles())
	a.tipLabel.SetText(fmt.Sprintf("Tip: (%.3f, %.3f, %.3f)", p.D.X, p.D.Y, p.D.Z))
}
