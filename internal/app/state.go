package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"

	"github.com/armviz/armviz/pkg/kinematics"
	"github.com/armviz/armviz/pkg/projection"
)

// ArmState holds the joint angles, the last planar solution used to
// seed the solver, and the commanded end-effector target.
type ArmState struct {
	angles      kinematics.Angles
	planeAngles kinematics.PlaneAngles
	target      projection.Target
}

// DragState holds tip-drag interaction state. Gains are computed once
// at drag start and stay fixed for the whole drag.
type DragState struct {
	dragging bool
	gainR    float64 // world units per pixel, radial
	gainZ    float64 // world units per pixel, vertical
	hoverTip bool
}

// PanelState holds the slider panel layout and interaction state.
type PanelState struct {
	sliderBounds  [4]rl.Rectangle
	activeSlider  int // -1=none, 0=yaw, 1=shoulder, 2=elbow, 3=wrist
	hoveredSlider int
	isDragging    bool
	resetBounds   rl.Rectangle
}

// ResetState holds the tweens animating all joints back to zero.
type ResetState struct {
	active bool
	tweens [4]*gween.Tween
}

// UIState holds UI rendering state.
type UIState struct {
	font rl.Font
}

// App is the full application state for the raylib front-end.
type App struct {
	Arm   ArmState
	Drag  DragState
	Panel PanelState
	Reset ResetState
	UI    UIState
	View  projection.View
}
