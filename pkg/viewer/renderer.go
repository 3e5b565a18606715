package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/armviz/armviz/pkg/kinematics"
	"github.com/armviz/armviz/pkg/projection"
)

// tipGrabRadius is the pick distance around the end-effector in pixels.
const tipGrabRadius = 20.0

var segmentColors = [4]color.Color{
	color.RGBA{33, 150, 243, 255},
	color.RGBA{76, 175, 80, 255},
	color.RGBA{255, 152, 0, 255},
	color.RGBA{233, 30, 99, 255},
}

// ArmRenderer renders the arm and lets the user drag the end-effector.
type ArmRenderer struct {
	widget.BaseWidget
	angles      kinematics.Angles
	planeAngles kinematics.PlaneAngles
	target      projection.Target
	view        projection.View
	lines       []*canvas.Line
	markers     []*canvas.Circle
	width       float64
	height      float64
	dragStart   *fyne.Position
	dragTip     bool
	gainR       float64
	gainZ       float64

	onAnglesChanged func(angles kinematics.Angles)
}

// NewArmRenderer creates a renderer showing the zero pose.
func NewArmRenderer() *ArmRenderer {
	r := &ArmRenderer{
		lines:   make([]*canvas.Line, 0),
		markers: make([]*canvas.Circle, 0),
	}
	r.syncTarget()
	r.ExtendBaseWidget(r)
	return r
}

// SetOnAnglesChanged sets the callback invoked when a drag changes the
// joint angles.
func (r *ArmRenderer) SetOnAnglesChanged(callback func(angles kinematics.Angles)) {
	r.onAnglesChanged = callback
}

// Angles returns the current joint angles.
func (r *ArmRenderer) Angles() kinematics.Angles {
	return r.angles
}

// SetAngles applies externally edited joint angles, for example from
// sliders. The target follows the arm; the solver is not involved.
func (r *ArmRenderer) SetAngles(a kinematics.Angles) {
	r.angles = a
	r.syncTarget()
	r.Render(r.width, r.height)
}

// Reset returns the arm to the zero pose.
func (r *ArmRenderer) Reset() {
	r.SetAngles(kinematics.Angles{})
}

// syncTarget re-derives the drag target from the end-effector.
func (r *ArmRenderer) syncTarget() {
	p := kinematics.ComputeChain(r.angles)
	r.target = projection.TargetFromTip(p.D)
	r.planeAngles = kinematics.PlaneAngles{
		Shoulder: r.angles.Shoulder,
		Elbow:    r.angles.Elbow,
		Wrist:    r.angles.Wrist,
	}
}

// CreateRenderer creates the renderer for the widget
func (r *ArmRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &armWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// Render rebuilds the canvas objects for the current pose.
func (r *ArmRenderer) Render(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height
	r.view = projection.DefaultView(width, height)

	p := kinematics.ComputeChain(r.angles)
	joints := [5]kinematics.Vector3{p.O, p.A, p.B, p.C, p.D}

	r.lines = make([]*canvas.Line, 0)

	// Ground shadow first so the arm draws over it
	shadow := color.RGBA{0, 0, 0, 90}
	for i := 0; i < 4; i++ {
		a := kinematics.Vector3{X: joints[i].X, Y: joints[i].Y}
		b := kinematics.Vector3{X: joints[i+1].X, Y: joints[i+1].Y}
		r.lines = append(r.lines, r.newLine(a, b, shadow, 3))
	}

	for i := 0; i < 4; i++ {
		r.lines = append(r.lines, r.newLine(joints[i], joints[i+1], segmentColors[i], 5))
	}

	// Target marker as an X
	tw := r.target.World(r.angles.Yaw)
	tx, ty := r.view.Project(tw)
	red := color.RGBA{244, 67, 54, 255}
	const s = 7
	r.lines = append(r.lines,
		newScreenLine(tx-s, ty-s, tx+s, ty+s, red, 2),
		newScreenLine(tx-s, ty+s, tx+s, ty-s, red, 2),
	)

	// Joint markers
	r.markers = make([]*canvas.Circle, 0)
	for _, j := range joints {
		x, y := r.view.Project(j)

		marker := canvas.NewCircle(color.RGBA{230, 235, 245, 255})
		marker.StrokeColor = color.RGBA{15, 18, 25, 255}
		marker.StrokeWidth = 1
		size := float32(12)
		marker.Resize(fyne.NewSize(size, size))
		marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))

		r.markers = append(r.markers, marker)
	}

	r.Refresh()
}

func (r *ArmRenderer) newLine(a, b kinematics.Vector3, c color.Color, stroke float32) *canvas.Line {
	x1, y1 := r.view.Project(a)
	x2, y2 := r.view.Project(b)
	return newScreenLine(x1, y1, x2, y2, c, stroke)
}

func newScreenLine(x1, y1, x2, y2 float64, c color.Color, stroke float32) *canvas.Line {
	line := canvas.NewLine(c)
	line.StrokeWidth = stroke
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	return line
}

// Dragged handles mouse drags. A drag that starts on the end-effector
// moves the target and re-solves the arm; anywhere else it is ignored.
func (r *ArmRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart == nil {
		p := kinematics.ComputeChain(r.angles)
		sx, sy := r.view.Project(p.D)
		dist := math.Hypot(float64(event.Position.X)-sx, float64(event.Position.Y)-sy)
		r.dragTip = dist <= tipGrabRadius
		if r.dragTip {
			r.gainR, r.gainZ = r.view.DragGains(p.D, r.angles.Yaw)
		}
	} else if r.dragTip {
		dx := float64(event.Position.X - r.dragStart.X)
		dy := float64(event.Position.Y - r.dragStart.Y)

		r.target.R += dx * r.gainR
		r.target.Z -= dy * r.gainZ
		r.target = r.target.Clamped()

		sol := kinematics.Solve(r.target.R, r.target.Z, &r.planeAngles)
		r.planeAngles = sol
		r.angles.Shoulder = sol.Shoulder
		r.angles.Elbow = sol.Elbow
		r.angles.Wrist = sol.Wrist

		r.Render(r.width, r.height)
		if r.onAnglesChanged != nil {
			r.onAnglesChanged(r.angles)
		}
	}
	r.dragStart = &event.Position
}

// DragEnd handles the end of a drag event
func (r *ArmRenderer) DragEnd() {
	r.dragStart = nil
	r.dragTip = false
}

// armWidgetRenderer implements fyne.WidgetRenderer
type armWidgetRenderer struct {
	renderer *ArmRenderer
	objects  []fyne.CanvasObject
}

func (a *armWidgetRenderer) Layout(size fyne.Size) {
	a.renderer.Render(float64(size.Width), float64(size.Height))
}

func (a *armWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (a *armWidgetRenderer) Refresh() {
	a.objects = make([]fyne.CanvasObject, 0)

	for _, line := range a.renderer.lines {
		a.objects = append(a.objects, line)
	}
	for _, marker := range a.renderer.markers {
		a.objects = append(a.objects, marker)
	}

	canvas.Refresh(a.renderer)
}

func (a *armWidgetRenderer) Objects() []fyne.CanvasObject {
	return a.objects
}

func (a *armWidgetRenderer) Destroy() {}
