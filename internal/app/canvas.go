package app

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/planbox/dimlines/internal/dimension"
	"github.com/planbox/dimlines/pkg/scene"
)

const hitTolerance = 6.0 // px

var (
	boxFill       = color.NRGBA{R: 60, G: 70, B: 85, A: 255}
	boxStroke     = color.NRGBA{R: 120, G: 135, B: 155, A: 255}
	lineColor     = color.NRGBA{R: 80, G: 200, B: 255, A: 255}
	hoverColor    = color.NRGBA{R: 160, G: 230, B: 255, A: 255}
	selectedColor = color.NRGBA{R: 255, G: 210, B: 80, A: 255}
	labelColor    = color.NRGBA{R: 230, G: 235, B: 240, A: 255}
	bgColor       = color.NRGBA{R: 28, G: 30, B: 34, A: 255}
)

// DimensionCanvas draws the scene's boxes and the annotation primitives
// for the active projection, and feeds pointer events back into the
// overlay. It is both the render surface and the hit tester.
type DimensionCanvas struct {
	widget.BaseWidget

	scene   *scene.Scene
	camera  *OrthoCamera
	overlay *dimension.Overlay

	groups []*dimension.Group
}

func NewDimensionCanvas(sc *scene.Scene, camera *OrthoCamera) *DimensionCanvas {
	c := &DimensionCanvas{scene: sc, camera: camera}
	c.ExtendBaseWidget(c)
	return c
}

// SetOverlay attaches the overlay once it has been wired; the canvas is
// created first because the overlay needs it as surface and hit tester.
func (c *DimensionCanvas) SetOverlay(o *dimension.Overlay) {
	c.overlay = o
}

// Dispose drops the current primitive set
func (c *DimensionCanvas) Dispose() {
	c.groups = nil
}

// SetPrimitives replaces the primitive set and schedules a redraw
func (c *DimensionCanvas) SetPrimitives(groups []*dimension.Group) {
	c.groups = groups
	c.Refresh()
}

// HitTest returns the measurement whose line or label lies within the
// tolerance band of the given canvas point
func (c *DimensionCanvas) HitTest(x, y float32) (dimension.ID, bool) {
	p := fyne.NewPos(x, y)
	for _, g := range c.groups {
		if !g.Kind.VisibleIn(c.camera.Projection()) {
			continue
		}
		a := c.camera.Project(g.Line.Start)
		b := c.camera.Project(g.Line.End)
		if pointSegmentDistance(p, a, b) <= hitTolerance {
			return g.ID, true
		}
		l := c.camera.Project(g.Label.Position)
		if math.Abs(float64(p.X-l.X)) <= 18 && math.Abs(float64(p.Y-l.Y)) <= 10 {
			return g.ID, true
		}
	}
	return dimension.IDNone, false
}

func pointSegmentDistance(p, a, b fyne.Position) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	px, py := float64(p.X), float64(p.Y)
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((px-ax)*dx + (py-ay)*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	cx, cy := ax+t*dx, ay+t*dy
	return math.Hypot(px-cx, py-cy)
}

func (c *DimensionCanvas) MouseDown(ev *desktop.MouseEvent) {
	if c.overlay == nil || ev.Button != desktop.MouseButtonPrimary {
		return
	}
	c.overlay.PointerDown(ev.Position.X, ev.Position.Y)
}

func (c *DimensionCanvas) MouseUp(ev *desktop.MouseEvent) {
	if c.overlay == nil || ev.Button != desktop.MouseButtonPrimary {
		return
	}
	c.overlay.PointerUp(ev.Position.X, ev.Position.Y)
}

func (c *DimensionCanvas) MouseIn(*desktop.MouseEvent) {}

func (c *DimensionCanvas) MouseMoved(ev *desktop.MouseEvent) {
	if c.overlay == nil {
		return
	}
	if c.overlay.Dragging() {
		c.overlay.PointerMove(ev.Position.X, ev.Position.Y)
		return
	}
	id, ok := c.HitTest(ev.Position.X, ev.Position.Y)
	if !ok {
		id = dimension.IDNone
	}
	c.overlay.SetHovered(id)
}

func (c *DimensionCanvas) MouseOut() {
	if c.overlay == nil {
		return
	}
	c.overlay.PointerLost()
	c.overlay.SetHovered(dimension.IDNone)
}

func (c *DimensionCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &canvasRenderer{canvas: c, background: canvas.NewRectangle(bgColor)}
}

type canvasRenderer struct {
	canvas     *DimensionCanvas
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(640, 480)
}

func (r *canvasRenderer) Destroy() {}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *canvasRenderer) Refresh() {
	r.objects = r.objects[:0]
	r.objects = append(r.objects, r.background)
	r.drawBoxes()
	for _, g := range r.canvas.groups {
		if g.Kind.VisibleIn(r.canvas.camera.Projection()) {
			r.drawGroup(g)
		}
	}
	for _, o := range r.objects {
		canvas.Refresh(o)
	}
}

func (r *canvasRenderer) drawBoxes() {
	cam := r.canvas.camera
	for _, b := range r.canvas.scene.Boxes {
		if b.IsChild() || b.IsDegenerate() {
			continue
		}
		// Opposite corners in screen space; min/max absorbs the axis flip
		p1 := cam.Project(b.Position)
		p2 := cam.Project(b.Position.Add(b.Size))
		x := float32(math.Min(float64(p1.X), float64(p2.X)))
		y := float32(math.Min(float64(p1.Y), float64(p2.Y)))
		w := float32(math.Abs(float64(p2.X - p1.X)))
		h := float32(math.Abs(float64(p2.Y - p1.Y)))

		rect := canvas.NewRectangle(boxFill)
		rect.StrokeColor = boxStroke
		rect.StrokeWidth = 1
		rect.Move(fyne.NewPos(x, y))
		rect.Resize(fyne.NewSize(w, h))
		r.objects = append(r.objects, rect)
	}
}

func (r *canvasRenderer) drawGroup(g *dimension.Group) {
	stroke := lineColor
	width := float32(1)
	switch {
	case g.Selected:
		stroke = selectedColor
		width = 2
	case g.Hovered:
		stroke = hoverColor
		width = 2
	}

	for _, ext := range g.Extensions {
		r.addLine(ext, stroke, 1)
	}
	r.addLine(g.Line, stroke, width)
	for _, a := range g.Arrows {
		r.drawArrow(a, stroke, width)
	}

	text := canvas.NewText(g.Label.Text, labelColor)
	if g.Selected {
		text.Color = selectedColor
	}
	text.TextSize = 12
	pos := r.canvas.camera.Project(g.Label.Position)
	size := text.MinSize()
	text.Move(fyne.NewPos(pos.X-size.Width/2, pos.Y-size.Height-2))
	r.objects = append(r.objects, text)
}

func (r *canvasRenderer) addLine(s dimension.Segment, stroke color.Color, width float32) {
	line := canvas.NewLine(stroke)
	line.StrokeWidth = width
	line.Position1 = r.canvas.camera.Project(s.Start)
	line.Position2 = r.canvas.camera.Project(s.End)
	r.objects = append(r.objects, line)
}

// drawArrow renders a tip as two short wings in screen space
func (r *canvasRenderer) drawArrow(a dimension.Arrow, stroke color.Color, width float32) {
	cam := r.canvas.camera
	tip := cam.Project(a.Tip)
	back := cam.Project(a.Tip.Sub(a.Dir.Mul(a.Size)))

	dx := float64(back.X - tip.X)
	dy := float64(back.Y - tip.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	dx, dy = dx/length, dy/length
	const wing = 8.0
	const spread = 0.4
	for _, side := range []float64{spread, -spread} {
		cos, sin := math.Cos(side), math.Sin(side)
		wx := tip.X + float32(wing*(dx*cos-dy*sin))
		wy := tip.Y + float32(wing*(dx*sin+dy*cos))
		line := canvas.NewLine(stroke)
		line.StrokeWidth = width
		line.Position1 = tip
		line.Position2 = fyne.NewPos(wx, wy)
		r.objects = append(r.objects, line)
	}
}

var _ dimension.Surface = (*DimensionCanvas)(nil)
var _ dimension.HitTester = (*DimensionCanvas)(nil)
var _ desktop.Mouseable = (*DimensionCanvas)(nil)
var _ desktop.Hoverable = (*DimensionCanvas)(nil)
