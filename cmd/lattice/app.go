package main

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/lattice/pkg/models"
	"github.com/taigrr/lattice/pkg/render"
)

const (
	autoRotateStep  = 0.01 // Radians added to X and Y each frame while spinning
	zoomStep        = 0.1  // Distance change per zoom step
	dragSensitivity = 0.01 // Radians per mouse unit
	axisLength      = 1.5

	// Reset spring: frequency 6.0 = snappy, damping 1.0 = critically damped
	resetFrequency = 6.0
	resetEpsilon   = 1e-3

	statusDuration = 4 * time.Second
)

// ViewState holds all view-related settings (UI state, not library code)
type ViewState struct {
	AngleX, AngleY, AngleZ float64 // Model rotation in radians, unbounded
	AutoRotate             bool    // Whether the model spins on its own
	ShowAxes               bool    // Whether to draw the coordinate axes
	ShowHUD                bool    // Whether to show the HUD overlay
	BgIndex                int     // Palette index of the background
	FgIndex                int     // Palette index of the model lines

	Dragging               bool // Whether a mouse drag is in progress
	LastMouseX, LastMouseY int
}

// NewViewState creates the default view state: white background, black
// model, auto-rotation on.
func NewViewState() *ViewState {
	return &ViewState{
		AutoRotate: true,
		BgIndex:    1, // white
		FgIndex:    0, // black
	}
}

// resetAnimation springs the view back to its home position: angles to
// zero, distance to the default.
type resetAnimation struct {
	active                 bool
	spring                 harmonica.Spring
	velX, velY, velZ, velD float64
}

// App is the frame-stepped viewer core shared by both frontends. The
// frontend owns the event source and the final blit; App owns everything in
// between: view state, camera, framebuffer, and the wireframe pass. Nothing
// here is safe for concurrent use; the frame loop is the only caller.
type App struct {
	Mesh   *models.Mesh
	Camera *render.Camera
	FB     *render.Framebuffer
	View   *ViewState
	Picker *FilePicker

	wireframe *render.Wireframe
	reset     resetAnimation
	fps       int

	status     string
	statusTime time.Time
}

// NewApp creates the viewer core for a framebuffer of the given size.
func NewApp(mesh *models.Mesh, fbWidth, fbHeight, fps int) *App {
	camera := render.NewCamera(fbHeight)
	fb := render.NewFramebuffer(fbWidth, fbHeight)
	return &App{
		Mesh:      mesh,
		Camera:    camera,
		FB:        fb,
		View:      NewViewState(),
		Picker:    NewFilePicker(),
		wireframe: render.NewWireframe(camera, fb),
		fps:       fps,
	}
}

// Resize swaps in a framebuffer of the given size and rescales the
// projection to match.
func (a *App) Resize(fbWidth, fbHeight int) {
	a.FB = render.NewFramebuffer(fbWidth, fbHeight)
	a.Camera.Scale = render.ScaleFor(fbHeight)
	a.wireframe = render.NewWireframe(a.Camera, a.FB)
}

// Step advances the per-frame animations: the reset springs while a reset
// is running, auto-rotation otherwise.
func (a *App) Step() {
	if a.reset.active {
		a.stepReset()
		return
	}
	if a.View.AutoRotate {
		a.View.AngleX += autoRotateStep
		a.View.AngleY += autoRotateStep
	}
}

// Render draws the current frame into the framebuffer.
func (a *App) Render() {
	a.FB.Clear(render.Palette[a.View.BgIndex])
	a.wireframe.DrawMesh(a.Mesh, a.View.AngleX, a.View.AngleY, a.View.AngleZ,
		render.Palette[a.View.FgIndex])
	if a.View.ShowAxes {
		a.wireframe.DrawAxes(a.View.AngleX, a.View.AngleY, a.View.AngleZ, axisLength)
	}
}

// ZoomIn moves the camera one step closer.
func (a *App) ZoomIn() {
	a.cancelReset()
	a.Camera.Zoom(-zoomStep)
}

// ZoomOut moves the camera one step away.
func (a *App) ZoomOut() {
	a.cancelReset()
	a.Camera.Zoom(zoomStep)
}

// CycleBackground advances the background color through the palette.
func (a *App) CycleBackground() {
	a.View.BgIndex = render.NextColor(a.View.BgIndex)
}

// CycleModelColor advances the line color through the palette.
func (a *App) CycleModelColor() {
	a.View.FgIndex = render.NextColor(a.View.FgIndex)
}

// ToggleAutoRotate starts or stops the automatic spin.
func (a *App) ToggleAutoRotate() {
	a.View.AutoRotate = !a.View.AutoRotate
}

// ToggleAxes shows or hides the coordinate axes.
func (a *App) ToggleAxes() {
	a.View.ShowAxes = !a.View.ShowAxes
}

// ToggleHUD shows or hides the HUD overlay.
func (a *App) ToggleHUD() {
	a.View.ShowHUD = !a.View.ShowHUD
}

// DragStart begins a mouse rotation drag at the given position.
func (a *App) DragStart(x, y int) {
	a.View.Dragging = true
	a.View.LastMouseX, a.View.LastMouseY = x, y
}

// DragMove rotates the model by the mouse delta since the last position.
// Horizontal motion turns the model around Y, vertical around X, both with
// inverted sign so the model follows the pointer.
func (a *App) DragMove(x, y int) {
	if !a.View.Dragging {
		return
	}
	dx := x - a.View.LastMouseX
	dy := y - a.View.LastMouseY
	a.cancelReset()
	a.View.AngleY -= float64(dx) * dragSensitivity
	a.View.AngleX -= float64(dy) * dragSensitivity
	a.View.LastMouseX, a.View.LastMouseY = x, y
}

// DragEnd finishes a mouse rotation drag.
func (a *App) DragEnd() {
	a.View.Dragging = false
}

// StartReset begins the animated return to the home view. Angles are folded
// into (-pi, pi] first so the springs take the short way around.
func (a *App) StartReset() {
	a.View.AngleX = math.Remainder(a.View.AngleX, 2*math.Pi)
	a.View.AngleY = math.Remainder(a.View.AngleY, 2*math.Pi)
	a.View.AngleZ = math.Remainder(a.View.AngleZ, 2*math.Pi)
	a.reset = resetAnimation{
		active: true,
		spring: harmonica.NewSpring(harmonica.FPS(a.fps), resetFrequency, 1.0),
	}
}

// cancelReset stops a running reset animation. View-moving input wins over
// the animation.
func (a *App) cancelReset() {
	a.reset.active = false
}

func (a *App) stepReset() {
	r := &a.reset
	a.View.AngleX, r.velX = r.spring.Update(a.View.AngleX, r.velX, 0)
	a.View.AngleY, r.velY = r.spring.Update(a.View.AngleY, r.velY, 0)
	a.View.AngleZ, r.velZ = r.spring.Update(a.View.AngleZ, r.velZ, 0)
	a.Camera.Distance, r.velD = r.spring.Update(a.Camera.Distance, r.velD, render.DefaultDistance)

	if settled(a.View.AngleX, r.velX) && settled(a.View.AngleY, r.velY) &&
		settled(a.View.AngleZ, r.velZ) &&
		settled(a.Camera.Distance-render.DefaultDistance, r.velD) {
		a.View.AngleX, a.View.AngleY, a.View.AngleZ = 0, 0, 0
		a.Camera.Distance = render.DefaultDistance
		r.active = false
	}
}

func settled(pos, vel float64) bool {
	return math.Abs(pos) < resetEpsilon && math.Abs(vel) < resetEpsilon
}

// LoadModel replaces the current mesh with the model at path. On failure
// the current mesh stays and the error is returned for the caller to
// surface.
func (a *App) LoadModel(path string) error {
	mesh, warnings, err := loadMesh(path)
	if err != nil {
		return err
	}
	mesh.NormalizeScale()
	a.Mesh = mesh

	msg := fmt.Sprintf("loaded %s: %d vertices, %d edges",
		mesh.Name, mesh.VertexCount(), mesh.EdgeCount())
	if len(warnings) > 0 {
		msg += fmt.Sprintf(", %d records skipped", len(warnings))
	}
	a.SetStatus(msg)
	return nil
}

// OpenPicker shows the file picker, reopening at its last directory.
func (a *App) OpenPicker() {
	dir := a.Picker.Dir
	if dir == "" {
		dir = "."
	}
	if err := a.Picker.Show(dir); err != nil {
		a.SetStatus(fmt.Sprintf("picker: %v", err))
	}
}

// PickerEnter acts on the picker selection, loading the chosen model.
func (a *App) PickerEnter() {
	path, load := a.Picker.Enter()
	if !load {
		return
	}
	a.Picker.Close()
	if err := a.LoadModel(path); err != nil {
		a.SetStatus(fmt.Sprintf("load failed: %v", err))
	}
}

// Screenshot saves the current framebuffer as a timestamped PNG in the
// working directory.
func (a *App) Screenshot() {
	name := fmt.Sprintf("lattice-%s.png", time.Now().Format("20060102-150405"))
	if err := a.FB.SavePNG(name); err != nil {
		a.SetStatus(fmt.Sprintf("screenshot failed: %v", err))
		return
	}
	a.SetStatus("saved " + name)
}

// SetStatus shows msg in the status line for a few seconds.
func (a *App) SetStatus(msg string) {
	a.status = msg
	a.statusTime = time.Now()
}

// Status returns the current status message, or "" once it has expired.
func (a *App) Status() string {
	if time.Since(a.statusTime) > statusDuration {
		return ""
	}
	return a.status
}
