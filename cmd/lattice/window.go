package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/taigrr/lattice/pkg/models"
	"github.com/taigrr/lattice/pkg/render"
)

// Window dimensions match the reference framebuffer.
const (
	windowWidth  = 1000
	windowHeight = 800
)

// runWindow shows the viewer in a desktop window.
func runWindow(mesh *models.Mesh, fps int) error {
	app := NewApp(mesh, windowWidth, windowHeight, fps)

	game := &windowGame{
		app:     app,
		scratch: image.NewRGBA(image.Rect(0, 0, windowWidth, windowHeight)),
		frame:   ebiten.NewImage(windowWidth, windowHeight),
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("lattice")
	ebiten.SetTPS(fps)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// windowGame adapts the shared viewer core to ebiten's game loop. Update
// polls input and steps the frame; Draw copies the framebuffer through a
// persistent scratch image, overlay text included, and blits it.
type windowGame struct {
	app     *App
	scratch *image.RGBA
	frame   *ebiten.Image
}

func (g *windowGame) Update() error {
	if g.app.Picker.Active {
		return g.updatePicker()
	}

	// Held keys zoom every frame
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyEqual) ||
		ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		g.app.ZoomIn()
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyMinus) ||
		ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		g.app.ZoomOut()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.app.CycleBackground()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.app.CycleModelColor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.app.ToggleAutoRotate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.app.ToggleAxes()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.app.StartReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.app.OpenPicker()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.app.Screenshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && shiftHeld() {
		g.app.ToggleHUD()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.app.View.Dragging {
			g.app.DragMove(x, y)
		} else {
			g.app.DragStart(x, y)
		}
	} else if g.app.View.Dragging {
		g.app.DragEnd()
	}

	if _, wheelY := ebiten.Wheel(); wheelY > 0 {
		g.app.ZoomIn()
	} else if wheelY < 0 {
		g.app.ZoomOut()
	}

	g.app.Step()
	g.app.Render()
	return nil
}

// updatePicker handles input while the picker overlay is open. The scene
// keeps animating behind it.
func (g *windowGame) updatePicker() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.app.Picker.Close()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.app.Picker.MoveUp()
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.app.Picker.MoveDown()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.app.PickerEnter()
	}

	g.app.Step()
	g.app.Render()
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	copyFramebuffer(g.scratch, g.app.FB)
	g.drawOverlay()

	g.frame.WritePixels(g.scratch.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

func shiftHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
}

// copyFramebuffer converts the framebuffer pixels into the RGBA byte layout
// ebiten expects.
func copyFramebuffer(dst *image.RGBA, fb *render.Framebuffer) {
	i := 0
	for _, c := range fb.Pixels {
		dst.Pix[i] = c.R
		dst.Pix[i+1] = c.G
		dst.Pix[i+2] = c.B
		dst.Pix[i+3] = c.A
		i += 4
	}
}

// drawText draws one line of text into the scratch image, with (x, y) as
// the baseline position.
func (g *windowGame) drawText(x, y int, col render.Color, s string) {
	d := font.Drawer{
		Dst:  g.scratch,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawOverlay writes the HUD, status line, and picker into the scratch
// image before the blit.
func (g *windowGame) drawOverlay() {
	app := g.app
	textCol := overlayColor(render.Palette[app.View.BgIndex])

	if app.Picker.Active {
		g.drawPicker(textCol)
		return
	}

	status := app.Status()
	if status != "" {
		g.drawText(10, windowHeight-10, textCol, status)
	}

	if !app.View.ShowHUD {
		return
	}

	g.drawText(10, 20, textCol, fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()))
	g.drawText(10, 36, textCol, fmt.Sprintf("%s  %dv %de",
		app.Mesh.Name, app.Mesh.VertexCount(), app.Mesh.EdgeCount()))
	spin := "spin off"
	if app.View.AutoRotate {
		spin = "spin on"
	}
	g.drawText(10, 52, textCol, spin)

	if status == "" {
		g.drawText(10, windowHeight-10, textCol,
			"b/m colors  space spin  a axes  r reset  l open  p shot  ? hud  esc quit")
	}
}

// drawPicker writes the file picker list into the scratch image.
func (g *windowGame) drawPicker(textCol render.Color) {
	p := g.app.Picker
	g.drawText(10, 20, textCol, "Open model: "+p.Dir)

	const rowHeight = 16
	maxRows := (windowHeight - 40) / rowHeight

	// Scroll the window so the cursor stays visible
	first := 0
	if p.Cursor >= maxRows {
		first = p.Cursor - maxRows + 1
	}

	for i := 0; i < maxRows && first+i < len(p.Entries); i++ {
		e := p.Entries[first+i]
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		prefix := "  "
		if first+i == p.Cursor {
			prefix = "> "
		}
		g.drawText(10, 40+i*rowHeight, textCol, prefix+name)
	}
}

// overlayColor picks black or white text, whichever reads against the
// background.
func overlayColor(bg render.Color) render.Color {
	lum := (299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)) / 1000
	if lum > 127 {
		return render.ColorBlack
	}
	return render.ColorWhite
}
