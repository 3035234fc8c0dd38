package main

import (
	"fmt"
	"time"
)

// HUD renders the terminal overlay: FPS and model info on the top row, key
// hints or a status message on the bottom row, and the file picker when it
// is open. Drawn with raw ANSI after the frame is flushed.
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD.
func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// ANSI escape codes for positioning and styling
const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiDim       = "\x1b[2m"
	ansiBgBlack   = "\x1b[40m"
	ansiFgWhite   = "\x1b[97m"
	ansiFgGreen   = "\x1b[92m"
	ansiFgYellow  = "\x1b[93m"
	ansiFgCyan    = "\x1b[96m"
	ansiClearLine = "\x1b[2K"
)

// moveTo positions the cursor (1-based row and column).
func moveTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

// Render draws the HUD overlay directly to the terminal.
func (h *HUD) Render(width, height int, app *App) {
	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + ansiClearLine)
	fmt.Print(moveTo(height, 1) + ansiClearLine)

	if app.Picker.Active {
		h.renderPicker(height, app.Picker)
		return
	}

	// The status line shows regardless of the HUD toggle
	status := app.Status()
	if status != "" {
		fmt.Print(moveTo(height, 1) + ansiBgBlack + ansiFgYellow + " " + status + " " + ansiReset)
	}

	if !app.View.ShowHUD {
		return
	}

	// Top left: FPS
	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), ansiBgBlack, ansiFgGreen, h.fps, ansiReset)

	// Top middle: model name with vertex and edge counts
	title := fmt.Sprintf("%s  %dv %de", app.Mesh.Name, app.Mesh.VertexCount(), app.Mesh.EdgeCount())
	titleCol := max((width-len(title)-2)/2, 1)
	fmt.Print(moveTo(1, titleCol) + ansiBold + ansiBgBlack + ansiFgWhite + " " + title + " " + ansiReset)

	// Top right: auto-rotate indicator
	spin := "spin off"
	if app.View.AutoRotate {
		spin = "spin on"
	}
	fmt.Printf("%s%s%s %s %s", moveTo(1, max(width-10, 1)), ansiBgBlack, ansiFgCyan, spin, ansiReset)

	// Bottom: key hints, unless a status message owns the line
	if status == "" {
		hints := "b/m colors  space spin  a axes  r reset  l open  p shot  ? hud  esc quit"
		fmt.Print(moveTo(height, 1) + ansiBgBlack + ansiDim + ansiFgWhite + " " + hints + " " + ansiReset)
	}
}

// renderPicker draws the file picker list over the scene.
func (h *HUD) renderPicker(height int, p *FilePicker) {
	maxRows := height - 4
	if maxRows < 1 {
		return
	}

	// Scroll the window so the cursor stays visible
	first := 0
	if p.Cursor >= maxRows {
		first = p.Cursor - maxRows + 1
	}

	title := fmt.Sprintf(" Open model: %s ", p.Dir)
	fmt.Print(moveTo(2, 2) + ansiBold + ansiBgBlack + ansiFgWhite + title + ansiReset)

	for i := 0; i < maxRows && first+i < len(p.Entries); i++ {
		e := p.Entries[first+i]
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		line := "   " + name + " "
		style := ansiBgBlack + ansiFgWhite
		if first+i == p.Cursor {
			line = " > " + name + " "
			style = ansiBgBlack + ansiBold + ansiFgYellow
		}
		fmt.Print(moveTo(3+i, 2) + style + line + ansiReset)
	}
}
