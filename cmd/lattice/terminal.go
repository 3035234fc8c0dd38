package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/lattice/pkg/models"
	"github.com/taigrr/lattice/pkg/render"
)

// runTerminal shows the viewer in the terminal. The frame loop is
// single-threaded: each iteration drains pending input, applies it, steps
// the animations, renders, and sleeps out the frame budget. Only the signal
// handler runs on another goroutine, and it only cancels the context.
func runTerminal(mesh *models.Mesh, fps int) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()

	app := NewApp(mesh, fbWidth, fbHeight, fps)
	hud := NewHUD()

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	events := term.Events()
	targetDuration := time.Second / time.Duration(fps)

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		frameStart := time.Now()

		// Drain pending input without blocking. All state changes happen
		// here, between frames.
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					cancel()
					break drain
				}

				switch ev := ev.(type) {
				case uv.WindowSizeEvent:
					width, height = ev.Width, ev.Height
					term.Erase()
					term.Resize(width, height)
					termRenderer = render.NewTerminalRenderer(term, width, height)
					fbWidth, fbHeight = termRenderer.FramebufferSize()
					app.Resize(fbWidth, fbHeight)

				case uv.KeyPressEvent:
					if app.Picker.Active {
						switch {
						case ev.MatchString("escape"):
							app.Picker.Close()
						case ev.MatchString("up"):
							app.Picker.MoveUp()
						case ev.MatchString("down"):
							app.Picker.MoveDown()
						case ev.MatchString("enter"):
							app.PickerEnter()
						case ev.MatchString("ctrl+c"):
							cancel()
						}
						continue
					}

					switch {
					case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
						cancel()
					case ev.MatchString("up", "+", "="):
						app.ZoomIn()
					case ev.MatchString("down", "-", "_"):
						app.ZoomOut()
					case ev.MatchString("b"):
						app.CycleBackground()
					case ev.MatchString("m"):
						app.CycleModelColor()
					case ev.MatchString("space"):
						app.ToggleAutoRotate()
					case ev.MatchString("a"):
						app.ToggleAxes()
					case ev.MatchString("r"):
						app.StartReset()
					case ev.MatchString("l"):
						app.OpenPicker()
					case ev.MatchString("p"):
						app.Screenshot()
					case ev.MatchString("?"), ev.MatchString("shift+/"):
						app.ToggleHUD()
					}

				case uv.MouseClickEvent:
					app.DragStart(ev.X, ev.Y)

				case uv.MouseReleaseEvent:
					app.DragEnd()

				case uv.MouseMotionEvent:
					app.DragMove(ev.X, ev.Y)

				case uv.MouseWheelEvent:
					switch ev.Button {
					case uv.MouseWheelUp:
						app.ZoomIn()
					case uv.MouseWheelDown:
						app.ZoomOut()
					}
				}

			default:
				break drain
			}
		}

		app.Step()
		app.Render()

		termRenderer.Render(app.FB)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		hud.Render(width, height, app)

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
