// lattice - 3D wireframe model viewer
// View OBJ and GLB wireframes in your terminal or in a desktop window.
//
// Controls:
//
//	Mouse drag   - Rotate model
//	Scroll       - Zoom in/out
//	Up / + / =   - Zoom in
//	Down / - / _ - Zoom out
//	Space        - Toggle auto-rotation
//	B            - Cycle background color
//	M            - Cycle model color
//	A            - Toggle coordinate axes
//	R            - Reset view (springs back home)
//	L            - Open file picker
//	P            - Save screenshot (PNG)
//	?            - Toggle HUD overlay
//	Esc          - Quit (closes the picker first if open)
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/lattice/pkg/models"
)

var (
	targetFPS = flag.Int("fps", 60, "Target FPS")
	display   = flag.String("display", "term", "Display backend: term or window")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lattice - 3D wireframe model viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lattice [options] [model.obj|model.glb|model.gltf]\n\n")
		fmt.Fprintf(os.Stderr, "Without a model argument the built-in cube is shown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Rotate model\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  Up/Down +/- - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  Space       - Toggle auto-rotation\n")
		fmt.Fprintf(os.Stderr, "  B / M       - Cycle background / model color\n")
		fmt.Fprintf(os.Stderr, "  A           - Toggle coordinate axes\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  L           - Open file picker\n")
		fmt.Fprintf(os.Stderr, "  P           - Save screenshot\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(modelPath string) error {
	if *targetFPS < 1 {
		return fmt.Errorf("fps must be at least 1")
	}

	mesh := models.UnitCube()
	if modelPath != "" {
		m, warnings, err := loadMesh(modelPath)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
		m.NormalizeScale()
		mesh = m
	}

	switch *display {
	case "term":
		return runTerminal(mesh, *targetFPS)
	case "window":
		return runWindow(mesh, *targetFPS)
	default:
		return fmt.Errorf("unknown display %q (use term or window)", *display)
	}
}

// loadMesh reads a model file, picking the loader by extension.
func loadMesh(path string) (*models.Mesh, []string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		loader := models.NewOBJLoader()
		mesh, err := loader.Load(path)
		if err != nil {
			return nil, nil, err
		}
		return mesh, loader.Warnings, nil
	case ".glb", ".gltf":
		loader := models.NewGLTFLoader()
		mesh, err := loader.Load(path)
		if err != nil {
			return nil, nil, err
		}
		return mesh, loader.Warnings, nil
	default:
		return nil, nil, fmt.Errorf("unsupported format: %s (use .obj, .glb, or .gltf)", ext)
	}
}
