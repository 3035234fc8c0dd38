package render

import (
	"os"
	"path/filepath"
	"testing"
)

// countOpaque returns the number of pixels that have been written (drawn
// pixels are opaque, the zero value is transparent).
func countOpaque(fb *Framebuffer) int {
	n := 0
	for _, c := range fb.Pixels {
		if c.A != 0 {
			n++
		}
	}
	return n
}

func TestDrawLineSinglePixel(t *testing.T) {
	fb := NewFramebuffer(10, 10)

	fb.DrawLine(4, 4, 4, 4, ColorWhite)

	if got := countOpaque(fb); got != 1 {
		t.Errorf("zero-length line drew %d pixels, want exactly 1", got)
	}
	if fb.GetPixel(4, 4) != ColorWhite {
		t.Error("zero-length line should set its start pixel")
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	fb := NewFramebuffer(10, 10)

	fb.DrawLine(2, 5, 6, 5, ColorRed)

	if got := countOpaque(fb); got != 5 {
		t.Errorf("horizontal line drew %d pixels, want 5", got)
	}
	for x := 2; x <= 6; x++ {
		if fb.GetPixel(x, 5) != ColorRed {
			t.Errorf("pixel (%d, 5) not set", x)
		}
	}
}

func TestDrawLineVertical(t *testing.T) {
	fb := NewFramebuffer(10, 10)

	fb.DrawLine(3, 1, 3, 8, ColorGreen)

	if got := countOpaque(fb); got != 8 {
		t.Errorf("vertical line drew %d pixels, want 8", got)
	}
	for y := 1; y <= 8; y++ {
		if fb.GetPixel(3, y) != ColorGreen {
			t.Errorf("pixel (3, %d) not set", y)
		}
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	fb := NewFramebuffer(10, 10)

	fb.DrawLine(0, 0, 3, 3, ColorBlue)

	want := [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	for _, p := range want {
		if fb.GetPixel(p[0], p[1]) != ColorBlue {
			t.Errorf("pixel (%d, %d) not set", p[0], p[1])
		}
	}
	if got := countOpaque(fb); got != len(want) {
		t.Errorf("diagonal drew %d pixels, want %d", got, len(want))
	}
}

func TestDrawLineSteep(t *testing.T) {
	fb := NewFramebuffer(10, 10)

	// dy dominates: every row between the endpoints gets exactly one pixel.
	fb.DrawLine(0, 0, 1, 4, ColorWhite)

	if got := countOpaque(fb); got != 5 {
		t.Errorf("steep line drew %d pixels, want 5", got)
	}
	for y := 0; y <= 4; y++ {
		rowCount := 0
		for x := 0; x < fb.Width; x++ {
			if fb.GetPixel(x, y).A != 0 {
				rowCount++
			}
		}
		if rowCount != 1 {
			t.Errorf("row %d has %d pixels, want 1", y, rowCount)
		}
	}
}

func TestDrawLineReversedEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"horizontal", 2, 5, 6, 5},
		{"vertical", 3, 1, 3, 8},
		{"diagonal", 0, 0, 7, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			forward := NewFramebuffer(10, 10)
			backward := NewFramebuffer(10, 10)

			forward.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, ColorWhite)
			backward.DrawLine(tc.x1, tc.y1, tc.x0, tc.y0, ColorWhite)

			for i := range forward.Pixels {
				if forward.Pixels[i] != backward.Pixels[i] {
					t.Errorf("pixel %d differs between draw directions", i)
					break
				}
			}
		})
	}
}

func TestDrawLineClipsToBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)

	// Endpoints outside the buffer; only the in-bounds span is written.
	fb.DrawLine(-2, 1, 5, 1, ColorWhite)

	if got := countOpaque(fb); got != 4 {
		t.Errorf("clipped line drew %d pixels, want 4", got)
	}
	for x := 0; x < 4; x++ {
		if fb.GetPixel(x, 1) != ColorWhite {
			t.Errorf("pixel (%d, 1) not set", x)
		}
	}
}

func TestDrawLineFullyOutside(t *testing.T) {
	fb := NewFramebuffer(4, 4)

	fb.DrawLine(-5, -5, -2, -2, ColorWhite)

	if got := countOpaque(fb); got != 0 {
		t.Errorf("line outside the buffer drew %d pixels, want 0", got)
	}
}

func TestClear(t *testing.T) {
	fb := NewFramebuffer(8, 8)

	fb.Clear(ColorRed)

	for i, c := range fb.Pixels {
		if c != ColorRed {
			t.Errorf("pixel %d = %v after Clear, want red", i, c)
			break
		}
	}
}

func TestPixelBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)

	// Out-of-bounds writes are dropped without panicking.
	fb.SetPixel(-1, 0, ColorWhite)
	fb.SetPixel(0, -1, ColorWhite)
	fb.SetPixel(4, 0, ColorWhite)
	fb.SetPixel(0, 4, ColorWhite)

	if got := countOpaque(fb); got != 0 {
		t.Errorf("out-of-bounds writes set %d pixels, want 0", got)
	}

	if got := fb.GetPixel(-1, -1); got.A != 0 {
		t.Errorf("out-of-bounds read = %v, want zero", got)
	}
}

func TestToImage(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(2, 1, ColorGreen)

	img := fb.ToImage()

	if got := img.RGBAAt(2, 1); got != ColorGreen {
		t.Errorf("image pixel (2, 1) = %v, want green", got)
	}
	if got := img.Bounds().Dx(); got != 4 {
		t.Errorf("image width = %d, want 4", got)
	}
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Clear(ColorBlue)
	fb.DrawLine(0, 0, 7, 7, ColorWhite)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat saved PNG: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved PNG is empty")
	}
}

func BenchmarkDrawLine(b *testing.B) {
	fb := NewFramebuffer(200, 200)

	for b.Loop() {
		fb.DrawLine(0, 0, 199, 199, ColorWhite)
	}
}

func BenchmarkClear(b *testing.B) {
	fb := NewFramebuffer(200, 200)

	for b.Loop() {
		fb.Clear(ColorBlack)
	}
}
