package render

import (
	"math"
	"testing"

	"github.com/taigrr/lattice/pkg/math3d"
)

// referenceCamera matches the classic window configuration: distance 8,
// scale 600, on a 1000x800 buffer.
func referenceCamera() *Camera {
	return &Camera{Distance: 8, Scale: 600}
}

func TestProjectOriginAtReference(t *testing.T) {
	c := referenceCamera()

	x, y, ok := c.Project(math3d.Zero3(), 1000, 800)

	if !ok {
		t.Fatal("origin should project")
	}
	if x != 500 || y != 400 {
		t.Errorf("origin projects to (%d, %d), want (500, 400)", x, y)
	}
}

func TestProjectKnownValues(t *testing.T) {
	c := referenceCamera()

	tests := []struct {
		name   string
		p      math3d.Vec3
		wantX  int
		wantY  int
		wantOK bool
	}{
		{"unit +X", math3d.V3(1, 0, 0), 575, 400, true},
		{"unit +Y projects upward", math3d.V3(0, 1, 0), 500, 325, true},
		{"unit -Y projects downward", math3d.V3(0, -1, 0), 500, 475, true},
		{"corner", math3d.V3(1, 1, 0), 575, 325, true},
		{"farther point shrinks", math3d.V3(1, 0, 2), 560, 400, true},
		{"right of screen", math3d.V3(10, 0, 0), 0, 0, false},
		{"left of screen", math3d.V3(-10, 0, 0), 0, 0, false},
		{"above screen", math3d.V3(0, 10, 0), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := c.Project(tc.p, 1000, 800)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && (x != tc.wantX || y != tc.wantY) {
				t.Errorf("Project(%v) = (%d, %d), want (%d, %d)", tc.p, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestProjectBehindCamera(t *testing.T) {
	c := referenceCamera()

	tests := []struct {
		name string
		p    math3d.Vec3
	}{
		{"exactly on the camera plane", math3d.V3(0, 0, -8)},
		{"just behind", math3d.V3(0, 0, -8.001)},
		{"far behind", math3d.V3(1, 2, -100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, ok := c.Project(tc.p, 1000, 800); ok {
				t.Errorf("point %v behind the camera should not project", tc.p)
			}
		})
	}
}

func TestProjectTruncates(t *testing.T) {
	c := referenceCamera()

	// 0.001 * 75 = 0.075: lands at 500.075 and truncates to 500.
	x, _, ok := c.Project(math3d.V3(0.001, 0, 0), 1000, 800)
	if !ok || x != 500 {
		t.Errorf("fractional coordinate truncated to %d, want 500", x)
	}
}

func TestZoomClamp(t *testing.T) {
	c := &Camera{Distance: 0.3, Scale: 600}

	c.Zoom(-0.1)
	if math.Abs(c.Distance-0.2) > 1e-9 {
		t.Errorf("distance after first zoom = %v, want 0.2", c.Distance)
	}

	c.Zoom(-0.1)
	c.Zoom(-0.1)
	c.Zoom(-0.1)
	if c.Distance != MinDistance {
		t.Errorf("distance = %v, want clamped at %v", c.Distance, MinDistance)
	}
}

func TestZoomOut(t *testing.T) {
	c := &Camera{Distance: 8, Scale: 600}

	c.Zoom(0.1)
	if math.Abs(c.Distance-8.1) > 1e-9 {
		t.Errorf("distance = %v, want 8.1", c.Distance)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera(800)

	if c.Distance != DefaultDistance {
		t.Errorf("distance = %v, want %v", c.Distance, DefaultDistance)
	}
	if c.Scale != 600 {
		t.Errorf("scale = %v, want 600", c.Scale)
	}
}

func TestScaleFor(t *testing.T) {
	tests := []struct {
		height int
		want   float64
	}{
		{800, 600},
		{400, 300},
		{48, 36},
	}

	for _, tc := range tests {
		if got := ScaleFor(tc.height); got != tc.want {
			t.Errorf("ScaleFor(%d) = %v, want %v", tc.height, got, tc.want)
		}
	}
}
