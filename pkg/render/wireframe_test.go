package render

import (
	"math"
	"testing"

	"github.com/taigrr/lattice/pkg/math3d"
)

// stubMesh implements EdgeMesh for testing.
type stubMesh struct {
	verts []math3d.Vec3
	edges [][2]int
}

func (m *stubMesh) VertexCount() int         { return len(m.verts) }
func (m *stubMesh) EdgeCount() int           { return len(m.edges) }
func (m *stubMesh) Vertex(i int) math3d.Vec3 { return m.verts[i] }
func (m *stubMesh) Edge(i int) [2]int        { return m.edges[i] }

// createTestWireframe builds a renderer on the reference 1000x800 buffer
// with distance 8 and scale 600.
func createTestWireframe() (*Wireframe, *Framebuffer) {
	fb := NewFramebuffer(1000, 800)
	camera := &Camera{Distance: 8, Scale: 600}
	return NewWireframe(camera, fb), fb
}

func TestDrawMeshHorizontalEdge(t *testing.T) {
	w, fb := createTestWireframe()

	mesh := &stubMesh{
		verts: []math3d.Vec3{math3d.V3(-1, 0, 0), math3d.V3(1, 0, 0)},
		edges: [][2]int{{0, 1}},
	}

	w.DrawMesh(mesh, 0, 0, 0, ColorBlack)

	// Endpoints project to (425, 400) and (575, 400): one pixel per column.
	if got := countOpaque(fb); got != 151 {
		t.Errorf("edge drew %d pixels, want 151", got)
	}
	for _, x := range []int{425, 500, 575} {
		if fb.GetPixel(x, 400) != ColorBlack {
			t.Errorf("pixel (%d, 400) not set", x)
		}
	}
}

func TestDrawMeshSkipsEdgeBehindCamera(t *testing.T) {
	w, fb := createTestWireframe()

	// One endpoint behind the camera plane: the whole edge is dropped.
	mesh := &stubMesh{
		verts: []math3d.Vec3{math3d.V3(0, 0, -9), math3d.V3(1, 0, 0)},
		edges: [][2]int{{0, 1}},
	}

	w.DrawMesh(mesh, 0, 0, 0, ColorWhite)

	if got := countOpaque(fb); got != 0 {
		t.Errorf("edge with endpoint behind camera drew %d pixels, want 0", got)
	}
}

func TestDrawMeshSkipsOffscreenEndpoint(t *testing.T) {
	w, fb := createTestWireframe()

	mesh := &stubMesh{
		verts: []math3d.Vec3{math3d.V3(10, 0, 0), math3d.V3(-1, 0, 0)},
		edges: [][2]int{{0, 1}},
	}

	w.DrawMesh(mesh, 0, 0, 0, ColorWhite)

	if got := countOpaque(fb); got != 0 {
		t.Errorf("edge with off-screen endpoint drew %d pixels, want 0", got)
	}
}

func TestDrawMeshAppliesRotation(t *testing.T) {
	w, fb := createTestWireframe()

	// An edge along +X rotated a quarter turn around Z becomes vertical.
	mesh := &stubMesh{
		verts: []math3d.Vec3{math3d.Zero3(), math3d.V3(1, 0, 0)},
		edges: [][2]int{{0, 1}},
	}

	w.DrawMesh(mesh, 0, 0, math.Pi/2, ColorBlue)

	if got := countOpaque(fb); got != 76 {
		t.Errorf("rotated edge drew %d pixels, want 76", got)
	}
	if fb.GetPixel(500, 325) != ColorBlue {
		t.Error("rotated endpoint (500, 325) not set")
	}
	if fb.GetPixel(575, 400).A != 0 {
		t.Error("unrotated endpoint (575, 400) should be empty")
	}
}

func TestDrawMeshEmpty(t *testing.T) {
	w, fb := createTestWireframe()

	w.DrawMesh(&stubMesh{}, 0.5, 0.5, 0.5, ColorWhite)

	if got := countOpaque(fb); got != 0 {
		t.Errorf("empty mesh drew %d pixels, want 0", got)
	}
}

func TestDrawAxes(t *testing.T) {
	w, fb := createTestWireframe()

	w.DrawAxes(0, 0, 0, 1)

	if got := fb.GetPixel(575, 400); got != ColorRed {
		t.Errorf("X axis endpoint = %v, want red", got)
	}
	if got := fb.GetPixel(500, 325); got != ColorGreen {
		t.Errorf("Y axis endpoint = %v, want green", got)
	}
	// The Z axis points away from the camera and collapses onto the center.
	if got := fb.GetPixel(500, 400); got != ColorBlue {
		t.Errorf("center pixel = %v, want blue from the Z axis", got)
	}
}

func BenchmarkDrawMeshCube(b *testing.B) {
	w, _ := createTestWireframe()

	mesh := &stubMesh{
		verts: []math3d.Vec3{
			math3d.V3(-1, -1, -1),
			math3d.V3(1, -1, -1),
			math3d.V3(1, 1, -1),
			math3d.V3(-1, 1, -1),
			math3d.V3(-1, -1, 1),
			math3d.V3(1, -1, 1),
			math3d.V3(1, 1, 1),
			math3d.V3(-1, 1, 1),
		},
		edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}

	for b.Loop() {
		w.DrawMesh(mesh, 0.4, 0.8, 0.2, ColorWhite)
	}
}
