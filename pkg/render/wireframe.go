package render

import (
	"github.com/taigrr/lattice/pkg/math3d"
)

// EdgeMesh is the geometry a Wireframe can draw: vertices joined by
// undirected edges of vertex index pairs.
type EdgeMesh interface {
	VertexCount() int
	EdgeCount() int
	Vertex(i int) math3d.Vec3
	Edge(i int) [2]int
}

// Wireframe renders 3D wireframe objects.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer

	// Per-vertex projection scratch, reused across frames.
	screen []screenVertex
}

type screenVertex struct {
	x, y int
	ok   bool
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// DrawMesh rotates every vertex by the given angles (X, then Y, then Z),
// projects them, and draws each edge whose endpoints both landed on screen.
// Edges with an endpoint behind the camera or outside the buffer are
// skipped whole.
func (w *Wireframe) DrawMesh(mesh EdgeMesh, rx, ry, rz float64, color Color) {
	n := mesh.VertexCount()
	if n == 0 {
		return
	}

	if cap(w.screen) < n {
		w.screen = make([]screenVertex, n)
	}
	w.screen = w.screen[:n]

	for i := range w.screen {
		p := mesh.Vertex(i).Rotate(rx, ry, rz)
		x, y, ok := w.camera.Project(p, w.fb.Width, w.fb.Height)
		w.screen[i] = screenVertex{x, y, ok}
	}

	for i := 0; i < mesh.EdgeCount(); i++ {
		e := mesh.Edge(i)
		a, b := w.screen[e[0]], w.screen[e[1]]
		if !a.ok || !b.ok {
			continue
		}
		w.fb.DrawLine(a.x, a.y, b.x, b.y, color)
	}
}

// DrawLine3D projects both endpoints and draws the connecting line when
// both are on screen.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	x1, y1, ok1 := w.camera.Project(p1, w.fb.Width, w.fb.Height)
	x2, y2, ok2 := w.camera.Project(p2, w.fb.Width, w.fb.Height)
	if !ok1 || !ok2 {
		return
	}
	w.fb.DrawLine(x1, y1, x2, y2, color)
}

// DrawAxes draws the coordinate axes through the origin, rotated by the
// same angles as the model: X red, Y green, Z blue.
func (w *Wireframe) DrawAxes(rx, ry, rz, length float64) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0).Rotate(rx, ry, rz), ColorRed)
	w.DrawLine3D(origin, math3d.V3(0, length, 0).Rotate(rx, ry, rz), ColorGreen)
	w.DrawLine3D(origin, math3d.V3(0, 0, length).Rotate(rx, ry, rz), ColorBlue)
}
