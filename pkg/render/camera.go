package render

import (
	"github.com/taigrr/lattice/pkg/math3d"
)

const (
	// DefaultDistance is the camera distance on startup and after a view
	// reset.
	DefaultDistance = 8.0

	// MinDistance is the closest the camera can zoom in. The camera must
	// never reach the origin, or the projection would divide by zero.
	MinDistance = 0.1
)

// Camera projects world points onto the screen with a pinhole perspective.
// The eye sits Distance units from the origin on the -Z side, looking
// down +Z.
type Camera struct {
	Distance float64 // Eye distance from the origin
	Scale    float64 // Projection scale in pixels
}

// NewCamera creates a camera at the default distance with a scale matching
// the given framebuffer height.
func NewCamera(fbHeight int) *Camera {
	return &Camera{
		Distance: DefaultDistance,
		Scale:    ScaleFor(fbHeight),
	}
}

// ScaleFor returns the projection scale for a framebuffer height, keeping
// the reference proportions (scale 600 at height 800).
func ScaleFor(fbHeight int) float64 {
	return 0.75 * float64(fbHeight)
}

// Project maps a world point to pixel coordinates on a width x height
// buffer. Screen Y grows downward. ok is false when the point sits behind
// the camera plane or lands outside the buffer; such points have no screen
// position at all.
func (c *Camera) Project(p math3d.Vec3, width, height int) (x, y int, ok bool) {
	zCam := p.Z + c.Distance
	if zCam <= 0 {
		return 0, 0, false
	}

	f := c.Scale / zCam
	u := p.X*f + float64(width)/2
	v := -p.Y*f + float64(height)/2

	if u < 0 || u >= float64(width) || v < 0 || v >= float64(height) {
		return 0, 0, false
	}

	return int(u), int(v), true
}

// Zoom moves the camera by delta (negative moves closer) and clamps the
// distance at MinDistance.
func (c *Camera) Zoom(delta float64) {
	c.Distance += delta
	if c.Distance < MinDistance {
		c.Distance = MinDistance
	}
}
