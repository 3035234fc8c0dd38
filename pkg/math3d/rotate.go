package math3d

import "math"

// RotateX returns the vector rotated by angle radians around the X axis.
// The X component is unchanged.
func (a Vec3) RotateX(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: a.X,
		Y: a.Y*cos - a.Z*sin,
		Z: a.Y*sin + a.Z*cos,
	}
}

// RotateY returns the vector rotated by angle radians around the Y axis.
// The Y component is unchanged.
func (a Vec3) RotateY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: a.X*cos + a.Z*sin,
		Y: a.Y,
		Z: -a.X*sin + a.Z*cos,
	}
}

// RotateZ returns the vector rotated by angle radians around the Z axis.
// The Z component is unchanged.
func (a Vec3) RotateZ(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: a.X*cos - a.Y*sin,
		Y: a.X*sin + a.Y*cos,
		Z: a.Z,
	}
}

// Rotate applies the three axis rotations in X, Y, Z order.
func (a Vec3) Rotate(rx, ry, rz float64) Vec3 {
	return a.RotateX(rx).RotateY(ry).RotateZ(rz)
}
