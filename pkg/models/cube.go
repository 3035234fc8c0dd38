package models

import (
	"github.com/taigrr/lattice/pkg/math3d"
)

// UnitCube returns the built-in default model: a cube spanning -1 to 1 on
// every axis, 8 vertices and 12 edges.
func UnitCube() *Mesh {
	m := NewMesh("cube")

	vertices := []math3d.Vec3{
		math3d.V3(-1, -1, -1), // 0: bottom-left-back
		math3d.V3(1, -1, -1),  // 1: bottom-right-back
		math3d.V3(1, 1, -1),   // 2: top-right-back
		math3d.V3(-1, 1, -1),  // 3: top-left-back
		math3d.V3(-1, -1, 1),  // 4: bottom-left-front
		math3d.V3(1, -1, 1),   // 5: bottom-right-front
		math3d.V3(1, 1, 1),    // 6: top-right-front
		math3d.V3(-1, 1, 1),   // 7: top-left-front
	}
	for _, v := range vertices {
		m.AddVertex(v)
	}

	edges := [][2]int{
		// Back face
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 0},
		// Front face
		{4, 5},
		{5, 6},
		{6, 7},
		{7, 4},
		// Connecting edges
		{0, 4},
		{1, 5},
		{2, 6},
		{3, 7},
	}
	for _, e := range edges {
		m.AddEdge(e[0], e[1])
	}

	m.CalculateBounds()
	return m
}
