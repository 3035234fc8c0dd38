// Package models provides wireframe model loading and representation for
// the lattice viewer.
package models

import (
	"math"

	"github.com/taigrr/lattice/pkg/math3d"
)

// Mesh is a wireframe model: vertices joined by undirected edges.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Edges    [][2]int // Vertex index pairs, low index first

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3

	edgeSet map[[2]int]struct{}
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:    name,
		edgeSet: make(map[[2]int]struct{}),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v math3d.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddEdge inserts the undirected edge between vertices a and b, stored low
// index first. (a, b) and (b, a) are the same edge; inserting either again
// is a no-op, as is a self-edge. Reports whether the edge was added.
func (m *Mesh) AddEdge(a, b int) bool {
	if a == b {
		return false
	}
	if a > b {
		a, b = b, a
	}
	key := [2]int{a, b}
	if m.edgeSet == nil {
		m.edgeSet = make(map[[2]int]struct{})
	}
	if _, dup := m.edgeSet[key]; dup {
		return false
	}
	m.edgeSet[key] = struct{}{}
	m.Edges = append(m.Edges, key)
	return true
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// EdgeCount returns the number of edges.
func (m *Mesh) EdgeCount() int {
	return len(m.Edges)
}

// Vertex returns the position of vertex i.
// Implements render.EdgeMesh.
func (m *Mesh) Vertex(i int) math3d.Vec3 {
	return m.Vertices[i]
}

// Edge returns the vertex index pair of edge i.
// Implements render.EdgeMesh.
func (m *Mesh) Edge(i int) [2]int {
	return m.Edges[i]
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// NormalizeScale centers the mesh on the origin and uniformly scales it so
// the largest bounding-box dimension is 2, the footprint of the built-in
// cube. Loaded models then frame correctly at the default camera distance.
func (m *Mesh) NormalizeScale() {
	m.CalculateBounds()

	size := m.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim == 0 {
		return
	}

	center := m.Center()
	s := 2.0 / maxDim
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Sub(center).Scale(s)
	}
	m.CalculateBounds()
}
