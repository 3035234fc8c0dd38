package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/lattice/pkg/math3d"
)

// OBJLoader reads Wavefront OBJ geometry as a wireframe: vertex positions
// plus the deduplicated outline edges of every face.
type OBJLoader struct {
	// Warnings collects the records skipped during the last load. A bad
	// record never aborts the load; a partial model beats none at all.
	Warnings []string
}

// NewOBJLoader creates a new OBJ loader.
func NewOBJLoader() *OBJLoader {
	return &OBJLoader{}
}

// LoadOBJ loads an OBJ file, discarding parse warnings.
func LoadOBJ(path string) (*Mesh, error) {
	return NewOBJLoader().Load(path)
}

// Load reads and parses the OBJ file at path.
func (l *OBJLoader) Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := l.Parse(f)
	if err != nil {
		return nil, err
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// Parse reads OBJ records from r. Vertex lines ("v x y z") and face lines
// ("f i j k ...", one-based references, 3 or more per face) build the mesh;
// each face contributes the cyclic edges between consecutive references.
// Malformed records are skipped with a warning. All other record types are
// ignored.
func (l *OBJLoader) Parse(r io.Reader) (*Mesh, error) {
	l.Warnings = l.Warnings[:0]
	mesh := NewMesh("")

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// Strip comments
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				l.warnf("line %d: %v", lineNo, err)
				continue
			}
			mesh.AddVertex(v)
		case "f":
			if err := parseFace(mesh, fields[1:]); err != nil {
				l.warnf("line %d: %v", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

func (l *OBJLoader) warnf(format string, args ...any) {
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, args...))
}

func parseVertex(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, have %d", len(fields))
	}

	var c [3]float64
	for i := range 3 {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("vertex coordinate %q: %w", fields[i], err)
		}
		c[i] = f
	}
	return math3d.V3(c[0], c[1], c[2]), nil
}

// parseFace turns one face record into cyclic edges between consecutive
// vertex references. References are one-based and may carry OBJ /vt/vn
// suffixes, of which only the leading vertex index is used. A face with any
// bad reference contributes nothing.
func parseFace(mesh *Mesh, refs []string) error {
	if len(refs) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, have %d", len(refs))
	}

	idx := make([]int, len(refs))
	for i, ref := range refs {
		if j := strings.IndexByte(ref, '/'); j >= 0 {
			ref = ref[:j]
		}
		n, err := strconv.Atoi(ref)
		if err != nil {
			return fmt.Errorf("face reference %q: %w", ref, err)
		}
		if n < 1 || n > len(mesh.Vertices) {
			return fmt.Errorf("face reference %d out of range (have %d vertices)", n, len(mesh.Vertices))
		}
		idx[i] = n - 1
	}

	for i := range idx {
		mesh.AddEdge(idx[i], idx[(i+1)%len(idx)])
	}
	return nil
}
