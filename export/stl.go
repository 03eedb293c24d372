// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hschendel/stl"

	"github.com/anayp/roadbuilder/geom"
	"github.com/anayp/roadbuilder/mesh"
)

// ErrEmptyMesh is returned when the mesh is nil or holds no face.
var ErrEmptyMesh = errors.New("export: mesh is empty")

// DefaultSolidName is the STL solid name.
const DefaultSolidName = "road"

// STLOption customizes STL.
type STLOption func(*stl.Solid)

// WithSolidName sets the solid name. Panics on "".
func WithSolidName(name string) STLOption {
	if name == "" {
		panic("export: WithSolidName(\"\")")
	}
	return func(s *stl.Solid) { s.Name = name }
}

// WithASCII selects the ASCII encoding.
func WithASCII() STLOption {
	return func(s *stl.Solid) { s.IsAscii = true }
}

// STL converts m into an STL solid, one triangle per face in insertion order.
func STL(m *mesh.Mesh, opts ...STLOption) (*stl.Solid, error) {
	if m == nil || m.Len() == 0 {
		return nil, ErrEmptyMesh
	}
	solid := &stl.Solid{Name: DefaultSolidName}
	for _, opt := range opts {
		opt(solid)
	}

	faces := m.Faces()
	solid.Triangles = make([]stl.Triangle, len(faces))
	for i, f := range faces {
		solid.Triangles[i] = stl.Triangle{
			Normal:   stl.Vec3{float32(f.Normal.X), float32(f.Normal.Y), float32(f.Normal.Z)},
			Vertices: [3]stl.Vec3{vec3(f.V[0]), vec3(f.V[1]), vec3(f.V[2])},
		}
	}
	return solid, nil
}

// WriteSTL encodes m to w.
func WriteSTL(w io.Writer, m *mesh.Mesh, opts ...STLOption) error {
	solid, err := STL(m, opts...)
	if err != nil {
		return err
	}
	if err := solid.WriteAll(w); err != nil {
		return fmt.Errorf("export: write stl: %w", err)
	}
	return nil
}

// WriteSTLFile writes m to path.
func WriteSTLFile(path string, m *mesh.Mesh, opts ...STLOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSTL(f, m, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func vec3(p geom.Point) stl.Vec3 {
	return stl.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}
