package models

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/frustum/pkg/math3d"
)

// outward reports whether every face's geometric normal points away from
// the origin.
func outward(t *testing.T, m *Mesh) {
	t.Helper()
	for i, f := range m.Faces {
		n := faceNormal(m, f)
		if n.Len() == 0 {
			t.Errorf("%s face %d is degenerate", m.Name, i)
			continue
		}
		c := m.Vertices[f.V[0]].Position.Add(m.Vertices[f.V[1]].Position).Add(m.Vertices[f.V[2]].Position)
		if n.Dot(c) <= 0 {
			t.Errorf("%s face %d winds inward", m.Name, i)
		}
	}
}

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name      string
		mesh      *Mesh
		triangles int
		size      math3d.Vec3
		center    math3d.Vec3
	}{
		{"plane", NewPlane(4, 2), 2, math3d.V3(4, 2, 0), math3d.Vec3{}},
		{"box", NewBox(4, 2, 6), 12, math3d.V3(4, 2, 6), math3d.Vec3{}},
		{"sphere", NewSphere(3, 8, 4), 2 * 8 * 3, math3d.V3(6, 6, 6), math3d.Vec3{}},
		{"sphere clamped", NewSphere(1, 1, 1), 2 * 3, math3d.V3(1.5, 2, math.Sqrt(3)), math3d.V3(-0.25, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.TriangleCount(); got != tt.triangles {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.triangles)
			}
			if got := tt.mesh.Size(); !got.ApproxEqual(tt.size, 1e-9) {
				t.Errorf("Size() = %v, want %v", got, tt.size)
			}
			if !tt.mesh.Center().ApproxEqual(tt.center, 1e-9) {
				t.Errorf("Center() = %v, want %v", tt.mesh.Center(), tt.center)
			}
		})
	}
}

func TestPrimitiveWinding(t *testing.T) {
	outward(t, NewBox(1, 2, 3))
	outward(t, NewSphere(2, 12, 6))
	p := NewPlane(1, 1)
	for _, f := range p.Faces {
		if n := faceNormal(p, f); n.Z <= 0 {
			t.Errorf("plane face normal %v, want +Z", n)
		}
	}
}

func TestSphereNormals(t *testing.T) {
	s := NewSphere(2, 16, 8)
	for i, v := range s.Vertices {
		if math.Abs(v.Position.Len()-2) > 1e-9 {
			t.Fatalf("vertex %d at radius %v", i, v.Position.Len())
		}
		if !v.Normal.ApproxEqual(v.Position.Scale(0.5), 1e-9) {
			t.Fatalf("vertex %d normal %v not radial", i, v.Normal)
		}
	}
}

func TestFitTo(t *testing.T) {
	m := NewBox(2, 4, 1)
	m.Transform(math3d.Translate(math3d.V3(10, 0, 0)))
	m.FitTo(8)
	if got := m.Size(); !got.ApproxEqual(math3d.V3(4, 8, 2), 1e-9) {
		t.Errorf("Size() = %v, want (4, 8, 2)", got)
	}
	if !m.Center().ApproxEqual(math3d.Vec3{}, 1e-9) {
		t.Errorf("Center() = %v, want origin", m.Center())
	}

	empty := NewMesh("empty")
	empty.FitTo(3)
	if empty.Size() != (math3d.Vec3{}) {
		t.Errorf("empty mesh Size() = %v", empty.Size())
	}
}

func TestRemoveDegenerateFaces(t *testing.T) {
	mesh := NewMesh("test")
	mesh.Vertices = []MeshVertex{
		{Position: math3d.V3(0, 0, 0)},
		{Position: math3d.V3(1, 0, 0)},
		{Position: math3d.V3(0, 1, 0)},
		{Position: math3d.V3(2, 0, 0)},
	}
	mesh.Faces = []Face{
		{V: [3]int{0, 1, 2}}, // valid
		{V: [3]int{0, 0, 1}}, // repeated index
		{V: [3]int{0, 1, 3}}, // collinear
	}
	if removed := mesh.RemoveDegenerateFaces(); removed != 2 {
		t.Errorf("RemoveDegenerateFaces() removed %d faces, want 2", removed)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("TriangleCount = %d, want 1", mesh.TriangleCount())
	}
}

func TestCalculateNormals(t *testing.T) {
	mesh := NewPlane(2, 2)
	for i := range mesh.Vertices {
		mesh.Vertices[i].Normal = math3d.Vec3{}
	}
	mesh.CalculateNormals()
	for i, v := range mesh.Vertices {
		if !v.Normal.ApproxEqual(math3d.V3(0, 0, 1), 1e-9) {
			t.Errorf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
	}
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load("prop.fbx")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(.fbx) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("Load(missing) succeeded")
	}
}

func TestLoadGLB(t *testing.T) {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2})
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{gltf.POSITION: pos},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0), Translation: [3]float64{5, 0, 0}}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	path := filepath.Join(t.TempDir(), "tri.glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}

	mesh, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if mesh.TriangleCount() != 1 || mesh.VertexCount() != 3 {
		t.Fatalf("got %d triangles / %d vertices, want 1 / 3", mesh.TriangleCount(), mesh.VertexCount())
	}
	if want := math3d.V3(5, 0, 0); mesh.BoundsMin != want {
		t.Errorf("BoundsMin = %v, want %v (node translation applied)", mesh.BoundsMin, want)
	}
	if mesh.GetFace(0) != [3]int{0, 1, 2} {
		t.Errorf("face = %v, want winding kept", mesh.GetFace(0))
	}
	if _, n, _ := mesh.GetVertex(0); !n.ApproxEqual(math3d.V3(0, 0, 1), 1e-6) {
		t.Errorf("computed normal = %v, want +Z", n)
	}
}

func TestLoadGLBMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.glb")
	if err := os.WriteFile(path, []byte("not a glb"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGLB(path); err == nil {
		t.Error("LoadGLB(garbage) succeeded")
	}
}
