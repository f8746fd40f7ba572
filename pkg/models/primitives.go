package models

import (
	"math"

	"github.com/taigrr/frustum/pkg/math3d"
)

// NewPlane returns a w x h rectangle in the XY plane facing +Z, centered on
// the origin. UV (0, 0) is the bottom-left corner.
func NewPlane(w, h float64) *Mesh {
	m := NewMesh("plane")
	hw, hh := w/2, h/2
	n := math3d.V3(0, 0, 1)
	m.Vertices = []MeshVertex{
		{Position: math3d.V3(-hw, -hh, 0), Normal: n, UV: math3d.V2(0, 0)},
		{Position: math3d.V3(hw, -hh, 0), Normal: n, UV: math3d.V2(1, 0)},
		{Position: math3d.V3(hw, hh, 0), Normal: n, UV: math3d.V2(1, 1)},
		{Position: math3d.V3(-hw, hh, 0), Normal: n, UV: math3d.V2(0, 1)},
	}
	m.Faces = []Face{{V: [3]int{0, 1, 2}, Material: -1}, {V: [3]int{0, 2, 3}, Material: -1}}
	m.CalculateBounds()
	return m
}

// boxSide describes one box face by its outward normal and two in-plane
// axes with u x v = normal.
type boxSide struct {
	n, u, v math3d.Vec3
}

var boxSides = [6]boxSide{
	{math3d.V3(1, 0, 0), math3d.V3(0, 0, -1), math3d.V3(0, 1, 0)},
	{math3d.V3(-1, 0, 0), math3d.V3(0, 0, 1), math3d.V3(0, 1, 0)},
	{math3d.V3(0, 1, 0), math3d.V3(1, 0, 0), math3d.V3(0, 0, -1)},
	{math3d.V3(0, -1, 0), math3d.V3(1, 0, 0), math3d.V3(0, 0, 1)},
	{math3d.V3(0, 0, 1), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0)},
	{math3d.V3(0, 0, -1), math3d.V3(-1, 0, 0), math3d.V3(0, 1, 0)},
}

// NewBox returns an axis-aligned box centered on the origin with flat
// per-side normals and a full 0..1 UV square on every side.
func NewBox(w, h, d float64) *Mesh {
	m := NewMesh("box")
	half := math3d.V3(w/2, h/2, d/2)
	ext := func(a math3d.Vec3) math3d.Vec3 {
		return math3d.V3(a.X*half.X, a.Y*half.Y, a.Z*half.Z)
	}
	corners := [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, s := range boxSides {
		c := ext(s.n)
		u, v := ext(s.u), ext(s.v)
		base := len(m.Vertices)
		for _, k := range corners {
			m.Vertices = append(m.Vertices, MeshVertex{
				Position: c.Add(u.Scale(k[0])).Add(v.Scale(k[1])),
				Normal:   s.n,
				UV:       math3d.V2((k[0]+1)/2, (k[1]+1)/2),
			})
		}
		m.Faces = append(m.Faces,
			Face{V: [3]int{base, base + 1, base + 2}, Material: -1},
			Face{V: [3]int{base, base + 2, base + 3}, Material: -1},
		)
	}
	m.CalculateBounds()
	return m
}

// NewSphere returns a UV sphere. widthSegments and heightSegments are
// clamped to at least 3 and 2.
func NewSphere(radius float64, widthSegments, heightSegments int) *Mesh {
	m := NewMesh("sphere")
	ws := max(3, widthSegments)
	hs := max(2, heightSegments)

	grid := make([][]int, hs+1)
	for iy := range hs + 1 {
		v := float64(iy) / float64(hs)
		grid[iy] = make([]int, ws+1)
		for ix := range ws + 1 {
			u := float64(ix) / float64(ws)
			p := math3d.V3(
				-radius*math.Cos(u*2*math.Pi)*math.Sin(v*math.Pi),
				radius*math.Cos(v*math.Pi),
				radius*math.Sin(u*2*math.Pi)*math.Sin(v*math.Pi),
			)
			grid[iy][ix] = len(m.Vertices)
			m.Vertices = append(m.Vertices, MeshVertex{
				Position: p,
				Normal:   p.Normalize(),
				UV:       math3d.V2(u, 1-v),
			})
		}
	}

	for iy := range hs {
		for ix := range ws {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			// poles collapse to a single row of triangles
			if iy != 0 {
				m.Faces = append(m.Faces, Face{V: [3]int{a, b, d}, Material: -1})
			}
			if iy != hs-1 {
				m.Faces = append(m.Faces, Face{V: [3]int{b, c, d}, Material: -1})
			}
		}
	}
	m.CalculateBounds()
	return m
}
