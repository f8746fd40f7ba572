package render

import "github.com/taigrr/frustum/pkg/math3d"

// MeshRenderer is the read-only view of a mesh the rasterizer needs.
type MeshRenderer interface {
	TriangleCount() int
	GetFace(i int) [3]int
	GetVertex(i int) (pos, normal math3d.Vec3, uv math3d.Vec2)
}

// worldTriangle is one face transformed to world space.
type worldTriangle struct {
	pos    [3]math3d.Vec3
	normal [3]math3d.Vec3
	uv     [3]math3d.Vec2
	face   math3d.Vec3 // geometric normal, counter-clockwise front
}

func buildWorldTriangle(mesh MeshRenderer, face [3]int, transform math3d.Mat4) worldTriangle {
	var t worldTriangle
	for i, idx := range face {
		p, n, uv := mesh.GetVertex(idx)
		t.pos[i] = transform.MulVec3(p)
		t.normal[i] = transform.MulVec3Dir(n).Normalize()
		t.uv[i] = uv
	}
	t.face = t.pos[1].Sub(t.pos[0]).Cross(t.pos[2].Sub(t.pos[0])).Normalize()
	for i := range t.normal {
		if t.normal[i].Len() == 0 {
			t.normal[i] = t.face
		}
	}
	return t
}
