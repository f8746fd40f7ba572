package render

import (
	"math"

	"github.com/taigrr/frustum/pkg/math3d"
	"github.com/taigrr/frustum/pkg/viewport"
)

// Material describes how a mesh surface is colored.
type Material struct {
	Color   Color    // base color; zero value is treated as white
	Texture *Texture // optional, modulated by Color
	Unlit   bool     // ignore lighting (flat base color)
}

// Rasterizer draws meshes and lines for one camera into a framebuffer. A
// frame may use several rasterizers (one per viewport) sharing one buffer.
type Rasterizer struct {
	Camera *Camera
	FB     *Framebuffer

	// LightDir points from the scene toward the directional light.
	LightDir math3d.Vec3
	Ambient  float64

	// CullBackfaces skips triangles facing away; otherwise back faces are
	// lit with a flipped normal.
	CullBackfaces bool

	// LogarithmicDepth writes log2(1+w)/log2(1+far) instead of NDC depth
	// for perspective cameras.
	LogarithmicDepth bool

	viewport    viewport.Rect
	scissor     viewport.Rect
	scissorTest bool

	// per-frame state captured by Begin
	viewProj math3d.Mat4
	kind     Projection
	far      float64
	clip     viewport.Rect
}

// NewRasterizer creates a rasterizer covering the whole framebuffer.
func NewRasterizer(cam *Camera, fb *Framebuffer) *Rasterizer {
	return &Rasterizer{
		Camera:   cam,
		FB:       fb,
		LightDir: math3d.V3(0.5, 1, 0.3).Normalize(),
		Ambient:  0.15,
	}
}

// SetViewport maps NDC onto r. An empty rectangle means the full buffer.
func (r *Rasterizer) SetViewport(rect viewport.Rect) {
	r.viewport = rect
}

// SetScissor sets the region pixels are restricted to while the scissor
// test is on.
func (r *Rasterizer) SetScissor(rect viewport.Rect) {
	r.scissor = rect
}

// SetScissorTest enables or disables the scissor region.
func (r *Rasterizer) SetScissorTest(on bool) {
	r.scissorTest = on
}

// Viewport returns the effective viewport.
func (r *Rasterizer) Viewport() viewport.Rect {
	if r.viewport.Empty() {
		return r.FB.Bounds()
	}
	return r.viewport
}

// Begin captures the camera matrices for the draws that follow. Call it
// after any UpdateProjectionMatrix and before drawing.
func (r *Rasterizer) Begin() {
	r.viewProj = r.Camera.ViewProjection()
	r.kind = r.Camera.Kind()
	_, r.far = r.Camera.ClipPlanes()
	r.clip = r.Viewport().Intersect(r.FB.Bounds())
	if r.scissorTest {
		r.clip = r.clip.Intersect(r.scissor)
	}
}

// clipVertex is a clip-space vertex with the attributes we interpolate.
type clipVertex struct {
	pos   math3d.Vec4
	uv    math3d.Vec2
	shade float64
}

func (a clipVertex) lerp(b clipVertex, t float64) clipVertex {
	return clipVertex{
		pos:   a.pos.Lerp(b.pos, t),
		uv:    a.uv.Lerp(b.uv, t),
		shade: a.shade + (b.shade-a.shade)*t,
	}
}

// DrawMesh rasterizes every face of mesh after applying transform.
func (r *Rasterizer) DrawMesh(mesh MeshRenderer, transform math3d.Mat4, mat Material) {
	if r.clip.Empty() {
		return
	}
	base := mat.Color
	if base == (Color{}) {
		base = ColorWhite
	}
	light := r.LightDir.Normalize()

	for i := range mesh.TriangleCount() {
		tri := buildWorldTriangle(mesh, mesh.GetFace(i), transform)

		centroid := tri.pos[0].Add(tri.pos[1]).Add(tri.pos[2]).Scale(1.0 / 3)
		back := tri.face.Dot(r.Camera.ToViewer(centroid)) < 0
		if back && r.CullBackfaces {
			continue
		}

		var verts [3]clipVertex
		for k := range 3 {
			shade := 1.0
			if !mat.Unlit {
				n := tri.normal[k]
				if back {
					n = n.Scale(-1)
				}
				shade = r.Ambient + (1-r.Ambient)*math.Max(0, n.Dot(light))
			}
			verts[k] = clipVertex{
				pos:   r.viewProj.MulVec4(math3d.V4FromV3(tri.pos[k], 1)),
				uv:    tri.uv[k],
				shade: shade,
			}
		}

		poly := clipNear(verts[:])
		for k := 1; k+1 < len(poly); k++ {
			r.fillTriangle(poly[0], poly[k], poly[k+1], base, mat)
		}
	}
}

// clipNear clips a convex polygon against the near plane (z >= -w).
func clipNear(in []clipVertex) []clipVertex {
	out := make([]clipVertex, 0, len(in)+2)
	for i := range in {
		a := in[i]
		b := in[(i+1)%len(in)]
		da := a.pos.Z + a.pos.W
		db := b.pos.Z + b.pos.W
		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			out = append(out, a.lerp(b, da/(da-db)))
		}
	}
	return out
}

// screenVertex is a vertex after perspective divide and viewport mapping.
// Attributes are pre-divided by w for perspective-correct interpolation.
type screenVertex struct {
	x, y   float64
	z      float64 // NDC depth
	invW   float64
	uvW    math3d.Vec2
	shadeW float64
}

func (r *Rasterizer) toScreen(v clipVertex) screenVertex {
	vp := r.Viewport()
	w := v.pos.W
	if w == 0 {
		w = 1e-12
	}
	invW := 1 / w
	return screenVertex{
		x:      float64(vp.X) + (v.pos.X*invW+1)*0.5*float64(vp.W),
		y:      float64(vp.Y) + (1-v.pos.Y*invW)*0.5*float64(vp.H),
		z:      v.pos.Z * invW,
		invW:   invW,
		uvW:    v.uv.Scale(invW),
		shadeW: v.shade * invW,
	}
}

func (r *Rasterizer) depth(ndcZ, invW float64) float64 {
	if r.LogarithmicDepth && r.kind == Perspective && r.far > 0 {
		w := 1 / invW
		return math.Log2(1+w) / math.Log2(1+r.far)
	}
	return (ndcZ + 1) * 0.5
}

func (r *Rasterizer) fillTriangle(a, b, c clipVertex, base Color, mat Material) {
	v0, v1, v2 := r.toScreen(a), r.toScreen(b), r.toScreen(c)

	area := edge(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 || math.IsNaN(area) {
		return
	}
	invArea := 1 / area

	minX := max(r.clip.X, int(math.Floor(math.Min(v0.x, math.Min(v1.x, v2.x)))))
	maxX := min(r.clip.Right()-1, int(math.Ceil(math.Max(v0.x, math.Max(v1.x, v2.x)))))
	minY := max(r.clip.Y, int(math.Floor(math.Min(v0.y, math.Min(v1.y, v2.y)))))
	maxY := min(r.clip.Bottom()-1, int(math.Ceil(math.Max(v0.y, math.Max(v1.y, v2.y)))))

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(v1.x, v1.y, v2.x, v2.y, px, py) * invArea
			w1 := edge(v2.x, v2.y, v0.x, v0.y, px, py) * invArea
			w2 := edge(v0.x, v0.y, v1.x, v1.y, px, py) * invArea
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v0.z + w1*v1.z + w2*v2.z
			if z > 1 {
				continue
			}
			invW := w0*v0.invW + w1*v1.invW + w2*v2.invW
			if invW <= 0 {
				continue
			}
			d := math.Max(0, r.depth(z, invW))
			if !r.FB.DepthTest(x, y, d) {
				continue
			}

			col := base
			if mat.Texture != nil {
				u := (w0*v0.uvW.X + w1*v1.uvW.X + w2*v2.uvW.X) / invW
				v := (w0*v0.uvW.Y + w1*v1.uvW.Y + w2*v2.uvW.Y) / invW
				col = ModulateColor(mat.Texture.Sample(u, v), base)
			}
			if !mat.Unlit {
				shade := (w0*v0.shadeW + w1*v1.shadeW + w2*v2.shadeW) / invW
				col = MultiplyColor(col, shade)
			}
			r.FB.SetPixel(x, y, col)
		}
	}
}

// edge is twice the signed area of (a, b, p).
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// DrawLine draws a depth-tested world-space segment.
func (r *Rasterizer) DrawLine(a, b math3d.Vec3, col Color) {
	if r.clip.Empty() {
		return
	}
	ca := clipVertex{pos: r.viewProj.MulVec4(math3d.V4FromV3(a, 1))}
	cb := clipVertex{pos: r.viewProj.MulVec4(math3d.V4FromV3(b, 1))}
	da := ca.pos.Z + ca.pos.W
	db := cb.pos.Z + cb.pos.W
	switch {
	case da < 0 && db < 0:
		return
	case da < 0:
		ca = ca.lerp(cb, da/(da-db))
	case db < 0:
		cb = cb.lerp(ca, db/(db-da))
	}

	sa, sb := r.toScreen(ca), r.toScreen(cb)
	dx, dy := sb.x-sa.x, sb.y-sa.y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	// guard against runaway lengths from points at the near plane
	steps = min(steps, 4*(r.clip.W+r.clip.H))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor(sa.x + dx*t))
		y := int(math.Floor(sa.y + dy*t))
		if !r.clip.Contains(x, y) {
			continue
		}
		z := sa.z + (sb.z-sa.z)*t
		invW := sa.invW + (sb.invW-sa.invW)*t
		if z > 1 || invW <= 0 {
			continue
		}
		if r.FB.DepthTest(x, y, math.Max(0, r.depth(z, invW))) {
			r.FB.SetPixel(x, y, col)
		}
	}
}
