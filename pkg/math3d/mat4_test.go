package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestPerspectiveNearFar(t *testing.T) {
	tests := []struct {
		name      string
		near, far float64
	}{
		{"default", 0.1, 100},
		{"tiny near", 0.00001, 100},
		{"wide", 1, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Perspective(math.Pi/4, 2, tt.near, tt.far)
			n := p.MulVec3(V3(0, 0, -tt.near))
			f := p.MulVec3(V3(0, 0, -tt.far))
			if math.Abs(n.Z+1) > 1e-6 {
				t.Errorf("near plane z = %v, want -1", n.Z)
			}
			if math.Abs(f.Z-1) > 1e-6 {
				t.Errorf("far plane z = %v, want 1", f.Z)
			}
		})
	}
}

func TestPerspectiveAspect(t *testing.T) {
	// A point on the right edge of the frustum at distance 1 lands on x = 1.
	fov := math.Pi / 2
	aspect := 2.0
	p := Perspective(fov, aspect, 0.1, 10)
	halfW := math.Tan(fov/2) * aspect
	got := p.MulVec3(V3(halfW, 0, -1))
	if math.Abs(got.X-1) > eps {
		t.Errorf("edge x = %v, want 1", got.X)
	}
}

func TestOrthographicPixelSpace(t *testing.T) {
	// left=0 right=300 top=0 bottom=150: pixel (0,0) is the top-left corner.
	o := Orthographic(0, 300, 0, 150, -1, 1)
	tests := []struct {
		in   Vec3
		want Vec3
	}{
		{V3(0, 0, 0), V3(-1, 1, 0)},
		{V3(300, 150, 0), V3(1, -1, 0)},
		{V3(150, 75, 0), V3(0, 0, 0)},
	}
	for _, tt := range tests {
		got := o.MulVec3(tt.in)
		if !got.ApproxEqual(tt.want, eps) {
			t.Errorf("Orthographic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLookAtMovesTargetOntoAxis(t *testing.T) {
	eye := V3(0, 10, 20)
	target := V3(0, 5, 0)
	view := LookAt(eye, target, V3(0, 1, 0))
	got := view.MulVec3(target)
	want := V3(0, 0, -target.Sub(eye).Len())
	if !got.ApproxEqual(want, 1e-9) {
		t.Errorf("LookAt target = %v, want %v", got, want)
	}
	if e := view.MulVec3(eye); !e.ApproxEqual(V3(0, 0, 0), eps) {
		t.Errorf("LookAt eye = %v, want origin", e)
	}
}

func TestInverse(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5)).Mul(Scale(V3(2, 3, 4)))
	got := m.Mul(m.Inverse())
	id := Identity()
	for i := range got {
		if math.Abs(got[i]-id[i]) > 1e-9 {
			t.Fatalf("m * m^-1 = %v, want identity", got)
		}
	}
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	if got := zero.Inverse(); got != Identity() {
		t.Errorf("Inverse(zero) = %v, want identity", got)
	}
}

func TestMat4FromSliceColumnMajor(t *testing.T) {
	// glTF translation lives in elements 12..14 of the column-major array.
	s := []float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 5, 6, 7, 1}
	m := Mat4FromSlice(s)
	if got := m.MulVec3(V3(0, 0, 0)); !got.ApproxEqual(V3(5, 6, 7), eps) {
		t.Errorf("translation = %v, want (5,6,7)", got)
	}
}

func TestQuatIdentity(t *testing.T) {
	if got := QuatToMat4(0, 0, 0, 1); got != Identity() {
		t.Errorf("QuatToMat4(identity) = %v", got)
	}
}
