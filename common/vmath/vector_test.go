package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/subhrm/shaders-playground/common/math32"
)

const eps = 1e-5

func approxEqualF(a, b, epsilon float32) bool {
	return math.Abs(float64(a-b)) < float64(epsilon)
}

func TestMathGLConversions(t *testing.T) {
	v := NewV3(1, 2, 3)
	if diff := cmp.Diff(v, V3FromVec3(v.Vec3())); diff != "" {
		t.Errorf("V3 conversion mismatch (-want +got):\n%s", diff)
	}
}

func TestV4FromARGB(t *testing.T) {
	got := V4FromARGB(0xff00ff00)
	want := NewV4(0, 1, 0, 1)
	if got != want {
		t.Errorf("V4FromARGB(0xff00ff00) = %v, want %v", got, want)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 1, 100
	m := Perspective(2*math32.Pi/5, 1.5, near, far)

	tests := []struct {
		name  string
		p     mgl32.Vec3
		wantZ float32
	}{
		{name: "near plane", p: mgl32.Vec3{0, 0, -near}, wantZ: 0},
		{name: "far plane", p: mgl32.Vec3{0, 0, -far}, wantZ: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Project(m, tc.p)
			if !approxEqualF(got[2], tc.wantZ, 1e-4) {
				t.Errorf("Project(%v).z = %v, want %v", tc.p, got[2], tc.wantZ)
			}
		})
	}
}

func TestAspect(t *testing.T) {
	tests := []struct {
		w, h int
		want float32
	}{
		{w: 800, h: 600, want: 800.0 / 600.0},
		{w: 600, h: 600, want: 1},
		{w: 0, h: 600, want: 1},
		{w: 800, h: 0, want: 1},
	}
	for _, tc := range tests {
		if got := Aspect(tc.w, tc.h); !approxEqualF(got, tc.want, eps) {
			t.Errorf("Aspect(%d, %d) = %v, want %v", tc.w, tc.h, got, tc.want)
		}
	}
}
