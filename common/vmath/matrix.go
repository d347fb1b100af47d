package vmath

import "github.com/go-gl/mathgl/mgl32"

// clipDepthZeroToOne remaps clip-space depth from OpenGL's [-w, w] to WebGPU's [0, w].
var clipDepthZeroToOne = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Perspective returns a right-handed perspective projection whose normalized
// device depth ranges over [0, 1], as WebGPU expects.
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	return clipDepthZeroToOne.Mul4(mgl32.Perspective(fovY, aspect, near, far))
}

// Aspect returns width/height, falling back to 1 for degenerate sizes.
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Project transforms p by m and performs the perspective divide.
func Project(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	c := m.Mul4x1(p.Vec4(1))
	return c.Vec3().Mul(1 / c[3])
}
