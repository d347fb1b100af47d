// Package vmath holds the vector types that are shared with shaders.
//
// The types are plain structs of float32 so that their Go memory layout can be
// copied byte-for-byte into GPU buffers (see wgsltypes for the matching WGSL types).
package vmath

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type V2 struct {
	X, Y float32
}

type V3 struct {
	X, Y, Z float32
}

type V4 struct {
	X, Y, Z, W float32
}

func NewV2(x, y float32) V2       { return V2{X: x, Y: y} }
func NewV3(x, y, z float32) V3    { return V3{X: x, Y: y, Z: z} }
func NewV4(x, y, z, w float32) V4 { return V4{X: x, Y: y, Z: z, W: w} }

func (v V2) String() string { return fmt.Sprintf("{%f, %f}", v.X, v.Y) }
func (v V3) String() string { return fmt.Sprintf("{%f, %f, %f}", v.X, v.Y, v.Z) }
func (v V4) String() string { return fmt.Sprintf("{%f, %f, %f, %f}", v.X, v.Y, v.Z, v.W) }

// Vec3 converts v to the mathgl representation.
func (v V3) Vec3() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

// V3FromVec3 converts a mathgl vector.
func V3FromVec3(v mgl32.Vec3) V3 { return V3{X: v[0], Y: v[1], Z: v[2]} }

// V4FromARGB unpacks a 0xAARRGGBB colour into normalized RGBA components.
func V4FromARGB(argb uint32) V4 {
	c := func(shift uint) float32 { return float32((argb>>shift)&0xff) / 255 }
	return V4{X: c(16), Y: c(8), Z: c(0), W: c(24)}
}
