// Package cube renders a vertex-coloured cube spinning about a diagonal axis.
package cube

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/subhrm/shaders-playground/client/engine"
	"github.com/subhrm/shaders-playground/common/math32"
	"github.com/subhrm/shaders-playground/common/vmath"
	"github.com/subhrm/shaders-playground/common/wgsltypes"

	_ "embed"
)

// ID is the registry id of the scene.
const ID = "rotating-cube"

const (
	fovY  = 2 * math32.Pi / 5
	near  = 1
	far   = 100
	viewZ = -5
)

var rotationAxis = mgl32.Vec3{1, 1, 0}.Normalize()

// Vertex is one element of the vertex buffer. It is only read through vertex
// attributes, so it is packed without WGSL padding.
type Vertex struct {
	pos vmath.V3
	col vmath.V4
}

// Uniforms holds the model-view-projection matrix.
type Uniforms struct {
	mvp mgl32.Mat4
}

var (
	vertexStruct   = wgsltypes.MustNewStruct[Vertex]()
	uniformsStruct = wgsltypes.MustNewHostShareable[Uniforms]()
)

//go:embed cube.wgsl
var shaderCode string

// Shaders returns the WGSL modules the scene compiles.
func Shaders() []engine.ShaderSource {
	return []engine.ShaderSource{
		{Label: "rotating cube", Code: shaderCode, Structs: []wgsltypes.Struct{uniformsStruct}},
	}
}

var (
	red    = vmath.NewV4(1, 0, 0, 1)
	green  = vmath.NewV4(0, 1, 0, 1)
	blue   = vmath.NewV4(0, 0, 1, 1)
	yellow = vmath.NewV4(1, 1, 0, 1)
)

func v(x, y, z float32, col vmath.V4) Vertex {
	return Vertex{pos: vmath.NewV3(x, y, z), col: col}
}

// cubeVertices returns two counter-clockwise triangles for each face of the
// cube spanning [-1, 1] on every axis.
func cubeVertices() []Vertex {
	return []Vertex{
		// Front.
		v(-1, -1, 1, red), v(1, -1, 1, green), v(1, 1, 1, blue),
		v(-1, -1, 1, red), v(1, 1, 1, blue), v(-1, 1, 1, yellow),
		// Back.
		v(-1, -1, -1, red), v(-1, 1, -1, yellow), v(1, 1, -1, blue),
		v(-1, -1, -1, red), v(1, 1, -1, blue), v(1, -1, -1, green),
		// Top.
		v(-1, 1, -1, yellow), v(-1, 1, 1, yellow), v(1, 1, 1, blue),
		v(-1, 1, -1, yellow), v(1, 1, 1, blue), v(1, 1, -1, blue),
		// Bottom.
		v(-1, -1, -1, red), v(1, -1, -1, green), v(1, -1, 1, green),
		v(-1, -1, -1, red), v(1, -1, 1, green), v(-1, -1, 1, red),
		// Right.
		v(1, -1, -1, green), v(1, 1, -1, blue), v(1, 1, 1, blue),
		v(1, -1, -1, green), v(1, 1, 1, blue), v(1, -1, 1, green),
		// Left.
		v(-1, -1, -1, red), v(-1, -1, 1, red), v(-1, 1, 1, yellow),
		v(-1, -1, -1, red), v(-1, 1, 1, yellow), v(-1, 1, -1, yellow),
	}
}

// modelViewProjection places the cube in front of the camera, rotated by angle
// radians about rotationAxis.
func modelViewProjection(angle, aspect float32) mgl32.Mat4 {
	projection := vmath.Perspective(fovY, aspect, near, far)
	modelView := mgl32.Translate3D(0, 0, viewZ).Mul4(mgl32.HomogRotate3D(angle, rotationAxis))
	return projection.Mul4(modelView)
}
