// Package gradient fills the canvas with a colour gradient animated by time.
package gradient

import (
	"github.com/subhrm/shaders-playground/client/engine"
	"github.com/subhrm/shaders-playground/common/vmath"
	"github.com/subhrm/shaders-playground/common/wgsltypes"

	_ "embed"
)

// ID is the registry id of the scene.
const ID = "gradient-pattern"

// A full-screen quad made of two triangles.
const vertexCount = 6

// Uniforms is read by the fragment shader every frame.
type Uniforms struct {
	time       float32
	pad0       float32
	resolution vmath.V2
}

var uniformsStruct = wgsltypes.MustNewHostShareable[Uniforms]()

//go:embed gradient.wgsl
var shaderCode string

// Shaders returns the WGSL modules the scene compiles.
func Shaders() []engine.ShaderSource {
	return []engine.ShaderSource{
		{Label: "gradient pattern", Code: shaderCode, Structs: []wgsltypes.Struct{uniformsStruct}},
	}
}

// uniformsAt returns the uniforms for the given elapsed time and canvas size.
func uniformsAt(elapsed float64, width, height int) Uniforms {
	return Uniforms{
		time:       float32(elapsed),
		resolution: vmath.NewV2(float32(width), float32(height)),
	}
}
