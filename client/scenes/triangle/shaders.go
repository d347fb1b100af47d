// Package triangle draws a single triangle whose vertices are generated in the
// vertex shader.
package triangle

import (
	"github.com/subhrm/shaders-playground/client/engine"

	_ "embed"
)

// ID is the registry id of the scene.
const ID = "hello-triangle"

const vertexCount = 3

//go:embed triangle.wgsl
var shaderCode string

// Shaders returns the WGSL modules the scene compiles.
func Shaders() []engine.ShaderSource {
	return []engine.ShaderSource{
		{Label: "hello triangle", Code: shaderCode},
	}
}
