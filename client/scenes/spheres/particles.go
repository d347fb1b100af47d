// Package spheres simulates a set of spheres bouncing inside a box. A compute
// pass integrates the particles in place and a render pass draws each one as a
// camera-facing disc.
package spheres

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mroth/weightedrand/v2"
	"github.com/pkg/errors"
	"github.com/subhrm/shaders-playground/client/engine"
	"github.com/subhrm/shaders-playground/common/math32"
	"github.com/subhrm/shaders-playground/common/vmath"
	"github.com/subhrm/shaders-playground/common/wgsltypes"

	_ "embed"
)

// ID is the registry id of the scene.
const ID = "bouncing-spheres"

const (
	numParticles  = 50
	workgroupSize = 64
	quadVertices  = 6

	fovY   = 2 * math32.Pi / 5
	near   = 0.1
	far    = 100
	bounds = 10

	// maxTimeStep bounds a single simulation step, e.g. after the tab was hidden.
	maxTimeStep = 0.1
)

var (
	cameraPosition = mgl32.Vec3{0, 0, 20}
	cameraTarget   = mgl32.Vec3{0, 0, 0}
	cameraUp       = mgl32.Vec3{0, 1, 0}
)

var (
	positionRange = math32.Symmetric(5)
	velocityRange = math32.Symmetric(0.1)
	radiusRange   = math32.Range{Min: 0.5, Max: 1.5}
)

// Particle is one element of the storage buffer shared by both passes.
type Particle struct {
	position vmath.V3
	pad0     float32
	velocity vmath.V3
	pad1     float32
	color    vmath.V4
	radius   float32
	pad2     float32
	pad3     float32
	pad4     float32
}

// Uniforms is written once per frame and read by both passes.
type Uniforms struct {
	projection     mgl32.Mat4
	view           mgl32.Mat4
	cameraPosition vmath.V3
	time           float32
	deltaT         float32
	bounds         float32
	pad0           float32
	pad1           float32
}

var (
	particleStruct = wgsltypes.MustNewHostShareable[Particle]()
	uniformsStruct = wgsltypes.MustNewHostShareable[Uniforms]()
)

var (
	// computeBindings are the bindings of the simulation pass, which updates
	// particles in place.
	computeBindings = []engine.BindingLayout{
		{Binding: 0, Access: engine.AccessUniform, Visibility: engine.StageCompute},
		{Binding: 1, Access: engine.AccessStorage, Visibility: engine.StageCompute},
	}
	// renderBindings expose the same buffers read-only to the vertex stage.
	renderBindings = []engine.BindingLayout{
		{Binding: 0, Access: engine.AccessUniform, Visibility: engine.StageVertex},
		{Binding: 1, Access: engine.AccessReadOnlyStorage, Visibility: engine.StageVertex},
	}
)

//go:embed compute.wgsl
var computeShaderCode string

//go:embed render.wgsl
var renderShaderCode string

const (
	computeShader = iota
	renderShader
)

// Shaders returns the WGSL modules the scene compiles.
func Shaders() []engine.ShaderSource {
	structs := []wgsltypes.Struct{uniformsStruct, particleStruct}
	return []engine.ShaderSource{
		computeShader: {Label: "bouncing spheres compute", Code: computeShaderCode, Structs: structs},
		renderShader:  {Label: "bouncing spheres render", Code: renderShaderCode, Structs: structs},
	}
}

// palette weights favour warm colours.
var palette = []weightedrand.Choice[uint32, int]{
	weightedrand.NewChoice(uint32(0xffe63946), 4),
	weightedrand.NewChoice(uint32(0xfff4a261), 4),
	weightedrand.NewChoice(uint32(0xffe9c46a), 3),
	weightedrand.NewChoice(uint32(0xff2a9d8f), 2),
	weightedrand.NewChoice(uint32(0xff457b9d), 2),
	weightedrand.NewChoice(uint32(0xfff1faee), 1),
}

func newPalette() (*weightedrand.Chooser[uint32, int], error) {
	chooser, err := weightedrand.NewChooser(palette...)
	if err != nil {
		return nil, errors.Wrap(err, "building sphere palette")
	}
	return chooser, nil
}

// initParticles returns n particles with random positions, velocities and
// radii, coloured from colors.
func initParticles(n int, r *rand.Rand, colors *weightedrand.Chooser[uint32, int]) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i].position = vmath.NewV3(positionRange.Sample(r), positionRange.Sample(r), positionRange.Sample(r))
		ps[i].velocity = vmath.NewV3(velocityRange.Sample(r), velocityRange.Sample(r), velocityRange.Sample(r))
		ps[i].color = vmath.V4FromARGB(colors.PickSource(r))
		ps[i].radius = radiusRange.Sample(r)
	}
	return ps
}

// uniformsAt returns the uniforms for a frame at elapsed seconds, dt seconds
// after the previous one.
func uniformsAt(elapsed, dt float64, aspect float32) Uniforms {
	return Uniforms{
		projection:     vmath.Perspective(fovY, aspect, near, far),
		view:           mgl32.LookAtV(cameraPosition, cameraTarget, cameraUp),
		cameraPosition: vmath.V3FromVec3(cameraPosition),
		time:           float32(elapsed),
		deltaT:         float32(min(max(dt, 0), maxTimeStep)),
		bounds:         bounds,
	}
}
