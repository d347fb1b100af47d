package spheres

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/subhrm/shaders-playground/client/engine"
	"github.com/subhrm/shaders-playground/common/shadercheck"
	"github.com/subhrm/shaders-playground/common/vmath"
)

func wgslOffsets(fields []string, offset func(string) int) map[string]int {
	m := map[string]int{}
	for _, f := range fields {
		m[f] = offset(f)
	}
	return m
}

func TestParticleLayout(t *testing.T) {
	if particleStruct.Size != 64 || particleStruct.WGSLSize != 64 {
		t.Errorf("Particle size = %d (WGSL %d), want 64", particleStruct.Size, particleStruct.WGSLSize)
	}
	got := wgslOffsets([]string{"position", "velocity", "color", "radius"}, func(f string) int {
		return particleStruct.FieldMap[f].WGSLOffset
	})
	want := map[string]int{"position": 0, "velocity": 16, "color": 32, "radius": 48}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Particle offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestUniformsLayout(t *testing.T) {
	if uniformsStruct.Size != 160 || uniformsStruct.WGSLSize != 160 {
		t.Errorf("Uniforms size = %d (WGSL %d), want 160", uniformsStruct.Size, uniformsStruct.WGSLSize)
	}
	got := wgslOffsets(uniformsStruct.Fields, func(f string) int {
		return uniformsStruct.FieldMap[f].WGSLOffset
	})
	want := map[string]int{
		"projection":     0,
		"view":           64,
		"cameraPosition": 128,
		"time":           140,
		"deltaT":         144,
		"bounds":         148,
		"pad0":           152,
		"pad1":           156,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Uniforms offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestInitParticles(t *testing.T) {
	colors, err := newPalette()
	if err != nil {
		t.Fatalf("newPalette() = %v", err)
	}
	allowed := map[vmath.V4]bool{}
	for _, c := range palette {
		allowed[vmath.V4FromARGB(c.Item)] = true
	}

	ps := initParticles(numParticles, rand.New(rand.NewSource(1)), colors)
	if len(ps) != 50 {
		t.Fatalf("len(initParticles()) = %d, want 50", len(ps))
	}
	for i, p := range ps {
		for _, c := range []float32{p.position.X, p.position.Y, p.position.Z} {
			if c < -5 || c > 5 {
				t.Errorf("particle %d: position %v outside [-5, 5]", i, p.position)
			}
		}
		for _, c := range []float32{p.velocity.X, p.velocity.Y, p.velocity.Z} {
			if c < -0.1 || c > 0.1 {
				t.Errorf("particle %d: velocity %v outside [-0.1, 0.1]", i, p.velocity)
			}
		}
		if p.radius < 0.5 || p.radius > 1.5 {
			t.Errorf("particle %d: radius %v outside [0.5, 1.5]", i, p.radius)
		}
		if p.color.W != 1 {
			t.Errorf("particle %d: alpha = %v, want 1", i, p.color.W)
		}
		if !allowed[p.color] {
			t.Errorf("particle %d: colour %v is not in the palette", i, p.color)
		}
		if p.pad0 != 0 || p.pad1 != 0 || p.pad2 != 0 || p.pad3 != 0 || p.pad4 != 0 {
			t.Errorf("particle %d: padding is not zero", i)
		}
	}
}

func TestInitParticlesDeterministic(t *testing.T) {
	colors, err := newPalette()
	if err != nil {
		t.Fatalf("newPalette() = %v", err)
	}
	a := initParticles(64, rand.New(rand.NewSource(7)), colors)
	b := initParticles(64, rand.New(rand.NewSource(7)), colors)
	if diff := cmp.Diff(a, b, cmp.AllowUnexported(Particle{})); diff != "" {
		t.Errorf("initParticles with the same seed mismatch (-first +second):\n%s", diff)
	}
}

func TestWorkgroups(t *testing.T) {
	if got := engine.WorkgroupCount(numParticles, workgroupSize); got != 1 {
		t.Errorf("WorkgroupCount(%d, %d) = %d, want 1", numParticles, workgroupSize, got)
	}
	want := fmt.Sprintf("@workgroup_size(%d)", workgroupSize)
	if !strings.Contains(computeShaderCode, want) {
		t.Errorf("compute shader does not declare %s", want)
	}
}

func TestBindingsAccess(t *testing.T) {
	if err := engine.ValidateBindings("compute", computeBindings); err != nil {
		t.Errorf("ValidateBindings(compute) = %v", err)
	}
	if err := engine.ValidateBindings("render", renderBindings); err != nil {
		t.Errorf("ValidateBindings(render) = %v", err)
	}
	for i, b := range computeBindings {
		if b.Binding != i || b.Visibility != engine.StageCompute {
			t.Errorf("compute binding %d = %+v, want binding %d visible to compute only", i, b, i)
		}
	}

	// Sharing the compute layout with the vertex stage must be rejected.
	shared := append([]engine.BindingLayout(nil), computeBindings...)
	for i := range shared {
		shared[i].Visibility |= engine.StageVertex
	}
	if err := engine.ValidateBindings("shared", shared); err == nil {
		t.Errorf("ValidateBindings(shared) = nil, want error")
	}

	if !strings.Contains(computeShaderCode, "var<storage, read_write> particles") {
		t.Errorf("compute shader must declare particles read_write")
	}
	if !strings.Contains(renderShaderCode, "var<storage, read> particles") {
		t.Errorf("render shader must declare particles read-only")
	}
}

func TestUniformsAt(t *testing.T) {
	u := uniformsAt(2.5, 1.0/60, 1)
	if u.cameraPosition != vmath.NewV3(0, 0, 20) {
		t.Errorf("cameraPosition = %v, want (0, 0, 20)", u.cameraPosition)
	}
	if u.time != 2.5 || u.bounds != bounds {
		t.Errorf("time, bounds = %v, %v, want 2.5, %v", u.time, u.bounds, float32(bounds))
	}
	if math.Abs(float64(u.deltaT)-1.0/60) > 1e-6 {
		t.Errorf("deltaT = %v, want 1/60", u.deltaT)
	}

	viewProjection := u.projection.Mul4(u.view)
	centre := vmath.Project(viewProjection, mgl32.Vec3{})
	if math.Abs(float64(centre.X())) > 1e-5 || math.Abs(float64(centre.Y())) > 1e-5 {
		t.Errorf("origin projects to %v, want the middle of the screen", centre)
	}
	if centre.Z() <= 0 || centre.Z() >= 1 {
		t.Errorf("origin depth = %v, want within (0, 1)", centre.Z())
	}
}

func TestUniformsAtClampsTimeStep(t *testing.T) {
	tests := []struct {
		dt   float64
		want float32
	}{
		{-1, 0},
		{0, 0},
		{0.05, 0.05},
		{5, maxTimeStep},
	}
	for _, tc := range tests {
		if got := uniformsAt(0, tc.dt, 1).deltaT; got != tc.want {
			t.Errorf("uniformsAt(dt=%v).deltaT = %v, want %v", tc.dt, got, tc.want)
		}
	}
}

func TestShadersCompile(t *testing.T) {
	for _, src := range Shaders() {
		t.Run(src.Label, func(t *testing.T) {
			_, err := shadercheck.Compile(src.Label, src.WGSL())
			if shadercheck.Unsupported(err) {
				t.Skipf("compiler limitation: %v", err)
			}
			if err != nil {
				t.Fatalf("compiling %s: %v", src.Label, err)
			}
		})
	}
}
