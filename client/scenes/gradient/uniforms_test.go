package gradient

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/subhrm/shaders-playground/client/engine"
	"github.com/subhrm/shaders-playground/common/shadercheck"
	"github.com/subhrm/shaders-playground/common/vmath"
)

func TestUniformsLayout(t *testing.T) {
	if uniformsStruct.Size != 16 {
		t.Errorf("Uniforms size = %d, want 16", uniformsStruct.Size)
	}
	want := map[string]int{"time": 0, "pad0": 4, "resolution": 8}
	got := map[string]int{}
	for _, name := range uniformsStruct.Fields {
		got[name] = uniformsStruct.FieldMap[name].WGSLOffset
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WGSL offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestUniformsAt(t *testing.T) {
	var clock engine.Clock
	for _, dt := range []float64{0.1, 0.2, 0.3} {
		clock.Advance(dt)
	}
	got := uniformsAt(clock.Elapsed(), 800, 600)
	if got.time < 0.6-1e-6 || got.time > 0.6+1e-6 {
		t.Errorf("time = %v, want 0.6", got.time)
	}
	if want := vmath.NewV2(800, 600); got.resolution != want {
		t.Errorf("resolution = %v, want %v", got.resolution, want)
	}
	if got.pad0 != 0 {
		t.Errorf("pad0 = %v, want 0", got.pad0)
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
