package wgsltypes

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/subhrm/shaders-playground/common/vmath"
)

type testStruct struct {
	vec4 vmath.V4

	vec3 vmath.V3
	pad0 uint32

	vec2 vmath.V2

	f32Val    float32
	int32Val  int32
	uint32Val uint32
}

type paddedStruct struct {
	transform mgl32.Mat4
	position  vmath.V3
	time      float32
	size      vmath.V2
	pad0      float32
	pad1      float32
}

type misalignedStruct struct {
	time     float32
	position vmath.V3
}

type notAStruct int

func TestNewStruct(t *testing.T) {
	got, err := NewStruct[testStruct]("testStruct")
	if err != nil {
		t.Fatalf("NewStruct() = %v, want nil error", err)
	}
	want := Struct{
		Name:      "testStruct",
		Size:      52,
		WGSLSize:  64,
		WGSLAlign: 16,
		Fields: []string{
			"vec4",
			"vec3",
			"pad0",
			"vec2",
			"f32Val",
			"int32Val",
			"uint32Val",
		},
		FieldMap: map[string]Field{
			"vec4": {
				Name:       "vec4",
				Offset:     0,
				WGSLOffset: 0,
				WGSLType:   Type{Name: "vec4<f32>", AlignOf: 16, SizeOf: 16},
			},
			"vec3": {
				Name:       "vec3",
				Offset:     16,
				WGSLOffset: 16,
				WGSLType:   Type{Name: "vec3<f32>", AlignOf: 16, SizeOf: 12},
			},
			"pad0": {
				Name:       "pad0",
				Offset:     28,
				WGSLOffset: 28,
				WGSLType:   Type{Name: "u32", AlignOf: 4, SizeOf: 4},
			},
			"vec2": {
				Name:       "vec2",
				Offset:     32,
				WGSLOffset: 32,
				WGSLType:   Type{Name: "vec2<f32>", AlignOf: 8, SizeOf: 8},
			},
			"f32Val": {
				Name:       "f32Val",
				Offset:     40,
				WGSLOffset: 40,
				WGSLType:   Type{Name: "f32", AlignOf: 4, SizeOf: 4},
			},
			"int32Val": {
				Name:       "int32Val",
				Offset:     44,
				WGSLOffset: 44,
				WGSLType:   Type{Name: "i32", AlignOf: 4, SizeOf: 4},
			},
			"uint32Val": {
				Name:       "uint32Val",
				Offset:     48,
				WGSLOffset: 48,
				WGSLType:   Type{Name: "u32", AlignOf: 4, SizeOf: 4},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff mismatch (-want +got):\n%s", diff)
	}
}

func TestNewStructErrors(t *testing.T) {
	if _, err := NewStruct[notAStruct]("notAStruct"); err == nil {
		t.Errorf("NewStruct[notAStruct]() = nil error, want error")
	}
	type withString struct {
		name string
	}
	if _, err := NewStruct[withString]("withString"); err == nil {
		t.Errorf("NewStruct[withString]() = nil error, want error")
	}
}

func TestCheckHostShareable(t *testing.T) {
	tests := []struct {
		name    string
		s       Struct
		wantErr string
	}{
		{
			name: "padded",
			s:    MustNewStruct[paddedStruct](),
		},
		{
			name:    "missing trailing padding",
			s:       MustNewStruct[testStruct](),
			wantErr: "Go size 52 != WGSL size 64",
		},
		{
			name:    "misaligned field",
			s:       MustNewStruct[misalignedStruct](),
			wantErr: "misalignedStruct.position: Go offset 4 != WGSL offset 16",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.CheckHostShareable()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("CheckHostShareable() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("CheckHostShareable() = %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestPaddedStructLayout(t *testing.T) {
	s := MustNewHostShareable[paddedStruct]()
	wantOffsets := map[string]int{
		"transform": 0,
		"position":  64,
		"time":      76,
		"size":      80,
		"pad0":      88,
		"pad1":      92,
	}
	gotOffsets := map[string]int{}
	for name, f := range s.FieldMap {
		gotOffsets[name] = f.WGSLOffset
	}
	if diff := cmp.Diff(wantOffsets, gotOffsets); diff != "" {
		t.Errorf("offset mismatch (-want +got):\n%s", diff)
	}
	if s.WGSLSize != 96 {
		t.Errorf("WGSLSize = %d, want 96", s.WGSLSize)
	}
}

func TestMustNewHostSharablePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustNewHostShareable[misalignedStruct]() did not panic")
		}
	}()
	MustNewHostShareable[misalignedStruct]()
}

func TestToWGSL(t *testing.T) {
	s, err := NewStruct[testStruct]("testStruct")
	if err != nil {
		t.Fatalf("NewStruct() failed unexpectedly: %v", err)
	}

	got := s.ToWGSL()
	want := `struct testStruct {
  vec4 : vec4<f32>,
  vec3 : vec3<f32>,
  pad0 : u32,
  vec2 : vec2<f32>,
  f32Val : f32,
  int32Val : i32,
  uint32Val : u32,
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout(t *testing.T) {
	s := MustNewStruct[paddedStruct]()
	got := s.Layout()
	for _, want := range []string{
		"paddedStruct: size 96, align 16",
		"transform        mat4x4<f32>  offset   0 size 64 align 16",
		"size             vec2<f32>    offset  80 size  8 align  8",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Layout() = %q, want it to contain %q", got, want)
		}
	}
}
