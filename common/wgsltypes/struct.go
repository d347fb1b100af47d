// Package wgsltypes describes Go structs that are shared with WGSL shaders.
//
// A Struct records, for every field, both the offset the Go compiler chose and
// the offset WGSL's alignment rules require. Structs copied into uniform or
// storage buffers must have identical layouts on both sides; CheckHostShareable
// reports any difference.
package wgsltypes

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// TypeName is the name of a WGSL type.
type TypeName string

// goToTypeMap maps Go types to WGSL types.
var goToTypeMap = map[string]TypeName{
	// Builtin types.
	"float32": "f32",
	"int32":   "i32",
	"uint32":  "u32",
	// Custom types.
	"github.com/subhrm/shaders-playground/common/vmath.V2": "vec2<f32>",
	"github.com/subhrm/shaders-playground/common/vmath.V3": "vec3<f32>",
	"github.com/subhrm/shaders-playground/common/vmath.V4": "vec4<f32>",
	"github.com/go-gl/mathgl/mgl32.Vec2":                   "vec2<f32>",
	"github.com/go-gl/mathgl/mgl32.Vec3":                   "vec3<f32>",
	"github.com/go-gl/mathgl/mgl32.Vec4":                   "vec4<f32>",
	"github.com/go-gl/mathgl/mgl32.Mat4":                   "mat4x4<f32>",
}

var typeMap = map[TypeName]Type{
	"f32":         {Name: "f32", AlignOf: 4, SizeOf: 4},
	"i32":         {Name: "i32", AlignOf: 4, SizeOf: 4},
	"u32":         {Name: "u32", AlignOf: 4, SizeOf: 4},
	"vec2<f32>":   {Name: "vec2<f32>", AlignOf: 8, SizeOf: 8},
	"vec3<f32>":   {Name: "vec3<f32>", AlignOf: 16, SizeOf: 12},
	"vec4<f32>":   {Name: "vec4<f32>", AlignOf: 16, SizeOf: 16},
	"mat4x4<f32>": {Name: "mat4x4<f32>", AlignOf: 16, SizeOf: 64},
}

type Type struct {
	// Name of the WGSL type.
	Name TypeName
	// Alignment of the WGSL type (see https://www.w3.org/TR/WGSL/#alignof).
	AlignOf int
	// Size if the WGSL type (see https://www.w3.org/TR/WGSL/#sizeof).
	SizeOf int
}

// A Struct provides information about a Go struct.
type Struct struct {
	// Name is the name of the struct as it appears in Go and WGSL.
	Name string
	// Size of the Go structure, in bytes.
	Size int

	// WGSLSize is the size WGSL assigns to the structure, in bytes.
	WGSLSize int
	// WGSLAlign is the alignment WGSL assigns to the structure.
	WGSLAlign int

	// Fields is a slice of the struct's fields, in declaration order.
	Fields []string
	// FieldMap maps field names to Fields.
	FieldMap map[string]Field
}

// A Field provides information about a particular field in a Go struct.
type Field struct {
	// Name is the name of the field in the Go struct.
	Name string

	// Offset is the offset (in bytes) of the field in the Go struct.
	Offset uintptr

	// WGSLOffset is the offset (in bytes) of the field in the WGSL struct.
	WGSLOffset int

	// WGSLType is the corresponding WGSL type to use.
	WGSLType Type
}

func MustNewStruct[T any]() Struct {
	var t T
	name := reflect.TypeOf(t).Name()
	s, err := NewStruct[T](name)
	if err != nil {
		panic(fmt.Sprintf("exporting %q: %v", name, err))
	}
	return s
}

// MustNewHostShareable returns the description of T and panics if T cannot be
// copied verbatim into a uniform or storage buffer.
func MustNewHostShareable[T any]() Struct {
	s := MustNewStruct[T]()
	if err := s.CheckHostShareable(); err != nil {
		panic(err.Error())
	}
	return s
}

func NewStruct[T any](name string) (Struct, error) {
	var t T
	structType := reflect.TypeOf(t)
	if structType == nil || structType.Kind() != reflect.Struct {
		return Struct{}, errors.New("provided type is not a struct")
	}

	s := Struct{
		Name:      name,
		Size:      int(structType.Size()),
		WGSLAlign: 1,
		FieldMap:  make(map[string]Field),
	}

	end := 0
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldType := field.Type.Name()
		if path := field.Type.PkgPath(); path != "" {
			fieldType = path + "." + fieldType
		}
		wgslTypeName, ok := goToTypeMap[fieldType]
		if !ok {
			return Struct{}, errors.Errorf("unhandled Go type: %q", fieldType)
		}
		wgslType, ok := typeMap[wgslTypeName]
		if !ok {
			return Struct{}, errors.Errorf("unhandled WGSL type: %q", wgslTypeName)
		}
		offset := roundUp(wgslType.AlignOf, end)
		end = offset + wgslType.SizeOf
		if wgslType.AlignOf > s.WGSLAlign {
			s.WGSLAlign = wgslType.AlignOf
		}

		s.Fields = append(s.Fields, field.Name)
		s.FieldMap[field.Name] = Field{
			Name:       field.Name,
			Offset:     field.Offset,
			WGSLOffset: offset,
			WGSLType:   wgslType,
		}
	}
	s.WGSLSize = roundUp(s.WGSLAlign, end)
	return s, nil
}

// roundUp rounds n up to the next multiple of k (see https://www.w3.org/TR/WGSL/#roundup).
func roundUp(k, n int) int {
	return ((n + k - 1) / k) * k
}

// CheckHostShareable returns an error if the Go and WGSL layouts of the struct differ.
func (s Struct) CheckHostShareable() error {
	for _, fName := range s.Fields {
		f := s.FieldMap[fName]
		if int(f.Offset) != f.WGSLOffset {
			return errors.Errorf("%s.%s: Go offset %d != WGSL offset %d (add explicit padding)", s.Name, f.Name, f.Offset, f.WGSLOffset)
		}
	}
	if s.Size != s.WGSLSize {
		return errors.Errorf("%s: Go size %d != WGSL size %d (add trailing padding)", s.Name, s.Size, s.WGSLSize)
	}
	return nil
}

func (s Struct) String() string {
	var output strings.Builder
	output.WriteString(fmt.Sprintf("struct %q, size %d\n", s.Name, s.Size))
	for idx, fName := range s.Fields {
		f := s.FieldMap[fName]
		output.WriteString(fmt.Sprintf("  %d: %s at offset %d\n", idx, f.Name, f.Offset))
	}
	return output.String()
}

// Layout returns a table of the WGSL layout of the struct.
func (s Struct) Layout() string {
	var output strings.Builder
	output.WriteString(fmt.Sprintf("%s: size %d, align %d\n", s.Name, s.WGSLSize, s.WGSLAlign))
	for _, fName := range s.Fields {
		f := s.FieldMap[fName]
		output.WriteString(fmt.Sprintf("  %-16s %-12s offset %3d size %2d align %2d\n", f.Name, f.WGSLType.Name, f.WGSLOffset, f.WGSLType.SizeOf, f.WGSLType.AlignOf))
	}
	return output.String()
}

// ToWGSL returns a string representing the Go struct as a WGSL struct definition.
func (s Struct) ToWGSL() string {
	var output strings.Builder
	output.WriteString(fmt.Sprintf("struct %s {\n", s.Name))
	for _, fieldName := range s.Fields {
		f := s.FieldMap[fieldName]
		output.WriteString(fmt.Sprintf("  %s : %s,\n", fieldName, f.WGSLType.Name))
	}
	output.WriteString("}\n")
	return output.String()
}

// MustOffsetOf returns the offset of the specified field.
// Panics if the field is not found.
func (s *Struct) MustOffsetOf(fieldName string) int {
	field, ok := s.FieldMap[fieldName]
	if !ok {
		panic("unknown field: " + fieldName)
	}
	return int(field.Offset)
}
