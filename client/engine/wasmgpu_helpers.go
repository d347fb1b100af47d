//go:build js && wasm

package engine

import (
	"fmt"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
	"github.com/subhrm/shaders-playground/common/wgsltypes"
)

var vertexFormatTypeMap = map[wgsltypes.TypeName]wasmgpu.GPUVertexFormat{
	"f32":       wasmgpu.GPUVertexFormatFloat32,
	"i32":       wasmgpu.GPUVertexFormatSint32,
	"u32":       wasmgpu.GPUVertexFormatUint32,
	"vec2<f32>": wasmgpu.GPUVertexFormatFloat32x2,
	"vec3<f32>": wasmgpu.GPUVertexFormatFloat32x3,
	"vec4<f32>": wasmgpu.GPUVertexFormatFloat32x4,
}

var bufferBindingTypeMap = map[BufferAccess]wasmgpu.GPUBufferBindingType{
	AccessUniform:         wasmgpu.GPUBufferBindingTypeUniform,
	AccessReadOnlyStorage: wasmgpu.GPUBufferBindingTypeReadOnlyStorage,
	AccessStorage:         wasmgpu.GPUBufferBindingTypeStorage,
}

func makeGPUVertexAttribute(shaderLocation int, s wgsltypes.Struct, fieldName string) wasmgpu.GPUVertexAttribute {
	field, ok := s.FieldMap[fieldName]
	if !ok {
		panic(fmt.Sprintf("field %s.%s does not exist", s.Name, fieldName))
	}
	return wasmgpu.GPUVertexAttribute{
		ShaderLocation: wasmgpu.GPUIndex32(shaderLocation),
		Format:         mustFormatFromFieldType(field.WGSLType.Name),
		Offset:         wasmgpu.GPUSize64(s.MustOffsetOf(fieldName)),
	}
}

func mustFormatFromFieldType(fieldType wgsltypes.TypeName) wasmgpu.GPUVertexFormat {
	format, ok := vertexFormatTypeMap[fieldType]
	if !ok {
		panic("unhandled wgsltype: " + fieldType)
	}
	return format
}

type BufferDescriptor struct {
	Struct *wgsltypes.Struct
	// Instanced specifices whether the buffer is stepped as a vertex or instance buffer.
	Instanced bool
}

type VertexAttribute struct {
	BufferIndex int
	FieldName   string
}

type VertexBuffers struct {
	Layout  []wasmgpu.GPUVertexBufferLayout
	Buffers []wasmgpu.GPUBuffer
}

func NewVertexBuffers(bufDefs []BufferDescriptor, vtxAttrs []VertexAttribute) *VertexBuffers {
	result := make([]wasmgpu.GPUVertexBufferLayout, len(bufDefs))
	for idx, bd := range bufDefs {
		stepMode := wasmgpu.GPUVertexStepModeVertex
		if bd.Instanced {
			stepMode = wasmgpu.GPUVertexStepModeInstance
		}
		result[idx] = wasmgpu.GPUVertexBufferLayout{
			ArrayStride: wasmgpu.GPUSize64(bd.Struct.Size),
			StepMode:    opt.V(stepMode),
		}
	}

	for idx, a := range vtxAttrs {
		if a.BufferIndex >= len(result) {
			panic("buffer index out of bounds")
		}
		attribute := makeGPUVertexAttribute(idx, *bufDefs[a.BufferIndex].Struct, a.FieldName)
		result[a.BufferIndex].Attributes = append(result[a.BufferIndex].Attributes, attribute)
	}

	return &VertexBuffers{
		Layout:  result,
		Buffers: make([]wasmgpu.GPUBuffer, len(result)),
	}
}

func (v *VertexBuffers) Bind(passEncoder wasmgpu.GPURenderPassEncoder) {
	unspecified := opt.Unspecified[wasmgpu.GPUSize64]()
	for idx, buffer := range v.Buffers {
		passEncoder.SetVertexBuffer(wasmgpu.GPUIndex32(idx), buffer, unspecified, unspecified)
	}
}

// MakeGPUBindingGroupEntries numbers resources from binding 0 upwards.
func MakeGPUBindingGroupEntries(resources ...wasmgpu.GPUBindingResource) []wasmgpu.GPUBindGroupEntry {
	entries := make([]wasmgpu.GPUBindGroupEntry, len(resources))
	for idx, resource := range resources {
		entries[idx] = wasmgpu.GPUBindGroupEntry{
			Binding:  wasmgpu.GPUIndex32(idx),
			Resource: resource,
		}
	}
	return entries
}

func (s Stage) flags() wasmgpu.GPUShaderStageFlags {
	var f wasmgpu.GPUShaderStageFlags
	if s&StageVertex != 0 {
		f |= wasmgpu.GPUShaderStageFlagsVertex
	}
	if s&StageFragment != 0 {
		f |= wasmgpu.GPUShaderStageFlagsFragment
	}
	if s&StageCompute != 0 {
		f |= wasmgpu.GPUShaderStageFlagsCompute
	}
	return f
}

func (b BindingLayout) entry() wasmgpu.GPUBindGroupLayoutEntry {
	return wasmgpu.GPUBindGroupLayoutEntry{
		Binding:    wasmgpu.GPUIndex32(b.Binding),
		Visibility: b.Visibility.flags(),
		Buffer: opt.V(wasmgpu.GPUBufferBindingLayout{
			Type: opt.V(bufferBindingTypeMap[b.Access]),
		}),
	}
}

// CreateBindGroupLayout validates entries and creates the matching layout.
func CreateBindGroupLayout(device Device, label string, entries []BindingLayout) (wasmgpu.GPUBindGroupLayout, error) {
	if err := ValidateBindings(label, entries); err != nil {
		return wasmgpu.GPUBindGroupLayout{}, err
	}
	layoutEntries := make([]wasmgpu.GPUBindGroupLayoutEntry, len(entries))
	for i, e := range entries {
		layoutEntries[i] = e.entry()
	}
	return device.CreateBindGroupLayout(wasmgpu.GPUBindGroupLayoutDescriptor{
		Entries: layoutEntries,
	}), nil
}

// CreatePipelineLayout creates an explicit pipeline layout from bind group layouts.
func CreatePipelineLayout(device Device, layouts ...wasmgpu.GPUBindGroupLayout) wasmgpu.GPUPipelineLayout {
	if layouts == nil {
		layouts = []wasmgpu.GPUBindGroupLayout{}
	}
	return device.CreatePipelineLayout(wasmgpu.GPUPipelineLayoutDescriptor{
		BindGroupLayouts: layouts,
	})
}
