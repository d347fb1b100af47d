//go:build js && wasm

package cube

import (
	"context"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
	"github.com/subhrm/shaders-playground/client/browser"
	"github.com/subhrm/shaders-playground/client/engine"
	"github.com/subhrm/shaders-playground/client/scene"
	"github.com/subhrm/shaders-playground/common/vmath"
)

var clearColor = wasmgpu.GPUColor{R: 0.05, G: 0.05, B: 0.05, A: 1.0}

type state struct {
	device        engine.Device
	surface       engine.Surface
	pipeline      wasmgpu.GPURenderPipeline
	vertexBuffers *engine.VertexBuffers
	vertexCount   int
	uniformBuffer engine.GPUBuffer[Uniforms]
	bindGroup     wasmgpu.GPUBindGroup
	depth         *engine.DepthAttachment
	clock         engine.Clock
}

type Scene struct {
	lifecycle scene.Lifecycle[state]
}

func New() scene.Scene {
	return &Scene{}
}

func (s *Scene) Init(ctx context.Context, device engine.Device, format wasmgpu.GPUTextureFormat, canvas browser.Canvas) error {
	return s.lifecycle.Init(func(r *engine.Resources) (state, error) {
		surface, err := engine.ConfigureSurface(device, canvas)
		if err != nil {
			return state{}, err
		}

		vertices := cubeVertices()
		vertexBuffer := engine.InitVertexBufferSlice(device.GPUDevice, vertices).TrackIn(r, "cube vertices")
		vertexBuffers := engine.NewVertexBuffers(
			[]engine.BufferDescriptor{{Struct: &vertexStruct}},
			[]engine.VertexAttribute{
				{BufferIndex: 0, FieldName: "pos"},
				{BufferIndex: 0, FieldName: "col"},
			},
		)
		vertexBuffers.Buffers[0] = vertexBuffer.Buffer()

		uniformBuffer := engine.InitUniformBuffer(device.GPUDevice, Uniforms{}).TrackIn(r, "cube uniforms")

		depth := engine.NewDepthAttachment(device)
		r.Track("cube depth", depth.Release)

		bindGroupLayout, err := engine.CreateBindGroupLayout(device, "cube bind group", []engine.BindingLayout{
			{Binding: 0, Access: engine.AccessUniform, Visibility: engine.StageVertex},
		})
		if err != nil {
			return state{}, err
		}
		bindGroup := device.CreateBindGroup(wasmgpu.GPUBindGroupDescriptor{
			Layout:  bindGroupLayout,
			Entries: engine.MakeGPUBindingGroupEntries(uniformBuffer.Binding()),
		})

		shaderModule, err := engine.InitShaderModule(ctx, device, Shaders()[0])
		if err != nil {
			return state{}, err
		}
		pipeline, err := engine.Validated(ctx, device, "cube pipeline", func() wasmgpu.GPURenderPipeline {
			return device.CreateRenderPipeline(wasmgpu.GPURenderPipelineDescriptor{
				Layout: opt.V(engine.CreatePipelineLayout(device, bindGroupLayout)),
				Vertex: wasmgpu.GPUVertexState{
					Module:     shaderModule,
					EntryPoint: "vs_main",
					Buffers:    vertexBuffers.Layout,
				},
				Fragment: opt.V(wasmgpu.GPUFragmentState{
					Module:     shaderModule,
					EntryPoint: "fs_main",
					Targets: []wasmgpu.GPUColorTargetState{
						{Format: format},
					},
				}),
				Primitive: opt.V(wasmgpu.GPUPrimitiveState{
					Topology: opt.V(wasmgpu.GPUPrimitiveTopologyTriangleList),
					CullMode: opt.V(wasmgpu.GPUCullModeBack),
				}),
				DepthStencil: opt.V(engine.DepthTestLess()),
			})
		})
		if err != nil {
			return state{}, err
		}
		return state{
			device:        device,
			surface:       surface,
			pipeline:      pipeline,
			vertexBuffers: vertexBuffers,
			vertexCount:   len(vertices),
			uniformBuffer: uniformBuffer,
			bindGroup:     bindGroup,
			depth:         depth,
		}, nil
	})
}

func (s *Scene) Draw(dt float64) {
	st, ok := s.lifecycle.Get()
	if !ok {
		return
	}
	width, height := st.surface.Size()
	angle := float32(st.clock.Advance(dt))
	st.uniformBuffer.UpdateBufferStruct(Uniforms{mvp: modelViewProjection(angle, vmath.Aspect(width, height))})

	depthTexture := st.depth.Ensure(width, height)

	commandEncoder := st.device.CreateCommandEncoder()
	passEncoder := commandEncoder.BeginRenderPass(wasmgpu.GPURenderPassDescriptor{
		ColorAttachments: []wasmgpu.GPURenderPassColorAttachment{
			engine.ClearedColor(st.surface.CurrentView(), clearColor),
		},
		DepthStencilAttachment: opt.V(engine.ClearedDepth(depthTexture.CreateView())),
	})
	passEncoder.SetPipeline(st.pipeline)
	passEncoder.SetBindGroup(0, st.bindGroup, nil)
	st.vertexBuffers.Bind(passEncoder)
	passEncoder.Draw(wasmgpu.GPUSize32(st.vertexCount), opt.Unspecified[wasmgpu.GPUSize32](), opt.Unspecified[wasmgpu.GPUSize32](), opt.Unspecified[wasmgpu.GPUSize32]())
	passEncoder.End()

	st.device.Queue().Submit([]wasmgpu.GPUCommandBuffer{
		commandEncoder.Finish(),
	})
}

func (s *Scene) Destroy() {
	s.lifecycle.Destroy()
}
