//go:build js && wasm

package gradient

import (
	"context"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
	"github.com/subhrm/shaders-playground/client/browser"
	"github.com/subhrm/shaders-playground/client/engine"
	"github.com/subhrm/shaders-playground/client/scene"
)

var clearColor = wasmgpu.GPUColor{R: 0.0, G: 0.0, B: 0.0, A: 1.0}

type state struct {
	device        engine.Device
	surface       engine.Surface
	pipeline      wasmgpu.GPURenderPipeline
	uniformBuffer engine.GPUBuffer[Uniforms]
	bindGroup     wasmgpu.GPUBindGroup
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
		uniformBuffer := engine.InitUniformBuffer(device.GPUDevice, uniformsAt(0, canvas.Width(), canvas.Height())).TrackIn(r, "gradient uniforms")

		bindGroupLayout, err := engine.CreateBindGroupLayout(device, "gradient bind group", []engine.BindingLayout{
			{Binding: 0, Access: engine.AccessUniform, Visibility: engine.StageFragment},
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
		pipeline, err := engine.Validated(ctx, device, "gradient pipeline", func() wasmgpu.GPURenderPipeline {
			return device.CreateRenderPipeline(wasmgpu.GPURenderPipelineDescriptor{
				Layout: opt.V(engine.CreatePipelineLayout(device, bindGroupLayout)),
				Vertex: wasmgpu.GPUVertexState{
					Module:     shaderModule,
					EntryPoint: "vs_main",
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
				}),
			})
		})
		if err != nil {
			return state{}, err
		}
		return state{
			device:        device,
			surface:       surface,
			pipeline:      pipeline,
			uniformBuffer: uniformBuffer,
			bindGroup:     bindGroup,
		}, nil
	})
}

func (s *Scene) Draw(dt float64) {
	st, ok := s.lifecycle.Get()
	if !ok {
		return
	}
	width, height := st.surface.Size()
	st.uniformBuffer.UpdateBufferStruct(uniformsAt(st.clock.Advance(dt), width, height))

	commandEncoder := st.device.CreateCommandEncoder()
	passEncoder := commandEncoder.BeginRenderPass(wasmgpu.GPURenderPassDescriptor{
		ColorAttachments: []wasmgpu.GPURenderPassColorAttachment{
			engine.ClearedColor(st.surface.CurrentView(), clearColor),
		},
	})
	passEncoder.SetPipeline(st.pipeline)
	passEncoder.SetBindGroup(0, st.bindGroup, nil)
	passEncoder.Draw(vertexCount, opt.Unspecified[wasmgpu.GPUSize32](), opt.Unspecified[wasmgpu.GPUSize32](), opt.Unspecified[wasmgpu.GPUSize32]())
	passEncoder.End()

	st.device.Queue().Submit([]wasmgpu.GPUCommandBuffer{
		commandEncoder.Finish(),
	})
}

func (s *Scene) Destroy() {
	s.lifecycle.Destroy()
}
