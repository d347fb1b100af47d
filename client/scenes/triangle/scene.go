//go:build js && wasm

package triangle

import (
	"context"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
	"github.com/subhrm/shaders-playground/client/browser"
	"github.com/subhrm/shaders-playground/client/engine"
	"github.com/subhrm/shaders-playground/client/scene"
)

var clearColor = wasmgpu.GPUColor{R: 0.1, G: 0.1, B: 0.1, A: 1.0}

type state struct {
	device   engine.Device
	surface  engine.Surface
	pipeline wasmgpu.GPURenderPipeline
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
		shaderModule, err := engine.InitShaderModule(ctx, device, Shaders()[0])
		if err != nil {
			return state{}, err
		}
		pipeline, err := engine.Validated(ctx, device, "hello triangle pipeline", func() wasmgpu.GPURenderPipeline {
			return device.CreateRenderPipeline(wasmgpu.GPURenderPipelineDescriptor{
				Layout: opt.V(engine.CreatePipelineLayout(device)),
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
		return state{device: device, surface: surface, pipeline: pipeline}, nil
	})
}

func (s *Scene) Draw(dt float64) {
	st, ok := s.lifecycle.Get()
	if !ok {
		return
	}
	commandEncoder := st.device.CreateCommandEncoder()
	passEncoder := commandEncoder.BeginRenderPass(wasmgpu.GPURenderPassDescriptor{
		ColorAttachments: []wasmgpu.GPURenderPassColorAttachment{
			engine.ClearedColor(st.surface.CurrentView(), clearColor),
		},
	})
	passEncoder.SetPipeline(st.pipeline)
	passEncoder.Draw(vertexCount, opt.Unspecified[wasmgpu.GPUSize32](), opt.Unspecified[wasmgpu.GPUSize32](), opt.Unspecified[wasmgpu.GPUSize32]())
	passEncoder.End()

	st.device.Queue().Submit([]wasmgpu.GPUCommandBuffer{
		commandEncoder.Finish(),
	})
}

func (s *Scene) Destroy() {
	s.lifecycle.Destroy()
}
