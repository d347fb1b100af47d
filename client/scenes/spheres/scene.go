//go:build js && wasm

package spheres

import (
	"context"
	"math/rand"
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
	"github.com/subhrm/shaders-playground/client/browser"
	"github.com/subhrm/shaders-playground/client/engine"
	"github.com/subhrm/shaders-playground/client/scene"
	"github.com/subhrm/shaders-playground/common/vmath"
)

var clearColor = wasmgpu.GPUColor{R: 0.1, G: 0.1, B: 0.15, A: 1.0}

type state struct {
	device          engine.Device
	surface         engine.Surface
	simulate        engine.ComputePass
	renderPipeline  wasmgpu.GPURenderPipeline
	renderBindGroup wasmgpu.GPUBindGroup
	uniformBuffer   engine.GPUBuffer[Uniforms]
	depth           *engine.DepthAttachment
	clock           engine.Clock
}

type Scene struct {
	lifecycle scene.Lifecycle[state]
}

func New() scene.Scene {
	return &Scene{}
}

// computeBuffers pairs buffers with the access modes declared in computeBindings.
func computeBuffers(buffers ...wasmgpu.GPUBuffer) []engine.ComputePassBuffer {
	result := make([]engine.ComputePassBuffer, len(computeBindings))
	for i, b := range computeBindings {
		result[i] = engine.ComputePassBuffer{Buffer: buffers[i], Access: b.Access}
	}
	return result
}

func (s *Scene) Init(ctx context.Context, device engine.Device, format wasmgpu.GPUTextureFormat, canvas browser.Canvas) error {
	return s.lifecycle.Init(func(r *engine.Resources) (state, error) {
		surface, err := engine.ConfigureSurface(device, canvas)
		if err != nil {
			return state{}, err
		}
		colors, err := newPalette()
		if err != nil {
			return state{}, err
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		particles := initParticles(numParticles, rng, colors)
		particleBuffer := engine.InitStorageBufferSlice(device.GPUDevice, particles).TrackIn(r, "sphere particles")
		uniformBuffer := engine.InitUniformBuffer(device.GPUDevice, uniformsAt(0, 0, vmath.Aspect(canvas.Width(), canvas.Height()))).TrackIn(r, "sphere uniforms")

		depth := engine.NewDepthAttachment(device)
		r.Track("sphere depth", depth.Release)

		shaders := Shaders()

		computeModule, err := engine.InitShaderModule(ctx, device, shaders[computeShader])
		if err != nil {
			return state{}, err
		}
		cpf, err := engine.NewComputePassFactory(device, "sphere simulation", computeModule, computeBuffers(uniformBuffer.Buffer(), particleBuffer.Buffer()))
		if err != nil {
			return state{}, err
		}
		simulate, err := cpf.InitPass(ctx, "cs_main", engine.WorkgroupCount(numParticles, workgroupSize))
		if err != nil {
			return state{}, err
		}

		renderLayout, err := engine.CreateBindGroupLayout(device, "sphere render bind group", renderBindings)
		if err != nil {
			return state{}, err
		}
		renderBindGroup := device.CreateBindGroup(wasmgpu.GPUBindGroupDescriptor{
			Layout:  renderLayout,
			Entries: engine.MakeGPUBindingGroupEntries(uniformBuffer.Binding(), particleBuffer.Binding()),
		})
		renderModule, err := engine.InitShaderModule(ctx, device, shaders[renderShader])
		if err != nil {
			return state{}, err
		}
		blend := wasmgpu.GPUBlendComponent{
			Operation: opt.V(wasmgpu.GPUBlendOperationAdd),
			SrcFactor: opt.V(wasmgpu.GPUBlendFactorSrcAlpha),
			DstFactor: opt.V(wasmgpu.GPUBlendFactorOneMinusSrcAlpha),
		}
		renderPipeline, err := engine.Validated(ctx, device, "sphere render pipeline", func() wasmgpu.GPURenderPipeline {
			return device.CreateRenderPipeline(wasmgpu.GPURenderPipelineDescriptor{
				Layout: opt.V(engine.CreatePipelineLayout(device, renderLayout)),
				Vertex: wasmgpu.GPUVertexState{
					Module:     renderModule,
					EntryPoint: "vs_main",
				},
				Fragment: opt.V(wasmgpu.GPUFragmentState{
					Module:     renderModule,
					EntryPoint: "fs_main",
					Targets: []wasmgpu.GPUColorTargetState{
						{
							Format: format,
							Blend:  opt.V(wasmgpu.GPUBlendState{Color: blend, Alpha: blend}),
						},
					},
				}),
				Primitive: opt.V(wasmgpu.GPUPrimitiveState{
					Topology: opt.V(wasmgpu.GPUPrimitiveTopologyTriangleList),
				}),
				DepthStencil: opt.V(engine.DepthTestLess()),
			})
		})
		if err != nil {
			return state{}, err
		}

		return state{
			device:          device,
			surface:         surface,
			simulate:        simulate,
			renderPipeline:  renderPipeline,
			renderBindGroup: renderBindGroup,
			uniformBuffer:   uniformBuffer,
			depth:           depth,
		}, nil
	})
}

func (s *Scene) Draw(dt float64) {
	st, ok := s.lifecycle.Get()
	if !ok {
		return
	}
	width, height := st.surface.Size()
	st.uniformBuffer.UpdateBufferStruct(uniformsAt(st.clock.Advance(dt), dt, vmath.Aspect(width, height)))

	depthTexture := st.depth.Ensure(width, height)

	commandEncoder := st.device.CreateCommandEncoder()
	st.simulate(commandEncoder)

	passEncoder := commandEncoder.BeginRenderPass(wasmgpu.GPURenderPassDescriptor{
		ColorAttachments: []wasmgpu.GPURenderPassColorAttachment{
			engine.ClearedColor(st.surface.CurrentView(), clearColor),
		},
		DepthStencilAttachment: opt.V(engine.ClearedDepth(depthTexture.CreateView())),
	})
	passEncoder.SetPipeline(st.renderPipeline)
	passEncoder.SetBindGroup(0, st.renderBindGroup, nil)
	passEncoder.Draw(quadVertices, opt.V(wasmgpu.GPUSize32(numParticles)), opt.Unspecified[wasmgpu.GPUSize32](), opt.Unspecified[wasmgpu.GPUSize32]())
	passEncoder.End()

	st.device.Queue().Submit([]wasmgpu.GPUCommandBuffer{
		commandEncoder.Finish(),
	})
}

func (s *Scene) Destroy() {
	s.lifecycle.Destroy()
}
