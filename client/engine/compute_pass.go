//go:build js && wasm

package engine

import (
	"context"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
)

type ComputePass func(commandEncoder wasmgpu.GPUCommandEncoder)

// ComputePassBuffer is a buffer bound to a compute pass with a declared access mode.
type ComputePassBuffer struct {
	Buffer wasmgpu.GPUBuffer
	Access BufferAccess
}

type ComputePassFactory struct {
	device                Device
	label                 string
	computeShaderModule   wasmgpu.GPUShaderModule
	computePassDescriptor wasmgpu.GPUComputePassDescriptor

	layout    wasmgpu.GPUPipelineLayout
	bindGroup wasmgpu.GPUBindGroup
}

// NewComputePassFactory binds buffers[i] at binding i, visible to the compute stage.
func NewComputePassFactory(device Device, label string, computeShaderModule wasmgpu.GPUShaderModule, buffers []ComputePassBuffer) (ComputePassFactory, error) {
	bindings := make([]BindingLayout, len(buffers))
	resources := make([]wasmgpu.GPUBindingResource, len(buffers))
	for i, b := range buffers {
		bindings[i] = BindingLayout{Binding: i, Access: b.Access, Visibility: StageCompute}
		resources[i] = wasmgpu.GPUBufferBinding{Buffer: b.Buffer}
	}
	bindGroupLayout, err := CreateBindGroupLayout(device, label, bindings)
	if err != nil {
		return ComputePassFactory{}, err
	}
	return ComputePassFactory{
		device:              device,
		label:               label,
		layout:              CreatePipelineLayout(device, bindGroupLayout),
		computeShaderModule: computeShaderModule,
		bindGroup: device.CreateBindGroup(wasmgpu.GPUBindGroupDescriptor{
			Layout:  bindGroupLayout,
			Entries: MakeGPUBindingGroupEntries(resources...),
		}),
	}, nil
}

// InitPass creates the pipeline for entryPoint and returns a pass that
// dispatches numWorkgroups workgroups.
func (cpf ComputePassFactory) InitPass(ctx context.Context, entryPoint string, numWorkgroups int) (ComputePass, error) {
	pipeline, err := Validated(ctx, cpf.device, cpf.label+" "+entryPoint, func() wasmgpu.GPUComputePipeline {
		return cpf.device.CreateComputePipeline(wasmgpu.GPUComputePipelineDescriptor{
			Layout: opt.V(cpf.layout),
			Compute: wasmgpu.GPUProgrammableStage{
				Module:     cpf.computeShaderModule,
				EntryPoint: entryPoint,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return func(commandEncoder wasmgpu.GPUCommandEncoder) {
		passEncoder := commandEncoder.BeginComputePass(opt.V(cpf.computePassDescriptor))
		passEncoder.SetPipeline(pipeline)
		passEncoder.SetBindGroup(0, cpf.bindGroup, nil)
		passEncoder.DispatchWorkgroups(wasmgpu.GPUSize32(numWorkgroups), 0, 0)
		passEncoder.End()
	}, nil
}
