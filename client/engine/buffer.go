//go:build js && wasm

package engine

import (
	"syscall/js"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
)

var uint8ArrayCtor = js.Global().Get("Uint8Array")

// GPUBuffer is a device buffer holding one T or a slice of T.
type GPUBuffer[T any] struct {
	device wasmgpu.GPUDevice
	buffer wasmgpu.GPUBuffer
	size   int
}

func (b GPUBuffer[T]) Buffer() wasmgpu.GPUBuffer {
	return b.buffer
}

func (b GPUBuffer[T]) BufferSize() wasmgpu.GPUSize64 {
	return wasmgpu.GPUSize64(b.size)
}

// Binding returns the whole buffer as a bind group resource.
func (b GPUBuffer[T]) Binding() wasmgpu.GPUBufferBinding {
	return wasmgpu.GPUBufferBinding{Buffer: b.buffer}
}

// Destroy releases the device memory. The buffer must not be used afterwards.
func (b GPUBuffer[T]) Destroy() {
	b.buffer.Destroy()
}

// TrackIn registers the buffer with r and returns it.
func (b GPUBuffer[T]) TrackIn(r *Resources, name string) GPUBuffer[T] {
	r.Track(name, b.Destroy)
	return b
}

func initBuffer(device wasmgpu.GPUDevice, usage wasmgpu.GPUBufferUsageFlags, data []byte, initContents bool, opts ...BufferOption) wasmgpu.GPUBuffer {
	desc := wasmgpu.GPUBufferDescriptor{
		Size:             wasmgpu.GPUSize64(len(data)),
		Usage:            usage,
		MappedAtCreation: opt.V(initContents),
	}
	for _, opt := range opts {
		opt(&desc)
	}
	buffer := device.CreateBuffer(desc)
	if initContents {
		js.CopyBytesToJS(uint8ArrayCtor.New(buffer.GetMappedRange(0, 0)), data)
		buffer.Unmap()
	}
	return buffer
}

// InitVertexBufferSlice uploads values into a new vertex buffer.
func InitVertexBufferSlice[T any](device wasmgpu.GPUDevice, values []T, opts ...BufferOption) GPUBuffer[T] {
	data := sliceAsBytesSlice(values)
	buffer := initBuffer(device, wasmgpu.GPUBufferUsageFlagsVertex, data, true, opts...)
	return GPUBuffer[T]{
		device: device,
		buffer: buffer,
		size:   len(data),
	}
}
