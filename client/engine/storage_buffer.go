//go:build js && wasm

package engine

import "github.com/mokiat/wasmgpu"

// InitStorageBufferSlice uploads values into a new storage buffer.
func InitStorageBufferSlice[T any](device wasmgpu.GPUDevice, values []T, opts ...BufferOption) GPUBuffer[T] {
	data := sliceAsBytesSlice(values)
	buffer := initBuffer(device, wasmgpu.GPUBufferUsageFlagsStorage, data, true, opts...)
	return GPUBuffer[T]{
		device: device,
		buffer: buffer,
		size:   len(data),
	}
}
