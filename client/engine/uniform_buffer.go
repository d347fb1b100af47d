//go:build js && wasm

package engine

import "github.com/mokiat/wasmgpu"

// InitUniformBuffer creates a uniform buffer holding value. The buffer can be
// rewritten every frame with UpdateBufferStruct.
func InitUniformBuffer[T any](device wasmgpu.GPUDevice, value T, opts ...BufferOption) GPUBuffer[T] {
	data := structAsByteSlice(value)
	opts = append([]BufferOption{WithCopyDstUsage()}, opts...)
	buffer := initBuffer(device, wasmgpu.GPUBufferUsageFlagsUniform, data, true, opts...)
	return GPUBuffer[T]{
		device: device,
		buffer: buffer,
		size:   len(data),
	}
}

// UpdateBuffer writes raw bytes at the start of the buffer.
func (b GPUBuffer[T]) UpdateBuffer(bytes []byte) {
	b.device.Queue().WriteBuffer(b.buffer, 0, bytes)
}

// UpdateBufferStruct writes value at the start of the buffer.
func (b GPUBuffer[T]) UpdateBufferStruct(value T) {
	b.UpdateBuffer(structAsByteSlice(value))
}
