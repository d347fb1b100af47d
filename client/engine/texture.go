//go:build js && wasm

package engine

import (
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/wasmgpu"
)

const DepthFormat = wasmgpu.GPUTextureFormatDepth24Plus

// DepthAttachment is a depth texture that follows the canvas size.
type DepthAttachment = SizedAttachment[wasmgpu.GPUTexture]

func NewDepthAttachment(device Device) *DepthAttachment {
	return NewSizedAttachment(func(width, height int) (wasmgpu.GPUTexture, func()) {
		tex := device.CreateTexture(wasmgpu.GPUTextureDescriptor{
			Size: wasmgpu.GPUExtent3D{
				Width:  wasmgpu.GPUIntegerCoordinate(width),
				Height: opt.V(wasmgpu.GPUIntegerCoordinate(height)),
			},
			Format: DepthFormat,
			Usage:  wasmgpu.GPUTextureUsageFlagsRenderAttachment,
		})
		return tex, tex.Destroy
	})
}

// DepthTestLess is the depth state shared by the 3D scenes: less-than test with writes.
func DepthTestLess() wasmgpu.GPUDepthStencilState {
	return wasmgpu.GPUDepthStencilState{
		Format:            DepthFormat,
		DepthWriteEnabled: true,
		DepthCompare:      wasmgpu.GPUCompareFunctionLess,
	}
}

// ClearedDepth returns an attachment for view that is cleared to 1.0 and stored.
func ClearedDepth(view wasmgpu.GPUTextureView) wasmgpu.GPURenderPassDepthStencilAttachment {
	return wasmgpu.GPURenderPassDepthStencilAttachment{
		View:            view,
		DepthClearValue: opt.V(float32(1.0)),
		DepthLoadOp:     opt.V(wasmgpu.GPULoadOpClear),
		DepthStoreOp:    opt.V(wasmgpu.GPUStoreOPStore),
	}
}

// ClearedColor returns a colour attachment for view cleared to c.
func ClearedColor(view wasmgpu.GPUTextureView, c wasmgpu.GPUColor) wasmgpu.GPURenderPassColorAttachment {
	return wasmgpu.GPURenderPassColorAttachment{
		View:       view,
		ClearValue: opt.V(c),
		LoadOp:     wasmgpu.GPULoadOpClear,
		StoreOp:    wasmgpu.GPUStoreOPStore,
	}
}
