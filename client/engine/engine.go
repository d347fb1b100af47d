//go:build js && wasm

package engine

import (
	"context"
	"syscall/js"

	"github.com/mokiat/wasmgpu"
	"github.com/subhrm/shaders-playground/client/browser"
)

// RenderLoop calls an update function once per animation frame.
type RenderLoop struct {
	update  func(dt float64)
	frame   js.Func
	id      int
	last    float64
	started bool
	stopped bool
}

// StartRenderLoop calls update on every animation frame with the time since
// the previous frame in seconds (0 on the first frame).
func StartRenderLoop(update func(dt float64)) *RenderLoop {
	l := &RenderLoop{update: update}
	l.frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		if l.stopped {
			return nil
		}
		now := args[0].Float()
		dt := 0.0
		if l.started {
			dt = max((now-l.last)/1000, 0)
		}
		l.last, l.started = now, true
		l.update(dt)
		l.id = browser.Window().RequestAnimationFrame(l.frame)
		return nil
	})
	l.id = browser.Window().RequestAnimationFrame(l.frame)
	return l
}

// Stop cancels the pending frame and releases the callback.
func (l *RenderLoop) Stop() {
	if l.stopped {
		return
	}
	l.stopped = true
	browser.Window().CancelAnimationFrame(l.id)
	l.frame.Release()
}

// InitShaderModule compiles src on device, reporting compilation errors as a *PipelineError.
func InitShaderModule(ctx context.Context, device Device, src ShaderSource) (wasmgpu.GPUShaderModule, error) {
	return Validated(ctx, device, src.Label, func() wasmgpu.GPUShaderModule {
		return device.CreateShaderModule(wasmgpu.GPUShaderModuleDescriptor{
			Code: src.WGSL(),
		})
	})
}
