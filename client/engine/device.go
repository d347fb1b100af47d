//go:build js && wasm

package engine

import (
	"context"
	"syscall/js"

	"github.com/mokiat/wasmgpu"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/subhrm/shaders-playground/client/browser"
)

// Device is the GPU device shared by every scene for the lifetime of the page.
type Device struct {
	wasmgpu.GPUDevice

	// PreferredFormat is the platform's preferred presentation format.
	PreferredFormat wasmgpu.GPUTextureFormat

	jsValue js.Value
}

// AcquireDevice negotiates an adapter and a device with the browser.
func AcquireDevice(ctx context.Context) (Device, error) {
	gpu := browser.NavigatorObject().GPU()
	if gpu.IsUndefined() || gpu.IsNull() {
		return Device{}, ErrUnsupportedPlatform
	}

	adapter, err := browser.Await(ctx, gpu.Call("requestAdapter"))
	if err != nil {
		return Device{}, errors.Wrapf(ErrNoAdapter, "requestAdapter: %v", err)
	}
	if adapter.IsNull() || adapter.IsUndefined() {
		return Device{}, ErrNoAdapter
	}

	jsDevice, err := browser.Await(ctx, adapter.Call("requestDevice"))
	if err != nil {
		return Device{}, errors.Wrapf(ErrNoAdapter, "requestDevice: %v", err)
	}

	format := gpu.Call("getPreferredCanvasFormat").String()
	log.WithField("format", format).Info("acquired GPU device")
	return Device{
		GPUDevice:       wasmgpu.NewDevice(jsDevice),
		PreferredFormat: wasmgpu.GPUTextureFormat(format),
		jsValue:         jsDevice,
	}, nil
}

// OnLost calls fn with the reason once the browser reports the device as lost.
func (d Device) OnLost(fn func(reason, message string)) {
	lost := d.jsValue.Get("lost")
	if lost.IsUndefined() {
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer cb.Release()
		info := args[0]
		fn(info.Get("reason").String(), info.Get("message").String())
		return nil
	})
	lost.Call("then", cb)
}

// Surface is a canvas configured for presentation with a device.
type Surface struct {
	Canvas  browser.Canvas
	Context wasmgpu.GPUCanvasContext
	Format  wasmgpu.GPUTextureFormat
}

// ConfigureSurface binds canvas to device using the device's preferred format
// and premultiplied alpha. Calling it again with the same arguments is harmless.
func ConfigureSurface(device Device, canvas browser.Canvas) (Surface, error) {
	jsContext := canvas.GetContext("webgpu")
	if jsContext.IsNull() || jsContext.IsUndefined() {
		return Surface{}, ErrSurfaceUnavailable
	}
	jsContext.Call("configure", map[string]any{
		"device":    device.jsValue,
		"format":    string(device.PreferredFormat),
		"alphaMode": "premultiplied",
	})
	return Surface{
		Canvas:  canvas,
		Context: wasmgpu.NewCanvasContext(jsContext),
		Format:  device.PreferredFormat,
	}, nil
}

// CurrentView returns a view of the texture to render into this frame.
func (s Surface) CurrentView() wasmgpu.GPUTextureView {
	return s.Context.GetCurrentTexture().CreateView()
}

func (s Surface) Size() (width, height int) {
	return s.Canvas.Width(), s.Canvas.Height()
}
