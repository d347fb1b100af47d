//go:build js && wasm

package engine

import (
	"context"

	"github.com/pkg/errors"
	"github.com/subhrm/shaders-playground/client/browser"
)

// Validated runs create inside a WebGPU validation error scope and converts any
// captured error into a *PipelineError.
func Validated[T any](ctx context.Context, device Device, label string, create func() T) (T, error) {
	device.jsValue.Call("pushErrorScope", "validation")
	v := create()
	if err := device.popErrorScope(ctx, label); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func (d Device) popErrorScope(ctx context.Context, label string) error {
	gpuErr, err := browser.Await(ctx, d.jsValue.Call("popErrorScope"))
	if err != nil {
		return errors.Wrapf(err, "%s: popping error scope", label)
	}
	if gpuErr.IsNull() || gpuErr.IsUndefined() {
		return nil
	}
	return &PipelineError{Label: label, Message: gpuErr.Get("message").String()}
}
