//go:build js && wasm

package scene

import (
	"context"

	"github.com/mokiat/wasmgpu"
	"github.com/subhrm/shaders-playground/client/browser"
	"github.com/subhrm/shaders-playground/client/engine"
)

// Scene is a self-contained demo.
//
// Init allocates every GPU resource the scene needs and may block while the
// browser validates shaders. Draw is called once per frame with the time since
// the previous frame in seconds and is a no-op unless Init succeeded. Destroy
// releases everything Init allocated; it is safe to call at any point and more
// than once.
type Scene interface {
	Init(ctx context.Context, device engine.Device, format wasmgpu.GPUTextureFormat, canvas browser.Canvas) error
	Draw(dt float64)
	Destroy()
}

// Constructor creates a scene in the Uninitialized state.
type Constructor func() Scene
