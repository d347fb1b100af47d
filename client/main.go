//go:build js && wasm

package main

import (
	"context"
	"syscall/js"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/subhrm/shaders-playground/client/browser"
	"github.com/subhrm/shaders-playground/client/engine"
	"github.com/subhrm/shaders-playground/client/scene"
	"github.com/subhrm/shaders-playground/client/scenes/cube"
	"github.com/subhrm/shaders-playground/client/scenes/gradient"
	"github.com/subhrm/shaders-playground/client/scenes/spheres"
	"github.com/subhrm/shaders-playground/client/scenes/triangle"
)

const canvasID = "canvas"

var constructors = map[string]scene.Constructor{
	triangle.ID: triangle.New,
	gradient.ID: gradient.New,
	cube.ID:     cube.New,
	spheres.ID:  spheres.New,
}

// host owns the canvas and the device and runs at most one scene at a time.
type host struct {
	device engine.Device
	canvas browser.Canvas
	slot   scene.Slot[scene.Scene]
}

// frame resizes the canvas to its displayed size and draws the active scene.
func (h *host) frame(dt float64) {
	w := browser.Window()
	width, height := engine.BackingSize(h.canvas.ClientWidth(), h.canvas.ClientHeight(), w.DevicePixelRatio())
	h.canvas.SetSize(width, height)

	h.slot.Draw(dt)
}

// selectScene replaces the active scene with a new instance of id. Frames keep
// running while the new scene initializes and a later selection supersedes
// this one.
func (h *host) selectScene(ctx context.Context, id string) error {
	meta, err := scene.Lookup(id)
	if err != nil {
		return err
	}
	construct, ok := constructors[meta.ID]
	if !ok {
		return errors.Wrapf(scene.ErrNotFound, "no implementation for %q", id)
	}

	generation, previousID := h.slot.Detach()
	if previousID != "" {
		log.WithField("scene", previousID).Info("scene destroyed")
	}

	next := construct()
	if err := next.Init(ctx, h.device, h.device.PreferredFormat, h.canvas); err != nil {
		next.Destroy()
		return errors.Wrapf(err, "initializing %s", meta.Name)
	}

	if !h.slot.Attach(generation, id, next) {
		log.WithField("scene", id).Debug("scene superseded during init")
		return nil
	}
	log.WithField("scene", id).Info("scene attached")
	return nil
}

func reportError(msg string, err error) {
	log.WithError(err).Error(msg)
	browser.ShowError(msg + ": " + err.Error())
}

func main() {
	log.SetFormatter(&log.TextFormatter{DisableColors: true, DisableTimestamp: true})
	log.Info("Started client!")

	for _, m := range scene.All() {
		if _, ok := constructors[m.ID]; !ok {
			log.WithField("scene", m.ID).Warn("registered scene has no implementation")
		}
	}

	ctx := context.Background()
	canvas, err := browser.Document().CanvasByID(canvasID)
	if err != nil {
		reportError("Page error", err)
		select {}
	}
	device, err := engine.AcquireDevice(ctx)
	if err != nil {
		reportError("WebGPU unavailable", err)
		select {}
	}
	device.OnLost(func(reason, message string) {
		log.WithFields(log.Fields{"reason": reason, "message": message}).Error("GPU device lost")
		browser.ShowError("GPU device lost: " + message)
	})

	h := &host{device: device, canvas: canvas}
	js.Global().Set("selectScene", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 || args[0].Type() != js.TypeString {
			return nil
		}
		id := args[0].String()
		// Init awaits promises, which must not happen on the callback's goroutine.
		go func() {
			if err := h.selectScene(ctx, id); err != nil {
				reportError("Scene error", err)
			}
		}()
		return nil
	}))

	window := browser.Window()
	h.frame(0)
	id := scene.IDFromLocation(window.Path(), window.QueryParam("scene"))
	if err := h.selectScene(ctx, id); err != nil {
		reportError("Scene error", err)
	}

	loop := engine.StartRenderLoop(h.frame)
	defer loop.Stop()
	select {}
}
