//go:build js && wasm

// Package browser wraps the small part of the DOM the client needs.
package browser

import (
	"syscall/js"

	"github.com/pkg/errors"
)

type HTMLWindow struct{ jsValue js.Value }

func Window() HTMLWindow {
	return HTMLWindow{js.Global().Get("window")}
}

func (w HTMLWindow) RequestAnimationFrame(fn js.Func) int {
	return w.jsValue.Call("requestAnimationFrame", fn).Int()
}

func (w HTMLWindow) CancelAnimationFrame(id int) { w.jsValue.Call("cancelAnimationFrame", id) }

func (w HTMLWindow) DevicePixelRatio() float64 {
	if r := w.jsValue.Get("devicePixelRatio"); r.Type() == js.TypeNumber {
		return r.Float()
	}
	return 1
}

// Path returns location.pathname.
func (w HTMLWindow) Path() string { return w.jsValue.Get("location").Get("pathname").String() }

// QueryParam returns the named parameter of location.search, or "" if absent.
func (w HTMLWindow) QueryParam(name string) string {
	params := js.Global().Get("URLSearchParams").New(w.jsValue.Get("location").Get("search"))
	if v := params.Call("get", name); !v.IsNull() {
		return v.String()
	}
	return ""
}

type HTMLDocument struct{ jsValue js.Value }

func Document() HTMLDocument {
	return HTMLDocument{js.Global().Get("document")}
}

// CanvasByID returns the <canvas> element with the given id.
func (d HTMLDocument) CanvasByID(id string) (Canvas, error) {
	el := d.jsValue.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return Canvas{}, errors.Errorf("no element with id %q", id)
	}
	if tag := el.Get("tagName").String(); tag != "CANVAS" {
		return Canvas{}, errors.Errorf("element %q is a %s, not a canvas", id, tag)
	}
	return Canvas{el}, nil
}

type Navigator struct{ jsValue js.Value }

func NavigatorObject() Navigator {
	return Navigator{js.Global().Get("navigator")}
}

// GPU returns navigator.gpu, which is undefined on browsers without WebGPU.
func (n Navigator) GPU() js.Value {
	if n.jsValue.IsUndefined() {
		return js.Undefined()
	}
	return n.jsValue.Get("gpu")
}

// ShowError forwards msg to the page's showError hook if it defines one.
func ShowError(msg string) bool {
	fn := js.Global().Get("showError")
	if fn.Type() != js.TypeFunction {
		return false
	}
	fn.Invoke(msg)
	return true
}
