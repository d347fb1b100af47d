//go:build js && wasm

package browser

import "syscall/js"

// Canvas is an HTML canvas element.
type Canvas struct{ jsValue js.Value }

func (c Canvas) JSValue() js.Value { return c.jsValue }

// Width and Height are the dimensions of the backing store in pixels.
func (c Canvas) Width() int  { return c.jsValue.Get("width").Int() }
func (c Canvas) Height() int { return c.jsValue.Get("height").Int() }

// ClientWidth and ClientHeight are the CSS dimensions of the element.
func (c Canvas) ClientWidth() int  { return c.jsValue.Get("clientWidth").Int() }
func (c Canvas) ClientHeight() int { return c.jsValue.Get("clientHeight").Int() }

// SetSize resizes the backing store; it reports whether anything changed.
func (c Canvas) SetSize(width, height int) bool {
	if c.Width() == width && c.Height() == height {
		return false
	}
	c.jsValue.Set("width", width)
	c.jsValue.Set("height", height)
	return true
}

// GetContext returns the rendering context of the given kind, or null.
func (c Canvas) GetContext(kind string) js.Value {
	return c.jsValue.Call("getContext", kind)
}
