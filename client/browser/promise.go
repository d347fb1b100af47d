//go:build js && wasm

package browser

import (
	"context"
	"fmt"
	"syscall/js"
)

// Error is a rejected promise's reason.
type Error struct {
	Name    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func newError(v js.Value) *Error {
	if v.Type() != js.TypeObject {
		return &Error{Name: "Error", Message: v.String()}
	}
	return &Error{Name: v.Get("name").String(), Message: v.Get("message").String()}
}

// Await blocks until promise settles or ctx is done. It must not be called from
// inside a js.Func callback, as that would stall the JS event loop.
func Await(ctx context.Context, promise js.Value) (js.Value, error) {
	type result struct {
		value js.Value
		err   error
	}
	ch := make(chan result, 1)

	var onResolve, onReject js.Func
	onResolve = js.FuncOf(func(this js.Value, args []js.Value) any {
		ch <- result{value: firstArg(args)}
		return nil
	})
	onReject = js.FuncOf(func(this js.Value, args []js.Value) any {
		ch <- result{err: newError(firstArg(args))}
		return nil
	})
	promise.Call("then", onResolve, onReject)

	select {
	case r := <-ch:
		onResolve.Release()
		onReject.Release()
		return r.value, r.err
	case <-ctx.Done():
		// The callbacks stay alive: the promise may still settle.
		return js.Undefined(), ctx.Err()
	}
}

func firstArg(args []js.Value) js.Value {
	if len(args) == 0 {
		return js.Undefined()
	}
	return args[0]
}
