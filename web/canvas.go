//go:build js && wasm

// Package web runs the noise animation in a browser through WebGL.
package web

import (
	"errors"
	"syscall/js"
)

// Canvas is the browser surface: a full-window <canvas> element sized to
// the window's inner dimensions.
type Canvas struct {
	canvas js.Value
	gl     js.Value

	onClick  func()
	onResize func(width, height int)

	clickFunc  js.Func
	resizeFunc js.Func
}

// NewCanvas looks up the canvas element with the given id and acquires a
// WebGL context on it.
func NewCanvas(id string) (*Canvas, error) {
	doc := js.Global().Get("document")
	el := doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, errors.New("canvas element " + id + " not found")
	}
	gl := el.Call("getContext", "webgl")
	if gl.IsNull() || gl.IsUndefined() {
		return nil, errors.New("WebGL is not available")
	}

	c := &Canvas{canvas: el, gl: gl}
	c.fitWindow()

	c.clickFunc = js.FuncOf(func(this js.Value, args []js.Value) any {
		if c.onClick != nil {
			c.onClick()
		}
		return nil
	})
	c.resizeFunc = js.FuncOf(func(this js.Value, args []js.Value) any {
		w, h := c.fitWindow()
		if c.onResize != nil {
			c.onResize(w, h)
		}
		return nil
	})
	el.Call("addEventListener", "click", c.clickFunc)
	js.Global().Call("addEventListener", "resize", c.resizeFunc)
	return c, nil
}

func (c *Canvas) fitWindow() (int, int) {
	w := js.Global().Get("innerWidth").Int()
	h := js.Global().Get("innerHeight").Int()
	c.canvas.Set("width", w)
	c.canvas.Set("height", h)
	return w, h
}

// GL returns the WebGL rendering context.
func (c *Canvas) GL() js.Value { return c.gl }

// ShouldClose is always false; a page lives until it is unloaded.
func (c *Canvas) ShouldClose() bool { return false }

// EndFrame is a no-op. The browser presents after each animation frame
// callback and dispatches events between them.
func (c *Canvas) EndFrame() {}

func (c *Canvas) GetFramebufferSize() (int, int) {
	return c.canvas.Get("width").Int(), c.canvas.Get("height").Int()
}

// Time returns performance.now() in seconds.
func (c *Canvas) Time() float64 {
	return js.Global().Get("performance").Call("now").Float() * 0.001
}

func (c *Canvas) SetClickCallback(fn func()) { c.onClick = fn }

func (c *Canvas) SetResizeCallback(fn func(width, height int)) { c.onResize = fn }

// Release detaches the event listeners.
func (c *Canvas) Release() {
	c.canvas.Call("removeEventListener", "click", c.clickFunc)
	js.Global().Call("removeEventListener", "resize", c.resizeFunc)
	c.clickFunc.Release()
	c.resizeFunc.Release()
}
