//go:build js && wasm

package web

import (
	"syscall/js"

	"github.com/richinsley/staticnoise/animation"
	"github.com/richinsley/staticnoise/shader"
)

// Drawer renders the noise program with WebGL 1.
type Drawer struct {
	gl            js.Value
	program       js.Value
	buffer        js.Value
	timeLoc       js.Value
	resolutionLoc js.Value
}

func NewDrawer(gl js.Value) (*Drawer, error) {
	vsSource, fsSource := shader.WebGL()
	program, err := linkProgram(gl, vsSource, fsSource)
	if err != nil {
		return nil, err
	}
	gl.Call("useProgram", program)

	verts := shader.QuadVertices()
	data := js.Global().Get("Float32Array").New(len(verts))
	for i, v := range verts {
		data.SetIndex(i, v)
	}
	buffer := gl.Call("createBuffer")
	gl.Call("bindBuffer", gl.Get("ARRAY_BUFFER"), buffer)
	gl.Call("bufferData", gl.Get("ARRAY_BUFFER"), data, gl.Get("STATIC_DRAW"))

	loc := gl.Call("getAttribLocation", program, shader.PositionAttrib)
	gl.Call("enableVertexAttribArray", loc)
	gl.Call("vertexAttribPointer", loc, 2, gl.Get("FLOAT"), false, 0, 0)

	return &Drawer{
		gl:            gl,
		program:       program,
		buffer:        buffer,
		timeLoc:       gl.Call("getUniformLocation", program, shader.TimeUniform),
		resolutionLoc: gl.Call("getUniformLocation", program, shader.ResolutionUniform),
	}, nil
}

func (d *Drawer) Viewport(width, height int) {
	d.gl.Call("viewport", 0, 0, width, height)
}

func (d *Drawer) Draw(f animation.Frame) {
	if !f.Paused && !d.timeLoc.IsNull() {
		d.gl.Call("uniform1f", d.timeLoc, f.Time)
	}
	if !d.resolutionLoc.IsNull() {
		d.gl.Call("uniform2f", d.resolutionLoc, f.Resolution.X(), f.Resolution.Y())
	}
	d.gl.Call("drawArrays", d.gl.Get("TRIANGLE_STRIP"), 0, shader.QuadVertexCount)
}

func (d *Drawer) Release() {
	d.gl.Call("deleteBuffer", d.buffer)
	d.gl.Call("deleteProgram", d.program)
}

func compileShader(gl js.Value, kind js.Value, stage, source string) (js.Value, error) {
	s := gl.Call("createShader", kind)
	gl.Call("shaderSource", s, source)
	gl.Call("compileShader", s)
	if !gl.Call("getShaderParameter", s, gl.Get("COMPILE_STATUS")).Bool() {
		log := gl.Call("getShaderInfoLog", s).String()
		gl.Call("deleteShader", s)
		return js.Null(), &shader.ShaderCompileError{Stage: stage, Log: shader.TrimLog(log)}
	}
	return s, nil
}

func linkProgram(gl js.Value, vsSource, fsSource string) (js.Value, error) {
	vs, err := compileShader(gl, gl.Get("VERTEX_SHADER"), "vertex", vsSource)
	if err != nil {
		return js.Null(), err
	}
	defer gl.Call("deleteShader", vs)
	fs, err := compileShader(gl, gl.Get("FRAGMENT_SHADER"), "fragment", fsSource)
	if err != nil {
		return js.Null(), err
	}
	defer gl.Call("deleteShader", fs)

	program := gl.Call("createProgram")
	gl.Call("attachShader", program, vs)
	gl.Call("attachShader", program, fs)
	gl.Call("linkProgram", program)
	if !gl.Call("getProgramParameter", program, gl.Get("LINK_STATUS")).Bool() {
		log := gl.Call("getProgramInfoLog", program).String()
		gl.Call("deleteProgram", program)
		return js.Null(), &shader.ShaderLinkError{Log: shader.TrimLog(log)}
	}
	return program, nil
}
