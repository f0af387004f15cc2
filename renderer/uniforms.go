package renderer

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/staticnoise/animation"
	xlate "github.com/richinsley/staticnoise/translator"
)

// UniformLocation resolves a source uniform name through the translator's
// mapping. If the mapped name is not active it retries the plain name.
// -1 means the uniform is not active.
func UniformLocation(fs *xlate.Fragment, lookup func(name string) int32, name string) int32 {
	mapped := fs.MappedName(name)
	loc := lookup(mapped)
	if loc < 0 && mapped != name {
		loc = lookup(name)
	}
	return loc
}

type uniformSetter interface {
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
}

type glUniforms struct{}

func (glUniforms) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }
func (glUniforms) Uniform2f(loc int32, x, y float32) { gl.Uniform2f(loc, x, y) }

// applyUniforms pushes the frame's values to the bound program. Inactive
// locations are skipped and time is only advanced while running.
func applyUniforms(u uniformSetter, timeLoc, resolutionLoc int32, f animation.Frame) {
	if timeLoc != -1 && !f.Paused {
		u.Uniform1f(timeLoc, f.Time)
	}
	if resolutionLoc != -1 {
		u.Uniform2f(resolutionLoc, f.Resolution.X(), f.Resolution.Y())
	}
}
