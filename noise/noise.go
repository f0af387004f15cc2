// Package noise is the CPU rendition of the static noise fragment shader.
//
// It evaluates the same float32 expression the GPU evaluates per fragment, so
// frames, audio and statistics can be produced without a GL context.
package noise

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// Fract returns v - floor(v). For finite v the result lies in [0, 1);
// NaN and infinities propagate as NaN.
func Fract(v float32) float32 {
	return v - math32.Floor(v)
}

// Value returns the noise intensity for the fragment at window coordinates
// (x, y) and evolution parameter evolve (seconds).
//
// Zero or near-zero y*e is not guarded: the divisions produce infinities
// and NaNs exactly like the shader does.
func Value(x, y, evolve float32) float32 {
	e := Fract(evolve * 0.01)
	cx := x * e
	cy := y * e
	inner1 := Fract(cx * evolve / math32.Pow(math32.Abs(cy), 0.05))
	inner2 := Fract(cx*2.4/cy*23.0 + math32.Pow(math32.Abs(cy/22.4), 3.3))
	term := 2.0 / Fract(inner2*inner1)
	return Fract(23.0 * Fract(term))
}

// Frame renders a width x height grayscale frame at time t.
//
// Pixels are sampled at their centres with a bottom-left origin, matching
// gl_FragCoord, and stored top row first. Non-finite values render black.
func Frame(width, height int, t float32) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		fy := float32(height-1-row) + 0.5
		for col := 0; col < width; col++ {
			img.SetGray(col, row, color.Gray{Y: Intensity(Value(float32(col)+0.5, fy, t))})
		}
	}
	return img
}

// Intensity maps a noise value onto an 8-bit channel the way a UNORM
// framebuffer stores it: clamped to [0, 1], rounded, NaN as zero.
func Intensity(v float32) uint8 {
	if math32.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
