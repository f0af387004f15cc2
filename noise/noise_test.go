package noise

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFract(t *testing.T) {
	assert.Equal(t, float32(0.25), Fract(1.25))
	assert.Equal(t, float32(0.75), Fract(-1.25))
	assert.Equal(t, float32(0), Fract(3))
	assert.True(t, math32.IsNaN(Fract(math32.Inf(1))))
	assert.True(t, math32.IsNaN(Fract(math32.NaN())))

	for _, v := range []float32{0, 0.5, 1e-7, 12345.678, 9.999999, 1e6} {
		f := Fract(v)
		assert.GreaterOrEqual(t, f, float32(0), "fract(%v)", v)
		assert.Less(t, f, float32(1), "fract(%v)", v)
	}
}

func TestValueDeterministic(t *testing.T) {
	for _, tm := range []float32{0.5, 1, 17.25, 123.456} {
		first := Value(100.5, 200.5, tm)
		for i := 0; i < 10; i++ {
			got := Value(100.5, 200.5, tm)
			if math32.IsNaN(first) {
				assert.True(t, math32.IsNaN(got))
				continue
			}
			assert.Equal(t, first, got)
		}
	}
}

func TestValueRange(t *testing.T) {
	finite := 0
	for _, tm := range []float32{0.1, 1, 2.5, 33, 99.9, 250} {
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				v := Value(float32(x)+0.5, float32(y)+0.5, tm)
				if math32.IsNaN(v) || math32.IsInf(v, 0) {
					continue
				}
				finite++
				require.GreaterOrEqual(t, v, float32(0), "x=%d y=%d t=%v", x, y, tm)
				require.Less(t, v, float32(1), "x=%d y=%d t=%v", x, y, tm)
			}
		}
	}
	assert.Greater(t, finite, 0)
}

func TestValueZeroTimeIsDegenerate(t *testing.T) {
	// e == 0 collapses every coordinate to zero and 0/0 follows.
	assert.True(t, math32.IsNaN(Value(10.5, 10.5, 0)))
}

func TestFrameOrientation(t *testing.T) {
	const w, h = 8, 4
	tm := float32(3.5)
	img := Frame(w, h, tm)
	require.Equal(t, w, img.Bounds().Dx())
	require.Equal(t, h, img.Bounds().Dy())

	// The top image row is the highest gl_FragCoord row.
	for col := 0; col < w; col++ {
		assert.Equal(t, Intensity(Value(float32(col)+0.5, float32(h)-0.5, tm)), img.GrayAt(col, 0).Y)
		assert.Equal(t, Intensity(Value(float32(col)+0.5, 0.5, tm)), img.GrayAt(col, h-1).Y)
	}
}

func TestIntensity(t *testing.T) {
	assert.Equal(t, uint8(0), Intensity(float32(math.NaN())))
	assert.Equal(t, uint8(0), Intensity(-0.2))
	assert.Equal(t, uint8(255), Intensity(1))
	assert.Equal(t, uint8(255), Intensity(math32.Inf(1)))
	assert.Equal(t, uint8(128), Intensity(0.5))
}
