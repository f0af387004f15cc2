package probe

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/staticnoise/noise"
)

func TestAnalyzeUniform(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 8))
	for i := range img.Pix {
		img.Pix[i] = 51
	}
	st := Analyze(img)
	assert.InDelta(t, 0.2, st.Mean, 1e-9)
	assert.InDelta(t, 0, st.StdDev, 1e-6)
	assert.InDelta(t, 0.2, st.Min, 1e-9)
	assert.InDelta(t, 0.2, st.Max, 1e-9)
	assert.Equal(t, float64(0), st.Flatness)
}

func TestAnalyzeCheckerboard(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	st := Analyze(img)
	assert.InDelta(t, 0.5, st.Mean, 1e-9)
	assert.InDelta(t, 0.5, st.StdDev, 1e-9)
	assert.Equal(t, 0.0, st.Min)
	assert.Equal(t, 1.0, st.Max)
}

func TestAnalyzeEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, Analyze(image.NewGray(image.Rect(0, 0, 0, 0))))
}

func TestSpectralFlatness(t *testing.T) {
	const n = 256
	sine := make([]float64, n)
	for i := range sine {
		sine[i] = math.Sin(2 * math.Pi * 8 * float64(i) / n)
	}
	assert.Less(t, SpectralFlatness(sine), 0.05)

	rng := rand.New(rand.NewSource(7))
	white := make([]float64, n)
	for i := range white {
		white[i] = rng.Float64()
	}
	f := SpectralFlatness(white)
	assert.Greater(t, f, 0.3)
	assert.LessOrEqual(t, f, 1.0)

	assert.Equal(t, 0.0, SpectralFlatness([]float64{1, 2}))
}

func TestNoiseFrameLooksWhite(t *testing.T) {
	st := Analyze(noise.Frame(128, 32, 7.3))
	require.Greater(t, st.Max, st.Min)
	assert.Greater(t, st.StdDev, 0.05)
	assert.Greater(t, st.Flatness, 0.05)
}

func TestToGray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	assert.Same(t, g, ToGray(g))

	src := image.NewRGBA(image.Rect(10, 20, 13, 22))
	for y := 20; y < 22; y++ {
		for x := 10; x < 13; x++ {
			v := uint8((x - 10) * 100)
			src.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	got := ToGray(src)
	require.Equal(t, image.Rect(0, 0, 3, 2), got.Bounds())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.InDelta(t, x*100, int(got.GrayAt(x, y).Y), 1)
		}
	}
}
