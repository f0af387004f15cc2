package export

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/richinsley/staticnoise/noise"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, SaveSnapshot(path, 32, 16, 4.2))

	got, err := LoadGray(path)
	require.NoError(t, err)
	want := noise.Frame(32, 16, 4.2)
	require.Equal(t, want.Bounds().Size(), got.Bounds().Size())

	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			assert.InDelta(t, want.GrayAt(x, y).Y, got.GrayAt(x, y).Y, 1, "pixel %d,%d", x, y)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := LoadGray(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestLoadGrayConvertsRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			v := uint8(x*32 + y)
			src.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "rgba.png")
	require.NoError(t, imgio.Save(path, src, imgio.PNGEncoder()))

	got, err := LoadGray(path)
	require.NoError(t, err)
	require.Equal(t, image.Pt(8, 4), got.Bounds().Size())

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if x == 0 && y == 0 {
				continue
			}
			assert.InDelta(t, src.RGBAAt(x, y).R, got.GrayAt(x, y).Y, 1, "pixel %d,%d", x, y)
		}
	}
	// Pure red is darker than white and brighter than black.
	red := got.GrayAt(0, 0).Y
	assert.Greater(t, red, uint8(0))
	assert.Less(t, red, uint8(255))
}
