package audio

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/richinsley/staticnoise/animation"
)

func TestHissFollowsFrame(t *testing.T) {
	h := NewHiss()
	h.ObserveFrame(animation.Frame{Time: 1.5, Resolution: mgl32.Vec2{4, 2}})

	out := make([]float32, 16)
	h.fill(out)

	nonZero := 0
	for _, s := range out {
		assert.LessOrEqual(t, s, float32(defaultGain))
		assert.GreaterOrEqual(t, s, float32(-defaultGain))
		if s != 0 {
			nonZero++
		}
	}
	assert.Positive(t, nonZero)

	// 4x2 frame has 8 samples per pass, so the second half repeats the first.
	assert.Equal(t, out[:8], out[8:])
}

func TestHissSilentWhilePaused(t *testing.T) {
	h := NewHiss()
	h.ObserveFrame(animation.Frame{Time: 2, Resolution: mgl32.Vec2{8, 8}, Paused: true})

	out := []float32{1, 1, 1, 1}
	h.fill(out)
	assert.Equal(t, []float32{0, 0, 0, 0}, out)
}

func TestHissZeroTimeIsSilent(t *testing.T) {
	// The noise field is undefined at t=0; those samples are muted.
	h := NewHiss()
	h.ObserveFrame(animation.Frame{Time: 0, Resolution: mgl32.Vec2{2, 2}})

	out := make([]float32, 4)
	h.fill(out)
	for _, s := range out {
		assert.Zero(t, s)
	}
}

func TestStopWithoutStart(t *testing.T) {
	assert.NoError(t, NewHiss().Stop())
}
