package audio

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/chewxy/math32"
	"github.com/gordonklaus/portaudio"

	"github.com/richinsley/staticnoise/animation"
	"github.com/richinsley/staticnoise/noise"
)

const (
	SampleRate      = 44100
	framesPerBuffer = 512
	defaultGain     = 0.25
)

// Hiss plays the noise field as audio. Each buffer walks one scanline of
// the current frame, so the sound follows the picture and stops while paused.
type Hiss struct {
	timeBits atomic.Uint32
	paused   atomic.Bool
	width    atomic.Int32
	height   atomic.Int32
	gain     float32

	// callback-owned
	col, row int

	stream *portaudio.Stream
}

func NewHiss() *Hiss {
	h := &Hiss{gain: defaultGain}
	h.width.Store(1)
	h.height.Store(1)
	return h
}

// ObserveFrame publishes the frame state to the audio callback.
func (h *Hiss) ObserveFrame(f animation.Frame) {
	h.timeBits.Store(math.Float32bits(f.Time))
	h.paused.Store(f.Paused)
	h.width.Store(int32(max(f.Resolution.X(), 1)))
	h.height.Store(int32(max(f.Resolution.Y(), 1)))
}

func (h *Hiss) fill(out []float32) {
	if h.paused.Load() {
		clear(out)
		return
	}
	t := math.Float32frombits(h.timeBits.Load())
	w := int(h.width.Load())
	ht := int(h.height.Load())
	for i := range out {
		if h.col >= w {
			h.col = 0
			h.row++
		}
		if h.row >= ht {
			h.row = 0
		}
		v := noise.Value(float32(h.col)+0.5, float32(h.row)+0.5, t)
		s := (2*v - 1) * h.gain
		if math32.IsNaN(s) || math32.IsInf(s, 0) {
			s = 0
		}
		out[i] = s
		h.col++
	}
}

func (h *Hiss) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize portaudio: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 1, SampleRate, framesPerBuffer, h.fill)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("failed to open audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("failed to start audio stream: %w", err)
	}
	h.stream = stream
	return nil
}

func (h *Hiss) Stop() error {
	if h.stream == nil {
		return nil
	}
	stream := h.stream
	h.stream = nil
	if err := stream.Stop(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	if err := stream.Close(); err != nil {
		portaudio.Terminate()
		return err
	}
	return portaudio.Terminate()
}
