// Package animation holds the backend independent part of the noise
// animation: the pause/resize state and the per frame loop driving a
// Drawer on a Surface.
package animation

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is what a single draw needs to know.
type Frame struct {
	Index      int64
	Time       float32    // value of the time uniform, seconds
	Resolution mgl32.Vec2 // surface size in pixels
	Paused     bool       // the time uniform was not advanced for this frame
}

// State is the render context shared by the frame callback and the input
// handlers. It is only touched from the render thread.
type State struct {
	width, height int
	paused        bool
	started       bool
	start         float64
	time          float32
	frames        int64
}

func NewState(width, height int) *State {
	return &State{width: width, height: height}
}

// TogglePause flips between running and paused and returns the new value.
func (s *State) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

func (s *State) Paused() bool { return s.paused }

// Resize records the new surface size. Negative sizes are clamped to zero.
func (s *State) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
}

func (s *State) Size() (int, int) { return s.width, s.height }

// Time is the last value handed to the time uniform.
func (s *State) Time() float32 { return s.time }

// Next computes the next frame for the clock reading now (seconds). The
// first call anchors the animation so the first frame has time zero. While
// paused the time is left at its last value.
func (s *State) Next(now float64) Frame {
	if !s.started {
		s.started = true
		s.start = now
	}
	if !s.paused {
		s.time = float32(now - s.start)
	}
	f := Frame{
		Index:      s.frames,
		Time:       s.time,
		Resolution: mgl32.Vec2{float32(s.width), float32(s.height)},
		Paused:     s.paused,
	}
	s.frames++
	return f
}
