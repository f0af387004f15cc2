package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateToggle(t *testing.T) {
	s := NewState(10, 10)
	assert.False(t, s.Paused())
	assert.True(t, s.TogglePause())
	assert.True(t, s.Paused())
	assert.False(t, s.TogglePause())
}

func TestStateResizeClamps(t *testing.T) {
	s := NewState(10, 10)
	s.Resize(-5, 300)
	w, h := s.Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 300, h)
}

func TestStatePausedBeforeFirstFrame(t *testing.T) {
	s := NewState(4, 4)
	s.TogglePause()
	f := s.Next(100)
	assert.Equal(t, float32(0), f.Time)
	s.TogglePause()
	f = s.Next(101.5)
	assert.Equal(t, float32(1.5), f.Time)
}
