package animation

import (
	"context"
	"log"
)

// Surface is the part of a graphics context the loop drives.
type Surface interface {
	ShouldClose() bool
	// EndFrame presents the frame and dispatches pending input events.
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	SetClickCallback(func())
	SetResizeCallback(func(width, height int))
}

// Drawer issues the GPU work for one frame.
type Drawer interface {
	Viewport(width, height int)
	Draw(f Frame)
}

// FrameObserver is notified after every drawn frame.
type FrameObserver interface {
	ObserveFrame(f Frame)
}

type Loop struct {
	surface   Surface
	drawer    Drawer
	state     *State
	observers []FrameObserver
}

// NewLoop binds the drawer to the surface, sizes the viewport to the current
// framebuffer and installs the click and resize handlers.
func NewLoop(surface Surface, drawer Drawer) *Loop {
	width, height := surface.GetFramebufferSize()
	l := &Loop{
		surface: surface,
		drawer:  drawer,
		state:   NewState(width, height),
	}
	drawer.Viewport(width, height)
	surface.SetClickCallback(l.handleClick)
	surface.SetResizeCallback(l.handleResize)
	return l
}

func (l *Loop) State() *State { return l.state }

func (l *Loop) AddObserver(o FrameObserver) {
	l.observers = append(l.observers, o)
}

func (l *Loop) handleClick() {
	if l.state.TogglePause() {
		log.Printf("Paused at t=%.3fs", l.state.Time())
	} else {
		log.Println("Resumed")
	}
}

func (l *Loop) handleResize(width, height int) {
	l.state.Resize(width, height)
	w, h := l.state.Size()
	l.drawer.Viewport(w, h)
	log.Printf("Surface resized to %dx%d", w, h)
}

// Step renders exactly one frame without presenting it.
func (l *Loop) Step() Frame {
	f := l.state.Next(l.surface.Time())
	l.drawer.Draw(f)
	for _, o := range l.observers {
		o.ObserveFrame(f)
	}
	return f
}

// Run renders and presents frames until ctx is cancelled or the surface
// asks to close. Input handlers run inside EndFrame, so their effects are
// visible to the following frame.
func (l *Loop) Run(ctx context.Context) error {
	for !l.surface.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		l.Step()
		l.surface.EndFrame()
	}
	return nil
}
