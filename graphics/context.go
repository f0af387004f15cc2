package graphics

// Context defines the interface for a drawable surface with its GL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	// EndFrame presents the back buffer and dispatches pending input events.
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	IsGLES() bool
	// SetClickCallback installs the handler for a primary click on the surface.
	SetClickCallback(func())
	// SetResizeCallback installs the handler for framebuffer size changes.
	SetResizeCallback(func(width, height int))
}
