package animation

import "log"

// Clock reports seconds on a monotonic timeline.
type Clock interface {
	Time() float64
}

// FPSCounter logs the frame rate roughly once per interval of clock time.
type FPSCounter struct {
	clock    Clock
	interval float64
	logf     func(format string, v ...any)

	windowStart float64
	frames      int
	started     bool
}

func NewFPSCounter(clock Clock, interval float64) *FPSCounter {
	return &FPSCounter{clock: clock, interval: interval, logf: log.Printf}
}

func (c *FPSCounter) ObserveFrame(f Frame) {
	now := c.clock.Time()
	if !c.started {
		c.started = true
		c.windowStart = now
		return
	}
	c.frames++
	elapsed := now - c.windowStart
	if elapsed < c.interval {
		return
	}
	c.logf("%.1f fps (%.0fx%.0f, t=%.2fs)", float64(c.frames)/elapsed, f.Resolution.X(), f.Resolution.Y(), f.Time)
	c.frames = 0
	c.windowStart = now
}
