package options

import (
	"flag"
	"fmt"
)

type NoiseOptions struct {
	Width      *int
	Height     *int
	Fullscreen *bool
	VSync      *bool
	Help       *bool

	// Recording options
	Record     *bool
	Duration   *float64
	FPS        *int
	OutputFile *string
	Codec      *string
	FFMPEGPath *string

	Audio *bool // play audible static alongside the picture

	// CPU reference outputs, no GPU required
	Snapshot  *string
	Probe     *bool
	ProbeFile *string
	ProbeTime *float64
}

// Register defines the command-line flags on fs.
func Register(fs *flag.FlagSet) *NoiseOptions {
	return &NoiseOptions{
		Width:      fs.Int("width", 1280, "Width of the window or recording"),
		Height:     fs.Int("height", 720, "Height of the window or recording"),
		Fullscreen: fs.Bool("fullscreen", false, "Open fullscreen on the primary monitor"),
		VSync:      fs.Bool("vsync", true, "Synchronize buffer swaps with the display refresh"),
		Help:       fs.Bool("help", false, "Show help message"),

		Record:     fs.Bool("record", false, "Render offscreen and encode to a video file"),
		Duration:   fs.Float64("duration", 10.0, "Duration to record in seconds"),
		FPS:        fs.Int("fps", 60, "Frames per second for recording"),
		OutputFile: fs.String("output", "output.mp4", "Output file name for recording"),
		Codec:      fs.String("codec", "h264", "Video codec for recording: h264 or hevc"),
		FFMPEGPath: fs.String("ffmpeg", "", "Path to ffmpeg executable"),

		Audio: fs.Bool("audio", false, "Play audible static while the animation runs"),

		Snapshot:  fs.String("snapshot", "", "Write a CPU-rendered PNG frame to this path and exit"),
		Probe:     fs.Bool("probe", false, "Log statistics of a CPU-rendered frame and exit"),
		ProbeFile: fs.String("probe-file", "", "Analyze this PNG instead of a rendered frame (with -probe)"),
		ProbeTime: fs.Float64("time", 1.0, "Animation time in seconds for -snapshot and -probe"),
	}
}

// Validate checks the option values for consistency.
func (o *NoiseOptions) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *o.Width, *o.Height)
	}
	if *o.Record {
		if *o.FPS <= 0 {
			return fmt.Errorf("fps must be positive, got %d", *o.FPS)
		}
		if *o.Duration <= 0 {
			return fmt.Errorf("duration must be positive, got %g", *o.Duration)
		}
		if *o.OutputFile == "" {
			return fmt.Errorf("no output file specified")
		}
	}
	switch *o.Codec {
	case "h264", "hevc":
	default:
		return fmt.Errorf("unsupported codec %q", *o.Codec)
	}
	if *o.ProbeTime < 0 {
		return fmt.Errorf("time must not be negative, got %g", *o.ProbeTime)
	}
	return nil
}
