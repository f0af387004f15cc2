package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/richinsley/staticnoise/animation"
	"github.com/richinsley/staticnoise/audio"
	"github.com/richinsley/staticnoise/export"
	"github.com/richinsley/staticnoise/glfwcontext"
	"github.com/richinsley/staticnoise/graphics"
	"github.com/richinsley/staticnoise/headless"
	"github.com/richinsley/staticnoise/noise"
	"github.com/richinsley/staticnoise/options"
	"github.com/richinsley/staticnoise/probe"
	"github.com/richinsley/staticnoise/renderer"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func runProbe(opts *options.NoiseOptions) error {
	var img *image.Gray
	if *opts.ProbeFile != "" {
		var err error
		img, err = export.LoadGray(*opts.ProbeFile)
		if err != nil {
			return err
		}
		log.Printf("Analyzing %s", *opts.ProbeFile)
	} else {
		img = noise.Frame(*opts.Width, *opts.Height, float32(*opts.ProbeTime))
		log.Printf("Analyzing %dx%d frame at t=%.3fs", *opts.Width, *opts.Height, *opts.ProbeTime)
	}
	log.Printf("Frame stats: %s", probe.Analyze(img))
	return nil
}

// createContext opens the window, or for recording an EGL pbuffer with a
// hidden window as fallback. The returned func releases GLFW if it was used.
func createContext(opts *options.NoiseOptions) (graphics.Context, func(), error) {
	if *opts.Record {
		ctx, err := headless.NewHeadless(*opts.Width, *opts.Height)
		if err == nil {
			log.Println("Using EGL headless context")
			return ctx, func() {}, nil
		}
		log.Printf("EGL unavailable (%v), falling back to a hidden window", err)
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize graphics: %w", err)
	}
	win, err := glfwcontext.New(opts, !*opts.Record)
	if err != nil {
		glfwcontext.TerminateGraphics()
		return nil, nil, err
	}
	return win, glfwcontext.TerminateGraphics, nil
}

func startHiss(loop *animation.Loop) func() {
	hiss := audio.NewHiss()
	if err := hiss.Start(); err != nil {
		log.Printf("Audio disabled: %v", err)
		return func() {}
	}
	loop.AddObserver(hiss)
	return func() {
		if err := hiss.Stop(); err != nil {
			log.Printf("Failed to stop audio: %v", err)
		}
	}
}

func run(ctx context.Context, opts *options.NoiseOptions) error {
	gctx, release, err := createContext(opts)
	if err != nil {
		return fmt.Errorf("failed to create graphics context: %w", err)
	}
	defer release()
	defer gctx.Shutdown()

	r, err := renderer.NewRenderer(gctx)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	if *opts.Record {
		log.Println("Starting offscreen render loop...")
		if err := r.RunRecord(ctx, opts); err != nil {
			return fmt.Errorf("offscreen rendering failed: %w", err)
		}
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
		return nil
	}

	loop := animation.NewLoop(gctx, r)
	loop.AddObserver(animation.NewFPSCounter(gctx, 1.0))
	if *opts.Audio {
		stop := startHiss(loop)
		defer stop()
	}

	log.Println("Starting interactive render loop... click or press Space to pause, Escape to quit")
	return loop.Run(ctx)
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("Static noise shader viewer/recorder")
		flag.PrintDefaults()
		return
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	switch {
	case *opts.Snapshot != "":
		if err := export.SaveSnapshot(*opts.Snapshot, *opts.Width, *opts.Height, float32(*opts.ProbeTime)); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Printf("Wrote %s", *opts.Snapshot)
		return
	case *opts.Probe:
		if err := runProbe(opts); err != nil {
			log.Fatalf("Probe failed: %v", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("%v", err)
	}
}
