package encoder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame represents a single rendered video frame's data, ready for encoding.
// Pixels are RGBA, bottom row first.
type Frame struct {
	Pixels []byte
	PTS    int64
}

type Config struct {
	Width      int
	Height     int
	FPS        int
	Codec      string // "h264" or "hevc"
	OutputFile string
	FFMPEGPath string
}

// ErrClosed is returned by Encode once the ffmpeg process has gone away.
var ErrClosed = errors.New("encoder closed")

// getArgs builds the ffmpeg arguments for raw RGBA frames on stdin.
func getArgs(cfg Config) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"r":       fmt.Sprintf("%d", cfg.FPS),
	}

	outputArgs = ffmpeg.KwArgs{
		// GL rows arrive bottom-up.
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}
	if cfg.Codec == "hevc" {
		outputArgs["c:v"] = "libx265"
		if strings.HasSuffix(cfg.OutputFile, ".mp4") {
			outputArgs["tag:v"] = "hvc1"
		}
	} else {
		outputArgs["c:v"] = "libx264"
	}
	return
}

// Encoder is the consumer side of a recording: frames written to it are
// piped to an ffmpeg process.
type Encoder struct {
	frames     chan *Frame
	done       chan error
	failed     chan struct{}
	failedOnce sync.Once
	cfg        Config
}

// Start launches ffmpeg and the goroutine feeding it. queue bounds the
// number of frames in flight.
func Start(cfg Config, queue int) *Encoder {
	e := &Encoder{
		frames: make(chan *Frame, queue),
		done:   make(chan error, 1),
		failed: make(chan struct{}),
		cfg:    cfg,
	}

	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := getArgs(cfg)
	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(cfg.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if cfg.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(cfg.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// Unblock the writer if ffmpeg exits before consuming everything.
		pipeReader.CloseWithError(ErrClosed)
		errc <- err
	}()

	go e.run(pipeWriter, errc)
	return e
}

func (e *Encoder) run(w *io.PipeWriter, errc <-chan error) {
	frameSize := e.cfg.Width * e.cfg.Height * 4
	var writeErr error
	for frame := range e.frames {
		if writeErr != nil {
			continue
		}
		if len(frame.Pixels) != frameSize {
			writeErr = fmt.Errorf("frame %d has %d bytes, want %d", frame.PTS, len(frame.Pixels), frameSize)
			w.CloseWithError(writeErr)
			e.markFailed()
			continue
		}
		if _, err := w.Write(frame.Pixels); err != nil {
			log.Printf("Error writing frame %d to ffmpeg: %v", frame.PTS, err)
			writeErr = err
			e.markFailed()
		}
	}
	w.Close()

	err := <-errc
	if err == nil && writeErr != nil && !errors.Is(writeErr, ErrClosed) {
		err = writeErr
	}
	if err != nil {
		err = fmt.Errorf("ffmpeg encoding failed: %w", err)
	}
	e.done <- err
}

func (e *Encoder) markFailed() {
	e.failedOnce.Do(func() { close(e.failed) })
}

// Encode queues a frame, blocking while the queue is full. It returns
// ErrClosed once writing to ffmpeg has failed; Close reports the cause.
func (e *Encoder) Encode(f *Frame) error {
	select {
	case <-e.failed:
		return ErrClosed
	default:
	}
	select {
	case <-e.failed:
		return ErrClosed
	case e.frames <- f:
		return nil
	}
}

// Close flushes the queued frames, waits for ffmpeg to exit and returns its
// result. It must be called exactly once.
func (e *Encoder) Close() error {
	close(e.frames)
	return <-e.done
}
