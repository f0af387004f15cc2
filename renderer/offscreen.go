package renderer

import (
	"context"
	"fmt"
	"image"
	"log"

	"github.com/anthonynsimon/bild/transform"
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/staticnoise/animation"
	"github.com/richinsley/staticnoise/encoder"
	"github.com/richinsley/staticnoise/options"
	"github.com/richinsley/staticnoise/probe"
)

// Ring size of the frame channel between renderer and encoder.
const numBuffers = 3

// OffscreenRenderer is an RGBA8 framebuffer the noise is rendered into for
// readback.
type OffscreenRenderer struct {
	fbo       uint32
	textureID uint32
	width     int
	height    int
}

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	or := &OffscreenRenderer{width: width, height: height}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.GenTextures(1, &or.textureID)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, or.textureID, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		or.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete (status 0x%x)", status)
	}
	return or, nil
}

func (or *OffscreenRenderer) Destroy() {
	gl.DeleteFramebuffers(1, &or.fbo)
	gl.DeleteTextures(1, &or.textureID)
}

// readPixels returns the framebuffer contents bottom row first, as GL
// stores them.
func (or *OffscreenRenderer) readPixels() []byte {
	pixels := make([]byte, or.width*or.height*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, or.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return pixels
}

// RecordFrame returns the frame rendered at index i of a clip at fps:
// time advances by exactly 1/fps per frame regardless of wall time. The clip
// starts one frame in, since the noise is undefined at t=0.
func RecordFrame(i int64, fps, width, height int) animation.Frame {
	return animation.Frame{
		Index:      i,
		Time:       float32(float64(i+1) / float64(fps)),
		Resolution: mgl32.Vec2{float32(width), float32(height)},
	}
}

// RunRecord is the producer: it renders duration*fps frames offscreen and
// hands them to an ffmpeg encoder. It returns the encoder's result.
func (r *Renderer) RunRecord(ctx context.Context, options *options.NoiseOptions) error {
	width, height, fps := *options.Width, *options.Height, *options.FPS
	or, err := NewOffscreenRenderer(width, height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen renderer: %w", err)
	}
	defer or.Destroy()

	enc := encoder.Start(encoder.Config{
		Width:      width,
		Height:     height,
		FPS:        fps,
		Codec:      *options.Codec,
		OutputFile: *options.OutputFile,
		FFMPEGPath: *options.FFMPEGPath,
	}, numBuffers)

	totalFrames := int64(*options.Duration * float64(fps))
	log.Printf("Recording %d frames at %d fps to %s", totalFrames, fps, *options.OutputFile)

	for i := int64(0); i < totalFrames; i++ {
		if err := ctx.Err(); err != nil {
			enc.Close()
			return err
		}
		gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
		r.Viewport(width, height)
		r.Draw(RecordFrame(i, fps, width, height))
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

		pixels := or.readPixels()
		if i == 0 {
			logFrameStats(pixels, width, height)
		}
		if err := enc.Encode(&encoder.Frame{Pixels: pixels, PTS: i}); err != nil {
			log.Printf("Encoder stopped on frame %d: %v", i, err)
			break
		}
		if fps > 0 && (i+1)%int64(fps) == 0 {
			log.Printf("Rendered %d/%d frames", i+1, totalFrames)
		}
	}
	return enc.Close()
}

func logFrameStats(pixels []byte, width, height int) {
	img := &image.RGBA{Pix: pixels, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	stats := probe.Analyze(probe.ToGray(transform.FlipV(img)))
	log.Printf("First frame: %s", stats)
}
