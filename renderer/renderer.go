package renderer

import (
	"fmt"
	"log"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/staticnoise/animation"
	"github.com/richinsley/staticnoise/graphics"
	"github.com/richinsley/staticnoise/shader"
	xlate "github.com/richinsley/staticnoise/translator"
)

// Ensure gl.Init() is called only once.
var glInitOnce sync.Once

// Renderer owns the noise program and the full-screen quad on one context.
type Renderer struct {
	context       graphics.Context
	program       uint32
	quad          *Quad
	timeLoc       int32
	resolutionLoc int32
}

// NewRenderer makes ctx current, loads GL and builds the noise program.
func NewRenderer(ctx graphics.Context) (*Renderer, error) {
	r := &Renderer{context: ctx}
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
		if initErr == nil {
			log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
		}
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	fs, err := xlate.TranslateFragment(shader.GetNoiseFragmentShader(), ctx.IsGLES())
	if err != nil {
		return nil, err
	}
	r.program, err = NewProgram(shader.GenerateVertexShader(ctx.IsGLES()), fs.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to create noise program: %w", err)
	}

	lookup := func(name string) int32 {
		return gl.GetUniformLocation(r.program, gl.Str(name+"\x00"))
	}
	r.timeLoc = UniformLocation(fs, lookup, shader.TimeUniform)
	r.resolutionLoc = UniformLocation(fs, lookup, shader.ResolutionUniform)
	if r.resolutionLoc < 0 {
		log.Printf("%s is not active in the compiled program", shader.ResolutionUniform)
	}

	r.quad = NewQuad()
	gl.UseProgram(r.program)
	return r, nil
}

// Viewport maps the drawable area to the whole surface.
func (r *Renderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Draw sets the uniforms for f and draws the quad into the bound framebuffer.
// The time uniform keeps its previous value for paused frames.
func (r *Renderer) Draw(f animation.Frame) {
	gl.UseProgram(r.program)
	applyUniforms(glUniforms{}, r.timeLoc, r.resolutionLoc, f)
	r.quad.Draw()
}

func (r *Renderer) Shutdown() {
	if r.quad != nil {
		r.quad.Destroy()
	}
	gl.DeleteProgram(r.program)
}
