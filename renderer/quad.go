package renderer

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/staticnoise/shader"
)

// Quad is the static vertex buffer and its vertex array object.
type Quad struct {
	vao uint32
	vbo uint32
}

// NewQuad uploads the vertex data once with static usage and binds it as
// the only vertex attribute: two floats, not normalized, tightly packed.
func NewQuad() *Quad {
	q := &Quad{}
	data := shader.QuadVertices()
	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(shader.PositionLocation)
	gl.VertexAttribPointer(shader.PositionLocation, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return q
}

func (q *Quad) Draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, int32(shader.QuadVertexCount))
	gl.BindVertexArray(0)
}

func (q *Quad) Destroy() {
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteVertexArrays(1, &q.vao)
}
