package shader

// The four corners of normalized device space, drawn as a triangle strip.
var quadVertices = [8]float32{
	-1.0, -1.0,
	1.0, -1.0,
	-1.0, 1.0,
	1.0, 1.0,
}

// QuadVertexCount is the number of vertices in the full-screen strip.
const QuadVertexCount = len(quadVertices) / 2

// QuadVertices returns a copy of the full-screen quad's vertex data.
func QuadVertices() []float32 {
	v := quadVertices
	return v[:]
}
