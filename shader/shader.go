package shader

// Uniform and attribute names shared by every rendition of the noise program.
const (
	TimeUniform       = "u_time"
	ResolutionUniform = "u_resolution"
	PositionAttrib    = "a_position"
	PositionLocation  = 0
)

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 a_position;
void main() {
    gl_Position = vec4(a_position, 0.0, 1.0);
}
`

// ──────────────────────────────────── GLES ──────────────────────────────────────

const vertexShaderSourceGLES = `#version 300 es
layout (location = 0) in vec2 a_position;
void main() {
    gl_Position = vec4(a_position, 0.0, 1.0);
}
`

// ─────────────────────────────────── WebGL 2 ────────────────────────────────────

// The noise fragment is authored once for WebGL 2 and translated to the
// desktop or GLES dialect at startup. u_resolution is declared for
// interface compatibility; the noise does not read it.
const noiseFragmentShaderSource = `#version 300 es
precision highp float;

uniform float u_time;
uniform vec2  u_resolution;

out vec4 fragColor;

float noise(vec2 pos, float evolve) {
    float e  = fract(evolve * 0.01);
    float cx = pos.x * e;
    float cy = pos.y * e;
    float inner1 = fract(cx * evolve / pow(abs(cy), 0.05));
    float inner2 = fract(cx * 2.4 / cy * 23.0 + pow(abs(cy / 22.4), 3.3));
    return fract(23.0 * fract(2.0 / fract(inner2 * inner1)));
}

void main() {
    float n = noise(gl_FragCoord.xy, u_time);
    fragColor = vec4(vec3(n), 1.0);
}
`

// ─────────────────────────────────── WebGL 1 ────────────────────────────────────

const vertexShaderSourceWebGL = `
attribute vec4 a_position;
void main() {
    gl_Position = a_position;
}
`

const noiseFragmentShaderSourceWebGL = `
precision highp float;
uniform float u_time;
uniform vec2 u_resolution;

float noise(vec2 pos, float evolve) {
    float e  = fract(evolve * 0.01);
    float cx = pos.x * e;
    float cy = pos.y * e;
    float inner1 = fract(cx * evolve / pow(abs(cy), 0.05));
    float inner2 = fract(cx * 2.4 / cy * 23.0 + pow(abs(cy / 22.4), 3.3));
    return fract(23.0 * fract(2.0 / fract(inner2 * inner1)));
}

void main() {
    float n = noise(gl_FragCoord.xy, u_time);
    gl_FragColor = vec4(vec3(n), 1.0);
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

func GenerateVertexShader(isGLES bool) string {
	if isGLES {
		return vertexShaderSourceGLES
	}
	return vertexShaderSourceGL
}

// GetNoiseFragmentShader returns the WebGL 2 source that goes through the
// translator.
func GetNoiseFragmentShader() string {
	return noiseFragmentShaderSource
}

// WebGL returns the vertex and fragment sources for a WebGL 1 context,
// which compile as-is in the browser.
func WebGL() (vertex, fragment string) {
	return vertexShaderSourceWebGL, noiseFragmentShaderSourceWebGL
}
