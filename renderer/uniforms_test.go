package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	gst "github.com/richinsley/goshadertranslator"
	"github.com/stretchr/testify/assert"

	"github.com/richinsley/staticnoise/animation"
	"github.com/richinsley/staticnoise/noise"
	"github.com/richinsley/staticnoise/probe"
	xlate "github.com/richinsley/staticnoise/translator"
)

type uniformCall struct {
	loc  int32
	vals []float32
}

type fakeUniforms struct {
	calls []uniformCall
}

func (u *fakeUniforms) Uniform1f(loc int32, v float32) {
	u.calls = append(u.calls, uniformCall{loc, []float32{v}})
}

func (u *fakeUniforms) Uniform2f(loc int32, x, y float32) {
	u.calls = append(u.calls, uniformCall{loc, []float32{x, y}})
}

func TestApplyUniforms(t *testing.T) {
	res := mgl32.Vec2{640, 480}
	tests := []struct {
		name          string
		timeLoc       int32
		resolutionLoc int32
		frame         animation.Frame
		want          []uniformCall
	}{
		{
			name:    "running",
			timeLoc: 1, resolutionLoc: 2,
			frame: animation.Frame{Time: 3.5, Resolution: res},
			want:  []uniformCall{{1, []float32{3.5}}, {2, []float32{640, 480}}},
		},
		{
			name:    "paused keeps time",
			timeLoc: 1, resolutionLoc: 2,
			frame: animation.Frame{Time: 3.5, Resolution: res, Paused: true},
			want:  []uniformCall{{2, []float32{640, 480}}},
		},
		{
			name:    "inactive resolution",
			timeLoc: 0, resolutionLoc: -1,
			frame: animation.Frame{Time: 1, Resolution: res},
			want:  []uniformCall{{0, []float32{1}}},
		},
		{
			name:    "nothing active",
			timeLoc: -1, resolutionLoc: -1,
			frame: animation.Frame{Time: 1, Resolution: res},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &fakeUniforms{}
			applyUniforms(u, tt.timeLoc, tt.resolutionLoc, tt.frame)
			assert.Equal(t, tt.want, u.calls)
		})
	}
}

func TestUniformLocation(t *testing.T) {
	fs := &xlate.Fragment{Variables: map[string]gst.ShaderVariable{
		"u_time": {MappedName: "_uu_time"},
	}}
	active := map[string]int32{"_uu_time": 3, "u_resolution": 5}
	var asked []string
	lookup := func(name string) int32 {
		asked = append(asked, name)
		if loc, ok := active[name]; ok {
			return loc
		}
		return -1
	}

	assert.Equal(t, int32(3), UniformLocation(fs, lookup, "u_time"))
	assert.Equal(t, []string{"_uu_time"}, asked)

	asked = nil
	assert.Equal(t, int32(5), UniformLocation(fs, lookup, "u_resolution"))
	assert.Equal(t, []string{"u_resolution"}, asked)

	// Mapped but inactive falls back to the plain name once.
	fs.Variables["u_mouse"] = gst.ShaderVariable{MappedName: "_uu_mouse"}
	asked = nil
	assert.Equal(t, int32(-1), UniformLocation(fs, lookup, "u_mouse"))
	assert.Equal(t, []string{"_uu_mouse", "u_mouse"}, asked)
}

func TestRecordFrameTime(t *testing.T) {
	f := RecordFrame(0, 30, 320, 240)
	assert.InDelta(t, 1.0/30, f.Time, 1e-6)
	assert.False(t, f.Paused)
	assert.Equal(t, mgl32.Vec2{320, 240}, f.Resolution)

	f = RecordFrame(44, 30, 320, 240)
	assert.Equal(t, int64(44), f.Index)
	assert.InDelta(t, 1.5, f.Time, 1e-6)
}

func TestFirstRecordedFrameHasNoise(t *testing.T) {
	f := RecordFrame(0, 60, 16, 16)
	img := noise.Frame(16, 16, f.Time)

	lit := 0
	for _, p := range img.Pix {
		if p != 0 {
			lit++
		}
	}
	assert.Greater(t, lit, len(img.Pix)/2)
	assert.Positive(t, probe.Analyze(img).StdDev)
}
