package translator

import (
	"testing"

	gst "github.com/richinsley/goshadertranslator"
	"github.com/stretchr/testify/assert"
)

func TestMappedName(t *testing.T) {
	f := &Fragment{Variables: map[string]gst.ShaderVariable{
		"u_time":  {MappedName: "_uu_time"},
		"u_empty": {},
	}}
	assert.Equal(t, "_uu_time", f.MappedName("u_time"))
	assert.Equal(t, "u_empty", f.MappedName("u_empty"))
	assert.Equal(t, "u_resolution", f.MappedName("u_resolution"))

	var none Fragment
	assert.Equal(t, "u_time", none.MappedName("u_time"))
}
