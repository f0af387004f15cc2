package translator

import (
	"context"
	"fmt"
	"log"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator returns the process-wide translator, creating it on first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
		if translatorErr == nil {
			log.Printf("Shader translator initialized")
		}
	})
	return translator, translatorErr
}

// Fragment is a translated fragment shader.
type Fragment struct {
	Code      string
	Variables map[string]gst.ShaderVariable
}

// TranslateFragment turns WebGL 2 fragment source into the dialect of the
// current context: ESSL for GLES, GLSL 4.10 otherwise.
func TranslateFragment(source string, isGLES bool) (*Fragment, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader translator: %w", err)
	}
	outputFormat := gst.OutputFormatGLSL410
	if isGLES {
		outputFormat = gst.OutputFormatESSL
	}
	fs, err := t.TranslateShader(source, "fragment", gst.ShaderSpecWebGL2, outputFormat)
	if err != nil {
		return nil, fmt.Errorf("fragment shader translation failed: %w", err)
	}
	return &Fragment{Code: fs.Code, Variables: fs.Variables}, nil
}

// MappedName returns the translated identifier for a source uniform, or the
// source name itself when the translator did not rename it.
func (f *Fragment) MappedName(name string) string {
	if v, ok := f.Variables[name]; ok && v.MappedName != "" {
		return v.MappedName
	}
	return name
}
