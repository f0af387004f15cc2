package shader

import "fmt"

// ShaderCompileError is returned when a shader stage fails to compile. Log
// holds the driver's info log.
type ShaderCompileError struct {
	Stage string
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// ShaderLinkError is returned when the compiled stages fail to link.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// TrimLog strips the NUL padding GL leaves on info logs.
func TrimLog(log string) string {
	for len(log) > 0 {
		c := log[len(log)-1]
		if c != 0 && c != '\n' && c != ' ' {
			break
		}
		log = log[:len(log)-1]
	}
	return log
}
