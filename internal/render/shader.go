package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// buildProgram compiles and links a vertex/fragment shader pair from
// disk.
func buildProgram(vertexPath, fragmentPath string) (uint32, error) {
	vertexShader, err := loadShader(vertexPath, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := loadShader(fragmentPath, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vertexShader)
	gl.AttachShader(prog, fragmentShader)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vertexShader)
	gl.DetachShader(prog, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("render: link %s + %s: %s", vertexPath, fragmentPath, infoLog)
	}
	return prog, nil
}

func loadShader(path string, shaderType uint32) (uint32, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("render: read shader %s: %w", path, err)
	}

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(string(source) + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("render: compile shader %s: %s", path, infoLog)
	}
	return shader, nil
}
