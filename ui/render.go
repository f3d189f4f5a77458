package ui

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"chip8go/chip8"
)

const vertexShader = `
#version 330 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec2 uv;
out vec2 texCoord;
void main() {
	gl_Position = vec4(position, 0.0, 1.0);
	texCoord = uv;
}
` + "\x00"

const fragmentShader = `
#version 330 core
in vec2 texCoord;
out vec4 color;
uniform sampler2D screen;
void main() {
	color = texture(screen, texCoord);
}
` + "\x00"

// Two triangles covering the viewport. The v axis is flipped so that
// row 0 of the framebuffer ends up at the top of the window.
var quad = []float32{
	// x, y, u, v
	-1, 1, 0, 0,
	-1, -1, 0, 1,
	1, -1, 1, 1,
	-1, 1, 0, 0,
	1, -1, 1, 1,
	1, 1, 1, 0,
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("Failed to compile shader: %v", log)
	}
	return shader, nil
}

// newProgram compiles the shaders and prepares the fullscreen quad and
// the framebuffer texture.
func newProgram() (uint32, error) {
	vs, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("Failed to link program")
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return program, nil
}

// updateTexture uploads the framebuffer snapshot as a 64x32 texture and
// redraws the quad.
func updateTexture(grid [chip8.DisplayHeight][chip8.DisplayWidth]byte) {
	var pixels [chip8.DisplayWidth * chip8.DisplayHeight * 3]byte
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if grid[y][x] == 1 {
				offset := (y*chip8.DisplayWidth + x) * 3
				pixels[offset] = 0xFF
				pixels[offset+1] = 0xFF
				pixels[offset+2] = 0xFF
			}
		}
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, chip8.DisplayWidth, chip8.DisplayHeight, 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels[:]))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}
