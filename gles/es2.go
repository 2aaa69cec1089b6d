// This file is part of glbench.
//
// glbench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glbench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glbench.  If not, see <https://www.gnu.org/licenses/>.

package gles

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.1/gles2"
	"github.com/jetsetilly/glbench/logger"
)

// size in bytes of a GLfloat
const floatSize = 4

// ES2 implements the API interface using the go-gl bindings.
type ES2 struct {
	strings Strings
}

// NewES2 initialises the GL function pointers. Must be called with a rendering
// context current on the calling thread.
func NewES2() (*ES2, error) {
	if err := gles2.Init(); err != nil {
		return nil, fmt.Errorf("gles: %w", err)
	}

	es := &ES2{
		strings: Strings{
			Vendor:   gles2.GoStr(gles2.GetString(gles2.VENDOR)),
			Renderer: gles2.GoStr(gles2.GetString(gles2.RENDERER)),
			Version:  gles2.GoStr(gles2.GetString(gles2.VERSION)),
			GLSL:     gles2.GoStr(gles2.GetString(gles2.SHADING_LANGUAGE_VERSION)),
		},
	}

	logger.Logf(logger.Allow, "gles", "vendor: %s", es.strings.Vendor)
	logger.Logf(logger.Allow, "gles", "renderer: %s", es.strings.Renderer)
	logger.Logf(logger.Allow, "gles", "version: %s", es.strings.Version)
	logger.Logf(logger.Allow, "gles", "glsl: %s", es.strings.GLSL)

	return es, nil
}

func (es *ES2) Strings() Strings {
	return es.strings
}

func (es *ES2) CreateShader(stage Stage) Shader {
	switch stage {
	case VertexStage:
		return Shader(gles2.CreateShader(gles2.VERTEX_SHADER))
	case FragmentStage:
		return Shader(gles2.CreateShader(gles2.FRAGMENT_SHADER))
	}
	return 0
}

func (es *ES2) CompileShader(shader Shader, source string) (bool, string) {
	src, free := gles2.Strs(source + "\x00")
	gles2.ShaderSource(uint32(shader), 1, src, nil)
	free()
	gles2.CompileShader(uint32(shader))

	var status int32
	gles2.GetShaderiv(uint32(shader), gles2.COMPILE_STATUS, &status)

	var length int32
	gles2.GetShaderiv(uint32(shader), gles2.INFO_LOG_LENGTH, &length)

	var log string
	if length > 1 {
		buf := strings.Repeat("\x00", int(length+1))
		gles2.GetShaderInfoLog(uint32(shader), length, nil, gles2.Str(buf))
		log = strings.TrimRight(buf, "\x00")
	}

	return status != gles2.FALSE, log
}

func (es *ES2) DeleteShader(shader Shader) {
	gles2.DeleteShader(uint32(shader))
}

func (es *ES2) CreateProgram() Program {
	return Program(gles2.CreateProgram())
}

func (es *ES2) AttachShader(program Program, shader Shader) {
	gles2.AttachShader(uint32(program), uint32(shader))
}

func (es *ES2) LinkProgram(program Program) (bool, string) {
	gles2.LinkProgram(uint32(program))

	var status int32
	gles2.GetProgramiv(uint32(program), gles2.LINK_STATUS, &status)

	var length int32
	gles2.GetProgramiv(uint32(program), gles2.INFO_LOG_LENGTH, &length)

	var log string
	if length > 1 {
		buf := strings.Repeat("\x00", int(length+1))
		gles2.GetProgramInfoLog(uint32(program), length, nil, gles2.Str(buf))
		log = strings.TrimRight(buf, "\x00")
	}

	return status != gles2.FALSE, log
}

func (es *ES2) UseProgram(program Program) {
	gles2.UseProgram(uint32(program))
}

func (es *ES2) DeleteProgram(program Program) {
	gles2.DeleteProgram(uint32(program))
}

func (es *ES2) AttribLocation(program Program, name string) Location {
	return Location(gles2.GetAttribLocation(uint32(program), gles2.Str(name+"\x00")))
}

func (es *ES2) UniformLocation(program Program, name string) Location {
	return Location(gles2.GetUniformLocation(uint32(program), gles2.Str(name+"\x00")))
}

func (es *ES2) GenTexture() Texture {
	var t uint32
	gles2.GenTextures(1, &t)
	return Texture(t)
}

func (es *ES2) DeleteTexture(texture Texture) {
	t := uint32(texture)
	gles2.DeleteTextures(1, &t)
}

func (es *ES2) ActiveTexture(unit int) {
	gles2.ActiveTexture(gles2.TEXTURE0 + uint32(unit))
}

func (es *ES2) BindTexture(texture Texture) {
	gles2.BindTexture(gles2.TEXTURE_2D, uint32(texture))
}

func (es *ES2) UnpackAlignment(alignment int) {
	gles2.PixelStorei(gles2.UNPACK_ALIGNMENT, int32(alignment))
}

func (es *ES2) TexImageRGBA(width int, height int, pix []byte) {
	gles2.TexImage2D(gles2.TEXTURE_2D, 0, gles2.RGBA, int32(width), int32(height), 0,
		gles2.RGBA, gles2.UNSIGNED_BYTE, gles2.Ptr(pix))
}

func (es *ES2) TexFilterNearest() {
	gles2.TexParameteri(gles2.TEXTURE_2D, gles2.TEXTURE_MIN_FILTER, gles2.NEAREST)
	gles2.TexParameteri(gles2.TEXTURE_2D, gles2.TEXTURE_MAG_FILTER, gles2.NEAREST)
}

func (es *ES2) GenBuffer() Buffer {
	var b uint32
	gles2.GenBuffers(1, &b)
	return Buffer(b)
}

func (es *ES2) DeleteBuffer(buffer Buffer) {
	b := uint32(buffer)
	gles2.DeleteBuffers(1, &b)
}

func (es *ES2) BufferStatic(buffer Buffer, data []float32) {
	gles2.BindBuffer(gles2.ARRAY_BUFFER, uint32(buffer))
	gles2.BufferData(gles2.ARRAY_BUFFER, len(data)*floatSize, gles2.Ptr(data), gles2.STATIC_DRAW)
}

func (es *ES2) VertexAttrib(loc Location, buffer Buffer, size int, stride int, offset int) {
	gles2.BindBuffer(gles2.ARRAY_BUFFER, uint32(buffer))
	gles2.VertexAttribPointerWithOffset(uint32(loc), int32(size), gles2.FLOAT, false,
		int32(stride*floatSize), uintptr(offset*floatSize))
	gles2.EnableVertexAttribArray(uint32(loc))
}

func (es *ES2) Uniform1i(loc Location, v int) {
	gles2.Uniform1i(int32(loc), int32(v))
}

func (es *ES2) Viewport(x, y, width, height int) {
	gles2.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (es *ES2) ClearColor(r, g, b, a float32) {
	gles2.ClearColor(r, g, b, a)
}

func (es *ES2) DrawTriangleStrip(first int, count int) {
	gles2.DrawArrays(gles2.TRIANGLE_STRIP, int32(first), int32(count))
}

func (es *ES2) Finish() {
	gles2.Finish()
}

func (es *ES2) Error() error {
	switch e := gles2.GetError(); e {
	case gles2.NO_ERROR:
		return nil
	case gles2.INVALID_ENUM:
		return fmt.Errorf("%w: invalid enum", ErrGL)
	case gles2.INVALID_VALUE:
		return fmt.Errorf("%w: invalid value", ErrGL)
	case gles2.INVALID_OPERATION:
		return fmt.Errorf("%w: invalid operation", ErrGL)
	case gles2.OUT_OF_MEMORY:
		return fmt.Errorf("%w: out of memory", ErrGL)
	default:
		return fmt.Errorf("%w: %#04x", ErrGL, e)
	}
}
