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

// Package gles defines the small set of OpenGL ES 2.0 entry points used by the
// benchmark. The API interface allows the pipeline and the benchmark loop to
// be exercised without a GPU. The ES2 type is the implementation used when a
// real rendering context is current.
package gles

import (
	"errors"
	"fmt"
)

// Stage of a shader.
type Stage int

// List of valid Stage values.
const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Object handles. A value of zero is never a valid object.
type (
	Shader  uint32
	Program uint32
	Texture uint32
	Buffer  uint32
)

// Location of an attribute or uniform in a linked program. A negative value
// indicates that the name could not be resolved.
type Location int32

// Valid returns true if the location refers to a real binding.
func (l Location) Valid() bool {
	return l >= 0
}

// Strings describes the GL implementation.
type Strings struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// ErrGL is wrapped by any error reported by the GL implementation.
var ErrGL = errors.New("gl error")

// API is the subset of OpenGL ES 2.0 used by the benchmark. All functions must
// be called from the thread on which the rendering context is current.
type API interface {
	Strings() Strings

	CreateShader(stage Stage) Shader
	// CompileShader sets the source for the shader and compiles it. The info
	// log is returned regardless of success
	CompileShader(shader Shader, source string) (bool, string)
	DeleteShader(shader Shader)

	CreateProgram() Program
	AttachShader(program Program, shader Shader)
	// LinkProgram links the program. The info log is returned regardless of
	// success
	LinkProgram(program Program) (bool, string)
	UseProgram(program Program)
	DeleteProgram(program Program)
	AttribLocation(program Program, name string) Location
	UniformLocation(program Program, name string) Location

	GenTexture() Texture
	DeleteTexture(texture Texture)
	ActiveTexture(unit int)
	BindTexture(texture Texture)
	UnpackAlignment(alignment int)
	// TexImageRGBA specifies a two dimensional RGBA image for the currently
	// bound texture
	TexImageRGBA(width int, height int, pix []byte)
	TexFilterNearest()

	GenBuffer() Buffer
	DeleteBuffer(buffer Buffer)
	// BufferStatic uploads data to the buffer with a static usage hint
	BufferStatic(buffer Buffer, data []float32)
	// VertexAttrib points the attribute at a region of the buffer and
	// enables it. Size, stride and offset are in floats
	VertexAttrib(loc Location, buffer Buffer, size int, stride int, offset int)
	Uniform1i(loc Location, v int)

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	DrawTriangleStrip(first int, count int)
	Finish()

	// Error returns the oldest GL error flag as a Go error, or nil
	Error() error
}
