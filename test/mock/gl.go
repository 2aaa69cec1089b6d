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

package mock

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/glbench/gles"
)

// GL implements the gles.API interface. Objects are given increasing handles
// starting at one. The exported fields can be changed to alter the behaviour
// of the implementation.
type GL struct {
	Calls *Calls

	// stages that fail to compile and the log returned for the failure
	FailCompile map[gles.Stage]string

	// log returned by a successful compilation
	CompileWarning string

	// if not empty the program fails to link with this log
	FailLink string

	// attribute or uniform names that cannot be resolved
	Unresolved []string

	// called on every TexImageRGBA()
	OnTexImage func()

	// record of uploads
	Uploads     int
	UploadBytes int
	LastUpload  []byte

	// live objects
	Shaders  map[gles.Shader]gles.Stage
	Programs map[gles.Program]bool
	Textures map[gles.Texture]bool
	Buffers  map[gles.Buffer][]float32

	// state
	Alignment    int
	ViewportRect [4]int

	handle uint32
	locs   map[string]gles.Location
}

// NewGL is the preferred method of initialisation for the GL type.
func NewGL(calls *Calls) *GL {
	return &GL{
		Calls:       calls,
		FailCompile: make(map[gles.Stage]string),
		Shaders:     make(map[gles.Shader]gles.Stage),
		Programs:    make(map[gles.Program]bool),
		Textures:    make(map[gles.Texture]bool),
		Buffers:     make(map[gles.Buffer][]float32),
		Alignment:   4,
		locs:        make(map[string]gles.Location),
	}
}

func (gl *GL) next() uint32 {
	gl.handle++
	return gl.handle
}

// Live returns the number of objects that have been created and not deleted.
func (gl *GL) Live() int {
	return len(gl.Shaders) + len(gl.Programs) + len(gl.Textures) + len(gl.Buffers)
}

func (gl *GL) Strings() gles.Strings {
	return gles.Strings{
		Vendor:   "mock",
		Renderer: "mock renderer",
		Version:  "OpenGL ES 2.0 mock",
		GLSL:     "OpenGL ES GLSL ES 1.00",
	}
}

func (gl *GL) CreateShader(stage gles.Stage) gles.Shader {
	s := gles.Shader(gl.next())
	gl.Shaders[s] = stage
	gl.Calls.add("CreateShader", stage)
	return s
}

func (gl *GL) CompileShader(shader gles.Shader, source string) (bool, string) {
	stage := gl.Shaders[shader]
	gl.Calls.add("CompileShader", stage)
	if log, ok := gl.FailCompile[stage]; ok {
		return false, log
	}
	return true, gl.CompileWarning
}

func (gl *GL) DeleteShader(shader gles.Shader) {
	gl.Calls.add("DeleteShader", gl.Shaders[shader])
	delete(gl.Shaders, shader)
}

func (gl *GL) CreateProgram() gles.Program {
	p := gles.Program(gl.next())
	gl.Programs[p] = true
	gl.Calls.add("CreateProgram")
	return p
}

func (gl *GL) AttachShader(program gles.Program, shader gles.Shader) {
	gl.Calls.add("AttachShader", gl.Shaders[shader])
}

func (gl *GL) LinkProgram(program gles.Program) (bool, string) {
	gl.Calls.add("LinkProgram")
	if gl.FailLink != "" {
		return false, gl.FailLink
	}
	return true, ""
}

func (gl *GL) UseProgram(program gles.Program) {
	gl.Calls.add("UseProgram")
}

func (gl *GL) DeleteProgram(program gles.Program) {
	gl.Calls.add("DeleteProgram")
	delete(gl.Programs, program)
}

func (gl *GL) location(name string) gles.Location {
	if slices.Contains(gl.Unresolved, name) {
		return -1
	}
	if l, ok := gl.locs[name]; ok {
		return l
	}
	l := gles.Location(len(gl.locs))
	gl.locs[name] = l
	return l
}

func (gl *GL) AttribLocation(program gles.Program, name string) gles.Location {
	gl.Calls.add("AttribLocation", name)
	return gl.location(name)
}

func (gl *GL) UniformLocation(program gles.Program, name string) gles.Location {
	gl.Calls.add("UniformLocation", name)
	return gl.location(name)
}

func (gl *GL) GenTexture() gles.Texture {
	t := gles.Texture(gl.next())
	gl.Textures[t] = true
	gl.Calls.add("GenTexture")
	return t
}

func (gl *GL) DeleteTexture(texture gles.Texture) {
	gl.Calls.add("DeleteTexture")
	delete(gl.Textures, texture)
}

func (gl *GL) ActiveTexture(unit int) {
	gl.Calls.add("ActiveTexture", unit)
}

func (gl *GL) BindTexture(texture gles.Texture) {
	gl.Calls.add("BindTexture")
}

func (gl *GL) UnpackAlignment(alignment int) {
	gl.Calls.add("UnpackAlignment", alignment)
	gl.Alignment = alignment
}

func (gl *GL) TexImageRGBA(width int, height int, pix []byte) {
	gl.Calls.add("TexImageRGBA", width, height)
	if len(pix) != width*height*4 {
		panic(fmt.Sprintf("mock: pixel data is %d bytes for %dx%d image", len(pix), width, height))
	}
	gl.Uploads++
	gl.UploadBytes += len(pix)
	gl.LastUpload = pix
	if gl.OnTexImage != nil {
		gl.OnTexImage()
	}
}

func (gl *GL) TexFilterNearest() {
	gl.Calls.add("TexFilterNearest")
}

func (gl *GL) GenBuffer() gles.Buffer {
	b := gles.Buffer(gl.next())
	gl.Buffers[b] = nil
	gl.Calls.add("GenBuffer")
	return b
}

func (gl *GL) DeleteBuffer(buffer gles.Buffer) {
	gl.Calls.add("DeleteBuffer")
	delete(gl.Buffers, buffer)
}

func (gl *GL) BufferStatic(buffer gles.Buffer, data []float32) {
	gl.Calls.add("BufferStatic", len(data))
	gl.Buffers[buffer] = slices.Clone(data)
}

func (gl *GL) VertexAttrib(loc gles.Location, buffer gles.Buffer, size int, stride int, offset int) {
	gl.Calls.add("VertexAttrib", size, stride, offset)
}

func (gl *GL) Uniform1i(loc gles.Location, v int) {
	gl.Calls.add("Uniform1i", v)
}

func (gl *GL) Viewport(x, y, width, height int) {
	gl.Calls.add("Viewport", x, y, width, height)
	gl.ViewportRect = [4]int{x, y, width, height}
}

func (gl *GL) ClearColor(r, g, b, a float32) {
	gl.Calls.add("ClearColor")
}

func (gl *GL) DrawTriangleStrip(first int, count int) {
	gl.Calls.add("DrawTriangleStrip", first, count)
}

func (gl *GL) Finish() {
	gl.Calls.add("Finish")
}

func (gl *GL) Error() error {
	return nil
}
