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

// Package pipeline builds the shader program and the texture object used by
// the benchmark. The pipeline is built once, with the rendering context
// current, and never changes.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/glbench/gles"
	"github.com/jetsetilly/glbench/logger"
	"github.com/jetsetilly/glbench/shaders"
	"github.com/jetsetilly/glbench/textures"
)

// ShaderCompileError is returned when a shader stage fails to compile. The
// Log field contains the diagnostic from the driver.
type ShaderCompileError struct {
	Stage gles.Stage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("pipeline: error compiling %s shader: %s", e.Stage, strings.TrimSpace(e.Log))
}

// ShaderLinkError is returned when the program fails to link.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("pipeline: error linking program: %s", strings.TrimSpace(e.Log))
}

// BindingResolutionError is returned when an attribute or uniform named by
// the pipeline does not exist in the linked program.
type BindingResolutionError struct {
	Name string
}

func (e *BindingResolutionError) Error() string {
	return fmt.Sprintf("pipeline: unable to resolve binding: %s", e.Name)
}

// Handle is the result of a successful Build().
type Handle struct {
	Program  gles.Program
	Position gles.Location
	TexCoord gles.Location
	Sampler  gles.Location
	Texture  gles.Texture
}

// Build compiles and links the shader program, resolves the bindings and
// creates the texture with the initial image. The program is left in use and
// the texture is left bound to texture unit zero.
//
// Any objects created before an error is encountered are deleted.
func Build(gl gles.API, vertexSrc []byte, fragmentSrc []byte, initial textures.PixelBuffer) (*Handle, error) {
	vert, err := compile(gl, gles.VertexStage, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compile(gl, gles.FragmentStage, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(frag)

	h := &Handle{}

	h.Program = gl.CreateProgram()
	gl.AttachShader(h.Program, vert)
	gl.AttachShader(h.Program, frag)

	ok, log := gl.LinkProgram(h.Program)
	if !ok {
		gl.DeleteProgram(h.Program)
		return nil, &ShaderLinkError{Log: log}
	}
	if len(log) > 1 {
		logger.Logf(logger.Allow, "pipeline", "link: %s", log)
	}

	gl.UseProgram(h.Program)

	bindings := []struct {
		loc     *gles.Location
		name    string
		uniform bool
	}{
		{loc: &h.Position, name: shaders.PositionAttrib},
		{loc: &h.TexCoord, name: shaders.TexCoordAttrib},
		{loc: &h.Sampler, name: shaders.SamplerUniform, uniform: true},
	}

	for _, b := range bindings {
		if b.uniform {
			*b.loc = gl.UniformLocation(h.Program, b.name)
		} else {
			*b.loc = gl.AttribLocation(h.Program, b.name)
		}
		if !b.loc.Valid() {
			gl.DeleteProgram(h.Program)
			return nil, &BindingResolutionError{Name: b.name}
		}
	}

	// pixel data is tightly packed
	gl.UnpackAlignment(1)

	h.Texture = gl.GenTexture()
	gl.ActiveTexture(0)
	gl.BindTexture(h.Texture)
	gl.TexImageRGBA(initial.Width, initial.Height, initial.Pix)
	gl.TexFilterNearest()

	if err := gl.Error(); err != nil {
		h.Destroy(gl)
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	logger.Logf(logger.Allow, "pipeline", "built with %dx%d texture", initial.Width, initial.Height)

	return h, nil
}

// BuildDefault is the same as Build() but with the shaders from the shaders
// package.
func BuildDefault(gl gles.API, initial textures.PixelBuffer) (*Handle, error) {
	return Build(gl, shaders.QuadVertexShader, shaders.QuadFragmentShader, initial)
}

func compile(gl gles.API, stage gles.Stage, src []byte) (gles.Shader, error) {
	s := gl.CreateShader(stage)
	ok, log := gl.CompileShader(s, string(src))
	if !ok {
		gl.DeleteShader(s)
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}

	// some drivers return a log of a single character for a successful
	// compilation
	if len(log) > 1 {
		logger.Logf(logger.Allow, "pipeline", "%s shader: %s", stage, log)
	}

	return s, nil
}

// Destroy deletes the texture and the program.
func (h *Handle) Destroy(gl gles.API) {
	gl.DeleteTexture(h.Texture)
	gl.DeleteProgram(h.Program)
}
