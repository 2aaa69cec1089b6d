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

// Package shaders contains the GLSL source for the benchmark's single shader
// program. The vertex shader passes the position and texture coordinate
// through unchanged. The fragment shader samples the bound texture.
//
// The binding names used by the shaders are exported so that the pipeline
// can resolve them.
package shaders

import _ "embed"

//go:embed "quad.vert"
var QuadVertexShader []byte

//go:embed "quad.frag"
var QuadFragmentShader []byte

// Names of the attributes and uniforms in the shader program.
const (
	PositionAttrib = "a_position"
	TexCoordAttrib = "a_texCoord"
	SamplerUniform = "s_texture"
)
