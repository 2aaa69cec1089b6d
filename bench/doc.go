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

// Package bench runs the fill-rate and texture upload benchmarks.
//
// A Session is created with NewSession(). Creating a session opens the
// presentation backend, creates the surface, establishes and binds the
// rendering context and builds the pipeline. The session is then run with
// Run(), which draws frames until it is cancelled or until the configured
// number of frames has been drawn. Close() releases everything in the reverse
// order to which it was created.
//
// Every frame performs the same steps in the same order:
//
//  1. point the shader attributes at the quad's vertex data
//  2. bind the texture to unit zero and set the sampler uniform
//  3. in upload mode, upload the next image from the texture pool and time it
//  4. draw the quad
//  5. present the frame
//
// Every hundred frames a report is written to the output. The report format is
// compatible with earlier tools that parse the output:
//
//	fps: 59.940060
//	fill rate: 14.985015 MiB/s
//
// or in upload mode:
//
//	fps: 59.940060
//	texture upload rate: 812.345678 MiB/s
//
// Reports are also collected so that they can be summarised or written to a
// results file when the session ends.
package bench
