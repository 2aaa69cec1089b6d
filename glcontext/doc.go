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

// Package glcontext negotiates, binds and releases the rendering context used
// by the benchmark.
//
// Establish() initialises the display, chooses a framebuffer configuration
// and creates a drawable for the native surface and a rendering context. The
// Context returned by Establish() cannot be used to draw anything. It must
// first be made current with MakeCurrent(), which returns a Current. Only a
// Current can present frames or load the GL entry points.
//
// Configuration negotiation is strict. Exactly one configuration must match
// the request. Finding none, or more than one, is an error (ErrConfiguration)
// and no attempt is made to choose between candidates.
//
// Only one Context may be current at any time. A Current may only be used by
// the goroutine that created it and the functions will panic if this is not
// the case.
package glcontext
