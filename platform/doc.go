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

// Package platform defines the capabilities that a presentation backend must
// provide to the benchmark. A backend connects to a display server (or
// compositor), creates a native surface of a fixed size and exposes an
// EGL-like Display through which a rendering context is negotiated.
//
// The benchmark never refers to a concrete backend. Implementations are in
// the sub-packages of this package:
//
//	x11egl        Xlib window and EGL, loaded at runtime
//	sdlplatform   SDL2 window and GLES context
//	glfwplatform  GLFW window and GLES context
//
// All functions of a Connection, Surface and Display must be called from the
// same OS thread. The main package locks the main goroutine to the main
// thread for this reason.
package platform
