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

// Package x11egl is a presentation backend for the X Window System. The
// surface is a top-level X window and the rendering context is created with
// EGL.
//
// libX11 and libEGL are loaded when the backend is first opened, so the
// package can be built without cgo or development headers. If either library
// cannot be loaded then Open() returns an error wrapping
// platform.ErrConnection.
//
// The window accepts key presses and the window manager's close request.
// Either will cancel a running benchmark.
package x11egl
