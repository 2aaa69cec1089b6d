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

package platform

import (
	"errors"
)

// Sentinel errors for backend failures.
var (
	// the display server or compositor could not be reached
	ErrConnection = errors.New("cannot connect to display")

	// the native surface could not be created
	ErrSurface = errors.New("cannot create native surface")
)

// Kind of presentation backend.
type Kind int

// List of valid Kind values.
const (
	// a top-level window on a windowing system
	WindowedX11Like Kind = iota

	// a surface owned by a system compositor
	CompositorSurfaceLike
)

func (k Kind) String() string {
	switch k {
	case WindowedX11Like:
		return "windowed"
	case CompositorSurfaceLike:
		return "compositor"
	}
	return "unknown"
}

// Backend creates connections to a presentation system.
type Backend interface {
	// short name of the backend. used on the command line and in results
	Name() string
	Kind() Kind
	Open() (Connection, error)
}

// Connection is a live connection to a presentation system.
type Connection interface {
	// CreateSurface creates a native surface of the specified size. The
	// surface is visible and ready for a rendering context when the function
	// returns
	CreateSurface(width int, height int) (Surface, error)

	// Display returns the rendering interface for the connection
	Display() Display

	// PollCancel drains pending input events and returns true if the user has
	// asked for the benchmark to end. The function never blocks
	PollCancel() bool

	Close() error
}

// Surface is a native drawable region of fixed size.
type Surface interface {
	Size() (int, int)

	// native handle of the surface, suitable for passing to the Display
	Native() uintptr

	Destroy() error
}

// Drawable is the Display's handle for a Surface that can be rendered to.
type Drawable uintptr

// RenderContext is the Display's handle for a rendering context.
type RenderContext uintptr

// ClientAPI names the rendering API that a Config must support.
type ClientAPI int

// List of valid ClientAPI values.
const (
	OpenGLES2 ClientAPI = iota
)

func (a ClientAPI) String() string {
	switch a {
	case OpenGLES2:
		return "OpenGL ES 2"
	}
	return "unknown"
}

// ConfigRequest lists the minimum requirements of a framebuffer
// configuration.
type ConfigRequest struct {
	// minimum colour buffer depth in bits
	BufferSize int

	API ClientAPI
}

// Config is a framebuffer configuration returned by Display.ChooseConfigs().
type Config struct {
	// opaque value meaningful only to the Display that returned it
	Handle uintptr

	ID         int
	BufferSize int
	Red        int
	Green      int
	Blue       int
	Alpha      int
}

// Info describes a Display.
type Info struct {
	Vendor     string
	Version    string
	ClientAPIs string
}

// Display is the EGL-like interface through which a rendering context is
// negotiated, made current and presented.
type Display interface {
	Initialize() error

	// ChooseConfigs returns the configurations matching the request. The
	// number of configurations returned is not limited to one. It is for the
	// caller to decide what to do with ambiguity
	ChooseConfigs(req ConfigRequest) ([]Config, error)

	CreateDrawable(cfg Config, surface Surface) (Drawable, error)
	CreateContext(cfg Config, clientVersion int) (RenderContext, error)

	// MakeCurrent binds the context and drawable to the calling thread
	MakeCurrent(d Drawable, ctx RenderContext) error

	// ReleaseCurrent unbinds any context from the calling thread
	ReleaseCurrent() error

	SwapBuffers(d Drawable) error

	// SwapInterval sets the minimum number of vertical retraces between
	// buffer swaps. An interval of zero disables synchronisation
	SwapInterval(interval int) error

	DestroyContext(ctx RenderContext) error
	DestroyDrawable(d Drawable) error
	Terminate() error

	Info() Info
}
