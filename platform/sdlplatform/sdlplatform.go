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

// Package sdlplatform is a presentation backend using SDL2. SDL chooses the
// video driver so the surface may be a window on a desktop or, with the
// kmsdrm and wayland drivers, a surface owned by a compositor.
package sdlplatform

import (
	"fmt"
	"os"

	"github.com/jetsetilly/glbench/logger"
	"github.com/jetsetilly/glbench/platform"
	"github.com/jetsetilly/glbench/version"
	"github.com/veandco/go-sdl2/sdl"
)

// video drivers that present through a compositor rather than a window
// manager
var compositorDrivers = map[string]bool{
	"kmsdrm":  true,
	"wayland": true,
}

// Backend implements the platform.Backend interface for SDL.
type Backend struct {
	driver string
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Name() string {
	return "sdl"
}

// Kind returns the kind of presentation for the video driver. Before the
// backend has been opened the driver is predicted from the environment.
func (b *Backend) Kind() platform.Kind {
	driver := b.driver
	if driver == "" {
		driver = os.Getenv("SDL_VIDEODRIVER")
	}
	if compositorDrivers[driver] {
		return platform.CompositorSurfaceLike
	}
	return platform.WindowedX11Like
}

func (b *Backend) Open() (platform.Connection, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w: %w", platform.ErrConnection, err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_ES},
		{sdl.GL_CONTEXT_MAJOR_VERSION, 2},
		{sdl.GL_CONTEXT_MINOR_VERSION, 0},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_RED_SIZE, 8},
		{sdl.GL_GREEN_SIZE, 8},
		{sdl.GL_BLUE_SIZE, 8},
		{sdl.GL_ALPHA_SIZE, 8},
	}
	for _, a := range attrs {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w: %w", platform.ErrConnection, err)
		}
	}

	b.driver, err = sdl.GetCurrentVideoDriver()
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w: %w", platform.ErrConnection, err)
	}

	var v sdl.Version
	sdl.GetVersion(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)
	logger.Logf(logger.Allow, "sdl", "video driver: %s", b.driver)

	c := &connection{
		driver:  b.driver,
		version: fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch),
	}
	c.display = &display{
		conn:     c,
		contexts: make(map[platform.RenderContext]sdl.GLContext),
	}

	return c, nil
}

type connection struct {
	driver  string
	version string
	display *display
}

func (c *connection) CreateSurface(width int, height int) (platform.Surface, error) {
	window, err := sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w: %w", platform.ErrSurface, err)
	}

	id, err := window.GetID()
	if err != nil {
		_ = window.Destroy()
		return nil, fmt.Errorf("sdl: %w: %w", platform.ErrSurface, err)
	}

	logger.Logf(logger.Allow, "sdl", "window created (%dx%d)", width, height)

	return &surface{
		window: window,
		id:     id,
		width:  width,
		height: height,
	}, nil
}

func (c *connection) Display() platform.Display {
	return c.display
}

func (c *connection) PollCancel() bool {
	var cancel bool
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			cancel = true
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN {
				cancel = true
			}
		}
	}
	return cancel
}

func (c *connection) Close() error {
	sdl.Quit()
	return nil
}

type surface struct {
	window *sdl.Window
	id     uint32
	width  int
	height int
}

func (s *surface) Size() (int, int) {
	return s.width, s.height
}

// Native returns the SDL window ID.
func (s *surface) Native() uintptr {
	return uintptr(s.id)
}

func (s *surface) Destroy() error {
	if s.window == nil {
		return nil
	}
	err := s.window.Destroy()
	s.window = nil
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}
