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

// Package glfwplatform is a presentation backend using GLFW. The OpenGL ES
// context is created through EGL.
//
// GLFW creates a window and its context together. CreateContext() returns a
// handle to the context that was created with the drawable's window and
// DestroyContext() does nothing. The context is destroyed with the window.
package glfwplatform

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/glbench/logger"
	"github.com/jetsetilly/glbench/platform"
	"github.com/jetsetilly/glbench/version"
)

// Backend implements the platform.Backend interface for GLFW.
type Backend struct{}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Name() string {
	return "glfw"
}

func (b *Backend) Kind() platform.Kind {
	return platform.WindowedX11Like
}

func (b *Backend) Open() (platform.Connection, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw: %w: %w", platform.ErrConnection, err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextCreationAPI, glfw.EGLContextAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	glfw.WindowHint(glfw.AlphaBits, 8)

	logger.Logf(logger.Allow, "glfw", "version %s", glfw.GetVersionString())

	c := &connection{
		windows: make(map[platform.Drawable]*glfw.Window),
	}
	c.display = &display{conn: c}

	return c, nil
}

type connection struct {
	display *display

	windows    map[platform.Drawable]*glfw.Window
	nextWindow platform.Drawable

	// set by the key callback
	keyPressed bool
}

func (c *connection) CreateSurface(width int, height int) (platform.Surface, error) {
	window, err := glfw.CreateWindow(width, height, version.ApplicationName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw: %w: %w", platform.ErrSurface, err)
	}

	window.SetKeyCallback(func(_ *glfw.Window, _ glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Press {
			c.keyPressed = true
		}
	})

	c.nextWindow++
	c.windows[c.nextWindow] = window

	logger.Logf(logger.Allow, "glfw", "window created (%dx%d)", width, height)

	return &surface{
		conn:   c,
		window: window,
		handle: c.nextWindow,
		width:  width,
		height: height,
	}, nil
}

func (c *connection) Display() platform.Display {
	return c.display
}

func (c *connection) PollCancel() bool {
	glfw.PollEvents()
	if c.keyPressed {
		c.keyPressed = false
		return true
	}
	for _, w := range c.windows {
		if w.ShouldClose() {
			return true
		}
	}
	return false
}

func (c *connection) Close() error {
	glfw.Terminate()
	return nil
}

func (c *connection) window(draw platform.Drawable) (*glfw.Window, error) {
	w, ok := c.windows[draw]
	if !ok {
		return nil, fmt.Errorf("glfw: unknown drawable (%d)", draw)
	}
	return w, nil
}

type surface struct {
	conn   *connection
	window *glfw.Window
	handle platform.Drawable
	width  int
	height int
}

func (s *surface) Size() (int, int) {
	return s.width, s.height
}

func (s *surface) Native() uintptr {
	return uintptr(s.handle)
}

func (s *surface) Destroy() error {
	if s.window == nil {
		return nil
	}
	s.window.Destroy()
	delete(s.conn.windows, s.handle)
	s.window = nil
	return nil
}

// display implements the platform.Display interface. drawables and contexts
// share the same handle values
type display struct {
	conn *connection
}

func (d *display) Initialize() error {
	return nil
}

func (d *display) ChooseConfigs(req platform.ConfigRequest) ([]platform.Config, error) {
	if req.API != platform.OpenGLES2 {
		return nil, fmt.Errorf("glfw: unsupported client API (%s)", req.API)
	}
	if req.BufferSize > 32 {
		return nil, nil
	}
	return []platform.Config{{
		BufferSize: 32,
		Red:        8,
		Green:      8,
		Blue:       8,
		Alpha:      8,
	}}, nil
}

func (d *display) CreateDrawable(_ platform.Config, s platform.Surface) (platform.Drawable, error) {
	draw := platform.Drawable(s.Native())
	if _, err := d.conn.window(draw); err != nil {
		return 0, err
	}
	return draw, nil
}

var errNoDrawable = errors.New("glfw: context requires a drawable")

// CreateContext returns the context of the most recently created window.
func (d *display) CreateContext(_ platform.Config, clientVersion int) (platform.RenderContext, error) {
	if clientVersion != 2 {
		return 0, fmt.Errorf("glfw: unsupported client version (%d)", clientVersion)
	}
	if d.conn.nextWindow == 0 {
		return 0, errNoDrawable
	}
	if _, err := d.conn.window(d.conn.nextWindow); err != nil {
		return 0, errNoDrawable
	}
	return platform.RenderContext(d.conn.nextWindow), nil
}

func (d *display) MakeCurrent(draw platform.Drawable, ctx platform.RenderContext) error {
	if platform.Drawable(ctx) != draw {
		return fmt.Errorf("glfw: context (%d) does not belong to drawable (%d)", ctx, draw)
	}
	w, err := d.conn.window(draw)
	if err != nil {
		return err
	}
	w.MakeContextCurrent()
	return nil
}

func (d *display) ReleaseCurrent() error {
	glfw.DetachCurrentContext()
	return nil
}

func (d *display) SwapBuffers(draw platform.Drawable) error {
	w, err := d.conn.window(draw)
	if err != nil {
		return err
	}
	w.SwapBuffers()
	return nil
}

func (d *display) SwapInterval(interval int) error {
	glfw.SwapInterval(interval)
	return nil
}

func (d *display) DestroyContext(_ platform.RenderContext) error {
	return nil
}

func (d *display) DestroyDrawable(_ platform.Drawable) error {
	return nil
}

func (d *display) Terminate() error {
	return nil
}

func (d *display) Info() platform.Info {
	return platform.Info{
		Vendor:     "GLFW",
		Version:    glfw.GetVersionString(),
		ClientAPIs: "OpenGL_ES",
	}
}
