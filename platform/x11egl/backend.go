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

//go:build linux || freebsd

package x11egl

import (
	"encoding/binary"
	"fmt"
	"sync"
	"unsafe"

	"github.com/jetsetilly/glbench/logger"
	"github.com/jetsetilly/glbench/platform"
	"github.com/jetsetilly/glbench/version"
)

// the shared libraries are loaded once for the lifetime of the program
var (
	loadOnce sync.Once
	loadErr  error
)

func load() error {
	loadOnce.Do(func() {
		if err := loadXlib(); err != nil {
			loadErr = err
			return
		}
		loadErr = loadEGL()
	})
	return loadErr
}

// Backend implements the platform.Backend interface for the X Window System.
type Backend struct{}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Name() string {
	return "x11"
}

func (b *Backend) Kind() platform.Kind {
	return platform.WindowedX11Like
}

// Open connects to the X server named by the DISPLAY environment variable.
func (b *Backend) Open() (platform.Connection, error) {
	if err := load(); err != nil {
		return nil, fmt.Errorf("x11egl: %w: %w", platform.ErrConnection, err)
	}

	dpy := xOpenDisplay(nil)
	if dpy == 0 {
		return nil, fmt.Errorf("x11egl: %w: XOpenDisplay failed", platform.ErrConnection)
	}

	c := &connection{
		dpy:      dpy,
		wmDelete: xInternAtom(dpy, cString("WM_DELETE_WINDOW"), 0),
		event:    make([]byte, xEventSize),
	}
	c.egl = &display{conn: c}

	logger.Log(logger.Allow, "x11egl", "connected to X server")

	return c, nil
}

type connection struct {
	dpy      uintptr
	wmDelete uintptr
	egl      *display

	// buffer for XNextEvent()
	event []byte
}

func (c *connection) CreateSurface(width int, height int) (platform.Surface, error) {
	root := xDefaultRootWindow(c.dpy)
	win := xCreateSimpleWindow(c.dpy, root, 0, 0, uint32(width), uint32(height), 0, 0, 0)
	if win == 0 {
		return nil, fmt.Errorf("x11egl: %w: XCreateSimpleWindow failed", platform.ErrSurface)
	}

	xSelectInput(c.dpy, win, exposureMask|keyPressMask)

	hints := xWMHints{
		flags: inputHint,
		input: 1,
	}
	xSetWMHints(c.dpy, win, unsafe.Pointer(&hints))

	// ask the window manager to send a client message rather than killing
	// the connection when the window is closed
	if c.wmDelete != 0 {
		atom := c.wmDelete
		xSetWMProtocols(c.dpy, win, &atom, 1)
	}

	xMapWindow(c.dpy, win)
	xStoreName(c.dpy, win, cString(version.ApplicationName))
	xFlush(c.dpy)

	logger.Logf(logger.Allow, "x11egl", "window created (%dx%d)", width, height)

	return &surface{
		conn:   c,
		win:    win,
		width:  width,
		height: height,
	}, nil
}

func (c *connection) Display() platform.Display {
	return c.egl
}

func (c *connection) PollCancel() bool {
	var cancel bool
	for xPending(c.dpy) > 0 {
		xNextEvent(c.dpy, unsafe.Pointer(&c.event[0]))
		switch int32(binary.LittleEndian.Uint32(c.event[0:])) {
		case keyPress:
			cancel = true
		case clientMessage:
			atom := uintptr(binary.LittleEndian.Uint64(c.event[clientMessageData:]))
			if atom == c.wmDelete {
				cancel = true
			}
		}
	}
	return cancel
}

func (c *connection) Close() error {
	if c.dpy == 0 {
		return nil
	}
	xCloseDisplay(c.dpy)
	c.dpy = 0
	return nil
}

type surface struct {
	conn   *connection
	win    uintptr
	width  int
	height int
}

func (s *surface) Size() (int, int) {
	return s.width, s.height
}

func (s *surface) Native() uintptr {
	return s.win
}

func (s *surface) Destroy() error {
	if s.win == 0 {
		return nil
	}
	xDestroyWindow(s.conn.dpy, s.win)
	s.win = 0
	return nil
}

// display implements the platform.Display interface with EGL
type display struct {
	conn *connection
	dpy  uintptr
}

func (d *display) Initialize() error {
	d.dpy = eglGetDisplay(d.conn.dpy)
	if d.dpy == 0 {
		return fmt.Errorf("x11egl: %w", errorOr("eglGetDisplay failed"))
	}

	var major, minor int32
	if eglInitialize(d.dpy, &major, &minor) == eglFalse {
		d.dpy = 0
		return fmt.Errorf("x11egl: %w", errorOr("eglInitialize failed"))
	}

	logger.Logf(logger.Allow, "x11egl", "EGL %d.%d", major, minor)

	return nil
}

// ChooseConfigs returns no more than one configuration. EGL sorts matching
// configurations and only the best match is requested.
func (d *display) ChooseConfigs(req platform.ConfigRequest) ([]platform.Config, error) {
	var renderable int32
	switch req.API {
	case platform.OpenGLES2:
		renderable = eglOpenGLES2Bit
	default:
		return nil, fmt.Errorf("x11egl: unsupported client API (%s)", req.API)
	}

	attribs := []int32{
		eglBufferSize, int32(req.BufferSize),
		eglRenderableType, renderable,
		eglNone,
	}

	var cfg uintptr
	var num int32
	if eglChooseConfig(d.dpy, &attribs[0], &cfg, 1, &num) == eglFalse {
		return nil, fmt.Errorf("x11egl: %w", errorOr("eglChooseConfig failed"))
	}
	if num == 0 {
		return nil, nil
	}

	return []platform.Config{{
		Handle:     cfg,
		ID:         d.configAttrib(cfg, eglConfigID),
		BufferSize: d.configAttrib(cfg, eglBufferSize),
		Red:        d.configAttrib(cfg, eglRedSize),
		Green:      d.configAttrib(cfg, eglGreenSize),
		Blue:       d.configAttrib(cfg, eglBlueSize),
		Alpha:      d.configAttrib(cfg, eglAlphaSize),
	}}, nil
}

func (d *display) configAttrib(cfg uintptr, attrib int32) int {
	var v int32
	if eglGetConfigAttrib(d.dpy, cfg, attrib, &v) == eglFalse {
		return 0
	}
	return int(v)
}

func (d *display) CreateDrawable(cfg platform.Config, s platform.Surface) (platform.Drawable, error) {
	surf := eglCreateWindowSurface(d.dpy, cfg.Handle, s.Native(), nil)
	if surf == 0 {
		return 0, fmt.Errorf("x11egl: %w", errorOr("eglCreateWindowSurface failed"))
	}
	return platform.Drawable(surf), nil
}

func (d *display) CreateContext(cfg platform.Config, clientVersion int) (platform.RenderContext, error) {
	attribs := []int32{
		eglContextClientVersion, int32(clientVersion),
		eglNone,
	}
	ctx := eglCreateContext(d.dpy, cfg.Handle, 0, &attribs[0])
	if ctx == 0 {
		return 0, fmt.Errorf("x11egl: %w", errorOr("eglCreateContext failed"))
	}
	return platform.RenderContext(ctx), nil
}

func (d *display) MakeCurrent(draw platform.Drawable, ctx platform.RenderContext) error {
	if eglMakeCurrent(d.dpy, uintptr(draw), uintptr(draw), uintptr(ctx)) == eglFalse {
		return fmt.Errorf("x11egl: %w", errorOr("eglMakeCurrent failed"))
	}
	return nil
}

func (d *display) ReleaseCurrent() error {
	if eglMakeCurrent(d.dpy, 0, 0, 0) == eglFalse {
		return fmt.Errorf("x11egl: %w", errorOr("eglMakeCurrent failed"))
	}
	return nil
}

func (d *display) SwapBuffers(draw platform.Drawable) error {
	if eglSwapBuffers(d.dpy, uintptr(draw)) == eglFalse {
		return fmt.Errorf("x11egl: %w", errorOr("eglSwapBuffers failed"))
	}
	return nil
}

func (d *display) SwapInterval(interval int) error {
	if eglSwapInterval(d.dpy, int32(interval)) == eglFalse {
		return fmt.Errorf("x11egl: %w", errorOr("eglSwapInterval failed"))
	}
	return nil
}

func (d *display) DestroyContext(ctx platform.RenderContext) error {
	if eglDestroyContext(d.dpy, uintptr(ctx)) == eglFalse {
		return fmt.Errorf("x11egl: %w", errorOr("eglDestroyContext failed"))
	}
	return nil
}

func (d *display) DestroyDrawable(draw platform.Drawable) error {
	if eglDestroySurface(d.dpy, uintptr(draw)) == eglFalse {
		return fmt.Errorf("x11egl: %w", errorOr("eglDestroySurface failed"))
	}
	return nil
}

func (d *display) Terminate() error {
	if d.dpy == 0 {
		return nil
	}
	ok := eglTerminate(d.dpy)
	d.dpy = 0
	if ok == eglFalse {
		return fmt.Errorf("x11egl: %w", errorOr("eglTerminate failed"))
	}
	return nil
}

func (d *display) Info() platform.Info {
	if d.dpy == 0 {
		return platform.Info{}
	}
	return platform.Info{
		Vendor:     eglQueryString(d.dpy, eglVendor),
		Version:    eglQueryString(d.dpy, eglVersion),
		ClientAPIs: eglQueryString(d.dpy, eglClientAPIs),
	}
}
