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

package sdlplatform

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/glbench/platform"
	"github.com/veandco/go-sdl2/sdl"
)

// display implements the platform.Display interface. SDL creates the
// framebuffer configuration with the window, so ChooseConfigs() only reports
// what has been requested.
//
// drawables are SDL window IDs. contexts are keys into the contexts map
type display struct {
	conn *connection

	// window of the most recent CreateDrawable(). SDL contexts are created
	// for a window
	window *sdl.Window

	contexts    map[platform.RenderContext]sdl.GLContext
	nextContext platform.RenderContext
}

func (d *display) Initialize() error {
	return nil
}

func (d *display) ChooseConfigs(req platform.ConfigRequest) ([]platform.Config, error) {
	if req.API != platform.OpenGLES2 {
		return nil, fmt.Errorf("sdl: unsupported client API (%s)", req.API)
	}

	err := sdl.GLSetAttribute(sdl.GL_BUFFER_SIZE, req.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	cfg := platform.Config{
		BufferSize: req.BufferSize,
	}
	cfg.Red, _ = sdl.GLGetAttribute(sdl.GL_RED_SIZE)
	cfg.Green, _ = sdl.GLGetAttribute(sdl.GL_GREEN_SIZE)
	cfg.Blue, _ = sdl.GLGetAttribute(sdl.GL_BLUE_SIZE)
	cfg.Alpha, _ = sdl.GLGetAttribute(sdl.GL_ALPHA_SIZE)

	return []platform.Config{cfg}, nil
}

func windowFromDrawable(draw platform.Drawable) (*sdl.Window, error) {
	w, err := sdl.GetWindowFromID(uint32(draw))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	return w, nil
}

func (d *display) CreateDrawable(_ platform.Config, s platform.Surface) (platform.Drawable, error) {
	draw := platform.Drawable(s.Native())
	w, err := windowFromDrawable(draw)
	if err != nil {
		return 0, err
	}
	d.window = w
	return draw, nil
}

func (d *display) CreateContext(_ platform.Config, clientVersion int) (platform.RenderContext, error) {
	if d.window == nil {
		return 0, errors.New("sdl: context requires a drawable")
	}

	err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, clientVersion)
	if err != nil {
		return 0, fmt.Errorf("sdl: %w", err)
	}

	ctx, err := d.window.GLCreateContext()
	if err != nil {
		return 0, fmt.Errorf("sdl: %w", err)
	}

	d.nextContext++
	d.contexts[d.nextContext] = ctx
	return d.nextContext, nil
}

func (d *display) MakeCurrent(draw platform.Drawable, ctx platform.RenderContext) error {
	w, err := windowFromDrawable(draw)
	if err != nil {
		return err
	}
	c, ok := d.contexts[ctx]
	if !ok {
		return fmt.Errorf("sdl: unknown context (%d)", ctx)
	}
	err = w.GLMakeCurrent(c)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (d *display) ReleaseCurrent() error {
	if d.window == nil {
		return nil
	}
	err := d.window.GLMakeCurrent(nil)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (d *display) SwapBuffers(draw platform.Drawable) error {
	w, err := windowFromDrawable(draw)
	if err != nil {
		return err
	}
	w.GLSwap()
	return nil
}

func (d *display) SwapInterval(interval int) error {
	err := sdl.GLSetSwapInterval(interval)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (d *display) DestroyContext(ctx platform.RenderContext) error {
	c, ok := d.contexts[ctx]
	if !ok {
		return fmt.Errorf("sdl: unknown context (%d)", ctx)
	}
	sdl.GLDeleteContext(c)
	delete(d.contexts, ctx)
	return nil
}

// DestroyDrawable forgets the drawable. The window itself belongs to the
// surface.
func (d *display) DestroyDrawable(draw platform.Drawable) error {
	if d.window != nil {
		if id, err := d.window.GetID(); err == nil && id == uint32(draw) {
			d.window = nil
		}
	}
	return nil
}

func (d *display) Terminate() error {
	return nil
}

func (d *display) Info() platform.Info {
	return platform.Info{
		Vendor:     fmt.Sprintf("SDL (%s)", d.conn.driver),
		Version:    d.conn.version,
		ClientAPIs: "OpenGL_ES",
	}
}
