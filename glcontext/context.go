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

package glcontext

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/jetsetilly/glbench/assert"
	"github.com/jetsetilly/glbench/gles"
	"github.com/jetsetilly/glbench/logger"
	"github.com/jetsetilly/glbench/platform"
)

// Request lists the requirements for the rendering context.
type Request struct {
	// minimum colour buffer depth in bits
	BufferSize int

	// major version of the client API
	ClientVersion int
}

// DefaultRequest is a 32 bit colour buffer and an OpenGL ES 2 context.
func DefaultRequest() Request {
	return Request{
		BufferSize:    32,
		ClientVersion: 2,
	}
}

// the context that is currently bound, if any
var (
	currentCrit sync.Mutex
	current     *Context
)

// Context is an established but not necessarily current rendering context.
type Context struct {
	display  platform.Display
	surface  platform.Surface
	config   platform.Config
	drawable platform.Drawable
	ctx      platform.RenderContext

	bound     *Current
	destroyed bool
}

// Establish creates a rendering context for the surface. The surface must
// belong to the same connection as the display.
//
// On error, anything created by Establish() is released before returning. The
// surface is never released by this function.
func Establish(surface platform.Surface, display platform.Display, req Request) (*Context, error) {
	err := display.Initialize()
	if err != nil {
		return nil, fmt.Errorf("glcontext: %w: %w", platform.ErrConnection, err)
	}

	configs, err := display.ChooseConfigs(platform.ConfigRequest{
		BufferSize: req.BufferSize,
		API:        platform.OpenGLES2,
	})
	if err != nil {
		_ = display.Terminate()
		return nil, fmt.Errorf("glcontext: %w: %w", ErrConfiguration, err)
	}
	if len(configs) != 1 {
		_ = display.Terminate()
		return nil, fmt.Errorf("glcontext: %w: expected exactly one, found %d", ErrConfiguration, len(configs))
	}

	c := &Context{
		display: display,
		surface: surface,
		config:  configs[0],
	}

	logger.Logf(logger.Allow, "glcontext", "config %d: buffer size %d (r%d g%d b%d a%d)",
		c.config.ID, c.config.BufferSize, c.config.Red, c.config.Green, c.config.Blue, c.config.Alpha)

	c.drawable, err = display.CreateDrawable(c.config, surface)
	if err != nil {
		_ = display.Terminate()
		return nil, fmt.Errorf("glcontext: %w: %w", ErrSurfaceCreation, err)
	}

	c.ctx, err = display.CreateContext(c.config, req.ClientVersion)
	if err != nil {
		_ = display.DestroyDrawable(c.drawable)
		_ = display.Terminate()
		return nil, fmt.Errorf("glcontext: %w: %w", ErrContextCreation, err)
	}

	logger.Logf(logger.Allow, "glcontext", "client version %d context created", req.ClientVersion)

	return c, nil
}

// Config returns the framebuffer configuration chosen by Establish().
func (c *Context) Config() platform.Config {
	return c.config
}

// Property is a single item of information about a context.
type Property struct {
	Key   string
	Value string
}

// Info returns a description of the display and the chosen configuration.
func (c *Context) Info() []Property {
	inf := c.display.Info()
	w, h := c.surface.Size()
	return []Property{
		{Key: "display vendor", Value: inf.Vendor},
		{Key: "display version", Value: inf.Version},
		{Key: "client apis", Value: inf.ClientAPIs},
		{Key: "config id", Value: strconv.Itoa(c.config.ID)},
		{Key: "buffer size", Value: strconv.Itoa(c.config.BufferSize)},
		{Key: "rgba", Value: fmt.Sprintf("%d/%d/%d/%d", c.config.Red, c.config.Green, c.config.Blue, c.config.Alpha)},
		{Key: "surface", Value: fmt.Sprintf("%dx%d", w, h)},
	}
}

// MakeCurrent binds the context to the calling thread. Calling MakeCurrent()
// on a context that is already current returns the existing Current. It is an
// error to make a context current if a different context is current.
func (c *Context) MakeCurrent() (*Current, error) {
	currentCrit.Lock()
	defer currentCrit.Unlock()

	if c.destroyed {
		return nil, fmt.Errorf("glcontext: %w: %w", ErrContextCurrent, ErrDestroyed)
	}

	if current != nil {
		if current == c {
			return c.bound, nil
		}
		return nil, fmt.Errorf("glcontext: %w: another context is current", ErrContextCurrent)
	}

	err := c.display.MakeCurrent(c.drawable, c.ctx)
	if err != nil {
		return nil, fmt.Errorf("glcontext: %w: %w", ErrContextCurrent, err)
	}

	c.bound = &Current{
		c:     c,
		owner: assert.NewOwner(),
	}
	current = c

	return c.bound, nil
}

// release unbinds the context if it is current. must be called with the
// currentCrit lock held
func (c *Context) release() error {
	if current != c {
		return nil
	}
	c.bound.owner.Check("rendering context")
	current = nil
	c.bound.released = true
	c.bound = nil
	return c.display.ReleaseCurrent()
}

// Release unbinds the context from the calling thread. The Current returned
// by MakeCurrent() can no longer be used.
func (c *Context) Release() error {
	currentCrit.Lock()
	defer currentCrit.Unlock()
	if err := c.release(); err != nil {
		return fmt.Errorf("glcontext: %w", err)
	}
	return nil
}

// Destroy releases the context, then the drawable and then terminates the
// display. Destroy can be called more than once.
func (c *Context) Destroy() error {
	currentCrit.Lock()
	defer currentCrit.Unlock()

	if c.destroyed {
		return nil
	}
	c.destroyed = true

	var errs []error
	errs = append(errs, c.release())
	errs = append(errs, c.display.DestroyContext(c.ctx))
	errs = append(errs, c.display.DestroyDrawable(c.drawable))
	errs = append(errs, c.display.Terminate())

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("glcontext: %w", err)
	}

	logger.Log(logger.Allow, "glcontext", "destroyed")
	return nil
}

// Current is a context that is bound to the calling thread.
type Current struct {
	c        *Context
	owner    assert.Owner
	policy   SwapPolicy
	released bool
}

func (cur *Current) check() {
	cur.owner.Check("rendering context")
	if cur.released {
		panic("glcontext: use of released context")
	}
}

// Size returns the size of the surface being rendered to.
func (cur *Current) Size() (int, int) {
	cur.check()
	return cur.c.surface.Size()
}

// Swap presents the current frame.
func (cur *Current) Swap() error {
	cur.check()
	if err := cur.c.display.SwapBuffers(cur.c.drawable); err != nil {
		return fmt.Errorf("glcontext: swap: %w", err)
	}
	return nil
}

// SetSwapPolicy changes how buffer swaps are synchronised with the display.
// Setting SwapDefault does not change the synchronisation, whatever it is.
func (cur *Current) SetSwapPolicy(policy SwapPolicy) error {
	cur.check()

	if interval, ok := policy.interval(); ok {
		err := cur.c.display.SwapInterval(interval)
		if err != nil {
			return fmt.Errorf("glcontext: swap interval: %w", err)
		}
		logger.Logf(logger.Allow, "glcontext", "swap interval: %d", interval)
	} else {
		logger.Log(logger.Allow, "glcontext", "swap interval: backend default")
	}

	cur.policy = policy
	return nil
}

// SwapPolicy returns the most recent policy set by SetSwapPolicy().
func (cur *Current) SwapPolicy() SwapPolicy {
	return cur.policy
}

// LoadGL prepares the GL entry points for use with the context.
func (cur *Current) LoadGL(load func() (gles.API, error)) (gles.API, error) {
	cur.check()
	gl, err := load()
	if err != nil {
		return nil, fmt.Errorf("glcontext: %w", err)
	}
	return gl, nil
}
