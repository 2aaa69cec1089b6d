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

package mock

import (
	"errors"

	"github.com/jetsetilly/glbench/platform"
)

// ErrInjected is returned by any mock function that has been told to fail.
var ErrInjected = errors.New("mock: injected failure")

// Backend implements the platform.Backend interface. The exported fields can
// be changed to alter the behaviour of the backend and its connection,
// surface and display.
type Backend struct {
	Calls *Calls

	BackendKind platform.Kind

	// number of configurations returned by ChooseConfigs()
	ConfigCount int

	// functions that should return an error
	FailOpen         bool
	FailSurface      bool
	FailInitialize   bool
	FailChooseConfig bool
	FailDrawable     bool
	FailContext      bool
	FailMakeCurrent  bool
	FailSwap         bool

	// PollCancel() returns true once it has been called this many times. a
	// value of zero means never
	CancelAfter int

	// called on every SwapBuffers()
	OnSwap func()

	// the most recent config request and swap interval
	Request  platform.ConfigRequest
	Interval int

	polls int
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend(calls *Calls) *Backend {
	return &Backend{
		Calls:       calls,
		ConfigCount: 1,
		Interval:    -1,
	}
}

func (b *Backend) Name() string {
	return "mock"
}

func (b *Backend) Kind() platform.Kind {
	return b.BackendKind
}

func (b *Backend) Open() (platform.Connection, error) {
	b.Calls.add("Open")
	if b.FailOpen {
		return nil, errors.Join(platform.ErrConnection, ErrInjected)
	}
	return &connection{b: b}, nil
}

// Polls returns the number of times PollCancel() has been called.
func (b *Backend) Polls() int {
	return b.polls
}

type connection struct {
	b *Backend
}

func (c *connection) CreateSurface(width int, height int) (platform.Surface, error) {
	c.b.Calls.add("CreateSurface", width, height)
	if c.b.FailSurface {
		return nil, errors.Join(platform.ErrSurface, ErrInjected)
	}
	return &surface{b: c.b, width: width, height: height}, nil
}

func (c *connection) Display() platform.Display {
	return &display{b: c.b}
}

func (c *connection) PollCancel() bool {
	c.b.polls++
	return c.b.CancelAfter > 0 && c.b.polls >= c.b.CancelAfter
}

func (c *connection) Close() error {
	c.b.Calls.add("Close")
	return nil
}

type surface struct {
	b      *Backend
	width  int
	height int
}

func (s *surface) Size() (int, int) {
	return s.width, s.height
}

func (s *surface) Native() uintptr {
	return 0x100
}

func (s *surface) Destroy() error {
	s.b.Calls.add("DestroySurface")
	return nil
}

type display struct {
	b *Backend
}

func (d *display) Initialize() error {
	d.b.Calls.add("Initialize")
	if d.b.FailInitialize {
		return ErrInjected
	}
	return nil
}

func (d *display) ChooseConfigs(req platform.ConfigRequest) ([]platform.Config, error) {
	d.b.Calls.add("ChooseConfigs")
	d.b.Request = req
	if d.b.FailChooseConfig {
		return nil, ErrInjected
	}
	cfgs := make([]platform.Config, d.b.ConfigCount)
	for i := range cfgs {
		cfgs[i] = platform.Config{
			Handle:     uintptr(i + 1),
			ID:         i + 1,
			BufferSize: req.BufferSize,
			Red:        8,
			Green:      8,
			Blue:       8,
			Alpha:      8,
		}
	}
	return cfgs, nil
}

func (d *display) CreateDrawable(cfg platform.Config, s platform.Surface) (platform.Drawable, error) {
	d.b.Calls.add("CreateDrawable")
	if d.b.FailDrawable {
		return 0, ErrInjected
	}
	return platform.Drawable(0x200), nil
}

func (d *display) CreateContext(cfg platform.Config, clientVersion int) (platform.RenderContext, error) {
	d.b.Calls.add("CreateContext", clientVersion)
	if d.b.FailContext {
		return 0, ErrInjected
	}
	return platform.RenderContext(0x300), nil
}

func (d *display) MakeCurrent(drw platform.Drawable, ctx platform.RenderContext) error {
	d.b.Calls.add("MakeCurrent")
	if d.b.FailMakeCurrent {
		return ErrInjected
	}
	return nil
}

func (d *display) ReleaseCurrent() error {
	d.b.Calls.add("ReleaseCurrent")
	return nil
}

func (d *display) SwapBuffers(drw platform.Drawable) error {
	d.b.Calls.add("SwapBuffers")
	if d.b.OnSwap != nil {
		d.b.OnSwap()
	}
	if d.b.FailSwap {
		return ErrInjected
	}
	return nil
}

func (d *display) SwapInterval(interval int) error {
	d.b.Calls.add("SwapInterval", interval)
	d.b.Interval = interval
	return nil
}

func (d *display) DestroyContext(ctx platform.RenderContext) error {
	d.b.Calls.add("DestroyContext")
	return nil
}

func (d *display) DestroyDrawable(drw platform.Drawable) error {
	d.b.Calls.add("DestroyDrawable")
	return nil
}

func (d *display) Terminate() error {
	d.b.Calls.add("Terminate")
	return nil
}

func (d *display) Info() platform.Info {
	return platform.Info{
		Vendor:     "mock",
		Version:    "1.4",
		ClientAPIs: "OpenGL_ES",
	}
}
