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

package bench

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/glbench/geometry"
	"github.com/jetsetilly/glbench/glcontext"
	"github.com/jetsetilly/glbench/gles"
	"github.com/jetsetilly/glbench/logger"
	"github.com/jetsetilly/glbench/pipeline"
	"github.com/jetsetilly/glbench/platform"
	"github.com/jetsetilly/glbench/textures"
)

// background colour of the surface
var clearColor = [4]float32{0.08, 0.06, 0.07, 1.0}

// Options that are not part of the benchmark configuration.
type Options struct {
	Clock Clock

	// loads the GL entry points once the context is current
	LoadGL func() (gles.API, error)

	Request glcontext.Request
}

// DefaultOptions uses the system clock and the go-gl bindings.
func DefaultOptions() Options {
	return Options{
		Clock: SystemClock,
		LoadGL: func() (gles.API, error) {
			return gles.NewES2()
		},
		Request: glcontext.DefaultRequest(),
	}
}

// CancelFunc is checked once per frame before the frame is drawn. The loop
// stops if it returns true.
type CancelFunc func() bool

// Session is a single run of the benchmark.
type Session struct {
	cfg     Config
	opts    Options
	backend platform.Backend

	pool *textures.Pool
	quad geometry.Quad

	conn    platform.Connection
	surface platform.Surface
	ctx     *glcontext.Context
	cur     *glcontext.Current
	gl      gles.API
	pipe    *pipeline.Handle
	vbo     gles.Buffer

	width  int
	height int

	state   State
	stats   FrameStats
	frames  int
	reports []Report
	started time.Time
	ended   time.Time
	closed  bool
}

// NewSession validates the configuration and creates every resource needed
// to run the benchmark. No graphics resource is created if the configuration
// is invalid or if the textures cannot be prepared.
//
// If an error occurs part way through, everything that has been created is
// released before returning.
func NewSession(backend platform.Backend, cfg Config, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.LoadGL == nil {
		opts.LoadGL = DefaultOptions().LoadGL
	}
	if opts.Request == (glcontext.Request{}) {
		opts.Request = glcontext.DefaultRequest()
	}

	s := &Session{
		cfg:     cfg,
		opts:    opts,
		backend: backend,
		quad:    geometry.NewQuad(cfg.Rotation),
		width:   cfg.Size,
		height:  cfg.Size,
	}

	var err error

	if cfg.TextureDir != "" {
		s.pool, err = textures.LoadPool(cfg.TextureDir, cfg.Size)
	} else {
		s.pool, err = textures.NewPool(cfg.Size)
	}
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}

	err = s.setup()
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	logger.Logf(logger.Allow, "bench", "%s benchmark ready: %s backend, %dx%d, rotation %s, swap %s",
		cfg.Mode(), backend.Name(), s.width, s.height, cfg.Rotation, s.cur.SwapPolicy())

	return s, nil
}

func (s *Session) setup() error {
	var err error

	s.conn, err = s.backend.Open()
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	s.surface, err = s.conn.CreateSurface(s.width, s.height)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	s.ctx, err = glcontext.Establish(s.surface, s.conn.Display(), s.opts.Request)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	s.cur, err = s.ctx.MakeCurrent()
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	err = s.cur.SetSwapPolicy(s.cfg.SwapPolicy)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	s.gl, err = s.cur.LoadGL(s.opts.LoadGL)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	s.pipe, err = pipeline.BuildDefault(s.gl, s.pool.At(0))
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	// vertex data never changes so it is uploaded once
	s.vbo = s.gl.GenBuffer()
	s.gl.BufferStatic(s.vbo, s.quad[:])

	w, h := s.cur.Size()
	s.gl.Viewport(0, 0, w, h)
	s.gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])

	return nil
}

// Close releases all resources in the reverse order to which they were
// created. Close can be called more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.state = Stopped

	var errs []error

	if s.gl != nil {
		if s.vbo != 0 {
			s.gl.DeleteBuffer(s.vbo)
		}
		if s.pipe != nil {
			s.pipe.Destroy(s.gl)
		}
	}
	if s.ctx != nil {
		errs = append(errs, s.ctx.Destroy())
	}
	if s.surface != nil {
		errs = append(errs, s.surface.Destroy())
	}
	if s.conn != nil {
		errs = append(errs, s.conn.Close())
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	return nil
}

// Run draws frames until the session is cancelled, either by the backend or
// by the cancel function, or until the configured number of frames has been
// drawn. Reports are written to out.
//
// Run can only be called once.
func (s *Session) Run(out io.Writer, cancel CancelFunc) error {
	if s.closed {
		return fmt.Errorf("bench: session is closed")
	}
	if s.state != Idle {
		return fmt.Errorf("bench: session has already run")
	}

	s.state = Running
	s.started = s.opts.Clock.Now()
	s.stats.Reset(s.started)

	defer func() {
		s.state = Stopped
		s.ended = s.opts.Clock.Now()
		logger.Logf(logger.Allow, "bench", "stopped after %d frames", s.frames)
	}()

	for {
		if s.conn.PollCancel() {
			logger.Log(logger.Allow, "bench", "cancelled by backend")
			return nil
		}
		if cancel != nil && cancel() {
			logger.Log(logger.Allow, "bench", "cancelled")
			return nil
		}
		if s.cfg.Frames > 0 && s.frames >= s.cfg.Frames {
			return nil
		}

		if err := s.frame(out); err != nil {
			return fmt.Errorf("bench: %w", err)
		}
	}
}

func (s *Session) frame(out io.Writer) error {
	gl := s.gl

	gl.VertexAttrib(s.pipe.Position, s.vbo, geometry.PositionSize, geometry.Stride, geometry.PositionOffset)
	gl.VertexAttrib(s.pipe.TexCoord, s.vbo, geometry.TexCoordSize, geometry.Stride, geometry.TexCoordOffset)

	gl.ActiveTexture(0)
	gl.BindTexture(s.pipe.Texture)
	gl.Uniform1i(s.pipe.Sampler, 0)

	if s.cfg.Upload {
		b := s.pool.Next()
		t := s.opts.Clock.Now()
		gl.TexImageRGBA(b.Width, b.Height, b.Pix)
		s.stats.UploadTime += s.opts.Clock.Now().Sub(t)
		s.stats.UploadBytes += int64(b.Bytes())
	}

	gl.DrawTriangleStrip(0, geometry.Vertices)

	if s.cfg.SwapTiming {
		t := s.opts.Clock.Now()
		err := s.cur.Swap()
		dt := s.opts.Clock.Now().Sub(t)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "eglSwapBuffers took %fms\n", float64(dt)/float64(time.Millisecond)); err != nil {
			return err
		}
	} else if err := s.cur.Swap(); err != nil {
		return err
	}

	s.frames++
	s.stats.Frames++

	if s.stats.Frames >= s.cfg.ReportInterval {
		return s.report(out)
	}

	return nil
}

func (s *Session) report(out io.Writer) error {
	s.state = Reporting
	defer func() {
		s.state = Running
	}()

	now := s.opts.Clock.Now()
	r := NewReport(s.stats, now, s.cfg.Mode(), s.width, s.height)
	s.reports = append(s.reports, r)
	s.stats.Reset(now)

	return r.Write(out, s.cfg.Mode())
}

// State returns the current state of the benchmark loop.
func (s *Session) State() State {
	return s.state
}

// Frames returns the total number of frames drawn.
func (s *Session) Frames() int {
	return s.frames
}

// Stats returns the measurements accumulated since the last report.
func (s *Session) Stats() FrameStats {
	return s.stats
}

// Reports returns every report produced so far.
func (s *Session) Reports() []Report {
	return s.reports
}

// Config returns the configuration of the session.
func (s *Session) Config() Config {
	return s.cfg
}

// Info describes the context and the GL implementation. Only valid until the
// session is closed.
func (s *Session) Info() []glcontext.Property {
	info := s.ctx.Info()
	str := s.gl.Strings()
	return append(info,
		glcontext.Property{Key: "gl vendor", Value: str.Vendor},
		glcontext.Property{Key: "gl renderer", Value: str.Renderer},
		glcontext.Property{Key: "gl version", Value: str.Version},
		glcontext.Property{Key: "glsl version", Value: str.GLSL},
		glcontext.Property{Key: "swap policy", Value: s.cur.SwapPolicy().String()},
	)
}
