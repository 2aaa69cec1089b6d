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

package bench_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/glbench/bench"
	"github.com/jetsetilly/glbench/geometry"
	"github.com/jetsetilly/glbench/glcontext"
	"github.com/jetsetilly/glbench/gles"
	"github.com/jetsetilly/glbench/pipeline"
	"github.com/jetsetilly/glbench/test"
	"github.com/jetsetilly/glbench/test/mock"
	"github.com/jetsetilly/glbench/textures"
)

// time taken by every presentation
const swapTime = 10 * time.Millisecond

type harness struct {
	calls   *mock.Calls
	backend *mock.Backend
	gl      *mock.GL
	clock   *mock.Clock
	opts    bench.Options
}

func newHarness() *harness {
	h := &harness{
		calls: &mock.Calls{},
		clock: mock.NewClock(),
	}
	h.backend = mock.NewBackend(h.calls)
	h.gl = mock.NewGL(h.calls)
	h.backend.OnSwap = func() {
		h.clock.Advance(swapTime)
	}
	h.opts = bench.Options{
		Clock: h.clock,
		LoadGL: func() (gles.API, error) {
			return h.gl, nil
		},
		Request: glcontext.DefaultRequest(),
	}
	return h
}

func (h *harness) session(t *testing.T, cfg bench.Config) *bench.Session {
	t.Helper()
	s, err := bench.NewSession(h.backend, cfg, h.opts)
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func fillrate() bench.Config {
	cfg := bench.NewConfig()
	cfg.Fillrate = true
	return cfg
}

func upload() bench.Config {
	cfg := bench.NewConfig()
	cfg.Upload = true
	return cfg
}

// configuration errors are found before any resource is created
func TestNoResourcesOnConfigError(t *testing.T) {
	h := newHarness()

	_, err := bench.NewSession(h.backend, bench.NewConfig(), h.opts)
	test.ExpectSuccess(t, errors.Is(err, bench.ErrInvalidCLIValue))
	test.ExpectSuccess(t, errors.Is(err, bench.ErrModeSelection))
	test.ExpectEquality(t, h.calls.Len(), 0)

	cfg := fillrate()
	cfg.Size = 300
	_, err = bench.NewSession(h.backend, cfg, h.opts)
	test.ExpectSuccess(t, errors.Is(err, bench.ErrInvalidCLIValue))
	test.ExpectSuccess(t, errors.Is(err, textures.ErrUnsupportedSize))
	test.ExpectEquality(t, h.calls.Len(), 0)
}

func TestSetup(t *testing.T) {
	h := newHarness()
	cfg := fillrate()
	cfg.Size = 512
	s := h.session(t, cfg)

	test.ExpectEquality(t, s.State(), bench.Idle)
	test.ExpectEquality(t, h.calls.Filter("Open", "CreateSurface", "Initialize", "ChooseConfigs",
		"CreateDrawable", "CreateContext", "MakeCurrent"),
		"Open CreateSurface(512,512) Initialize ChooseConfigs CreateDrawable CreateContext(2) MakeCurrent")

	// the default swap policy leaves the backend alone
	test.ExpectEquality(t, h.calls.Filter("SwapInterval"), "")

	// viewport is the size of the surface
	test.ExpectEquality(t, h.gl.ViewportRect, [4]int{0, 0, 512, 512})

	// initial texture is the first image in the pool
	test.ExpectEquality(t, h.gl.Uploads, 1)
	test.ExpectEquality(t, h.gl.UploadBytes, 512*512*4)
}

func TestVertexBuffer(t *testing.T) {
	for _, o := range geometry.Orientations {
		h := newHarness()
		cfg := fillrate()
		cfg.Rotation = o
		s := h.session(t, cfg)

		test.DemandEquality(t, len(h.gl.Buffers), 1, o)
		q := geometry.NewQuad(o)
		for _, data := range h.gl.Buffers {
			test.DemandEquality(t, len(data), len(q), o)
			for i := range data {
				test.ExpectEquality(t, data[i], q[i], o, i)
			}
		}

		_ = s.Close()
	}
}

func TestFrameSequence(t *testing.T) {
	h := newHarness()
	cfg := upload()
	cfg.Frames = 1
	s := h.session(t, cfg)

	h.calls.Reset()
	test.DemandSuccess(t, s.Run(&bytes.Buffer{}, nil))
	test.ExpectEquality(t, h.calls.String(),
		"VertexAttrib(3,5,0) VertexAttrib(2,5,3) ActiveTexture(0) BindTexture Uniform1i(0) "+
			"TexImageRGBA(256,256) DrawTriangleStrip(0,5) SwapBuffers")

	h = newHarness()
	cfg = fillrate()
	cfg.Frames = 1
	_ = s.Close()
	s = h.session(t, cfg)

	h.calls.Reset()
	test.DemandSuccess(t, s.Run(&bytes.Buffer{}, nil))
	test.ExpectEquality(t, h.calls.String(),
		"VertexAttrib(3,5,0) VertexAttrib(2,5,3) ActiveTexture(0) BindTexture Uniform1i(0) "+
			"DrawTriangleStrip(0,5) SwapBuffers")
}

func TestFillrateRun(t *testing.T) {
	h := newHarness()
	cfg := fillrate()
	cfg.Frames = 300
	s := h.session(t, cfg)

	out := &strings.Builder{}
	test.DemandSuccess(t, s.Run(out, nil))

	// 100 frames at 10ms per frame is one second
	test.ExpectEquality(t, out.String(), strings.Repeat("fps: 100.000000\nfill rate: 25.000000 MiB/s\n", 3))
	test.ExpectEquality(t, s.Frames(), 300)
	test.ExpectEquality(t, len(s.Reports()), 3)
	test.ExpectEquality(t, s.State(), bench.Stopped)

	// stats have been reset by the final report
	test.ExpectEquality(t, s.Stats().Frames, 0)

	// no uploads other than the initial texture
	test.ExpectEquality(t, h.gl.Uploads, 1)
}

func TestUploadRun(t *testing.T) {
	h := newHarness()
	h.gl.OnTexImage = func() {
		h.clock.Advance(2 * time.Millisecond)
	}

	cfg := upload()
	cfg.Frames = 250
	s := h.session(t, cfg)

	out := &strings.Builder{}
	test.DemandSuccess(t, s.Run(out, nil))

	// 100 frames at 12ms per frame. 2ms of which is spent uploading
	test.ExpectEquality(t, out.String(), strings.Repeat("fps: 83.333333\ntexture upload rate: 125.000000 MiB/s\n", 2))

	reports := s.Reports()
	test.DemandEquality(t, len(reports), 2)
	for i, r := range reports {
		test.ExpectEquality(t, r.Frames, 100, i)
		test.ExpectEquality(t, r.UploadBytes, int64(100*256*256*4), i)
		test.ExpectApproximate(t, r.UploadTime, 0.2, 0.0001, i)
	}

	// the remaining 50 frames are waiting for the next report
	test.ExpectEquality(t, s.Stats().Frames, 50)
	test.ExpectEquality(t, s.Stats().UploadBytes, int64(50*256*256*4))

	// the initial texture and one upload per frame
	test.ExpectEquality(t, h.gl.Uploads, 251)
}

// uploads rotate through the texture pool
func TestUploadRotation(t *testing.T) {
	pool, err := textures.NewPool(256)
	test.DemandSuccess(t, err)

	for frames := 1; frames <= 8; frames++ {
		h := newHarness()
		cfg := upload()
		cfg.Frames = frames
		s := h.session(t, cfg)
		test.DemandSuccess(t, s.Run(&bytes.Buffer{}, nil))

		// the first upload is image zero
		want := pool.At(frames - 1)
		test.ExpectSuccess(t, bytes.Equal(h.gl.LastUpload, want.Pix), frames)
		_ = s.Close()
	}
}

func TestBackendCancel(t *testing.T) {
	h := newHarness()
	h.backend.CancelAfter = 5
	s := h.session(t, fillrate())

	test.DemandSuccess(t, s.Run(&bytes.Buffer{}, nil))
	test.ExpectEquality(t, s.Frames(), 4)
	test.ExpectEquality(t, h.backend.Polls(), 5)
	test.ExpectEquality(t, s.State(), bench.Stopped)
}

func TestCancelFunc(t *testing.T) {
	h := newHarness()
	s := h.session(t, fillrate())

	var checks int
	test.DemandSuccess(t, s.Run(&bytes.Buffer{}, func() bool {
		checks++
		return s.Frames() >= 150
	}))
	test.ExpectEquality(t, s.Frames(), 150)

	// cancellation is checked exactly once per frame
	test.ExpectEquality(t, checks, 151)
	test.ExpectEquality(t, h.backend.Polls(), 151)
	test.ExpectEquality(t, len(s.Reports()), 1)
}

func TestSwapTiming(t *testing.T) {
	h := newHarness()
	cfg := fillrate()
	cfg.Frames = 2
	cfg.SwapTiming = true
	s := h.session(t, cfg)

	out := &strings.Builder{}
	test.DemandSuccess(t, s.Run(out, nil))
	test.ExpectEquality(t, out.String(), strings.Repeat("eglSwapBuffers took 10.000000ms\n", 2))
}

func TestSwapPolicy(t *testing.T) {
	h := newHarness()
	cfg := fillrate()
	cfg.SwapPolicy = glcontext.SwapImmediate
	h.session(t, cfg)
	test.ExpectEquality(t, h.calls.Filter("SwapInterval"), "SwapInterval(0)")
}

func TestSwapFailure(t *testing.T) {
	h := newHarness()
	h.backend.FailSwap = true
	s := h.session(t, fillrate())

	err := s.Run(&bytes.Buffer{}, nil)
	test.ExpectSuccess(t, errors.Is(err, mock.ErrInjected))
	test.ExpectEquality(t, s.Frames(), 0)
	test.ExpectEquality(t, s.State(), bench.Stopped)
}

func TestRunOnce(t *testing.T) {
	h := newHarness()
	cfg := fillrate()
	cfg.Frames = 1
	s := h.session(t, cfg)

	test.ExpectSuccess(t, s.Run(&bytes.Buffer{}, nil))
	test.ExpectFailure(t, s.Run(&bytes.Buffer{}, nil))

	test.ExpectSuccess(t, s.Close())
	test.ExpectFailure(t, s.Run(&bytes.Buffer{}, nil))
}

func TestTeardownOrder(t *testing.T) {
	h := newHarness()
	s := h.session(t, upload())

	h.calls.Reset()
	test.ExpectSuccess(t, s.Close())
	test.ExpectEquality(t, h.calls.Filter("Release", "Destroy", "Terminate", "Close"),
		"ReleaseCurrent DestroyContext DestroyDrawable Terminate DestroySurface Close")

	// GL objects are deleted before the context is destroyed
	test.ExpectEquality(t, h.gl.Live(), 0)
	test.ExpectSuccess(t, h.calls.Index("DeleteProgram") < h.calls.Index("DestroyContext"))

	// closing again does nothing
	h.calls.Reset()
	test.ExpectSuccess(t, s.Close())
	test.ExpectEquality(t, h.calls.Len(), 0)
}

func TestSetupFailures(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(h *harness)
		teardown string
	}{
		{
			name:     "open",
			prepare:  func(h *harness) { h.backend.FailOpen = true },
			teardown: "",
		},
		{
			name:     "surface",
			prepare:  func(h *harness) { h.backend.FailSurface = true },
			teardown: "Close",
		},
		{
			name:     "ambiguous config",
			prepare:  func(h *harness) { h.backend.ConfigCount = 2 },
			teardown: "Terminate DestroySurface Close",
		},
		{
			name:     "make current",
			prepare:  func(h *harness) { h.backend.FailMakeCurrent = true },
			teardown: "DestroyContext DestroyDrawable Terminate DestroySurface Close",
		},
		{
			name:     "shader",
			prepare:  func(h *harness) { h.gl.FailCompile[gles.FragmentStage] = "error" },
			teardown: "ReleaseCurrent DestroyContext DestroyDrawable Terminate DestroySurface Close",
		},
	}

	for _, tt := range tests {
		h := newHarness()
		tt.prepare(h)

		s, err := bench.NewSession(h.backend, fillrate(), h.opts)
		test.ExpectFailure(t, err, tt.name)
		test.ExpectSuccess(t, s == nil, tt.name)
		test.ExpectEquality(t, h.calls.Filter("Release", "Destroy", "Terminate", "Close"), tt.teardown, tt.name)
		test.ExpectEquality(t, h.gl.Live(), 0, tt.name)
	}
}

func TestSetupErrorTypes(t *testing.T) {
	h := newHarness()
	h.backend.ConfigCount = 0
	_, err := bench.NewSession(h.backend, fillrate(), h.opts)
	test.ExpectSuccess(t, errors.Is(err, glcontext.ErrConfiguration))

	h = newHarness()
	h.gl.FailCompile[gles.VertexStage] = "0:1(1): error: syntax error"
	_, err = bench.NewSession(h.backend, fillrate(), h.opts)
	var cerr *pipeline.ShaderCompileError
	if test.ExpectSuccess(t, errors.As(err, &cerr)) {
		test.ExpectEquality(t, cerr.Stage, gles.VertexStage)
	}

	h = newHarness()
	h.gl.Unresolved = []string{"s_texture"}
	_, err = bench.NewSession(h.backend, fillrate(), h.opts)
	var berr *pipeline.BindingResolutionError
	test.ExpectSuccess(t, errors.As(err, &berr))
}
