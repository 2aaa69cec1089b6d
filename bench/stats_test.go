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
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/glbench/bench"
	"github.com/jetsetilly/glbench/test"
)

func TestFillrateReport(t *testing.T) {
	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	s := bench.FrameStats{Frames: 100, LastReport: start}

	r := bench.NewReport(s, start.Add(2*time.Second), bench.ModeFillrate, 512, 512)
	test.ExpectEquality(t, r.Frames, 100)
	test.ExpectEquality(t, r.Elapsed, 2.0)
	test.ExpectEquality(t, r.FPS, 50.0)
	test.ExpectEquality(t, r.MiBPerSecond(), 50.0)

	w := &strings.Builder{}
	test.ExpectSuccess(t, r.Write(w, bench.ModeFillrate))
	test.ExpectEquality(t, w.String(), "fps: 50.000000\nfill rate: 50.000000 MiB/s\n")
}

func TestUploadReport(t *testing.T) {
	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	s := bench.FrameStats{
		Frames:      100,
		UploadTime:  500 * time.Millisecond,
		UploadBytes: 100 * 256 * 256 * 4,
		LastReport:  start,
	}

	r := bench.NewReport(s, start.Add(4*time.Second), bench.ModeUpload, 256, 256)
	test.ExpectEquality(t, r.FPS, 25.0)
	test.ExpectEquality(t, r.UploadTime, 0.5)
	test.ExpectEquality(t, r.MiBPerSecond(), 50.0)

	w := &strings.Builder{}
	test.ExpectSuccess(t, r.Write(w, bench.ModeUpload))
	test.ExpectEquality(t, w.String(), "fps: 25.000000\ntexture upload rate: 50.000000 MiB/s\n")
}

// zero elapsed time produces zero rates rather than Inf or NaN
func TestZeroElapsed(t *testing.T) {
	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	s := bench.FrameStats{Frames: 100, UploadBytes: 1000, LastReport: start}

	r := bench.NewReport(s, start, bench.ModeUpload, 256, 256)
	test.ExpectEquality(t, r.FPS, 0.0)
	test.ExpectEquality(t, r.BytesPerSecond, 0.0)

	w := &strings.Builder{}
	test.ExpectSuccess(t, r.Write(w, bench.ModeUpload))
	test.ExpectEquality(t, w.String(), "fps: 0.000000\ntexture upload rate: 0.000000 MiB/s\n")
}

func TestFrameStatsReset(t *testing.T) {
	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	s := bench.FrameStats{Frames: 100, UploadTime: time.Second, UploadBytes: 1000, LastReport: start}

	now := start.Add(time.Minute)
	s.Reset(now)
	test.ExpectEquality(t, s, bench.FrameStats{LastReport: now})
}

func TestStateString(t *testing.T) {
	test.ExpectEquality(t, bench.Idle.String(), "idle")
	test.ExpectEquality(t, bench.Running.String(), "running")
	test.ExpectEquality(t, bench.Reporting.String(), "reporting")
	test.ExpectEquality(t, bench.Stopped.String(), "stopped")
}
