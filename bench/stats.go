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
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/glbench/performance"
	"github.com/jetsetilly/glbench/textures"
)

// State of the benchmark loop.
type State int

// List of valid State values.
const (
	// the session has been created but Run() has not been called
	Idle State = iota

	// frames are being drawn
	Running

	// a report is being produced. the loop returns to the Running state
	// once the report has been written
	Reporting

	// the loop has ended. this state is terminal
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Reporting:
		return "reporting"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// FrameStats accumulates measurements between reports.
type FrameStats struct {
	// frames drawn since the last report
	Frames int

	// time spent in texture uploads and number of bytes uploaded since the
	// last report
	UploadTime  time.Duration
	UploadBytes int64

	// time of the last report, or the start of the loop if there have been
	// no reports
	LastReport time.Time
}

// Reset clears the accumulated measurements and sets the time of the last
// report.
func (s *FrameStats) Reset(now time.Time) {
	*s = FrameStats{LastReport: now}
}

// Report is produced from FrameStats at the end of every report interval.
type Report struct {
	Frames int `yaml:"frames"`

	// seconds since the previous report
	Elapsed float64 `yaml:"elapsed"`

	FPS float64 `yaml:"fps"`

	// fill rate in fill-rate mode. upload rate in upload mode
	BytesPerSecond float64 `yaml:"bytes_per_second"`

	// upload mode only
	UploadTime  float64 `yaml:"upload_time,omitempty"`
	UploadBytes int64   `yaml:"upload_bytes,omitempty"`
}

// MiBPerSecond returns the rate in mebibytes per second.
func (r Report) MiBPerSecond() float64 {
	return performance.ToMiB(r.BytesPerSecond)
}

// NewReport creates a report from the accumulated measurements. Width and
// height are the dimensions of the surface.
func NewReport(s FrameStats, now time.Time, mode Mode, width int, height int) Report {
	r := Report{
		Frames:  s.Frames,
		Elapsed: now.Sub(s.LastReport).Seconds(),
	}

	r.FPS = performance.CalcFPS(r.Frames, r.Elapsed)

	switch mode {
	case ModeFillrate:
		b := int64(r.Frames) * int64(width) * int64(height) * textures.BytesPerPixel
		r.BytesPerSecond = performance.CalcRate(b, r.Elapsed)
	case ModeUpload:
		r.UploadTime = s.UploadTime.Seconds()
		r.UploadBytes = s.UploadBytes
		r.BytesPerSecond = performance.CalcRate(s.UploadBytes, r.UploadTime)
	}

	return r
}

// Write the report in the standard output format.
func (r Report) Write(w io.Writer, mode Mode) error {
	_, err := fmt.Fprintf(w, "fps: %f\n", r.FPS)
	if err != nil {
		return err
	}

	switch mode {
	case ModeFillrate:
		_, err = fmt.Fprintf(w, "fill rate: %f MiB/s\n", r.MiBPerSecond())
	case ModeUpload:
		_, err = fmt.Fprintf(w, "texture upload rate: %f MiB/s\n", r.MiBPerSecond())
	}

	return err
}
