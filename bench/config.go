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

	"github.com/jetsetilly/glbench/geometry"
	"github.com/jetsetilly/glbench/glcontext"
	"github.com/jetsetilly/glbench/textures"
)

// Sentinel errors for configuration problems.
var (
	ErrInvalidCLIValue = errors.New("invalid value")

	// exactly one of the benchmark modes must be selected. always wrapped
	// with ErrInvalidCLIValue
	ErrModeSelection = errors.New("select one of fillrate or upload")
)

// Mode of the benchmark.
type Mode int

// List of valid Mode values.
const (
	ModeFillrate Mode = iota
	ModeUpload
)

func (m Mode) String() string {
	switch m {
	case ModeFillrate:
		return "fillrate"
	case ModeUpload:
		return "upload"
	}
	return "unknown"
}

// DefaultReportInterval is the number of frames between reports.
const DefaultReportInterval = 100

// Config for a benchmark session.
type Config struct {
	// exactly one of these must be true
	Fillrate bool
	Upload   bool

	// width and height of the surface and of the textures
	Size int

	Rotation geometry.Orientation

	// number of frames to draw. zero means until cancelled
	Frames int

	// number of frames between reports
	ReportInterval int

	SwapPolicy glcontext.SwapPolicy

	// time each presentation and print the time taken
	SwapTiming bool

	// directory of replacement images. empty to use the built-in images
	TextureDir string
}

// NewConfig returns a Config with default values. Neither mode is selected.
func NewConfig() Config {
	return Config{
		Size:           256,
		Rotation:       geometry.Rotate0,
		ReportInterval: DefaultReportInterval,
		SwapPolicy:     glcontext.SwapDefault,
	}
}

// Validate checks the configuration for errors. All errors wrap
// ErrInvalidCLIValue.
func (cfg Config) Validate() error {
	if cfg.Fillrate == cfg.Upload {
		return fmt.Errorf("bench: %w: %w", ErrInvalidCLIValue, ErrModeSelection)
	}
	if !textures.IsSupportedSize(cfg.Size) {
		return fmt.Errorf("bench: %w: %w: %d", ErrInvalidCLIValue, textures.ErrUnsupportedSize, cfg.Size)
	}
	if !cfg.Rotation.Valid() {
		return fmt.Errorf("bench: %w: %w: %d", ErrInvalidCLIValue, geometry.ErrRotation, int(cfg.Rotation))
	}
	if cfg.Frames < 0 {
		return fmt.Errorf("bench: %w: frame count cannot be negative: %d", ErrInvalidCLIValue, cfg.Frames)
	}
	if cfg.ReportInterval <= 0 {
		return fmt.Errorf("bench: %w: report interval must be positive: %d", ErrInvalidCLIValue, cfg.ReportInterval)
	}
	return nil
}

// Mode returns the selected benchmark mode. The result is only meaningful if
// Validate() returns no error.
func (cfg Config) Mode() Mode {
	if cfg.Upload {
		return ModeUpload
	}
	return ModeFillrate
}
