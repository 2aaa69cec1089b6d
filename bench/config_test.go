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
	"errors"
	"testing"

	"github.com/jetsetilly/glbench/bench"
	"github.com/jetsetilly/glbench/geometry"
	"github.com/jetsetilly/glbench/test"
	"github.com/jetsetilly/glbench/textures"
)

func TestConfigModeSelection(t *testing.T) {
	cfg := bench.NewConfig()

	// neither mode
	err := cfg.Validate()
	test.ExpectSuccess(t, errors.Is(err, bench.ErrInvalidCLIValue))
	test.ExpectSuccess(t, errors.Is(err, bench.ErrModeSelection))

	// both modes
	cfg.Fillrate = true
	cfg.Upload = true
	err = cfg.Validate()
	test.ExpectSuccess(t, errors.Is(err, bench.ErrInvalidCLIValue))
	test.ExpectSuccess(t, errors.Is(err, bench.ErrModeSelection))

	cfg.Upload = false
	test.ExpectSuccess(t, cfg.Validate())
	test.ExpectEquality(t, cfg.Mode(), bench.ModeFillrate)

	cfg.Fillrate = false
	cfg.Upload = true
	test.ExpectSuccess(t, cfg.Validate())
	test.ExpectEquality(t, cfg.Mode(), bench.ModeUpload)
}

func TestConfigValues(t *testing.T) {
	valid := bench.NewConfig()
	valid.Fillrate = true

	tests := []struct {
		name   string
		alter  func(cfg *bench.Config)
		target error
	}{
		{name: "size", alter: func(cfg *bench.Config) { cfg.Size = 300 }, target: textures.ErrUnsupportedSize},
		{name: "zero size", alter: func(cfg *bench.Config) { cfg.Size = 0 }, target: textures.ErrUnsupportedSize},
		{name: "rotation", alter: func(cfg *bench.Config) { cfg.Rotation = 45 }, target: geometry.ErrRotation},
		{name: "frames", alter: func(cfg *bench.Config) { cfg.Frames = -1 }, target: bench.ErrInvalidCLIValue},
		{name: "interval", alter: func(cfg *bench.Config) { cfg.ReportInterval = 0 }, target: bench.ErrInvalidCLIValue},
	}

	for _, tt := range tests {
		cfg := valid
		tt.alter(&cfg)
		err := cfg.Validate()
		test.ExpectSuccess(t, errors.Is(err, bench.ErrInvalidCLIValue), tt.name)
		test.ExpectSuccess(t, errors.Is(err, tt.target), tt.name)
		test.ExpectFailure(t, errors.Is(err, bench.ErrModeSelection), tt.name)
	}

	for _, size := range textures.SupportedSizes {
		cfg := valid
		cfg.Size = size
		test.ExpectSuccess(t, cfg.Validate(), size)
	}

	for _, o := range geometry.Orientations {
		cfg := valid
		cfg.Rotation = o
		test.ExpectSuccess(t, cfg.Validate(), o)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := bench.NewConfig()
	test.ExpectEquality(t, cfg.Size, 256)
	test.ExpectEquality(t, cfg.Rotation, geometry.Rotate0)
	test.ExpectEquality(t, cfg.ReportInterval, 100)
	test.ExpectEquality(t, cfg.Frames, 0)
}
