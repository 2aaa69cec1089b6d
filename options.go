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

package main

import (
	"fmt"
	"strconv"

	"github.com/jetsetilly/glbench/bench"
	"github.com/jetsetilly/glbench/geometry"
	"github.com/jetsetilly/glbench/glcontext"
	"github.com/jetsetilly/glbench/logger"
	"github.com/jetsetilly/glbench/modalflag"
	"github.com/jetsetilly/glbench/paths"
	"github.com/jetsetilly/glbench/performance"
	"github.com/jetsetilly/glbench/textures"
)

// the usage line of earlier versions of the program
const usage = "usage: glbench: [ --rotate 90|180|270 ] [ --size 256|512 ] [--fillrate|--upload]"

// options common to the RUN and INFO modes
type options struct {
	backend  *string
	size     *string
	vsync    *string
	textures *string
	log      *bool
}

func addOptions(md *modalflag.Modes) options {
	return options{
		backend:  md.AddChoice("backend", defaultBackend, backendNames(), "presentation backend"),
		size:     md.AddChoice("size", "256", sizeChoices(), "width and height of surface and textures"),
		vsync:    md.AddChoice("vsync", glcontext.SwapDefault.String(), glcontext.SwapPolicies, "synchronise buffer swaps with the display"),
		textures: md.AddString("textures", "", "directory of images to use as textures"),
		log:      md.AddBool("log", false, "echo log to stderr"),
	}
}

func sizeChoices() []string {
	s := make([]string, 0, len(textures.SupportedSizes))
	for _, v := range textures.SupportedSizes {
		s = append(s, strconv.Itoa(v))
	}
	return s
}

func rotateChoices() []string {
	s := make([]string, 0, len(geometry.Orientations))
	for _, o := range geometry.Orientations {
		s = append(s, o.String())
	}
	return s
}

// apply the options to the configuration
func (o options) apply(cfg *bench.Config) error {
	var err error

	cfg.Size, err = strconv.Atoi(*o.size)
	if err != nil {
		return fmt.Errorf("%w: size: %w", bench.ErrInvalidCLIValue, err)
	}

	cfg.SwapPolicy, err = glcontext.ParseSwapPolicy(*o.vsync)
	if err != nil {
		return fmt.Errorf("%w: %w", bench.ErrInvalidCLIValue, err)
	}

	cfg.TextureDir, err = paths.Expand(*o.textures)
	if err != nil {
		return fmt.Errorf("%w: textures: %w", bench.ErrInvalidCLIValue, err)
	}
	if cfg.TextureDir == "" {
		// images in the resource directory are used if they exist
		dir := paths.ResourcePath("textures", *o.size)
		if paths.IsDir(dir) {
			logger.Logf(logger.Allow, "glbench", "using textures in %s", dir)
			cfg.TextureDir = dir
		}
	}

	return nil
}

// options for the RUN mode
type runOptions struct {
	options

	fillrate  *bool
	upload    *bool
	rotate    *string
	frames    *int
	swaptime  *bool
	results   *string
	summary   *bool
	profile   *string
	statsview *bool
	memviz    *string
}

func addRunOptions(md *modalflag.Modes) runOptions {
	return runOptions{
		options:   addOptions(md),
		fillrate:  md.AddBool("fillrate", false, "measure fill rate"),
		upload:    md.AddBool("upload", false, "measure texture upload rate"),
		rotate:    md.AddChoice("rotate", geometry.Rotate0.String(), rotateChoices(), "rotation of the texture in degrees"),
		frames:    md.AddInt("frames", 0, "number of frames to draw. zero to run until cancelled"),
		swaptime:  md.AddBool("swaptime", false, "print the time taken by every buffer swap"),
		results:   md.AddString("results", "", "write results to file"),
		summary:   md.AddBool("summary", false, "print summary of all reports to stderr"),
		profile:   md.AddString("profile", "none", "run through profiler: cpu, mem, trace, all (comma separated)"),
		statsview: md.AddBool("statsview", false, "launch statsview server (if available)"),
		memviz:    md.AddString("memviz", "", "write object graph of the benchmark to file (graphviz format)"),
	}
}

func (o runOptions) config() (bench.Config, error) {
	cfg := bench.NewConfig()
	cfg.Fillrate = *o.fillrate
	cfg.Upload = *o.upload
	cfg.Frames = *o.frames
	cfg.SwapTiming = *o.swaptime

	var err error

	cfg.Rotation, err = geometry.ParseRotation(*o.rotate)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", bench.ErrInvalidCLIValue, err)
	}

	err = o.apply(&cfg)
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// output returns the expanded filenames for the results and memviz files.
// either filename may be empty
func (o runOptions) output() (string, string, error) {
	results, err := paths.Expand(*o.results)
	if err != nil {
		return "", "", fmt.Errorf("%w: results: %w", bench.ErrInvalidCLIValue, err)
	}
	memviz, err := paths.Expand(*o.memviz)
	if err != nil {
		return "", "", fmt.Errorf("%w: memviz: %w", bench.ErrInvalidCLIValue, err)
	}
	return results, memviz, nil
}

func (o runOptions) profiling() (performance.Profile, error) {
	p, err := performance.ParseProfile(*o.profile)
	if err != nil {
		return p, fmt.Errorf("%w: %w", bench.ErrInvalidCLIValue, err)
	}
	return p, nil
}

// options for the INFO mode
type infoOptions struct {
	options
}

func addInfoOptions(md *modalflag.Modes) infoOptions {
	return infoOptions{
		options: addOptions(md),
	}
}

// the INFO mode draws nothing but the session still requires a valid mode
func (o infoOptions) config() (bench.Config, error) {
	cfg := bench.NewConfig()
	cfg.Fillrate = true

	err := o.apply(&cfg)
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}
