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

package performance

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/glbench/logger"
	"github.com/jetsetilly/glbench/paths"
)

// Profile specifies which profiling (if any) should be performed. Values can
// be combined.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileTrace
)

// ProfileOptions lists the names accepted by ParseProfile().
var ProfileOptions = []string{"none", "cpu", "mem", "trace", "all"}

// ParseProfile converts a comma separated list of profile names to a
// Profile.
func ParseProfile(s string) (Profile, error) {
	var p Profile

	for _, n := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "trace":
			p |= ProfileTrace
		case "all":
			p |= ProfileCPU | ProfileMem | ProfileTrace
		default:
			return ProfileNone, fmt.Errorf("performance: unknown profile type: %s", n)
		}
	}

	return p, nil
}

func (p Profile) String() string {
	if p == ProfileNone {
		return "none"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "trace")
	}
	return strings.Join(s, ",")
}

// RunProfiler runs the supplied function "through" the requested Profile
// types. Output files are named with paths.UniqueFilename() using the
// filenameHeader.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		fn := fmt.Sprintf("%s.profile", paths.UniqueFilename("cpu", filenameHeader))
		f, err := os.Create(fn)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				rerr = errors.Join(rerr, fmt.Errorf("performance: %w", err))
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()

		logger.Logf(logger.Allow, "profile", "cpu profile: %s", fn)
	}

	if profile&ProfileTrace == ProfileTrace {
		fn := fmt.Sprintf("%s.trace", paths.UniqueFilename("trace", filenameHeader))
		f, err := os.Create(fn)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				rerr = errors.Join(rerr, fmt.Errorf("performance: %w", err))
			}
		}()

		err = trace.Start(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer trace.Stop()

		logger.Logf(logger.Allow, "profile", "trace: %s", fn)
	}

	err := run()

	if profile&ProfileMem == ProfileMem {
		fn := fmt.Sprintf("%s.profile", paths.UniqueFilename("mem", filenameHeader))
		f, ferr := os.Create(fn)
		if ferr != nil {
			return errors.Join(err, fmt.Errorf("performance: %w", ferr))
		}
		defer func() {
			if err := f.Close(); err != nil {
				rerr = errors.Join(rerr, fmt.Errorf("performance: %w", err))
			}
		}()

		runtime.GC()
		if ferr := pprof.WriteHeapProfile(f); ferr != nil {
			return errors.Join(err, fmt.Errorf("performance: %w", ferr))
		}

		logger.Logf(logger.Allow, "profile", "mem profile: %s", fn)
	}

	return err
}
