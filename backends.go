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
	"sort"

	"github.com/jetsetilly/glbench/bench"
	"github.com/jetsetilly/glbench/platform"
	"github.com/jetsetilly/glbench/platform/glfwplatform"
	"github.com/jetsetilly/glbench/platform/sdlplatform"
)

// backends that can be selected with the -backend flag. platform specific
// backends are added by init() functions in build constrained files
var backends = map[string]func() platform.Backend{
	"sdl": func() platform.Backend {
		return sdlplatform.NewBackend()
	},
	"glfw": func() platform.Backend {
		return glfwplatform.NewBackend()
	},
}

// the backend used when none is specified. changed by build constrained files
var defaultBackend = "sdl"

func backendNames() []string {
	n := make([]string, 0, len(backends))
	for k := range backends {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

func newBackend(name string) (platform.Backend, error) {
	create, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown backend: %s", bench.ErrInvalidCLIValue, name)
	}
	return create(), nil
}
