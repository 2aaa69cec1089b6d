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

package sdlplatform_test

import (
	"testing"

	"github.com/jetsetilly/glbench/platform"
	"github.com/jetsetilly/glbench/platform/sdlplatform"
	"github.com/jetsetilly/glbench/test"
)

func TestKind(t *testing.T) {
	b := sdlplatform.NewBackend()
	test.ExpectEquality(t, b.Name(), "sdl")

	t.Setenv("SDL_VIDEODRIVER", "x11")
	test.ExpectEquality(t, b.Kind(), platform.WindowedX11Like)

	t.Setenv("SDL_VIDEODRIVER", "kmsdrm")
	test.ExpectEquality(t, b.Kind(), platform.CompositorSurfaceLike)

	t.Setenv("SDL_VIDEODRIVER", "wayland")
	test.ExpectEquality(t, b.Kind(), platform.CompositorSurfaceLike)
}
