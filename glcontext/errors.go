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

package glcontext

import "errors"

// Sentinel errors returned by the glcontext package. Failure to initialise the
// display is reported with platform.ErrConnection.
var (
	ErrConfiguration   = errors.New("no unambiguous framebuffer configuration")
	ErrSurfaceCreation = errors.New("cannot create drawable surface")
	ErrContextCreation = errors.New("cannot create rendering context")
	ErrContextCurrent  = errors.New("cannot make context current")
	ErrDestroyed       = errors.New("context has been destroyed")
)
