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

import "time"

// Clock is the source of time for all measurements.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock uses the time package. Go's time.Now() includes a monotonic
// reading so measurements are not affected by changes to the wall clock.
var SystemClock Clock = systemClock{}
