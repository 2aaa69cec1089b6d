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

package mock

import "time"

// Clock is a clock that only moves when told to.
type Clock struct {
	now time.Time
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock() *Clock {
	return &Clock{
		now: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Now implements the bench.Clock interface.
func (c *Clock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
