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

import (
	"fmt"
	"slices"
	"strings"
)

// Calls is an ordered record of function calls.
type Calls struct {
	list []string
}

func (c *Calls) add(call string, args ...any) {
	if len(args) > 0 {
		s := make([]string, 0, len(args))
		for _, a := range args {
			s = append(s, fmt.Sprintf("%v", a))
		}
		call = fmt.Sprintf("%s(%s)", call, strings.Join(s, ","))
	}
	c.list = append(c.list, call)
}

// List returns a copy of the recorded calls.
func (c *Calls) List() []string {
	return slices.Clone(c.list)
}

// Len returns the number of recorded calls.
func (c *Calls) Len() int {
	return len(c.list)
}

// Reset forgets all recorded calls.
func (c *Calls) Reset() {
	c.list = c.list[:0]
}

// Count returns the number of times the call has been recorded.
func (c *Calls) Count(call string) int {
	var n int
	for _, s := range c.list {
		if s == call {
			n++
		}
	}
	return n
}

// Index returns the position of the first occurrence of call, or -1.
func (c *Calls) Index(call string) int {
	return slices.Index(c.list, call)
}

// Filter returns the recorded calls, in order, that start with one of the
// prefixes. Useful for checking the order of a subset of calls.
func (c *Calls) Filter(prefixes ...string) string {
	var s []string
	for _, l := range c.list {
		for _, p := range prefixes {
			if strings.HasPrefix(l, p) {
				s = append(s, l)
				break
			}
		}
	}
	return strings.Join(s, " ")
}

func (c *Calls) String() string {
	return strings.Join(c.list, " ")
}
