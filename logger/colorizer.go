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

package logger

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Colorizer applies basic coloring rules to logging output. The first line of
// each write is output unchanged and any following lines are output in a
// faint red. Colour is only used if the environment supports it.
type Colorizer struct {
	out     io.Writer
	profile termenv.Profile
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:     out,
		profile: termenv.NewOutput(out).EnvColorProfile(),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	var s strings.Builder
	s.WriteString(l[0])
	s.WriteString("\n")

	if len(l) > 1 {
		red := c.profile.Color("1")
		for _, t := range l[1:] {
			s.WriteString(c.profile.String(t).Foreground(red).Faint().String())
			s.WriteString("\n")
		}
	}

	_, err := io.WriteString(c.out, s.String())
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
