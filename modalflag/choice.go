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

package modalflag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChoice is returned by Parse() when a flag added with AddChoice()
// is given a value that is not in its list of choices.
var ErrInvalidChoice = errors.New("invalid choice")

// choice implements the flag.Value interface
type choice struct {
	md      *Modes
	name    string
	value   *string
	choices []string
}

func (c *choice) String() string {
	if c.value == nil {
		return ""
	}
	return *c.value
}

func (c *choice) Set(s string) error {
	for _, ch := range c.choices {
		if strings.EqualFold(s, ch) {
			*c.value = ch
			return nil
		}
	}

	err := fmt.Errorf("%w: %s must be one of: %s", ErrInvalidChoice, c.name, strings.Join(c.choices, ", "))
	if c.md.choiceErr == nil {
		c.md.choiceErr = err
	}
	return err
}

// AddChoice flag for next call to Parse(). The value of the flag must be one
// of the listed choices. Comparison is case insensitive and the value is
// always set to the spelling used in the list.
//
// The default value does not need to be in the list of choices. This allows
// an empty default to mean that the flag was not specified.
func (md *Modes) AddChoice(name string, value string, choices []string, usage string) *string {
	v := value
	c := &choice{
		md:      md,
		name:    name,
		value:   &v,
		choices: choices,
	}
	md.flags.Var(c, name, fmt.Sprintf("%s (%s)", usage, strings.Join(choices, "|")))
	return &v
}
