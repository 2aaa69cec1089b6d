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

import (
	"fmt"
	"strings"
)

// SwapPolicy controls synchronisation of buffer swaps with the display.
type SwapPolicy int

// List of valid SwapPolicy values.
const (
	// the backend's default behaviour. no swap interval is set
	SwapDefault SwapPolicy = iota

	// wait for vertical retrace
	SwapSync

	// swap immediately
	SwapImmediate
)

// SwapPolicies lists the names accepted by ParseSwapPolicy().
var SwapPolicies = []string{"default", "on", "off"}

func (p SwapPolicy) String() string {
	switch p {
	case SwapDefault:
		return "default"
	case SwapSync:
		return "on"
	case SwapImmediate:
		return "off"
	}
	return "unknown"
}

// interval returns the swap interval for the policy. the default policy has
// no interval
func (p SwapPolicy) interval() (int, bool) {
	switch p {
	case SwapSync:
		return 1, true
	case SwapImmediate:
		return 0, true
	}
	return 0, false
}

// ParseSwapPolicy converts one of the strings in SwapPolicies to a SwapPolicy.
func ParseSwapPolicy(s string) (SwapPolicy, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return SwapDefault, nil
	case "on":
		return SwapSync, nil
	case "off":
		return SwapImmediate, nil
	}
	return SwapDefault, fmt.Errorf("glcontext: unrecognised swap policy: %s", s)
}
