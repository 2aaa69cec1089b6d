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

package paths

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
)

// Expand replaces a leading tilde in a path given on the command line with
// the user's home directory. Paths without a tilde are returned unchanged.
func Expand(pth string) (string, error) {
	p, err := homedir.Expand(pth)
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return p, nil
}
