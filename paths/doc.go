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

// Package paths contains functions to prepare paths to glbench resources and
// output files.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the directory of replacement 512x512
// textures:
//
//	d := paths.ResourcePath("textures", "512")
//
// The policy of ResourcePath() is simple: if the base resource path, currently
// defined to be ".glbench", is present in the program's current directory
// then that is the base path that will used. If it is not present, then the
// user's config directory is used. The package uses os.UserConfigDir() from
// the go standard library for this.
//
// In the example above, on a modern Linux system, the path returned will be:
//
//	/home/user/.config/glbench/textures/512
//
// Expand() replaces the tilde at the start of a path given on the command
// line with the user's home directory.
//
// UniqueFilename() creates names for output files that will not collide with
// the output of earlier runs.
package paths
