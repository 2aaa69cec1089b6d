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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments. Parsing in two steps allows modes to be handled:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		upload := md.AddBool("upload", false, "measure texture upload rate")
//		size := md.AddChoice("size", "256", []string{"256", "512"}, "texture size")
//		p, err := md.Parse()
//		...
//	}
//
// The first sub-mode in the list is the default and is selected when the
// first argument is not the name of a mode. Sub-mode comparisons are case
// insensitive.
//
// Flags added with AddChoice() only accept one of a list of values. A value
// outside of the list causes Parse() to return ParseError and an error
// wrapping ErrInvalidChoice. Any other error from Parse() indicates that the
// arguments were malformed, for example an unknown flag. The caller can use
// the distinction to decide whether to print the Help() message.
//
// Help messages for the -help flag are printed to the Output field
// automatically. Parse() returns ParseHelp in that case.
package modalflag
