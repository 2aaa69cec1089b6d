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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error and allow the test to continue.
// The Demand*() functions stop the test immediately. Demand is useful when
// later parts of the test depend on the value being correct, for example the
// length of a slice before indexing into it.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type. It is worth describing how nil is handled because it is not
// obvious: nil is considered a success. This is because of how errors usually
// work (nil to indicate no error).
//
// All functions accept an optional list of tags. The tags are printed at the
// start of any failure message and are useful for identifying which iteration
// of a table driven test has failed.
//
// The RingWriter type implements the io.Writer interface and keeps only the
// most recent output. Useful for capturing the output of long running
// functions when only the final lines are of interest.
package test
