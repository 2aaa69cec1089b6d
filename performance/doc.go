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

// Package performance contains helper functions relating to performance.
//
// RunProfiler() can be used to generate the various profile types while
// running a function. On its own it will not limit the amount of time the
// function runs for.
//
// CalcFPS() and CalcRate() calculate frames-per-second and bytes-per-second.
// Both return zero rather than infinity or NaN when the duration is zero.
package performance
