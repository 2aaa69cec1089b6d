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

// Package textures provides the rotating set of images used by the texture
// upload benchmark.
//
// A Pool holds exactly four images of identical size. The upload benchmark
// takes the next image from the pool every frame so that no two consecutive
// frames upload the same pixel data. This prevents a driver from recognising
// a repeated upload and skipping the transfer.
//
// The built-in images are generated once when the pool is created. Images can
// also be loaded from a directory with LoadPool(), in which case they are
// scaled to the requested size.
package textures
