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

package performance

// MiB is the number of bytes in a mebibyte.
const MiB = 1024 * 1024

// CalcFPS takes the number of frames and duration (in seconds) and returns the
// frames-per-second.
func CalcFPS(numFrames int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numFrames) / duration
}

// CalcRate takes the number of bytes and duration (in seconds) and returns the
// bytes-per-second.
func CalcRate(numBytes int64, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numBytes) / duration
}

// ToMiB converts a value in bytes to mebibytes.
func ToMiB(v float64) float64 {
	return v / MiB
}
