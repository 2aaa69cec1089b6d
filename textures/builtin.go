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

package textures

// number of tiles along each edge of the built-in images. keeps the patterns
// visually the same regardless of image size
const tiles = 8

// builtin generates the built-in image with index n. each index produces a
// different pattern so that no two images in the pool share pixel data
func builtin(n int, size int) PixelBuffer {
	p := PixelBuffer{
		Width:  size,
		Height: size,
		Pix:    make([]byte, size*size*BytesPerPixel),
	}

	tile := size / tiles

	for y := range size {
		for x := range size {
			var r, g, b byte

			switch n {
			case 0:
				// checkerboard
				if ((x/tile)+(y/tile))%2 == 0 {
					r, g, b = 0xe0, 0xe0, 0xe0
				} else {
					r, g, b = 0x20, 0x20, 0x60
				}
			case 1:
				// horizontal and vertical gradient
				r = byte(x * 255 / (size - 1))
				g = byte(y * 255 / (size - 1))
				b = 0x80
			case 2:
				// xor pattern
				v := byte(x ^ y)
				r, g, b = v, 0xff-v, v>>1
			case 3:
				// concentric bands
				dx := x - size/2
				dy := y - size/2
				d := (dx*dx + dy*dy) / (tile * tile / 4)
				r = byte(d * 37)
				g = byte(d * 91)
				b = byte(0xff - d*17)
			}

			i := (y*size + x) * BytesPerPixel
			p.Pix[i] = r
			p.Pix[i+1] = g
			p.Pix[i+2] = b
			p.Pix[i+3] = 0xff
		}
	}

	return p
}
