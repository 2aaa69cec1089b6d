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

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// ImageFilenames are the files looked for by LoadPool(). Each name is tried
// with each of the extensions in ImageExtensions.
var ImageFilenames = [PoolSize]string{"1", "2", "3", "4"}

// ImageExtensions are tried in order when looking for an image file.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// LoadPool creates a pool from image files in a directory. Images are scaled
// to size by size pixels. Any size greater than zero is accepted.
func LoadPool(dir string, size int) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("textures: %w: %d", ErrUnsupportedSize, size)
	}

	p := &Pool{}
	for i, n := range ImageFilenames {
		img, err := loadImage(dir, n)
		if err != nil {
			return nil, fmt.Errorf("textures: %w", err)
		}
		p.images[i] = FromImage(img, size)
	}

	return p, nil
}

func loadImage(dir string, name string) (image.Image, error) {
	for _, ext := range ImageExtensions {
		fn := filepath.Join(dir, name+ext)
		f, err := os.Open(fn)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("%w: %w", ErrImage, err)
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrImage, fn, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("%w: no file for %s in %s", ErrImage, name, dir)
}

// FromImage converts any image to a PixelBuffer of size by size pixels.
func FromImage(img image.Image, size int) PixelBuffer {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return PixelBuffer{
		Width:  size,
		Height: size,
		Pix:    dst.Pix,
	}
}
