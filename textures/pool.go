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
	"errors"
	"fmt"
)

// Sentinel errors returned by the textures package.
var (
	ErrUnsupportedSize = errors.New("unsupported texture size")
	ErrImage           = errors.New("texture image")
)

// PoolSize is the number of images in a Pool.
const PoolSize = 4

// BytesPerPixel for the RGBA format used by every image in the pool.
const BytesPerPixel = 4

// SupportedSizes lists the image dimensions accepted by NewPool().
var SupportedSizes = []int{256, 512}

// IsSupportedSize returns true if the size is in the SupportedSizes list.
func IsSupportedSize(size int) bool {
	for _, s := range SupportedSizes {
		if s == size {
			return true
		}
	}
	return false
}

// PixelBuffer is a tightly packed RGBA image. The first row of pixels is the
// top of the image.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// Bytes returns the size of the pixel data in bytes.
func (p PixelBuffer) Bytes() int {
	return p.Width * p.Height * BytesPerPixel
}

// Pool is the rotating set of images. The content of the images never
// changes once the pool has been created.
type Pool struct {
	images [PoolSize]PixelBuffer
	index  int
}

// NewPool creates a pool of built-in images for the requested size. Only sizes
// listed in SupportedSizes are accepted.
func NewPool(size int) (*Pool, error) {
	if !IsSupportedSize(size) {
		return nil, fmt.Errorf("textures: %w: %d", ErrUnsupportedSize, size)
	}

	p := &Pool{}
	for i := range p.images {
		p.images[i] = builtin(i, size)
	}
	return p, nil
}

// Size returns the width (and height) of the images in the pool.
func (p *Pool) Size() int {
	return p.images[0].Width
}

// Next returns the image at the current index and then advances the index,
// wrapping back to zero after the last image.
func (p *Pool) Next() PixelBuffer {
	b := p.images[p.index]
	p.index = (p.index + 1) % PoolSize
	return b
}

// Index returns the index of the image that will be returned by the next
// call to Next().
func (p *Pool) Index() int {
	return p.index
}

// At returns the image at index i without changing the current index. The
// index is taken modulo PoolSize.
func (p *Pool) At(i int) PixelBuffer {
	return p.images[((i%PoolSize)+PoolSize)%PoolSize]
}
