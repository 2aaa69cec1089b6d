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

// Package geometry describes the single textured quad drawn by the benchmark.
//
// The quad covers the whole of clip space and is drawn as a five vertex
// triangle strip, the fifth vertex repeating the first. Each vertex is five
// floats: a position (x, y, z) followed by a texture coordinate (u, v).
//
// Four orientations are available. Rotating the quad by 90 degrees moves each
// texture coordinate one vertex around the quad, the positions never change.
package geometry

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors returned by ParseRotation().
var (
	ErrRotation = errors.New("invalid rotation")
)

// Orientation of the texture on the quad, in degrees clockwise.
type Orientation int

// List of valid Orientation values.
const (
	Rotate0   Orientation = 0
	Rotate90  Orientation = 90
	Rotate180 Orientation = 180
	Rotate270 Orientation = 270
)

// Orientations lists every valid orientation in ascending order.
var Orientations = []Orientation{Rotate0, Rotate90, Rotate180, Rotate270}

func (o Orientation) String() string {
	return strconv.Itoa(int(o))
}

// Valid returns true if the orientation is one of the four supported values.
func (o Orientation) Valid() bool {
	switch o {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return true
	}
	return false
}

// ParseRotation converts a string in degrees to an Orientation. An empty
// string is the same as "0".
func ParseRotation(s string) (Orientation, error) {
	if s == "" {
		return Rotate0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Rotate0, fmt.Errorf("%w: %s", ErrRotation, s)
	}
	o := Orientation(v)
	if !o.Valid() {
		return Rotate0, fmt.Errorf("%w: %s", ErrRotation, s)
	}
	return o, nil
}

// Layout of the interleaved vertex data. Sizes and offsets are in floats.
const (
	PositionSize   = 3
	TexCoordSize   = 2
	Stride         = PositionSize + TexCoordSize
	PositionOffset = 0
	TexCoordOffset = PositionSize

	// number of vertices in the triangle strip
	Vertices = 5

	// size in bytes of a single float in the vertex data
	FloatSize = 4
)

// Quad is the interleaved vertex data for one orientation.
type Quad [Vertices * Stride]float32

// the corners of the quad, in strip order. bottom-left, top-left, top-right,
// bottom-right
var corners = [4][PositionSize]float32{
	{-1.0, -1.0, 0.0},
	{-1.0, 1.0, 0.0},
	{1.0, 1.0, 0.0},
	{1.0, -1.0, 0.0},
}

// texture coordinates for the unrotated quad. the texture's first row is at
// the top of the quad
var texCoords = [4][TexCoordSize]float32{
	{0.0, 1.0},
	{0.0, 0.0},
	{1.0, 0.0},
	{1.0, 1.0},
}

// NewQuad returns the vertex data for the orientation. The function will panic
// if the orientation is not valid.
func NewQuad(o Orientation) Quad {
	if !o.Valid() {
		panic(fmt.Sprintf("geometry: invalid orientation (%d)", int(o)))
	}

	shift := int(o) / 90

	var q Quad
	for v := range Vertices {
		c := v % len(corners)
		t := (c - shift + len(texCoords)) % len(texCoords)
		i := v * Stride
		copy(q[i+PositionOffset:], corners[c][:])
		copy(q[i+TexCoordOffset:], texCoords[t][:])
	}
	return q
}

// Position returns the position of vertex v.
func (q *Quad) Position(v int) [PositionSize]float32 {
	var p [PositionSize]float32
	copy(p[:], q[v*Stride+PositionOffset:])
	return p
}

// TexCoord returns the texture coordinate of vertex v.
func (q *Quad) TexCoord(v int) [TexCoordSize]float32 {
	var t [TexCoordSize]float32
	copy(t[:], q[v*Stride+TexCoordOffset:])
	return t
}

// Bytes returns the size of the vertex data in bytes.
func (q *Quad) Bytes() int {
	return len(q) * FloatSize
}
