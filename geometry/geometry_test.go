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

package geometry_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/glbench/geometry"
	"github.com/jetsetilly/glbench/test"
)

// the vertex tables as they would be written out by hand
var expected = map[geometry.Orientation]geometry.Quad{
	geometry.Rotate0: {
		-1.0, -1.0, 0.0, 0.0, 1.0,
		-1.0, 1.0, 0.0, 0.0, 0.0,
		1.0, 1.0, 0.0, 1.0, 0.0,
		1.0, -1.0, 0.0, 1.0, 1.0,
		-1.0, -1.0, 0.0, 0.0, 1.0,
	},
	geometry.Rotate90: {
		-1.0, -1.0, 0.0, 1.0, 1.0,
		-1.0, 1.0, 0.0, 0.0, 1.0,
		1.0, 1.0, 0.0, 0.0, 0.0,
		1.0, -1.0, 0.0, 1.0, 0.0,
		-1.0, -1.0, 0.0, 1.0, 1.0,
	},
	geometry.Rotate180: {
		-1.0, -1.0, 0.0, 1.0, 0.0,
		-1.0, 1.0, 0.0, 1.0, 1.0,
		1.0, 1.0, 0.0, 0.0, 1.0,
		1.0, -1.0, 0.0, 0.0, 0.0,
		-1.0, -1.0, 0.0, 1.0, 0.0,
	},
	geometry.Rotate270: {
		-1.0, -1.0, 0.0, 0.0, 0.0,
		-1.0, 1.0, 0.0, 1.0, 0.0,
		1.0, 1.0, 0.0, 1.0, 1.0,
		1.0, -1.0, 0.0, 0.0, 1.0,
		-1.0, -1.0, 0.0, 0.0, 0.0,
	},
}

func TestTables(t *testing.T) {
	for _, o := range geometry.Orientations {
		test.ExpectEquality(t, geometry.NewQuad(o), expected[o], o)
	}
}

func TestPositionsNeverChange(t *testing.T) {
	base := geometry.NewQuad(geometry.Rotate0)
	for _, o := range geometry.Orientations {
		q := geometry.NewQuad(o)
		for v := range geometry.Vertices {
			test.ExpectEquality(t, q.Position(v), base.Position(v), o, v)
		}
	}
}

func TestStripIsClosed(t *testing.T) {
	for _, o := range geometry.Orientations {
		q := geometry.NewQuad(o)
		test.ExpectEquality(t, q.Position(4), q.Position(0), o)
		test.ExpectEquality(t, q.TexCoord(4), q.TexCoord(0), o)
	}
}

func TestTexCoordRange(t *testing.T) {
	for _, o := range geometry.Orientations {
		q := geometry.NewQuad(o)
		for v := range geometry.Vertices {
			tc := q.TexCoord(v)
			for _, c := range tc {
				test.ExpectSuccess(t, c == 0.0 || c == 1.0, o, v)
			}
		}
	}
}

// each 90 degree step moves the texture coordinates one vertex around the quad
func TestRotationIsCyclic(t *testing.T) {
	for i := 1; i < len(geometry.Orientations); i++ {
		prev := geometry.NewQuad(geometry.Orientations[i-1])
		rot := geometry.NewQuad(geometry.Orientations[i])
		for v := range 4 {
			test.ExpectEquality(t, rot.TexCoord(v), prev.TexCoord((v+3)%4), geometry.Orientations[i], v)
		}
	}
}

func TestParseRotation(t *testing.T) {
	for _, s := range []string{"0", "90", "180", "270"} {
		o, err := geometry.ParseRotation(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, o.String(), s)
	}

	o, err := geometry.ParseRotation("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, o, geometry.Rotate0)

	for _, s := range []string{"45", "-90", "360", "ninety"} {
		_, err := geometry.ParseRotation(s)
		test.ExpectSuccess(t, errors.Is(err, geometry.ErrRotation), s)
	}
}

func TestQuadSize(t *testing.T) {
	q := geometry.NewQuad(geometry.Rotate0)
	test.ExpectEquality(t, q.Bytes(), 100)
	test.ExpectEquality(t, geometry.Stride*geometry.FloatSize, 20)
	test.ExpectEquality(t, geometry.TexCoordOffset*geometry.FloatSize, 12)
}
