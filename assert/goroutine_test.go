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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/glbench/assert"
	"github.com/jetsetilly/glbench/test"
)

func TestGoRoutineID(t *testing.T) {
	id := assert.GetGoRoutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, assert.GetGoRoutineID(), id)

	ch := make(chan uint64)
	go func() {
		ch <- assert.GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-ch, id)
}

func TestOwner(t *testing.T) {
	o := assert.NewOwner()
	test.ExpectSuccess(t, o.IsOwner())
	o.Check("resource")

	ch := make(chan any)
	go func() {
		defer func() {
			ch <- recover()
		}()
		o.Check("resource")
	}()
	test.ExpectInequality(t, <-ch, nil)
}
