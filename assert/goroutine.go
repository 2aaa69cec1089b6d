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

// Package assert contains functions that panic when an assumption about the
// running program does not hold.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for a goroutine. It returns a result
// that is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for assertions and testing.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that owns a resource.
type Owner struct {
	id uint64
}

// NewOwner returns an Owner for the calling goroutine.
func NewOwner() Owner {
	return Owner{id: GetGoRoutineID()}
}

// IsOwner returns true if the calling goroutine is the owner.
func (o Owner) IsOwner() bool {
	return o.id == GetGoRoutineID()
}

// Check panics if the calling goroutine is not the owner. The resource string
// is used in the panic message.
func (o Owner) Check(resource string) {
	if id := GetGoRoutineID(); id != o.id {
		panic(fmt.Sprintf("assert: %s is owned by goroutine %d but used by goroutine %d", resource, o.id, id))
	}
}
