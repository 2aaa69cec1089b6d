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

//go:build linux || freebsd

package x11egl

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// event masks
const (
	keyPressMask = 1 << 0
	exposureMask = 1 << 15
)

// event types
const (
	keyPress      = 2
	clientMessage = 33
)

// size of the XEvent union on 64bit systems
const xEventSize = 192

// offset of data.l[0] in an XClientMessageEvent on 64bit systems
const clientMessageData = 56

// flag for the input field of xWMHints
const inputHint = 1 << 0

// layout of XWMHints on 64bit systems
type xWMHints struct {
	flags        int64
	input        int32
	initialState int32
	iconPixmap   uint64
	iconWindow   uint64
	iconX        int32
	iconY        int32
	iconMask     uint64
	windowGroup  uint64
}

var (
	xOpenDisplay        func(*byte) uintptr
	xCloseDisplay       func(uintptr) int32
	xDefaultRootWindow  func(uintptr) uintptr
	xCreateSimpleWindow func(uintptr, uintptr, int32, int32, uint32, uint32, uint32, uint64, uint64) uintptr
	xDestroyWindow      func(uintptr, uintptr) int32
	xSelectInput        func(uintptr, uintptr, int64) int32
	xSetWMHints         func(uintptr, uintptr, unsafe.Pointer) int32
	xStoreName          func(uintptr, uintptr, *byte) int32
	xInternAtom         func(uintptr, *byte, int32) uintptr
	xSetWMProtocols     func(uintptr, uintptr, *uintptr, int32) int32
	xMapWindow          func(uintptr, uintptr) int32
	xPending            func(uintptr) int32
	xNextEvent          func(uintptr, unsafe.Pointer) int32
	xFlush              func(uintptr) int32
)

func loadXlib() error {
	lib, err := purego.Dlopen("libX11.so.6", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return err
	}

	purego.RegisterLibFunc(&xOpenDisplay, lib, "XOpenDisplay")
	purego.RegisterLibFunc(&xCloseDisplay, lib, "XCloseDisplay")
	purego.RegisterLibFunc(&xDefaultRootWindow, lib, "XDefaultRootWindow")
	purego.RegisterLibFunc(&xCreateSimpleWindow, lib, "XCreateSimpleWindow")
	purego.RegisterLibFunc(&xDestroyWindow, lib, "XDestroyWindow")
	purego.RegisterLibFunc(&xSelectInput, lib, "XSelectInput")
	purego.RegisterLibFunc(&xSetWMHints, lib, "XSetWMHints")
	purego.RegisterLibFunc(&xStoreName, lib, "XStoreName")
	purego.RegisterLibFunc(&xInternAtom, lib, "XInternAtom")
	purego.RegisterLibFunc(&xSetWMProtocols, lib, "XSetWMProtocols")
	purego.RegisterLibFunc(&xMapWindow, lib, "XMapWindow")
	purego.RegisterLibFunc(&xPending, lib, "XPending")
	purego.RegisterLibFunc(&xNextEvent, lib, "XNextEvent")
	purego.RegisterLibFunc(&xFlush, lib, "XFlush")

	return nil
}

// cString returns a pointer to a null terminated copy of s.
func cString(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}
