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
	"fmt"

	"github.com/ebitengine/purego"
)

// EGL constants
const (
	eglSuccess              = 0x3000
	eglAlphaSize            = 0x3021
	eglBlueSize             = 0x3022
	eglGreenSize            = 0x3023
	eglRedSize              = 0x3024
	eglBufferSize           = 0x3020
	eglConfigID             = 0x3028
	eglNone                 = 0x3038
	eglRenderableType       = 0x3040
	eglVendor               = 0x3053
	eglVersion              = 0x3054
	eglClientAPIs           = 0x308d
	eglContextClientVersion = 0x3098
	eglOpenGLES2Bit         = 0x0004
)

const (
	eglFalse = 0
	eglTrue  = 1
)

var (
	eglGetDisplay          func(uintptr) uintptr
	eglInitialize          func(uintptr, *int32, *int32) uint32
	eglChooseConfig        func(uintptr, *int32, *uintptr, int32, *int32) uint32
	eglGetConfigAttrib     func(uintptr, uintptr, int32, *int32) uint32
	eglCreateWindowSurface func(uintptr, uintptr, uintptr, *int32) uintptr
	eglCreateContext       func(uintptr, uintptr, uintptr, *int32) uintptr
	eglMakeCurrent         func(uintptr, uintptr, uintptr, uintptr) uint32
	eglSwapBuffers         func(uintptr, uintptr) uint32
	eglSwapInterval        func(uintptr, int32) uint32
	eglDestroyContext      func(uintptr, uintptr) uint32
	eglDestroySurface      func(uintptr, uintptr) uint32
	eglTerminate           func(uintptr) uint32
	eglGetError            func() int32
	eglQueryString         func(uintptr, int32) string
)

func loadEGL() error {
	lib, err := purego.Dlopen("libEGL.so.1", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return err
	}

	purego.RegisterLibFunc(&eglGetDisplay, lib, "eglGetDisplay")
	purego.RegisterLibFunc(&eglInitialize, lib, "eglInitialize")
	purego.RegisterLibFunc(&eglChooseConfig, lib, "eglChooseConfig")
	purego.RegisterLibFunc(&eglGetConfigAttrib, lib, "eglGetConfigAttrib")
	purego.RegisterLibFunc(&eglCreateWindowSurface, lib, "eglCreateWindowSurface")
	purego.RegisterLibFunc(&eglCreateContext, lib, "eglCreateContext")
	purego.RegisterLibFunc(&eglMakeCurrent, lib, "eglMakeCurrent")
	purego.RegisterLibFunc(&eglSwapBuffers, lib, "eglSwapBuffers")
	purego.RegisterLibFunc(&eglSwapInterval, lib, "eglSwapInterval")
	purego.RegisterLibFunc(&eglDestroyContext, lib, "eglDestroyContext")
	purego.RegisterLibFunc(&eglDestroySurface, lib, "eglDestroySurface")
	purego.RegisterLibFunc(&eglTerminate, lib, "eglTerminate")
	purego.RegisterLibFunc(&eglGetError, lib, "eglGetError")
	purego.RegisterLibFunc(&eglQueryString, lib, "eglQueryString")

	return nil
}

// eglError describes the most recent EGL error
type eglError int32

func (e eglError) Error() string {
	return fmt.Sprintf("eglError: %#04x", int32(e))
}

func lastError() error {
	e := eglGetError()
	if e == eglSuccess {
		return nil
	}
	return eglError(e)
}

// errorOr returns the most recent EGL error or, if there is none, an error
// with the message
func errorOr(msg string) error {
	if err := lastError(); err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s", msg)
}
