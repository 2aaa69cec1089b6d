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

package modalflag_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/glbench/modalflag"
	"github.com/jetsetilly/glbench/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
}

func TestNoHelpAvailable(t *testing.T) {
	var s strings.Builder

	md := modalflag.Modes{Output: &s}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, s.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	var s strings.Builder

	md := modalflag.Modes{Output: &s}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n"
	test.ExpectEquality(t, s.String(), expectedHelp)
}

func TestHelpModes(t *testing.T) {
	var s strings.Builder

	md := modalflag.Modes{Output: &s}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, s.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	var s strings.Builder

	md := modalflag.Modes{Output: &s}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, s.String(), expectedHelp)
}

func TestAdditionalHelp(t *testing.T) {
	var s strings.Builder

	md := modalflag.Modes{Output: &s}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AdditionalHelp("more help")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, strings.HasSuffix(s.String(), "\nmore help\n"))
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"--upload"})
	md.AddSubModes("RUN", "INFO")

	// the unknown flag causes the default mode to be selected
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	upload := md.AddBool("upload", false, "upload")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *upload)
	test.ExpectEquality(t, md.Path(), "RUN")
}

func TestSelectedMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"info", "--size", "512"})
	md.AddSubModes("RUN", "INFO")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "INFO")

	md.NewMode()
	size := md.AddChoice("size", "256", []string{"256", "512"}, "texture size")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *size, "512")
}

func TestChoice(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-vsync", "OFF"})
	vsync := md.AddChoice("vsync", "", []string{"default", "on", "off"}, "swap interval")
	test.ExpectEquality(t, *vsync, "")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *vsync, "off")
}

func TestInvalidChoice(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-rotate", "45"})
	rotate := md.AddChoice("rotate", "0", []string{"0", "90", "180", "270"}, "rotation")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectSuccess(t, errors.Is(err, modalflag.ErrInvalidChoice))
	test.ExpectEquality(t, err.Error(), "invalid choice: rotate must be one of: 0, 90, 180, 270")
	test.ExpectEquality(t, *rotate, "0")
}

func TestUnknownFlag(t *testing.T) {
	var s strings.Builder

	md := modalflag.Modes{Output: &s}
	md.NewArgs([]string{"-unknown"})
	md.AddBool("test", false, "test flag")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, errors.Is(err, modalflag.ErrInvalidChoice))

	// nothing is printed until Help() is called
	test.ExpectEquality(t, s.String(), "")

	md.Help()
	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag\n"
	test.ExpectEquality(t, s.String(), expectedHelp)
}
