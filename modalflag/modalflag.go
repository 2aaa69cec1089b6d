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

package modalflag

import (
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes parses command line arguments one mode at a time. The Output field
// should be set before calling Parse() or help messages will not be seen.
type Modes struct {
	// where help messages are written
	Output io.Writer

	// flags for the current mode. replaced by every call to NewMode()
	flags *flag.FlagSet

	// arguments from NewArgs() and the index of the first argument not yet
	// consumed by a mode selector
	args []string
	idx  int

	// sub-modes that may follow the flags of the current mode. the first
	// entry is the default
	subModes []string

	// every mode selected so far
	path []string

	// printed after the flag information in help messages
	additionalHelp string

	// the first error from a choice flag during the most recent Parse()
	choiceErr error
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed and begins the first mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.NewMode()
}

// NewMode begins a new mode. Flags and sub-modes from the previous mode are
// forgotten. Arguments consumed by earlier calls to Parse() are not parsed
// again.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.choiceErr = nil
}

// AdditionalHelp is printed at the end of any help message.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// the error returned by Parse() describes the problem
	ParseError
)

// Parse the arguments for the current mode.
//
// If sub-modes have been added then the first argument after the flags
// selects the mode. If it is not the name of a sub-mode, or if the flags
// cannot be parsed, then the default sub-mode is selected and the arguments
// are left for the next mode to parse.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.idx:])
	if err != nil {
		// the flag package does not wrap the error returned by a flag.Value so
		// the error recorded by the choice flag is used instead
		if md.choiceErr != nil {
			return ParseError, md.choiceErr
		}

		if err == flag.ErrHelp {
			hw.Help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		if len(md.subModes) == 0 {
			return ParseError, err
		}

		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.idx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// Help prints the help message for the current mode. Useful when the caller
// decides after Parse() that the arguments are unusable.
func (md *Modes) Help() {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)
	hw.Write([]byte("Usage:\n"))
	md.flags.PrintDefaults()
	hw.Help(md.Output, md.Path(), md.subModes, md.additionalHelp)
}

// RemainingArgs returns the arguments after the flags and any mode selector.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument from RemainingArgs().
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes for the next call to Parse(). The first sub-mode is the
// default. Comparisons are case insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
