// This file is part of Consolemix.
//
// Consolemix is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Consolemix is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Consolemix.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
	"time"
)

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// ParseContinue means the caller should carry on. If sub-modes were
	// added then Mode() will return the selected mode.
	ParseContinue ParseResult = iota

	// ParseHelp means help was requested and has been written to Output.
	ParseHelp

	// ParseError means the arguments could not be parsed. The error is
	// returned alongside.
	ParseError
)

// Modes parses a command line one mode at a time.
type Modes struct {
	// Output receives help messages. If it is nil help is discarded.
	Output io.Writer

	flags *flag.FlagSet
	help  strings.Builder

	args []string
	next int

	subModes []string
	path     []string
	extra    string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs sets the arguments to parse and starts the first mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.next = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode starts a new layer of flags and sub-modes. Arguments already
// consumed by Parse() are not seen again.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.extra = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(&md.help)
}

// AdditionalHelp is printed after the flag summary when help is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.extra = help
}

// AddSubModes adds to the list of modes that may follow the flags. The first
// mode ever added is the default.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// Parse the flags for the current mode and, if sub-modes have been added,
// select the mode to continue with.
func (md *Modes) Parse() (ParseResult, error) {
	md.help.Reset()

	err := md.flags.Parse(md.args[md.next:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.writeHelp()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// flags consumed by the flag set are never seen again
	md.next = len(md.args) - md.flags.NArg()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			mode = m
			md.next++
			break
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// Mode returns the most recently selected mode. Empty if no mode has been
// selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// RemainingArgs returns the arguments that are neither flags nor a selected
// mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.next:]
}

// GetArg returns the numbered remaining argument or the empty string.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Visit calls fn for every flag in the current mode that was set on the
// command line.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for the next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
