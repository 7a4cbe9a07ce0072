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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/consolemix/consolemix/hardware/preferences"
	"github.com/consolemix/consolemix/logger"
	"github.com/consolemix/consolemix/modalflag"
	"github.com/consolemix/consolemix/prefs"
	"github.com/consolemix/consolemix/statsview"
	"github.com/consolemix/consolemix/version"
)

type stateReq = string

const (
	// main goroutine should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop handling interrupt signals in the main goroutine. used when a
	// mode has its own way of quitting.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// mainSync is used to communicate with the main goroutine.
type mainSync struct {
	state chan stateRequest

	// closed by the main goroutine when an interrupt signal is received
	interrupt chan bool
}

func main() {
	sync := &mainSync{
		state:     make(chan stateRequest),
		interrupt: make(chan bool),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	interrupted := false
	for !done {
		select {
		case <-intChan:
			// the first interrupt gives the running mode the chance to end
			// cleanly. a second interrupt ends the program immediately
			if interrupted {
				done = true
				exitVal = 1
			} else {
				interrupted = true
				close(sync.interrupt)
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate that the program should quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "RECORD", "PERFORMANCE", "INFO")

	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsFile := md.AddString("prefs", "", "preferences file to use instead of the default")
	setPrefs := md.AddString("setpref", "", "preference values for this run only (key::value; ...)")
	showVersion := md.AddBool("version", false, "print version information and quit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *showVersion {
		fmt.Println(version.Version())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	if *setPrefs != "" {
		prefs.PushCommandLineStack(*setPrefs)
	}

	var audioPrefs *preferences.Preferences
	if *prefsFile != "" {
		audioPrefs, err = preferences.NewPreferencesFile(*prefsFile)
	} else {
		audioPrefs, err = preferences.NewPreferences()
	}
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "consolemix", "unused preferences: %s", unused)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync, audioPrefs)

	case "RECORD":
		err = record(md, sync, audioPrefs)

	case "PERFORMANCE":
		err = perform(md, audioPrefs)

	case "INFO":
		err = info(md, audioPrefs)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}
