// This file is part of Inputrelay.
//
// Inputrelay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Inputrelay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Inputrelay.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/hotkeys"
	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/modalflag"
	"github.com/jetsetilly/inputrelay/polling"
	"github.com/jetsetilly/inputrelay/resources"
	"github.com/jetsetilly/inputrelay/statsview"
	"github.com/jetsetilly/inputrelay/userinput"
	"github.com/jetsetilly/inputrelay/version"
	"github.com/jetsetilly/inputrelay/webinput"
)

type stateReq string

const (
	// main thread should end as soon as possible. takes an optional int
	// argument, indicating the status code
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main thread and the launch goroutine.
type mainSync struct {
	state chan stateRequest

	// a creator is sent to the main thread and the result returned on one of
	// the creation channels
	creator       chan creator
	creation      chan platform
	creationError chan error
}

// platforms like SDL and GLFW must be serviced from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan creator),
		creation:      make(chan platform),
		creationError: make(chan error),
	}

	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	ctx, cancel := context.WithCancel(context.Background())

	go launch(ctx, sync)

	var plt platform
	var destroy func()

	handleState := func(state stateRequest) {
		switch state.req {
		case reqQuit:
			if state.args != nil {
				if v, ok := state.args.(int); ok {
					exitVal = v
				} else {
					panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
				}
			}
		}
	}

	done := false
	for !done {
		if plt == nil {
			select {
			case <-intChan:
				fmt.Println("\r")
				done = true

			case c := <-sync.creator:
				var err error
				plt, destroy, err = c()
				if err != nil {
					plt = nil
					sync.creationError <- err
				} else {
					sync.creation <- plt
				}

			case state := <-sync.state:
				handleState(state)
				done = true
			}
			continue
		}

		// the platform is serviced until the launch goroutine asks to quit or
		// an interrupt signal is received
		svcCtx, svcCancel := context.WithCancel(ctx)
		stop := make(chan stateRequest, 1)
		go func() {
			select {
			case <-intChan:
				stop <- stateRequest{req: reqQuit}
			case state := <-sync.state:
				stop <- state
			}
			svcCancel()
		}()

		plt.Service(svcCtx)
		handleState(<-stop)
		done = true
	}

	cancel()
	if destroy != nil {
		destroy()
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

func launch(ctx context.Context, sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubMode("SDL", "window, keyboard and joysticks with SDL")
	md.AddSubMode("GLFW", "window, keyboard and joysticks with GLFW")
	md.AddSubMode("TERM", "keyboard input from the terminal")
	md.AddSubMode("TCELL", "keyboard and mouse input from the terminal with tcell")
	md.AddSubMode("VERSION", "print version information")
	md.AdditionalHelp(version.String())

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

	switch md.Mode() {
	case "VERSION":
		v, r, _ := version.Version()
		fmt.Printf("%s %s\n%s\n", version.ApplicationName, v, r)
	default:
		err = relayMode(ctx, md, sync)
	}
	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func relayMode(ctx context.Context, md *modalflag.Modes, sync *mainSync) error {
	mode := md.Mode()
	terminal := mode == "TERM" || mode == "TCELL"

	md.NewMode()
	md.AddPrefs()
	web := md.AddString("web", "", "listen for remote gamepads on address (eg. :8090)")
	joymap := md.AddString("joymap", "", "joystick map file (default from preferences)")
	memvizDump := md.AddBool("memviz", false, "write joystick registry and hotkey structure to a dot file on exit")

	var echo *bool
	if !terminal {
		echo = md.AddBool("echo", false, "echo log to stdout")
	}

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, "run stats server")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if echo != nil && *echo {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}

	pref, err := userinput.NewPreferences()
	if err != nil {
		return err
	}

	norm := userinput.NewNormaliser(0, 0)
	pref.Attach(norm)

	q := userinput.NewQueue(pref.QueueCapacity.Get().(int))
	defer q.Shutdown()

	c, trans := platformCreator(mode, q)

	var plt platform
	sync.creator <- c
	select {
	case plt = <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	enum := joysticks.Enumerators{plt}
	if *web != "" {
		hub := webinput.NewHub(q)
		enum = append(enum, hub)
		go func() {
			if err := hub.ListenAndServe(ctx, *web); err != nil {
				logger.Log(logger.Allow, "web", err)
			}
		}()
	}

	reg := joysticks.NewRegistry(enum, norm, nil)
	reg.SetJoysticksForMenu(pref.JoysticksForMenu.Get().(bool))

	joymapFile := *joymap
	if joymapFile == "" {
		joymapFile, err = resources.JoinPath(pref.JoymapFile.Get().(string))
		if err != nil {
			return err
		}
	}
	if err := reg.LoadJoymapFile(joymapFile); err != nil {
		logger.Log(logger.Allow, "joymap", err)
	}

	hk := hotkeys.NewMap(numHotkeys, trans)
	poller := polling.NewPoller(q, norm, reg)
	poller.Timeout = pref.CaptureTimeout.Get().(int)

	r := newRelay(q, reg, hk, poller, plt)
	r.joymap = joymapFile
	if err := r.defaultHotkeys(); err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(ctx, os.Stdout)
	}

	r.run(ctx)

	if *memvizDump {
		if err := dumpMemviz(reg, hk); err != nil {
			return err
		}
	}

	return nil
}

// dumpMemviz writes the structure of the registry and hotkey map to a file
// in the current directory.
func dumpMemviz(reg *joysticks.Registry, hk *hotkeys.Map) error {
	fn := resources.UniqueFilename("memviz", "dot")
	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, reg, hk)
	fmt.Printf("* structure written to %s\n", fn)

	return nil
}
