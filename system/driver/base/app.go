// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides the data and logic common to all backend
// implementations of [system.App] and [system.Window], including the
// unified event loop that serializes all handler callbacks.
package base

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
)

// App contains the data and logic common to all implementations of
// [system.App].
type App struct {
	// Nm is the name of the app.
	Nm string

	// Mu is the main mutex protecting access to app and window state.
	Mu sync.Mutex

	// Deque is the app-wide event queue that the loop drains.
	Deque events.Deque

	// Lp is the unified event loop.
	Lp Loop

	// MainQueue is the queue of functions to call on the loop thread.
	MainQueue chan FuncRun

	// MainDone is closed when MainLoop returns.
	MainDone chan struct{}

	// WakeMainFunc, if set, is called after posting work so backends
	// whose wait primitive is native (win32, cocoa) wake up. Poll
	// backends select on the queues directly and leave it nil.
	WakeMainFunc func()

	// QuitReqFunc, if set, replaces the default quit negotiation.
	QuitReqFunc func()

	// QuitCleanFuncs are called during an ordered quit, before the
	// windows are asked to close.
	QuitCleanFuncs []func()
}

// Init initializes the shared queues and the loop. Backends call it
// before anything else.
func (a *App) Init() {
	a.Deque.Init()
	a.MainQueue = make(chan FuncRun)
	a.MainDone = make(chan struct{})
	a.Lp.Init(&a.Deque, a.MainQueue)
}

func (a *App) Name() string        { return a.Nm }
func (a *App) SetName(name string) { a.Nm = name }

func (a *App) Events() *events.Deque { return &a.Deque }

// RunOnMain runs the given function on the loop thread and waits for
// it to finish. Calling it from the loop thread itself (inside a
// handler callback) runs the function directly.
func (a *App) RunOnMain(f func()) {
	if a.Lp.OnLoopThread() {
		f()
		return
	}
	done := make(chan struct{})
	a.MainQueue <- FuncRun{F: f, Done: done}
	if a.WakeMainFunc != nil {
		a.WakeMainFunc()
	}
	<-done
}

// AsyncRunOnMain runs the given function on the loop thread without
// waiting for it.
func (a *App) AsyncRunOnMain(f func()) {
	go func() {
		a.MainQueue <- FuncRun{F: f}
		if a.WakeMainFunc != nil {
			a.WakeMainFunc()
		}
	}()
}

// SendEmptyEvent wakes the loop without delivering anything.
func (a *App) SendEmptyEvent() {
	a.Deque.Send(events.NewCustom(nil))
	if a.WakeMainFunc != nil {
		a.WakeMainFunc()
	}
}

// StopMain closes down the main loop.
func (a *App) StopMain() {
	a.Lp.Quit()
	if a.WakeMainFunc != nil {
		a.WakeMainFunc()
	}
}

func (a *App) IsQuitting() bool { return a.Lp.Quitting() }

func (a *App) AddQuitCleanFunc(fun func()) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.QuitCleanFuncs = append(a.QuitCleanFuncs, fun)
}

func (a *App) Quit() {
	if a.Nm != "" {
		if err := system.SaveSettings(); err != nil {
			logx.PrintlnWarn("error saving settings on quit:", err)
		}
	}
	a.StopMain()
}

// RunQuitClean runs the registered quit clean functions.
func (a *App) RunQuitClean() {
	a.Mu.Lock()
	fs := make([]func(), len(a.QuitCleanFuncs))
	copy(fs, a.QuitCleanFuncs)
	a.Mu.Unlock()
	for _, f := range fs {
		f()
	}
}

func (a *App) OpenURL(url string) {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	default:
		cmd = "xdg-open"
	}
	args = append(args, url)
	if err := startProcess(cmd, args); err != nil {
		logx.PrintlnError("error opening URL:", err)
	}
}

func (a *App) DataDir() string {
	hd, err := os.UserHomeDir()
	if err != nil {
		logx.PrintlnWarn("error getting home directory:", err)
		hd = "."
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(hd, "Library")
	case "windows":
		return filepath.Join(hd, "AppData", "Roaming")
	default:
		return filepath.Join(hd, ".config")
	}
}

// AppDataDir returns the app-specific data directory, creating it if
// needed.
func (a *App) AppDataDir() string {
	pdir := filepath.Join(a.DataDir(), a.Name())
	if err := os.MkdirAll(pdir, 0755); err != nil {
		logx.PrintlnWarn("error making app data dir:", err)
	}
	return pdir
}

func (a *App) Clipboard() system.Clipboard {
	return &clipboardNone{}
}

// clipboardNone is the fallback clipboard for backends without one.
type clipboardNone struct{}

func (cl *clipboardNone) ReadText() string             { return "" }
func (cl *clipboardNone) WriteText(text string) error  { return nil }
