// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/go-mullion/mullion/system"
)

// AppMulti contains the data and logic common to all implementations
// of [system.App] on multi-window platforms (desktop and offscreen),
// as opposed to single-window platforms (web), for which you should
// use [AppSingle]. An AppMulti is associated with a corresponding
// type of [system.Window], which should embed [WindowBase].
type AppMulti[W system.Window] struct {
	App

	// Windows are the live windows associated with the app.
	Windows []W

	// Screens are the screens associated with the app.
	Screens []*system.Screen

	// NextWinID is the id arena for windows; ids are monotonic and
	// never reused, so a destroyed id stays recognizably stale.
	NextWinID atomic.Int64
}

// NewAppMulti makes a new [AppMulti].
func NewAppMulti[W system.Window]() AppMulti[W] {
	return AppMulti[W]{}
}

// NewWinID issues the next window id.
func (a *AppMulti[W]) NewWinID() int64 {
	return a.NextWinID.Add(1)
}

func (a *AppMulti[W]) NScreens() int {
	return len(a.Screens)
}

func (a *AppMulti[W]) Screen(n int) *system.Screen {
	if n >= 0 && n < len(a.Screens) {
		return a.Screens[n]
	}
	if len(a.Screens) > 0 {
		return a.Screens[0]
	}
	return nil
}

func (a *AppMulti[W]) ScreenByName(name string) *system.Screen {
	for _, sc := range a.Screens {
		if sc.Name == name {
			return sc
		}
	}
	return nil
}

func (a *AppMulti[W]) NWindows() int {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return len(a.Windows)
}

func (a *AppMulti[W]) Window(win int) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if win >= 0 && win < len(a.Windows) {
		return a.Windows[win]
	}
	return nil
}

func (a *AppMulti[W]) WindowByName(name string) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, win := range a.Windows {
		if win.Name() == name {
			return win
		}
	}
	return nil
}

func (a *AppMulti[W]) WindowByID(id int64) (system.Window, error) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, win := range a.Windows {
		if win.ID() == id {
			return win, nil
		}
	}
	if id > 0 && id <= a.NextWinID.Load() {
		return nil, system.ErrWindowDestroyed
	}
	return nil, fmt.Errorf("system: no window with id %d", id)
}

func (a *AppMulti[W]) WindowInFocus() system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, win := range a.Windows {
		if win.IsFocused() {
			return win
		}
	}
	return nil
}

// LookupWindow is the [Loop.Lookup] implementation: live windows
// only, nil otherwise.
func (a *AppMulti[W]) LookupWindow(id int64) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, win := range a.Windows {
		if win.ID() == id {
			return win
		}
	}
	return nil
}

// RemoveWindow removes the given Window from the app's list of
// windows. It does not actually close it; see [system.Window.Close]
// for that.
func (a *AppMulti[W]) RemoveWindow(w system.Window) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.Windows = slices.DeleteFunc(a.Windows, func(ew W) bool {
		return system.Window(ew) == w
	})
}

// QuitReq negotiates an app quit on the loop thread: every live
// window's handler is asked, and one veto aborts the whole quit.
// Any-thread.
func (a *AppMulti[W]) QuitReq() {
	if a.QuitReqFunc != nil {
		a.QuitReqFunc()
		return
	}
	a.AsyncRunOnMain(func() {
		if a.QuitClean() {
			a.Quit()
		}
	})
}

// QuitClean runs the quit clean functions and asks every window to
// close, returning false if any handler vetoes. Loop thread only.
func (a *AppMulti[W]) QuitClean() bool {
	a.RunQuitClean()
	a.Mu.Lock()
	wins := make([]W, len(a.Windows))
	copy(wins, a.Windows)
	a.Mu.Unlock()
	for _, win := range wins {
		if win.Stage() >= system.Closing {
			continue
		}
		if !win.Handler().CloseRequested() {
			return false
		}
	}
	for _, win := range wins {
		if win.Stage() < system.Closing {
			win.Close()
		}
	}
	return true
}
