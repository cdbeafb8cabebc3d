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

	"github.com/go-mullion/mullion/system"
)

// AppSingle contains the data and logic common to all implementations
// of [system.App] on single-window platforms (web), as opposed to
// multi-window platforms (desktop and offscreen), for which you should
// use [AppMulti]. An AppSingle is associated with a corresponding type
// of [system.Window], which should embed [WindowBase].
type AppSingle[W system.Window] struct {
	App

	// Win is the single [system.Window] associated with the app.
	Win W

	// Scrn is the single [system.Screen] associated with the app.
	Scrn *system.Screen
}

// NewAppSingle makes a new [AppSingle].
func NewAppSingle[W system.Window]() AppSingle[W] {
	return AppSingle[W]{
		Scrn: &system.Screen{Name: "main"},
	}
}

func (a *AppSingle[W]) NScreens() int {
	if a.Scrn != nil {
		return 1
	}
	return 0
}

func (a *AppSingle[W]) Screen(scrN int) *system.Screen {
	return a.Scrn
}

func (a *AppSingle[W]) ScreenByName(name string) *system.Screen {
	if a.Scrn != nil && a.Scrn.Name == name {
		return a.Scrn
	}
	return nil
}

func (a *AppSingle[W]) NWindows() int {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if system.Window(a.Win) != nil {
		return 1
	}
	return 0
}

func (a *AppSingle[W]) Window(win int) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if win == 0 {
		return a.Win
	}
	return nil
}

func (a *AppSingle[W]) WindowByName(name string) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if system.Window(a.Win) != nil && a.Win.Name() == name {
		return a.Win
	}
	return nil
}

func (a *AppSingle[W]) WindowByID(id int64) (system.Window, error) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if system.Window(a.Win) != nil && a.Win.ID() == id {
		if a.Win.Stage() >= system.Closing {
			return nil, system.ErrWindowDestroyed
		}
		return a.Win, nil
	}
	return nil, fmt.Errorf("system: no window with id %d", id)
}

func (a *AppSingle[W]) WindowInFocus() system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if system.Window(a.Win) != nil && a.Win.IsFocused() {
		return a.Win
	}
	return nil
}

// LookupWindow is the [Loop.Lookup] implementation.
func (a *AppSingle[W]) LookupWindow(id int64) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if system.Window(a.Win) != nil && a.Win.ID() == id {
		return a.Win
	}
	return nil
}

// RemoveWindow is a no-op on single-window platforms; the window
// lives as long as the app.
func (a *AppSingle[W]) RemoveWindow(w system.Window) {}

// QuitReq asks the single window's handler; a veto aborts the quit.
func (a *AppSingle[W]) QuitReq() {
	if a.QuitReqFunc != nil {
		a.QuitReqFunc()
		return
	}
	a.AsyncRunOnMain(func() {
		a.RunQuitClean()
		if system.Window(a.Win) != nil && a.Win.Stage() < system.Closing {
			if !a.Win.Handler().CloseRequested() {
				return
			}
			a.Win.Close()
		}
		a.Quit()
	})
}
