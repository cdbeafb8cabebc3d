// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "github.com/go-mullion/mullion/events"

// App represents the overall OS GUI hardware abstraction layer.
// It is used to create windows, pump the unified event loop, and
// coordinate app-level state. There is exactly one App per process,
// available as [TheApp] once the driver package is imported.
type App interface {
	// Platform returns the platform type, which can be used for
	// platform-specific behavior where the portable API is not enough.
	Platform() Platforms

	// Name returns the name of the app.
	Name() string

	// SetName sets the name of the app.
	SetName(name string)

	// GetScreens reloads the list of screens from the display system.
	GetScreens()

	// NScreens returns the number of different logical and/or physical
	// screens managed under this app.
	NScreens() int

	// Screen returns the screen for the given screen number, or the
	// first screen if the number is out of range.
	Screen(scrN int) *Screen

	// ScreenByName returns the screen with the given name, or nil.
	ScreenByName(name string) *Screen

	// NWindows returns the number of live windows.
	NWindows() int

	// Window returns the given window in the list of windows, in the
	// order they were created, or nil if out of range.
	Window(win int) Window

	// WindowByName returns the window with the given name, or nil.
	WindowByName(name string) Window

	// WindowByID returns the window with the given id. It returns
	// [ErrWindowDestroyed] for a window that once existed but has
	// been destroyed, so stale handles fail loudly.
	WindowByID(id int64) (Window, error)

	// WindowInFocus returns the window with keyboard focus, or nil.
	WindowInFocus() Window

	// NewWindow creates a new window with the given options. nil
	// options use [DefaultWindowOptions]. The handler's Connected
	// callback runs before NewWindow returns.
	NewWindow(opts *NewWindowOptions, handler Handler) (Window, error)

	// RemoveWindow removes the given window from the app's list;
	// called by the window itself during teardown.
	RemoveWindow(win Window)

	// Events returns the app-wide event deque that the loop drains.
	// Backends feed it through per-window [events.Source] values.
	Events() *events.Deque

	// MainLoop runs the unified event loop on the calling goroutine,
	// blocking until [Quit] or a fatal display error. It returns nil
	// on an ordinary quit and [ErrLoopBroken] (wrapped) when the
	// display connection is lost.
	MainLoop() error

	// RunOnMain runs the given function on the loop thread and
	// waits for it to complete. Safe from any goroutine; calling it
	// from the loop thread itself runs the function directly.
	RunOnMain(f func())

	// AsyncRunOnMain runs the given function on the loop thread
	// without waiting.
	AsyncRunOnMain(f func())

	// SendEmptyEvent wakes the loop without delivering anything,
	// so a blocked MainLoop re-checks its state.
	SendEmptyEvent()

	// Clipboard returns the app's clipboard for plain text.
	Clipboard() Clipboard

	// OpenURL opens the given URL in the user's default browser.
	OpenURL(url string)

	// DataDir returns the OS-specific data directory: Mac: ~/Library,
	// Linux: ~/.config, Windows: ~/AppData/Roaming.
	DataDir() string

	// AppDataDir returns the app-specific data directory under
	// [App.DataDir], creating it if needed.
	AppDataDir() string

	// QuitReq requests a quit: every live window gets a close
	// request, and only if none vetoes does the loop shut down.
	// Safe from any goroutine.
	QuitReq()

	// IsQuitting returns whether the app is in the process of
	// quitting.
	IsQuitting() bool

	// AddQuitCleanFunc adds the given function to those run during
	// an ordered quit, before the loop exits.
	AddQuitCleanFunc(fun func())

	// Quit shuts the loop down unconditionally after the current
	// dispatch completes. It never interrupts a running callback.
	Quit()
}

// Clipboard provides access to the system clipboard, for plain text.
type Clipboard interface {
	// ReadText returns the current clipboard text, or "".
	ReadText() string

	// WriteText places the given text on the clipboard.
	WriteText(text string) error
}

// OnSystemWindowCreated is a channel used to communicate that the
// underlying system window has been created on platforms that create
// it asynchronously (Web). If it is non-nil, no window event loop
// operations can happen until a signal is sent.
var OnSystemWindowCreated chan struct{}
