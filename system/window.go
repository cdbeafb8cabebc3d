// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"
	"time"

	"github.com/go-mullion/mullion/events"
)

// Window is a double-buffered, potentially visible window on the
// screen. All painting and input for a window goes through its
// [Handler], whose callbacks run serialized on the loop thread.
// Window methods marked any-thread may be called from anywhere;
// the rest must run on the loop thread (inside a handler callback
// or a RunOnMain function). Once a window reaches the Destroyed
// stage, every fallible method returns [ErrWindowDestroyed].
type Window interface {
	// ID returns the process-scoped unique id of the window.
	// IDs are monotonic and never reused. Any-thread.
	ID() int64

	// Name returns the programmatic name of the window.
	Name() string

	// SetName sets the programmatic name of the window.
	SetName(name string)

	// Title returns the user-visible title of the window.
	Title() string

	// SetTitle sets the user-visible title of the window.
	SetTitle(title string) error

	// Stage returns the lifecycle stage. Any-thread.
	Stage() Stages

	// Handler returns the window's event handler.
	Handler() Handler

	// Events returns the per-window input normalizer that backend
	// code feeds raw notifications into.
	Events() *events.Source

	// Size returns the current size in raw underlying dots / pixels.
	Size() image.Point

	// WinSize returns the size in logical, scale-independent
	// coordinates.
	WinSize() image.Point

	// Position returns the position of the window on the desktop,
	// in physical pixels.
	Position() image.Point

	// SetGeometry sets the position and logical size of the window.
	// A zero component leaves that part unchanged.
	SetGeometry(pos image.Point, size image.Point) error

	// Scale returns the scale relating logical coordinates to
	// physical pixels for the screen the window is on.
	Scale() Scale

	// Screen returns the screen the window is currently on,
	// resolved from the monitor containing the window's center.
	Screen() *Screen

	// Show maps the window and moves it to the Visible stage.
	Show() error

	// Hide unmaps the window without destroying it.
	Hide() error

	// Raise brings the window to the front of the stacking order,
	// deiconifying it if needed.
	Raise() error

	// Minimize iconifies the window.
	Minimize() error

	// IsFocused returns whether the window has keyboard focus.
	IsFocused() bool

	// SetCursor sets the pointer cursor shape shown over the window.
	SetCursor(c Cursors) error

	// SetTextInputRect tells the platform IME where the caret is,
	// in logical window coordinates, so candidate popups appear
	// next to the text being edited.
	SetTextInputRect(r image.Rectangle) error

	// RequestRedraw schedules a paint of the given damage region;
	// an empty rectangle means the full surface. Multiple requests
	// before the paint happens coalesce into one. Any-thread.
	RequestRedraw(damage image.Rectangle) error

	// SetMenu installs the given menu on the window; nil removes it.
	SetMenu(m *Menu) error

	// Menu returns the installed menu, or nil.
	Menu() *Menu

	// ScheduleIdle schedules the handler's Idle callback with the
	// given token, exactly once, on the loop thread. Any-thread;
	// this is the sanctioned way to reach the loop from elsewhere.
	ScheduleIdle(tok IdleToken) error

	// ScheduleTimer schedules the handler's Timer callback after the
	// given delay, repeating at that interval if repeat is set. The
	// timer never fires early. Any-thread.
	ScheduleTimer(delay time.Duration, repeat bool) (TimerToken, error)

	// CancelTimer cancels the given timer; canceling an already
	// fired or unknown timer is a no-op. Any-thread.
	CancelTimer(tok TimerToken) error

	// CloseReq starts a vetoable close: the handler's CloseRequested
	// runs on the loop thread, and only an affirmative answer leads
	// to Close. Equivalent to the user clicking the close button.
	// Any-thread.
	CloseReq()

	// Close unconditionally tears the window down: native resources
	// are released, the handler's Destroyed runs, and the stage
	// becomes Destroyed. Loop thread only.
	Close()

	// Native returns the platform-specific surface description for
	// interop with rendering APIs. Valid from Mapped to Closing.
	Native() (NativeSurface, error)
}
