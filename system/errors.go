// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "errors"

var (
	// ErrNoDisplay means no display system could be reached at
	// startup (no X server, no Wayland compositor, no desktop
	// session). It is fatal; no App is usable.
	ErrNoDisplay = errors.New("system: cannot connect to a display system")

	// ErrWindowCreation wraps backend failures to create a native
	// window. The App remains usable; other windows are unaffected.
	ErrWindowCreation = errors.New("system: window creation failed")

	// ErrWindowDestroyed is returned by operations issued against a
	// window that has reached the Destroyed stage. Stale handles
	// always fail explicitly, never silently.
	ErrWindowDestroyed = errors.New("system: window already destroyed")

	// ErrLoopBroken means the connection to the display system was
	// lost while the event loop was running; MainLoop returns it
	// immediately, with no further handler callbacks.
	ErrLoopBroken = errors.New("system: display connection lost")
)
