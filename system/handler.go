// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"

	"github.com/go-mullion/mullion/events"
)

// Handler is the application-side contract for a window. All methods
// are called on the loop thread, serialized; a handler never needs
// internal locking against its own callbacks. Reentrant calls back
// into the [Window] from inside a callback are allowed.
type Handler interface {
	// Connected is called once, when the window's native resources
	// exist and the handle is usable. It is the first callback.
	Connected(w Window)

	// PreparePaint is called on the loop thread just before Paint,
	// once per paint cycle, so the handler can flush layout or
	// animation state.
	PreparePaint()

	// Paint asks the handler to redraw the damaged region, in pixels.
	// The first Paint after Connected always covers the full surface.
	Paint(damage image.Rectangle)

	// Resized reports a new window geometry: logical size, physical
	// pixel size, and the scale relating them. Delivered before the
	// first Paint.
	Resized(size, pix image.Point, scale Scale)

	// FocusChanged reports keyboard focus arriving (true) or
	// leaving (false).
	FocusChanged(focused bool)

	// CloseRequested is called when the user or the system asks the
	// window to close. Returning false vetoes the close; the window
	// stays alive and a later request is delivered again. Returning
	// true lets teardown proceed.
	CloseRequested() bool

	// Destroyed is the final callback; the window is gone and its
	// handle is stale.
	Destroyed()

	// Key reports a physical key transition or a character-level
	// chord, already normalized with the running modifier state.
	Key(e *events.Key)

	// TextComposition reports IME preedit and commit activity.
	TextComposition(e *events.CompositionEvent)

	// Pointer reports pointer button and move events in logical
	// window coordinates.
	Pointer(e *events.Mouse)

	// Wheel reports scroll events with their unit tag.
	Wheel(e *events.MouseScroll)

	// MenuCommand reports activation of the menu item with the
	// given id, whether by click or accelerator.
	MenuCommand(id int)

	// Idle is called on the loop thread for a token previously
	// passed to [Window.ScheduleIdle], exactly once per post.
	Idle(tok IdleToken)

	// Timer is called when a scheduled timer becomes due. A timer is
	// never early; a timer that becomes due while another callback
	// runs is deferred to the next loop iteration.
	Timer(tok TimerToken)
}

// HandlerBase is a no-op [Handler] for embedding, so handlers only
// implement the callbacks they care about. Its CloseRequested
// allows the close.
type HandlerBase struct{}

func (hb *HandlerBase) Connected(w Window)                           {}
func (hb *HandlerBase) PreparePaint()                                {}
func (hb *HandlerBase) Paint(damage image.Rectangle)                 {}
func (hb *HandlerBase) Resized(size, pix image.Point, scale Scale)   {}
func (hb *HandlerBase) FocusChanged(focused bool)                    {}
func (hb *HandlerBase) CloseRequested() bool                         { return true }
func (hb *HandlerBase) Destroyed()                                   {}
func (hb *HandlerBase) Key(e *events.Key)                            {}
func (hb *HandlerBase) TextComposition(e *events.CompositionEvent)   {}
func (hb *HandlerBase) Pointer(e *events.Mouse)                      {}
func (hb *HandlerBase) Wheel(e *events.MouseScroll)                  {}
func (hb *HandlerBase) MenuCommand(id int)                           {}
func (hb *HandlerBase) Idle(tok IdleToken)                           {}
func (hb *HandlerBase) Timer(tok TimerToken)                         {}
