// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the portable event vocabulary shared by all
// windowing backends, the blocking [Deque] that carries events to the
// loop thread, and the per-window [Source] that normalizes raw
// platform notifications into portable events.
package events

import (
	"fmt"
	"image"
	"time"

	"github.com/go-mullion/mullion/events/key"
)

// Event is the interface for all events. Events are tagged with the
// process-scoped id of the window they belong to; ordering within a
// window always matches native delivery order.
type Event interface {
	fmt.Stringer

	// Type returns the type of event associated with given event
	Type() Types

	// WindowID returns the process-scoped id of the window this
	// event belongs to, or 0 for app-level events.
	WindowID() int64

	// SetWindowID tags the event with its window.
	SetWindowID(id int64)

	// Init sets the timestamp to now.
	Init()

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed.
	SetHandled()

	// HasPos returns whether the event has a window position.
	HasPos() bool

	// WindowPos returns the position in window coordinates, in raw
	// display pixels.
	WindowPos() image.Point

	// Modifiers returns the modifier bitset attached to the event.
	Modifiers() key.Modifiers
}

// Base is the base type for events, implementing the portions of
// [Event] shared by all concrete types. Concrete events embed Base
// and set the relevant fields.
type Base struct {
	// Typ is the type of the event.
	Typ Types

	// Win is the process-scoped id of the window the event is for.
	Win int64

	// GenTime is when the event was generated.
	GenTime time.Time

	// Handled is whether the event was already processed.
	Handled bool

	// Where is the window position of the event, in raw display
	// pixels, for events that have a position.
	Where image.Point

	// Prev is the previous position for move events, updated during
	// compression so the delta spans the whole compressed run.
	Prev image.Point

	// Button is the mouse button for mouse events.
	Button Buttons

	// Mods is the modifier key bitset at event time.
	Mods key.Modifiers

	// Data is optional arbitrary data, for Custom events.
	Data any
}

func (ev *Base) Type() Types              { return ev.Typ }
func (ev *Base) WindowID() int64          { return ev.Win }
func (ev *Base) SetWindowID(id int64)     { ev.Win = id }
func (ev *Base) Init()                    { ev.GenTime = time.Now() }
func (ev *Base) Time() time.Time          { return ev.GenTime }
func (ev *Base) IsHandled() bool          { return ev.Handled }
func (ev *Base) SetHandled()              { ev.Handled = true }
func (ev *Base) HasPos() bool             { return false }
func (ev *Base) WindowPos() image.Point   { return ev.Where }
func (ev *Base) Modifiers() key.Modifiers { return ev.Mods }

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Win: %d, Time: %v}", ev.Typ, ev.Win, ev.GenTime.Format("04:05"))
}
