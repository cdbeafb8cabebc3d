// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of event. The type includes both the
// source / nature of the event and the "action" type of the event
// (e.g., MouseDown, MouseUp are separate event types).
// Unless otherwise noted, all events are Unique, meaning they are
// always delivered. Non-Unique events are subject to compression:
// if the last event still pending in the [Deque] is of the same type
// for the same window, it is replaced with the new one instead of
// being appended, so the handler always sees the final value.
type Types int64

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See [Mouse.Button] for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	// See [Mouse.Button] for which.
	MouseUp

	// MouseMove is sent when the mouse is moving.
	// Not unique: the position is updated during compression.
	MouseMove

	// Scroll is for scroll wheel or touchpad scrolling events.
	// Not unique: Delta is accumulated during compression.
	Scroll

	// KeyDown is when a key is pressed down, reported by physical
	// code regardless of layout. Delivered even during IME
	// composition, for shortcut handling.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// KeyChord is character-level input: the layout-resolved rune
	// plus a portable chord string. Suppressed while an IME
	// composition is in progress to avoid double-insertion.
	KeyChord

	// Composition reports IME preedit and commit transitions.
	// See [CompositionPhases].
	Composition

	// Window reports window lifecycle transitions: show, hide,
	// focus, close request, destruction. See [WinActions].
	Window

	// WindowResize happens when the window has been resized and/or
	// its effective scale has changed; both are always reported
	// together. Not unique: compressed to the final geometry.
	WindowResize

	// WindowPaint is sent when the window contents must be redrawn,
	// with the damaged region. Not unique: damage is unioned during
	// compression.
	WindowPaint

	// MenuCommand is sent when a menu item or its accelerator is
	// activated.
	MenuCommand

	// Custom is a user-defined event with an arbitrary Data field.
	Custom

	TypesN
)

var typeNames = [TypesN]string{
	"UnknownType", "MouseDown", "MouseUp", "MouseMove", "Scroll",
	"KeyDown", "KeyUp", "KeyChord", "Composition", "Window",
	"WindowResize", "WindowPaint", "MenuCommand", "Custom",
}

func (tp Types) String() string {
	if tp >= 0 && tp < TypesN {
		return typeNames[tp]
	}
	return "Types(" + strconv.FormatInt(int64(tp), 10) + ")"
}

// IsUniqueType returns whether events of this type are exempt from
// compression in the [Deque].
func (tp Types) IsUniqueType() bool {
	switch tp {
	case MouseMove, Scroll, WindowResize, WindowPaint:
		return false
	}
	return true
}

// WinActions is the action taking place on a window in a [WindowEvent].
type WinActions int32

const (
	// NoWinAction is the zero value.
	NoWinAction WinActions = iota

	// WinShow means the window was mapped / made visible.
	WinShow

	// WinHide means the window was hidden or minimized.
	WinHide

	// WinFocus means the window gained keyboard focus.
	WinFocus

	// WinFocusLost means the window lost keyboard focus.
	WinFocusLost

	// WinCloseReq is a request to close the window, from the user or
	// the platform. The receiver adjudicates: the window only
	// advances toward destruction if the close is confirmed.
	WinCloseReq

	// WinDestroy means the native window has been destroyed.
	// This is the last event ever delivered for a window.
	WinDestroy

	// ScreenUpdate means the set of screens or their geometry or
	// scale has changed.
	ScreenUpdate

	WinActionsN
)

var winActionNames = [WinActionsN]string{
	"NoWinAction", "Show", "Hide", "Focus", "FocusLost",
	"CloseReq", "Destroy", "ScreenUpdate",
}

func (wa WinActions) String() string {
	if wa >= 0 && wa < WinActionsN {
		return winActionNames[wa]
	}
	return "WinActions(" + strconv.FormatInt(int64(wa), 10) + ")"
}

// CompositionPhases describes the IME composition protocol:
// Start on the first preedit notification, Update on each preedit
// change, then exactly one of Commit or Cancel, returning to idle.
type CompositionPhases int32

const (
	CompositionStart CompositionPhases = iota
	CompositionUpdate
	CompositionCommit
	CompositionCancel

	CompositionPhasesN
)

var compositionPhaseNames = [CompositionPhasesN]string{
	"Start", "Update", "Commit", "Cancel",
}

func (cp CompositionPhases) String() string {
	if cp >= 0 && cp < CompositionPhasesN {
		return compositionPhaseNames[cp]
	}
	return "CompositionPhases(" + strconv.FormatInt(int64(cp), 10) + ")"
}

// ScrollUnits is the unit tag for wheel deltas, since backends
// disagree on wheel granularity.
type ScrollUnits int32

const (
	// ScrollLines means the delta counts whole wheel notches / lines.
	ScrollLines ScrollUnits = iota

	// ScrollPixels means the delta is in pixels (touchpads, Wayland
	// axis events, browser wheel events).
	ScrollPixels
)

func (su ScrollUnits) String() string {
	if su == ScrollLines {
		return "Lines"
	}
	return "Pixels"
}
