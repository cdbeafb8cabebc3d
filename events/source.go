// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"sync"

	"github.com/go-mullion/mullion/events/key"
)

// ComposeStates is the per-window IME composition state.
type ComposeStates int32

const (
	// ComposeIdle means no composition is in progress.
	ComposeIdle ComposeStates = iota

	// Composing means a preedit string is active; character input is
	// suppressed until commit or cancel.
	Composing
)

// Source is the per-window normalizer that turns raw backend
// notifications into portable events on a [Deque]. It maintains the
// running modifier bitset, the pressed-button state, the last pointer
// position, and the IME composition state machine. A backend calls
// Source methods from wherever its native notifications arrive; the
// Deque serializes delivery to the loop thread.
type Source struct {
	// Deque is the destination for all normalized events.
	Deque *Deque

	// Win is the process-scoped window id stamped on every event.
	Win int64

	// Mods is the running modifier bitset, updated on every key
	// transition and attached to every keyboard and pointer event.
	Mods key.Modifiers

	// Last reports the last pointer state.
	Last struct {
		MousePos    image.Point
		MouseButton Buttons
	}

	// ResettingPos is set while the backend is programmatically
	// warping the pointer; moves are ignored during the reset.
	ResettingPos bool

	// Compose is the IME composition state.
	Compose ComposeStates

	// preedit is the current provisional string while Composing.
	preedit string

	mu sync.Mutex
}

// NewSource returns a Source delivering to the given deque for the
// given window id.
func NewSource(dq *Deque, win int64) *Source {
	return &Source{Deque: dq, Win: win}
}

func (es *Source) send(ev Event) {
	ev.SetWindowID(es.Win)
	es.Deque.Send(ev)
}

func (es *Source) sendFirst(ev Event) {
	ev.SetWindowID(es.Win)
	es.Deque.SendFirst(ev)
}

//////// Keyboard

// Key delivers a physical key transition (KeyDown or KeyUp). The
// modifier bitset is updated from the transition itself, so backends
// that do not report modifier state still produce a correct bitset.
// Physical key events are always delivered, even during composition,
// so shortcut handling keeps working.
func (es *Source) Key(typ Types, rn rune, code key.Codes, mods key.Modifiers) {
	es.mu.Lock()
	es.Mods |= mods
	if m := code.ToModifier(); m != 0 {
		es.Mods.SetFlag(typ == KeyDown, m)
	}
	if typ == KeyDown {
		switch code {
		case key.CodeCapsLock:
			es.Mods ^= key.CapsLock
		case key.CodeKeypadNumLock:
			es.Mods ^= key.NumLock
		}
	}
	ems := es.Mods
	es.mu.Unlock()
	es.send(NewKey(typ, rn, code, ems))
}

// SetModifiers replaces the running modifier bitset. Backends whose
// native events carry an authoritative modifier mask (the X11 state
// field) call it before delivering the event, so the bitset never
// drifts from reality.
func (es *Source) SetModifiers(mods key.Modifiers) {
	es.mu.Lock()
	es.Mods = mods
	es.mu.Unlock()
}

// KeyChord delivers a character-level input event. It is suppressed
// while an IME composition is in progress, to avoid the text being
// inserted twice.
func (es *Source) KeyChord(rn rune, code key.Codes, mods key.Modifiers) {
	es.mu.Lock()
	if es.Compose == Composing {
		es.mu.Unlock()
		return
	}
	ems := es.Mods | mods
	es.mu.Unlock()
	es.send(NewKey(KeyChord, rn, code, ems))
}

//////// IME composition

// CompositionUpdate delivers a preedit notification. The first
// preedit enters the Composing state and emits a Start followed by an
// Update; later ones emit only Updates.
func (es *Source) CompositionUpdate(preedit string) {
	es.mu.Lock()
	started := es.Compose != Composing
	es.Compose = Composing
	es.preedit = preedit
	es.mu.Unlock()
	if started {
		es.send(NewComposition(CompositionStart, ""))
	}
	es.send(NewComposition(CompositionUpdate, preedit))
}

// CompositionCommit finishes the composition with the given final
// text, returning to idle. A commit with no active composition (a
// "straight commit", which some platforms produce for dead keys) is
// delivered as a plain KeyChord instead.
func (es *Source) CompositionCommit(text string) {
	es.mu.Lock()
	active := es.Compose == Composing
	es.Compose = ComposeIdle
	es.preedit = ""
	ems := es.Mods
	es.mu.Unlock()
	if !active {
		for _, rn := range text {
			es.send(NewKey(KeyChord, rn, key.CodeUnknown, ems))
		}
		return
	}
	es.send(NewComposition(CompositionCommit, text))
}

// CompositionCancel discards any composition in progress, e.g. on
// focus loss. A no-op when idle.
func (es *Source) CompositionCancel() {
	es.mu.Lock()
	active := es.Compose == Composing
	es.Compose = ComposeIdle
	es.preedit = ""
	es.mu.Unlock()
	if active {
		es.send(NewComposition(CompositionCancel, ""))
	}
}

//////// Pointer

// MouseButton delivers a normalized button transition.
func (es *Source) MouseButton(typ Types, but Buttons, where image.Point, mods key.Modifiers) {
	es.mu.Lock()
	es.Mods |= mods
	if typ == MouseDown {
		es.Last.MouseButton = but
	} else {
		es.Last.MouseButton = NoButton
	}
	es.Last.MousePos = where
	ems := es.Mods
	es.mu.Unlock()
	es.send(NewMouse(typ, but, where, ems))
}

// MouseMove delivers a pointer move; compressed in the deque.
func (es *Source) MouseMove(where image.Point) {
	es.mu.Lock()
	if es.ResettingPos {
		es.mu.Unlock()
		return
	}
	prev := es.Last.MousePos
	es.Last.MousePos = where
	but := es.Last.MouseButton
	ems := es.Mods
	es.mu.Unlock()
	ev := NewMouseMove(but, where, prev, ems)
	es.send(ev)
}

// Scroll delivers a normalized wheel event with its unit tag.
func (es *Source) Scroll(where, delta image.Point, unit ScrollUnits) {
	es.mu.Lock()
	ems := es.Mods
	es.mu.Unlock()
	es.send(NewScroll(where, delta, unit, ems))
}

//////// Window

// Window delivers a window lifecycle event. Focus loss cancels any
// composition in progress before the focus event is queued. Close
// requests and destroy notifications jump the queue so they are not
// stuck behind buffered input for a window that is going away.
func (es *Source) Window(act WinActions) {
	if act == WinFocusLost {
		es.CompositionCancel()
	}
	switch act {
	case WinCloseReq, WinDestroy:
		es.sendFirst(NewWindow(act))
	default:
		es.send(NewWindow(act))
	}
}

// WindowResize delivers the new geometry with the scale bundled in.
func (es *Source) WindowResize(size, pix image.Point, scaleX, scaleY float32) {
	es.send(NewWindowResize(size, pix, scaleX, scaleY))
}

// WindowPaint requests a repaint of the damaged region.
func (es *Source) WindowPaint(damage image.Rectangle) {
	es.send(NewWindowPaint(damage))
}

// MenuCommand delivers a menu activation.
func (es *Source) MenuCommand(id int) {
	es.send(NewMenuCommand(id))
}

// Custom delivers a user event.
func (es *Source) Custom(data any) {
	es.send(NewCustom(data))
}
