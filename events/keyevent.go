// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/go-mullion/mullion/events/key"
)

// Key is a low-level key signal (KeyDown, KeyUp), reported by
// physical code regardless of layout, or a KeyChord character-level
// event carrying the layout-resolved rune.
type Key struct {
	Base

	// Rune is the layout-resolved character, or 0 if none.
	Rune rune

	// Code is the physical key code, independent of layout.
	Code key.Codes
}

func NewKey(typ Types, rn rune, code key.Codes, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.Typ = typ
	ev.Rune = rn
	ev.Code = code
	ev.Mods = mods
	return ev
}

// KeyChord returns the portable chord string for shortcut matching.
func (ev *Key) KeyChord() key.Chord {
	return key.NewChord(ev.Rune, ev.Code, ev.Mods)
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v, Rune: %d, Chord: %v, Mods: %v, Time: %v}", ev.Type(), ev.Code, ev.Rune, string(ev.KeyChord()), ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}

// CompositionEvent reports one transition of the per-window IME
// composition protocol. While a composition is in progress, regular
// KeyChord character events are suppressed; KeyDown / KeyUp still
// flow for shortcut handling.
type CompositionEvent struct {
	Base

	// Phase is where in the protocol this event falls.
	Phase CompositionPhases

	// Preedit is the provisional string for Start and Update, and
	// the final committed text for Commit. Empty for Cancel.
	Preedit string
}

func NewComposition(phase CompositionPhases, preedit string) *CompositionEvent {
	ev := &CompositionEvent{}
	ev.Typ = Composition
	ev.Phase = phase
	ev.Preedit = preedit
	return ev
}

func (ev *CompositionEvent) String() string {
	return fmt.Sprintf("%v{Phase: %v, Preedit: %q, Time: %v}", ev.Type(), ev.Phase, ev.Preedit, ev.Time().Format("04:05"))
}
