// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"github.com/go-mullion/mullion/events/key"
)

// Buttons is a normalized mouse button. Backends disagree on native
// numbering; every backend maps into this fixed enumeration.
type Buttons int32

const (
	NoButton Buttons = iota

	// Left is the primary button.
	Left

	// Middle is the wheel button.
	Middle

	// Right is the secondary button.
	Right

	// Back and Forward are the side navigation buttons where present.
	Back
	Forward

	ButtonsN
)

var buttonNames = [ButtonsN]string{
	"NoButton", "Left", "Middle", "Right", "Back", "Forward",
}

func (bt Buttons) String() string {
	if bt >= 0 && bt < ButtonsN {
		return buttonNames[bt]
	}
	return "Buttons(?)"
}

// Mouse is a basic mouse event for all pointer events except Scroll.
type Mouse struct {
	Base
}

func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.Button = but
	ev.Where = where
	ev.Mods = mods
	return ev
}

func NewMouseMove(but Buttons, where, prev image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = MouseMove
	// not unique
	ev.Button = but
	ev.Where = where
	ev.Prev = prev
	ev.Mods = mods
	return ev
}

func (ev *Mouse) HasPos() bool { return true }

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}

// MouseScroll is for wheel and touchpad scrolling, recording the
// delta of the scroll and the unit the delta is expressed in.
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis.
	Delta image.Point

	// Unit says whether Delta counts lines (wheel notches) or pixels.
	Unit ScrollUnits
}

func NewScroll(where, delta image.Point, unit ScrollUnits, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	// not unique, but delta accumulated during compression
	ev.Where = where
	ev.Delta = delta
	ev.Unit = unit
	ev.Mods = mods
	return ev
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Delta, ev.Unit, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}
