// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the portable vocabulary for keyboard input:
// physical key codes independent of layout, the running modifier
// bitset, and chord strings used for shortcuts and menu accelerators.
package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Modifiers is a bitset of modifier keys that are held down at the
// time of an input event. It is maintained as running state by the
// input normalizer: every key transition of a modifier key updates it,
// and it is attached to every keyboard and pointer event.
type Modifiers int64

const (
	Shift Modifiers = 1 << iota
	Control
	Alt

	// Meta is the system key: the Windows key on Windows,
	// Command on macOS, Super on Linux.
	Meta

	CapsLock
	NumLock
)

var modifierNames = []struct {
	m Modifiers
	s string
}{
	{Shift, "Shift"},
	{Control, "Control"},
	{Alt, "Alt"},
	{Meta, "Meta"},
	{CapsLock, "CapsLock"},
	{NumLock, "NumLock"},
}

// SetFlag sets the given modifier bits on or off.
func (mo *Modifiers) SetFlag(on bool, mods ...Modifiers) {
	for _, m := range mods {
		if on {
			*mo |= m
		} else {
			*mo &^= m
		}
	}
}

// HasFlag returns whether the given modifier bit is set.
func (mo Modifiers) HasFlag(m Modifiers) bool {
	return mo&m != 0
}

// HasAnyModifier returns whether any of the given modifiers are set.
func HasAnyModifier(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if flags&m != 0 {
			return true
		}
	}
	return false
}

// HasAllModifiers returns whether all of the given modifiers are set.
func HasAllModifiers(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if flags&m == 0 {
			return false
		}
	}
	return true
}

// ModifiersString returns the canonical "Shift+Control+..." prefix form
// of the active modifiers, in fixed order, with a trailing + if nonempty.
func (mo Modifiers) ModifiersString() string {
	var sb strings.Builder
	for _, mn := range modifierNames {
		if mn.m == CapsLock || mn.m == NumLock {
			continue // lock state is not part of chords
		}
		if mo.HasFlag(mn.m) {
			sb.WriteString(mn.s)
			sb.WriteString("+")
		}
	}
	return sb.String()
}

// String returns the modifier names without the trailing separator.
func (mo Modifiers) String() string {
	return strings.TrimSuffix(mo.ModifiersString(), "+")
}

// ModifiersFromString parses the leading modifier names off a chord
// string, returning the modifiers and the remainder.
func ModifiersFromString(s string) (Modifiers, string) {
	var mods Modifiers
	for {
		matched := false
		for _, mn := range modifierNames {
			if strings.HasPrefix(s, mn.s+"+") {
				mods.SetFlag(true, mn.m)
				s = s[len(mn.s)+1:]
				matched = true
			}
		}
		if !matched {
			return mods, s
		}
	}
}

// CodeIsModifier returns whether the given code is a modifier key code.
func CodeIsModifier(c Codes) bool {
	return c >= CodeLeftControl && c <= CodeRightMeta || c == CodeCapsLock || c == CodeKeypadNumLock
}

// ToModifier returns the modifier bit for a modifier key code,
// or 0 if the code is not a modifier.
func (c Codes) ToModifier() Modifiers {
	switch c {
	case CodeLeftShift, CodeRightShift:
		return Shift
	case CodeLeftControl, CodeRightControl:
		return Control
	case CodeLeftAlt, CodeRightAlt:
		return Alt
	case CodeLeftMeta, CodeRightMeta:
		return Meta
	}
	return 0
}

// Chord represents the key chord associated with a given key function,
// in a string representation such as "Control+S" that can be used as a
// map key for shortcut and accelerator lookup and is stable across
// keyboard layouts for code-named keys.
type Chord string

// NewChord returns a string representation of the keyboard event
// suitable for shortcut matching. If rune is printable it is used,
// otherwise the name of the physical code.
func NewChord(rn rune, code Codes, mods Modifiers) Chord {
	modstr := mods.ModifiersString()
	if modstr != "" && rn == ' ' { // modified space is named
		return Chord(modstr + "Spacebar")
	}
	if unicode.IsPrint(rn) {
		if strings.Contains(modstr, "Shift+") {
			rn = unicode.ToUpper(rn)
			modstr = strings.ReplaceAll(modstr, "Shift+", "")
		}
		return Chord(modstr + string(rn))
	}
	// else use code name
	return Chord(modstr + code.String())
}

// Decode decodes a chord string into rune, code, and modifiers.
func (ch Chord) Decode() (rn rune, code Codes, mods Modifiers, err error) {
	var cs string
	mods, cs = ModifiersFromString(string(ch))
	rs := ([]rune)(cs)
	if len(rs) == 1 {
		rn = rs[0]
		return
	}
	err = fmt.Errorf("mullion events/key.Chord: chord %q not parseable", cs)
	for c, nm := range codeNames {
		if nm == cs {
			code = c
			err = nil
			return
		}
	}
	return
}

// String satisfies fmt.Stringer.
func (ch Chord) String() string {
	return string(ch)
}

// PlatformMeta returns Meta on macOS-family platforms and Control
// elsewhere, for expressing shortcuts with the conventional system key.
func PlatformMeta(darwin bool) Modifiers {
	if darwin {
		return Meta
	}
	return Control
}
