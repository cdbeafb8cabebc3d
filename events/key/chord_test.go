// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func RunChordDecode(ch Chord, t *testing.T) {
	r, code, mods, err := ch.Decode()
	if err != nil {
		t.Error(err.Error())
		return
	}
	nch := NewChord(r, code, mods)
	assert.Equal(t, ch, nch)
}

func TestChordDecode(t *testing.T) {
	RunChordDecode("a", t)
	RunChordDecode("Control+A", t)
	RunChordDecode("ReturnEnter", t)
	RunChordDecode("KeypadEnter", t)
	RunChordDecode("Backspace", t)
	RunChordDecode("Escape", t)
}

func TestModifiersTracking(t *testing.T) {
	var mods Modifiers
	mods.SetFlag(true, CodeLeftShift.ToModifier())
	assert.True(t, mods.HasFlag(Shift))
	mods.SetFlag(true, CodeRightControl.ToModifier())
	assert.Equal(t, "Shift+Control", mods.String())
	mods.SetFlag(false, CodeRightShift.ToModifier())
	assert.False(t, mods.HasFlag(Shift))
	assert.True(t, HasAnyModifier(mods, Control, Meta))
	assert.False(t, HasAllModifiers(mods, Control, Meta))
}

func TestModifiersFromString(t *testing.T) {
	mods, rest := ModifiersFromString("Control+Meta+S")
	assert.Equal(t, Control|Meta, mods)
	assert.Equal(t, "S", rest)
}
