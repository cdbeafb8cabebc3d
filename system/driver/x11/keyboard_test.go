// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11

import (
	"testing"

	"github.com/go-mullion/mullion/events/key"
	"github.com/stretchr/testify/assert"
)

func TestParseXftDPI(t *testing.T) {
	res := "Xcursor.size:\t24\nXft.dpi:\t144\nXft.antialias:\t1\n"
	assert.Equal(t, float32(1.5), ParseXftDPI(res))
	assert.Equal(t, float32(1), ParseXftDPI(""))
	assert.Equal(t, float32(1), ParseXftDPI("Xft.dpi:\tjunk\n"))
	assert.Equal(t, float32(2), ParseXftDPI("Xft.dpi: 192"))
}

func TestKeysymTranslation(t *testing.T) {
	assert.Equal(t, key.CodeEscape, keysymCode(xkEscape))
	assert.Equal(t, key.CodeReturnEnter, keysymCode(xkReturn))
	assert.Equal(t, key.CodeLeftShift, keysymCode(xkShiftL))
	assert.Equal(t, key.CodeF12, keysymCode(xkF1+11))
	assert.Equal(t, key.CodeKeypad0, keysymCode(xkKP0))
	assert.Equal(t, key.CodeKeypad7, keysymCode(xkKP0+7))
	assert.Equal(t, key.CodeA, keysymCode(0x61), "latin 'a'")
	assert.Equal(t, key.CodeUnknown, keysymCode(0xfffe))

	assert.Equal(t, 'a', keysymRune(0x61))
	assert.Equal(t, rune(0), keysymRune(xkEscape))
	assert.Equal(t, '5', keysymRune(xkKP0+5))
	// directly encoded Unicode keysym
	assert.Equal(t, 'ü', keysymRune(0x01000000|'ü'))
}

func TestStateMods(t *testing.T) {
	mods := stateMods(xModShift | xModControl)
	assert.True(t, mods.HasFlag(key.Shift))
	assert.True(t, mods.HasFlag(key.Control))
	assert.False(t, mods.HasFlag(key.Alt))

	mods = stateMods(xMod1 | xMod4 | xModLock)
	assert.True(t, mods.HasFlag(key.Alt))
	assert.True(t, mods.HasFlag(key.Meta))
	assert.True(t, mods.HasFlag(key.CapsLock))
}
