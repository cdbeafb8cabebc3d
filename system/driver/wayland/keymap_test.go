// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package wayland

import (
	"testing"

	"github.com/go-mullion/mullion/events/key"
	"github.com/stretchr/testify/assert"
)

func TestEvdevLookup(t *testing.T) {
	tests := []struct {
		keycode uint32
		mods    key.Modifiers
		rn      rune
		code    key.Codes
	}{
		{30, 0, 'a', key.CodeA},
		{30, key.Shift, 'A', key.CodeA},
		{30, key.CapsLock, 'A', key.CodeA},
		{30, key.Shift | key.CapsLock, 'a', key.CodeA},
		{2, 0, '1', key.Code1},
		{2, key.Shift, '!', key.Code1},
		{2, key.CapsLock, '1', key.Code1},
		{57, 0, ' ', key.CodeSpacebar},
		{103, 0, 0, key.CodeUpArrow},
		{0xffff, 0, 0, key.CodeUnknown},
	}
	for _, tt := range tests {
		rn, code := evdevLookup(tt.keycode, tt.mods)
		assert.Equal(t, tt.rn, rn, "keycode %d mods %v", tt.keycode, tt.mods)
		assert.Equal(t, tt.code, code, "keycode %d mods %v", tt.keycode, tt.mods)
	}
}

func TestXkbMods(t *testing.T) {
	assert.Equal(t, key.Modifiers(0), xkbMods(0))
	assert.Equal(t, key.Modifiers(key.Shift), xkbMods(xkbShift))
	assert.Equal(t, key.Shift|key.Control|key.Alt, xkbMods(xkbShift|xkbCtrl|xkbMod1))
	assert.Equal(t, key.Modifiers(key.Meta), xkbMods(xkbMod4))
	assert.Equal(t, key.CapsLock|key.NumLock, xkbMods(xkbLock|xkbMod2))
}
