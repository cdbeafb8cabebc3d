// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package wayland

import (
	"unicode"

	"github.com/go-mullion/mullion/events/key"
)

// evdevCodes maps Linux evdev keycodes (as carried by
// wl_keyboard.key) to portable key codes. Only the keys on a
// standard keyboard are listed; anything else is CodeUnknown.
var evdevCodes = map[uint32]key.Codes{
	1:  key.CodeEscape,
	2:  key.Code1,
	3:  key.Code2,
	4:  key.Code3,
	5:  key.Code4,
	6:  key.Code5,
	7:  key.Code6,
	8:  key.Code7,
	9:  key.Code8,
	10: key.Code9,
	11: key.Code0,
	12: key.CodeHyphenMinus,
	13: key.CodeEqualSign,
	14: key.CodeBackspace,
	15: key.CodeTab,
	16: key.CodeQ,
	17: key.CodeW,
	18: key.CodeE,
	19: key.CodeR,
	20: key.CodeT,
	21: key.CodeY,
	22: key.CodeU,
	23: key.CodeI,
	24: key.CodeO,
	25: key.CodeP,
	26: key.CodeLeftSquareBracket,
	27: key.CodeRightSquareBracket,
	28: key.CodeReturnEnter,
	29: key.CodeLeftControl,
	30: key.CodeA,
	31: key.CodeS,
	32: key.CodeD,
	33: key.CodeF,
	34: key.CodeG,
	35: key.CodeH,
	36: key.CodeJ,
	37: key.CodeK,
	38: key.CodeL,
	39: key.CodeSemicolon,
	40: key.CodeApostrophe,
	41: key.CodeGraveAccent,
	42: key.CodeLeftShift,
	43: key.CodeBackslash,
	44: key.CodeZ,
	45: key.CodeX,
	46: key.CodeC,
	47: key.CodeV,
	48: key.CodeB,
	49: key.CodeN,
	50: key.CodeM,
	51: key.CodeComma,
	52: key.CodeFullStop,
	53: key.CodeSlash,
	54: key.CodeRightShift,
	55: key.CodeKeypadAsterisk,
	56: key.CodeLeftAlt,
	57: key.CodeSpacebar,
	58: key.CodeCapsLock,
	59: key.CodeF1,
	60: key.CodeF2,
	61: key.CodeF3,
	62: key.CodeF4,
	63: key.CodeF5,
	64: key.CodeF6,
	65: key.CodeF7,
	66: key.CodeF8,
	67: key.CodeF9,
	68: key.CodeF10,
	69: key.CodeKeypadNumLock,
	71: key.CodeKeypad7,
	72: key.CodeKeypad8,
	73: key.CodeKeypad9,
	74: key.CodeKeypadHyphenMinus,
	75: key.CodeKeypad4,
	76: key.CodeKeypad5,
	77: key.CodeKeypad6,
	78: key.CodeKeypadPlusSign,
	79: key.CodeKeypad1,
	80: key.CodeKeypad2,
	81: key.CodeKeypad3,
	82: key.CodeKeypad0,
	83: key.CodeKeypadFullStop,
	87: key.CodeF11,
	88: key.CodeF12,
	96: key.CodeKeypadEnter,
	97: key.CodeRightControl,
	98: key.CodeKeypadSlash,

	100: key.CodeRightAlt,
	102: key.CodeHome,
	103: key.CodeUpArrow,
	104: key.CodePageUp,
	105: key.CodeLeftArrow,
	106: key.CodeRightArrow,
	107: key.CodeEnd,
	108: key.CodeDownArrow,
	109: key.CodePageDown,
	110: key.CodeInsert,
	111: key.CodeDelete,
	113: key.CodeMute,
	114: key.CodeVolumeDown,
	115: key.CodeVolumeUp,
	119: key.CodePause,
	125: key.CodeLeftMeta,
	126: key.CodeRightMeta,
	127: key.CodeCompose,
}

// shiftedRunes covers US layout shift pairs for non-letter keys.
var shiftedRunes = map[rune]rune{
	'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
	'-': '_', '=': '+', '[': '{', ']': '}', '\\': '|',
	';': ':', '\'': '"', '`': '~', ',': '<', '.': '>', '/': '?',
}

// evdevLookup translates an evdev keycode plus the current modifier
// state to the portable rune and code, using the US layout. Without
// an xkb compiler the active layout cannot be honored; this is the
// documented fallback.
func evdevLookup(keycode uint32, mods key.Modifiers) (rune, key.Codes) {
	code, ok := evdevCodes[keycode]
	if !ok {
		return 0, key.CodeUnknown
	}
	rn, ok := key.CodeRuneMap[code]
	if !ok {
		return 0, code
	}
	shifted := mods.HasFlag(key.Shift) != mods.HasFlag(key.CapsLock)
	if mods.HasFlag(key.Shift) {
		if sr, ok := shiftedRunes[rn]; ok {
			return sr, code
		}
	}
	if shifted && unicode.IsLetter(rn) {
		return unicode.ToUpper(rn), code
	}
	return rn, code
}
