// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package web

import "github.com/go-mullion/mullion/events/key"

// domCodes maps KeyboardEvent.code values to portable key codes.
// DOM codes name physical keys, which is exactly the portable model.
var domCodes = map[string]key.Codes{
	"KeyA": key.CodeA,
	"KeyB": key.CodeB,
	"KeyC": key.CodeC,
	"KeyD": key.CodeD,
	"KeyE": key.CodeE,
	"KeyF": key.CodeF,
	"KeyG": key.CodeG,
	"KeyH": key.CodeH,
	"KeyI": key.CodeI,
	"KeyJ": key.CodeJ,
	"KeyK": key.CodeK,
	"KeyL": key.CodeL,
	"KeyM": key.CodeM,
	"KeyN": key.CodeN,
	"KeyO": key.CodeO,
	"KeyP": key.CodeP,
	"KeyQ": key.CodeQ,
	"KeyR": key.CodeR,
	"KeyS": key.CodeS,
	"KeyT": key.CodeT,
	"KeyU": key.CodeU,
	"KeyV": key.CodeV,
	"KeyW": key.CodeW,
	"KeyX": key.CodeX,
	"KeyY": key.CodeY,
	"KeyZ": key.CodeZ,

	"Digit1": key.Code1,
	"Digit2": key.Code2,
	"Digit3": key.Code3,
	"Digit4": key.Code4,
	"Digit5": key.Code5,
	"Digit6": key.Code6,
	"Digit7": key.Code7,
	"Digit8": key.Code8,
	"Digit9": key.Code9,
	"Digit0": key.Code0,

	"Enter":        key.CodeReturnEnter,
	"Escape":       key.CodeEscape,
	"Backspace":    key.CodeBackspace,
	"Tab":          key.CodeTab,
	"Space":        key.CodeSpacebar,
	"Minus":        key.CodeHyphenMinus,
	"Equal":        key.CodeEqualSign,
	"BracketLeft":  key.CodeLeftSquareBracket,
	"BracketRight": key.CodeRightSquareBracket,
	"Backslash":    key.CodeBackslash,
	"Semicolon":    key.CodeSemicolon,
	"Quote":        key.CodeApostrophe,
	"Backquote":    key.CodeGraveAccent,
	"Comma":        key.CodeComma,
	"Period":       key.CodeFullStop,
	"Slash":        key.CodeSlash,
	"CapsLock":     key.CodeCapsLock,

	"F1":  key.CodeF1,
	"F2":  key.CodeF2,
	"F3":  key.CodeF3,
	"F4":  key.CodeF4,
	"F5":  key.CodeF5,
	"F6":  key.CodeF6,
	"F7":  key.CodeF7,
	"F8":  key.CodeF8,
	"F9":  key.CodeF9,
	"F10": key.CodeF10,
	"F11": key.CodeF11,
	"F12": key.CodeF12,
	"F13": key.CodeF13,
	"F14": key.CodeF14,
	"F15": key.CodeF15,
	"F16": key.CodeF16,
	"F17": key.CodeF17,
	"F18": key.CodeF18,
	"F19": key.CodeF19,
	"F20": key.CodeF20,

	"Pause":      key.CodePause,
	"Insert":     key.CodeInsert,
	"Home":       key.CodeHome,
	"PageUp":     key.CodePageUp,
	"Delete":     key.CodeDelete,
	"End":        key.CodeEnd,
	"PageDown":   key.CodePageDown,
	"ArrowRight": key.CodeRightArrow,
	"ArrowLeft":  key.CodeLeftArrow,
	"ArrowDown":  key.CodeDownArrow,
	"ArrowUp":    key.CodeUpArrow,
	"NumLock":    key.CodeKeypadNumLock,

	"NumpadDivide":   key.CodeKeypadSlash,
	"NumpadMultiply": key.CodeKeypadAsterisk,
	"NumpadSubtract": key.CodeKeypadHyphenMinus,
	"NumpadAdd":      key.CodeKeypadPlusSign,
	"NumpadEnter":    key.CodeKeypadEnter,
	"Numpad1":        key.CodeKeypad1,
	"Numpad2":        key.CodeKeypad2,
	"Numpad3":        key.CodeKeypad3,
	"Numpad4":        key.CodeKeypad4,
	"Numpad5":        key.CodeKeypad5,
	"Numpad6":        key.CodeKeypad6,
	"Numpad7":        key.CodeKeypad7,
	"Numpad8":        key.CodeKeypad8,
	"Numpad9":        key.CodeKeypad9,
	"Numpad0":        key.CodeKeypad0,
	"NumpadDecimal":  key.CodeKeypadFullStop,
	"NumpadEqual":    key.CodeKeypadEqualSign,

	"Help":            key.CodeHelp,
	"AudioVolumeMute": key.CodeMute,
	"AudioVolumeUp":   key.CodeVolumeUp,
	"AudioVolumeDown": key.CodeVolumeDown,

	"ControlLeft":  key.CodeLeftControl,
	"ShiftLeft":    key.CodeLeftShift,
	"AltLeft":      key.CodeLeftAlt,
	"MetaLeft":     key.CodeLeftMeta,
	"ControlRight": key.CodeRightControl,
	"ShiftRight":   key.CodeRightShift,
	"AltRight":     key.CodeRightAlt,
	"MetaRight":    key.CodeRightMeta,
}
