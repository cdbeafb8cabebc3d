// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import "github.com/go-mullion/mullion/events/key"

// vkCodes maps Windows virtual key codes to portable key codes.
// Unlisted keys come through as CodeUnknown; the character they
// produce still arrives via WM_CHAR.
var vkCodes = map[uint32]key.Codes{
	0x08: key.CodeBackspace, // VK_BACK
	0x09: key.CodeTab,
	0x0D: key.CodeReturnEnter,
	0x13: key.CodePause,
	0x14: key.CodeCapsLock,
	0x1B: key.CodeEscape,
	0x20: key.CodeSpacebar,
	0x21: key.CodePageUp,
	0x22: key.CodePageDown,
	0x23: key.CodeEnd,
	0x24: key.CodeHome,
	0x25: key.CodeLeftArrow,
	0x26: key.CodeUpArrow,
	0x27: key.CodeRightArrow,
	0x28: key.CodeDownArrow,
	0x2D: key.CodeInsert,
	0x2E: key.CodeDelete,

	0x30: key.Code0,
	0x31: key.Code1,
	0x32: key.Code2,
	0x33: key.Code3,
	0x34: key.Code4,
	0x35: key.Code5,
	0x36: key.Code6,
	0x37: key.Code7,
	0x38: key.Code8,
	0x39: key.Code9,

	0x41: key.CodeA,
	0x42: key.CodeB,
	0x43: key.CodeC,
	0x44: key.CodeD,
	0x45: key.CodeE,
	0x46: key.CodeF,
	0x47: key.CodeG,
	0x48: key.CodeH,
	0x49: key.CodeI,
	0x4A: key.CodeJ,
	0x4B: key.CodeK,
	0x4C: key.CodeL,
	0x4D: key.CodeM,
	0x4E: key.CodeN,
	0x4F: key.CodeO,
	0x50: key.CodeP,
	0x51: key.CodeQ,
	0x52: key.CodeR,
	0x53: key.CodeS,
	0x54: key.CodeT,
	0x55: key.CodeU,
	0x56: key.CodeV,
	0x57: key.CodeW,
	0x58: key.CodeX,
	0x59: key.CodeY,
	0x5A: key.CodeZ,

	0x5B: key.CodeLeftMeta,  // VK_LWIN
	0x5C: key.CodeRightMeta, // VK_RWIN

	0x60: key.CodeKeypad0,
	0x61: key.CodeKeypad1,
	0x62: key.CodeKeypad2,
	0x63: key.CodeKeypad3,
	0x64: key.CodeKeypad4,
	0x65: key.CodeKeypad5,
	0x66: key.CodeKeypad6,
	0x67: key.CodeKeypad7,
	0x68: key.CodeKeypad8,
	0x69: key.CodeKeypad9,
	0x6A: key.CodeKeypadAsterisk,
	0x6B: key.CodeKeypadPlusSign,
	0x6D: key.CodeKeypadHyphenMinus,
	0x6E: key.CodeKeypadFullStop,
	0x6F: key.CodeKeypadSlash,

	0x70: key.CodeF1,
	0x71: key.CodeF2,
	0x72: key.CodeF3,
	0x73: key.CodeF4,
	0x74: key.CodeF5,
	0x75: key.CodeF6,
	0x76: key.CodeF7,
	0x77: key.CodeF8,
	0x78: key.CodeF9,
	0x79: key.CodeF10,
	0x7A: key.CodeF11,
	0x7B: key.CodeF12,

	0x90: key.CodeKeypadNumLock,

	0xA0: key.CodeLeftShift,
	0xA1: key.CodeRightShift,
	0xA2: key.CodeLeftControl,
	0xA3: key.CodeRightControl,
	0xA4: key.CodeLeftAlt,
	0xA5: key.CodeRightAlt,

	// VK_SHIFT/CONTROL/MENU arrive unextended for plain messages
	0x10: key.CodeLeftShift,
	0x11: key.CodeLeftControl,
	0x12: key.CodeLeftAlt,

	0xAD: key.CodeMute,
	0xAE: key.CodeVolumeDown,
	0xAF: key.CodeVolumeUp,

	0xBA: key.CodeSemicolon,          // VK_OEM_1
	0xBB: key.CodeEqualSign,          // VK_OEM_PLUS
	0xBC: key.CodeComma,              // VK_OEM_COMMA
	0xBD: key.CodeHyphenMinus,        // VK_OEM_MINUS
	0xBE: key.CodeFullStop,           // VK_OEM_PERIOD
	0xBF: key.CodeSlash,              // VK_OEM_2
	0xC0: key.CodeGraveAccent,        // VK_OEM_3
	0xDB: key.CodeLeftSquareBracket,  // VK_OEM_4
	0xDC: key.CodeBackslash,          // VK_OEM_5
	0xDD: key.CodeRightSquareBracket, // VK_OEM_6
	0xDE: key.CodeApostrophe,         // VK_OEM_7
}
