// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "strconv"

// Codes is the identity of a physical key relative to an ideal
// "standard" keyboard, independent of the current keyboard layout.
// The values are based on the USB HID usage tables, the same encoding
// the platform scan-code tables in each backend normalize to.
type Codes uint32

const (
	CodeUnknown Codes = 0

	CodeA Codes = 4
	CodeB Codes = 5
	CodeC Codes = 6
	CodeD Codes = 7
	CodeE Codes = 8
	CodeF Codes = 9
	CodeG Codes = 10
	CodeH Codes = 11
	CodeI Codes = 12
	CodeJ Codes = 13
	CodeK Codes = 14
	CodeL Codes = 15
	CodeM Codes = 16
	CodeN Codes = 17
	CodeO Codes = 18
	CodeP Codes = 19
	CodeQ Codes = 20
	CodeR Codes = 21
	CodeS Codes = 22
	CodeT Codes = 23
	CodeU Codes = 24
	CodeV Codes = 25
	CodeW Codes = 26
	CodeX Codes = 27
	CodeY Codes = 28
	CodeZ Codes = 29

	Code1 Codes = 30
	Code2 Codes = 31
	Code3 Codes = 32
	Code4 Codes = 33
	Code5 Codes = 34
	Code6 Codes = 35
	Code7 Codes = 36
	Code8 Codes = 37
	Code9 Codes = 38
	Code0 Codes = 39

	CodeReturnEnter        Codes = 40
	CodeEscape             Codes = 41
	CodeBackspace          Codes = 42
	CodeTab                Codes = 43
	CodeSpacebar           Codes = 44
	CodeHyphenMinus        Codes = 45
	CodeEqualSign          Codes = 46
	CodeLeftSquareBracket  Codes = 47
	CodeRightSquareBracket Codes = 48
	CodeBackslash          Codes = 49
	CodeSemicolon          Codes = 51
	CodeApostrophe         Codes = 52
	CodeGraveAccent        Codes = 53
	CodeComma              Codes = 54
	CodeFullStop           Codes = 55
	CodeSlash              Codes = 56
	CodeCapsLock           Codes = 57

	CodeF1  Codes = 58
	CodeF2  Codes = 59
	CodeF3  Codes = 60
	CodeF4  Codes = 61
	CodeF5  Codes = 62
	CodeF6  Codes = 63
	CodeF7  Codes = 64
	CodeF8  Codes = 65
	CodeF9  Codes = 66
	CodeF10 Codes = 67
	CodeF11 Codes = 68
	CodeF12 Codes = 69

	CodePause         Codes = 72
	CodeInsert        Codes = 73
	CodeHome          Codes = 74
	CodePageUp        Codes = 75
	CodeDelete        Codes = 76
	CodeEnd           Codes = 77
	CodePageDown      Codes = 78
	CodeRightArrow    Codes = 79
	CodeLeftArrow     Codes = 80
	CodeDownArrow     Codes = 81
	CodeUpArrow       Codes = 82
	CodeKeypadNumLock Codes = 83

	CodeKeypadSlash       Codes = 84
	CodeKeypadAsterisk    Codes = 85
	CodeKeypadHyphenMinus Codes = 86
	CodeKeypadPlusSign    Codes = 87
	CodeKeypadEnter       Codes = 88
	CodeKeypad1           Codes = 89
	CodeKeypad2           Codes = 90
	CodeKeypad3           Codes = 91
	CodeKeypad4           Codes = 92
	CodeKeypad5           Codes = 93
	CodeKeypad6           Codes = 94
	CodeKeypad7           Codes = 95
	CodeKeypad8           Codes = 96
	CodeKeypad9           Codes = 97
	CodeKeypad0           Codes = 98
	CodeKeypadFullStop    Codes = 99
	CodeKeypadEqualSign   Codes = 103

	CodeF13 Codes = 104
	CodeF14 Codes = 105
	CodeF15 Codes = 106
	CodeF16 Codes = 107
	CodeF17 Codes = 108
	CodeF18 Codes = 109
	CodeF19 Codes = 110
	CodeF20 Codes = 111

	CodeHelp Codes = 117

	CodeMute       Codes = 127
	CodeVolumeUp   Codes = 128
	CodeVolumeDown Codes = 129

	CodeLeftControl  Codes = 224
	CodeLeftShift    Codes = 225
	CodeLeftAlt      Codes = 226
	CodeLeftMeta     Codes = 227
	CodeRightControl Codes = 228
	CodeRightShift   Codes = 229
	CodeRightAlt     Codes = 230
	CodeRightMeta    Codes = 231

	// CodeCompose is the Compose key, softening the "physical key"
	// model: it is delivered by X11 and Wayland layouts but has no
	// fixed HID position.
	CodeCompose Codes = 0x10000
)

var codeNames = map[Codes]string{
	CodeA:                  "A",
	CodeB:                  "B",
	CodeC:                  "C",
	CodeD:                  "D",
	CodeE:                  "E",
	CodeF:                  "F",
	CodeG:                  "G",
	CodeH:                  "H",
	CodeI:                  "I",
	CodeJ:                  "J",
	CodeK:                  "K",
	CodeL:                  "L",
	CodeM:                  "M",
	CodeN:                  "N",
	CodeO:                  "O",
	CodeP:                  "P",
	CodeQ:                  "Q",
	CodeR:                  "R",
	CodeS:                  "S",
	CodeT:                  "T",
	CodeU:                  "U",
	CodeV:                  "V",
	CodeW:                  "W",
	CodeX:                  "X",
	CodeY:                  "Y",
	CodeZ:                  "Z",
	Code1:                  "1",
	Code2:                  "2",
	Code3:                  "3",
	Code4:                  "4",
	Code5:                  "5",
	Code6:                  "6",
	Code7:                  "7",
	Code8:                  "8",
	Code9:                  "9",
	Code0:                  "0",
	CodeReturnEnter:        "ReturnEnter",
	CodeEscape:             "Escape",
	CodeBackspace:          "Backspace",
	CodeTab:                "Tab",
	CodeSpacebar:           "Spacebar",
	CodeHyphenMinus:        "HyphenMinus",
	CodeEqualSign:          "EqualSign",
	CodeLeftSquareBracket:  "LeftSquareBracket",
	CodeRightSquareBracket: "RightSquareBracket",
	CodeBackslash:          "Backslash",
	CodeSemicolon:          "Semicolon",
	CodeApostrophe:         "Apostrophe",
	CodeGraveAccent:        "GraveAccent",
	CodeComma:              "Comma",
	CodeFullStop:           "FullStop",
	CodeSlash:              "Slash",
	CodeCapsLock:           "CapsLock",
	CodeF1:                 "F1",
	CodeF2:                 "F2",
	CodeF3:                 "F3",
	CodeF4:                 "F4",
	CodeF5:                 "F5",
	CodeF6:                 "F6",
	CodeF7:                 "F7",
	CodeF8:                 "F8",
	CodeF9:                 "F9",
	CodeF10:                "F10",
	CodeF11:                "F11",
	CodeF12:                "F12",
	CodePause:              "Pause",
	CodeInsert:             "Insert",
	CodeHome:               "Home",
	CodePageUp:             "PageUp",
	CodeDelete:             "Delete",
	CodeEnd:                "End",
	CodePageDown:           "PageDown",
	CodeRightArrow:         "RightArrow",
	CodeLeftArrow:          "LeftArrow",
	CodeDownArrow:          "DownArrow",
	CodeUpArrow:            "UpArrow",
	CodeKeypadNumLock:      "KeypadNumLock",
	CodeKeypadSlash:        "KeypadSlash",
	CodeKeypadAsterisk:     "KeypadAsterisk",
	CodeKeypadHyphenMinus:  "KeypadHyphenMinus",
	CodeKeypadPlusSign:     "KeypadPlusSign",
	CodeKeypadEnter:        "KeypadEnter",
	CodeKeypad1:            "Keypad1",
	CodeKeypad2:            "Keypad2",
	CodeKeypad3:            "Keypad3",
	CodeKeypad4:            "Keypad4",
	CodeKeypad5:            "Keypad5",
	CodeKeypad6:            "Keypad6",
	CodeKeypad7:            "Keypad7",
	CodeKeypad8:            "Keypad8",
	CodeKeypad9:            "Keypad9",
	CodeKeypad0:            "Keypad0",
	CodeKeypadFullStop:     "KeypadFullStop",
	CodeKeypadEqualSign:    "KeypadEqualSign",
	CodeF13:                "F13",
	CodeF14:                "F14",
	CodeF15:                "F15",
	CodeF16:                "F16",
	CodeF17:                "F17",
	CodeF18:                "F18",
	CodeF19:                "F19",
	CodeF20:                "F20",
	CodeHelp:               "Help",
	CodeMute:               "Mute",
	CodeVolumeUp:           "VolumeUp",
	CodeVolumeDown:         "VolumeDown",
	CodeLeftControl:        "LeftControl",
	CodeLeftShift:          "LeftShift",
	CodeLeftAlt:            "LeftAlt",
	CodeLeftMeta:           "LeftMeta",
	CodeRightControl:       "RightControl",
	CodeRightShift:         "RightShift",
	CodeRightAlt:           "RightAlt",
	CodeRightMeta:          "RightMeta",
	CodeCompose:            "Compose",
}

func (c Codes) String() string {
	if nm, ok := codeNames[c]; ok {
		return nm
	}
	return "Code(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// CodeRuneMap gives the rune for a code on a standard US layout,
// for synthesizing characters when the platform layout query is
// unavailable (best-effort fallback only).
var CodeRuneMap = map[Codes]rune{
	CodeA: 'a',
	CodeB: 'b',
	CodeC: 'c',
	CodeD: 'd',
	CodeE: 'e',
	CodeF: 'f',
	CodeG: 'g',
	CodeH: 'h',
	CodeI: 'i',
	CodeJ: 'j',
	CodeK: 'k',
	CodeL: 'l',
	CodeM: 'm',
	CodeN: 'n',
	CodeO: 'o',
	CodeP: 'p',
	CodeQ: 'q',
	CodeR: 'r',
	CodeS: 's',
	CodeT: 't',
	CodeU: 'u',
	CodeV: 'v',
	CodeW: 'w',
	CodeX: 'x',
	CodeY: 'y',
	CodeZ: 'z',

	Code1: '1',
	Code2: '2',
	Code3: '3',
	Code4: '4',
	Code5: '5',
	Code6: '6',
	Code7: '7',
	Code8: '8',
	Code9: '9',
	Code0: '0',

	CodeTab:                '\t',
	CodeSpacebar:           ' ',
	CodeHyphenMinus:        '-',
	CodeEqualSign:          '=',
	CodeLeftSquareBracket:  '[',
	CodeRightSquareBracket: ']',
	CodeBackslash:          '\\',
	CodeSemicolon:          ';',
	CodeApostrophe:         '\'',
	CodeGraveAccent:        '`',
	CodeComma:              ',',
	CodeFullStop:           '.',
	CodeSlash:              '/',

	CodeKeypadSlash:       '/',
	CodeKeypadAsterisk:    '*',
	CodeKeypadHyphenMinus: '-',
	CodeKeypadPlusSign:    '+',
	CodeKeypadFullStop:    '.',
	CodeKeypadEqualSign:   '=',

	CodeKeypad1: '1',
	CodeKeypad2: '2',
	CodeKeypad3: '3',
	CodeKeypad4: '4',
	CodeKeypad5: '5',
	CodeKeypad6: '6',
	CodeKeypad7: '7',
	CodeKeypad8: '8',
	CodeKeypad9: '9',
	CodeKeypad0: '0',
}
