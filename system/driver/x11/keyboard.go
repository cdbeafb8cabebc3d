// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/go-mullion/mullion/events/key"
)

// KeyboardMap caches the server's keycode-to-keysym table, reloaded
// on MappingNotify.
type KeyboardMap struct {
	Min   xproto.Keycode
	Max   xproto.Keycode
	Width int
	Syms  []xproto.Keysym
}

// Load fetches the full keyboard mapping from the server.
func (km *KeyboardMap) Load(conn *xgb.Conn) error {
	setup := xproto.Setup(conn)
	km.Min, km.Max = setup.MinKeycode, setup.MaxKeycode
	rep, err := xproto.GetKeyboardMapping(conn, km.Min, byte(km.Max-km.Min+1)).Reply()
	if err != nil {
		return err
	}
	km.Width = int(rep.KeysymsPerKeycode)
	km.Syms = rep.Keysyms
	return nil
}

// keysym returns the keysym in the given column for a keycode.
func (km *KeyboardMap) keysym(kc xproto.Keycode, col int) xproto.Keysym {
	if kc < km.Min || kc > km.Max || km.Width == 0 {
		return 0
	}
	i := int(kc-km.Min)*km.Width + col
	if i >= len(km.Syms) {
		return 0
	}
	return km.Syms[i]
}

// Lookup translates a keycode and shift state to the portable rune
// and code. The code comes from the unshifted keysym (physical key
// identity); the rune honors shift.
func (km *KeyboardMap) Lookup(kc xproto.Keycode, shifted bool) (rune, key.Codes) {
	base := km.keysym(kc, 0)
	ks := base
	if shifted {
		if s := km.keysym(kc, 1); s != 0 {
			ks = s
		}
	}
	return keysymRune(ks), keysymCode(base)
}

// keysymRune converts a keysym to the character it produces, or 0
// for non-printing keys.
func keysymRune(ks xproto.Keysym) rune {
	switch {
	case ks >= 0x20 && ks <= 0x7e, ks >= 0xa0 && ks <= 0xff:
		return rune(ks)
	case ks&0xff000000 == 0x01000000:
		// directly encoded Unicode keysyms
		return rune(ks &^ 0x01000000)
	case ks >= xkKP0 && ks <= xkKP0+9:
		return '0' + rune(ks-xkKP0)
	}
	return 0
}

// X11 keysym values for non-character keys.
const (
	xkBackSpace = 0xff08
	xkTab       = 0xff09
	xkReturn    = 0xff0d
	xkPause     = 0xff13
	xkEscape    = 0xff1b
	xkHome      = 0xff50
	xkLeft      = 0xff51
	xkUp        = 0xff52
	xkRight     = 0xff53
	xkDown      = 0xff54
	xkPageUp    = 0xff55
	xkPageDown  = 0xff56
	xkEnd       = 0xff57
	xkInsert    = 0xff63
	xkMenu      = 0xff67
	xkHelp      = 0xff6a
	xkNumLock   = 0xff7f
	xkKPEnter   = 0xff8d
	xkKPMult    = 0xffaa
	xkKPAdd     = 0xffab
	xkKPSub     = 0xffad
	xkKPDecimal = 0xffae
	xkKPDivide  = 0xffaf
	xkKP0       = 0xffb0
	xkKPEqual   = 0xffbd
	xkF1        = 0xffbe
	xkShiftL    = 0xffe1
	xkShiftR    = 0xffe2
	xkControlL  = 0xffe3
	xkControlR  = 0xffe4
	xkCapsLock  = 0xffe5
	xkMetaL     = 0xffe7
	xkMetaR     = 0xffe8
	xkAltL      = 0xffe9
	xkAltR      = 0xffea
	xkSuperL    = 0xffeb
	xkSuperR    = 0xffec
	xkDelete    = 0xffff
)

var keysymCodes = map[xproto.Keysym]key.Codes{
	xkBackSpace: key.CodeBackspace,
	xkTab:       key.CodeTab,
	xkReturn:    key.CodeReturnEnter,
	xkPause:     key.CodePause,
	xkEscape:    key.CodeEscape,
	xkHome:      key.CodeHome,
	xkLeft:      key.CodeLeftArrow,
	xkUp:        key.CodeUpArrow,
	xkRight:     key.CodeRightArrow,
	xkDown:      key.CodeDownArrow,
	xkPageUp:    key.CodePageUp,
	xkPageDown:  key.CodePageDown,
	xkEnd:       key.CodeEnd,
	xkInsert:    key.CodeInsert,
	xkMenu:      key.CodeCompose,
	xkHelp:      key.CodeHelp,
	xkNumLock:   key.CodeKeypadNumLock,
	xkKPEnter:   key.CodeKeypadEnter,
	xkKPMult:    key.CodeKeypadAsterisk,
	xkKPAdd:     key.CodeKeypadPlusSign,
	xkKPSub:     key.CodeKeypadHyphenMinus,
	xkKPDecimal: key.CodeKeypadFullStop,
	xkKPDivide:  key.CodeKeypadSlash,
	xkKPEqual:   key.CodeKeypadEqualSign,
	xkShiftL:    key.CodeLeftShift,
	xkShiftR:    key.CodeRightShift,
	xkControlL:  key.CodeLeftControl,
	xkControlR:  key.CodeRightControl,
	xkCapsLock:  key.CodeCapsLock,
	xkMetaL:     key.CodeLeftMeta,
	xkMetaR:     key.CodeRightMeta,
	xkAltL:      key.CodeLeftAlt,
	xkAltR:      key.CodeRightAlt,
	xkSuperL:    key.CodeLeftMeta,
	xkSuperR:    key.CodeRightMeta,
	xkDelete:    key.CodeDelete,
}

// runeCodes is the reverse of [key.CodeRuneMap], for mapping
// character keysyms to physical codes.
var runeCodes = func() map[rune]key.Codes {
	m := make(map[rune]key.Codes, len(key.CodeRuneMap))
	for c, r := range key.CodeRuneMap {
		if _, ok := m[r]; !ok {
			m[r] = c
		}
	}
	return m
}()

// keysymCode maps an unshifted keysym to the portable key code.
func keysymCode(ks xproto.Keysym) key.Codes {
	if c, ok := keysymCodes[ks]; ok {
		return c
	}
	if ks >= xkF1 && ks < xkF1+12 {
		return key.CodeF1 + key.Codes(ks-xkF1)
	}
	if ks >= xkKP0 && ks <= xkKP0+9 {
		if ks == xkKP0 {
			return key.CodeKeypad0
		}
		return key.CodeKeypad1 + key.Codes(ks-xkKP0-1)
	}
	if r := keysymRune(ks); r != 0 {
		if c, ok := runeCodes[r]; ok {
			return c
		}
	}
	return key.CodeUnknown
}

// X modifier mask bits.
const (
	xModShift   = 1 << 0
	xModLock    = 1 << 1
	xModControl = 1 << 2
	xMod1       = 1 << 3 // alt
	xMod2       = 1 << 4 // num lock
	xMod4       = 1 << 6 // super
)

// stateMods converts an X state mask to the portable modifier bitset.
func stateMods(state uint16) key.Modifiers {
	var mods key.Modifiers
	mods.SetFlag(state&xModShift != 0, key.Shift)
	mods.SetFlag(state&xModControl != 0, key.Control)
	mods.SetFlag(state&xMod1 != 0, key.Alt)
	mods.SetFlag(state&xMod4 != 0, key.Meta)
	mods.SetFlag(state&xModLock != 0, key.CapsLock)
	mods.SetFlag(state&xMod2 != 0, key.NumLock)
	return mods
}
