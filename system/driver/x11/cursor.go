// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11

import (
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/go-mullion/mullion/system"
)

// glyph indices in the standard X cursor font.
const (
	xcLeftPtr          = 68
	xcXterm            = 152
	xcCrosshair        = 34
	xcHand2            = 60
	xcCircle           = 24
	xcSbHDoubleArrow   = 108
	xcSbVDoubleArrow   = 116
	xcTopRightCorner   = 136
	xcBottomRightCorner = 14
)

var cursorGlyphs = map[system.Cursors]uint16{
	system.Arrow:      xcLeftPtr,
	system.IBeam:      xcXterm,
	system.Crosshair:  xcCrosshair,
	system.Pointer:    xcHand2,
	system.NotAllowed: xcCircle,
	system.ResizeEW:   xcSbHDoubleArrow,
	system.ResizeNS:   xcSbVDoubleArrow,
	system.ResizeNESW: xcTopRightCorner,
	system.ResizeNWSE: xcBottomRightCorner,
}

var (
	cursorMu    sync.Mutex
	cursorCache map[system.Cursors]xproto.Cursor
	cursorFont  xproto.Font
)

// glyphCursor returns a cached cursor from the X cursor font,
// creating it on first use. Unmapped shapes fall back to the arrow.
func (a *App) glyphCursor(c system.Cursors) (xproto.Cursor, error) {
	cursorMu.Lock()
	defer cursorMu.Unlock()
	if cur, ok := cursorCache[c]; ok {
		return cur, nil
	}
	if cursorCache == nil {
		cursorCache = map[system.Cursors]xproto.Cursor{}
		f, err := xproto.NewFontId(a.Conn)
		if err != nil {
			return 0, err
		}
		if err := xproto.OpenFontChecked(a.Conn, f, uint16(len("cursor")), "cursor").Check(); err != nil {
			return 0, err
		}
		cursorFont = f
	}
	glyph, ok := cursorGlyphs[c]
	if !ok {
		glyph = xcLeftPtr
	}
	cur, err := xproto.NewCursorId(a.Conn)
	if err != nil {
		return 0, err
	}
	err = xproto.CreateGlyphCursorChecked(a.Conn, cur, cursorFont, cursorFont,
		glyph, glyph+1, 0, 0, 0, 0xffff, 0xffff, 0xffff).Check()
	if err != nil {
		return 0, err
	}
	cursorCache[c] = cur
	return cur, nil
}
