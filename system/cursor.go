// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

// Cursors are the standard pointer cursor shapes. Backends map them
// to the closest native cursor; an unmapped shape falls back to Arrow.
type Cursors int32

const (
	// Arrow is the default pointer.
	Arrow Cursors = iota

	// IBeam is the text insertion cursor.
	IBeam

	// Crosshair is a precise selection cursor.
	Crosshair

	// Pointer is the hand shown over links and buttons.
	Pointer

	// NotAllowed indicates the action is unavailable.
	NotAllowed

	// ResizeEW is the horizontal resize cursor.
	ResizeEW

	// ResizeNS is the vertical resize cursor.
	ResizeNS

	// ResizeNESW is the diagonal resize cursor (up-right).
	ResizeNESW

	// ResizeNWSE is the diagonal resize cursor (down-right).
	ResizeNWSE

	CursorsN
)

var cursorNames = [CursorsN]string{
	"Arrow", "IBeam", "Crosshair", "Pointer", "NotAllowed",
	"ResizeEW", "ResizeNS", "ResizeNESW", "ResizeNWSE",
}

func (c Cursors) String() string {
	if c >= 0 && c < CursorsN {
		return cursorNames[c]
	}
	return "Cursors(?)"
}
