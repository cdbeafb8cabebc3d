// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

package cocoa

import (
	"image"
	"math"

	"github.com/ebitengine/purego/objc"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/events/key"
)

// handleEvent translates one NSEvent and forwards it to AppKit where
// appropriate. Key events are consumed; forwarding them with no text
// first responder makes the system beep.
func (a *App) handleEvent(ev objc.ID) {
	etype := objc.Send[uint64](ev, selEventType)
	if etype == nsEventTypeAppDefined {
		return // wake event
	}
	nsw := objc.Send[objc.ID](ev, selEventWindow)
	w := a.windowFor(nsw)
	if w == nil {
		a.NSApp.Send(selSendEvent, ev)
		return
	}
	switch etype {
	case nsEventTypeKeyDown:
		w.keyDown(ev)
		return
	case nsEventTypeKeyUp:
		w.keyUp(ev)
		return
	case nsEventTypeFlagsChanged:
		w.flagsChanged(ev)
		return
	case nsEventTypeMouseMoved, nsEventTypeLeftMouseDragged,
		nsEventTypeRightMouseDragged, nsEventTypeOtherMouseDragged:
		w.Src.SetModifiers(cocoaMods(objc.Send[uint64](ev, selEventModifierFlags)))
		w.Src.MouseMove(w.eventPos(ev))
	case nsEventTypeLeftMouseDown, nsEventTypeRightMouseDown, nsEventTypeOtherMouseDown:
		w.mouseButton(ev, events.MouseDown)
	case nsEventTypeLeftMouseUp, nsEventTypeRightMouseUp, nsEventTypeOtherMouseUp:
		w.mouseButton(ev, events.MouseUp)
	case nsEventTypeScrollWheel:
		w.scrollWheel(ev)
	}
	a.NSApp.Send(selSendEvent, ev)
}

// eventPos converts the event location to top-left pixel coordinates
// in the content view.
func (w *Window) eventPos(ev objc.ID) image.Point {
	loc := objc.Send[nsPoint](ev, selEventLocation)
	bounds := objc.Send[nsRect](w.NSView, selBounds)
	scale := w.Scale()
	x := loc.X
	y := bounds.Size.H - loc.Y // flip
	return image.Pt(
		int(math.Round(x*float64(scale.X))),
		int(math.Round(y*float64(scale.Y))))
}

func (w *Window) keyDown(ev objc.ID) {
	code := cocoaCodes[uint16(objc.Send[uint64](ev, selEventKeyCode))]
	mods := cocoaMods(objc.Send[uint64](ev, selEventModifierFlags))
	chars := nsStringToGo(objc.Send[objc.ID](ev, selEventCharacters))
	var rn rune
	for _, r := range chars {
		rn = r
		break
	}
	if rn != 0 && (rn < 0x20 || (rn >= 0xF700 && rn <= 0xF8FF)) {
		// control and function-key range characters carry no text
		rn = key.CodeRuneMap[code]
	}
	w.Src.SetModifiers(mods)
	w.Src.Key(events.KeyDown, rn, code, 0)
	if rn != 0 && !mods.HasFlag(key.Control) && !mods.HasFlag(key.Meta) && chars != "" {
		for _, r := range chars {
			if r >= 0x20 && r != 0x7F && !(r >= 0xF700 && r <= 0xF8FF) {
				w.Src.KeyChord(r, code, 0)
			}
		}
	}
}

func (w *Window) keyUp(ev objc.ID) {
	code := cocoaCodes[uint16(objc.Send[uint64](ev, selEventKeyCode))]
	w.Src.SetModifiers(cocoaMods(objc.Send[uint64](ev, selEventModifierFlags)))
	w.Src.Key(events.KeyUp, key.CodeRuneMap[code], code, 0)
}

// flagsChanged is how modifier transitions arrive; the new flag state
// tells the direction.
func (w *Window) flagsChanged(ev objc.ID) {
	code := cocoaCodes[uint16(objc.Send[uint64](ev, selEventKeyCode))]
	mods := cocoaMods(objc.Send[uint64](ev, selEventModifierFlags))
	typ := events.KeyUp
	if m := code.ToModifier(); m != 0 && mods.HasFlag(m) {
		typ = events.KeyDown
	}
	w.Src.SetModifiers(mods)
	w.Src.Key(typ, 0, code, 0)
}

func (w *Window) mouseButton(ev objc.ID, typ events.Types) {
	var but events.Buttons
	switch objc.Send[int64](ev, selEventButtonNumber) {
	case 0:
		but = events.Left
	case 1:
		but = events.Right
	case 2:
		but = events.Middle
	case 3:
		but = events.Back
	case 4:
		but = events.Forward
	default:
		return
	}
	w.Src.SetModifiers(cocoaMods(objc.Send[uint64](ev, selEventModifierFlags)))
	w.Src.MouseButton(typ, but, w.eventPos(ev), 0)
}

func (w *Window) scrollWheel(ev objc.ID) {
	dx := objc.Send[float64](ev, selScrollDeltaX)
	dy := objc.Send[float64](ev, selScrollDeltaY)
	unit := events.ScrollLines
	if objc.Send[bool](ev, selHasPreciseDeltas) {
		unit = events.ScrollPixels
	}
	// AppKit deltas are positive scrolling up; portable is the reverse
	d := image.Pt(int(math.Round(-dx)), int(math.Round(-dy)))
	if d == (image.Point{}) {
		return
	}
	w.Src.SetModifiers(cocoaMods(objc.Send[uint64](ev, selEventModifierFlags)))
	w.Src.Scroll(w.eventPos(ev), d, unit)
}

func cocoaMods(flags uint64) key.Modifiers {
	var mods key.Modifiers
	mods.SetFlag(flags&nsModifierShift != 0, key.Shift)
	mods.SetFlag(flags&nsModifierControl != 0, key.Control)
	mods.SetFlag(flags&nsModifierOption != 0, key.Alt)
	mods.SetFlag(flags&nsModifierCommand != 0, key.Meta)
	mods.SetFlag(flags&nsModifierCapsLock != 0, key.CapsLock)
	return mods
}

// cocoaCodes maps macOS virtual keycodes, which are layout-independent
// on Apple hardware, to portable key codes.
var cocoaCodes = map[uint16]key.Codes{
	0:  key.CodeA,
	1:  key.CodeS,
	2:  key.CodeD,
	3:  key.CodeF,
	4:  key.CodeH,
	5:  key.CodeG,
	6:  key.CodeZ,
	7:  key.CodeX,
	8:  key.CodeC,
	9:  key.CodeV,
	11: key.CodeB,
	12: key.CodeQ,
	13: key.CodeW,
	14: key.CodeE,
	15: key.CodeR,
	16: key.CodeY,
	17: key.CodeT,
	18: key.Code1,
	19: key.Code2,
	20: key.Code3,
	21: key.Code4,
	22: key.Code6,
	23: key.Code5,
	24: key.CodeEqualSign,
	25: key.Code9,
	26: key.Code7,
	27: key.CodeHyphenMinus,
	28: key.Code8,
	29: key.Code0,
	30: key.CodeRightSquareBracket,
	31: key.CodeO,
	32: key.CodeU,
	33: key.CodeLeftSquareBracket,
	34: key.CodeI,
	35: key.CodeP,
	36: key.CodeReturnEnter,
	37: key.CodeL,
	38: key.CodeJ,
	39: key.CodeApostrophe,
	40: key.CodeK,
	41: key.CodeSemicolon,
	42: key.CodeBackslash,
	43: key.CodeComma,
	44: key.CodeSlash,
	45: key.CodeN,
	46: key.CodeM,
	47: key.CodeFullStop,
	48: key.CodeTab,
	49: key.CodeSpacebar,
	50: key.CodeGraveAccent,
	51: key.CodeBackspace,
	53: key.CodeEscape,
	54: key.CodeRightMeta,
	55: key.CodeLeftMeta,
	56: key.CodeLeftShift,
	57: key.CodeCapsLock,
	58: key.CodeLeftAlt,
	59: key.CodeLeftControl,
	60: key.CodeRightShift,
	61: key.CodeRightAlt,
	62: key.CodeRightControl,

	65: key.CodeKeypadFullStop,
	67: key.CodeKeypadAsterisk,
	69: key.CodeKeypadPlusSign,
	75: key.CodeKeypadSlash,
	76: key.CodeKeypadEnter,
	78: key.CodeKeypadHyphenMinus,
	82: key.CodeKeypad0,
	83: key.CodeKeypad1,
	84: key.CodeKeypad2,
	85: key.CodeKeypad3,
	86: key.CodeKeypad4,
	87: key.CodeKeypad5,
	88: key.CodeKeypad6,
	89: key.CodeKeypad7,
	91: key.CodeKeypad8,
	92: key.CodeKeypad9,

	96:  key.CodeF5,
	97:  key.CodeF6,
	98:  key.CodeF7,
	99:  key.CodeF3,
	100: key.CodeF8,
	101: key.CodeF9,
	103: key.CodeF11,
	109: key.CodeF10,
	111: key.CodeF12,
	114: key.CodeInsert,
	115: key.CodeHome,
	116: key.CodePageUp,
	117: key.CodeDelete,
	118: key.CodeF4,
	119: key.CodeEnd,
	120: key.CodeF2,
	121: key.CodePageDown,
	122: key.CodeF1,
	123: key.CodeLeftArrow,
	124: key.CodeRightArrow,
	125: key.CodeDownArrow,
	126: key.CodeUpArrow,
}
