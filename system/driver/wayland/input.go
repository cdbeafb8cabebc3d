// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package wayland

import (
	"image"
	"time"

	"golang.org/x/sys/unix"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/events/key"
	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
)

// inputState is the wl_seat state: which surface has pointer and
// keyboard focus, the current modifiers, and key repeat.
type inputState struct {
	app      *App
	pointer  uint32
	keyboard uint32

	// focus by surface object id
	pointerFocus  uint32
	keyboardFocus uint32

	// last pointer position in surface-logical coordinates
	pointerPos image.Point

	mods key.Modifiers

	// repeat settings from wl_keyboard.repeat_info
	repeatRate  int32
	repeatDelay int32

	// repeatTimer synthesizes key repeat; Wayland only sends the
	// initial press
	repeatStop chan struct{}
}

func (in *inputState) init(a *App) {
	in.app = a
	in.repeatRate = 25
	in.repeatDelay = 400
}

func (in *inputState) seatEvent(m *message) {
	if m.Opcode != evSeatCapabilities {
		return
	}
	caps := m.Uint()
	a := in.app
	if caps&seatCapPointer != 0 && in.pointer == 0 {
		in.pointer = a.Conn.NewID()
		a.setHandler(in.pointer, in.pointerEvent)
		if err := a.Conn.Request(a.seat, opSeatGetPointer, (&argWriter{}).Uint(in.pointer)); err != nil {
			logx.PrintlnWarn("wayland: get_pointer:", err)
		}
	}
	if caps&seatCapKeyboard != 0 && in.keyboard == 0 {
		in.keyboard = a.Conn.NewID()
		a.setHandler(in.keyboard, in.keyboardEvent)
		if err := a.Conn.Request(a.seat, opSeatGetKeyboard, (&argWriter{}).Uint(in.keyboard)); err != nil {
			logx.PrintlnWarn("wayland: get_keyboard:", err)
		}
	}
}

// focusWindow returns the window whose surface currently holds the
// given focus id.
func (in *inputState) focusWindow(surface uint32) *Window {
	a := in.app
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, w := range a.Windows {
		if w.surface == surface {
			return w
		}
	}
	return nil
}

func (in *inputState) pointerEvent(m *message) {
	switch m.Opcode {
	case evPointerEnter:
		m.Uint() // serial
		in.pointerFocus = m.Uint()
		in.pointerPos = image.Pt(int(m.Fixed()), int(m.Fixed()))
	case evPointerLeave:
		m.Uint()
		in.pointerFocus = 0
	case evPointerMotion:
		m.Uint() // time
		in.pointerPos = image.Pt(int(m.Fixed()), int(m.Fixed()))
		if w := in.focusWindow(in.pointerFocus); w != nil {
			w.Src.SetModifiers(in.mods)
			w.Src.MouseMove(in.pointerPos)
		}
	case evPointerButton:
		m.Uint() // serial
		m.Uint() // time
		button := m.Uint()
		state := m.Uint()
		w := in.focusWindow(in.pointerFocus)
		if w == nil {
			return
		}
		typ := events.MouseUp
		if state == keyStatePressed {
			typ = events.MouseDown
		}
		var but events.Buttons
		switch button {
		case btnLeft:
			but = events.Left
		case btnRight:
			but = events.Right
		case btnMiddle:
			but = events.Middle
		case btnSide:
			but = events.Back
		case btnExtra:
			but = events.Forward
		default:
			return
		}
		w.Src.SetModifiers(in.mods)
		w.Src.MouseButton(typ, but, in.pointerPos, 0)
	case evPointerAxis:
		m.Uint() // time
		axis := m.Uint()
		value := m.Fixed()
		w := in.focusWindow(in.pointerFocus)
		if w == nil {
			return
		}
		var delta image.Point
		if axis == 0 {
			delta.Y = int(value)
		} else {
			delta.X = int(value)
		}
		if delta == (image.Point{}) {
			return
		}
		w.Src.SetModifiers(in.mods)
		w.Src.Scroll(in.pointerPos, delta, events.ScrollPixels)
	}
}

func (in *inputState) keyboardEvent(m *message) {
	switch m.Opcode {
	case evKeyboardKeymap:
		// the xkb keymap fd is not parsed; translation uses the
		// fixed evdev table, so close the fd and move on
		m.Uint() // format
		if fd := m.FD(); fd >= 0 {
			unix.Close(fd)
		}
	case evKeyboardEnter:
		m.Uint() // serial
		in.keyboardFocus = m.Uint()
		if w := in.focusWindow(in.keyboardFocus); w != nil {
			w.SetFocused(true)
			w.Src.Window(events.WinFocus)
		}
	case evKeyboardLeave:
		m.Uint()
		surface := m.Uint()
		in.stopRepeat()
		if w := in.focusWindow(surface); w != nil {
			w.SetFocused(false)
			w.Src.Window(events.WinFocusLost)
		}
		in.keyboardFocus = 0
	case evKeyboardKey:
		m.Uint() // serial
		m.Uint() // time
		keycode := m.Uint()
		state := m.Uint()
		in.key(keycode, state == keyStatePressed)
	case evKeyboardModifiers:
		m.Uint() // serial
		depressed := m.Uint()
		latched := m.Uint()
		locked := m.Uint()
		in.mods = xkbMods(depressed | latched | locked)
	case evKeyboardRepeat:
		in.repeatRate = m.Int()
		in.repeatDelay = m.Int()
	}
}

// key delivers one key transition and manages synthetic repeat:
// the compositor sends a single press, so repeat is generated
// client side at the advertised rate.
func (in *inputState) key(keycode uint32, pressed bool) {
	w := in.focusWindow(in.keyboardFocus)
	if w == nil {
		return
	}
	rn, code := evdevLookup(keycode, in.mods)
	w.Src.SetModifiers(in.mods)
	in.stopRepeat()
	if !pressed {
		w.Src.Key(events.KeyUp, rn, code, 0)
		return
	}
	w.Src.Key(events.KeyDown, rn, code, 0)
	if rn != 0 && !in.mods.HasFlag(key.Control) && !in.mods.HasFlag(key.Meta) {
		w.Src.KeyChord(rn, code, 0)
	}
	if in.repeatRate > 0 && !key.CodeIsModifier(code) {
		in.startRepeat(w, rn, code)
	}
}

func (in *inputState) startRepeat(w *Window, rn rune, code key.Codes) {
	stop := make(chan struct{})
	in.repeatStop = stop
	delay := time.Duration(in.repeatDelay) * time.Millisecond
	interval := time.Second / time.Duration(in.repeatRate)
	go func() {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-stop:
			return
		case <-t.C:
		}
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tk.C:
				if w.Stage() >= system.Closing {
					return
				}
				w.Src.Key(events.KeyDown, rn, code, 0)
				if rn != 0 {
					w.Src.KeyChord(rn, code, 0)
				}
			}
		}
	}()
}

func (in *inputState) stopRepeat() {
	if in.repeatStop != nil {
		close(in.repeatStop)
		in.repeatStop = nil
	}
}

// xkb modifier indices with the default keymap layout.
const (
	xkbShift = 1 << 0
	xkbLock  = 1 << 1
	xkbCtrl  = 1 << 2
	xkbMod1  = 1 << 3
	xkbMod2  = 1 << 4
	xkbMod4  = 1 << 6
)

func xkbMods(mask uint32) key.Modifiers {
	var mods key.Modifiers
	mods.SetFlag(mask&xkbShift != 0, key.Shift)
	mods.SetFlag(mask&xkbCtrl != 0, key.Control)
	mods.SetFlag(mask&xkbMod1 != 0, key.Alt)
	mods.SetFlag(mask&xkbMod4 != 0, key.Meta)
	mods.SetFlag(mask&xkbLock != 0, key.CapsLock)
	mods.SetFlag(mask&xkbMod2 != 0, key.NumLock)
	return mods
}
