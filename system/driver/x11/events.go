// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11

import (
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/events/key"
	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
)

// eventReader runs on its own goroutine, translating native X events
// into portable ones on the app deque. The deque's wake channel gets
// the loop thread to drain them; a read error breaks the loop.
func (a *App) eventReader() {
	defer func() { system.HandleRecover(recover()) }()
	for {
		ev, err := a.Conn.WaitForEvent()
		if ev == nil && err == nil {
			a.Lp.Break(system.ErrLoopBroken)
			return
		}
		if err != nil {
			// per-request errors are not fatal
			logx.PrintlnDebug("x11: event error:", err)
			continue
		}
		a.translateEvent(ev)
	}
}

// windowFor resolves the X window id to our window, nil for windows
// we do not own.
func (a *App) windowFor(xw xproto.Window) *Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, w := range a.Windows {
		if w.XWin == xw {
			return w
		}
	}
	return nil
}

func (a *App) translateEvent(xev xgb.Event) {
	switch e := xev.(type) {
	case xproto.KeyPressEvent:
		a.keyEvent(a.windowFor(e.Event), events.KeyDown, e.Detail, e.State)
	case xproto.KeyReleaseEvent:
		a.keyEvent(a.windowFor(e.Event), events.KeyUp, e.Detail, e.State)
	case xproto.ButtonPressEvent:
		a.buttonEvent(a.windowFor(e.Event), events.MouseDown, e.Detail, e.EventX, e.EventY, e.State)
	case xproto.ButtonReleaseEvent:
		a.buttonEvent(a.windowFor(e.Event), events.MouseUp, e.Detail, e.EventX, e.EventY, e.State)
	case xproto.MotionNotifyEvent:
		if w := a.windowFor(e.Event); w != nil {
			w.Src.SetModifiers(stateMods(e.State))
			w.Src.MouseMove(w.toLogical(int(e.EventX), int(e.EventY)))
		}
	case xproto.ConfigureNotifyEvent:
		if w := a.windowFor(e.Window); w != nil {
			w.configure(int(e.X), int(e.Y), int(e.Width), int(e.Height))
		}
	case xproto.ExposeEvent:
		if w := a.windowFor(e.Window); w != nil {
			w.Src.WindowPaint(image.Rect(int(e.X), int(e.Y),
				int(e.X)+int(e.Width), int(e.Y)+int(e.Height)))
		}
	case xproto.FocusInEvent:
		if w := a.windowFor(e.Event); w != nil {
			w.SetFocused(true)
			w.Src.Window(events.WinFocus)
		}
	case xproto.FocusOutEvent:
		if w := a.windowFor(e.Event); w != nil {
			w.SetFocused(false)
			w.Src.Window(events.WinFocusLost)
		}
	case xproto.ClientMessageEvent:
		if w := a.windowFor(e.Window); w != nil {
			if e.Type == a.Atoms.WMProtocols && len(e.Data.Data32) > 0 &&
				xproto.Atom(e.Data.Data32[0]) == a.Atoms.WMDeleteWindow {
				w.Src.Window(events.WinCloseReq)
			}
		}
	case xproto.MapNotifyEvent:
		if w := a.windowFor(e.Window); w != nil {
			w.SetStage(system.Visible)
			w.Src.Window(events.WinShow)
		}
	case xproto.UnmapNotifyEvent:
		if w := a.windowFor(e.Window); w != nil {
			w.SetStage(system.Hidden)
			w.Src.Window(events.WinHide)
		}
	case xproto.DestroyNotifyEvent:
		if w := a.windowFor(e.Window); w != nil {
			w.Src.Window(events.WinDestroy)
		}
	case xproto.MappingNotifyEvent:
		if err := a.Keyboard.Load(a.Conn); err != nil {
			logx.PrintlnWarn("x11: reloading keyboard mapping:", err)
		}
	case randr.ScreenChangeNotifyEvent:
		a.Deque.Send(events.NewWindow(events.ScreenUpdate))
	case randr.NotifyEvent:
		a.Deque.Send(events.NewWindow(events.ScreenUpdate))
	}
}

func (a *App) keyEvent(w *Window, typ events.Types, kc xproto.Keycode, state uint16) {
	if w == nil {
		return
	}
	mods := stateMods(state)
	rn, code := a.Keyboard.Lookup(kc, mods.HasFlag(key.Shift))
	w.Src.SetModifiers(mods)
	w.Src.Key(typ, rn, code, 0)
	// without an input method connection, character input is the
	// pressed key itself
	if typ == events.KeyDown && rn != 0 && !mods.HasFlag(key.Control) && !mods.HasFlag(key.Meta) {
		w.Src.KeyChord(rn, code, 0)
	}
}

func (a *App) buttonEvent(w *Window, typ events.Types, detail xproto.Button, x, y int16, state uint16) {
	if w == nil {
		return
	}
	w.Src.SetModifiers(stateMods(state))
	where := w.toLogical(int(x), int(y))
	switch detail {
	case 1:
		w.Src.MouseButton(typ, events.Left, where, 0)
	case 2:
		w.Src.MouseButton(typ, events.Middle, where, 0)
	case 3:
		w.Src.MouseButton(typ, events.Right, where, 0)
	case 4, 5, 6, 7:
		// wheel comes as button presses; one press per line step
		if typ != events.MouseDown {
			return
		}
		var delta image.Point
		switch detail {
		case 4:
			delta.Y = -1
		case 5:
			delta.Y = 1
		case 6:
			delta.X = -1
		case 7:
			delta.X = 1
		}
		w.Src.Scroll(where, delta, events.ScrollLines)
	case 8:
		w.Src.MouseButton(typ, events.Back, where, 0)
	case 9:
		w.Src.MouseButton(typ, events.Forward, where, 0)
	}
}

// RefreshScreens reloads the monitor layout and re-resolves every
// window's screen and scale; run on the loop thread for
// ScreenUpdate events.
func (a *App) RefreshScreens() {
	a.GetScreens()
	a.Mu.Lock()
	wins := make([]*Window, len(a.Windows))
	copy(wins, a.Windows)
	a.Mu.Unlock()
	for _, w := range wins {
		if w.Stage() < system.Closing {
			w.UpdateGeometry(w.Position(), w.Size(), a.Screens)
		}
	}
}
