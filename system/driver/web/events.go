// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package web

import (
	"image"
	"math"
	"syscall/js"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/events/key"
	"github.com/go-mullion/mullion/system"
)

// addEventListeners attaches the DOM listeners that feed the window's
// event source. The js.Func values live for the life of the page, so
// they are never released.
func (a *App) addEventListeners() {
	g := js.Global()
	doc := g.Get("document")

	listen := func(target js.Value, name string, fn func(e js.Value)) {
		target.Call("addEventListener", name, js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				fn(args[0])
			}
			return nil
		}))
	}

	listen(g, "keydown", a.onKeyDown)
	listen(g, "keyup", a.onKeyUp)
	listen(doc, "compositionstart", a.onCompositionStart)
	listen(doc, "compositionupdate", a.onCompositionUpdate)
	listen(doc, "compositionend", a.onCompositionEnd)

	listen(g, "mousedown", a.onMouseDown)
	listen(g, "mouseup", a.onMouseUp)
	listen(g, "mousemove", a.onMouseMove)
	listen(g, "wheel", a.onWheel)
	listen(g, "contextmenu", func(e js.Value) {
		// the right button is an app event, not a browser menu
		e.Call("preventDefault")
	})

	listen(g, "touchstart", a.onTouchStart)
	listen(g, "touchmove", a.onTouchMove)
	listen(g, "touchend", a.onTouchEnd)
	listen(g, "touchcancel", a.onTouchEnd)

	listen(g, "focus", func(e js.Value) { a.onFocus(true) })
	listen(g, "blur", func(e js.Value) { a.onFocus(false) })
	listen(g, "resize", func(e js.Value) { a.RefreshScreen() })
	listen(doc, "visibilitychange", func(e js.Value) { a.onVisibility(doc) })
}

func (a *App) window() *Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return a.Win
}

// eventMods reads the authoritative modifier state off a DOM event.
func eventMods(e js.Value) key.Modifiers {
	var mods key.Modifiers
	mods.SetFlag(e.Get("shiftKey").Bool(), key.Shift)
	mods.SetFlag(e.Get("ctrlKey").Bool(), key.Control)
	mods.SetFlag(e.Get("altKey").Bool(), key.Alt)
	mods.SetFlag(e.Get("metaKey").Bool(), key.Meta)
	gm := e.Get("getModifierState")
	if gm.Truthy() {
		mods.SetFlag(e.Call("getModifierState", "CapsLock").Bool(), key.CapsLock)
		mods.SetFlag(e.Call("getModifierState", "NumLock").Bool(), key.NumLock)
	}
	return mods
}

// eventRune returns the rune a key event produces, or 0 for named
// keys like "ArrowLeft".
func eventRune(e js.Value) rune {
	k := e.Get("key").String()
	rs := []rune(k)
	if len(rs) != 1 {
		return 0
	}
	return rs[0]
}

func (a *App) onKeyDown(e js.Value) {
	w := a.window()
	if w == nil || w.Alive() != nil {
		return
	}
	// code 229 is the browser's in-composition placeholder; the
	// composition events carry the text
	if e.Get("isComposing").Truthy() || e.Get("keyCode").Int() == 229 {
		return
	}
	code := domCodes[e.Get("code").String()]
	rn := eventRune(e)
	mods := eventMods(e)
	w.Src.SetModifiers(mods)
	w.Src.Key(events.KeyDown, rn, code, mods)
	if rn != 0 && !key.HasAnyModifier(mods, key.Control, key.Meta) {
		w.Src.KeyChord(rn, code, mods)
	}
	// keep shortcuts and Tab away from the browser
	if code == key.CodeTab || key.HasAnyModifier(mods, key.Control, key.Meta) {
		e.Call("preventDefault")
	}
}

func (a *App) onKeyUp(e js.Value) {
	w := a.window()
	if w == nil || w.Alive() != nil {
		return
	}
	if e.Get("isComposing").Truthy() {
		return
	}
	code := domCodes[e.Get("code").String()]
	mods := eventMods(e)
	w.Src.SetModifiers(mods)
	w.Src.Key(events.KeyUp, eventRune(e), code, mods)
}

func (a *App) onCompositionStart(e js.Value) {
	if w := a.window(); w != nil && w.Alive() == nil {
		w.Src.CompositionUpdate("")
	}
}

func (a *App) onCompositionUpdate(e js.Value) {
	if w := a.window(); w != nil && w.Alive() == nil {
		w.Src.CompositionUpdate(e.Get("data").String())
	}
}

func (a *App) onCompositionEnd(e js.Value) {
	w := a.window()
	if w == nil || w.Alive() != nil {
		return
	}
	text := e.Get("data").String()
	if text == "" {
		w.Src.CompositionCancel()
		return
	}
	w.Src.CompositionCommit(text)
}

// eventPos converts CSS client coordinates to surface pixels.
func (a *App) eventPos(e js.Value) image.Point {
	dpr := float64(a.Scrn.DevicePixelRatio.X)
	x := e.Get("clientX").Float() * dpr
	y := e.Get("clientY").Float() * dpr
	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}

var domButtons = map[int]events.Buttons{
	0: events.Left,
	1: events.Middle,
	2: events.Right,
	3: events.Back,
	4: events.Forward,
}

func (a *App) onMouseDown(e js.Value) {
	a.mouseButton(e, events.MouseDown)
}

func (a *App) onMouseUp(e js.Value) {
	a.mouseButton(e, events.MouseUp)
}

func (a *App) mouseButton(e js.Value, typ events.Types) {
	w := a.window()
	if w == nil || w.Alive() != nil {
		return
	}
	but, ok := domButtons[e.Get("button").Int()]
	if !ok {
		return
	}
	mods := eventMods(e)
	w.Src.SetModifiers(mods)
	w.Src.MouseButton(typ, but, a.eventPos(e), mods)
}

func (a *App) onMouseMove(e js.Value) {
	if w := a.window(); w != nil && w.Alive() == nil {
		w.Src.MouseMove(a.eventPos(e))
	}
}

const (
	domDeltaPixel = 0
	domDeltaLine  = 1
	domDeltaPage  = 2
)

func (a *App) onWheel(e js.Value) {
	w := a.window()
	if w == nil || w.Alive() != nil {
		return
	}
	dx, dy := e.Get("deltaX").Float(), e.Get("deltaY").Float()
	unit := events.ScrollLines
	switch e.Get("deltaMode").Int() {
	case domDeltaPixel:
		unit = events.ScrollPixels
		dpr := float64(a.Scrn.DevicePixelRatio.X)
		dx *= dpr
		dy *= dpr
	case domDeltaPage:
		// pages are rare; approximate with a large line count
		dx *= 20
		dy *= 20
	}
	// DOM deltas already use negative-up, matching the portable
	// convention
	w.Src.Scroll(a.eventPos(e),
		image.Pt(int(math.Round(dx)), int(math.Round(dy))), unit)
	e.Call("preventDefault")
}

// touchPos reads the first changed touch as a pointer position.
func (a *App) touchPos(e js.Value) (image.Point, bool) {
	touches := e.Get("changedTouches")
	if !touches.Truthy() || touches.Get("length").Int() == 0 {
		return image.Point{}, false
	}
	return a.eventPos(touches.Index(0)), true
}

func (a *App) onTouchStart(e js.Value) {
	w := a.window()
	if w == nil || w.Alive() != nil {
		return
	}
	if p, ok := a.touchPos(e); ok {
		w.Src.MouseMove(p)
		w.Src.MouseButton(events.MouseDown, events.Left, p, 0)
	}
	e.Call("preventDefault")
}

func (a *App) onTouchMove(e js.Value) {
	w := a.window()
	if w == nil || w.Alive() != nil {
		return
	}
	if p, ok := a.touchPos(e); ok {
		w.Src.MouseMove(p)
	}
	e.Call("preventDefault")
}

func (a *App) onTouchEnd(e js.Value) {
	w := a.window()
	if w == nil || w.Alive() != nil {
		return
	}
	if p, ok := a.touchPos(e); ok {
		w.Src.MouseButton(events.MouseUp, events.Left, p, 0)
	}
	e.Call("preventDefault")
}

func (a *App) onFocus(focused bool) {
	w := a.window()
	if w == nil || w.Alive() != nil {
		return
	}
	w.SetFocused(focused)
	if focused {
		w.Src.Window(events.WinFocus)
	} else {
		w.Src.CompositionCancel()
		w.Src.Window(events.WinFocusLost)
	}
}

func (a *App) onVisibility(doc js.Value) {
	w := a.window()
	if w == nil || w.Alive() != nil {
		return
	}
	if doc.Get("hidden").Bool() {
		if w.Stage() == system.Visible {
			w.SetStage(system.Hidden)
			w.Src.Window(events.WinHide)
		}
	} else if w.Stage() == system.Hidden {
		w.SetStage(system.Visible)
		w.Src.Window(events.WinShow)
		w.markDirty(image.Rectangle{Max: w.Size()})
	}
}
