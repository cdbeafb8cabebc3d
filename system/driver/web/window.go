// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package web

import (
	"image"
	"sync"
	"syscall/js"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/base"
)

// Window is the web implementation of [system.Window]; it wraps the
// one canvas element the page provides.
type Window struct {
	base.WindowBase

	app *App

	// dirty accumulates damage between animation frames; paints are
	// delivered at most once per frame.
	dmu     sync.Mutex
	dirty   image.Rectangle
	frameFn js.Func
}

func (w *Window) canvas() js.Value {
	return js.Global().Get("document").Call("getElementById", CanvasID)
}

// startFrameLoop begins the requestAnimationFrame cycle that flushes
// accumulated damage as paint events.
func (w *Window) startFrameLoop() {
	w.frameFn = js.FuncOf(func(this js.Value, args []js.Value) any {
		if w.Alive() != nil {
			w.frameFn.Release()
			return nil
		}
		w.dmu.Lock()
		d := w.dirty
		w.dirty = image.Rectangle{}
		w.dmu.Unlock()
		if !d.Empty() {
			w.Src.WindowPaint(d)
		}
		js.Global().Call("requestAnimationFrame", w.frameFn)
		return nil
	})
	js.Global().Call("requestAnimationFrame", w.frameFn)
}

func (w *Window) markDirty(damage image.Rectangle) {
	w.dmu.Lock()
	w.dirty = w.dirty.Union(damage)
	w.dmu.Unlock()
}

// RequestRedraw coalesces damage into the next animation frame rather
// than queuing a paint immediately.
func (w *Window) RequestRedraw(damage image.Rectangle) error {
	if err := w.Alive(); err != nil {
		return err
	}
	if damage.Empty() {
		damage = image.Rectangle{Max: w.Size()}
	}
	w.markDirty(damage)
	return nil
}

func (w *Window) SetTitle(title string) error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.Mu.Lock()
	w.Titl = title
	w.Mu.Unlock()
	js.Global().Get("document").Set("title", title)
	return nil
}

func (w *Window) Show() error {
	if err := w.Alive(); err != nil {
		return err
	}
	if c := w.canvas(); c.Truthy() {
		c.Get("style").Set("display", "")
	}
	if w.Stage() == system.Hidden || w.Stage() == system.Mapped {
		w.SetStage(system.Visible)
		w.Src.Window(events.WinShow)
	}
	return nil
}

func (w *Window) Hide() error {
	if err := w.Alive(); err != nil {
		return err
	}
	if c := w.canvas(); c.Truthy() {
		c.Get("style").Set("display", "none")
	}
	if w.Stage() == system.Visible {
		w.SetStage(system.Hidden)
		w.Src.Window(events.WinHide)
	}
	return nil
}

// Raise focuses the canvas; the browser owns stacking.
func (w *Window) Raise() error {
	if err := w.Alive(); err != nil {
		return err
	}
	if c := w.canvas(); c.Truthy() {
		c.Call("focus")
	}
	return nil
}

// Minimize is not expressible in a page; hiding the canvas is the
// nearest equivalent.
func (w *Window) Minimize() error {
	return w.Hide()
}

// SetGeometry is a no-op; the browser viewport sizes the window.
func (w *Window) SetGeometry(pos image.Point, size image.Point) error {
	return w.Alive()
}

// cursorNames maps portable cursors to CSS cursor values.
var cursorNames = map[system.Cursors]string{
	system.Arrow:      "default",
	system.IBeam:      "text",
	system.Crosshair:  "crosshair",
	system.Pointer:    "pointer",
	system.NotAllowed: "not-allowed",
	system.ResizeEW:   "ew-resize",
	system.ResizeNS:   "ns-resize",
	system.ResizeNESW: "nesw-resize",
	system.ResizeNWSE: "nwse-resize",
}

func (w *Window) SetCursor(c system.Cursors) error {
	if err := w.Alive(); err != nil {
		return err
	}
	name, ok := cursorNames[c]
	if !ok {
		name = "default"
	}
	if cv := w.canvas(); cv.Truthy() {
		cv.Get("style").Set("cursor", name)
	}
	return nil
}

func (w *Window) Close() {
	w.DestroyClean(func() {
		// the canvas belongs to the page; nothing native to release
	})
	w.app.RemoveWindow(w)
}

func (w *Window) Native() (system.NativeSurface, error) {
	if err := w.Alive(); err != nil {
		return system.NativeSurface{}, err
	}
	return system.NativeSurface{
		Platform: system.Web,
		CanvasID: CanvasID,
	}, nil
}
