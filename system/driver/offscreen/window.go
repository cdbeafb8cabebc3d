// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/base"
)

// Window is the offscreen implementation of [system.Window].
type Window struct {
	base.WindowBase

	// Cur is the last cursor set, for test assertions.
	Cur system.Cursors
}

func (w *Window) SetTitle(title string) error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.Mu.Lock()
	w.Titl = title
	w.Mu.Unlock()
	return nil
}

func (w *Window) Show() error {
	if err := w.Alive(); err != nil {
		return err
	}
	if err := w.SetStage(system.Visible); err != nil {
		return err
	}
	w.Src.Window(events.WinShow)
	w.SetFocused(true)
	w.Src.Window(events.WinFocus)
	return nil
}

func (w *Window) Hide() error {
	if err := w.Alive(); err != nil {
		return err
	}
	if err := w.SetStage(system.Hidden); err != nil {
		return err
	}
	if w.IsFocused() {
		w.SetFocused(false)
		w.Src.Window(events.WinFocusLost)
	}
	w.Src.Window(events.WinHide)
	return nil
}

func (w *Window) Raise() error {
	if w.Stage() == system.Hidden {
		return w.Show()
	}
	if err := w.Alive(); err != nil {
		return err
	}
	w.SetFocused(true)
	w.Src.Window(events.WinFocus)
	return nil
}

func (w *Window) Minimize() error {
	return w.Hide()
}

func (w *Window) SetGeometry(pos image.Point, size image.Point) error {
	if err := w.Alive(); err != nil {
		return err
	}
	if pos == (image.Point{}) {
		pos = w.Position()
	}
	if size == (image.Point{}) {
		size = w.WinSize()
	}
	pix := w.Scale().ToPhysical(size)
	w.UpdateGeometry(pos, pix, TheApp.Screens)
	return nil
}

func (w *Window) SetCursor(c system.Cursors) error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.Cur = c
	return nil
}

func (w *Window) Close() {
	w.DestroyClean(nil)
	TheApp.RemoveWindow(w)
}

func (w *Window) Native() (system.NativeSurface, error) {
	if err := w.Alive(); err != nil {
		return system.NativeSurface{}, err
	}
	return system.NativeSurface{Platform: system.Offscreen}, nil
}
