// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"image"
	"sync"
	"time"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
)

// WindowBase contains the data and logic common to all
// implementations of [system.Window]. Driver windows embed it and
// implement the native operations on top.
type WindowBase struct {
	// Win is the process-scoped window id; monotonic, never reused.
	Win int64

	// Nm is the programmatic name.
	Nm string

	// Titl is the user-visible title.
	Titl string

	// Opts are the options the window was created with.
	Opts system.NewWindowOptions

	// Hndlr receives all callbacks for this window.
	Hndlr system.Handler

	// Src is the per-window input normalizer feeding the app deque.
	Src *events.Source

	// Lp is the app loop, for idle and timer scheduling.
	Lp *Loop

	// Mu protects the mutable geometry and stage fields.
	Mu sync.Mutex

	// Stg is the lifecycle stage.
	Stg system.Stages

	// Focus is whether the window has keyboard focus.
	Focus bool

	// Pos is the position on the desktop in physical pixels.
	Pos image.Point

	// WnSize is the size in logical coordinates.
	WnSize image.Point

	// PixSz is the size in physical pixels.
	PixSz image.Point

	// Scl relates WnSize to PixSz.
	Scl system.Scale

	// Scrn is the screen the window is on.
	Scrn *system.Screen

	// Mnu is the installed menu, or nil.
	Mnu *system.Menu

	// self is the full [system.Window] this base is embedded in, set
	// by SetSelf, so the loop gets the real window for scheduling.
	self system.Window
}

// SetSelf records the full window the base is embedded in; driver
// windows call it right after InitWindow.
func (w *WindowBase) SetSelf(self system.Window) {
	w.self = self
}

// InitWindow sets up the base fields; driver windows call it first.
func (w *WindowBase) InitWindow(id int64, opts *system.NewWindowOptions, h system.Handler, lp *Loop) {
	w.Win = id
	w.Opts = *opts
	w.Titl = opts.Title
	w.Nm = opts.Title
	w.Hndlr = h
	w.Lp = lp
	w.Src = events.NewSource(lp.Dq, id)
	w.Scl = system.ScaleUniform(1)
	w.WnSize = opts.Size
	w.PixSz = opts.Size
	w.Stg = system.Created
}

func (w *WindowBase) ID() int64 { return w.Win }

func (w *WindowBase) Name() string        { return w.Nm }
func (w *WindowBase) SetName(name string) { w.Nm = name }

func (w *WindowBase) Title() string { return w.Titl }

func (w *WindowBase) Handler() system.Handler { return w.Hndlr }

func (w *WindowBase) Events() *events.Source { return w.Src }

func (w *WindowBase) Stage() system.Stages {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Stg
}

// SetStage moves the window to the given stage, enforcing the
// forward-only lifecycle. Invalid changes are rejected with a
// [system.StageError].
func (w *WindowBase) SetStage(to system.Stages) error {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	if w.Stg == to {
		return nil
	}
	if !system.ValidStageChange(w.Stg, to) {
		err := &system.StageError{From: w.Stg, To: to}
		logx.PrintlnWarn("system:", err.Error())
		return err
	}
	w.Stg = to
	return nil
}

// Alive returns [system.ErrWindowDestroyed] once teardown has begun.
// Fallible window operations call it first so stale handles fail
// explicitly.
func (w *WindowBase) Alive() error {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	if w.Stg >= system.Closing {
		return system.ErrWindowDestroyed
	}
	return nil
}

func (w *WindowBase) Size() image.Point {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.PixSz
}

func (w *WindowBase) WinSize() image.Point {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.WnSize
}

func (w *WindowBase) Position() image.Point {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Pos
}

func (w *WindowBase) Scale() system.Scale {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Scl
}

func (w *WindowBase) Screen() *system.Screen {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Scrn
}

func (w *WindowBase) IsFocused() bool {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Focus
}

// SetFocused records the focus state; drivers call it before queuing
// the focus event.
func (w *WindowBase) SetFocused(focus bool) {
	w.Mu.Lock()
	w.Focus = focus
	w.Mu.Unlock()
}

func (w *WindowBase) Menu() *system.Menu {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Mnu
}

// SetMenuBase validates and stores the menu; drivers with native
// menus override SetMenu and call this first.
func (w *WindowBase) SetMenuBase(m *system.Menu) error {
	if err := w.Alive(); err != nil {
		return err
	}
	if m != nil {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	w.Mu.Lock()
	w.Mnu = m
	w.Mu.Unlock()
	return nil
}

func (w *WindowBase) SetMenu(m *system.Menu) error {
	return w.SetMenuBase(m)
}

// UpdateGeometry records new geometry and re-resolves the screen and
// scale from the given screen list; it queues the resize event with
// the bundled scale. Drivers call it from their native configure and
// DPI-change notifications.
func (w *WindowBase) UpdateGeometry(pos, pix image.Point, screens []*system.Screen) {
	w.Mu.Lock()
	w.Pos = pos
	sc := system.ScreenForRect(screens, image.Rectangle{Min: pos, Max: pos.Add(pix)})
	if sc != nil {
		w.Scrn = sc
		w.Scl = sc.Scale()
	}
	w.PixSz = pix
	w.WnSize = w.Scl.ToLogical(pix)
	size, scl := w.WnSize, w.Scl
	w.Mu.Unlock()
	w.Src.WindowResize(size, pix, scl.X, scl.Y)
}

// RequestRedraw queues a paint of the given damage region; an empty
// rectangle means the full surface. Coalesced in the deque.
func (w *WindowBase) RequestRedraw(damage image.Rectangle) error {
	if err := w.Alive(); err != nil {
		return err
	}
	if damage.Empty() {
		damage = image.Rectangle{Max: w.Size()}
	}
	w.Src.WindowPaint(damage)
	return nil
}

// SetTextInputRect is a no-op by default; backends with IME popup
// positioning override it.
func (w *WindowBase) SetTextInputRect(r image.Rectangle) error {
	return w.Alive()
}

func (w *WindowBase) ScheduleIdle(tok system.IdleToken) error {
	if err := w.Alive(); err != nil {
		return err
	}
	lp := w.Lp
	w.Mu.Lock()
	self := w.self
	w.Mu.Unlock()
	lp.ScheduleIdle(self, tok)
	return nil
}

func (w *WindowBase) ScheduleTimer(delay time.Duration, repeat bool) (system.TimerToken, error) {
	if err := w.Alive(); err != nil {
		return 0, err
	}
	w.Mu.Lock()
	self := w.self
	w.Mu.Unlock()
	return w.Lp.ScheduleTimer(self, delay, repeat), nil
}

func (w *WindowBase) CancelTimer(tok system.TimerToken) error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.Lp.CancelTimer(tok)
	return nil
}

// CloseReq queues a vetoable close request, equivalent to the user
// clicking the close button. Any-thread.
func (w *WindowBase) CloseReq() {
	if w.Alive() != nil {
		return
	}
	w.Src.Window(events.WinCloseReq)
}

// DestroyClean runs the common teardown: stage to Closing, the given
// native release function, stage to Destroyed, then the handler's
// Destroyed callback. Loop thread only. Idempotent.
func (w *WindowBase) DestroyClean(release func()) {
	if w.Alive() != nil {
		return
	}
	system.RecordGeometry(w.self)
	w.Mu.Lock()
	if w.Stg >= system.Closing {
		w.Mu.Unlock()
		return
	}
	w.Stg = system.Closing
	w.Mu.Unlock()
	if release != nil {
		release()
	}
	w.Mu.Lock()
	w.Stg = system.Destroyed
	w.Mu.Unlock()
	w.Hndlr.Destroyed()
}
