// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"container/heap"
	"image"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
)

// Loop is the unified event loop shared by every backend. It owns the
// timer heap, the idle queue, and event dispatch, so handler callbacks
// are serialized on one goroutine regardless of where native
// notifications arrive. Backends differ only in how native events get
// into the deque and in the wait primitive: poll backends call [Loop.Run]
// directly, while pump backends (win32, cocoa, web) wait natively and
// call [Loop.Step] each time around.
type Loop struct {
	// Dq is the app event deque drained by Step.
	Dq *events.Deque

	// Funcs is the RunOnMain queue, serviced between dispatches.
	Funcs chan FuncRun

	// Lookup resolves a window id to its window, or nil. Events for
	// unknown or destroyed windows are dropped. Set by the driver app.
	Lookup func(id int64) system.Window

	// OnScreenUpdate, if set, is called on the loop thread when a
	// ScreenUpdate event arrives, before windows are re-resolved.
	OnScreenUpdate func()

	// WakeHook, if set, is called on every wake so pump backends'
	// native wait returns (PostMessage on win32, a main-queue dispatch
	// on cocoa).
	WakeHook func()

	mu        sync.Mutex
	timers    timerHeap
	timerEnts map[system.TimerToken]*timerEntry
	nextTok   int64
	idles     []idleEntry
	quitting  atomic.Bool
	broken    chan error
	wakeC     chan struct{}

	// loopGo is the goroutine id running the loop, recorded at the
	// first Run or Step.
	loopGo atomic.Int64
}

type idleEntry struct {
	w   system.Window
	tok system.IdleToken
}

type timerEntry struct {
	w        system.Window
	tok      system.TimerToken
	due      time.Time
	period   time.Duration
	repeat   bool
	canceled bool
	index    int
}

// Init readies the loop; called by [App.Init].
func (lp *Loop) Init(dq *events.Deque, funcs chan FuncRun) {
	lp.Dq = dq
	lp.Funcs = funcs
	lp.timerEnts = map[system.TimerToken]*timerEntry{}
	lp.broken = make(chan error, 1)
	lp.wakeC = make(chan struct{}, 1)
	lp.loopGo.Store(0)
}

// markThread records the loop goroutine on first entry, so
// [Loop.OnLoopThread] can tell callbacks apart from other goroutines.
func (lp *Loop) markThread() {
	if lp.loopGo.Load() == 0 {
		lp.loopGo.Store(goid())
	}
}

// OnLoopThread reports whether the caller is on the loop goroutine,
// i.e. inside a handler callback or a RunOnMain function.
func (lp *Loop) OnLoopThread() bool {
	g := lp.loopGo.Load()
	return g != 0 && g == goid()
}

// goid parses the current goroutine id from the stack header
// ("goroutine N [...]"); there is no runtime accessor for it.
func goid() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := buf[len("goroutine "):n]
	var id int64
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + int64(c-'0')
	}
	return id
}

// Wake makes a blocked loop re-check its state. Coalescing, any-thread.
func (lp *Loop) Wake() {
	select {
	case lp.wakeC <- struct{}{}:
	default:
	}
	if lp.WakeHook != nil {
		lp.WakeHook()
	}
}

// Quit schedules loop exit after the current dispatch completes. It
// never interrupts a running callback. Idempotent, any-thread.
func (lp *Loop) Quit() {
	lp.quitting.Store(true)
	lp.Wake()
}

// Quitting returns whether Quit has been called.
func (lp *Loop) Quitting() bool { return lp.quitting.Load() }

// Break reports a fatal display error from a reader goroutine; the
// loop exits returning it.
func (lp *Loop) Break(err error) {
	select {
	case lp.broken <- err:
	default:
	}
	lp.Wake()
}

//////// Timers and idles

// ScheduleIdle queues the window handler's Idle callback with the
// given token, exactly once. Any-thread.
func (lp *Loop) ScheduleIdle(w system.Window, tok system.IdleToken) {
	lp.mu.Lock()
	lp.idles = append(lp.idles, idleEntry{w: w, tok: tok})
	lp.mu.Unlock()
	lp.Wake()
}

// ScheduleTimer schedules the window handler's Timer callback after
// the given delay, repeating at that interval if repeat is set.
// The timer never fires early. Any-thread.
func (lp *Loop) ScheduleTimer(w system.Window, delay time.Duration, repeat bool) system.TimerToken {
	lp.mu.Lock()
	lp.nextTok++
	te := &timerEntry{
		w:      w,
		tok:    system.TimerToken(lp.nextTok),
		due:    time.Now().Add(delay),
		period: delay,
		repeat: repeat,
	}
	lp.timerEnts[te.tok] = te
	heap.Push(&lp.timers, te)
	lp.mu.Unlock()
	lp.Wake()
	return te.tok
}

// CancelTimer cancels the given timer. Unknown or already fired
// tokens are a no-op. Any-thread.
func (lp *Loop) CancelTimer(tok system.TimerToken) {
	lp.mu.Lock()
	if te, ok := lp.timerEnts[tok]; ok {
		te.canceled = true
		delete(lp.timerEnts, tok)
	}
	lp.mu.Unlock()
}

// NextTimer returns the wait until the earliest live timer is due,
// or false if none is scheduled. A non-positive wait means a timer is
// already due.
func (lp *Loop) NextTimer() (time.Duration, bool) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	for len(lp.timers) > 0 && lp.timers[0].canceled {
		heap.Pop(&lp.timers)
	}
	if len(lp.timers) == 0 {
		return 0, false
	}
	return time.Until(lp.timers[0].due), true
}

// fireTimers dispatches the timers due at entry, each at most once.
// Repeats are re-armed before dispatch; a re-armed time still in the
// past waits for the next iteration, so a short period cannot starve
// the rest of the step.
func (lp *Loop) fireTimers() {
	now := time.Now()
	lp.mu.Lock()
	var due []*timerEntry
	for len(lp.timers) > 0 {
		if lp.timers[0].canceled {
			heap.Pop(&lp.timers)
			continue
		}
		if lp.timers[0].due.After(now) {
			break
		}
		due = append(due, heap.Pop(&lp.timers).(*timerEntry))
	}
	for _, te := range due {
		if te.repeat {
			te.due = te.due.Add(te.period)
			if !te.due.After(now) {
				te.due = now.Add(te.period)
			}
			heap.Push(&lp.timers, te)
		} else {
			delete(lp.timerEnts, te.tok)
		}
	}
	lp.mu.Unlock()
	for _, te := range due {
		if lp.quitting.Load() {
			return
		}
		lp.mu.Lock()
		canceled := te.canceled
		lp.mu.Unlock()
		if canceled || te.w.Stage() >= system.Closing {
			continue
		}
		te.w.Handler().Timer(te.tok)
	}
}

// runIdles dispatches the idle tokens queued at entry, each exactly
// once. Tokens posted during dispatch wait for the next iteration.
func (lp *Loop) runIdles() {
	lp.mu.Lock()
	ids := lp.idles
	lp.idles = nil
	lp.mu.Unlock()
	for _, ie := range ids {
		if lp.quitting.Load() {
			return
		}
		if ie.w.Stage() < system.Closing {
			ie.w.Handler().Idle(ie.tok)
		}
	}
}

//////// Running

// Step runs one loop iteration body: due timers, queued idles, then
// every event ready in the deque. Pump backends call it after their
// native wait returns; Run calls it after its select.
func (lp *Loop) Step() {
	lp.markThread()
	lp.runFuncs()
	lp.fireTimers()
	lp.runIdles()
	for !lp.quitting.Load() {
		ev := lp.Dq.PollEvent()
		if ev == nil {
			return
		}
		lp.DispatchEvent(ev)
	}
}

// runFuncs services any pending RunOnMain work without blocking.
func (lp *Loop) runFuncs() {
	for {
		select {
		case fr := <-lp.Funcs:
			fr.F()
			if fr.Done != nil {
				close(fr.Done)
			}
		default:
			return
		}
	}
}

// Run is the complete main loop for poll backends: it blocks on the
// deque wake, the RunOnMain queue, and the earliest timer, running
// Step each time around, until Quit or a fatal error.
func (lp *Loop) Run() error {
	defer func() { system.HandleRecover(recover()) }()
	lp.markThread()
	for {
		if lp.quitting.Load() {
			return nil
		}
		var timerC <-chan time.Time
		var tm *time.Timer
		if d, ok := lp.NextTimer(); ok {
			if d < 0 {
				d = 0
			}
			tm = time.NewTimer(d)
			timerC = tm.C
		}
		select {
		case <-lp.Dq.Wake():
		case <-lp.wakeC:
		case fr := <-lp.Funcs:
			fr.F()
			if fr.Done != nil {
				close(fr.Done)
			}
		case <-timerC:
		case err := <-lp.broken:
			if tm != nil {
				tm.Stop()
			}
			return err
		}
		if tm != nil {
			tm.Stop()
		}
		lp.Step()
	}
}

//////// Dispatch

// DispatchEvent routes one event to its window's handler. Events for
// unknown or destroyed windows are dropped.
func (lp *Loop) DispatchEvent(ev events.Event) {
	if we, ok := ev.(*events.WindowEvent); ok && we.Action == events.ScreenUpdate {
		// app-level, not tied to a live window
		if lp.OnScreenUpdate != nil {
			lp.OnScreenUpdate()
		}
		return
	}
	w := lp.Lookup(ev.WindowID())
	if w == nil || w.Stage() >= system.Closing {
		if _, ok := ev.(*events.CustomEvent); !ok && ev.WindowID() != 0 {
			logx.PrintlnDebug("dropping event for dead window:", ev.String())
		}
		return
	}
	h := w.Handler()
	switch e := ev.(type) {
	case *events.Key:
		if e.Typ == events.KeyDown {
			if m := w.Menu(); m != nil {
				if it := m.ItemByAccel(e.KeyChord()); it != nil {
					h.MenuCommand(it.ID)
					return
				}
			}
		}
		h.Key(e)
	case *events.CompositionEvent:
		h.TextComposition(e)
	case *events.Mouse:
		h.Pointer(e)
	case *events.MouseScroll:
		h.Wheel(e)
	case *events.WindowResizeEvent:
		h.Resized(e.Size, e.PixSize, system.Scale{X: e.ScaleX, Y: e.ScaleY})
	case *events.WindowPaintEvent:
		dmg := e.Damage
		if dmg.Empty() {
			dmg = image.Rectangle{Max: w.Size()}
		}
		h.PreparePaint()
		h.Paint(dmg)
	case *events.MenuCommandEvent:
		h.MenuCommand(e.ID)
	case *events.WindowEvent:
		lp.dispatchWindow(w, h, e)
	}
}

func (lp *Loop) dispatchWindow(w system.Window, h system.Handler, e *events.WindowEvent) {
	switch e.Action {
	case events.WinFocus:
		h.FocusChanged(true)
	case events.WinFocusLost:
		h.FocusChanged(false)
	case events.WinCloseReq:
		// veto protocol: the stage does not change unless confirmed
		if h.CloseRequested() {
			w.Close()
		}
	case events.WinDestroy:
		// the native window is already gone
		w.Close()
	}
}
