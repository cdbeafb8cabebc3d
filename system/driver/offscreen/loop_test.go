// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"sync"
	"testing"
	"time"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/events/key"
	"github.com/go-mullion/mullion/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loopHandler funnels loop-thread callbacks to channels so tests
// running MainLoop on another goroutine can observe them.
type loopHandler struct {
	system.HandlerBase
	idles  chan system.IdleToken
	timers chan timerFire
	keys   chan *events.Key
	onKey  func()
}

type timerFire struct {
	tok system.TimerToken
	at  time.Time
}

func newLoopHandler() *loopHandler {
	return &loopHandler{
		idles:  make(chan system.IdleToken, 1024),
		timers: make(chan timerFire, 1024),
		keys:   make(chan *events.Key, 16),
	}
}

func (h *loopHandler) Idle(tok system.IdleToken) { h.idles <- tok }
func (h *loopHandler) Timer(tok system.TimerToken) {
	h.timers <- timerFire{tok: tok, at: time.Now()}
}
func (h *loopHandler) Key(e *events.Key) {
	if h.onKey != nil {
		h.onKey()
	}
	h.keys <- e
}

// startLoop resets the app, creates one window with the given
// handler, and runs MainLoop on a goroutine. The returned channel
// yields MainLoop's error.
func startLoop(t *testing.T, h system.Handler) (system.Window, chan error) {
	t.Helper()
	resetApp()
	w, err := TheApp.NewWindow(nil, h)
	require.NoError(t, err)
	errC := make(chan error, 1)
	go func() {
		errC <- TheApp.MainLoop()
	}()
	return w, errC
}

func stopLoop(t *testing.T, errC chan error) {
	t.Helper()
	TheApp.Quit()
	select {
	case err := <-errC:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("MainLoop did not exit after Quit")
	}
}

func TestIdleFloodDeliveredExactlyOnce(t *testing.T) {
	h := newLoopHandler()
	w, errC := startLoop(t, h)

	const goroutines = 8
	const perG = 50
	var wg sync.WaitGroup
	for g := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perG {
				tok := system.IdleToken(g*perG + i)
				assert.NoError(t, w.ScheduleIdle(tok))
			}
		}()
	}
	wg.Wait()

	seen := map[system.IdleToken]int{}
	deadline := time.After(5 * time.Second)
	for len(seen) < goroutines*perG {
		select {
		case tok := <-h.idles:
			seen[tok]++
		case <-deadline:
			t.Fatalf("only %d of %d idle tokens delivered", len(seen), goroutines*perG)
		}
	}
	stopLoop(t, errC)
	for tok, n := range seen {
		assert.Equal(t, 1, n, "token %v delivered %d times", tok, n)
	}
}

func TestTimerNeverEarly(t *testing.T) {
	h := newLoopHandler()
	w, errC := startLoop(t, h)

	const delay = 30 * time.Millisecond
	start := time.Now()
	tok, err := w.ScheduleTimer(delay, false)
	require.NoError(t, err)

	select {
	case tf := <-h.timers:
		assert.Equal(t, tok, tf.tok)
		assert.GreaterOrEqual(t, tf.at.Sub(start), delay)
	case <-time.After(5 * time.Second):
		t.Fatal("timer never fired")
	}
	// one-shot: no second fire
	select {
	case tf := <-h.timers:
		t.Fatalf("one-shot timer fired again: %v", tf.tok)
	case <-time.After(3 * delay):
	}
	stopLoop(t, errC)
}

func TestZeroDelayTimerFiresOnceNextIteration(t *testing.T) {
	h := newLoopHandler()
	w, errC := startLoop(t, h)

	tok, err := w.ScheduleTimer(0, false)
	require.NoError(t, err)
	select {
	case tf := <-h.timers:
		assert.Equal(t, tok, tf.tok)
	case <-time.After(5 * time.Second):
		t.Fatal("zero-delay timer never fired")
	}
	select {
	case <-h.timers:
		t.Fatal("zero-delay timer fired more than once")
	case <-time.After(50 * time.Millisecond):
	}
	stopLoop(t, errC)
}

func TestRepeatingTimerAndCancel(t *testing.T) {
	h := newLoopHandler()
	w, errC := startLoop(t, h)

	tok, err := w.ScheduleTimer(5*time.Millisecond, true)
	require.NoError(t, err)
	for range 3 {
		select {
		case tf := <-h.timers:
			assert.Equal(t, tok, tf.tok)
		case <-time.After(5 * time.Second):
			t.Fatal("repeating timer stalled")
		}
	}
	require.NoError(t, w.CancelTimer(tok))
	// drain anything already in flight, then expect silence
	time.Sleep(20 * time.Millisecond)
	for {
		select {
		case <-h.timers:
			continue
		default:
		}
		break
	}
	select {
	case <-h.timers:
		t.Fatal("canceled timer fired")
	case <-time.After(30 * time.Millisecond):
	}
	stopLoop(t, errC)
}

func TestRepeatingZeroPeriodTimerDoesNotStarveLoop(t *testing.T) {
	h := newLoopHandler()
	w, errC := startLoop(t, h)

	// a zero-period repeating timer is always due; idles and events
	// must still get through between fires
	tok, err := w.ScheduleTimer(0, true)
	require.NoError(t, err)
	require.NoError(t, w.ScheduleIdle(system.IdleToken(7)))

	select {
	case got := <-h.idles:
		assert.Equal(t, system.IdleToken(7), got)
	case <-time.After(5 * time.Second):
		t.Fatal("idle token starved by a zero-period repeating timer")
	}
	require.NoError(t, w.CancelTimer(tok))
	// unblock fires already buffered, then expect silence
	for {
		select {
		case <-h.timers:
			continue
		case <-time.After(30 * time.Millisecond):
		}
		break
	}
	stopLoop(t, errC)
}

func TestRunOnMainFromCallbackRunsDirectly(t *testing.T) {
	h := newLoopHandler()
	ran := make(chan struct{})
	h.onKey = func() {
		TheApp.RunOnMain(func() { close(ran) })
	}
	w, errC := startLoop(t, h)

	w.Events().Key(events.KeyDown, 'a', key.CodeA, 0)
	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("RunOnMain from a handler callback did not complete")
	}
	stopLoop(t, errC)
}

func TestQuitFromCallbackFinishesDispatchFirst(t *testing.T) {
	h := newLoopHandler()
	h.onKey = func() { TheApp.Quit() }
	w, errC := startLoop(t, h)

	// two keys queued; quit during the first means the second is
	// never dispatched
	w.Events().Key(events.KeyDown, 'a', key.CodeA, 0)
	w.Events().Key(events.KeyDown, 'b', key.CodeB, 0)

	select {
	case err := <-errC:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("MainLoop did not exit after Quit from callback")
	}
	assert.Len(t, h.keys, 1)
}

func TestQuitReqVeto(t *testing.T) {
	rec := &recorder{}
	resetApp()
	_, err := TheApp.NewWindow(nil, rec)
	require.NoError(t, err)
	errC := make(chan error, 1)
	go func() { errC <- TheApp.MainLoop() }()

	TheApp.QuitReq()
	select {
	case <-errC:
		t.Fatal("vetoed quit still exited the loop")
	case <-time.After(50 * time.Millisecond):
	}
	assert.False(t, TheApp.IsQuitting())

	rec.allowQuit.Store(true)
	TheApp.QuitReq()
	select {
	case err := <-errC:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("confirmed quit did not exit the loop")
	}
	assert.Equal(t, 0, TheApp.NWindows())
}

func TestRunOnMainSerializesWithCallbacks(t *testing.T) {
	h := newLoopHandler()
	_, errC := startLoop(t, h)

	ran := false
	TheApp.RunOnMain(func() { ran = true })
	assert.True(t, ran, "RunOnMain returns only after the function ran")
	stopLoop(t, errC)
}
