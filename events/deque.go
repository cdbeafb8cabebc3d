// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
)

// TraceEventCompression can be set to true to log when events are
// being compressed to eliminate laggy behavior.
var TraceEventCompression = false

// Deque is an infinitely buffered FIFO queue of events, the single
// funnel through which every backend delivers portable events to the
// loop thread. Send is safe to call from any goroutine; NextEvent is
// only called from the loop thread.
//
// Non-unique event types (see [Types.IsUniqueType]) are compressed:
// if the most recently queued pending event has the same type and
// window, the new event replaces it (accumulating scroll deltas and
// unioning paint damage), so a burst of moves or resizes collapses to
// the final value by the time the loop thread gets to it.
//
// Wake notifications coalesce: any number of Sends while the loop
// thread is blocked produce at least one wake, and no event is ever
// lost.
type Deque struct {
	mu   sync.Mutex
	back []Event

	// wake has capacity 1: multiple pending wakes coalesce.
	wake chan struct{}
}

// Init initializes the deque. It must be called before use.
func (dq *Deque) Init() {
	dq.wake = make(chan struct{}, 1)
}

// Wake returns the channel that receives a (coalesced) signal
// whenever an event is queued; the loop thread blocks on it between
// iterations.
func (dq *Deque) Wake() <-chan struct{} {
	return dq.wake
}

func (dq *Deque) notify() {
	select {
	case dq.wake <- struct{}{}:
	default: // already pending; coalesce
	}
}

// Send adds an event to the end of the deque, compressing it into the
// queue tail if the type allows. It is safe to call from any goroutine.
func (dq *Deque) Send(ev Event) {
	ev.Init()
	dq.mu.Lock()
	if n := len(dq.back); n > 0 && !ev.Type().IsUniqueType() {
		last := dq.back[n-1]
		if last.Type() == ev.Type() && last.WindowID() == ev.WindowID() {
			dq.back[n-1] = compress(last, ev)
			dq.mu.Unlock()
			dq.notify()
			return
		}
	}
	dq.back = append(dq.back, ev)
	dq.mu.Unlock()
	dq.notify()
}

// SendFirst adds an event to the front of the deque, jumping the
// queue. [Source.Window] uses it for close requests and destroy
// notifications so they are delivered ahead of buffered input.
func (dq *Deque) SendFirst(ev Event) {
	ev.Init()
	dq.mu.Lock()
	dq.back = append([]Event{ev}, dq.back...)
	dq.mu.Unlock()
	dq.notify()
}

// PollEvent returns the next event without blocking, or nil if the
// deque is empty.
func (dq *Deque) PollEvent() Event {
	dq.mu.Lock()
	defer dq.mu.Unlock()
	if len(dq.back) == 0 {
		return nil
	}
	ev := dq.back[0]
	dq.back = dq.back[1:]
	return ev
}

// Len returns the number of pending events.
func (dq *Deque) Len() int {
	dq.mu.Lock()
	defer dq.mu.Unlock()
	return len(dq.back)
}

// compress merges ev into prev for non-unique event types, keeping
// the final value while preserving run-spanning fields.
func compress(prev, ev Event) Event {
	if TraceEventCompression {
		traceCompression(prev, ev)
	}
	switch pe := prev.(type) {
	case *Mouse:
		// keep the original Prev so the delta spans the whole run
		if ne, ok := ev.(*Mouse); ok {
			ne.Prev = pe.Prev
			return ne
		}
	case *MouseScroll:
		if ne, ok := ev.(*MouseScroll); ok && ne.Unit == pe.Unit {
			ne.Delta = ne.Delta.Add(pe.Delta)
			return ne
		}
	case *WindowPaintEvent:
		if ne, ok := ev.(*WindowPaintEvent); ok {
			ne.Damage = ne.Damage.Union(pe.Damage)
			return ne
		}
	case *WindowResizeEvent:
		// last value wins
		return ev
	}
	return ev
}
