// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDequeFIFO(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	dq.Send(NewWindow(WinShow))
	dq.Send(NewWindow(WinFocus))
	dq.Send(NewWindow(WinCloseReq))

	acts := []WinActions{}
	for ev := dq.PollEvent(); ev != nil; ev = dq.PollEvent() {
		acts = append(acts, ev.(*WindowEvent).Action)
	}
	assert.Equal(t, []WinActions{WinShow, WinFocus, WinCloseReq}, acts)
	assert.Equal(t, 0, dq.Len())
}

func TestDequeCompressMove(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)
	src.MouseMove(image.Pt(1, 1))
	src.MouseMove(image.Pt(2, 2))
	src.MouseMove(image.Pt(30, 40))

	ev := dq.PollEvent()
	require.NotNil(t, ev)
	me := ev.(*Mouse)
	assert.Equal(t, image.Pt(30, 40), me.Where)
	// Prev spans the whole compressed run
	assert.Equal(t, image.Pt(0, 0), me.Prev)
	assert.Nil(t, dq.PollEvent())
}

func TestDequeCompressScrollAccumulates(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)
	src.Scroll(image.Pt(5, 5), image.Pt(0, 3), ScrollLines)
	src.Scroll(image.Pt(5, 5), image.Pt(0, 2), ScrollLines)

	ev := dq.PollEvent()
	require.NotNil(t, ev)
	se := ev.(*MouseScroll)
	assert.Equal(t, image.Pt(0, 5), se.Delta)
	assert.Nil(t, dq.PollEvent())
}

func TestDequeCompressResizeLastWins(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)
	src.WindowResize(image.Pt(100, 100), image.Pt(100, 100), 1, 1)
	src.WindowResize(image.Pt(200, 150), image.Pt(400, 300), 2, 2)

	ev := dq.PollEvent()
	require.NotNil(t, ev)
	re := ev.(*WindowResizeEvent)
	assert.Equal(t, image.Pt(200, 150), re.Size)
	assert.Equal(t, image.Pt(400, 300), re.PixSize)
	assert.Equal(t, float32(2), re.ScaleX)
	assert.Nil(t, dq.PollEvent())
}

func TestDequePaintDamageUnion(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)
	src.WindowPaint(image.Rect(0, 0, 10, 10))
	src.WindowPaint(image.Rect(50, 50, 60, 60))

	ev := dq.PollEvent()
	require.NotNil(t, ev)
	pe := ev.(*WindowPaintEvent)
	assert.Equal(t, image.Rect(0, 0, 60, 60), pe.Damage)
}

func TestDequeNoCompressionAcrossWindows(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	a := NewSource(dq, 1)
	b := NewSource(dq, 2)
	a.MouseMove(image.Pt(1, 1))
	b.MouseMove(image.Pt(2, 2))
	assert.Equal(t, 2, dq.Len())
}

func TestDequeUniqueEventsNeverDropped(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)
	src.Window(WinCloseReq)
	src.Window(WinCloseReq)
	assert.Equal(t, 2, dq.Len())
}

func TestDequeSendFirstJumpsQueue(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	dq.Send(NewWindow(WinShow))
	dq.Send(NewWindow(WinFocus))
	dq.SendFirst(NewWindow(WinDestroy))

	ev := dq.PollEvent()
	require.NotNil(t, ev)
	assert.Equal(t, WinDestroy, ev.(*WindowEvent).Action)
	assert.Equal(t, 2, dq.Len())
}

func TestDequeWakeCoalesces(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	for range 10 {
		dq.Send(NewWindow(WinShow))
	}
	// exactly one coalesced wake is pending
	select {
	case <-dq.Wake():
	default:
		t.Fatal("expected a pending wake")
	}
	select {
	case <-dq.Wake():
		t.Fatal("wakes must coalesce")
	default:
	}
	assert.Equal(t, 10, dq.Len())
}
