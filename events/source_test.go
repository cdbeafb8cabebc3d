// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/go-mullion/mullion/events/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(dq *Deque) []Event {
	var evs []Event
	for ev := dq.PollEvent(); ev != nil; ev = dq.PollEvent() {
		evs = append(evs, ev)
	}
	return evs
}

func TestSourceModifierTracking(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)

	src.Key(KeyDown, 0, key.CodeLeftShift, 0)
	src.Key(KeyDown, 'A', key.CodeA, 0)
	src.Key(KeyUp, 'A', key.CodeA, 0)
	src.Key(KeyUp, 0, key.CodeLeftShift, 0)
	src.Key(KeyDown, 'a', key.CodeA, 0)

	evs := drain(dq)
	require.Len(t, evs, 5)
	assert.Equal(t, key.Modifiers(key.Shift), evs[0].Modifiers())
	assert.Equal(t, key.Modifiers(key.Shift), evs[1].Modifiers())
	assert.Equal(t, key.Modifiers(key.Shift), evs[2].Modifiers())
	assert.Equal(t, key.Modifiers(0), evs[3].Modifiers())
	assert.Equal(t, key.Modifiers(0), evs[4].Modifiers())
}

func TestSourceCapsLockToggles(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)

	src.Key(KeyDown, 0, key.CodeCapsLock, 0)
	src.Key(KeyUp, 0, key.CodeCapsLock, 0)
	assert.True(t, src.Mods.HasFlag(key.CapsLock))
	src.Key(KeyDown, 0, key.CodeCapsLock, 0)
	assert.False(t, src.Mods.HasFlag(key.CapsLock))
}

func TestSourceCompositionProtocol(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)

	src.CompositionUpdate("n")
	src.Key(KeyDown, 'i', key.CodeI, 0) // physical keys still flow
	src.KeyChord('i', key.CodeI, 0)     // character input suppressed
	src.CompositionUpdate("ni")
	src.CompositionCommit("に")

	evs := drain(dq)
	require.Len(t, evs, 5)

	c0 := evs[0].(*CompositionEvent)
	assert.Equal(t, CompositionStart, c0.Phase)
	c1 := evs[1].(*CompositionEvent)
	assert.Equal(t, CompositionUpdate, c1.Phase)
	assert.Equal(t, "n", c1.Preedit)
	assert.Equal(t, KeyDown, evs[2].Type())
	c3 := evs[3].(*CompositionEvent)
	assert.Equal(t, CompositionUpdate, c3.Phase)
	c4 := evs[4].(*CompositionEvent)
	assert.Equal(t, CompositionCommit, c4.Phase)
	assert.Equal(t, "に", c4.Preedit)
	assert.Equal(t, ComposeIdle, src.Compose)

	// after commit, character input flows again
	src.KeyChord('x', key.CodeX, 0)
	evs = drain(dq)
	require.Len(t, evs, 1)
	assert.Equal(t, KeyChord, evs[0].Type())
}

func TestSourceStraightCommitBecomesKeyChord(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)

	src.CompositionCommit("é")
	evs := drain(dq)
	require.Len(t, evs, 1)
	ke := evs[0].(*Key)
	assert.Equal(t, KeyChord, ke.Typ)
	assert.Equal(t, 'é', ke.Rune)

	// a straight commit carries the modifier state at commit time
	src.Key(KeyDown, 0, key.CodeLeftShift, 0)
	src.CompositionCommit("É")
	evs = drain(dq)
	require.Len(t, evs, 2)
	ke = evs[1].(*Key)
	assert.Equal(t, KeyChord, ke.Typ)
	assert.Equal(t, 'É', ke.Rune)
	assert.Equal(t, key.Modifiers(key.Shift), ke.Modifiers())
}

func TestSourceCloseRequestJumpsBufferedInput(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)

	src.MouseMove(image.Pt(10, 10))
	src.Key(KeyDown, 'a', key.CodeA, 0)
	src.Window(WinCloseReq)

	evs := drain(dq)
	require.Len(t, evs, 3)
	we := evs[0].(*WindowEvent)
	assert.Equal(t, WinCloseReq, we.Action)
}

func TestSourceDestroyJumpsBufferedInput(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)

	src.MouseMove(image.Pt(10, 10))
	src.Window(WinDestroy)

	evs := drain(dq)
	require.Len(t, evs, 2)
	we := evs[0].(*WindowEvent)
	assert.Equal(t, WinDestroy, we.Action)
}

func TestSourceFocusLossCancelsComposition(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)

	src.CompositionUpdate("ka")
	drain(dq)
	src.Window(WinFocusLost)

	evs := drain(dq)
	require.Len(t, evs, 2)
	ce := evs[0].(*CompositionEvent)
	assert.Equal(t, CompositionCancel, ce.Phase)
	we := evs[1].(*WindowEvent)
	assert.Equal(t, WinFocusLost, we.Action)
	assert.Equal(t, ComposeIdle, src.Compose)

	// cancel when idle is a no-op
	src.CompositionCancel()
	assert.Nil(t, dq.PollEvent())
}

func TestSourceCancelledCompositionSuppressedUntilIdle(t *testing.T) {
	dq := &Deque{}
	dq.Init()
	src := NewSource(dq, 1)

	src.CompositionUpdate("x")
	src.KeyChord('x', key.CodeX, 0)
	src.CompositionCancel()
	evs := drain(dq)
	for _, ev := range evs {
		assert.NotEqual(t, KeyChord, ev.Type(), "no character input during composition")
	}
}
