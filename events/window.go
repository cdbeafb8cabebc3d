// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// WindowEvent reports a window lifecycle transition.
type WindowEvent struct {
	Base

	// Action is what happened to the window.
	Action WinActions
}

func NewWindow(act WinActions) *WindowEvent {
	ev := &WindowEvent{}
	ev.Typ = Window
	ev.Action = act
	return ev
}

func (ev *WindowEvent) String() string {
	return fmt.Sprintf("%v{Action: %v, Time: %v}", ev.Type(), ev.Action, ev.Time().Format("04:05"))
}

// WindowResizeEvent reports the new window geometry. A scale change
// is always bundled with a resize, never delivered alone, so the
// receiver can re-provision paint resources atomically.
type WindowResizeEvent struct {
	Base

	// Size is the new logical size.
	Size image.Point

	// PixSize is the new physical size in device pixels:
	// round(Size * Scale) per axis.
	PixSize image.Point

	// ScaleX, ScaleY are the effective per-axis scale factors of the
	// screen currently containing the window center.
	ScaleX, ScaleY float32
}

func NewWindowResize(size, pix image.Point, scaleX, scaleY float32) *WindowResizeEvent {
	ev := &WindowResizeEvent{}
	ev.Typ = WindowResize
	// not unique: compressed to last value
	ev.Size = size
	ev.PixSize = pix
	ev.ScaleX = scaleX
	ev.ScaleY = scaleY
	return ev
}

func (ev *WindowResizeEvent) String() string {
	return fmt.Sprintf("%v{Size: %v, PixSize: %v, Scale: %gx%g, Time: %v}", ev.Type(), ev.Size, ev.PixSize, ev.ScaleX, ev.ScaleY, ev.Time().Format("04:05"))
}

// WindowPaintEvent reports that part of the window must be redrawn.
type WindowPaintEvent struct {
	Base

	// Damage is the damaged region in physical pixels. Compressed
	// paint events union their damage.
	Damage image.Rectangle
}

func NewWindowPaint(damage image.Rectangle) *WindowPaintEvent {
	ev := &WindowPaintEvent{}
	ev.Typ = WindowPaint
	// not unique: damage is unioned
	ev.Damage = damage
	return ev
}

func (ev *WindowPaintEvent) String() string {
	return fmt.Sprintf("%v{Damage: %v, Time: %v}", ev.Type(), ev.Damage, ev.Time().Format("04:05"))
}

// MenuCommandEvent reports activation of a menu item, from the native
// menu or from its accelerator chord.
type MenuCommandEvent struct {
	Base

	// ID is the command id of the activated item.
	ID int
}

func NewMenuCommand(id int) *MenuCommandEvent {
	ev := &MenuCommandEvent{}
	ev.Typ = MenuCommand
	ev.ID = id
	return ev
}

func (ev *MenuCommandEvent) String() string {
	return fmt.Sprintf("%v{ID: %d, Time: %v}", ev.Type(), ev.ID, ev.Time().Format("04:05"))
}
