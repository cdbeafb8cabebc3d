// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "image"

// WindowLevels is the stacking level of a window.
type WindowLevels int32

const (
	// LevelNormal is an ordinary application window.
	LevelNormal WindowLevels = iota

	// LevelFloating stays above normal windows of the same app
	// (tool palettes, inspectors).
	LevelFloating

	// LevelTooltip is a short-lived unmanaged surface that takes
	// no focus.
	LevelTooltip

	// LevelModal blocks interaction with its owner until closed.
	LevelModal

	WindowLevelsN
)

var windowLevelNames = [WindowLevelsN]string{
	"Normal", "Floating", "Tooltip", "Modal",
}

func (wl WindowLevels) String() string {
	if wl >= 0 && wl < WindowLevelsN {
		return windowLevelNames[wl]
	}
	return "WindowLevels(?)"
}

// NewWindowOptions are optional arguments to NewWindow.
type NewWindowOptions struct {
	// Title is the window title, in UTF-8.
	Title string

	// Size is the requested content size in logical coordinates.
	// A non-positive dimension means a backend-chosen default.
	Size image.Point

	// Pos is the requested position of the window, in logical
	// desktop coordinates. Zero means backend-chosen placement.
	Pos image.Point

	// Resizable sets whether the user may resize the window.
	Resizable bool

	// ShowTitlebar sets whether the window carries the usual native
	// decorations. Tooltip-level windows never do.
	ShowTitlebar bool

	// Level is the stacking level.
	Level WindowLevels

	// InitiallyVisible maps the window immediately on creation.
	// When false, the window stays at the Created stage until Show.
	InitiallyVisible bool

	// MinSize and MaxSize constrain user resizing, in logical
	// coordinates. Zero means unconstrained.
	MinSize image.Point
	MaxSize image.Point

	// Menu is the initial window menu, or nil for none.
	Menu *Menu
}

// Fixup fills in defaults and clamps degenerate values.
func (o *NewWindowOptions) Fixup() {
	if o.Size.X <= 0 {
		o.Size.X = 800
	}
	if o.Size.Y <= 0 {
		o.Size.Y = 600
	}
	if o.Pos.X < 0 {
		o.Pos.X = 0
	}
	if o.Pos.Y < 0 {
		o.Pos.Y = 0
	}
	if o.Level == LevelTooltip {
		o.ShowTitlebar = false
		o.Resizable = false
	}
	if o.Title == "" && TheApp != nil {
		o.Title = TheApp.Name()
	}
}

// DefaultWindowOptions returns the options used when NewWindow is
// passed nil.
func DefaultWindowOptions() *NewWindowOptions {
	return &NewWindowOptions{
		Size:             image.Pt(800, 600),
		Resizable:        true,
		ShowTitlebar:     true,
		InitiallyVisible: true,
	}
}
