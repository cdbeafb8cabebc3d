// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "fmt"

// Stages is the lifecycle stage of a window. Stages only ever move
// forward; a window never returns to an earlier stage, with the one
// exception of the Visible / Hidden pair, which may alternate while
// the window is alive.
type Stages int32

const (
	// Created means the native window exists but has not yet been
	// mapped to the screen.
	Created Stages = iota

	// Mapped means the window has been handed to the display system
	// and is about to become visible.
	Mapped

	// Visible means the window is showing on screen.
	Visible

	// Hidden means the window is alive but not showing (minimized,
	// or explicitly hidden).
	Hidden

	// Closing means teardown has been confirmed; native resources are
	// being released.
	Closing

	// Destroyed is the terminal stage. No events are ever delivered
	// for a Destroyed window, and operations on it fail with
	// [ErrWindowDestroyed].
	Destroyed

	StagesN
)

var stageNames = [StagesN]string{
	"Created", "Mapped", "Visible", "Hidden", "Closing", "Destroyed",
}

func (st Stages) String() string {
	if st >= 0 && st < StagesN {
		return stageNames[st]
	}
	return "Stages(?)"
}

// validStageChanges holds for each stage the set of stages reachable
// from it in one step. Visible and Hidden reach each other; everything
// can reach Closing directly (a window may be torn down at any point),
// and Closing only reaches Destroyed.
var validStageChanges = [StagesN][]Stages{
	Created:   {Mapped, Closing},
	Mapped:    {Visible, Hidden, Closing},
	Visible:   {Hidden, Closing},
	Hidden:    {Visible, Closing},
	Closing:   {Destroyed},
	Destroyed: {},
}

// ValidStageChange reports whether a window may move from one stage
// directly to another.
func ValidStageChange(from, to Stages) bool {
	for _, st := range validStageChanges[from] {
		if st == to {
			return true
		}
	}
	return false
}

// StageError is returned when a stage transition would move a window
// backward or skip a required intermediate stage.
type StageError struct {
	From, To Stages
}

func (e *StageError) Error() string {
	return fmt.Sprintf("system: invalid window stage change: %v -> %v", e.From, e.To)
}
