// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"

	"github.com/go-mullion/mullion/events/key"
)

// Menu is a backend-independent menu description. Backends translate
// it to native menus where those exist (win32, cocoa); on other
// platforms only the accelerator table is honored.
type Menu struct {
	Items []*MenuItem
}

// MenuItem is one entry in a [Menu].
type MenuItem struct {
	// ID is the command id delivered to [Handler.MenuCommand] when
	// the item activates. IDs must be unique within a window's menu
	// and positive; 0 is reserved for non-command items.
	ID int

	// Label is the displayed text. An ampersand marks the mnemonic
	// character on platforms that use them.
	Label string

	// Accel is the keyboard accelerator, or "" for none. Activating
	// the accelerator is equivalent to clicking the item.
	Accel key.Chord

	// Checked shows a check mark next to the item.
	Checked bool

	// Disabled greys the item out; it cannot activate.
	Disabled bool

	// Separator renders a divider; all other fields are ignored.
	Separator bool

	// Sub is a nested submenu; ID and Accel are ignored on items
	// that carry one.
	Sub *Menu
}

// NewMenu returns an empty menu.
func NewMenu() *Menu {
	return &Menu{}
}

// AddItem appends a command item and returns it for further setup.
func (m *Menu) AddItem(id int, label string, accel key.Chord) *MenuItem {
	it := &MenuItem{ID: id, Label: label, Accel: accel}
	m.Items = append(m.Items, it)
	return it
}

// AddSeparator appends a divider.
func (m *Menu) AddSeparator() {
	m.Items = append(m.Items, &MenuItem{Separator: true})
}

// AddSub appends a submenu with the given label and returns it.
func (m *Menu) AddSub(label string) *Menu {
	sub := &Menu{}
	m.Items = append(m.Items, &MenuItem{Label: label, Sub: sub})
	return sub
}

// Walk visits every item depth-first, submenu contents after the item
// carrying them. It stops early if fun returns false.
func (m *Menu) Walk(fun func(it *MenuItem) bool) bool {
	for _, it := range m.Items {
		if !fun(it) {
			return false
		}
		if it.Sub != nil {
			if !it.Sub.Walk(fun) {
				return false
			}
		}
	}
	return true
}

// ItemByID returns the item with the given command id, or nil.
func (m *Menu) ItemByID(id int) *MenuItem {
	var found *MenuItem
	m.Walk(func(it *MenuItem) bool {
		if !it.Separator && it.Sub == nil && it.ID == id {
			found = it
			return false
		}
		return true
	})
	return found
}

// ItemByAccel returns the enabled item whose accelerator matches the
// given chord, or nil. Used by backends without native accelerator
// tables to route key chords to menu commands.
func (m *Menu) ItemByAccel(ch key.Chord) *MenuItem {
	if ch == "" {
		return nil
	}
	var found *MenuItem
	m.Walk(func(it *MenuItem) bool {
		if !it.Separator && it.Sub == nil && !it.Disabled && it.Accel == ch {
			found = it
			return false
		}
		return true
	})
	return found
}

// Validate checks that command ids are positive and unique.
func (m *Menu) Validate() error {
	seen := map[int]bool{}
	var err error
	m.Walk(func(it *MenuItem) bool {
		if it.Separator || it.Sub != nil {
			return true
		}
		if it.ID <= 0 {
			err = fmt.Errorf("system: menu item %q: id must be positive, got %d", it.Label, it.ID)
			return false
		}
		if seen[it.ID] {
			err = fmt.Errorf("system: menu item %q: duplicate id %d", it.Label, it.ID)
			return false
		}
		seen[it.ID] = true
		return true
	})
	return err
}
