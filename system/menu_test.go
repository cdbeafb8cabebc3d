// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"testing"

	"github.com/go-mullion/mullion/events/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestMenu() *Menu {
	m := NewMenu()
	file := m.AddSub("&File")
	file.AddItem(1, "&Open", "Control+O")
	file.AddItem(2, "&Save", "Control+S")
	file.AddSeparator()
	file.AddItem(3, "&Quit", "Control+Q")
	edit := m.AddSub("&Edit")
	edit.AddItem(4, "&Copy", "Control+C").Disabled = true
	return m
}

func TestMenuLookup(t *testing.T) {
	m := buildTestMenu()
	require.NoError(t, m.Validate())

	it := m.ItemByID(3)
	require.NotNil(t, it)
	assert.Equal(t, "&Quit", it.Label)
	assert.Nil(t, m.ItemByID(99))

	it = m.ItemByAccel("Control+S")
	require.NotNil(t, it)
	assert.Equal(t, 2, it.ID)

	// disabled items do not match accelerators
	assert.Nil(t, m.ItemByAccel("Control+C"))
	assert.Nil(t, m.ItemByAccel(""))
}

func TestMenuValidate(t *testing.T) {
	m := NewMenu()
	m.AddItem(1, "A", "")
	m.AddItem(1, "B", "")
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	m2 := NewMenu()
	m2.AddItem(0, "Zero", "")
	assert.Error(t, m2.Validate())
}

func TestMenuAccelChordForm(t *testing.T) {
	// accelerators use the canonical chord spelling
	ch := key.NewChord('o', key.CodeO, key.Control)
	assert.Equal(t, key.Chord("Control+O"), ch)
	m := buildTestMenu()
	assert.NotNil(t, m.ItemByAccel(ch))
}
