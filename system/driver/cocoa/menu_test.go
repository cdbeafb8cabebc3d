// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

package cocoa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-mullion/mullion/events/key"
)

func TestKeyEquivalent(t *testing.T) {
	tests := []struct {
		chord key.Chord
		equiv string
		mask  uint64
	}{
		{"", "", 0},
		{"Meta+S", "s", nsModifierCommand},
		{"Control+Shift+P", "p", nsModifierControl | nsModifierShift},
		{"Alt+1", "1", nsModifierOption},
		{"Q", "q", 0},
		{"Meta+ReturnEnter", "", 0},
	}
	for _, tt := range tests {
		equiv, mask := keyEquivalent(tt.chord)
		assert.Equal(t, tt.equiv, equiv, "chord %q", tt.chord)
		assert.Equal(t, tt.mask, mask, "chord %q", tt.chord)
	}
}
