// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-mullion/mullion/events/key"
)

func TestVKCodes(t *testing.T) {
	assert.Equal(t, key.CodeA, vkCodes[0x41])
	assert.Equal(t, key.Code0, vkCodes[0x30])
	assert.Equal(t, key.CodeReturnEnter, vkCodes[0x0D])
	assert.Equal(t, key.CodeF12, vkCodes[0x7B])
	// unextended modifier VKs resolve to the left-side codes
	assert.Equal(t, key.CodeLeftShift, vkCodes[0x10])
	assert.Equal(t, key.CodeLeftControl, vkCodes[0x11])
	assert.Equal(t, key.CodeLeftAlt, vkCodes[0x12])
}
