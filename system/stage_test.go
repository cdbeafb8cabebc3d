// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageChangesForwardOnly(t *testing.T) {
	assert.True(t, ValidStageChange(Created, Mapped))
	assert.True(t, ValidStageChange(Mapped, Visible))
	assert.True(t, ValidStageChange(Visible, Hidden))
	assert.True(t, ValidStageChange(Hidden, Visible))
	assert.True(t, ValidStageChange(Visible, Closing))
	assert.True(t, ValidStageChange(Closing, Destroyed))

	// never backward
	assert.False(t, ValidStageChange(Mapped, Created))
	assert.False(t, ValidStageChange(Visible, Mapped))
	assert.False(t, ValidStageChange(Closing, Visible))
	assert.False(t, ValidStageChange(Destroyed, Closing))

	// never skipping Closing
	assert.False(t, ValidStageChange(Visible, Destroyed))
	assert.False(t, ValidStageChange(Created, Visible))

	// terminal
	for st := Created; st < StagesN; st++ {
		assert.False(t, ValidStageChange(Destroyed, st))
	}
}

func TestStageError(t *testing.T) {
	err := &StageError{From: Visible, To: Mapped}
	assert.Contains(t, err.Error(), "Visible")
	assert.Contains(t, err.Error(), "Mapped")
}
