// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleRoundTrip(t *testing.T) {
	sizes := []image.Point{
		{800, 600}, {1, 1}, {1280, 720}, {1920, 1080}, {37, 53},
	}
	for _, s := range []float32{1, 1.25, 1.5, 2, 3} {
		sc := ScaleUniform(s)
		for _, sz := range sizes {
			pix := sc.ToPhysical(sz)
			back := sc.ToLogical(pix)
			assert.Equal(t, sz, back, "scale %v size %v", s, sz)
			// repeated conversion is stable
			assert.Equal(t, pix, sc.ToPhysical(back))
		}
	}
}

func TestScalePerAxis(t *testing.T) {
	sc := Scale{X: 2, Y: 1.5}
	assert.Equal(t, image.Pt(200, 150), sc.ToPhysical(image.Pt(100, 100)))
	assert.Equal(t, image.Pt(100, 100), sc.ToLogical(image.Pt(200, 150)))
}

func TestScreenForRect(t *testing.T) {
	left := &Screen{Name: "left", Geometry: image.Rect(0, 0, 1920, 1080)}
	right := &Screen{
		Name:             "right",
		Geometry:         image.Rect(1920, 0, 1920+3840, 2160),
		DevicePixelRatio: ScaleUniform(2),
	}
	screens := []*Screen{left, right}

	assert.Same(t, left, ScreenForRect(screens, image.Rect(100, 100, 900, 700)))
	assert.Same(t, right, ScreenForRect(screens, image.Rect(2000, 100, 2800, 700)))
	// straddling: center decides
	assert.Same(t, right, ScreenForRect(screens, image.Rect(1800, 0, 2400, 600)))
	// fully outside every monitor: largest overlap, then first
	assert.Same(t, left, ScreenForRect(screens, image.Rect(-500, -500, -100, -100)))
	assert.Nil(t, ScreenForRect(nil, image.Rect(0, 0, 1, 1)))

	assert.Equal(t, ScaleUniform(2), right.Scale())
	assert.Equal(t, ScaleUniform(1), left.Scale(), "unset ratio defaults to 1")
}

func TestDPIToScale(t *testing.T) {
	assert.Equal(t, float32(1), DPIToScale(96))
	assert.Equal(t, float32(2), DPIToScale(192))
	assert.Equal(t, float32(1), DPIToScale(0))
}
