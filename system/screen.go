// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"
	"math"
)

// Scale relates logical coordinates to physical pixels, per axis.
// Nearly all displays use a uniform scale, but X11 RandR and Windows
// per-monitor DPI can report the axes separately, so both are kept.
type Scale struct {
	X float32
	Y float32
}

// ScaleUniform returns a Scale with the same factor on both axes.
func ScaleUniform(s float32) Scale {
	return Scale{X: s, Y: s}
}

// IsZero reports whether the scale is unset.
func (sc Scale) IsZero() bool {
	return sc.X == 0 && sc.Y == 0
}

// ToPhysical converts a logical point to physical pixels, rounding
// to nearest.
func (sc Scale) ToPhysical(p image.Point) image.Point {
	return image.Point{
		X: int(math.Round(float64(p.X) * float64(sc.X))),
		Y: int(math.Round(float64(p.Y) * float64(sc.Y))),
	}
}

// ToLogical converts a physical pixel point to logical coordinates,
// rounding to nearest. Conversions are stable under repetition: for a
// fixed scale, converting the result back and forth again yields the
// same physical value.
func (sc Scale) ToLogical(p image.Point) image.Point {
	return image.Point{
		X: int(math.Round(float64(p.X) / float64(sc.X))),
		Y: int(math.Round(float64(p.Y) / float64(sc.Y))),
	}
}

// ToPhysicalRect converts a logical rectangle to physical pixels.
func (sc Scale) ToPhysicalRect(r image.Rectangle) image.Rectangle {
	return image.Rectangle{Min: sc.ToPhysical(r.Min), Max: sc.ToPhysical(r.Max)}
}

// ToLogicalRect converts a physical rectangle to logical coordinates.
func (sc Scale) ToLogicalRect(r image.Rectangle) image.Rectangle {
	return image.Rectangle{Min: sc.ToLogical(r.Min), Max: sc.ToLogical(r.Max)}
}

// Screen contains the metrics of one connected monitor.
type Screen struct {
	// ScreenNumber is the index of this screen in the list of screens
	// maintained under Screen.
	ScreenNumber int

	// Name is the name of the screen as reported by the display system.
	Name string

	// Geometry contains the geometry of the screen in physical pixels,
	// within the overall desktop coordinate space.
	Geometry image.Rectangle

	// PixSize is the size of the screen in physical pixels.
	PixSize image.Point

	// PhysicalSize is the actual physical size of the screen, in mm.
	PhysicalSize image.Point

	// PhysicalDPI is the dots-per-inch derived from PixSize and
	// PhysicalSize.
	PhysicalDPI float32

	// DevicePixelRatio is the scale this screen imposes on windows
	// placed on it, per axis.
	DevicePixelRatio Scale

	// RefreshRate is the refresh rate in Hz, or 0 if unknown.
	RefreshRate float32

	// Depth is the color depth in bits.
	Depth int
}

// Scale returns the screen's scale, defaulting to 1 if unset.
func (sc *Screen) Scale() Scale {
	if sc.DevicePixelRatio.IsZero() {
		return ScaleUniform(1)
	}
	return sc.DevicePixelRatio
}

// ScreenForRect resolves which screen a window rectangle (in physical
// desktop coordinates) belongs to: the screen containing the
// rectangle's center, falling back to the screen with the largest
// overlap, then to the first screen. Returns nil only when the list
// is empty.
func ScreenForRect(screens []*Screen, r image.Rectangle) *Screen {
	if len(screens) == 0 {
		return nil
	}
	ctr := r.Min.Add(r.Size().Div(2))
	for _, sc := range screens {
		if ctr.In(sc.Geometry) {
			return sc
		}
	}
	best := screens[0]
	bestArea := 0
	for _, sc := range screens {
		ov := r.Intersect(sc.Geometry)
		area := ov.Dx() * ov.Dy()
		if area > bestArea {
			best = sc
			bestArea = area
		}
	}
	return best
}

// DPIToScale converts a reported DPI to the scale factor relative to
// the 96 DPI baseline.
func DPIToScale(dpi float32) float32 {
	if dpi <= 0 {
		return 1
	}
	return dpi / 96
}
