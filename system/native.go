// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

// NativeSurface describes a window's platform surface for handing to
// rendering APIs. Only the fields for the running [Platforms] value
// are meaningful.
type NativeSurface struct {
	// Platform tags which field group is valid.
	Platform Platforms

	// Win32 window and module handles.
	HWnd      uintptr
	HInstance uintptr

	// X11 window resource id and the screen number it lives on.
	XWindow uint32
	XScreen int

	// Wayland object ids for the wl_surface and its xdg_surface,
	// plus the compositor socket fd they live on.
	WlSurface    uint32
	WlXdgSurface uint32
	WlDisplayFD  int

	// Cocoa NSWindow and content NSView pointers.
	NSWindow uintptr
	NSView   uintptr

	// Web canvas element id in the DOM.
	CanvasID string
}
