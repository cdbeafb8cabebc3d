// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package wayland

// Core protocol and xdg-shell opcodes, from the protocol XML.

// wl_display (object id 1)
const (
	displayID = 1

	opDisplaySync        = 0
	opDisplayGetRegistry = 1

	evDisplayError    = 0
	evDisplayDeleteID = 1
)

// wl_registry
const (
	opRegistryBind = 0

	evRegistryGlobal       = 0
	evRegistryGlobalRemove = 1
)

// wl_callback
const evCallbackDone = 0

// wl_compositor
const opCompositorCreateSurface = 0

// wl_surface
const (
	opSurfaceDestroy        = 0
	opSurfaceDamage         = 2
	opSurfaceFrame          = 3
	opSurfaceCommit         = 6
	opSurfaceSetBufferScale = 8

	evSurfaceEnter = 0
	evSurfaceLeave = 1
)

// wl_seat
const (
	opSeatGetPointer  = 0
	opSeatGetKeyboard = 1

	evSeatCapabilities = 0

	seatCapPointer  = 1
	seatCapKeyboard = 2
)

// wl_pointer
const (
	opPointerSetCursor = 0

	evPointerEnter  = 0
	evPointerLeave  = 1
	evPointerMotion = 2
	evPointerButton = 3
	evPointerAxis   = 4
)

// wl_keyboard
const (
	evKeyboardKeymap    = 0
	evKeyboardEnter     = 1
	evKeyboardLeave     = 2
	evKeyboardKey       = 3
	evKeyboardModifiers = 4
	evKeyboardRepeat    = 5
)

// wl_output
const (
	evOutputGeometry = 0
	evOutputMode     = 1
	evOutputDone     = 2
	evOutputScale    = 3
	evOutputName     = 4
)

// xdg_wm_base
const (
	opWmBaseGetXdgSurface = 2
	opWmBasePong          = 3

	evWmBasePing = 0
)

// xdg_surface
const (
	opXdgSurfaceDestroy      = 0
	opXdgSurfaceGetToplevel  = 1
	opXdgSurfaceAckConfigure = 4

	evXdgSurfaceConfigure = 0
)

// xdg_toplevel
const (
	opToplevelDestroy      = 0
	opToplevelSetTitle     = 2
	opToplevelSetAppID     = 3
	opToplevelSetMaxSize   = 7
	opToplevelSetMinSize   = 8
	opToplevelSetMinimized = 13

	evToplevelConfigure = 0
	evToplevelClose     = 1
)

// Linux input button codes carried by wl_pointer.button.
const (
	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112
	btnSide   = 0x113
	btnExtra  = 0x114
)

const keyStatePressed = 1
