// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides a portable operating system interface for
// windowing: one application / window / event API implemented over
// divergent native backends, so higher level code can create windows,
// receive input, and drive a paint cycle without branching on the
// host platform.
package system

//go:generate core generate

var (
	// TheApp is the current [App]; only one is ever in effect.
	// It is set by the driver package for the compiled-in backend.
	TheApp App

	// AppVersion is the version of the current app.
	// It can be set by a linker flag.
	AppVersion = "dev"
)

// Platforms are all the supported backend platforms.
type Platforms int32

const (
	// MacOS is a Mac OS machine (aka Darwin), served by the cocoa backend.
	MacOS Platforms = iota

	// LinuxX11 is a Linux or BSD machine displaying through an X11 server.
	LinuxX11

	// LinuxWayland is a Linux machine displaying through a Wayland compositor.
	LinuxWayland

	// Windows is a Microsoft Windows machine, served by the win32 backend.
	Windows

	// Web is a web browser running the app through WASM.
	Web

	// Offscreen is a headless backend used for testing,
	// selected automatically under "go test" or with -nogui.
	Offscreen

	PlatformsN
)

var platformNames = [PlatformsN]string{
	"MacOS", "LinuxX11", "LinuxWayland", "Windows", "Web", "Offscreen",
}

func (p Platforms) String() string {
	if p >= 0 && p < PlatformsN {
		return platformNames[p]
	}
	return "Platforms(?)"
}

// IsLinuxFamily returns whether the platform is one of the Linux
// display-server backends.
func (p Platforms) IsLinuxFamily() bool {
	return p == LinuxX11 || p == LinuxWayland
}

// SingleWindow returns whether the platform only supports one window
// (the hosting page on Web, the headless screen for Offscreen).
func (p Platforms) SingleWindow() bool {
	return p == Web
}

// IdleToken is an opaque caller-chosen token identifying a deferred
// callback scheduled on the loop thread. Posting an idle token is one
// of the two sanctioned cross-thread operations (the other is timers).
type IdleToken int64

// TimerToken identifies a scheduled timer. Tokens are process-scoped
// and monotonic; they are never reused.
type TimerToken int64
