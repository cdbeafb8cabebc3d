// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver selects and initializes the platform backend.
// Programs call [Main] from their main function and use the system
// package API; they never import a backend directly.
package driver

import (
	"os"
	"slices"
	"testing"

	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/offscreen"
)

// Main initializes the backend for this build target and runs the
// unified event loop on the calling goroutine, which must be the main
// one. f runs on its own goroutine and drives the app through the
// [system.App] API.
func Main(f func(a system.App)) {
	if useOffscreen() {
		offscreen.Init()
	} else if err := initPlatform(); err != nil {
		// no display is fatal at startup; there is no degraded mode
		logx.PrintlnError("mullion: display init failed:", err)
		os.Exit(1)
	}
	go func() {
		defer func() { system.HandleRecover(recover()) }()
		f(system.TheApp)
	}()
	if err := system.TheApp.MainLoop(); err != nil {
		logx.PrintlnError("mullion: event loop:", err)
	}
}

// useOffscreen reports whether the headless backend should be used
// regardless of platform: under go test, or with the -nogui flag.
func useOffscreen() bool {
	return testing.Testing() || slices.Contains(os.Args, "-nogui")
}
