// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !android && !offscreen

package driver

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/wayland"
	"github.com/go-mullion/mullion/system/driver/x11"
)

// initPlatform picks between the two Linux display systems at
// runtime. Wayland is preferred when a compositor is reachable, with
// X11 as the fallback; MULLION_BACKEND=x11|wayland forces the choice.
func initPlatform() error {
	switch be := os.Getenv("MULLION_BACKEND"); be {
	case "x11":
		return x11.Init()
	case "wayland":
		return wayland.Init()
	case "":
	default:
		return fmt.Errorf("unknown MULLION_BACKEND %q", be)
	}
	err := wayland.Init()
	if err == nil {
		return nil
	}
	if !errors.Is(err, system.ErrNoDisplay) {
		return err
	}
	logx.PrintlnDebug("mullion: no wayland compositor, trying x11:", err)
	return x11.Init()
}
