// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows && !offscreen

package driver

import "github.com/go-mullion/mullion/system/driver/win32"

func initPlatform() error {
	return win32.Init()
}
