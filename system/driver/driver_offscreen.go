// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || android

package driver

import "github.com/go-mullion/mullion/system/driver/offscreen"

func initPlatform() error {
	offscreen.Init()
	return nil
}
