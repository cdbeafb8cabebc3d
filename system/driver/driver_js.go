// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && !offscreen

package driver

import "github.com/go-mullion/mullion/system/driver/web"

func initPlatform() error {
	return web.Init()
}
