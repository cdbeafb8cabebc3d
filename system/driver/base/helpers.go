// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import "os/exec"

// FuncRun is a simple helper type that contains a function to call
// and a channel that is closed when the function is finished running.
type FuncRun struct {
	F    func()
	Done chan struct{}
}

// startProcess starts the given command detached, without waiting.
func startProcess(cmd string, args []string) error {
	c := exec.Command(cmd, args...)
	return c.Start()
}
