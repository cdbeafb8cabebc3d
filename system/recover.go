// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

// HandleRecover is the function called with the value of recover()
// at the top of loop dispatch and goroutine entry points. If the
// value is nil, it does nothing. Otherwise it logs the panic with a
// crash file and re-panics. It can be overridden to provide other
// behavior such as a crash dialog.
var HandleRecover = HandleRecoverBase

// HandleRecoverBase writes a crash log with the panic value and
// stack to the app data directory and to stderr, then panics.
// It is the default value of [HandleRecover].
func HandleRecoverBase(r any) {
	if r == nil {
		return
	}
	stack := string(debug.Stack())

	print := func(w *os.File) {
		fmt.Fprintln(w, "panic:", r)
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "----- START OF STACK TRACE: -----")
		fmt.Fprintln(w, stack)
		fmt.Fprintln(w, "----- END OF STACK TRACE -----")
	}
	print(os.Stderr)

	if TheApp != nil {
		dnm := filepath.Join(TheApp.AppDataDir(), "crash-logs")
		if err := os.MkdirAll(dnm, 0755); err == nil {
			fnm := filepath.Join(dnm, "crash_"+time.Now().Format("2006-01-02_15-04-05"))
			if f, err := os.Create(fnm); err == nil {
				print(f)
				f.Close()
				fmt.Fprintln(os.Stderr, "SAVED CRASH LOG TO", fnm)
			}
		}
	}
	panic(r)
}
