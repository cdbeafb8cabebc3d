// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging for user-facing messages on
// top of log/slog, with print-style helpers gated on [UserLevel].
// Backend drivers use it for tracing native event streams.
package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// UserLevel is the verbosity level that the user has selected,
// typically from -v / -vv / -q flags. Messages below this level are
// not printed. Defaults per build tag (debug builds default to
// [slog.LevelDebug]).
var UserLevel = defaultUserLevel

func init() {
	slog.SetLogLoggerLevel(UserLevel)
}

// SetLevel sets [UserLevel] and the default slog handler level.
func SetLevel(level slog.Level) {
	UserLevel = level
	slog.SetLogLoggerLevel(level)
}

func printIf(level slog.Level, a ...any) {
	if UserLevel > level {
		return
	}
	fmt.Fprintln(os.Stderr, a...)
}

func printfIf(level slog.Level, format string, a ...any) {
	if UserLevel > level {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", a...)
}

// PrintlnDebug prints the given arguments at [slog.LevelDebug].
func PrintlnDebug(a ...any) { printIf(slog.LevelDebug, a...) }

// PrintfDebug prints the given format at [slog.LevelDebug].
func PrintfDebug(format string, a ...any) { printfIf(slog.LevelDebug, format, a...) }

// PrintlnInfo prints the given arguments at [slog.LevelInfo].
func PrintlnInfo(a ...any) { printIf(slog.LevelInfo, a...) }

// PrintlnWarn prints the given arguments at [slog.LevelWarn].
func PrintlnWarn(a ...any) { printIf(slog.LevelWarn, a...) }

// PrintfWarn prints the given format at [slog.LevelWarn].
func PrintfWarn(format string, a ...any) { printfIf(slog.LevelWarn, format, a...) }

// PrintlnError prints the given arguments at [slog.LevelError].
func PrintlnError(a ...any) { printIf(slog.LevelError, a...) }

// PrintError logs the given error with slog if it is non-nil and
// returns it unchanged, a convenience for pass-through error paths.
func PrintError(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}
