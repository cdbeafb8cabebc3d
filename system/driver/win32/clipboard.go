// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

// clipboard talks to the system clipboard in CF_UNICODETEXT.
type clipboard struct{}

var theClipboard = clipboard{}

func (clipboard) ReadText() string {
	if ret, _, _ := procOpenClipboard.Call(0); ret == 0 {
		return ""
	}
	defer procCloseClipboard.Call()
	h, _, _ := procGetClipboardData.Call(cfUnicodeText)
	if h == 0 {
		return "" // empty or non-text clipboard
	}
	p, _, _ := procGlobalLock.Call(h)
	if p == 0 {
		return ""
	}
	defer procGlobalUnlock.Call(h)
	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(p)))
}

func (clipboard) WriteText(text string) error {
	u, err := windows.UTF16FromString(text)
	if err != nil {
		return err
	}
	if ret, _, _ := procOpenClipboard.Call(0); ret == 0 {
		return winErr("OpenClipboard")
	}
	defer procCloseClipboard.Call()
	procEmptyClipboard.Call()
	n := uintptr(len(u) * 2)
	h, _, _ := procGlobalAlloc.Call(gmemMoveable, n)
	if h == 0 {
		return winErr("GlobalAlloc")
	}
	p, _, _ := procGlobalLock.Call(h)
	if p == 0 {
		return errors.New("win32: locking clipboard buffer")
	}
	dst := unsafe.Slice((*uint16)(unsafe.Pointer(p)), len(u))
	copy(dst, u)
	procGlobalUnlock.Call(h)
	if ret, _, _ := procSetClipboardData.Call(cfUnicodeText, h); ret == 0 {
		return winErr("SetClipboardData")
	}
	return nil
}
