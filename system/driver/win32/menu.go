// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/go-mullion/mullion/system"
)

// buildMenu renders a portable menu as a native menu bar. Accelerator
// chords become the conventional "\t" suffix in the label; the actual
// key matching happens in the loop's key dispatch, like everywhere
// else.
func buildMenu(m *system.Menu) (uintptr, error) {
	bar, _, _ := procCreateMenu.Call()
	if bar == 0 {
		return 0, winErr("CreateMenu")
	}
	if err := appendItems(bar, m.Items); err != nil {
		procDestroyMenu.Call(bar)
		return 0, err
	}
	return bar, nil
}

func appendItems(hm uintptr, items []*system.MenuItem) error {
	for _, it := range items {
		if it.Separator {
			procAppendMenu.Call(hm, mfSeparator, 0, 0)
			continue
		}
		flags := uintptr(mfString)
		if it.Checked {
			flags |= mfChecked
		}
		if it.Disabled {
			flags |= mfGrayed
		}
		label := it.Label
		if it.Accel != "" {
			label += "\t" + string(it.Accel)
		}
		lp, err := windows.UTF16PtrFromString(label)
		if err != nil {
			return err
		}
		if it.Sub != nil {
			sub, _, _ := procCreatePopupMenu.Call()
			if sub == 0 {
				return winErr("CreatePopupMenu")
			}
			if err := appendItems(sub, it.Sub.Items); err != nil {
				procDestroyMenu.Call(sub)
				return err
			}
			procAppendMenu.Call(hm, flags|mfPopup, sub, uintptr(unsafe.Pointer(lp)))
			continue
		}
		procAppendMenu.Call(hm, flags, uintptr(it.ID), uintptr(unsafe.Pointer(lp)))
	}
	return nil
}
