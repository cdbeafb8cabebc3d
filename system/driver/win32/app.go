// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"fmt"
	"image"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/base"
)

// TheApp is the single [system.App] for the Windows platform.
var TheApp = &App{AppMulti: base.NewAppMulti[*Window]()}

// App is the Win32 implementation of [system.App]. Unlike the poll
// backends, the loop here is a native message pump: MainLoop waits in
// MsgWaitForMultipleObjectsEx, drains the thread message queue through
// the window procedure, and then runs [base.Loop.Step].
type App struct {
	base.AppMulti[*Window]

	// HInst is the module instance handle.
	HInst uintptr

	classAtom uintptr

	// pumpTID is the pump thread id once MainLoop is running, so Wake
	// can post WM_NULL to break the native wait.
	pumpTID atomic.Uint32

	wmu    sync.Mutex
	byHWND map[uintptr]*Window

	// creating is the window currently inside CreateWindowExW, so the
	// window procedure can route its creation-time messages.
	creating *Window
}

// wndprocPtr is the single registered window procedure.
var wndprocPtr = windows.NewCallback(wndproc)

// Init prepares the app; the pump itself starts in MainLoop.
func Init() error {
	a := TheApp
	a.App.Init()
	a.Lp.Lookup = a.LookupWindow
	a.Lp.OnScreenUpdate = a.RefreshScreens
	a.Lp.WakeHook = a.wakePump
	a.WakeMainFunc = a.wakePump
	a.byHWND = map[uintptr]*Window{}

	setDPIAware()
	h, _, _ := procGetModuleHandle.Call(0)
	a.HInst = h

	if err := a.registerClass(); err != nil {
		return err
	}
	a.GetScreens()
	system.TheApp = a
	return nil
}

func (a *App) Platform() system.Platforms {
	return system.Windows
}

// setDPIAware opts into per-monitor DPI, newest API first.
func setDPIAware() {
	if procSetProcessDpiCtx.Find() == nil {
		if ret, _, _ := procSetProcessDpiCtx.Call(dpiAwarePMv2); ret != 0 {
			return
		}
	}
	procSetProcessDPIAware.Call()
}

func (a *App) registerClass() error {
	cls, err := windows.UTF16PtrFromString("MullionWindow")
	if err != nil {
		return err
	}
	cur, _, _ := procLoadCursor.Call(0, idcArrow)
	wc := wndClassEx{
		cbSize:        uint32(unsafe.Sizeof(wndClassEx{})),
		style:         0,
		lpfnWndProc:   wndprocPtr,
		hInstance:     a.HInst,
		hCursor:       cur,
		lpszClassName: cls,
	}
	atom, _, _ := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return fmt.Errorf("%w: %v", system.ErrNoDisplay, winErr("RegisterClassExW"))
	}
	a.classAtom = atom
	return nil
}

func (a *App) wakePump() {
	if tid := a.pumpTID.Load(); tid != 0 {
		procPostThreadMessage.Call(uintptr(tid), wmNull, 0, 0)
	}
}

func (a *App) windowFor(h uintptr) *Window {
	a.wmu.Lock()
	defer a.wmu.Unlock()
	if w, ok := a.byHWND[h]; ok {
		return w
	}
	return a.creating
}

type monRec struct {
	hmon uintptr
	info monitorInfoEx
}

// enumeration state for the single registered monitor callback;
// GetScreens runs on one thread at a time (pump or Init).
var enumMons []monRec

// monitorEnumPtr is registered once: callbacks cannot be released.
var monitorEnumPtr = windows.NewCallback(func(hmon, hdc uintptr, rc *winRect, lparam uintptr) uintptr {
	mi := monitorInfoEx{cbSize: uint32(unsafe.Sizeof(monitorInfoEx{}))}
	if ret, _, _ := procGetMonitorInfo.Call(hmon, uintptr(unsafe.Pointer(&mi))); ret != 0 {
		enumMons = append(enumMons, monRec{hmon: hmon, info: mi})
	}
	return 1 // continue enumeration
})

// GetScreens enumerates the monitors.
func (a *App) GetScreens() {
	enumMons = enumMons[:0]
	procEnumDisplayMonitors.Call(0, 0, monitorEnumPtr, 0)
	mons := enumMons

	var screens []*system.Screen
	for i, m := range mons {
		geom := image.Rect(int(m.info.rcMonitor.left), int(m.info.rcMonitor.top),
			int(m.info.rcMonitor.right), int(m.info.rcMonitor.bottom))
		dpi := monitorDPI(m.hmon)
		sc := &system.Screen{
			ScreenNumber:     i,
			Name:             windows.UTF16ToString(m.info.szDevice[:]),
			Geometry:         geom,
			PixSize:          geom.Size(),
			PhysicalDPI:      dpi,
			DevicePixelRatio: system.ScaleUniform(system.DPIToScale(dpi)),
		}
		screens = append(screens, sc)
	}
	if len(screens) == 0 {
		screens = []*system.Screen{{
			Name:             "display",
			DevicePixelRatio: system.ScaleUniform(1),
			PhysicalDPI:      96,
		}}
	}
	a.Screens = screens
}

func monitorDPI(hmon uintptr) float32 {
	if procGetDpiForMonitor.Find() == nil {
		var dx, dy uint32
		ret, _, _ := procGetDpiForMonitor.Call(hmon, mdtEffectiveDPI,
			uintptr(unsafe.Pointer(&dx)), uintptr(unsafe.Pointer(&dy)))
		if ret == 0 && dx > 0 {
			return float32(dx)
		}
	}
	return 96
}

// RefreshScreens re-enumerates monitors and re-resolves every window.
func (a *App) RefreshScreens() {
	a.GetScreens()
	a.Mu.Lock()
	wins := make([]*Window, len(a.Windows))
	copy(wins, a.Windows)
	a.Mu.Unlock()
	for _, w := range wins {
		if w.Stage() < system.Closing {
			w.refreshGeometry()
		}
	}
}

// MainLoop runs the native message pump on a locked OS thread.
func (a *App) MainLoop() error {
	runtime.LockOSThread()
	a.pumpTID.Store(windows.GetCurrentThreadId())
	defer close(a.MainDone)
	defer func() { system.HandleRecover(recover()) }()
	for {
		if a.Lp.Quitting() {
			return nil
		}
		timeout := uintptr(waitInfinite)
		if d, ok := a.Lp.NextTimer(); ok {
			if d < 0 {
				d = 0
			}
			timeout = uintptr(d.Milliseconds())
		}
		procMsgWaitForMultiple.Call(0, 0, timeout, qsAllInput, mwmoInputAvailable)

		var m winMsg
		for {
			ret, _, _ := procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
			if ret == 0 {
				break
			}
			if m.message == wmQuit {
				a.Lp.Quit()
				break
			}
			procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
			procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
		}
		a.Lp.Step()
	}
}

func (a *App) Clipboard() system.Clipboard {
	return theClipboard
}

// wndproc is the window procedure for every driver window. It only
// translates native messages into portable events; dispatch happens in
// the loop step after the pump drains.
func wndproc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	w := TheApp.windowFor(hwnd)
	if w == nil {
		ret, _, _ := procDefWindowProc.Call(hwnd, uintptr(msg), wParam, lParam)
		return ret
	}
	if handled, ret := w.message(hwnd, msg, wParam, lParam); handled {
		return ret
	}
	ret, _, _ := procDefWindowProc.Call(hwnd, uintptr(msg), wParam, lParam)
	return ret
}
