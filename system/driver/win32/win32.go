// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Raw user32/gdi32/shcore/imm32 bindings. Only what the driver calls.

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	shcore   = windows.NewLazySystemDLL("shcore.dll")
	imm32    = windows.NewLazySystemDLL("imm32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassEx     = user32.NewProc("RegisterClassExW")
	procCreateWindowEx      = user32.NewProc("CreateWindowExW")
	procDefWindowProc       = user32.NewProc("DefWindowProcW")
	procDestroyWindow       = user32.NewProc("DestroyWindow")
	procShowWindow          = user32.NewProc("ShowWindow")
	procSetWindowText       = user32.NewProc("SetWindowTextW")
	procSetWindowPos        = user32.NewProc("SetWindowPos")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
	procGetClientRect       = user32.NewProc("GetClientRect")
	procClientToScreen      = user32.NewProc("ClientToScreen")
	procScreenToClient      = user32.NewProc("ScreenToClient")
	procAdjustWindowRectEx  = user32.NewProc("AdjustWindowRectEx")
	procInvalidateRect      = user32.NewProc("InvalidateRect")
	procValidateRect        = user32.NewProc("ValidateRect")
	procGetUpdateRect       = user32.NewProc("GetUpdateRect")
	procPeekMessage         = user32.NewProc("PeekMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessage     = user32.NewProc("DispatchMessageW")
	procPostThreadMessage   = user32.NewProc("PostThreadMessageW")
	procMsgWaitForMultiple  = user32.NewProc("MsgWaitForMultipleObjectsEx")
	procGetKeyState         = user32.NewProc("GetKeyState")
	procLoadCursor          = user32.NewProc("LoadCursorW")
	procSetCursor           = user32.NewProc("SetCursor")
	procGetDpiForWindow     = user32.NewProc("GetDpiForWindow")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfo      = user32.NewProc("GetMonitorInfoW")
	procSetProcessDpiCtx    = user32.NewProc("SetProcessDpiAwarenessContext")
	procSetProcessDPIAware  = user32.NewProc("SetProcessDPIAware")
	procCreateMenu          = user32.NewProc("CreateMenu")
	procCreatePopupMenu     = user32.NewProc("CreatePopupMenu")
	procAppendMenu          = user32.NewProc("AppendMenuW")
	procDestroyMenu         = user32.NewProc("DestroyMenu")
	procSetMenu             = user32.NewProc("SetMenu")
	procDrawMenuBar         = user32.NewProc("DrawMenuBar")
	procOpenClipboard       = user32.NewProc("OpenClipboard")
	procCloseClipboard      = user32.NewProc("CloseClipboard")
	procEmptyClipboard      = user32.NewProc("EmptyClipboard")
	procGetClipboardData    = user32.NewProc("GetClipboardData")
	procSetClipboardData    = user32.NewProc("SetClipboardData")

	procGetDpiForMonitor = shcore.NewProc("GetDpiForMonitor")

	procImmGetContext           = imm32.NewProc("ImmGetContext")
	procImmReleaseContext       = imm32.NewProc("ImmReleaseContext")
	procImmGetCompositionString = imm32.NewProc("ImmGetCompositionStringW")
	procImmSetCompositionWindow = imm32.NewProc("ImmSetCompositionWindow")

	procGetModuleHandle = kernel32.NewProc("GetModuleHandleW")
	procGlobalAlloc     = kernel32.NewProc("GlobalAlloc")
	procGlobalLock      = kernel32.NewProc("GlobalLock")
	procGlobalUnlock    = kernel32.NewProc("GlobalUnlock")
)

const (
	wsOverlappedWindow = 0x00CF0000
	wsThickFrame       = 0x00040000
	wsMaximizeBox      = 0x00010000
	wsPopup            = 0x80000000
	wsClipSiblings     = 0x04000000
	wsClipChildren     = 0x02000000

	wsExTopmost    = 0x00000008
	wsExToolWindow = 0x00000080
	wsExNoActivate = 0x08000000

	swShow     = 5
	swHide     = 0
	swMinimize = 6

	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002

	cwUseDefault = 0x80000000

	wmNull           = 0x0000
	wmDestroy        = 0x0002
	wmSize           = 0x0005
	wmSetFocus       = 0x0007
	wmKillFocus      = 0x0008
	wmPaint          = 0x000F
	wmClose          = 0x0010
	wmQuit           = 0x0012
	wmSetCursor      = 0x0020
	wmWindowPosChg   = 0x0047
	wmDisplayChange  = 0x007E
	wmKeyDown        = 0x0100
	wmKeyUp          = 0x0101
	wmChar           = 0x0102
	wmSysKeyDown     = 0x0104
	wmSysKeyUp       = 0x0105
	wmSysChar        = 0x0106
	wmImeEndCompose  = 0x010E
	wmImeComposition = 0x010F
	wmCommand        = 0x0111
	wmMouseMove      = 0x0200
	wmLButtonDown    = 0x0201
	wmLButtonUp      = 0x0202
	wmRButtonDown    = 0x0204
	wmRButtonUp      = 0x0205
	wmMButtonDown    = 0x0207
	wmMButtonUp      = 0x0208
	wmMouseWheel     = 0x020A
	wmXButtonDown    = 0x020B
	wmXButtonUp      = 0x020C
	wmMouseHWheel    = 0x020E
	wmDpiChanged     = 0x02E0

	sizeMinimized = 1
	sizeRestored  = 0
	sizeMaximized = 2

	pmRemove   = 0x0001
	qsAllInput = 0x04FF

	mwmoInputAvailable = 0x0004
	waitInfinite       = 0xFFFFFFFF

	wheelDelta = 120

	htClient = 1

	mfString    = 0x0000
	mfGrayed    = 0x0001
	mfChecked   = 0x0008
	mfPopup     = 0x0010
	mfSeparator = 0x0800

	cfUnicodeText = 13
	gmemMoveable  = 0x0002

	gcsCompStr   = 0x0008
	gcsResultStr = 0x0800

	cfsPoint = 0x0002

	mdtEffectiveDPI = 0

	idcArrow       = 32512
	idcIBeam       = 32513
	idcCross       = 32515
	idcHand        = 32649
	idcNo          = 32648
	idcSizeWE      = 32644
	idcSizeNS      = 32645
	idcSizeNESW    = 32643
	idcSizeNWSE    = 32642
	dpiAwarePMv2   = ^uintptr(3) // DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 (-4)
	monitorInfoLen = 32
)

type wndClassEx struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     uintptr
	hIcon         uintptr
	hCursor       uintptr
	hbrBackground uintptr
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       uintptr
}

type winMsg struct {
	hwnd     uintptr
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       winPoint
	lPrivate uint32
}

type winPoint struct {
	x int32
	y int32
}

type winRect struct {
	left   int32
	top    int32
	right  int32
	bottom int32
}

type monitorInfoEx struct {
	cbSize    uint32
	rcMonitor winRect
	rcWork    winRect
	dwFlags   uint32
	szDevice  [monitorInfoLen]uint16
}

type compositionForm struct {
	dwStyle      uint32
	ptCurrentPos winPoint
	rcArea       winRect
}

func winErr(op string) error {
	e := windows.GetLastError()
	if e == nil {
		return fmt.Errorf("%s failed", op)
	}
	return fmt.Errorf("%s: %w", op, e)
}
