// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/events/key"
	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/base"
)

// Window is the Win32 implementation of [system.Window].
type Window struct {
	base.WindowBase

	// HWnd is the native window handle.
	HWnd uintptr

	// style and exStyle mirror what the window was created with, for
	// client-to-outer rect adjustment.
	style   uint32
	exStyle uint32

	// HMenu is the native menu handle, or 0.
	HMenu uintptr

	// Cur is the active cursor shape.
	Cur system.Cursors

	app *App
}

func (a *App) NewWindow(opts *system.NewWindowOptions, h system.Handler) (system.Window, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil handler", system.ErrWindowCreation)
	}
	if opts == nil {
		opts = system.DefaultWindowOptions()
	}
	opts.Fixup()
	if wg, ok := system.SavedGeometry(opts.Title); ok {
		opts.Size = wg.Size
		opts.Pos = wg.Pos
	}

	w := &Window{app: a}
	w.InitWindow(a.NewWinID(), opts, h, &a.Lp)
	w.SetSelf(w)

	var err error
	a.RunOnMainOrHere(func() {
		err = w.create(opts)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: win32: %v", system.ErrWindowCreation, err)
	}

	a.Mu.Lock()
	a.Windows = append(a.Windows, w)
	a.Mu.Unlock()

	w.SetStage(system.Mapped)
	h.Connected(w)
	w.refreshGeometry()
	if opts.Menu != nil {
		if merr := w.SetMenu(opts.Menu); merr != nil {
			logx.PrintlnWarn("win32: initial menu:", merr)
		}
	}
	if opts.InitiallyVisible {
		if serr := w.Show(); serr != nil {
			logx.PrintlnWarn("win32: showing new window:", serr)
		}
	}
	return w, nil
}

// RunOnMainOrHere runs f on the pump thread when the pump is live,
// directly otherwise (window creation before MainLoop starts).
func (a *App) RunOnMainOrHere(f func()) {
	if a.pumpTID.Load() != 0 && windows.GetCurrentThreadId() != a.pumpTID.Load() {
		a.RunOnMain(f)
		return
	}
	f()
}

func (w *Window) create(opts *system.NewWindowOptions) error {
	a := w.app
	w.style = wsClipSiblings | wsClipChildren
	if opts.ShowTitlebar {
		w.style |= wsOverlappedWindow
		if !opts.Resizable {
			w.style &^= wsThickFrame | wsMaximizeBox
		}
	} else {
		w.style |= wsPopup
	}
	switch opts.Level {
	case system.LevelTooltip:
		w.exStyle |= wsExTopmost | wsExToolWindow | wsExNoActivate
	case system.LevelFloating, system.LevelModal:
		w.exStyle |= wsExTopmost
	}

	// opts.Size is logical; the outer rect wants physical pixels
	sc := system.ScreenForRect(a.Screens, image.Rectangle{Min: opts.Pos, Max: opts.Pos.Add(opts.Size)})
	scale := system.ScaleUniform(1)
	if sc != nil {
		scale = sc.Scale()
	}
	pix := scale.ToPhysical(opts.Size)
	rc := winRect{right: int32(pix.X), bottom: int32(pix.Y)}
	procAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(&rc)),
		uintptr(w.style), 0, uintptr(w.exStyle))

	x, y := uintptr(cwUseDefault), uintptr(cwUseDefault)
	if opts.Pos != (image.Point{}) {
		x, y = uintptr(opts.Pos.X), uintptr(opts.Pos.Y)
	}
	title, err := windows.UTF16PtrFromString(opts.Title)
	if err != nil {
		return err
	}

	a.wmu.Lock()
	a.creating = w
	a.wmu.Unlock()
	hwnd, _, _ := procCreateWindowEx.Call(
		uintptr(w.exStyle),
		a.classAtom,
		uintptr(unsafe.Pointer(title)),
		uintptr(w.style),
		x, y,
		uintptr(rc.right-rc.left), uintptr(rc.bottom-rc.top),
		0, 0, a.HInst, 0)
	a.wmu.Lock()
	a.creating = nil
	if hwnd != 0 {
		w.HWnd = hwnd
		a.byHWND[hwnd] = w
	}
	a.wmu.Unlock()
	if hwnd == 0 {
		return winErr("CreateWindowExW")
	}
	return nil
}

// refreshGeometry reads the native client rect and position and pushes
// them through UpdateGeometry.
func (w *Window) refreshGeometry() {
	var rc winRect
	procGetClientRect.Call(w.HWnd, uintptr(unsafe.Pointer(&rc)))
	var pt winPoint
	procClientToScreen.Call(w.HWnd, uintptr(unsafe.Pointer(&pt)))
	pix := image.Pt(int(rc.right-rc.left), int(rc.bottom-rc.top))
	if pix == (image.Point{}) {
		pix = w.Size()
	}
	w.UpdateGeometry(image.Pt(int(pt.x), int(pt.y)), pix, w.app.Screens)
}

// message translates one native message; it returns handled=false to
// fall through to DefWindowProc.
func (w *Window) message(hwnd uintptr, msg uint32, wParam, lParam uintptr) (bool, uintptr) {
	switch msg {
	case wmClose:
		w.Src.Window(events.WinCloseReq)
		return true, 0

	case wmDestroy:
		w.Src.Window(events.WinDestroy)
		return true, 0

	case wmPaint:
		var rc winRect
		procGetUpdateRect.Call(hwnd, uintptr(unsafe.Pointer(&rc)), 0)
		procValidateRect.Call(hwnd, 0)
		w.Src.WindowPaint(image.Rect(int(rc.left), int(rc.top), int(rc.right), int(rc.bottom)))
		return true, 0

	case wmSize:
		switch wParam {
		case sizeMinimized:
			if w.SetStage(system.Hidden) == nil {
				w.Src.Window(events.WinHide)
			}
		case sizeRestored, sizeMaximized:
			if w.Stage() == system.Hidden {
				if w.SetStage(system.Visible) == nil {
					w.Src.Window(events.WinShow)
				}
			}
			w.refreshGeometry()
		}
		return true, 0

	case wmWindowPosChg:
		w.refreshGeometry()
		return false, 0 // DefWindowProc still generates WM_SIZE et al.

	case wmDpiChanged:
		// wParam carries the new DPI; lParam the suggested rect
		w.app.GetScreens()
		rc := (*winRect)(unsafe.Pointer(lParam))
		procSetWindowPos.Call(hwnd, 0,
			uintptr(rc.left), uintptr(rc.top),
			uintptr(rc.right-rc.left), uintptr(rc.bottom-rc.top),
			swpNoZOrder|swpNoActivate)
		w.refreshGeometry()
		return true, 0

	case wmDisplayChange:
		w.app.Deque.Send(events.NewWindow(events.ScreenUpdate))
		return true, 0

	case wmSetFocus:
		w.SetFocused(true)
		w.Src.Window(events.WinFocus)
		return true, 0

	case wmKillFocus:
		w.SetFocused(false)
		w.Src.CompositionCancel()
		w.Src.Window(events.WinFocusLost)
		return true, 0

	case wmSetCursor:
		if lParam&0xFFFF == htClient {
			applyCursor(w.Cur)
			return true, 1
		}
		return false, 0

	case wmKeyDown, wmSysKeyDown:
		w.keyTransition(events.KeyDown, uint32(wParam))
		return msg == wmKeyDown, 0 // syskeys fall through for Alt menus

	case wmKeyUp, wmSysKeyUp:
		w.keyTransition(events.KeyUp, uint32(wParam))
		return msg == wmKeyUp, 0

	case wmChar, wmSysChar:
		ch := rune(wParam)
		if ch >= 0x20 && ch != 0x7F {
			w.Src.SetModifiers(readMods())
			w.Src.KeyChord(ch, key.CodeUnknown, 0)
		}
		return true, 0

	case wmImeComposition:
		w.imeComposition(hwnd, lParam)
		return false, 0 // let the IME window draw

	case wmImeEndCompose:
		w.Src.CompositionCancel()
		return false, 0

	case wmCommand:
		if wParam>>16 == 0 { // menu
			w.Src.MenuCommand(int(wParam & 0xFFFF))
			return true, 0
		}
		return false, 0

	case wmMouseMove:
		w.Src.SetModifiers(readMods())
		w.Src.MouseMove(mousePos(lParam))
		return true, 0

	case wmLButtonDown, wmLButtonUp, wmRButtonDown, wmRButtonUp,
		wmMButtonDown, wmMButtonUp, wmXButtonDown, wmXButtonUp:
		w.mouseButton(msg, wParam, lParam)
		return true, 0

	case wmMouseWheel, wmMouseHWheel:
		w.wheel(hwnd, msg, wParam, lParam)
		return true, 0
	}
	return false, 0
}

func (w *Window) keyTransition(typ events.Types, vk uint32) {
	code := vkCodes[vk]
	rn := key.CodeRuneMap[code]
	w.Src.SetModifiers(readMods())
	w.Src.Key(typ, rn, code, 0)
}

func (w *Window) mouseButton(msg uint32, wParam, lParam uintptr) {
	typ := events.MouseDown
	var but events.Buttons
	switch msg {
	case wmLButtonUp, wmRButtonUp, wmMButtonUp, wmXButtonUp:
		typ = events.MouseUp
	}
	switch msg {
	case wmLButtonDown, wmLButtonUp:
		but = events.Left
	case wmRButtonDown, wmRButtonUp:
		but = events.Right
	case wmMButtonDown, wmMButtonUp:
		but = events.Middle
	case wmXButtonDown, wmXButtonUp:
		if wParam>>16 == 1 {
			but = events.Back
		} else {
			but = events.Forward
		}
	}
	w.Src.SetModifiers(readMods())
	w.Src.MouseButton(typ, but, mousePos(lParam), 0)
}

func (w *Window) wheel(hwnd uintptr, msg uint32, wParam, lParam uintptr) {
	delta := int(int16(wParam >> 16))
	lines := delta / wheelDelta
	if lines == 0 {
		if delta > 0 {
			lines = 1
		} else {
			lines = -1
		}
	}
	// wheel coordinates are screen-relative, unlike the button messages
	pt := winPoint{x: int32(int16(lParam & 0xFFFF)), y: int32(int16(lParam >> 16))}
	procScreenToClient.Call(hwnd, uintptr(unsafe.Pointer(&pt)))
	var d image.Point
	if msg == wmMouseWheel {
		d.Y = -lines // wheel up scrolls up
	} else {
		d.X = lines
	}
	w.Src.SetModifiers(readMods())
	w.Src.Scroll(image.Pt(int(pt.x), int(pt.y)), d, events.ScrollLines)
}

func (w *Window) imeComposition(hwnd uintptr, lParam uintptr) {
	ctx, _, _ := procImmGetContext.Call(hwnd)
	if ctx == 0 {
		return
	}
	defer procImmReleaseContext.Call(hwnd, ctx)
	if lParam&gcsResultStr != 0 {
		if s := imeString(ctx, gcsResultStr); s != "" {
			w.Src.CompositionCommit(s)
		}
		return
	}
	if lParam&gcsCompStr != 0 {
		w.Src.CompositionUpdate(imeString(ctx, gcsCompStr))
	}
}

func imeString(ctx uintptr, what uintptr) string {
	n, _, _ := procImmGetCompositionString.Call(ctx, what, 0, 0)
	if int32(n) <= 0 {
		return ""
	}
	buf := make([]uint16, n/2)
	procImmGetCompositionString.Call(ctx, what,
		uintptr(unsafe.Pointer(&buf[0])), n)
	return windows.UTF16ToString(buf)
}

func mousePos(lParam uintptr) image.Point {
	return image.Pt(int(int16(lParam&0xFFFF)), int(int16(lParam>>16)))
}

// readMods queries the synchronous key state for the modifier bitset.
func readMods() key.Modifiers {
	down := func(vk uintptr) bool {
		s, _, _ := procGetKeyState.Call(vk)
		return s&0x8000 != 0
	}
	toggled := func(vk uintptr) bool {
		s, _, _ := procGetKeyState.Call(vk)
		return s&1 != 0
	}
	var mods key.Modifiers
	mods.SetFlag(down(0x10), key.Shift)      // VK_SHIFT
	mods.SetFlag(down(0x11), key.Control)    // VK_CONTROL
	mods.SetFlag(down(0x12), key.Alt)        // VK_MENU
	mods.SetFlag(down(0x5B) || down(0x5C), key.Meta)
	mods.SetFlag(toggled(0x14), key.CapsLock) // VK_CAPITAL
	mods.SetFlag(toggled(0x90), key.NumLock)  // VK_NUMLOCK
	return mods
}

//////// Window operations

func (w *Window) SetTitle(title string) error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.Mu.Lock()
	w.Titl = title
	w.Mu.Unlock()
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	if ret, _, _ := procSetWindowText.Call(w.HWnd, uintptr(unsafe.Pointer(t))); ret == 0 {
		return winErr("SetWindowTextW")
	}
	return nil
}

func (w *Window) Show() error {
	if err := w.Alive(); err != nil {
		return err
	}
	procShowWindow.Call(w.HWnd, swShow)
	if w.SetStage(system.Visible) == nil {
		w.Src.Window(events.WinShow)
	}
	return nil
}

func (w *Window) Hide() error {
	if err := w.Alive(); err != nil {
		return err
	}
	procShowWindow.Call(w.HWnd, swHide)
	if w.SetStage(system.Hidden) == nil {
		w.Src.Window(events.WinHide)
	}
	return nil
}

func (w *Window) Raise() error {
	if err := w.Alive(); err != nil {
		return err
	}
	procSetForegroundWindow.Call(w.HWnd)
	return nil
}

func (w *Window) Minimize() error {
	if err := w.Alive(); err != nil {
		return err
	}
	procShowWindow.Call(w.HWnd, swMinimize)
	return nil
}

// SetGeometry moves and resizes; zero components keep the current
// value. The size is logical, the position physical desktop pixels.
func (w *Window) SetGeometry(pos image.Point, size image.Point) error {
	if err := w.Alive(); err != nil {
		return err
	}
	flags := uintptr(swpNoZOrder | swpNoActivate)
	if pos == (image.Point{}) {
		pos = w.Position()
		flags |= swpNoMove
	}
	if size == (image.Point{}) {
		flags |= swpNoSize
		procSetWindowPos.Call(w.HWnd, 0, uintptr(pos.X), uintptr(pos.Y), 0, 0, flags)
		return nil
	}
	pix := w.Scale().ToPhysical(size)
	rc := winRect{right: int32(pix.X), bottom: int32(pix.Y)}
	procAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(&rc)),
		uintptr(w.style), boolArg(w.HMenu != 0), uintptr(w.exStyle))
	procSetWindowPos.Call(w.HWnd, 0, uintptr(pos.X), uintptr(pos.Y),
		uintptr(rc.right-rc.left), uintptr(rc.bottom-rc.top), flags)
	return nil
}

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

var cursorIDs = map[system.Cursors]uintptr{
	system.Arrow:      idcArrow,
	system.IBeam:      idcIBeam,
	system.Crosshair:  idcCross,
	system.Pointer:    idcHand,
	system.NotAllowed: idcNo,
	system.ResizeEW:   idcSizeWE,
	system.ResizeNS:   idcSizeNS,
	system.ResizeNESW: idcSizeNESW,
	system.ResizeNWSE: idcSizeNWSE,
}

func applyCursor(c system.Cursors) {
	id, ok := cursorIDs[c]
	if !ok {
		id = idcArrow
	}
	cur, _, _ := procLoadCursor.Call(0, id)
	procSetCursor.Call(cur)
}

func (w *Window) SetCursor(c system.Cursors) error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.Cur = c
	applyCursor(c)
	return nil
}

// SetMenu installs a native menu bar built from the portable menu.
func (w *Window) SetMenu(m *system.Menu) error {
	if err := w.SetMenuBase(m); err != nil {
		return err
	}
	old := w.HMenu
	w.HMenu = 0
	if m != nil {
		hm, err := buildMenu(m)
		if err != nil {
			return err
		}
		w.HMenu = hm
	}
	procSetMenu.Call(w.HWnd, w.HMenu)
	procDrawMenuBar.Call(w.HWnd)
	if old != 0 {
		procDestroyMenu.Call(old)
	}
	return nil
}

func (w *Window) SetTextInputRect(r image.Rectangle) error {
	if err := w.Alive(); err != nil {
		return err
	}
	ctx, _, _ := procImmGetContext.Call(w.HWnd)
	if ctx == 0 {
		return nil
	}
	defer procImmReleaseContext.Call(w.HWnd, ctx)
	cf := compositionForm{
		dwStyle:      cfsPoint,
		ptCurrentPos: winPoint{x: int32(r.Min.X), y: int32(r.Max.Y)},
	}
	procImmSetCompositionWindow.Call(ctx, uintptr(unsafe.Pointer(&cf)))
	return nil
}

func (w *Window) RequestRedraw(damage image.Rectangle) error {
	if err := w.Alive(); err != nil {
		return err
	}
	if damage.Empty() {
		procInvalidateRect.Call(w.HWnd, 0, 0)
	} else {
		rc := winRect{
			left: int32(damage.Min.X), top: int32(damage.Min.Y),
			right: int32(damage.Max.X), bottom: int32(damage.Max.Y),
		}
		procInvalidateRect.Call(w.HWnd, uintptr(unsafe.Pointer(&rc)), 0)
	}
	return nil
}

func (w *Window) Close() {
	w.DestroyClean(func() {
		a := w.app
		a.wmu.Lock()
		delete(a.byHWND, w.HWnd)
		a.wmu.Unlock()
		if w.HMenu != 0 {
			procDestroyMenu.Call(w.HMenu)
			w.HMenu = 0
		}
		procDestroyWindow.Call(w.HWnd)
	})
	w.app.RemoveWindow(w)
}

func (w *Window) Native() (system.NativeSurface, error) {
	if err := w.Alive(); err != nil {
		return system.NativeSurface{}, err
	}
	return system.NativeSurface{
		Platform:  system.Windows,
		HWnd:      w.HWnd,
		HInstance: w.app.HInst,
	}, nil
}
