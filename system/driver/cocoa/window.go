// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

package cocoa

import (
	"fmt"
	"image"

	"github.com/ebitengine/purego/objc"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/base"
)

// Window is the Cocoa implementation of [system.Window].
type Window struct {
	base.WindowBase

	// NSWin and NSView are the native window and its content view.
	NSWin  objc.ID
	NSView objc.ID

	delegate objc.ID

	Cur system.Cursors

	app *App
}

// delegateClass is the registered NSWindowDelegate subclass; its
// callbacks resolve the window through the app's NSWindow map.
var delegateClass objc.Class

func registerDelegateClass() {
	if delegateClass != 0 {
		return
	}
	cls, err := objc.RegisterClass("MullionWindowDelegate", objc.GetClass("NSObject"), nil, nil,
		[]objc.MethodDef{
			{
				Cmd: objc.RegisterName("windowShouldClose:"),
				Fn: func(self objc.ID, cmd objc.SEL, sender objc.ID) bool {
					if w := TheApp.windowFor(sender); w != nil {
						w.Src.Window(events.WinCloseReq)
					}
					// never close directly; the veto protocol decides
					return false
				},
			},
			{
				Cmd: objc.RegisterName("windowDidResize:"),
				Fn: func(self objc.ID, cmd objc.SEL, notif objc.ID) {
					if w := delegateWindow(notif); w != nil {
						w.refreshGeometry()
					}
				},
			},
			{
				Cmd: objc.RegisterName("windowDidMove:"),
				Fn: func(self objc.ID, cmd objc.SEL, notif objc.ID) {
					if w := delegateWindow(notif); w != nil {
						w.refreshGeometry()
					}
				},
			},
			{
				Cmd: objc.RegisterName("windowDidChangeBackingProperties:"),
				Fn: func(self objc.ID, cmd objc.SEL, notif objc.ID) {
					TheApp.Deque.Send(events.NewWindow(events.ScreenUpdate))
				},
			},
			{
				Cmd: objc.RegisterName("windowDidBecomeKey:"),
				Fn: func(self objc.ID, cmd objc.SEL, notif objc.ID) {
					if w := delegateWindow(notif); w != nil {
						w.SetFocused(true)
						w.Src.Window(events.WinFocus)
					}
				},
			},
			{
				Cmd: objc.RegisterName("windowDidResignKey:"),
				Fn: func(self objc.ID, cmd objc.SEL, notif objc.ID) {
					if w := delegateWindow(notif); w != nil {
						w.SetFocused(false)
						w.Src.CompositionCancel()
						w.Src.Window(events.WinFocusLost)
					}
				},
			},
			{
				Cmd: objc.RegisterName("windowDidMiniaturize:"),
				Fn: func(self objc.ID, cmd objc.SEL, notif objc.ID) {
					if w := delegateWindow(notif); w != nil {
						if w.SetStage(system.Hidden) == nil {
							w.Src.Window(events.WinHide)
						}
					}
				},
			},
			{
				Cmd: objc.RegisterName("windowDidDeminiaturize:"),
				Fn: func(self objc.ID, cmd objc.SEL, notif objc.ID) {
					if w := delegateWindow(notif); w != nil {
						if w.SetStage(system.Visible) == nil {
							w.Src.Window(events.WinShow)
						}
					}
				},
			},
		})
	if err != nil {
		logx.PrintlnError("cocoa: registering window delegate:", err)
		return
	}
	delegateClass = cls
}

func delegateWindow(notif objc.ID) *Window {
	nsw := objc.Send[objc.ID](notif, selObject)
	return TheApp.windowFor(nsw)
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
	}

	w := &Window{app: a}
	w.InitWindow(a.NewWinID(), opts, h, &a.Lp)
	w.SetSelf(w)

	var err error
	a.RunOnMainOrHere(func() {
		err = w.create(opts)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: cocoa: %v", system.ErrWindowCreation, err)
	}

	a.Mu.Lock()
	a.Windows = append(a.Windows, w)
	a.Mu.Unlock()

	w.SetStage(system.Mapped)
	h.Connected(w)
	w.refreshGeometry()
	if opts.Menu != nil {
		if merr := w.SetMenu(opts.Menu); merr != nil {
			logx.PrintlnWarn("cocoa: initial menu:", merr)
		}
	}
	if opts.InitiallyVisible {
		if serr := w.Show(); serr != nil {
			logx.PrintlnWarn("cocoa: showing new window:", serr)
		}
	}
	return w, nil
}

// RunOnMainOrHere runs f on the pump thread when the pump is live,
// directly otherwise (window creation before MainLoop starts, or a
// call already on the pump thread).
func (a *App) RunOnMainOrHere(f func()) {
	a.wmu.Lock()
	live := a.pumpLive
	a.wmu.Unlock()
	if live && !a.Lp.OnLoopThread() {
		a.RunOnMain(f)
		return
	}
	f()
}

func (w *Window) create(opts *system.NewWindowOptions) error {
	style := uint64(nsWindowStyleBorderless)
	if opts.ShowTitlebar {
		style = nsWindowStyleTitled | nsWindowStyleClosable | nsWindowStyleMiniaturize
		if opts.Resizable {
			style |= nsWindowStyleResizable
		}
	}

	frame := nsRect{
		Origin: nsPoint{X: float64(opts.Pos.X), Y: float64(opts.Pos.Y)},
		Size:   nsSize{W: float64(opts.Size.X), H: float64(opts.Size.Y)},
	}
	nsw := objc.ID(objc.GetClass("NSWindow")).Send(selAlloc)
	nsw = nsw.Send(selInitWithContentRect, frame, style, uint64(nsBackingStoreBuffered), false)
	if nsw == 0 {
		return fmt.Errorf("NSWindow init returned nil")
	}
	nsw.Send(selSetReleasedWhenClose, false)
	nsw.Send(selSetAcceptsMouseMoved, true)
	nsw.Send(selSetTitle, nsString(opts.Title))
	if opts.Pos == (image.Point{}) {
		nsw.Send(selCenter)
	}
	switch opts.Level {
	case system.LevelFloating:
		nsw.Send(selSetLevel, int64(nsFloatingWindowLevel))
	case system.LevelModal:
		nsw.Send(selSetLevel, int64(nsModalPanelLevel))
	case system.LevelTooltip:
		nsw.Send(selSetLevel, int64(nsPopUpMenuLevel))
	}
	if opts.MinSize != (image.Point{}) {
		nsw.Send(selSetContentMinSize, nsSize{W: float64(opts.MinSize.X), H: float64(opts.MinSize.Y)})
	}
	if opts.MaxSize != (image.Point{}) {
		nsw.Send(selSetContentMaxSize, nsSize{W: float64(opts.MaxSize.X), H: float64(opts.MaxSize.Y)})
	}

	if delegateClass != 0 {
		dlg := objc.ID(delegateClass).Send(selAlloc).Send(selInit)
		nsw.Send(selSetDelegate, dlg)
		w.delegate = dlg
	}

	w.NSWin = nsw
	w.NSView = nsw.Send(selContentView)

	a := w.app
	a.wmu.Lock()
	a.byNSWin[nsw] = w
	a.wmu.Unlock()
	return nil
}

// refreshGeometry reads the content view's logical and backing sizes
// and pushes them through UpdateGeometry.
func (w *Window) refreshGeometry() {
	if w.NSView == 0 {
		return
	}
	bounds := objc.Send[nsRect](w.NSView, selBounds)
	backing := objc.Send[nsRect](w.NSView, selConvertToBacking, bounds)
	frame := objc.Send[nsRect](w.NSWin, selFrame)
	// flip to top-left desktop coordinates against the primary screen
	var primaryH float64
	if len(w.app.Screens) > 0 {
		primaryH = float64(w.app.Screens[0].Geometry.Dy())
	}
	pos := image.Pt(int(frame.Origin.X), int(primaryH-(frame.Origin.Y+frame.Size.H)))
	pix := image.Pt(int(backing.Size.W), int(backing.Size.H))
	if pix == (image.Point{}) {
		pix = w.Size()
	}
	w.UpdateGeometry(pos, pix, w.app.Screens)
}

func (w *Window) SetTitle(title string) error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.Mu.Lock()
	w.Titl = title
	w.Mu.Unlock()
	w.NSWin.Send(selSetTitle, nsString(title))
	return nil
}

func (w *Window) Show() error {
	if err := w.Alive(); err != nil {
		return err
	}
	if w.Opts.Level == system.LevelTooltip {
		w.NSWin.Send(selOrderFront, objc.ID(0)) // no focus steal
	} else {
		w.NSWin.Send(selMakeKeyAndOrderFront, objc.ID(0))
	}
	if w.SetStage(system.Visible) == nil {
		w.Src.Window(events.WinShow)
	}
	return nil
}

func (w *Window) Hide() error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.NSWin.Send(selOrderOut, objc.ID(0))
	if w.SetStage(system.Hidden) == nil {
		w.Src.Window(events.WinHide)
	}
	return nil
}

func (w *Window) Raise() error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.NSWin.Send(selMakeKeyAndOrderFront, objc.ID(0))
	return nil
}

func (w *Window) Minimize() error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.NSWin.Send(selMiniaturize, objc.ID(0))
	return nil
}

// SetGeometry moves and resizes; zero components keep the current
// value. The size is logical points, matching the content size.
func (w *Window) SetGeometry(pos image.Point, size image.Point) error {
	if err := w.Alive(); err != nil {
		return err
	}
	if size != (image.Point{}) {
		w.NSWin.Send(selSetContentSize, nsSize{W: float64(size.X), H: float64(size.Y)})
	}
	if pos != (image.Point{}) {
		// top-left desktop coordinates; AppKit wants the frame's
		// top-left point in its flipped form directly
		w.NSWin.Send(selSetFrameTopLeft, w.flipPoint(pos))
	}
	w.refreshGeometry()
	return nil
}

func (w *Window) flipPoint(pos image.Point) nsPoint {
	var primaryH float64
	if len(w.app.Screens) > 0 {
		primaryH = float64(w.app.Screens[0].Geometry.Dy())
	}
	return nsPoint{X: float64(pos.X), Y: primaryH - float64(pos.Y)}
}

var cursorSelectors = map[system.Cursors]string{
	system.Arrow:      "arrowCursor",
	system.IBeam:      "IBeamCursor",
	system.Crosshair:  "crosshairCursor",
	system.Pointer:    "pointingHandCursor",
	system.NotAllowed: "operationNotAllowedCursor",
	system.ResizeEW:   "resizeLeftRightCursor",
	system.ResizeNS:   "resizeUpDownCursor",
	// AppKit has no public diagonal resize cursors
	system.ResizeNESW: "crosshairCursor",
	system.ResizeNWSE: "crosshairCursor",
}

func (w *Window) SetCursor(c system.Cursors) error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.Cur = c
	name, ok := cursorSelectors[c]
	if !ok {
		name = "arrowCursor"
	}
	cur := objc.ID(objc.GetClass("NSCursor")).Send(objc.RegisterName(name))
	if cur != 0 {
		cur.Send(selSet)
	}
	return nil
}

func (w *Window) Close() {
	w.DestroyClean(func() {
		a := w.app
		a.wmu.Lock()
		delete(a.byNSWin, w.NSWin)
		a.wmu.Unlock()
		w.NSWin.Send(selSetDelegate, objc.ID(0))
		w.NSWin.Send(selClose)
		if w.delegate != 0 {
			w.delegate.Send(selRelease)
			w.delegate = 0
		}
		w.NSWin.Send(selRelease)
		w.NSWin = 0
	})
	w.app.RemoveWindow(w)
}

func (w *Window) Native() (system.NativeSurface, error) {
	if err := w.Alive(); err != nil {
		return system.NativeSurface{}, err
	}
	return system.NativeSurface{
		Platform: system.MacOS,
		NSWindow: uintptr(w.NSWin),
		NSView:   uintptr(w.NSView),
	}, nil
}
