// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/base"
)

// Window is the X11 implementation of [system.Window].
type Window struct {
	base.WindowBase

	// XWin is the native X window resource id.
	XWin xproto.Window

	app *App
}

const windowEventMask = xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskExposure |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskFocusChange

func (a *App) NewWindow(opts *system.NewWindowOptions, h system.Handler) (system.Window, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil handler", system.ErrWindowCreation)
	}
	if opts == nil {
		opts = system.DefaultWindowOptions()
	}
	opts.Fixup()
	if wg, ok := system.SavedGeometry(opts.Title); ok {
		opts.Pos, opts.Size = wg.Pos, wg.Size
	}

	w := &Window{app: a}
	w.InitWindow(a.NewWinID(), opts, h, &a.Lp)
	w.SetSelf(w)

	scale := system.ScaleUniform(a.ScaleFactor)
	pix := scale.ToPhysical(opts.Size)
	if err := w.create(opts, pix); err != nil {
		return nil, fmt.Errorf("%w: x11: %v", system.ErrWindowCreation, err)
	}

	a.Mu.Lock()
	a.Windows = append(a.Windows, w)
	a.Mu.Unlock()

	w.SetStage(system.Mapped)
	h.Connected(w)
	w.UpdateGeometry(opts.Pos, pix, a.Screens)
	if opts.InitiallyVisible {
		if err := w.Show(); err != nil {
			logx.PrintlnWarn("x11: mapping new window:", err)
		}
	}
	w.Src.WindowPaint(image.Rectangle{Max: pix})
	return w, nil
}

func (w *Window) create(opts *system.NewWindowOptions, pix image.Point) error {
	a := w.app
	xw, err := xproto.NewWindowId(a.Conn)
	if err != nil {
		return err
	}
	w.XWin = xw
	si := a.ScreenInfo
	err = xproto.CreateWindowChecked(a.Conn, si.RootDepth, xw, si.Root,
		int16(opts.Pos.X), int16(opts.Pos.Y), uint16(pix.X), uint16(pix.Y), 0,
		xproto.WindowClassInputOutput, si.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{si.WhitePixel, windowEventMask}).Check()
	if err != nil {
		return err
	}
	if err := icccm.WmProtocolsSet(a.XU, xw, []string{"WM_DELETE_WINDOW"}); err != nil {
		logx.PrintlnDebug("x11: setting WM_DELETE_WINDOW:", err)
	}
	w.setTitleNative(opts.Title)
	if !opts.ShowTitlebar {
		w.setUndecorated()
	}
	switch opts.Level {
	case system.LevelFloating:
		_ = ewmh.WmWindowTypeSet(a.XU, xw, []string{"_NET_WM_WINDOW_TYPE_UTILITY"})
	case system.LevelTooltip:
		_ = ewmh.WmWindowTypeSet(a.XU, xw, []string{"_NET_WM_WINDOW_TYPE_TOOLTIP"})
	case system.LevelModal:
		_ = ewmh.WmWindowTypeSet(a.XU, xw, []string{"_NET_WM_WINDOW_TYPE_DIALOG"})
	}
	if !opts.Resizable || opts.MinSize != (image.Point{}) || opts.MaxSize != (image.Point{}) {
		w.setSizeHints(opts, pix)
	}
	return nil
}

// setSizeHints applies WM_NORMAL_HINTS: fixed size for
// non-resizable windows, min and max otherwise.
func (w *Window) setSizeHints(opts *system.NewWindowOptions, pix image.Point) {
	hints := icccm.NormalHints{}
	if !opts.Resizable {
		hints.Flags = icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize
		hints.MinWidth, hints.MaxWidth = uint(pix.X), uint(pix.X)
		hints.MinHeight, hints.MaxHeight = uint(pix.Y), uint(pix.Y)
	} else {
		scale := w.Scale()
		if opts.MinSize != (image.Point{}) {
			mn := scale.ToPhysical(opts.MinSize)
			hints.Flags |= icccm.SizeHintPMinSize
			hints.MinWidth, hints.MinHeight = uint(mn.X), uint(mn.Y)
		}
		if opts.MaxSize != (image.Point{}) {
			mx := scale.ToPhysical(opts.MaxSize)
			hints.Flags |= icccm.SizeHintPMaxSize
			hints.MaxWidth, hints.MaxHeight = uint(mx.X), uint(mx.Y)
		}
	}
	if err := icccm.WmNormalHintsSet(w.app.XU, w.XWin, &hints); err != nil {
		logx.PrintlnDebug("x11: setting size hints:", err)
	}
}

func (w *Window) setUndecorated() {
	// Motif hints: flags=2 (decorations), decorations=0
	data := []uint32{2, 0, 0, 0, 0}
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		xgb.Put32(buf[4*i:], v)
	}
	xproto.ChangeProperty(w.app.Conn, xproto.PropModeReplace, w.XWin,
		w.app.Atoms.MotifWMHints, w.app.Atoms.MotifWMHints, 32,
		uint32(len(data)), buf)
}

func (w *Window) setTitleNative(title string) {
	a := w.app
	if err := ewmh.WmNameSet(a.XU, w.XWin, title); err != nil {
		logx.PrintlnDebug("x11: setting _NET_WM_NAME:", err)
	}
	xproto.ChangeProperty(a.Conn, xproto.PropModeReplace, w.XWin,
		xproto.AtomWmName, xproto.AtomString, 8,
		uint32(len(title)), []byte(title))
}

// toLogical converts window-relative pixel coordinates to logical.
func (w *Window) toLogical(x, y int) image.Point {
	return w.Scale().ToLogical(image.Pt(x, y))
}

// configure handles a ConfigureNotify: new position or size from the
// server, in pixels.
func (w *Window) configure(x, y, width, height int) {
	pix := image.Pt(width, height)
	if pix == w.Size() && image.Pt(x, y) == w.Position() {
		return
	}
	w.UpdateGeometry(image.Pt(x, y), pix, w.app.Screens)
}

func (w *Window) SetTitle(title string) error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.Mu.Lock()
	w.Titl = title
	w.Mu.Unlock()
	w.setTitleNative(title)
	return nil
}

func (w *Window) Show() error {
	if err := w.Alive(); err != nil {
		return err
	}
	// stage moves on MapNotify
	return xproto.MapWindowChecked(w.app.Conn, w.XWin).Check()
}

func (w *Window) Hide() error {
	if err := w.Alive(); err != nil {
		return err
	}
	return xproto.UnmapWindowChecked(w.app.Conn, w.XWin).Check()
}

func (w *Window) Raise() error {
	if err := w.Alive(); err != nil {
		return err
	}
	if w.Stage() == system.Hidden {
		if err := w.Show(); err != nil {
			return err
		}
	}
	return xproto.ConfigureWindowChecked(w.app.Conn, w.XWin,
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove}).Check()
}

func (w *Window) Minimize() error {
	if err := w.Alive(); err != nil {
		return err
	}
	// iconify per ICCCM 4.1.4: WM_CHANGE_STATE client message
	a := w.app
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w.XWin,
		Type:   a.Atoms.WMChangeState,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{icccm.StateIconic, 0, 0, 0, 0}),
	}
	return xproto.SendEventChecked(a.Conn, false, a.ScreenInfo.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes())).Check()
}

func (w *Window) SetGeometry(pos image.Point, size image.Point) error {
	if err := w.Alive(); err != nil {
		return err
	}
	if size == (image.Point{}) {
		size = w.WinSize()
	}
	if pos == (image.Point{}) {
		pos = w.Position()
	}
	pix := w.Scale().ToPhysical(size)
	return xproto.ConfigureWindowChecked(w.app.Conn, w.XWin,
		xproto.ConfigWindowX|xproto.ConfigWindowY|
			xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(pos.X), uint32(pos.Y), uint32(pix.X), uint32(pix.Y)}).Check()
}

func (w *Window) SetCursor(c system.Cursors) error {
	if err := w.Alive(); err != nil {
		return err
	}
	cur, err := w.app.glyphCursor(c)
	if err != nil {
		return err
	}
	return xproto.ChangeWindowAttributesChecked(w.app.Conn, w.XWin,
		xproto.CwCursor, []uint32{uint32(cur)}).Check()
}

func (w *Window) Close() {
	w.DestroyClean(func() {
		xproto.DestroyWindow(w.app.Conn, w.XWin)
	})
	w.app.RemoveWindow(w)
}

func (w *Window) Native() (system.NativeSurface, error) {
	if err := w.Alive(); err != nil {
		return system.NativeSurface{}, err
	}
	return system.NativeSurface{
		Platform: system.LinuxX11,
		XWindow:  uint32(w.XWin),
		XScreen:  0,
	}, nil
}
