// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package wayland

import (
	"fmt"
	"image"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/base"
)

// Window is the Wayland implementation of [system.Window]: a
// wl_surface with an xdg_toplevel role.
type Window struct {
	base.WindowBase

	// surface, xdgSurface, and toplevel are the protocol objects.
	surface    uint32
	xdgSurface uint32
	toplevel   uint32

	// bufferScale is the integer scale sent to the compositor.
	bufferScale int32

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
	}

	w := &Window{app: a, bufferScale: 1}
	w.InitWindow(a.NewWinID(), opts, h, &a.Lp)
	w.SetSelf(w)

	if err := w.create(opts); err != nil {
		return nil, fmt.Errorf("%w: wayland: %v", system.ErrWindowCreation, err)
	}

	a.Mu.Lock()
	a.Windows = append(a.Windows, w)
	a.Mu.Unlock()

	w.SetStage(system.Mapped)
	h.Connected(w)
	w.rescale()
	// mapping happens at the first xdg_surface.configure; the
	// compositor decides visibility, so Show is a commit
	if opts.InitiallyVisible {
		if err := w.Show(); err != nil {
			logx.PrintlnWarn("wayland: committing new window:", err)
		}
	}
	return w, nil
}

func (w *Window) create(opts *system.NewWindowOptions) error {
	a := w.app
	w.surface = a.Conn.NewID()
	if err := a.Conn.Request(a.compositor, opCompositorCreateSurface,
		(&argWriter{}).Uint(w.surface)); err != nil {
		return err
	}
	a.setHandler(w.surface, w.surfaceEvent)

	w.xdgSurface = a.Conn.NewID()
	if err := a.Conn.Request(a.wmBase, opWmBaseGetXdgSurface,
		(&argWriter{}).Uint(w.xdgSurface).Uint(w.surface)); err != nil {
		return err
	}
	a.setHandler(w.xdgSurface, w.xdgSurfaceEvent)

	w.toplevel = a.Conn.NewID()
	if err := a.Conn.Request(w.xdgSurface, opXdgSurfaceGetToplevel,
		(&argWriter{}).Uint(w.toplevel)); err != nil {
		return err
	}
	a.setHandler(w.toplevel, w.toplevelEvent)

	if err := a.Conn.Request(w.toplevel, opToplevelSetTitle,
		(&argWriter{}).String(opts.Title)); err != nil {
		return err
	}
	appID := system.TheApp.Name()
	if appID == "" {
		appID = "mullion"
	}
	if err := a.Conn.Request(w.toplevel, opToplevelSetAppID,
		(&argWriter{}).String(appID)); err != nil {
		return err
	}
	if !opts.Resizable {
		sz := opts.Size
		for _, op := range []uint16{opToplevelSetMinSize, opToplevelSetMaxSize} {
			if err := a.Conn.Request(w.toplevel, op,
				(&argWriter{}).Int(int32(sz.X)).Int(int32(sz.Y))); err != nil {
				return err
			}
		}
	} else {
		if opts.MinSize != (image.Point{}) {
			if err := a.Conn.Request(w.toplevel, opToplevelSetMinSize,
				(&argWriter{}).Int(int32(opts.MinSize.X)).Int(int32(opts.MinSize.Y))); err != nil {
				return err
			}
		}
		if opts.MaxSize != (image.Point{}) {
			if err := a.Conn.Request(w.toplevel, opToplevelSetMaxSize,
				(&argWriter{}).Int(int32(opts.MaxSize.X)).Int(int32(opts.MaxSize.Y))); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Window) commit() error {
	return w.app.Conn.Request(w.surface, opSurfaceCommit, nil)
}

func (w *Window) surfaceEvent(m *message) {
	switch m.Opcode {
	case evSurfaceEnter:
		// entering an output re-resolves the scale
		w.rescale()
	}
}

func (w *Window) xdgSurfaceEvent(m *message) {
	if m.Opcode != evXdgSurfaceConfigure {
		return
	}
	serial := m.Uint()
	if err := w.app.Conn.Request(w.xdgSurface, opXdgSurfaceAckConfigure,
		(&argWriter{}).Uint(serial)); err != nil {
		logx.PrintlnWarn("wayland: ack_configure:", err)
		return
	}
	if w.Stage() == system.Mapped {
		w.SetStage(system.Visible)
		w.Src.Window(events.WinShow)
	}
	// the surface must be recommitted for the configure to land
	if err := w.commit(); err != nil {
		logx.PrintlnWarn("wayland: commit:", err)
	}
	w.Src.WindowPaint(image.Rectangle{Max: w.Size()})
}

func (w *Window) toplevelEvent(m *message) {
	switch m.Opcode {
	case evToplevelConfigure:
		wd, ht := int(m.Int()), int(m.Int())
		if wd == 0 || ht == 0 {
			// compositor leaves the size to us; keep what we have
			return
		}
		// configure sizes are in logical coordinates
		scale := w.Scale()
		w.UpdateGeometry(w.Position(), scale.ToPhysical(image.Pt(wd, ht)), w.app.Screens)
	case evToplevelClose:
		w.Src.Window(events.WinCloseReq)
	}
}

// rescale re-resolves the window's screen and tells the compositor
// the buffer scale.
func (w *Window) rescale() {
	a := w.app
	sc := a.Screen(0)
	if sc == nil {
		return
	}
	newScale := int32(sc.Scale().X)
	if newScale < 1 {
		newScale = 1
	}
	if newScale != w.bufferScale {
		w.bufferScale = newScale
		if err := a.Conn.Request(w.surface, opSurfaceSetBufferScale,
			(&argWriter{}).Int(newScale)); err != nil {
			logx.PrintlnDebug("wayland: set_buffer_scale:", err)
		}
	}
	w.UpdateGeometry(w.Position(), sc.Scale().ToPhysical(w.WinSize()), a.Screens)
}

func (w *Window) SetTitle(title string) error {
	if err := w.Alive(); err != nil {
		return err
	}
	w.Mu.Lock()
	w.Titl = title
	w.Mu.Unlock()
	return w.app.Conn.Request(w.toplevel, opToplevelSetTitle,
		(&argWriter{}).String(title))
}

func (w *Window) Show() error {
	if err := w.Alive(); err != nil {
		return err
	}
	return w.commit()
}

// Hide is not expressible for an xdg_toplevel short of destroying
// the role; minimize is the nearest compositor concept.
func (w *Window) Hide() error {
	return w.Minimize()
}

func (w *Window) Raise() error {
	if err := w.Alive(); err != nil {
		return err
	}
	// no raise request exists in xdg-shell; activation is the
	// compositor's call
	return nil
}

func (w *Window) Minimize() error {
	if err := w.Alive(); err != nil {
		return err
	}
	if err := w.app.Conn.Request(w.toplevel, opToplevelSetMinimized, nil); err != nil {
		return err
	}
	w.SetStage(system.Hidden)
	w.Src.Window(events.WinHide)
	return nil
}

// SetGeometry can only change the size; Wayland clients do not
// position their own windows.
func (w *Window) SetGeometry(pos image.Point, size image.Point) error {
	if err := w.Alive(); err != nil {
		return err
	}
	if size == (image.Point{}) {
		return nil
	}
	w.UpdateGeometry(w.Position(), w.Scale().ToPhysical(size), w.app.Screens)
	return w.commit()
}

// SetCursor needs a cursor theme buffer; the default compositor
// cursor is kept instead.
func (w *Window) SetCursor(c system.Cursors) error {
	return w.Alive()
}

func (w *Window) Close() {
	w.DestroyClean(func() {
		a := w.app
		if err := a.Conn.Request(w.toplevel, opToplevelDestroy, nil); err == nil {
			_ = a.Conn.Request(w.xdgSurface, opXdgSurfaceDestroy, nil)
			_ = a.Conn.Request(w.surface, opSurfaceDestroy, nil)
		}
		a.dropHandler(w.toplevel)
		a.dropHandler(w.xdgSurface)
		a.dropHandler(w.surface)
	})
	w.app.RemoveWindow(w)
}

func (w *Window) Native() (system.NativeSurface, error) {
	if err := w.Alive(); err != nil {
		return system.NativeSurface{}, err
	}
	return system.NativeSurface{
		Platform:     system.LinuxWayland,
		WlSurface:    w.surface,
		WlXdgSurface: w.xdgSurface,
		WlDisplayFD:  w.app.Conn.FD(),
	}, nil
}
