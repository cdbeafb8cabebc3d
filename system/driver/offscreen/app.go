// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a headless backend with no display
// system dependencies, for testing and batch rendering. It is a full
// multi-window implementation of the portable API: windows have
// stages, geometry, and scales, and the unified loop runs exactly as
// on a real backend.
package offscreen

import (
	"fmt"
	"image"

	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/base"
)

// TheApp is the single [system.App] for the offscreen platform.
var TheApp = &App{AppMulti: base.NewAppMulti[*Window]()}

// App is the offscreen implementation of [system.App].
type App struct {
	base.AppMulti[*Window]
}

// Init readies the app and installs it as [system.TheApp].
func Init() {
	TheApp.App.Init()
	TheApp.Lp.Lookup = TheApp.LookupWindow
	TheApp.GetScreens()
	system.TheApp = TheApp
}

func (a *App) Platform() system.Platforms {
	return system.Offscreen
}

func (a *App) GetScreens() {
	if len(a.Screens) > 0 {
		return
	}
	sc := &system.Screen{
		Name:             "offscreen",
		Geometry:         image.Rect(0, 0, 1920, 1080),
		PixSize:          image.Pt(1920, 1080),
		DevicePixelRatio: system.ScaleUniform(1),
		Depth:            32,
	}
	a.Screens = []*system.Screen{sc}
}

// SetScreens replaces the simulated monitor layout, for tests that
// exercise scale resolution. Call before creating windows.
func (a *App) SetScreens(scs ...*system.Screen) {
	a.Screens = scs
}

func (a *App) NewWindow(opts *system.NewWindowOptions, h system.Handler) (system.Window, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil handler", system.ErrWindowCreation)
	}
	if opts == nil {
		opts = system.DefaultWindowOptions()
	}
	opts.Fixup()
	w := &Window{}
	w.InitWindow(a.NewWinID(), opts, h, &a.Lp)
	w.SetSelf(w)

	a.Mu.Lock()
	a.Windows = append(a.Windows, w)
	a.Mu.Unlock()

	w.SetStage(system.Mapped)
	h.Connected(w)

	scrn := system.ScreenForRect(a.Screens, image.Rectangle{Min: opts.Pos, Max: opts.Pos.Add(opts.Size)})
	pix := opts.Size
	if scrn != nil {
		pix = scrn.Scale().ToPhysical(opts.Size)
	}
	w.UpdateGeometry(opts.Pos, pix, a.Screens)
	if opts.InitiallyVisible {
		w.Show()
	}
	// first paint always covers the full surface, after the resize
	w.RequestRedraw(image.Rectangle{})
	return w, nil
}

func (a *App) MainLoop() error {
	defer close(a.MainDone)
	return a.Lp.Run()
}
