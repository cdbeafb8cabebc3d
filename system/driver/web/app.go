// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Package web implements the portable windowing API in the browser
// through WASM. The browser supplies the one window (a canvas element)
// and the event loop wake; DOM listeners feed the per-window source,
// and paint is driven by requestAnimationFrame.
package web

import (
	"image"
	"strconv"
	"strings"
	"syscall/js"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/base"
)

// CanvasID is the id of the canvas element used as the window surface.
const CanvasID = "app"

// TheApp is the single [system.App] for the web platform.
var TheApp = &App{AppSingle: base.NewAppSingle[*Window]()}

// App is the web implementation of [system.App].
type App struct {
	base.AppSingle[*Window]

	// UnderlyingPlatform is the OS the browser runs on, from the
	// user agent.
	UnderlyingPlatform system.Platforms
}

// Init wires the app to the browser. The system window (the canvas)
// already exists, so [system.OnSystemWindowCreated] is signaled
// immediately after listeners are attached.
func Init() error {
	a := TheApp
	a.App.Init()
	a.Lp.Lookup = a.LookupWindow
	a.Lp.OnScreenUpdate = a.RefreshScreen

	ua := js.Global().Get("navigator").Get("userAgent").String()
	a.UnderlyingPlatform = userAgentToOS(ua)
	a.RefreshScreen()
	a.addEventListeners()
	system.TheApp = a

	if system.OnSystemWindowCreated != nil {
		system.OnSystemWindowCreated <- struct{}{}
	}
	return nil
}

func (a *App) Platform() system.Platforms {
	return system.Web
}

// SystemPlatform returns the OS under the browser.
func (a *App) SystemPlatform() system.Platforms {
	return a.UnderlyingPlatform
}

func userAgentToOS(ua string) system.Platforms {
	lua := strings.ToLower(ua)
	switch {
	case strings.Contains(lua, "mac"):
		return system.MacOS
	case strings.Contains(lua, "win"):
		return system.Windows
	default:
		return system.LinuxX11
	}
}

// GetScreens re-reads the one browser screen.
func (a *App) GetScreens() {
	a.RefreshScreen()
}

// RefreshScreen re-reads the browser viewport and pixel ratio, resizes
// the canvas backing store, and re-resolves the window.
func (a *App) RefreshScreen() {
	g := js.Global()
	dpr := float32(g.Get("devicePixelRatio").Float())
	if dpr <= 0 {
		dpr = 1
	}
	iw, ih := g.Get("innerWidth").Int(), g.Get("innerHeight").Int()
	pix := image.Pt(ceilMul(iw, dpr), ceilMul(ih, dpr))

	a.Scrn.Name = "browser"
	a.Scrn.Geometry = image.Rectangle{Max: pix}
	a.Scrn.PixSize = pix
	a.Scrn.DevicePixelRatio = system.ScaleUniform(dpr)
	a.Scrn.PhysicalDPI = 96 * dpr

	canvas := g.Get("document").Call("getElementById", CanvasID)
	if canvas.Truthy() {
		canvas.Set("width", pix.X)
		canvas.Set("height", pix.Y)
		// style size uses the pixel size divided back by the ratio so
		// fractional ratios do not accumulate rounding blur
		style := canvas.Get("style")
		style.Set("width", cssPx(float32(pix.X)/dpr))
		style.Set("height", cssPx(float32(pix.Y)/dpr))
	}
	if w := a.Win; w != nil {
		w.UpdateGeometry(image.Point{}, pix, []*system.Screen{a.Scrn})
		w.markDirty(image.Rectangle{Max: pix})
	}
}

func ceilMul(v int, f float32) int {
	r := float32(v) * f
	i := int(r)
	if float32(i) < r {
		i++
	}
	return i
}

func cssPx(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32) + "px"
}

func (a *App) NewWindow(opts *system.NewWindowOptions, h system.Handler) (system.Window, error) {
	if h == nil {
		return nil, system.ErrWindowCreation
	}
	if opts == nil {
		opts = system.DefaultWindowOptions()
	}
	opts.Fixup()

	w := &Window{app: a}
	w.InitWindow(1, opts, h, &a.Lp)
	w.SetSelf(w)
	a.Mu.Lock()
	a.Win = w
	a.Mu.Unlock()

	w.SetStage(system.Mapped)
	h.Connected(w)
	if opts.Title != "" {
		js.Global().Get("document").Set("title", opts.Title)
	}
	a.RefreshScreen()
	w.SetStage(system.Visible)
	w.Src.Window(events.WinShow)
	w.SetFocused(true)
	w.Src.Window(events.WinFocus)
	w.startFrameLoop()
	return w, nil
}

// MainLoop runs the unified loop; browser callbacks feed the deque
// from the JS side and the wasm scheduler interleaves them.
func (a *App) MainLoop() error {
	defer close(a.MainDone)
	return a.Lp.Run()
}

func (a *App) Clipboard() system.Clipboard {
	return theClipboard
}

func (a *App) OpenURL(url string) {
	js.Global().Call("open", url)
}

func (a *App) DataDir() string {
	return "/home/me/.data"
}
