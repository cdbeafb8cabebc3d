// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

// Package cocoa implements the portable windowing API on AppKit,
// reached through the Objective-C runtime with purego; no cgo. Like
// win32 it is a pump backend: MainLoop blocks in nextEventMatchingMask
// and runs a loop step after each drain, with a posted
// application-defined event as the wake.
package cocoa

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/ebitengine/purego/objc"

	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/base"
)

// TheApp is the single [system.App] for the macOS platform.
var TheApp = &App{AppMulti: base.NewAppMulti[*Window]()}

// App is the Cocoa implementation of [system.App].
type App struct {
	base.AppMulti[*Window]

	// NSApp is the shared NSApplication.
	NSApp objc.ID

	wmu      sync.Mutex
	byNSWin  map[objc.ID]*Window
	pumpLive bool
}

// Init bootstraps NSApplication. Must run on the main OS thread, which
// Go guarantees for the first goroutine when main calls it directly.
func Init() error {
	if err := ensureRuntime(); err != nil {
		return fmt.Errorf("%w: cocoa: %v", system.ErrNoDisplay, err)
	}
	a := TheApp
	a.App.Init()
	a.Lp.Lookup = a.LookupWindow
	a.Lp.OnScreenUpdate = a.RefreshScreens
	a.Lp.WakeHook = a.wakePump
	a.WakeMainFunc = a.wakePump
	a.byNSWin = map[objc.ID]*Window{}

	app := objc.ID(objc.GetClass("NSApplication")).Send(selSharedApplication)
	if app == 0 {
		return fmt.Errorf("%w: cocoa: no NSApplication", system.ErrNoDisplay)
	}
	app.Send(selSetActivationPolicy, nsActivationPolicyRegular)
	app.Send(selFinishLaunching)
	app.Send(selActivate, true)
	a.NSApp = app

	registerDelegateClass()
	registerMenuTargetClass()
	a.GetScreens()
	system.TheApp = a
	return nil
}

func (a *App) Platform() system.Platforms {
	return system.MacOS
}

// wakePump posts an application-defined event so a blocked
// nextEventMatchingMask returns. Safe from any thread.
func (a *App) wakePump() {
	a.wmu.Lock()
	live := a.pumpLive
	a.wmu.Unlock()
	if !live {
		return
	}
	ev := objc.ID(objc.GetClass("NSEvent")).Send(selOtherEvent,
		uint64(nsEventTypeAppDefined), nsPoint{}, uint64(0), float64(0),
		int64(0), objc.ID(0), int16(0), int64(0), int64(0))
	if ev != 0 {
		a.NSApp.Send(selPostEvent, ev, true)
	}
}

func (a *App) windowFor(nsw objc.ID) *Window {
	a.wmu.Lock()
	defer a.wmu.Unlock()
	return a.byNSWin[nsw]
}

// GetScreens reads the NSScreen list. The primary screen anchors the
// top-left coordinate flip for the rest.
func (a *App) GetScreens() {
	arr := objc.ID(objc.GetClass("NSScreen")).Send(selScreens)
	if arr == 0 {
		a.Screens = []*system.Screen{{Name: "main", DevicePixelRatio: system.ScaleUniform(1)}}
		return
	}
	n := int(objc.Send[uint64](arr, selCount))
	var primaryH float64
	var screens []*system.Screen
	for i := 0; i < n; i++ {
		scr := objc.Send[objc.ID](arr, selObjectAtIndex, uint64(i))
		frame := objc.Send[nsRect](scr, selFrame)
		if i == 0 {
			primaryH = frame.Size.H
		}
		scale := objc.Send[float64](scr, selBackingScaleFactor)
		if scale <= 0 {
			scale = 1
		}
		// flip from bottom-left to top-left desktop coordinates
		top := primaryH - (frame.Origin.Y + frame.Size.H)
		geom := image.Rect(int(frame.Origin.X), int(top),
			int(frame.Origin.X+frame.Size.W), int(top+frame.Size.H))
		sc := &system.Screen{
			ScreenNumber:     i,
			Name:             nsStringToGo(objc.Send[objc.ID](scr, selLocalizedName)),
			Geometry:         geom,
			PixSize:          image.Pt(int(frame.Size.W*scale), int(frame.Size.H*scale)),
			PhysicalDPI:      96 * float32(scale),
			DevicePixelRatio: system.ScaleUniform(float32(scale)),
		}
		screens = append(screens, sc)
	}
	if len(screens) == 0 {
		screens = []*system.Screen{{Name: "main", DevicePixelRatio: system.ScaleUniform(1)}}
	}
	a.Screens = screens
}

// RefreshScreens re-reads screens and re-resolves every window.
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

// MainLoop pumps AppKit events on the locked main thread.
func (a *App) MainLoop() error {
	runtime.LockOSThread()
	a.wmu.Lock()
	a.pumpLive = true
	a.wmu.Unlock()
	defer close(a.MainDone)
	defer func() { system.HandleRecover(recover()) }()

	dateClass := objc.ID(objc.GetClass("NSDate"))
	for {
		if a.Lp.Quitting() {
			return nil
		}
		until := dateClass.Send(selDistantFuture)
		if d, ok := a.Lp.NextTimer(); ok {
			secs := d.Seconds()
			if secs < 0 {
				secs = 0
			}
			until = dateClass.Send(selDateWithInterval, secs)
		}
		ev := objc.Send[objc.ID](a.NSApp, selNextEvent,
			nsEventMaskAny, until, objc.ID(cfDefaultMode), true)
		for ev != 0 {
			a.handleEvent(ev)
			// drain whatever else is pending without blocking
			ev = objc.Send[objc.ID](a.NSApp, selNextEvent,
				nsEventMaskAny, objc.ID(0), objc.ID(cfDefaultMode), true)
		}
		a.Lp.Step()
	}
}

func (a *App) Clipboard() system.Clipboard {
	return theClipboard
}
