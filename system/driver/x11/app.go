// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x11 implements the portable windowing API on an X11 server
// through the XGB wire protocol bindings, with RandR for monitor
// metrics. Native events are read on a dedicated goroutine and fed
// through the app deque to the unified loop.
package x11

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/base"
)

// TheApp is the single [system.App] for the X11 platform.
var TheApp = &App{AppMulti: base.NewAppMulti[*Window]()}

// App is the X11 implementation of [system.App].
type App struct {
	base.AppMulti[*Window]

	// XU is the xgbutil connection wrapper.
	XU *xgbutil.XUtil

	// Conn is the underlying XGB connection.
	Conn *xgb.Conn

	// ScreenInfo is the X screen we are displaying on.
	ScreenInfo *xproto.ScreenInfo

	// ScaleFactor is the global scale from Xft.dpi, applied to every
	// monitor (X11 has no per-monitor scale).
	ScaleFactor float32

	// Atoms are the interned atoms used by the window protocol.
	Atoms struct {
		WMProtocols    xproto.Atom
		WMDeleteWindow xproto.Atom
		WMChangeState  xproto.Atom
		NetWMName      xproto.Atom
		UTF8String     xproto.Atom
		MotifWMHints   xproto.Atom
	}

	// Keyboard is the cached keycode translation state.
	Keyboard KeyboardMap
}

// Init connects to the X server and readies the app; it returns
// [system.ErrNoDisplay] (wrapped) when no server can be reached.
func Init() error {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("%w: x11: %v", system.ErrNoDisplay, err)
	}
	a := TheApp
	a.App.Init()
	a.Lp.Lookup = a.LookupWindow
	a.Lp.OnScreenUpdate = a.RefreshScreens
	a.XU = xu
	a.Conn = xu.Conn()
	a.ScreenInfo = xu.Screen()

	if err := a.internAtoms(); err != nil {
		return fmt.Errorf("%w: x11: %v", system.ErrNoDisplay, err)
	}
	a.ScaleFactor = a.readScaleFactor()
	if err := randr.Init(a.Conn); err != nil {
		logx.PrintlnWarn("x11: randr unavailable, using core screen:", err)
	}
	if err := a.Keyboard.Load(a.Conn); err != nil {
		return fmt.Errorf("%w: x11: keyboard mapping: %v", system.ErrNoDisplay, err)
	}
	a.GetScreens()
	a.selectRandrEvents()

	system.TheApp = a
	go a.eventReader()
	return nil
}

func (a *App) Platform() system.Platforms {
	return system.LinuxX11
}

func (a *App) internAtoms() error {
	var err error
	atm := func(name string) xproto.Atom {
		at, e := xprop.Atm(a.XU, name)
		if e != nil && err == nil {
			err = e
		}
		return at
	}
	a.Atoms.WMProtocols = atm("WM_PROTOCOLS")
	a.Atoms.WMDeleteWindow = atm("WM_DELETE_WINDOW")
	a.Atoms.WMChangeState = atm("WM_CHANGE_STATE")
	a.Atoms.NetWMName = atm("_NET_WM_NAME")
	a.Atoms.UTF8String = atm("UTF8_STRING")
	a.Atoms.MotifWMHints = atm("_MOTIF_WM_HINTS")
	return err
}

// readScaleFactor derives the global scale from the Xft.dpi entry of
// the root RESOURCE_MANAGER property, defaulting to 1.
func (a *App) readScaleFactor() float32 {
	prop, err := xprop.GetProperty(a.XU, a.XU.RootWin(), "RESOURCE_MANAGER")
	if err != nil || prop == nil {
		return 1
	}
	return ParseXftDPI(string(prop.Value))
}

// ParseXftDPI extracts Xft.dpi from X resource database text and
// converts it to a scale factor; 1 if absent or malformed.
func ParseXftDPI(resources string) float32 {
	for _, line := range strings.Split(resources, "\n") {
		name, val, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) != "Xft.dpi" {
			continue
		}
		dpi, err := strconv.ParseFloat(strings.TrimSpace(val), 32)
		if err != nil {
			return 1
		}
		return system.DPIToScale(float32(dpi))
	}
	return 1
}

// GetScreens queries RandR CRTCs for the monitor layout, falling back
// to the core screen if RandR is unavailable.
func (a *App) GetScreens() {
	scale := system.ScaleUniform(a.ScaleFactor)
	root := a.XU.RootWin()
	res, err := randr.GetScreenResources(a.Conn, root).Reply()
	if err != nil {
		a.Screens = []*system.Screen{a.coreScreen(scale)}
		return
	}
	var screens []*system.Screen
	for i, crtc := range res.Crtcs {
		ci, err := randr.GetCrtcInfo(a.Conn, crtc, res.ConfigTimestamp).Reply()
		if err != nil || ci.Width == 0 || ci.Height == 0 || len(ci.Outputs) == 0 {
			continue
		}
		name := fmt.Sprintf("screen-%d", i)
		var physMM [2]int
		if oi, err := randr.GetOutputInfo(a.Conn, ci.Outputs[0], res.ConfigTimestamp).Reply(); err == nil {
			name = string(oi.Name)
			physMM[0] = int(oi.MmWidth)
			physMM[1] = int(oi.MmHeight)
		}
		sc := &system.Screen{
			ScreenNumber: len(screens),
			Name:         name,
			Geometry: image.Rect(int(ci.X), int(ci.Y),
				int(ci.X)+int(ci.Width), int(ci.Y)+int(ci.Height)),
			PixSize:          image.Pt(int(ci.Width), int(ci.Height)),
			PhysicalSize:     image.Pt(physMM[0], physMM[1]),
			DevicePixelRatio: scale,
			Depth:            int(a.ScreenInfo.RootDepth),
		}
		if physMM[0] > 0 {
			sc.PhysicalDPI = 25.4 * float32(sc.PixSize.X) / float32(physMM[0])
		}
		screens = append(screens, sc)
	}
	if len(screens) == 0 {
		screens = []*system.Screen{a.coreScreen(scale)}
	}
	a.Screens = screens
}

func (a *App) coreScreen(scale system.Scale) *system.Screen {
	si := a.ScreenInfo
	return &system.Screen{
		Name:             "default",
		Geometry:         image.Rect(0, 0, int(si.WidthInPixels), int(si.HeightInPixels)),
		PixSize:          image.Pt(int(si.WidthInPixels), int(si.HeightInPixels)),
		PhysicalSize:     image.Pt(int(si.WidthInMillimeters), int(si.HeightInMillimeters)),
		DevicePixelRatio: scale,
		Depth:            int(si.RootDepth),
	}
}

func (a *App) selectRandrEvents() {
	err := randr.SelectInputChecked(a.Conn, a.XU.RootWin(),
		randr.NotifyMaskScreenChange|randr.NotifyMaskCrtcChange).Check()
	if err != nil {
		logx.PrintlnDebug("x11: randr event selection failed:", err)
	}
}

func (a *App) MainLoop() error {
	defer close(a.MainDone)
	err := a.Lp.Run()
	a.Conn.Close()
	return err
}
