// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

// Package wayland implements the portable windowing API as a direct
// Wayland client: the core and xdg-shell protocols are spoken over
// the compositor socket without a C library in between. Events are
// read on a dedicated goroutine and fed through the app deque to the
// unified loop.
package wayland

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
	"github.com/go-mullion/mullion/system/driver/base"
)

// TheApp is the single [system.App] for the Wayland platform.
var TheApp = &App{AppMulti: base.NewAppMulti[*Window]()}

// App is the Wayland implementation of [system.App].
type App struct {
	base.AppMulti[*Window]

	// Conn is the compositor connection.
	Conn *Conn

	// object ids bound from the registry
	registry   uint32
	compositor uint32
	wmBase     uint32
	seat       uint32

	// handlers dispatches compositor events by object id.
	hmu      sync.Mutex
	handlers map[uint32]func(*message)

	// outputs tracks monitors by wl_output object id.
	outputs map[uint32]*output

	// input is the seat state.
	input inputState
}

type output struct {
	id      uint32
	screen  system.Screen
	pending system.Screen
}

// Init connects to the compositor and binds the globals; it returns
// [system.ErrNoDisplay] (wrapped) when there is no compositor, so the
// Linux driver can fall back to X11.
func Init() error {
	conn, err := Dial()
	if err != nil {
		return fmt.Errorf("%w: wayland: %v", system.ErrNoDisplay, err)
	}
	a := TheApp
	a.App.Init()
	a.Lp.Lookup = a.LookupWindow
	a.Lp.OnScreenUpdate = a.RefreshScreens
	a.Conn = conn
	a.handlers = map[uint32]func(*message){}
	a.outputs = map[uint32]*output{}
	a.input.init(a)

	if err := a.bindGlobals(); err != nil {
		conn.Close()
		return fmt.Errorf("%w: wayland: %v", system.ErrNoDisplay, err)
	}
	a.GetScreens()
	system.TheApp = a
	go a.eventReader()
	return nil
}

func (a *App) Platform() system.Platforms {
	return system.LinuxWayland
}

// setHandler installs the event dispatcher for an object id.
func (a *App) setHandler(id uint32, fn func(*message)) {
	a.hmu.Lock()
	a.handlers[id] = fn
	a.hmu.Unlock()
}

func (a *App) dropHandler(id uint32) {
	a.hmu.Lock()
	delete(a.handlers, id)
	a.hmu.Unlock()
}

// roundTrip issues wl_display.sync and processes events until the
// callback fires, so all effects of earlier requests are visible.
// Only valid before the reader goroutine starts.
func (a *App) roundTrip() error {
	cb := a.Conn.NewID()
	done := false
	a.setHandler(cb, func(m *message) {
		if m.Opcode == evCallbackDone {
			done = true
		}
	})
	defer a.dropHandler(cb)
	if err := a.Conn.Request(displayID, opDisplaySync, (&argWriter{}).Uint(cb)); err != nil {
		return err
	}
	for !done {
		m, err := a.Conn.ReadMessage()
		if err != nil {
			return err
		}
		a.dispatch(m)
	}
	return nil
}

// bindGlobals runs the registry handshake and binds the interfaces
// we need.
func (a *App) bindGlobals() error {
	a.registry = a.Conn.NewID()
	a.setHandler(displayID, a.displayEvent)
	a.setHandler(a.registry, a.registryEvent)
	err := a.Conn.Request(displayID, opDisplayGetRegistry,
		(&argWriter{}).Uint(a.registry))
	if err != nil {
		return err
	}
	// one round trip to collect globals, one for their initial events
	if err := a.roundTrip(); err != nil {
		return err
	}
	if err := a.roundTrip(); err != nil {
		return err
	}
	if a.compositor == 0 {
		return errors.New("compositor has no wl_compositor")
	}
	if a.wmBase == 0 {
		return errors.New("compositor has no xdg_wm_base")
	}
	return nil
}

// bind issues wl_registry.bind for a global.
func (a *App) bind(name uint32, iface string, version uint32) uint32 {
	id := a.Conn.NewID()
	err := a.Conn.Request(a.registry, opRegistryBind,
		(&argWriter{}).Uint(name).String(iface).Uint(version).Uint(id))
	if err != nil {
		logx.PrintlnError("wayland: binding "+iface+":", err)
		return 0
	}
	return id
}

func (a *App) displayEvent(m *message) {
	switch m.Opcode {
	case evDisplayError:
		obj := m.Uint()
		code := m.Uint()
		msg := m.String()
		logx.PrintlnError(fmt.Sprintf("wayland: protocol error on object %d (code %d): %s", obj, code, msg))
		a.Lp.Break(fmt.Errorf("%w: wayland protocol error: %s", system.ErrLoopBroken, msg))
	case evDisplayDeleteID:
		a.dropHandler(m.Uint())
	}
}

func (a *App) registryEvent(m *message) {
	switch m.Opcode {
	case evRegistryGlobal:
		name := m.Uint()
		iface := m.String()
		version := m.Uint()
		switch iface {
		case "wl_compositor":
			a.compositor = a.bind(name, iface, min(version, 4))
		case "xdg_wm_base":
			a.wmBase = a.bind(name, iface, min(version, 2))
			a.setHandler(a.wmBase, a.wmBaseEvent)
		case "wl_seat":
			a.seat = a.bind(name, iface, min(version, 5))
			a.setHandler(a.seat, a.input.seatEvent)
		case "wl_output":
			id := a.bind(name, iface, min(version, 2))
			out := &output{id: id}
			out.pending.DevicePixelRatio = system.ScaleUniform(1)
			a.outputs[id] = out
			a.setHandler(id, func(m *message) { a.outputEvent(out, m) })
		}
	case evRegistryGlobalRemove:
		// globals we bound stay valid until delete_id
	}
}

func (a *App) wmBaseEvent(m *message) {
	if m.Opcode == evWmBasePing {
		serial := m.Uint()
		if err := a.Conn.Request(a.wmBase, opWmBasePong, (&argWriter{}).Uint(serial)); err != nil {
			logx.PrintlnWarn("wayland: pong:", err)
		}
	}
}

func (a *App) outputEvent(out *output, m *message) {
	switch m.Opcode {
	case evOutputGeometry:
		x, y := int(m.Int()), int(m.Int())
		pw, ph := int(m.Int()), int(m.Int())
		out.pending.Geometry.Min = image.Pt(x, y)
		out.pending.PhysicalSize = image.Pt(pw, ph)
	case evOutputMode:
		flags := m.Uint()
		wd, ht := int(m.Int()), int(m.Int())
		const current = 1
		if flags&current != 0 {
			out.pending.PixSize = image.Pt(wd, ht)
		}
	case evOutputScale:
		out.pending.DevicePixelRatio = system.ScaleUniform(float32(m.Int()))
	case evOutputName:
		out.pending.Name = m.String()
	case evOutputDone:
		out.pending.Geometry.Max = out.pending.Geometry.Min.Add(out.pending.PixSize)
		out.screen = out.pending
		a.Deque.Send(events.NewWindow(events.ScreenUpdate))
	}
}

// GetScreens rebuilds the screen list from the known outputs.
func (a *App) GetScreens() {
	var screens []*system.Screen
	for _, out := range a.outputs {
		if out.screen.PixSize == (image.Point{}) {
			continue
		}
		sc := out.screen
		sc.ScreenNumber = len(screens)
		screens = append(screens, &sc)
	}
	if len(screens) == 0 {
		screens = []*system.Screen{{
			Name:             "wayland-0",
			DevicePixelRatio: system.ScaleUniform(1),
		}}
	}
	a.Screens = screens
}

// RefreshScreens re-resolves every window after an output change.
func (a *App) RefreshScreens() {
	a.GetScreens()
	a.Mu.Lock()
	wins := make([]*Window, len(a.Windows))
	copy(wins, a.Windows)
	a.Mu.Unlock()
	for _, w := range wins {
		if w.Stage() < system.Closing {
			w.rescale()
		}
	}
}

// dispatch routes one compositor event.
func (a *App) dispatch(m *message) {
	a.hmu.Lock()
	fn := a.handlers[m.Object]
	a.hmu.Unlock()
	if fn != nil {
		fn(m)
	}
}

// eventReader runs on its own goroutine for the life of the app.
func (a *App) eventReader() {
	defer func() { system.HandleRecover(recover()) }()
	for {
		m, err := a.Conn.ReadMessage()
		if err != nil {
			if !a.Lp.Quitting() && !errors.Is(err, io.EOF) {
				logx.PrintlnError("wayland: connection lost:", err)
			}
			a.Lp.Break(system.ErrLoopBroken)
			return
		}
		a.dispatch(m)
	}
}

func (a *App) MainLoop() error {
	defer close(a.MainDone)
	err := a.Lp.Run()
	a.Conn.Close()
	return err
}
