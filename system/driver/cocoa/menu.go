// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

package cocoa

import (
	"strings"
	"unicode"

	"github.com/ebitengine/purego/objc"

	"github.com/go-mullion/mullion/events/key"
	"github.com/go-mullion/mullion/logx"
	"github.com/go-mullion/mullion/system"
)

// menuTargetClass receives every menu item action; the item's tag is
// the portable command id, delivered to whichever window holds focus.
var menuTargetClass objc.Class

// menuTarget is the single shared action target instance.
var menuTarget objc.ID

func registerMenuTargetClass() {
	if menuTargetClass != 0 {
		return
	}
	cls, err := objc.RegisterClass("MullionMenuTarget", objc.GetClass("NSObject"), nil, nil,
		[]objc.MethodDef{
			{
				Cmd: objc.RegisterName("menuAction:"),
				Fn: func(self objc.ID, cmd objc.SEL, sender objc.ID) {
					id := int(objc.Send[int64](sender, selTag))
					if w := TheApp.WindowInFocus(); w != nil {
						w.Events().MenuCommand(id)
					}
				},
			},
		})
	if err != nil {
		logx.PrintlnError("cocoa: registering menu target:", err)
		return
	}
	menuTargetClass = cls
	menuTarget = objc.ID(cls).Send(selAlloc).Send(selInit)
}

// SetMenu installs the portable menu as the application main menu.
// macOS has one menu bar, so the last focused window's menu wins;
// accelerator routing still goes through the loop's key dispatch.
func (w *Window) SetMenu(m *system.Menu) error {
	if err := w.SetMenuBase(m); err != nil {
		return err
	}
	if m == nil {
		return nil
	}
	bar := buildNSMenu(m, "")
	w.app.NSApp.Send(objc.RegisterName("setMainMenu:"), bar)
	return nil
}

func buildNSMenu(m *system.Menu, title string) objc.ID {
	menu := objc.ID(objc.GetClass("NSMenu")).Send(selAlloc)
	menu = menu.Send(objc.RegisterName("initWithTitle:"), nsString(title))
	selAddItem := objc.RegisterName("addItem:")
	selSeparator := objc.RegisterName("separatorItem")
	selInitItem := objc.RegisterName("initWithTitle:action:keyEquivalent:")
	for _, it := range m.Items {
		if it.Separator {
			sep := objc.ID(objc.GetClass("NSMenuItem")).Send(selSeparator)
			menu.Send(selAddItem, sep)
			continue
		}
		equiv, mask := keyEquivalent(it.Accel)
		item := objc.ID(objc.GetClass("NSMenuItem")).Send(selAlloc)
		item = item.Send(selInitItem, nsString(it.Label),
			objc.RegisterName("menuAction:"), nsString(equiv))
		item.Send(objc.RegisterName("setTag:"), int64(it.ID))
		item.Send(objc.RegisterName("setTarget:"), menuTarget)
		if mask != 0 {
			item.Send(objc.RegisterName("setKeyEquivalentModifierMask:"), mask)
		}
		if it.Checked {
			item.Send(objc.RegisterName("setState:"), int64(1))
		}
		if it.Disabled {
			item.Send(objc.RegisterName("setEnabled:"), false)
		}
		if it.Sub != nil {
			sub := buildNSMenu(it.Sub, it.Label)
			item.Send(objc.RegisterName("setSubmenu:"), sub)
		}
		menu.Send(selAddItem, item)
	}
	return menu
}

// keyEquivalent renders a portable chord as an NSMenuItem key
// equivalent plus modifier mask.
func keyEquivalent(chord key.Chord) (string, uint64) {
	if chord == "" {
		return "", 0
	}
	parts := strings.Split(string(chord), "+")
	var mask uint64
	equiv := ""
	for _, p := range parts {
		switch p {
		case "Control":
			mask |= nsModifierControl
		case "Shift":
			mask |= nsModifierShift
		case "Alt":
			mask |= nsModifierOption
		case "Meta":
			mask |= nsModifierCommand
		default:
			equiv = strings.ToLower(p)
		}
	}
	if len([]rune(equiv)) != 1 || !unicode.IsPrint([]rune(equiv)[0]) {
		return "", 0
	}
	return equiv, mask
}
