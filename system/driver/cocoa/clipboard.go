// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

package cocoa

import (
	"errors"

	"github.com/ebitengine/purego/objc"
)

// clipboard talks to the general NSPasteboard in plain text.
type clipboard struct{}

var theClipboard = clipboard{}

const pasteboardTypeString = "public.utf8-plain-text"

func generalPasteboard() objc.ID {
	return objc.ID(objc.GetClass("NSPasteboard")).Send(objc.RegisterName("generalPasteboard"))
}

func (clipboard) ReadText() string {
	pb := generalPasteboard()
	if pb == 0 {
		return ""
	}
	s := objc.Send[objc.ID](pb, objc.RegisterName("stringForType:"), nsString(pasteboardTypeString))
	return nsStringToGo(s)
}

func (clipboard) WriteText(text string) error {
	pb := generalPasteboard()
	if pb == 0 {
		return errors.New("cocoa: no general pasteboard")
	}
	pb.Send(objc.RegisterName("clearContents"))
	ok := objc.Send[bool](pb, objc.RegisterName("setString:forType:"),
		nsString(text), nsString(pasteboardTypeString))
	if !ok {
		return errors.New("cocoa: pasteboard rejected text")
	}
	return nil
}
