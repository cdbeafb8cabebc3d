// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package web

import (
	"errors"
	"syscall/js"
)

// clipboard uses the async navigator.clipboard API, blocking the
// calling goroutine on the promise. Browsers gate it behind HTTPS and
// a user gesture, so both directions can fail.
type clipboard struct{}

var theClipboard = clipboard{}

func navClipboard() js.Value {
	return js.Global().Get("navigator").Get("clipboard")
}

// await resolves a promise, returning the value or an error.
func await(promise js.Value) (js.Value, error) {
	done := make(chan struct{})
	var res js.Value
	var rejected bool
	then := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			res = args[0]
		}
		close(done)
		return nil
	})
	catch := js.FuncOf(func(this js.Value, args []js.Value) any {
		rejected = true
		close(done)
		return nil
	})
	defer then.Release()
	defer catch.Release()
	promise.Call("then", then).Call("catch", catch)
	<-done
	if rejected {
		return js.Value{}, errors.New("web: clipboard promise rejected")
	}
	return res, nil
}

func (clipboard) ReadText() string {
	cb := navClipboard()
	if !cb.Truthy() {
		return ""
	}
	v, err := await(cb.Call("readText"))
	if err != nil {
		return ""
	}
	return v.String()
}

func (clipboard) WriteText(text string) error {
	cb := navClipboard()
	if !cb.Truthy() {
		return errors.New("web: clipboard API unavailable")
	}
	_, err := await(cb.Call("writeText", text))
	return err
}
