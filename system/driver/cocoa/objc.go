// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

package cocoa

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

// NS geometry mirrors; layout matches the C structs.
type nsPoint struct {
	X float64
	Y float64
}

type nsSize struct {
	W float64
	H float64
}

type nsRect struct {
	Origin nsPoint
	Size   nsSize
}

const (
	nsActivationPolicyRegular = 0

	nsWindowStyleTitled      = 1 << 0
	nsWindowStyleClosable    = 1 << 1
	nsWindowStyleMiniaturize = 1 << 2
	nsWindowStyleResizable   = 1 << 3
	nsWindowStyleBorderless  = 0

	nsBackingStoreBuffered = 2

	nsEventMaskAny = ^uint64(0)

	nsEventTypeLeftMouseDown     = 1
	nsEventTypeLeftMouseUp       = 2
	nsEventTypeRightMouseDown    = 3
	nsEventTypeRightMouseUp      = 4
	nsEventTypeMouseMoved        = 5
	nsEventTypeLeftMouseDragged  = 6
	nsEventTypeRightMouseDragged = 7
	nsEventTypeKeyDown           = 10
	nsEventTypeKeyUp             = 11
	nsEventTypeFlagsChanged      = 12
	nsEventTypeAppDefined        = 15
	nsEventTypeScrollWheel       = 22
	nsEventTypeOtherMouseDown    = 25
	nsEventTypeOtherMouseUp      = 26
	nsEventTypeOtherMouseDragged = 27

	nsModifierCapsLock = 1 << 16
	nsModifierShift    = 1 << 17
	nsModifierControl  = 1 << 18
	nsModifierOption   = 1 << 19
	nsModifierCommand  = 1 << 20

	nsFloatingWindowLevel = 3
	nsModalPanelLevel     = 8
	nsPopUpMenuLevel      = 101
)

var (
	runtimeOnce sync.Once
	runtimeErr  error

	cfRunLoopRunInMode func(uintptr, float64, bool) int32
	cfDefaultMode      uintptr

	selAlloc                objc.SEL
	selInit                 objc.SEL
	selRelease              objc.SEL
	selSharedApplication    objc.SEL
	selSetActivationPolicy  objc.SEL
	selFinishLaunching      objc.SEL
	selActivate             objc.SEL
	selNextEvent            objc.SEL
	selSendEvent            objc.SEL
	selPostEvent            objc.SEL
	selOtherEvent           objc.SEL
	selStringWithUTF8       objc.SEL
	selUTF8String           objc.SEL
	selDistantFuture        objc.SEL
	selDateWithInterval     objc.SEL
	selScreens              objc.SEL
	selFrame                objc.SEL
	selVisibleFrame         objc.SEL
	selBackingScaleFactor   objc.SEL
	selLocalizedName        objc.SEL
	selCount                objc.SEL
	selObjectAtIndex        objc.SEL
	selInitWithContentRect  objc.SEL
	selSetTitle             objc.SEL
	selSetDelegate          objc.SEL
	selSetAcceptsMouseMoved objc.SEL
	selSetReleasedWhenClose objc.SEL
	selSetLevel             objc.SEL
	selCenter               objc.SEL
	selContentView          objc.SEL
	selBounds               objc.SEL
	selConvertToBacking     objc.SEL
	selMakeKeyAndOrderFront objc.SEL
	selOrderOut             objc.SEL
	selOrderFront           objc.SEL
	selMiniaturize          objc.SEL
	selPerformClose         objc.SEL
	selClose                objc.SEL
	selSetContentSize       objc.SEL
	selSetFrameTopLeft      objc.SEL
	selSetContentMinSize    objc.SEL
	selSetContentMaxSize    objc.SEL
	selIsKeyWindow          objc.SEL
	selEventType            objc.SEL
	selEventWindow          objc.SEL
	selEventKeyCode         objc.SEL
	selEventIsARepeat       objc.SEL
	selEventModifierFlags   objc.SEL
	selEventButtonNumber    objc.SEL
	selEventCharacters      objc.SEL
	selEventLocation        objc.SEL
	selScrollDeltaX         objc.SEL
	selScrollDeltaY         objc.SEL
	selHasPreciseDeltas     objc.SEL
	selObject               objc.SEL
	selTag                  objc.SEL
	selSet                  objc.SEL
)

// ensureRuntime loads libobjc, AppKit, and CoreFoundation once.
func ensureRuntime() error {
	runtimeOnce.Do(func() {
		if _, err := purego.Dlopen("/usr/lib/libobjc.A.dylib", purego.RTLD_GLOBAL); err != nil {
			runtimeErr = err
			return
		}
		if _, err := purego.Dlopen("/System/Library/Frameworks/AppKit.framework/AppKit", purego.RTLD_GLOBAL); err != nil {
			runtimeErr = err
			return
		}
		cf, err := purego.Dlopen("/System/Library/Frameworks/CoreFoundation.framework/CoreFoundation", purego.RTLD_GLOBAL)
		if err != nil {
			runtimeErr = err
			return
		}
		purego.RegisterLibFunc(&cfRunLoopRunInMode, cf, "CFRunLoopRunInMode")
		loadSelectors()
		cfDefaultMode = uintptr(nsString("kCFRunLoopDefaultMode"))
	})
	return runtimeErr
}

func loadSelectors() {
	selAlloc = objc.RegisterName("alloc")
	selInit = objc.RegisterName("init")
	selRelease = objc.RegisterName("release")
	selSharedApplication = objc.RegisterName("sharedApplication")
	selSetActivationPolicy = objc.RegisterName("setActivationPolicy:")
	selFinishLaunching = objc.RegisterName("finishLaunching")
	selActivate = objc.RegisterName("activateIgnoringOtherApps:")
	selNextEvent = objc.RegisterName("nextEventMatchingMask:untilDate:inMode:dequeue:")
	selSendEvent = objc.RegisterName("sendEvent:")
	selPostEvent = objc.RegisterName("postEvent:atStart:")
	selOtherEvent = objc.RegisterName("otherEventWithType:location:modifierFlags:timestamp:windowNumber:context:subtype:data1:data2:")
	selStringWithUTF8 = objc.RegisterName("stringWithUTF8String:")
	selUTF8String = objc.RegisterName("UTF8String")
	selDistantFuture = objc.RegisterName("distantFuture")
	selDateWithInterval = objc.RegisterName("dateWithTimeIntervalSinceNow:")
	selScreens = objc.RegisterName("screens")
	selFrame = objc.RegisterName("frame")
	selVisibleFrame = objc.RegisterName("visibleFrame")
	selBackingScaleFactor = objc.RegisterName("backingScaleFactor")
	selLocalizedName = objc.RegisterName("localizedName")
	selCount = objc.RegisterName("count")
	selObjectAtIndex = objc.RegisterName("objectAtIndex:")
	selInitWithContentRect = objc.RegisterName("initWithContentRect:styleMask:backing:defer:")
	selSetTitle = objc.RegisterName("setTitle:")
	selSetDelegate = objc.RegisterName("setDelegate:")
	selSetAcceptsMouseMoved = objc.RegisterName("setAcceptsMouseMovedEvents:")
	selSetReleasedWhenClose = objc.RegisterName("setReleasedWhenClosed:")
	selSetLevel = objc.RegisterName("setLevel:")
	selCenter = objc.RegisterName("center")
	selContentView = objc.RegisterName("contentView")
	selBounds = objc.RegisterName("bounds")
	selConvertToBacking = objc.RegisterName("convertRectToBacking:")
	selMakeKeyAndOrderFront = objc.RegisterName("makeKeyAndOrderFront:")
	selOrderOut = objc.RegisterName("orderOut:")
	selOrderFront = objc.RegisterName("orderFront:")
	selMiniaturize = objc.RegisterName("miniaturize:")
	selPerformClose = objc.RegisterName("performClose:")
	selClose = objc.RegisterName("close")
	selSetContentSize = objc.RegisterName("setContentSize:")
	selSetFrameTopLeft = objc.RegisterName("setFrameTopLeftPoint:")
	selSetContentMinSize = objc.RegisterName("setContentMinSize:")
	selSetContentMaxSize = objc.RegisterName("setContentMaxSize:")
	selIsKeyWindow = objc.RegisterName("isKeyWindow")
	selEventType = objc.RegisterName("type")
	selEventWindow = objc.RegisterName("window")
	selEventKeyCode = objc.RegisterName("keyCode")
	selEventIsARepeat = objc.RegisterName("isARepeat")
	selEventModifierFlags = objc.RegisterName("modifierFlags")
	selEventButtonNumber = objc.RegisterName("buttonNumber")
	selEventCharacters = objc.RegisterName("characters")
	selEventLocation = objc.RegisterName("locationInWindow")
	selScrollDeltaX = objc.RegisterName("scrollingDeltaX")
	selScrollDeltaY = objc.RegisterName("scrollingDeltaY")
	selHasPreciseDeltas = objc.RegisterName("hasPreciseScrollingDeltas")
	selObject = objc.RegisterName("object")
	selTag = objc.RegisterName("tag")
	selSet = objc.RegisterName("set")
}

func nsString(v string) objc.ID {
	return objc.ID(objc.GetClass("NSString")).Send(selStringWithUTF8, v+"\x00")
}

func nsStringToGo(v objc.ID) string {
	if v == 0 {
		return ""
	}
	ptr := objc.Send[unsafe.Pointer](v, selUTF8String)
	if ptr == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(ptr, n)) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(ptr), n))
}
