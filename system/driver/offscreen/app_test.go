// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"
	"sync/atomic"
	"testing"

	"github.com/go-mullion/mullion/events"
	"github.com/go-mullion/mullion/events/key"
	"github.com/go-mullion/mullion/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a [system.Handler] that records the order of its
// callbacks. Tests drive the loop with Step, so callbacks run on the
// test goroutine.
type recorder struct {
	system.HandlerBase
	calls     []string
	resizes   []resizeRec
	paints    []image.Rectangle
	allowQuit atomic.Bool
}

type resizeRec struct {
	size, pix image.Point
	scale     system.Scale
}

func (r *recorder) Connected(w system.Window) { r.calls = append(r.calls, "connected") }
func (r *recorder) PreparePaint()             { r.calls = append(r.calls, "prepare") }
func (r *recorder) Paint(damage image.Rectangle) {
	r.calls = append(r.calls, "paint")
	r.paints = append(r.paints, damage)
}
func (r *recorder) Resized(size, pix image.Point, scale system.Scale) {
	r.calls = append(r.calls, "resized")
	r.resizes = append(r.resizes, resizeRec{size, pix, scale})
}
func (r *recorder) FocusChanged(focused bool) {
	if focused {
		r.calls = append(r.calls, "focus")
	} else {
		r.calls = append(r.calls, "blur")
	}
}
func (r *recorder) CloseRequested() bool {
	r.calls = append(r.calls, "closereq")
	return r.allowQuit.Load()
}
func (r *recorder) Destroyed() { r.calls = append(r.calls, "destroyed") }

func resetApp() {
	TheApp.Windows = nil
	TheApp.Screens = nil
	Init()
}

func step() { TheApp.Lp.Step() }

func TestWindowLifecycleOrder(t *testing.T) {
	resetApp()
	rec := &recorder{}
	w, err := TheApp.NewWindow(&system.NewWindowOptions{
		Title: "life", Size: image.Pt(640, 480), InitiallyVisible: true,
	}, rec)
	require.NoError(t, err)
	step()

	// connected first, resize before the first paint, and the first
	// paint covers the full surface
	require.GreaterOrEqual(t, len(rec.calls), 5)
	assert.Equal(t, "connected", rec.calls[0])
	assert.Equal(t, []string{"resized", "focus", "prepare", "paint"}, rec.calls[1:5])
	require.Len(t, rec.paints, 1)
	assert.Equal(t, image.Rect(0, 0, 640, 480), rec.paints[0])

	assert.Equal(t, system.Visible, w.Stage())
	assert.Equal(t, image.Pt(640, 480), w.WinSize())
}

func TestCloseVetoThenConfirm(t *testing.T) {
	resetApp()
	rec := &recorder{}
	w, err := TheApp.NewWindow(nil, rec)
	require.NoError(t, err)
	step()
	rec.calls = nil

	// vetoed: no stage change, and a later request is delivered again
	w.CloseReq()
	step()
	assert.Equal(t, []string{"closereq"}, rec.calls)
	assert.Equal(t, system.Visible, w.Stage())

	rec.allowQuit.Store(true)
	w.CloseReq()
	step()
	assert.Equal(t, []string{"closereq", "destroyed"}, rec.calls)
	assert.Equal(t, system.Destroyed, w.Stage())
	assert.Equal(t, 0, TheApp.NWindows())
}

func TestStaleHandleFailsExplicitly(t *testing.T) {
	resetApp()
	rec := &recorder{}
	rec.allowQuit.Store(true)
	w, err := TheApp.NewWindow(nil, rec)
	require.NoError(t, err)
	id := w.ID()
	step()
	w.CloseReq()
	step()

	require.Equal(t, system.Destroyed, w.Stage())
	assert.ErrorIs(t, w.SetTitle("x"), system.ErrWindowDestroyed)
	assert.ErrorIs(t, w.Show(), system.ErrWindowDestroyed)
	assert.ErrorIs(t, w.Hide(), system.ErrWindowDestroyed)
	assert.ErrorIs(t, w.SetCursor(system.IBeam), system.ErrWindowDestroyed)
	assert.ErrorIs(t, w.RequestRedraw(image.Rectangle{}), system.ErrWindowDestroyed)
	assert.ErrorIs(t, w.SetGeometry(image.Point{}, image.Pt(10, 10)), system.ErrWindowDestroyed)
	assert.ErrorIs(t, w.ScheduleIdle(1), system.ErrWindowDestroyed)
	_, err = w.ScheduleTimer(0, false)
	assert.ErrorIs(t, err, system.ErrWindowDestroyed)
	_, err = w.Native()
	assert.ErrorIs(t, err, system.ErrWindowDestroyed)

	_, err = TheApp.WindowByID(id)
	assert.ErrorIs(t, err, system.ErrWindowDestroyed)
	_, err = TheApp.WindowByID(99999)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, system.ErrWindowDestroyed)
}

func TestHiDPIScaleResolution(t *testing.T) {
	resetApp()
	TheApp.SetScreens(&system.Screen{
		Name:             "retina",
		Geometry:         image.Rect(0, 0, 3840, 2160),
		PixSize:          image.Pt(3840, 2160),
		DevicePixelRatio: system.ScaleUniform(2),
	})
	rec := &recorder{}
	w, err := TheApp.NewWindow(&system.NewWindowOptions{
		Size: image.Pt(800, 600), InitiallyVisible: true,
	}, rec)
	require.NoError(t, err)
	step()

	// exactly one resize: logical 800x600, physical 1600x1200, scale 2
	require.Len(t, rec.resizes, 1)
	assert.Equal(t, image.Pt(800, 600), rec.resizes[0].size)
	assert.Equal(t, image.Pt(1600, 1200), rec.resizes[0].pix)
	assert.Equal(t, system.ScaleUniform(2), rec.resizes[0].scale)

	assert.Equal(t, image.Pt(1600, 1200), w.Size())
	assert.Equal(t, image.Pt(800, 600), w.WinSize())
	assert.Equal(t, "retina", w.Screen().Name)
}

func TestResizeCoalescingLastWins(t *testing.T) {
	resetApp()
	rec := &recorder{}
	w, err := TheApp.NewWindow(nil, rec)
	require.NoError(t, err)
	step()
	rec.resizes = nil

	require.NoError(t, w.SetGeometry(image.Point{}, image.Pt(300, 300)))
	require.NoError(t, w.SetGeometry(image.Point{}, image.Pt(400, 400)))
	require.NoError(t, w.SetGeometry(image.Point{}, image.Pt(500, 500)))
	step()

	require.Len(t, rec.resizes, 1, "burst of resizes coalesces to the last")
	assert.Equal(t, image.Pt(500, 500), rec.resizes[0].size)
}

func TestMenuAcceleratorRouting(t *testing.T) {
	resetApp()
	var got []int
	rec := &recorder{}
	h := &menuHandler{recorder: rec, got: &got}
	w, err := TheApp.NewWindow(nil, h)
	require.NoError(t, err)
	m := system.NewMenu()
	m.AddItem(7, "&Open", "Control+O")
	require.NoError(t, w.SetMenu(m))
	step()

	w.Events().Key(events.KeyDown, 'o', key.CodeO, key.Control)
	step()
	assert.Equal(t, []int{7}, got)
	assert.Empty(t, h.keys, "matched accelerators do not also deliver the key")

	// unmatched chords fall through as keys
	w.Events().Key(events.KeyDown, 'x', key.CodeX, 0)
	step()
	assert.Len(t, h.keys, 1)
}

type menuHandler struct {
	*recorder
	got  *[]int
	keys []*events.Key
}

func (h *menuHandler) MenuCommand(id int) { *h.got = append(*h.got, id) }
func (h *menuHandler) Key(e *events.Key)  { h.keys = append(h.keys, e) }
