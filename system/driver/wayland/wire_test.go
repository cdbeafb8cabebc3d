// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package wayland

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode turns an argWriter body into a message, the way the reader
// would after stripping the header.
func decode(aw *argWriter) *message {
	return &message{body: aw.buf}
}

func TestArgWriterRoundTrip(t *testing.T) {
	aw := (&argWriter{}).Uint(42).Int(-7).Fixed(1.5).String("wl_compositor")
	m := decode(aw)

	assert.Equal(t, uint32(42), m.Uint())
	assert.Equal(t, int32(-7), m.Int())
	assert.Equal(t, 1.5, m.Fixed())
	assert.Equal(t, "wl_compositor", m.String())
}

func TestArgWriterStringPadding(t *testing.T) {
	// a 3-byte string plus NUL lands exactly on a word boundary; a
	// 4-byte one needs padding
	for _, s := range []string{"abc", "abcd", "", "a"} {
		aw := (&argWriter{}).String(s).Uint(99)
		require.Zero(t, len(aw.buf)%4, "body must stay word aligned for %q", s)
		m := decode(aw)
		assert.Equal(t, s, m.String())
		assert.Equal(t, uint32(99), m.Uint())
	}
}

func TestMessageTruncatedReads(t *testing.T) {
	m := &message{body: []byte{1, 0}}
	assert.Equal(t, uint32(0), m.Uint())
	assert.Equal(t, "", (&message{body: nil}).String())
	assert.Nil(t, (&message{body: []byte{8, 0, 0, 0}}).Array())
}

func TestMessageArray(t *testing.T) {
	var body []byte
	body = binary.LittleEndian.AppendUint32(body, 5)
	body = append(body, 'h', 'e', 'l', 'l', 'o', 0, 0, 0)
	body = binary.LittleEndian.AppendUint32(body, 7)
	m := &message{body: body}

	assert.Equal(t, []byte("hello"), m.Array())
	assert.Equal(t, uint32(7), m.Uint(), "array reads must consume their padding")
}

func TestFixedNegative(t *testing.T) {
	aw := (&argWriter{}).Fixed(-2.25)
	assert.Equal(t, -2.25, decode(aw).Fixed())
}
