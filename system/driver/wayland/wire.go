// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package wayland

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// Conn is a connection to a Wayland compositor over its Unix socket.
// Requests are written under a mutex so any goroutine may issue them;
// events are read by a single reader goroutine.
//
// The wire format is little-endian words: object id, then
// size<<16|opcode, then the arguments. File descriptors ride the
// ancillary channel and are queued in order.
type Conn struct {
	uc *net.UnixConn

	wmu sync.Mutex

	// fds are descriptors received ahead of the messages that
	// consume them.
	fds []int

	// nextID allocates client-side object ids; id 1 is wl_display.
	nextID uint32
}

// Dial connects to the compositor named by WAYLAND_DISPLAY in
// XDG_RUNTIME_DIR, following the usual defaulting rules.
func Dial() (*Conn, error) {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		return nil, errors.New("XDG_RUNTIME_DIR is not set")
	}
	disp := os.Getenv("WAYLAND_DISPLAY")
	if disp == "" {
		disp = "wayland-0"
	}
	path := disp
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, disp)
	}
	uc, err := net.DialUnix("unix", nil, &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		return nil, err
	}
	return &Conn{uc: uc, nextID: 1}, nil
}

// NewID allocates the next client object id.
func (c *Conn) NewID() uint32 {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	c.nextID++
	return c.nextID
}

// Close shuts the socket down.
func (c *Conn) Close() error {
	return c.uc.Close()
}

// FD returns the compositor socket descriptor, for handing the
// display to rendering APIs.
func (c *Conn) FD() int {
	sc, err := c.uc.SyscallConn()
	if err != nil {
		return -1
	}
	fd := -1
	sc.Control(func(f uintptr) { fd = int(f) })
	return fd
}

// argWriter accumulates one request's arguments.
type argWriter struct {
	buf []byte
	fds []int
}

func (aw *argWriter) Uint(v uint32) *argWriter {
	aw.buf = binary.LittleEndian.AppendUint32(aw.buf, v)
	return aw
}

func (aw *argWriter) Int(v int32) *argWriter {
	return aw.Uint(uint32(v))
}

// Fixed writes a 24.8 fixed-point value.
func (aw *argWriter) Fixed(v float64) *argWriter {
	return aw.Uint(uint32(int32(v * 256)))
}

// String writes a length-prefixed NUL-terminated string, padded to a
// word boundary.
func (aw *argWriter) String(s string) *argWriter {
	aw.Uint(uint32(len(s) + 1))
	aw.buf = append(aw.buf, s...)
	aw.buf = append(aw.buf, 0)
	for len(aw.buf)%4 != 0 {
		aw.buf = append(aw.buf, 0)
	}
	return aw
}

func (aw *argWriter) FD(fd int) *argWriter {
	aw.fds = append(aw.fds, fd)
	return aw
}

// Request sends one request on the given object.
func (c *Conn) Request(obj uint32, opcode uint16, args *argWriter) error {
	var body []byte
	var fds []int
	if args != nil {
		body = args.buf
		fds = args.fds
	}
	size := 8 + len(body)
	hdr := make([]byte, 8, size)
	binary.LittleEndian.PutUint32(hdr[0:], obj)
	binary.LittleEndian.PutUint32(hdr[4:], uint32(size)<<16|uint32(opcode))
	msg := append(hdr, body...)

	c.wmu.Lock()
	defer c.wmu.Unlock()
	if len(fds) > 0 {
		oob := unix.UnixRights(fds...)
		_, _, err := c.uc.WriteMsgUnix(msg, oob, nil)
		return err
	}
	_, err := c.uc.Write(msg)
	return err
}

// message is one decoded compositor event.
type message struct {
	Object uint32
	Opcode uint16
	body   []byte
	off    int
	conn   *Conn
}

// ReadMessage blocks for the next event, collecting any ancillary
// file descriptors into the fd queue.
func (c *Conn) ReadMessage() (*message, error) {
	hdr := make([]byte, 8)
	if err := c.readFull(hdr); err != nil {
		return nil, err
	}
	obj := binary.LittleEndian.Uint32(hdr[0:])
	so := binary.LittleEndian.Uint32(hdr[4:])
	size := int(so >> 16)
	if size < 8 {
		return nil, fmt.Errorf("wayland: bad message size %d", size)
	}
	body := make([]byte, size-8)
	if err := c.readFull(body); err != nil {
		return nil, err
	}
	return &message{
		Object: obj,
		Opcode: uint16(so & 0xffff),
		body:   body,
		conn:   c,
	}, nil
}

// readFull reads exactly len(p) bytes, stashing received fds.
func (c *Conn) readFull(p []byte) error {
	oob := make([]byte, 64)
	got := 0
	for got < len(p) {
		n, oobn, _, _, err := c.uc.ReadMsgUnix(p[got:], oob)
		if err != nil {
			return err
		}
		if oobn > 0 {
			cmsgs, err := unix.ParseSocketControlMessage(oob[:oobn])
			if err == nil {
				for _, cm := range cmsgs {
					if fds, err := unix.ParseUnixRights(&cm); err == nil {
						c.fds = append(c.fds, fds...)
					}
				}
			}
		}
		got += n
	}
	return nil
}

// TakeFD pops the oldest queued file descriptor, -1 if none.
func (c *Conn) TakeFD() int {
	if len(c.fds) == 0 {
		return -1
	}
	fd := c.fds[0]
	c.fds = c.fds[1:]
	return fd
}

//////// event argument decoding

func (m *message) Uint() uint32 {
	if m.off+4 > len(m.body) {
		return 0
	}
	v := binary.LittleEndian.Uint32(m.body[m.off:])
	m.off += 4
	return v
}

func (m *message) Int() int32 { return int32(m.Uint()) }

// Fixed reads a 24.8 fixed-point value.
func (m *message) Fixed() float64 {
	return float64(m.Int()) / 256
}

func (m *message) String() string {
	n := int(m.Uint())
	if n == 0 || m.off+n > len(m.body) {
		return ""
	}
	s := string(m.body[m.off : m.off+n-1])
	m.off += (n + 3) &^ 3
	return s
}

// Array reads a length-prefixed byte array.
func (m *message) Array() []byte {
	n := int(m.Uint())
	if m.off+n > len(m.body) {
		return nil
	}
	b := m.body[m.off : m.off+n]
	m.off += (n + 3) &^ 3
	return b
}

// FD consumes the next queued file descriptor.
func (m *message) FD() int { return m.conn.TakeFD() }
