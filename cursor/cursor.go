// Package cursor provides a bounds-checked reader over a captured byte buffer.
//
// A Cursor never reads past the end of its buffer.  Every short read returns a
// *ShortReadError carrying the absolute offset of the failed read, so decode
// errors can be traced back to a position in the original packet.
package cursor

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/vishvananda/netlink/nl"
)

// AlignTo is the netlink attribute alignment (NLMSG_ALIGNTO, RTA_ALIGNTO).
const AlignTo = 4

// Native is the byte order used for netlink fields.
var Native binary.ByteOrder = nl.NativeEndian()

// ErrShortRead is matched by every *ShortReadError.
var ErrShortRead = io.ErrUnexpectedEOF

// ShortReadError reports a read that needed more bytes than were left.
type ShortReadError struct {
	Offset int // Absolute offset of the read.
	Want   int
	Have   int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("short read at offset %d: want %d bytes, have %d", e.Offset, e.Want, e.Have)
}

// Is allows errors.Is(err, ErrShortRead).
func (e *ShortReadError) Is(target error) bool {
	return target == ErrShortRead
}

// Align4 returns p rounded up to the next multiple of four.
func Align4(p int) int {
	return (p + AlignTo - 1) &^ (AlignTo - 1)
}

// Cursor reads fixed width values from a byte slice.
type Cursor struct {
	buf   []byte
	pos   int
	limit int
}

// New returns a Cursor positioned at the start of buf.  The buffer is
// borrowed, not copied.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf, limit: len(buf)}
}

// Position returns the absolute read position.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns the number of readable bytes left.
func (c *Cursor) Remaining() int {
	return c.limit - c.pos
}

// Limit caps the readable region at end, or at the buffer length if end lies
// beyond it.  It never extends the region.
func (c *Cursor) Limit(end int) {
	if end < c.limit {
		c.limit = end
	}
	if c.limit < c.pos {
		c.limit = c.pos
	}
}

func (c *Cursor) next(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Errorf("negative read length %d at offset %d", n, c.pos)
	}
	if c.Remaining() < n {
		return nil, &ShortReadError{Offset: c.pos, Want: n, Have: c.Remaining()}
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// U8 reads one byte.
func (c *Cursor) U8() (uint8, error) {
	b, err := c.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a 16 bit value in the given byte order.
func (c *Cursor) U16(order binary.ByteOrder) (uint16, error) {
	b, err := c.next(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

// U32 reads a 32 bit value in the given byte order.
func (c *Cursor) U32(order binary.ByteOrder) (uint32, error) {
	b, err := c.next(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

// I32 reads a signed 32 bit value in the given byte order.
func (c *Cursor) I32(order binary.ByteOrder) (int32, error) {
	v, err := c.U32(order)
	return int32(v), err
}

// Bytes returns a copy of the next n bytes.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	b, err := c.next(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// Skip discards n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.next(n)
	return err
}

// Align advances to the next 4 byte boundary.  Missing trailing padding at the
// end of the readable region is tolerated.
func (c *Cursor) Align() {
	p := Align4(c.pos)
	if p > c.limit {
		p = c.limit
	}
	c.pos = p
}
