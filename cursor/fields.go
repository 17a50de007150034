package cursor

import (
	"encoding/binary"
	"fmt"
)

// FieldError attributes a decode failure to a named struct field.
type FieldError struct {
	Field  string
	Offset int
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s at offset %d: %v", e.Field, e.Offset, e.Err)
}

// Unwrap returns the underlying failure.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Fields reads a sequence of named fields from a Cursor.  After the first
// failure all further reads return zero values and Err reports that failure.
type Fields struct {
	c     *Cursor
	order binary.ByteOrder
	last  int
	err   error
}

// NewFields returns a field reader using the given byte order.
func NewFields(c *Cursor, order binary.ByteOrder) *Fields {
	return &Fields{c: c, order: order, last: c.Position()}
}

// Err returns the first failure, or nil.
func (f *Fields) Err() error {
	return f.err
}

// Fail records err against field at the offset of the most recent read.
func (f *Fields) Fail(field string, err error) {
	if f.err == nil {
		f.err = &FieldError{Field: field, Offset: f.last, Err: err}
	}
}

func (f *Fields) check(field string, err error) bool {
	if err != nil {
		f.err = &FieldError{Field: field, Offset: f.last, Err: err}
		return false
	}
	return true
}

func (f *Fields) start() bool {
	if f.err != nil {
		return false
	}
	f.last = f.c.Position()
	return true
}

// U8 reads a one byte field.
func (f *Fields) U8(field string) uint8 {
	if !f.start() {
		return 0
	}
	v, err := f.c.U8()
	f.check(field, err)
	return v
}

// U16 reads a two byte field.
func (f *Fields) U16(field string) uint16 {
	if !f.start() {
		return 0
	}
	v, err := f.c.U16(f.order)
	f.check(field, err)
	return v
}

// U32 reads a four byte field.
func (f *Fields) U32(field string) uint32 {
	if !f.start() {
		return 0
	}
	v, err := f.c.U32(f.order)
	f.check(field, err)
	return v
}

// I32 reads a signed four byte field.
func (f *Fields) I32(field string) int32 {
	if !f.start() {
		return 0
	}
	v, err := f.c.I32(f.order)
	f.check(field, err)
	return v
}

// Pad discards n bytes of struct padding.
func (f *Fields) Pad(field string, n int) {
	if !f.start() {
		return
	}
	f.check(field, f.c.Skip(n))
}

// Array fills dst with the next len(dst) bytes.
func (f *Fields) Array(field string, dst []byte) {
	if !f.start() {
		return
	}
	b, err := f.c.next(len(dst))
	if f.check(field, err) {
		copy(dst, b)
	}
}
