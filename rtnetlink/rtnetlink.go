// Package rtnetlink decodes the bodies of NETLINK_ROUTE messages: the fixed
// ifinfomsg, ifaddrmsg, rtmsg, ndmsg and tcmsg headers and the attribute lists
// that follow them.
//
// Every decoder takes a cursor positioned at the start of the body and the
// absolute offset where the enclosing netlink message ends.  Attributes are
// read until that offset, so trailing bytes in the capture buffer are never
// mistaken for attributes.
package rtnetlink

import (
	"github.com/pkg/errors"

	"github.com/m-lab/nl-dump/cursor"
	"github.com/m-lab/nl-dump/netlink"
	"github.com/m-lab/nl-dump/nlenum"
)

// Error types.
var (
	ErrShortMessage = errors.New("nlmsg_len shorter than message body")
	ErrPayloadSize  = errors.New("attribute payload has the wrong size")
)

// fixedEnd checks the fixed part of a body after its fields have been read.
func fixedEnd(f *cursor.Fields, c *cursor.Cursor, start, size, end int) error {
	if err := f.Err(); err != nil {
		return err
	}
	if end < start+size {
		return errors.Wrapf(ErrShortMessage, "body needs %d bytes, message has %d", size, end-start)
	}
	c.Limit(end)
	return nil
}

// known records an error on f if v is not a member of table.
func known[T nlenum.Value](f *cursor.Fields, field string, v T, table *nlenum.Table[T]) T {
	if f.Err() == nil && !table.Known(v) {
		f.Fail(field, errors.Wrapf(netlink.ErrUnknownValue, "%s%d", table.Prefix(), uint64(v)))
	}
	return v
}

// AttrValue is an attribute with its payload interpreted by kind.
type AttrValue struct {
	Kind  string
	Value interface{} `json:",omitempty"`
	Err   error       `json:"-"`
}

func values[K nlenum.Value](attrs []netlink.Attribute[K], table *nlenum.Table[K], shapes map[K]shape) []AttrValue {
	out := make([]AttrValue, 0, len(attrs))
	for _, a := range attrs {
		v, err := shapes[a.Kind].interpret(a.Payload)
		out = append(out, AttrValue{Kind: table.Name(a.Kind), Value: v, Err: err})
	}
	return out
}
