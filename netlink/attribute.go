package netlink

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/m-lab/nl-dump/cursor"
	"github.com/m-lab/nl-dump/nlenum"
)

// AttributeHeaderLen is the size of the rtattr length and type fields.
const AttributeHeaderLen = unix.SizeofRtAttr

const attrFlagMask = unix.NLA_F_NESTED | unix.NLA_F_NET_BYTEORDER

// Attribute is one type-length-value record whose kind comes from table K.
type Attribute[K nlenum.Value] struct {
	// Length is the declared rta_len.  It counts the 4 byte header and the
	// payload, not the alignment padding.
	Length       uint16
	Kind         K
	Nested       bool `json:",omitempty"`
	NetByteOrder bool `json:",omitempty"`
	Payload      []byte
}

// ReadAttribute decodes one attribute and leaves the cursor at the next 4 byte
// boundary.  The kind must be present in table.
func ReadAttribute[K nlenum.Value](c *cursor.Cursor, table *nlenum.Table[K]) (Attribute[K], error) {
	var a Attribute[K]
	f := cursor.NewFields(c, cursor.Native)
	a.Length = f.U16("rta_len")
	raw := f.U16("rta_type")
	if f.Err() == nil {
		kind, ok := table.Lookup(uint64(raw &^ attrFlagMask))
		if !ok {
			f.Fail("rta_type", errors.Wrapf(ErrUnknownValue, "%s%d", table.Prefix(), raw&^attrFlagMask))
		}
		a.Kind = kind
		a.Nested = raw&unix.NLA_F_NESTED != 0
		a.NetByteOrder = raw&unix.NLA_F_NET_BYTEORDER != 0
	}
	if f.Err() == nil && a.Length < AttributeHeaderLen {
		f.Fail("rta_len", errors.Wrapf(ErrAttributeLength, "rta_len %d", a.Length))
	}
	if err := f.Err(); err != nil {
		return a, err
	}
	payload, err := c.Bytes(int(a.Length) - AttributeHeaderLen)
	if err != nil {
		return a, &cursor.FieldError{Field: table.Name(a.Kind), Offset: c.Position(), Err: err}
	}
	a.Payload = payload
	c.Align()
	return a, nil
}

// ReadAttributes decodes attributes until the cursor reaches end.  Attributes
// are returned in wire order.
func ReadAttributes[K nlenum.Value](c *cursor.Cursor, end int, table *nlenum.Table[K]) ([]Attribute[K], error) {
	var attrs []Attribute[K]
	c.Limit(end)
	for c.Position() < end {
		a, err := ReadAttribute(c, table)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}
