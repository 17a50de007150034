// Package netlink decodes the framing shared by all netlink messages in a
// packet capture: the Linux cooked capture header, the nlmsghdr, and the
// rtattr style type-length-value attributes that follow a message body.
package netlink

import (
	"encoding/binary"
	"fmt"

	mnl "github.com/mdlayher/netlink"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/m-lab/nl-dump/cursor"
	"github.com/m-lab/nl-dump/nlenum"
)

// Error types.
var (
	ErrUnknownFamily   = errors.New("unknown netlink family")
	ErrUnknownValue    = errors.New("unknown enumeration value")
	ErrHeaderLength    = errors.New("nlmsg_len shorter than nlmsghdr")
	ErrAttributeLength = errors.New("attribute length shorter than attribute header")
)

// CookedHeaderLen is the size of a Linux cooked (SLL) capture header.
const CookedHeaderLen = 16

// HeaderLen is the size of an nlmsghdr.
const HeaderLen = unix.NLMSG_HDRLEN

// CookedHeader is the pseudo link layer header that packet capture prepends
// to netlink traffic.  Its fields are big endian.
type CookedHeader struct {
	HeaderType    uint16
	ArphrdType    uint16
	AddressLength uint16
	Address       [8]byte
	Family        nlenum.Family
}

// ReadCookedHeader decodes a cooked header.  It fails if the protocol field
// does not name a known netlink family.
func ReadCookedHeader(c *cursor.Cursor) (*CookedHeader, error) {
	start := c.Position()
	f := cursor.NewFields(c, binary.BigEndian)
	h := CookedHeader{}
	h.HeaderType = f.U16("sll_pkttype")
	h.ArphrdType = f.U16("sll_hatype")
	h.AddressLength = f.U16("sll_halen")
	f.Array("sll_addr", h.Address[:])
	family := f.U16("sll_protocol")
	if f.Err() == nil {
		v, ok := nlenum.FamilyTable.Lookup(uint64(family))
		if !ok {
			f.Fail("sll_protocol", errors.Wrapf(ErrUnknownFamily, "%d", family))
		}
		h.Family = v
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	if n := c.Position() - start; n != CookedHeaderLen {
		return nil, errors.Errorf("cooked header consumed %d bytes", n)
	}
	return &h, nil
}

// MessageKind says how a MessageType was resolved.
type MessageKind uint8

// Resolution kinds for MessageType.
const (
	Raw     MessageKind = iota // Not recognized; kept as a number.
	Control                    // NLMSG_* control message, any family.
	Route                      // RTM_* message in NETLINK_ROUTE.
)

func (k MessageKind) String() string {
	switch k {
	case Control:
		return "control"
	case Route:
		return "route"
	}
	return "raw"
}

// MessageType is the nlmsg_type field resolved against the family.
type MessageType struct {
	Kind MessageKind
	Raw  uint16
}

// ResolveType applies the message type resolution policy: reserved values
// 1-4 are control messages in every family, route family types come from the
// RTM table, and anything else is kept raw.
func ResolveType(family nlenum.Family, raw uint16) MessageType {
	if _, ok := nlenum.ControlTable.Lookup(uint64(raw)); ok {
		return MessageType{Kind: Control, Raw: raw}
	}
	if family == nlenum.NETLINK_ROUTE {
		if _, ok := nlenum.MsgTypeTable.Lookup(uint64(raw)); ok {
			return MessageType{Kind: Route, Raw: raw}
		}
	}
	return MessageType{Kind: Raw, Raw: raw}
}

// Control returns the control type, if Kind is Control.
func (m MessageType) Control() (nlenum.ControlType, bool) {
	return nlenum.ControlType(m.Raw), m.Kind == Control
}

// Route returns the rtnetlink type, if Kind is Route.
func (m MessageType) Route() (nlenum.MsgType, bool) {
	return nlenum.MsgType(m.Raw), m.Kind == Route
}

func (m MessageType) String() string {
	switch m.Kind {
	case Control:
		return nlenum.ControlType(m.Raw).String()
	case Route:
		return nlenum.MsgType(m.Raw).String()
	}
	return fmt.Sprintf("Raw(%d)", m.Raw)
}

// MarshalText renders the resolved type name.
func (m MessageType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Header is a decoded nlmsghdr.
type Header struct {
	Length   uint32 // Total message length, including this header.
	Type     MessageType
	Flags    uint16
	Sequence uint32
	PortID   uint32
}

// ReadHeader decodes an nlmsghdr in native byte order.  The family decides how
// the message type is resolved.
func ReadHeader(c *cursor.Cursor, family nlenum.Family) (*Header, error) {
	f := cursor.NewFields(c, cursor.Native)
	h := Header{}
	h.Length = f.U32("nlmsg_len")
	raw := f.U16("nlmsg_type")
	h.Flags = f.U16("nlmsg_flags")
	h.Sequence = f.U32("nlmsg_seq")
	h.PortID = f.U32("nlmsg_pid")
	if err := f.Err(); err != nil {
		return nil, err
	}
	if h.Length < HeaderLen {
		return nil, errors.Wrapf(ErrHeaderLength, "nlmsg_len %d", h.Length)
	}
	h.Type = ResolveType(family, raw)
	return &h, nil
}

// FlagsString renders the nlmsg_flags bits.
func (h *Header) FlagsString() string {
	return mnl.HeaderFlags(h.Flags).String()
}
