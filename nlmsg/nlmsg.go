// Package nlmsg decodes captured netlink packets into messages.  Each packet
// is a cooked capture header, an nlmsghdr, and a body whose layout depends on
// the message type.
package nlmsg

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/m-lab/nl-dump/cursor"
	"github.com/m-lab/nl-dump/netlink"
	"github.com/m-lab/nl-dump/nlenum"
	"github.com/m-lab/nl-dump/rtnetlink"
)

// BodyKind identifies which body, if any, a message carries.
type BodyKind uint8

// Body kinds.
const (
	None        BodyKind = iota // Control messages carry no body.
	Unsupported                 // Known header, no body decoder.
	Malformed                   // The body decoder failed; see Body.Err.
	Link
	Addr
	Route
	Neigh
	TC
)

var bodyKindNames = []string{"None", "Unsupported", "Malformed", "Link", "Addr", "Route", "Neigh", "TC"}

func (k BodyKind) String() string {
	if int(k) < len(bodyKindNames) {
		return bodyKindNames[k]
	}
	return "BodyKind(?)"
}

// MarshalText renders the kind name.
func (k BodyKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Body is the decoded message body.  At most one of the typed pointers is set,
// matching Kind.
type Body struct {
	Kind  BodyKind
	Link  *rtnetlink.Ifinfomsg `json:",omitempty"`
	Addr  *rtnetlink.Ifaddrmsg `json:",omitempty"`
	Route *rtnetlink.Rtmsg     `json:",omitempty"`
	Neigh *rtnetlink.Ndmsg     `json:",omitempty"`
	TC    *rtnetlink.Tcmsg     `json:",omitempty"`
	Err   error                `json:"-"`
}

// AttributeCount returns the number of attributes in a decoded body.
func (b *Body) AttributeCount() int {
	switch {
	case b.Link != nil:
		return len(b.Link.Attributes)
	case b.Addr != nil:
		return len(b.Addr.Attributes)
	case b.Route != nil:
		return len(b.Route.Attributes)
	case b.Neigh != nil:
		return len(b.Neigh.Attributes)
	case b.TC != nil:
		return len(b.TC.Attributes)
	}
	return 0
}

// MarshalJSON adds the decode error, if any, as a string.
func (b Body) MarshalJSON() ([]byte, error) {
	type body Body
	out := struct {
		body
		Error string `json:",omitempty"`
	}{body: body(b)}
	if b.Err != nil {
		out.Error = b.Err.Error()
	}
	return json.Marshal(out)
}

// NlMsg is one decoded netlink message.
type NlMsg struct {
	Family nlenum.Family
	Header netlink.Header
	Body   Body
}

// Decode decodes one captured packet.  Errors in the cooked header or the
// netlink header are returned; errors in the body produce a Malformed body.
func Decode(buf []byte) (*NlMsg, error) {
	c := cursor.New(buf)
	cooked, err := netlink.ReadCookedHeader(c)
	if err != nil {
		return nil, errors.Wrap(err, "cooked header")
	}
	start := c.Position()
	h, err := netlink.ReadHeader(c, cooked.Family)
	if err != nil {
		return nil, errors.Wrap(err, "netlink header")
	}
	end := start + int(h.Length)
	return &NlMsg{
		Family: cooked.Family,
		Header: *h,
		Body:   decodeBody(c, h.Type, end),
	}, nil
}

func decodeBody(c *cursor.Cursor, t netlink.MessageType, end int) Body {
	if _, ok := t.Control(); ok {
		return Body{Kind: None}
	}
	rt, ok := t.Route()
	if !ok {
		return Body{Kind: Unsupported}
	}
	var b Body
	var err error
	switch rt {
	case nlenum.RTM_NEWLINK, nlenum.RTM_DELLINK, nlenum.RTM_GETLINK, nlenum.RTM_SETLINK:
		b.Kind = Link
		b.Link, err = rtnetlink.DecodeIfinfomsg(c, end)
	case nlenum.RTM_NEWADDR, nlenum.RTM_DELADDR, nlenum.RTM_GETADDR:
		b.Kind = Addr
		b.Addr, err = rtnetlink.DecodeIfaddrmsg(c, end)
	case nlenum.RTM_NEWROUTE, nlenum.RTM_DELROUTE, nlenum.RTM_GETROUTE:
		b.Kind = Route
		b.Route, err = rtnetlink.DecodeRtmsg(c, end)
	case nlenum.RTM_NEWNEIGH, nlenum.RTM_DELNEIGH, nlenum.RTM_GETNEIGH:
		b.Kind = Neigh
		b.Neigh, err = rtnetlink.DecodeNdmsg(c, end)
	case nlenum.RTM_NEWQDISC, nlenum.RTM_DELQDISC, nlenum.RTM_GETQDISC,
		nlenum.RTM_NEWTCLASS, nlenum.RTM_DELTCLASS, nlenum.RTM_GETTCLASS,
		nlenum.RTM_NEWTFILTER, nlenum.RTM_DELTFILTER, nlenum.RTM_GETTFILTER:
		b.Kind = TC
		b.TC, err = rtnetlink.DecodeTcmsg(c, end)
	default:
		return Body{Kind: Unsupported}
	}
	if err != nil {
		return Body{Kind: Malformed, Err: err}
	}
	return b
}
