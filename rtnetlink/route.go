package rtnetlink

import (
	"golang.org/x/sys/unix"

	"github.com/m-lab/nl-dump/cursor"
	"github.com/m-lab/nl-dump/netlink"
	"github.com/m-lab/nl-dump/nlenum"
)

// Rtmsg is a route message (RTM_NEWROUTE, RTM_DELROUTE, RTM_GETROUTE).
type Rtmsg struct {
	Family     uint8
	DstLen     uint8
	SrcLen     uint8
	Tos        uint8
	Table      nlenum.RtTable // See RTA_TABLE for ids above 255.
	Protocol   nlenum.Rtprot
	Scope      nlenum.Scope
	Type       nlenum.Rtn
	Flags      nlenum.RtmFlag
	Attributes []netlink.Attribute[nlenum.Rta]
}

// DecodeRtmsg decodes a route message body ending at end.  The protocol,
// scope and type fields must be known values.
func DecodeRtmsg(c *cursor.Cursor, end int) (*Rtmsg, error) {
	start := c.Position()
	f := cursor.NewFields(c, cursor.Native)
	m := Rtmsg{}
	m.Family = f.U8("rtm_family")
	m.DstLen = f.U8("rtm_dst_len")
	m.SrcLen = f.U8("rtm_src_len")
	m.Tos = f.U8("rtm_tos")
	m.Table = nlenum.RtTable(f.U8("rtm_table"))
	m.Protocol = known(f, "rtm_protocol", nlenum.Rtprot(f.U8("rtm_protocol")), nlenum.RtprotTable)
	m.Scope = known(f, "rtm_scope", nlenum.Scope(f.U8("rtm_scope")), nlenum.ScopeTable)
	m.Type = known(f, "rtm_type", nlenum.Rtn(f.U8("rtm_type")), nlenum.RtnTable)
	m.Flags = nlenum.RtmFlag(f.U32("rtm_flags"))
	if err := fixedEnd(f, c, start, unix.SizeofRtMsg, end); err != nil {
		return nil, err
	}
	attrs, err := netlink.ReadAttributes(c, end, nlenum.RtaTable)
	if err != nil {
		return nil, err
	}
	m.Attributes = attrs
	return &m, nil
}

// Values interprets the attribute payloads.
func (m *Rtmsg) Values() []AttrValue {
	return values(m.Attributes, nlenum.RtaTable, routeShapes)
}

var routeShapes = map[nlenum.Rta]shape{
	nlenum.RTA_DST:           shapeIP,
	nlenum.RTA_SRC:           shapeIP,
	nlenum.RTA_GATEWAY:       shapeIP,
	nlenum.RTA_PREFSRC:       shapeIP,
	nlenum.RTA_NEWDST:        shapeIP,
	nlenum.RTA_IIF:           shapeU32,
	nlenum.RTA_OIF:           shapeU32,
	nlenum.RTA_PRIORITY:      shapeU32,
	nlenum.RTA_FLOW:          shapeU32,
	nlenum.RTA_TABLE:         shapeU32,
	nlenum.RTA_MARK:          shapeU32,
	nlenum.RTA_UID:           shapeU32,
	nlenum.RTA_NH_ID:         shapeU32,
	nlenum.RTA_PREF:          shapeU8,
	nlenum.RTA_TTL_PROPAGATE: shapeU8,
	nlenum.RTA_IP_PROTO:      shapeU8,
	nlenum.RTA_ENCAP_TYPE:    shapeU16,
	nlenum.RTA_SPORT:         shapeU16BE,
	nlenum.RTA_DPORT:         shapeU16BE,
	nlenum.RTA_METRICS:       shapeNested,
	nlenum.RTA_ENCAP:         shapeNested,
}
