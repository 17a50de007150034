package rtnetlink

import (
	"github.com/vishvananda/netlink/nl"

	"github.com/m-lab/nl-dump/cursor"
	"github.com/m-lab/nl-dump/netlink"
	"github.com/m-lab/nl-dump/nlenum"
)

// Tcmsg is a traffic control message: qdisc, class or filter.
type Tcmsg struct {
	Family     uint8
	Index      int32
	Handle     uint32
	Parent     uint32
	Info       uint32
	Attributes []netlink.Attribute[nlenum.Tca]
}

// DecodeTcmsg decodes a traffic control message body ending at end.
func DecodeTcmsg(c *cursor.Cursor, end int) (*Tcmsg, error) {
	start := c.Position()
	f := cursor.NewFields(c, cursor.Native)
	m := Tcmsg{}
	m.Family = f.U8("tcm_family")
	f.Pad("tcm__pad1", 1)
	f.Pad("tcm__pad2", 2)
	m.Index = f.I32("tcm_ifindex")
	m.Handle = f.U32("tcm_handle")
	m.Parent = f.U32("tcm_parent")
	m.Info = f.U32("tcm_info")
	if err := fixedEnd(f, c, start, nl.SizeofTcMsg, end); err != nil {
		return nil, err
	}
	attrs, err := netlink.ReadAttributes(c, end, nlenum.TcaTable)
	if err != nil {
		return nil, err
	}
	m.Attributes = attrs
	return &m, nil
}

// Values interprets the attribute payloads.
func (m *Tcmsg) Values() []AttrValue {
	return values(m.Attributes, nlenum.TcaTable, tcShapes)
}

var tcShapes = map[nlenum.Tca]shape{
	nlenum.TCA_KIND:          shapeString,
	nlenum.TCA_OPTIONS:       shapeNested,
	nlenum.TCA_STATS2:        shapeNested,
	nlenum.TCA_CHAIN:         shapeU32,
	nlenum.TCA_HW_OFFLOAD:    shapeU8,
	nlenum.TCA_INGRESS_BLOCK: shapeU32,
	nlenum.TCA_EGRESS_BLOCK:  shapeU32,
	nlenum.TCA_EXT_WARN_MSG:  shapeString,
}
