package rtnetlink

import (
	"golang.org/x/sys/unix"

	"github.com/m-lab/nl-dump/cursor"
	"github.com/m-lab/nl-dump/netlink"
	"github.com/m-lab/nl-dump/nlenum"
)

// Ifinfomsg is a link message (RTM_NEWLINK, RTM_DELLINK, RTM_GETLINK).
type Ifinfomsg struct {
	Family     uint8
	Type       uint16 // ARPHRD_* device type.
	Index      int32
	Flags      nlenum.Iff
	Change     uint32
	Attributes []netlink.Attribute[nlenum.Ifla]
}

// DecodeIfinfomsg decodes a link message body ending at end.
func DecodeIfinfomsg(c *cursor.Cursor, end int) (*Ifinfomsg, error) {
	start := c.Position()
	f := cursor.NewFields(c, cursor.Native)
	m := Ifinfomsg{}
	m.Family = f.U8("ifi_family")
	f.Pad("ifi_pad", 1)
	m.Type = f.U16("ifi_type")
	m.Index = f.I32("ifi_index")
	m.Flags = nlenum.Iff(f.U32("ifi_flags"))
	m.Change = f.U32("ifi_change")
	if err := fixedEnd(f, c, start, unix.SizeofIfInfomsg, end); err != nil {
		return nil, err
	}
	attrs, err := netlink.ReadAttributes(c, end, nlenum.IflaTable)
	if err != nil {
		return nil, err
	}
	m.Attributes = attrs
	return &m, nil
}

// Values interprets the attribute payloads.
func (m *Ifinfomsg) Values() []AttrValue {
	return values(m.Attributes, nlenum.IflaTable, linkShapes)
}

var linkShapes = map[nlenum.Ifla]shape{
	nlenum.IFLA_ADDRESS:             shapeMAC,
	nlenum.IFLA_BROADCAST:           shapeMAC,
	nlenum.IFLA_PERM_ADDRESS:        shapeMAC,
	nlenum.IFLA_IFNAME:              shapeString,
	nlenum.IFLA_QDISC:               shapeString,
	nlenum.IFLA_IFALIAS:             shapeString,
	nlenum.IFLA_PHYS_PORT_NAME:      shapeString,
	nlenum.IFLA_ALT_IFNAME:          shapeString,
	nlenum.IFLA_PARENT_DEV_NAME:     shapeString,
	nlenum.IFLA_PARENT_DEV_BUS_NAME: shapeString,
	nlenum.IFLA_MTU:                 shapeU32,
	nlenum.IFLA_LINK:                shapeU32,
	nlenum.IFLA_MASTER:              shapeU32,
	nlenum.IFLA_TXQLEN:              shapeU32,
	nlenum.IFLA_NUM_VF:              shapeU32,
	nlenum.IFLA_GROUP:               shapeU32,
	nlenum.IFLA_NET_NS_PID:          shapeU32,
	nlenum.IFLA_NET_NS_FD:           shapeU32,
	nlenum.IFLA_EXT_MASK:            shapeU32,
	nlenum.IFLA_PROMISCUITY:         shapeU32,
	nlenum.IFLA_NUM_TX_QUEUES:       shapeU32,
	nlenum.IFLA_NUM_RX_QUEUES:       shapeU32,
	nlenum.IFLA_CARRIER_CHANGES:     shapeU32,
	nlenum.IFLA_GSO_MAX_SEGS:        shapeU32,
	nlenum.IFLA_GSO_MAX_SIZE:        shapeU32,
	nlenum.IFLA_EVENT:               shapeU32,
	nlenum.IFLA_CARRIER_UP_COUNT:    shapeU32,
	nlenum.IFLA_CARRIER_DOWN_COUNT:  shapeU32,
	nlenum.IFLA_NEW_IFINDEX:         shapeI32,
	nlenum.IFLA_MIN_MTU:             shapeU32,
	nlenum.IFLA_MAX_MTU:             shapeU32,
	nlenum.IFLA_GRO_MAX_SIZE:        shapeU32,
	nlenum.IFLA_TSO_MAX_SIZE:        shapeU32,
	nlenum.IFLA_TSO_MAX_SEGS:        shapeU32,
	nlenum.IFLA_ALLMULTI:            shapeU32,
	nlenum.IFLA_GSO_IPV4_MAX_SIZE:   shapeU32,
	nlenum.IFLA_GRO_IPV4_MAX_SIZE:   shapeU32,
	nlenum.IFLA_LINK_NETNSID:        shapeI32,
	nlenum.IFLA_NEW_NETNSID:         shapeI32,
	nlenum.IFLA_IF_NETNSID:          shapeI32,
	nlenum.IFLA_OPERSTATE:           shapeU8,
	nlenum.IFLA_LINKMODE:            shapeU8,
	nlenum.IFLA_CARRIER:             shapeU8,
	nlenum.IFLA_PROTO_DOWN:          shapeU8,
	nlenum.IFLA_LINKINFO:            shapeNested,
	nlenum.IFLA_AF_SPEC:             shapeNested,
	nlenum.IFLA_PROP_LIST:           shapeNested,
	nlenum.IFLA_XDP:                 shapeNested,
	nlenum.IFLA_VFINFO_LIST:         shapeNested,
	nlenum.IFLA_VF_PORTS:            shapeNested,
	nlenum.IFLA_PORT_SELF:           shapeNested,
	nlenum.IFLA_PROTO_DOWN_REASON:   shapeNested,
}
