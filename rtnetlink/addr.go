package rtnetlink

import (
	"golang.org/x/sys/unix"

	"github.com/m-lab/nl-dump/cursor"
	"github.com/m-lab/nl-dump/netlink"
	"github.com/m-lab/nl-dump/nlenum"
)

// Ifaddrmsg is an address message (RTM_NEWADDR, RTM_DELADDR, RTM_GETADDR).
type Ifaddrmsg struct {
	Family     uint8
	PrefixLen  uint8
	Flags      nlenum.IfaFlag // Low 8 bits only; see IFA_FLAGS.
	Scope      nlenum.Scope
	Index      uint32
	Attributes []netlink.Attribute[nlenum.Ifa]
}

// DecodeIfaddrmsg decodes an address message body ending at end.
func DecodeIfaddrmsg(c *cursor.Cursor, end int) (*Ifaddrmsg, error) {
	start := c.Position()
	f := cursor.NewFields(c, cursor.Native)
	m := Ifaddrmsg{}
	m.Family = f.U8("ifa_family")
	m.PrefixLen = f.U8("ifa_prefixlen")
	m.Flags = nlenum.IfaFlag(f.U8("ifa_flags"))
	m.Scope = known(f, "ifa_scope", nlenum.Scope(f.U8("ifa_scope")), nlenum.ScopeTable)
	m.Index = f.U32("ifa_index")
	if err := fixedEnd(f, c, start, unix.SizeofIfAddrmsg, end); err != nil {
		return nil, err
	}
	attrs, err := netlink.ReadAttributes(c, end, nlenum.IfaTable)
	if err != nil {
		return nil, err
	}
	m.Attributes = attrs
	return &m, nil
}

// Values interprets the attribute payloads.
func (m *Ifaddrmsg) Values() []AttrValue {
	return values(m.Attributes, nlenum.IfaTable, addrShapes)
}

// IfaCacheinfo is the payload of IFA_CACHEINFO.
type IfaCacheinfo struct {
	Prefered uint32
	Valid    uint32
	Cstamp   uint32 // Created, in hundredths of a second since boot.
	Tstamp   uint32 // Updated, in hundredths of a second since boot.
}

var addrShapes = map[nlenum.Ifa]shape{
	nlenum.IFA_ADDRESS:        shapeIP,
	nlenum.IFA_LOCAL:          shapeIP,
	nlenum.IFA_BROADCAST:      shapeIP,
	nlenum.IFA_ANYCAST:        shapeIP,
	nlenum.IFA_MULTICAST:      shapeIP,
	nlenum.IFA_LABEL:          shapeString,
	nlenum.IFA_CACHEINFO:      shapeIfaCacheinfo,
	nlenum.IFA_FLAGS:          shapeIfaFlags,
	nlenum.IFA_RT_PRIORITY:    shapeU32,
	nlenum.IFA_TARGET_NETNSID: shapeI32,
	nlenum.IFA_PROTO:          shapeU8,
}
