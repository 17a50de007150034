package rtnetlink

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/m-lab/nl-dump/cursor"
	"github.com/m-lab/nl-dump/netlink"
	"github.com/m-lab/nl-dump/nlenum"
)

// CacheinfoMarker is the ndm_type value that announces an embedded
// NdaCacheinfo ahead of the attributes.
const CacheinfoMarker = nlenum.Rtn(nlenum.NDA_CACHEINFO)

// NdaCacheinfoLen is the wire size of NdaCacheinfo.
const NdaCacheinfoLen = 16

// NdaCacheinfo holds neighbor entry timers, in clock ticks.
type NdaCacheinfo struct {
	Confirmed uint32
	Used      uint32
	Updated   uint32
	RefCnt    uint32
}

// ReadNdaCacheinfo decodes a struct nda_cacheinfo.
func ReadNdaCacheinfo(c *cursor.Cursor) (*NdaCacheinfo, error) {
	f := cursor.NewFields(c, cursor.Native)
	ci := NdaCacheinfo{}
	ci.Confirmed = f.U32("ndm_confirmed")
	ci.Used = f.U32("ndm_used")
	ci.Updated = f.U32("ndm_updated")
	ci.RefCnt = f.U32("ndm_refcnt")
	if err := f.Err(); err != nil {
		return nil, errors.Wrap(err, "nda_cacheinfo")
	}
	return &ci, nil
}

// Ndmsg is a neighbor message (RTM_NEWNEIGH, RTM_DELNEIGH, RTM_GETNEIGH).
type Ndmsg struct {
	Family     uint8
	Index      int32
	State      nlenum.Nud
	Flags      nlenum.Ntf
	Type       nlenum.Rtn
	CacheInfo  *NdaCacheinfo `json:",omitempty"` // Only when Type is CacheinfoMarker.
	Attributes []netlink.Attribute[nlenum.Nda]
}

// DecodeNdmsg decodes a neighbor message body ending at end.
func DecodeNdmsg(c *cursor.Cursor, end int) (*Ndmsg, error) {
	start := c.Position()
	f := cursor.NewFields(c, cursor.Native)
	m := Ndmsg{}
	m.Family = f.U8("ndm_family")
	f.Pad("ndm_pad1", 1)
	f.Pad("ndm_pad2", 2)
	m.Index = f.I32("ndm_ifindex")
	m.State = nlenum.Nud(f.U16("ndm_state"))
	m.Flags = nlenum.Ntf(f.U8("ndm_flags"))
	m.Type = known(f, "ndm_type", nlenum.Rtn(f.U8("ndm_type")), nlenum.RtnTable)
	if err := fixedEnd(f, c, start, unix.SizeofNdMsg, end); err != nil {
		return nil, err
	}
	if m.Type == CacheinfoMarker {
		ci, err := ReadNdaCacheinfo(c)
		if err != nil {
			return nil, err
		}
		m.CacheInfo = ci
	}
	attrs, err := netlink.ReadAttributes(c, end, nlenum.NdaTable)
	if err != nil {
		return nil, err
	}
	m.Attributes = attrs
	return &m, nil
}

// Values interprets the attribute payloads.
func (m *Ndmsg) Values() []AttrValue {
	return values(m.Attributes, nlenum.NdaTable, neighShapes)
}

var neighShapes = map[nlenum.Nda]shape{
	nlenum.NDA_DST:            shapeIP,
	nlenum.NDA_LLADDR:         shapeMAC,
	nlenum.NDA_CACHEINFO:      shapeNdaCacheinfo,
	nlenum.NDA_PROBES:         shapeU32,
	nlenum.NDA_VLAN:           shapeU16,
	nlenum.NDA_PORT:           shapeU16BE,
	nlenum.NDA_VNI:            shapeU32,
	nlenum.NDA_IFINDEX:        shapeU32,
	nlenum.NDA_MASTER:         shapeU32,
	nlenum.NDA_LINK_NETNSID:   shapeI32,
	nlenum.NDA_SRC_VNI:        shapeU32,
	nlenum.NDA_PROTOCOL:       shapeU8,
	nlenum.NDA_NH_ID:          shapeU32,
	nlenum.NDA_FDB_EXT_ATTRS:  shapeNested,
	nlenum.NDA_FLAGS_EXT:      shapeU32,
	nlenum.NDA_NDM_STATE_MASK: shapeU16,
	nlenum.NDA_NDM_FLAGS_MASK: shapeU8,
}
