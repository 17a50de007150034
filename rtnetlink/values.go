package rtnetlink

import (
	"encoding/binary"
	"net"
	"strings"

	"github.com/pkg/errors"

	"github.com/m-lab/nl-dump/cursor"
	"github.com/m-lab/nl-dump/netlink"
	"github.com/m-lab/nl-dump/nlenum"
)

// shape says how an attribute payload is laid out.  The zero value keeps the
// payload as raw bytes.
type shape uint8

const (
	shapeBytes shape = iota
	shapeString
	shapeU8
	shapeU16
	shapeU16BE
	shapeU32
	shapeI32
	shapeIP
	shapeMAC
	shapeNested
	shapeIfaFlags
	shapeIfaCacheinfo
	shapeNdaCacheinfo
)

var fixedSize = map[shape]int{
	shapeU8:           1,
	shapeU16:          2,
	shapeU16BE:        2,
	shapeU32:          4,
	shapeI32:          4,
	shapeIfaFlags:     4,
	shapeIfaCacheinfo: 16,
	shapeNdaCacheinfo: NdaCacheinfoLen,
}

func (s shape) interpret(p []byte) (interface{}, error) {
	if n, ok := fixedSize[s]; ok && len(p) != n {
		return nil, errors.Wrapf(ErrPayloadSize, "want %d bytes, have %d", n, len(p))
	}
	switch s {
	case shapeString:
		return strings.TrimRight(string(p), "\x00"), nil
	case shapeU8:
		return p[0], nil
	case shapeU16:
		return cursor.Native.Uint16(p), nil
	case shapeU16BE:
		return binary.BigEndian.Uint16(p), nil
	case shapeU32:
		return cursor.Native.Uint32(p), nil
	case shapeI32:
		return int32(cursor.Native.Uint32(p)), nil
	case shapeIP:
		if len(p) != net.IPv4len && len(p) != net.IPv6len {
			return nil, errors.Wrapf(ErrPayloadSize, "address of %d bytes", len(p))
		}
		return net.IP(append([]byte{}, p...)), nil
	case shapeMAC:
		return net.HardwareAddr(append([]byte{}, p...)), nil
	case shapeNested:
		return netlink.DecodeNested(p)
	case shapeIfaFlags:
		return nlenum.IfaFlag(cursor.Native.Uint32(p)), nil
	case shapeIfaCacheinfo:
		return &IfaCacheinfo{
			Prefered: cursor.Native.Uint32(p[0:4]),
			Valid:    cursor.Native.Uint32(p[4:8]),
			Cstamp:   cursor.Native.Uint32(p[8:12]),
			Tstamp:   cursor.Native.Uint32(p[12:16]),
		}, nil
	case shapeNdaCacheinfo:
		return ReadNdaCacheinfo(cursor.New(p))
	}
	return p, nil
}

// LinkValue interprets a link attribute payload according to its kind.
func LinkValue(a netlink.Attribute[nlenum.Ifla]) (interface{}, error) {
	return linkShapes[a.Kind].interpret(a.Payload)
}

// AddrValue interprets an address attribute payload according to its kind.
func AddrValue(a netlink.Attribute[nlenum.Ifa]) (interface{}, error) {
	return addrShapes[a.Kind].interpret(a.Payload)
}

// RouteValue interprets a route attribute payload according to its kind.
func RouteValue(a netlink.Attribute[nlenum.Rta]) (interface{}, error) {
	return routeShapes[a.Kind].interpret(a.Payload)
}

// NeighValue interprets a neighbor attribute payload according to its kind.
func NeighValue(a netlink.Attribute[nlenum.Nda]) (interface{}, error) {
	return neighShapes[a.Kind].interpret(a.Payload)
}

// TCValue interprets a traffic control attribute payload according to its kind.
func TCValue(a netlink.Attribute[nlenum.Tca]) (interface{}, error) {
	return tcShapes[a.Kind].interpret(a.Payload)
}
