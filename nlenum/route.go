package nlenum

import "fmt"

// Rta is a route attribute kind (RTA_*), uapi/linux/rtnetlink.h.
type Rta uint16

const (
	RTA_UNSPEC Rta = iota
	RTA_DST
	RTA_SRC
	RTA_IIF
	RTA_OIF
	RTA_GATEWAY
	RTA_PRIORITY
	RTA_PREFSRC
	RTA_METRICS
	RTA_MULTIPATH
	RTA_PROTOINFO
	RTA_FLOW
	RTA_CACHEINFO
	RTA_SESSION
	RTA_MP_ALGO
	RTA_TABLE
	RTA_MARK
	RTA_MFC_STATS
	RTA_VIA
	RTA_NEWDST
	RTA_PREF
	RTA_ENCAP_TYPE
	RTA_ENCAP
	RTA_EXPIRES
	RTA_PAD
	RTA_UID
	RTA_TTL_PROPAGATE
	RTA_IP_PROTO
	RTA_SPORT
	RTA_DPORT
	RTA_NH_ID
)

// RtaTable names the route attribute kinds.
var RtaTable = Dense[Rta]("RTA_",
	"UNSPEC", "DST", "SRC", "IIF", "OIF", "GATEWAY", "PRIORITY", "PREFSRC",
	"METRICS", "MULTIPATH", "PROTOINFO", "FLOW", "CACHEINFO", "SESSION", "MP_ALGO", "TABLE",
	"MARK", "MFC_STATS", "VIA", "NEWDST", "PREF", "ENCAP_TYPE", "ENCAP", "EXPIRES",
	"PAD", "UID", "TTL_PROPAGATE", "IP_PROTO", "SPORT", "DPORT", "NH_ID",
)

func (x Rta) String() string { return RtaTable.Name(x) }

// MarshalText renders the attribute kind name.
func (x Rta) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// Rtprot identifies who installed a route (RTPROT_*).
type Rtprot uint8

const (
	RTPROT_UNSPEC     Rtprot = 0
	RTPROT_REDIRECT   Rtprot = 1
	RTPROT_KERNEL     Rtprot = 2
	RTPROT_BOOT       Rtprot = 3
	RTPROT_STATIC     Rtprot = 4
	RTPROT_GATED      Rtprot = 8
	RTPROT_RA         Rtprot = 9
	RTPROT_MRT        Rtprot = 10
	RTPROT_ZEBRA      Rtprot = 11
	RTPROT_BIRD       Rtprot = 12
	RTPROT_DNROUTED   Rtprot = 13
	RTPROT_XORP       Rtprot = 14
	RTPROT_NTK        Rtprot = 15
	RTPROT_DHCP       Rtprot = 16
	RTPROT_MROUTED    Rtprot = 17
	RTPROT_KEEPALIVED Rtprot = 18
	RTPROT_BABEL      Rtprot = 42
	RTPROT_OPENR      Rtprot = 99
	RTPROT_BGP        Rtprot = 186
	RTPROT_ISIS       Rtprot = 187
	RTPROT_OSPF       Rtprot = 188
	RTPROT_RIP        Rtprot = 189
	RTPROT_EIGRP      Rtprot = 192
)

// RtprotTable names the routing protocols.
var RtprotTable = NewTable("RTPROT_", map[Rtprot]string{
	RTPROT_UNSPEC:     "UNSPEC",
	RTPROT_REDIRECT:   "REDIRECT",
	RTPROT_KERNEL:     "KERNEL",
	RTPROT_BOOT:       "BOOT",
	RTPROT_STATIC:     "STATIC",
	RTPROT_GATED:      "GATED",
	RTPROT_RA:         "RA",
	RTPROT_MRT:        "MRT",
	RTPROT_ZEBRA:      "ZEBRA",
	RTPROT_BIRD:       "BIRD",
	RTPROT_DNROUTED:   "DNROUTED",
	RTPROT_XORP:       "XORP",
	RTPROT_NTK:        "NTK",
	RTPROT_DHCP:       "DHCP",
	RTPROT_MROUTED:    "MROUTED",
	RTPROT_KEEPALIVED: "KEEPALIVED",
	RTPROT_BABEL:      "BABEL",
	RTPROT_OPENR:      "OPENR",
	RTPROT_BGP:        "BGP",
	RTPROT_ISIS:       "ISIS",
	RTPROT_OSPF:       "OSPF",
	RTPROT_RIP:        "RIP",
	RTPROT_EIGRP:      "EIGRP",
})

func (x Rtprot) String() string { return RtprotTable.Name(x) }

// MarshalText renders the protocol name.
func (x Rtprot) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// Rtn is a route type (RTN_*).  Neighbor entries reuse it for ndm_type.
type Rtn uint8

const (
	RTN_UNSPEC Rtn = iota
	RTN_UNICAST
	RTN_LOCAL
	RTN_BROADCAST
	RTN_ANYCAST
	RTN_MULTICAST
	RTN_BLACKHOLE
	RTN_UNREACHABLE
	RTN_PROHIBIT
	RTN_THROW
	RTN_NAT
	RTN_XRESOLVE
)

// RtnTable names the route types.
var RtnTable = Dense[Rtn]("RTN_",
	"UNSPEC", "UNICAST", "LOCAL", "BROADCAST", "ANYCAST", "MULTICAST",
	"BLACKHOLE", "UNREACHABLE", "PROHIBIT", "THROW", "NAT", "XRESOLVE",
)

func (x Rtn) String() string { return RtnTable.Name(x) }

// MarshalText renders the route type name.
func (x Rtn) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// RtmFlag is the rtm_flags bitmask.  The low byte holds next hop flags
// (RTNH_F_*), the upper bits hold RTM_F_* flags.
type RtmFlag uint32

const (
	RTNH_F_DEAD          RtmFlag = 0x1
	RTNH_F_PERVASIVE     RtmFlag = 0x2
	RTNH_F_ONLINK        RtmFlag = 0x4
	RTNH_F_OFFLOAD       RtmFlag = 0x8
	RTNH_F_LINKDOWN      RtmFlag = 0x10
	RTNH_F_UNRESOLVED    RtmFlag = 0x20
	RTNH_F_TRAP          RtmFlag = 0x40
	RTM_F_NOTIFY         RtmFlag = 0x100
	RTM_F_CLONED         RtmFlag = 0x200
	RTM_F_EQUALIZE       RtmFlag = 0x400
	RTM_F_PREFIX         RtmFlag = 0x800
	RTM_F_LOOKUP_TABLE   RtmFlag = 0x1000
	RTM_F_FIB_MATCH      RtmFlag = 0x2000
	RTM_F_OFFLOAD        RtmFlag = 0x4000
	RTM_F_TRAP           RtmFlag = 0x8000
	RTM_F_OFFLOAD_FAILED RtmFlag = 0x20000000
)

// RtmFlagTable names the route flag bits.  Names carry their own prefixes.
var RtmFlagTable = NewTable("", map[RtmFlag]string{
	RTNH_F_DEAD:          "RTNH_F_DEAD",
	RTNH_F_PERVASIVE:     "RTNH_F_PERVASIVE",
	RTNH_F_ONLINK:        "RTNH_F_ONLINK",
	RTNH_F_OFFLOAD:       "RTNH_F_OFFLOAD",
	RTNH_F_LINKDOWN:      "RTNH_F_LINKDOWN",
	RTNH_F_UNRESOLVED:    "RTNH_F_UNRESOLVED",
	RTNH_F_TRAP:          "RTNH_F_TRAP",
	RTM_F_NOTIFY:         "RTM_F_NOTIFY",
	RTM_F_CLONED:         "RTM_F_CLONED",
	RTM_F_EQUALIZE:       "RTM_F_EQUALIZE",
	RTM_F_PREFIX:         "RTM_F_PREFIX",
	RTM_F_LOOKUP_TABLE:   "RTM_F_LOOKUP_TABLE",
	RTM_F_FIB_MATCH:      "RTM_F_FIB_MATCH",
	RTM_F_OFFLOAD:        "RTM_F_OFFLOAD",
	RTM_F_TRAP:           "RTM_F_TRAP",
	RTM_F_OFFLOAD_FAILED: "RTM_F_OFFLOAD_FAILED",
})

func (x RtmFlag) String() string { return RtmFlagTable.Flags(x) }

// MarshalText renders the set flags.
func (x RtmFlag) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// RtTable is a routing table id.  Only the reserved ids have names; other
// values are ordinary user tables.
type RtTable uint8

const (
	RT_TABLE_UNSPEC  RtTable = 0
	RT_TABLE_COMPAT  RtTable = 252
	RT_TABLE_DEFAULT RtTable = 253
	RT_TABLE_MAIN    RtTable = 254
	RT_TABLE_LOCAL   RtTable = 255
)

// RtTableTable names the reserved routing tables.
var RtTableTable = NewTable("RT_TABLE_", map[RtTable]string{
	RT_TABLE_UNSPEC:  "UNSPEC",
	RT_TABLE_COMPAT:  "COMPAT",
	RT_TABLE_DEFAULT: "DEFAULT",
	RT_TABLE_MAIN:    "MAIN",
	RT_TABLE_LOCAL:   "LOCAL",
})

func (x RtTable) String() string {
	if RtTableTable.Known(x) {
		return RtTableTable.Name(x)
	}
	return fmt.Sprint(uint8(x))
}

// MarshalText renders the table name or number.
func (x RtTable) MarshalText() ([]byte, error) { return []byte(x.String()), nil }
