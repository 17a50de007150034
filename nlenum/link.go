package nlenum

// Ifla is a link attribute kind (IFLA_*), uapi/linux/if_link.h.
type Ifla uint16

const (
	IFLA_UNSPEC Ifla = iota
	IFLA_ADDRESS
	IFLA_BROADCAST
	IFLA_IFNAME
	IFLA_MTU
	IFLA_LINK
	IFLA_QDISC
	IFLA_STATS
	IFLA_COST
	IFLA_PRIORITY
	IFLA_MASTER
	IFLA_WIRELESS
	IFLA_PROTINFO
	IFLA_TXQLEN
	IFLA_MAP
	IFLA_WEIGHT
	IFLA_OPERSTATE
	IFLA_LINKMODE
	IFLA_LINKINFO
	IFLA_NET_NS_PID
	IFLA_IFALIAS
	IFLA_NUM_VF
	IFLA_VFINFO_LIST
	IFLA_STATS64
	IFLA_VF_PORTS
	IFLA_PORT_SELF
	IFLA_AF_SPEC
	IFLA_GROUP
	IFLA_NET_NS_FD
	IFLA_EXT_MASK
	IFLA_PROMISCUITY
	IFLA_NUM_TX_QUEUES
	IFLA_NUM_RX_QUEUES
	IFLA_CARRIER
	IFLA_PHYS_PORT_ID
	IFLA_CARRIER_CHANGES
	IFLA_PHYS_SWITCH_ID
	IFLA_LINK_NETNSID
	IFLA_PHYS_PORT_NAME
	IFLA_PROTO_DOWN
	IFLA_GSO_MAX_SEGS
	IFLA_GSO_MAX_SIZE
	IFLA_PAD
	IFLA_XDP
	IFLA_EVENT
	IFLA_NEW_NETNSID
	IFLA_IF_NETNSID
	IFLA_CARRIER_UP_COUNT
	IFLA_CARRIER_DOWN_COUNT
	IFLA_NEW_IFINDEX
	IFLA_MIN_MTU
	IFLA_MAX_MTU
	IFLA_PROP_LIST
	IFLA_ALT_IFNAME
	IFLA_PERM_ADDRESS
	IFLA_PROTO_DOWN_REASON
	IFLA_PARENT_DEV_NAME
	IFLA_PARENT_DEV_BUS_NAME
	IFLA_GRO_MAX_SIZE
	IFLA_TSO_MAX_SIZE
	IFLA_TSO_MAX_SEGS
	IFLA_ALLMULTI
	IFLA_DEVLINK_PORT
	IFLA_GSO_IPV4_MAX_SIZE
	IFLA_GRO_IPV4_MAX_SIZE
)

// IflaTable names the link attribute kinds.
var IflaTable = Dense[Ifla]("IFLA_",
	"UNSPEC", "ADDRESS", "BROADCAST", "IFNAME", "MTU", "LINK", "QDISC", "STATS",
	"COST", "PRIORITY", "MASTER", "WIRELESS", "PROTINFO", "TXQLEN", "MAP", "WEIGHT",
	"OPERSTATE", "LINKMODE", "LINKINFO", "NET_NS_PID", "IFALIAS", "NUM_VF", "VFINFO_LIST", "STATS64",
	"VF_PORTS", "PORT_SELF", "AF_SPEC", "GROUP", "NET_NS_FD", "EXT_MASK", "PROMISCUITY", "NUM_TX_QUEUES",
	"NUM_RX_QUEUES", "CARRIER", "PHYS_PORT_ID", "CARRIER_CHANGES", "PHYS_SWITCH_ID", "LINK_NETNSID", "PHYS_PORT_NAME", "PROTO_DOWN",
	"GSO_MAX_SEGS", "GSO_MAX_SIZE", "PAD", "XDP", "EVENT", "NEW_NETNSID", "IF_NETNSID", "CARRIER_UP_COUNT",
	"CARRIER_DOWN_COUNT", "NEW_IFINDEX", "MIN_MTU", "MAX_MTU", "PROP_LIST", "ALT_IFNAME", "PERM_ADDRESS", "PROTO_DOWN_REASON",
	"PARENT_DEV_NAME", "PARENT_DEV_BUS_NAME", "GRO_MAX_SIZE", "TSO_MAX_SIZE", "TSO_MAX_SEGS", "ALLMULTI", "DEVLINK_PORT", "GSO_IPV4_MAX_SIZE",
	"GRO_IPV4_MAX_SIZE",
)

func (x Ifla) String() string { return IflaTable.Name(x) }

// MarshalText renders the attribute kind name.
func (x Ifla) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// Iff is the net_device flags bitmask (IFF_*), uapi/linux/if.h.
type Iff uint32

const (
	IFF_UP          Iff = 0x1
	IFF_BROADCAST   Iff = 0x2
	IFF_DEBUG       Iff = 0x4
	IFF_LOOPBACK    Iff = 0x8
	IFF_POINTOPOINT Iff = 0x10
	IFF_NOTRAILERS  Iff = 0x20
	IFF_RUNNING     Iff = 0x40
	IFF_NOARP       Iff = 0x80
	IFF_PROMISC     Iff = 0x100
	IFF_ALLMULTI    Iff = 0x200
	IFF_MASTER      Iff = 0x400
	IFF_SLAVE       Iff = 0x800
	IFF_MULTICAST   Iff = 0x1000
	IFF_PORTSEL     Iff = 0x2000
	IFF_AUTOMEDIA   Iff = 0x4000
	IFF_DYNAMIC     Iff = 0x8000
	IFF_LOWER_UP    Iff = 0x10000
	IFF_DORMANT     Iff = 0x20000
	IFF_ECHO        Iff = 0x40000
)

// IffTable names the device flag bits.
var IffTable = NewTable("IFF_", map[Iff]string{
	IFF_UP:          "UP",
	IFF_BROADCAST:   "BROADCAST",
	IFF_DEBUG:       "DEBUG",
	IFF_LOOPBACK:    "LOOPBACK",
	IFF_POINTOPOINT: "POINTOPOINT",
	IFF_NOTRAILERS:  "NOTRAILERS",
	IFF_RUNNING:     "RUNNING",
	IFF_NOARP:       "NOARP",
	IFF_PROMISC:     "PROMISC",
	IFF_ALLMULTI:    "ALLMULTI",
	IFF_MASTER:      "MASTER",
	IFF_SLAVE:       "SLAVE",
	IFF_MULTICAST:   "MULTICAST",
	IFF_PORTSEL:     "PORTSEL",
	IFF_AUTOMEDIA:   "AUTOMEDIA",
	IFF_DYNAMIC:     "DYNAMIC",
	IFF_LOWER_UP:    "LOWER_UP",
	IFF_DORMANT:     "DORMANT",
	IFF_ECHO:        "ECHO",
})

func (x Iff) String() string { return IffTable.Flags(x) }

// MarshalText renders the set flags.
func (x Iff) MarshalText() ([]byte, error) { return []byte(x.String()), nil }
