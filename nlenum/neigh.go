package nlenum

// Nda is a neighbor attribute kind (NDA_*), uapi/linux/neighbour.h.
type Nda uint16

const (
	NDA_UNSPEC Nda = iota
	NDA_DST
	NDA_LLADDR
	NDA_CACHEINFO
	NDA_PROBES
	NDA_VLAN
	NDA_PORT
	NDA_VNI
	NDA_IFINDEX
	NDA_MASTER
	NDA_LINK_NETNSID
	NDA_SRC_VNI
	NDA_PROTOCOL
	NDA_NH_ID
	NDA_FDB_EXT_ATTRS
	NDA_FLAGS_EXT
	NDA_NDM_STATE_MASK
	NDA_NDM_FLAGS_MASK
)

// NdaTable names the neighbor attribute kinds.
var NdaTable = Dense[Nda]("NDA_",
	"UNSPEC", "DST", "LLADDR", "CACHEINFO", "PROBES", "VLAN", "PORT", "VNI", "IFINDEX",
	"MASTER", "LINK_NETNSID", "SRC_VNI", "PROTOCOL", "NH_ID", "FDB_EXT_ATTRS", "FLAGS_EXT",
	"NDM_STATE_MASK", "NDM_FLAGS_MASK",
)

func (x Nda) String() string { return NdaTable.Name(x) }

// MarshalText renders the attribute kind name.
func (x Nda) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// Nud is the neighbor unreachability detection state bitmask (NUD_*).
type Nud uint16

const (
	NUD_INCOMPLETE Nud = 0x1
	NUD_REACHABLE  Nud = 0x2
	NUD_STALE      Nud = 0x4
	NUD_DELAY      Nud = 0x8
	NUD_PROBE      Nud = 0x10
	NUD_FAILED     Nud = 0x20
	NUD_NOARP      Nud = 0x40
	NUD_PERMANENT  Nud = 0x80
)

// NudTable names the neighbor state bits.
var NudTable = NewTable("NUD_", map[Nud]string{
	NUD_INCOMPLETE: "INCOMPLETE",
	NUD_REACHABLE:  "REACHABLE",
	NUD_STALE:      "STALE",
	NUD_DELAY:      "DELAY",
	NUD_PROBE:      "PROBE",
	NUD_FAILED:     "FAILED",
	NUD_NOARP:      "NOARP",
	NUD_PERMANENT:  "PERMANENT",
})

func (x Nud) String() string { return NudTable.Flags(x) }

// MarshalText renders the set state bits.
func (x Nud) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// Ntf is the neighbor flags bitmask (NTF_*).
type Ntf uint8

const (
	NTF_USE         Ntf = 0x1
	NTF_SELF        Ntf = 0x2
	NTF_MASTER      Ntf = 0x4
	NTF_PROXY       Ntf = 0x8
	NTF_EXT_LEARNED Ntf = 0x10
	NTF_OFFLOADED   Ntf = 0x20
	NTF_STICKY      Ntf = 0x40
	NTF_ROUTER      Ntf = 0x80
)

// NtfTable names the neighbor flag bits.
var NtfTable = NewTable("NTF_", map[Ntf]string{
	NTF_USE:         "USE",
	NTF_SELF:        "SELF",
	NTF_MASTER:      "MASTER",
	NTF_PROXY:       "PROXY",
	NTF_EXT_LEARNED: "EXT_LEARNED",
	NTF_OFFLOADED:   "OFFLOADED",
	NTF_STICKY:      "STICKY",
	NTF_ROUTER:      "ROUTER",
})

func (x Ntf) String() string { return NtfTable.Flags(x) }

// MarshalText renders the set flags.
func (x Ntf) MarshalText() ([]byte, error) { return []byte(x.String()), nil }
