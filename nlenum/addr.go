package nlenum

// Ifa is an address attribute kind (IFA_*), uapi/linux/if_addr.h.
type Ifa uint16

const (
	IFA_UNSPEC Ifa = iota
	IFA_ADDRESS
	IFA_LOCAL
	IFA_LABEL
	IFA_BROADCAST
	IFA_ANYCAST
	IFA_CACHEINFO
	IFA_MULTICAST
	IFA_FLAGS
	IFA_RT_PRIORITY
	IFA_TARGET_NETNSID
	IFA_PROTO
)

// IfaTable names the address attribute kinds.
var IfaTable = Dense[Ifa]("IFA_",
	"UNSPEC", "ADDRESS", "LOCAL", "LABEL", "BROADCAST", "ANYCAST",
	"CACHEINFO", "MULTICAST", "FLAGS", "RT_PRIORITY", "TARGET_NETNSID", "PROTO",
)

func (x Ifa) String() string { return IfaTable.Name(x) }

// MarshalText renders the attribute kind name.
func (x Ifa) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// IfaFlag is the address flags bitmask (IFA_F_*).  The ifaddrmsg header
// carries only the low 8 bits; IFA_FLAGS carries all of them.
type IfaFlag uint32

const (
	IFA_F_SECONDARY      IfaFlag = 0x1
	IFA_F_NODAD          IfaFlag = 0x2
	IFA_F_OPTIMISTIC     IfaFlag = 0x4
	IFA_F_DADFAILED      IfaFlag = 0x8
	IFA_F_HOMEADDRESS    IfaFlag = 0x10
	IFA_F_DEPRECATED     IfaFlag = 0x20
	IFA_F_TENTATIVE      IfaFlag = 0x40
	IFA_F_PERMANENT      IfaFlag = 0x80
	IFA_F_MANAGETEMPADDR IfaFlag = 0x100
	IFA_F_NOPREFIXROUTE  IfaFlag = 0x200
	IFA_F_MCAUTOJOIN     IfaFlag = 0x400
	IFA_F_STABLE_PRIVACY IfaFlag = 0x800
)

// IfaFlagTable names the address flag bits.
var IfaFlagTable = NewTable("IFA_F_", map[IfaFlag]string{
	IFA_F_SECONDARY:      "SECONDARY",
	IFA_F_NODAD:          "NODAD",
	IFA_F_OPTIMISTIC:     "OPTIMISTIC",
	IFA_F_DADFAILED:      "DADFAILED",
	IFA_F_HOMEADDRESS:    "HOMEADDRESS",
	IFA_F_DEPRECATED:     "DEPRECATED",
	IFA_F_TENTATIVE:      "TENTATIVE",
	IFA_F_PERMANENT:      "PERMANENT",
	IFA_F_MANAGETEMPADDR: "MANAGETEMPADDR",
	IFA_F_NOPREFIXROUTE:  "NOPREFIXROUTE",
	IFA_F_MCAUTOJOIN:     "MCAUTOJOIN",
	IFA_F_STABLE_PRIVACY: "STABLE_PRIVACY",
})

func (x IfaFlag) String() string { return IfaFlagTable.Flags(x) }

// MarshalText renders the set flags.
func (x IfaFlag) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// Scope is a route or address scope (RT_SCOPE_*).  Values between UNIVERSE
// and SITE are user defined and have no name.
type Scope uint8

const (
	RT_SCOPE_UNIVERSE Scope = 0
	RT_SCOPE_SITE     Scope = 200
	RT_SCOPE_LINK     Scope = 253
	RT_SCOPE_HOST     Scope = 254
	RT_SCOPE_NOWHERE  Scope = 255
)

// ScopeTable names the scopes.
var ScopeTable = NewTable("RT_SCOPE_", map[Scope]string{
	RT_SCOPE_UNIVERSE: "UNIVERSE",
	RT_SCOPE_SITE:     "SITE",
	RT_SCOPE_LINK:     "LINK",
	RT_SCOPE_HOST:     "HOST",
	RT_SCOPE_NOWHERE:  "NOWHERE",
})

func (x Scope) String() string { return ScopeTable.Name(x) }

// MarshalText renders the scope name.
func (x Scope) MarshalText() ([]byte, error) { return []byte(x.String()), nil }
