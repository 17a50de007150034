package nlenum

// Tca is a traffic control attribute kind (TCA_*), uapi/linux/rtnetlink.h.
type Tca uint16

const (
	TCA_UNSPEC Tca = iota
	TCA_KIND
	TCA_OPTIONS
	TCA_STATS
	TCA_XSTATS
	TCA_RATE
	TCA_FCNT
	TCA_STATS2
	TCA_STAB
	TCA_PAD
	TCA_DUMP_INVISIBLE
	TCA_CHAIN
	TCA_HW_OFFLOAD
	TCA_INGRESS_BLOCK
	TCA_EGRESS_BLOCK
	TCA_DUMP_FLAGS
	TCA_EXT_WARN_MSG
)

// TcaTable names the traffic control attribute kinds.
var TcaTable = Dense[Tca]("TCA_",
	"UNSPEC", "KIND", "OPTIONS", "STATS", "XSTATS", "RATE", "FCNT", "STATS2", "STAB",
	"PAD", "DUMP_INVISIBLE", "CHAIN", "HW_OFFLOAD", "INGRESS_BLOCK", "EGRESS_BLOCK",
	"DUMP_FLAGS", "EXT_WARN_MSG",
)

func (x Tca) String() string { return TcaTable.Name(x) }

// MarshalText renders the attribute kind name.
func (x Tca) MarshalText() ([]byte, error) { return []byte(x.String()), nil }
