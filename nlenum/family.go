package nlenum

// Family is a netlink protocol family, as carried in the protocol field of a
// cooked capture header.  See uapi/linux/netlink.h.
type Family uint16

// All of these constants' names make the linter complain, but we inherited
// these names from external C code, so we will keep them.
const (
	NETLINK_ROUTE          Family = 0
	NETLINK_UNUSED         Family = 1
	NETLINK_USERSOCK       Family = 2
	NETLINK_FIREWALL       Family = 3
	NETLINK_SOCK_DIAG      Family = 4
	NETLINK_NFLOG          Family = 5
	NETLINK_XFRM           Family = 6
	NETLINK_SELINUX        Family = 7
	NETLINK_ISCSI          Family = 8
	NETLINK_AUDIT          Family = 9
	NETLINK_FIB_LOOKUP     Family = 10
	NETLINK_CONNECTOR      Family = 11
	NETLINK_NETFILTER      Family = 12
	NETLINK_IP6_FW         Family = 13
	NETLINK_DNRTMSG        Family = 14
	NETLINK_KOBJECT_UEVENT Family = 15
	NETLINK_GENERIC        Family = 16
	NETLINK_SCSITRANSPORT  Family = 18
	NETLINK_ECRYPTFS       Family = 19
	NETLINK_RDMA           Family = 20
	NETLINK_CRYPTO         Family = 21
	NETLINK_SMC            Family = 22
)

// FamilyTable names the netlink families.
var FamilyTable = NewTable("NETLINK_", map[Family]string{
	NETLINK_ROUTE:          "ROUTE",
	NETLINK_UNUSED:         "UNUSED",
	NETLINK_USERSOCK:       "USERSOCK",
	NETLINK_FIREWALL:       "FIREWALL",
	NETLINK_SOCK_DIAG:      "SOCK_DIAG",
	NETLINK_NFLOG:          "NFLOG",
	NETLINK_XFRM:           "XFRM",
	NETLINK_SELINUX:        "SELINUX",
	NETLINK_ISCSI:          "ISCSI",
	NETLINK_AUDIT:          "AUDIT",
	NETLINK_FIB_LOOKUP:     "FIB_LOOKUP",
	NETLINK_CONNECTOR:      "CONNECTOR",
	NETLINK_NETFILTER:      "NETFILTER",
	NETLINK_IP6_FW:         "IP6_FW",
	NETLINK_DNRTMSG:        "DNRTMSG",
	NETLINK_KOBJECT_UEVENT: "KOBJECT_UEVENT",
	NETLINK_GENERIC:        "GENERIC",
	NETLINK_SCSITRANSPORT:  "SCSITRANSPORT",
	NETLINK_ECRYPTFS:       "ECRYPTFS",
	NETLINK_RDMA:           "RDMA",
	NETLINK_CRYPTO:         "CRYPTO",
	NETLINK_SMC:            "SMC",
})

func (x Family) String() string { return FamilyTable.Name(x) }

// MarshalText renders the family name.
func (x Family) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// ControlType is a message type shared by all netlink families.
type ControlType uint16

// Generic netlink control messages.  Values below NLMSG_MIN_TYPE (0x10).
const (
	NLMSG_NOOP    ControlType = 1
	NLMSG_ERROR   ControlType = 2
	NLMSG_DONE    ControlType = 3
	NLMSG_OVERRUN ControlType = 4
)

// ControlTable names the control message types.
var ControlTable = NewTable("NLMSG_", map[ControlType]string{
	NLMSG_NOOP:    "NOOP",
	NLMSG_ERROR:   "ERROR",
	NLMSG_DONE:    "DONE",
	NLMSG_OVERRUN: "OVERRUN",
})

func (x ControlType) String() string { return ControlTable.Name(x) }

// MarshalText renders the control type name.
func (x ControlType) MarshalText() ([]byte, error) { return []byte(x.String()), nil }
