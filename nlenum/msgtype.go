package nlenum

// MsgType is an rtnetlink message type.  See uapi/linux/rtnetlink.h.
type MsgType uint16

const (
	RTM_NEWLINK        MsgType = 16
	RTM_DELLINK        MsgType = 17
	RTM_GETLINK        MsgType = 18
	RTM_SETLINK        MsgType = 19
	RTM_NEWADDR        MsgType = 20
	RTM_DELADDR        MsgType = 21
	RTM_GETADDR        MsgType = 22
	RTM_NEWROUTE       MsgType = 24
	RTM_DELROUTE       MsgType = 25
	RTM_GETROUTE       MsgType = 26
	RTM_NEWNEIGH       MsgType = 28
	RTM_DELNEIGH       MsgType = 29
	RTM_GETNEIGH       MsgType = 30
	RTM_NEWRULE        MsgType = 32
	RTM_DELRULE        MsgType = 33
	RTM_GETRULE        MsgType = 34
	RTM_NEWQDISC       MsgType = 36
	RTM_DELQDISC       MsgType = 37
	RTM_GETQDISC       MsgType = 38
	RTM_NEWTCLASS      MsgType = 40
	RTM_DELTCLASS      MsgType = 41
	RTM_GETTCLASS      MsgType = 42
	RTM_NEWTFILTER     MsgType = 44
	RTM_DELTFILTER     MsgType = 45
	RTM_GETTFILTER     MsgType = 46
	RTM_NEWACTION      MsgType = 48
	RTM_DELACTION      MsgType = 49
	RTM_GETACTION      MsgType = 50
	RTM_NEWPREFIX      MsgType = 52
	RTM_GETMULTICAST   MsgType = 58
	RTM_GETANYCAST     MsgType = 62
	RTM_NEWNEIGHTBL    MsgType = 64
	RTM_GETNEIGHTBL    MsgType = 66
	RTM_SETNEIGHTBL    MsgType = 67
	RTM_NEWNDUSEROPT   MsgType = 68
	RTM_NEWADDRLABEL   MsgType = 72
	RTM_DELADDRLABEL   MsgType = 73
	RTM_GETADDRLABEL   MsgType = 74
	RTM_GETDCB         MsgType = 78
	RTM_SETDCB         MsgType = 79
	RTM_NEWNETCONF     MsgType = 80
	RTM_DELNETCONF     MsgType = 81
	RTM_GETNETCONF     MsgType = 82
	RTM_NEWMDB         MsgType = 84
	RTM_DELMDB         MsgType = 85
	RTM_GETMDB         MsgType = 86
	RTM_NEWNSID        MsgType = 88
	RTM_DELNSID        MsgType = 89
	RTM_GETNSID        MsgType = 90
	RTM_NEWSTATS       MsgType = 92
	RTM_GETSTATS       MsgType = 94
	RTM_NEWCACHEREPORT MsgType = 96
	RTM_NEWCHAIN       MsgType = 100
	RTM_DELCHAIN       MsgType = 101
	RTM_GETCHAIN       MsgType = 102
	RTM_NEWNEXTHOP     MsgType = 104
	RTM_DELNEXTHOP     MsgType = 105
	RTM_GETNEXTHOP     MsgType = 106
	RTM_NEWLINKPROP    MsgType = 108
	RTM_DELLINKPROP    MsgType = 109
	RTM_GETLINKPROP    MsgType = 110
	RTM_NEWVLAN        MsgType = 112
	RTM_DELVLAN        MsgType = 113
	RTM_GETVLAN        MsgType = 114
)

// MsgTypeTable names the rtnetlink message types.
var MsgTypeTable = NewTable("RTM_", map[MsgType]string{
	RTM_NEWLINK:        "NEWLINK",
	RTM_DELLINK:        "DELLINK",
	RTM_GETLINK:        "GETLINK",
	RTM_SETLINK:        "SETLINK",
	RTM_NEWADDR:        "NEWADDR",
	RTM_DELADDR:        "DELADDR",
	RTM_GETADDR:        "GETADDR",
	RTM_NEWROUTE:       "NEWROUTE",
	RTM_DELROUTE:       "DELROUTE",
	RTM_GETROUTE:       "GETROUTE",
	RTM_NEWNEIGH:       "NEWNEIGH",
	RTM_DELNEIGH:       "DELNEIGH",
	RTM_GETNEIGH:       "GETNEIGH",
	RTM_NEWRULE:        "NEWRULE",
	RTM_DELRULE:        "DELRULE",
	RTM_GETRULE:        "GETRULE",
	RTM_NEWQDISC:       "NEWQDISC",
	RTM_DELQDISC:       "DELQDISC",
	RTM_GETQDISC:       "GETQDISC",
	RTM_NEWTCLASS:      "NEWTCLASS",
	RTM_DELTCLASS:      "DELTCLASS",
	RTM_GETTCLASS:      "GETTCLASS",
	RTM_NEWTFILTER:     "NEWTFILTER",
	RTM_DELTFILTER:     "DELTFILTER",
	RTM_GETTFILTER:     "GETTFILTER",
	RTM_NEWACTION:      "NEWACTION",
	RTM_DELACTION:      "DELACTION",
	RTM_GETACTION:      "GETACTION",
	RTM_NEWPREFIX:      "NEWPREFIX",
	RTM_GETMULTICAST:   "GETMULTICAST",
	RTM_GETANYCAST:     "GETANYCAST",
	RTM_NEWNEIGHTBL:    "NEWNEIGHTBL",
	RTM_GETNEIGHTBL:    "GETNEIGHTBL",
	RTM_SETNEIGHTBL:    "SETNEIGHTBL",
	RTM_NEWNDUSEROPT:   "NEWNDUSEROPT",
	RTM_NEWADDRLABEL:   "NEWADDRLABEL",
	RTM_DELADDRLABEL:   "DELADDRLABEL",
	RTM_GETADDRLABEL:   "GETADDRLABEL",
	RTM_GETDCB:         "GETDCB",
	RTM_SETDCB:         "SETDCB",
	RTM_NEWNETCONF:     "NEWNETCONF",
	RTM_DELNETCONF:     "DELNETCONF",
	RTM_GETNETCONF:     "GETNETCONF",
	RTM_NEWMDB:         "NEWMDB",
	RTM_DELMDB:         "DELMDB",
	RTM_GETMDB:         "GETMDB",
	RTM_NEWNSID:        "NEWNSID",
	RTM_DELNSID:        "DELNSID",
	RTM_GETNSID:        "GETNSID",
	RTM_NEWSTATS:       "NEWSTATS",
	RTM_GETSTATS:       "GETSTATS",
	RTM_NEWCACHEREPORT: "NEWCACHEREPORT",
	RTM_NEWCHAIN:       "NEWCHAIN",
	RTM_DELCHAIN:       "DELCHAIN",
	RTM_GETCHAIN:       "GETCHAIN",
	RTM_NEWNEXTHOP:     "NEWNEXTHOP",
	RTM_DELNEXTHOP:     "DELNEXTHOP",
	RTM_GETNEXTHOP:     "GETNEXTHOP",
	RTM_NEWLINKPROP:    "NEWLINKPROP",
	RTM_DELLINKPROP:    "DELLINKPROP",
	RTM_GETLINKPROP:    "GETLINKPROP",
	RTM_NEWVLAN:        "NEWVLAN",
	RTM_DELVLAN:        "DELVLAN",
	RTM_GETVLAN:        "GETVLAN",
})

func (x MsgType) String() string { return MsgTypeTable.Name(x) }

// MarshalText renders the message type name.
func (x MsgType) MarshalText() ([]byte, error) { return []byte(x.String()), nil }
