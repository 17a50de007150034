package nlmsg_test

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	vnl "github.com/vishvananda/netlink"
	"github.com/vishvananda/netlink/nl"
	"golang.org/x/sys/unix"

	"github.com/m-lab/go/rtx"
	"github.com/m-lab/nl-dump/cursor"
	"github.com/m-lab/nl-dump/metrics"
	"github.com/m-lab/nl-dump/netlink"
	"github.com/m-lab/nl-dump/nlenum"
	"github.com/m-lab/nl-dump/nlmsg"
	"github.com/m-lab/nl-dump/rtnetlink"
)

func init() {
	// Always prepend the filename and line number.
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// A NETLINK_GENERIC message captured by nlmon.
var genericPacket = []byte{
	0, 4, 3, 56, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 16,
	36, 0, 0, 0, 26, 0, 5, 3, 89, 7, 185, 85, 249, 2, 128, 0,
	32, 0, 0, 0, 8, 0, 3, 0, 2, 0, 0, 0, 8, 0, 1, 0, 0, 0, 0, 0,
}

type rawData []byte

func (r rawData) Len() int          { return len(r) }
func (r rawData) Serialize() []byte { return r }

func cooked(family uint16) []byte {
	b := make([]byte, netlink.CookedHeaderLen)
	binary.BigEndian.PutUint16(b[0:], 4)
	binary.BigEndian.PutUint16(b[2:], unix.ARPHRD_NETLINK)
	binary.BigEndian.PutUint16(b[14:], family)
	return b
}

func packet(family uint16, typ int, data ...nl.NetlinkRequestData) []byte {
	req := nl.NewNetlinkRequest(typ, unix.NLM_F_ACK)
	for _, d := range data {
		req.AddData(d)
	}
	return append(cooked(family), req.Serialize()...)
}

func linkPacket() []byte {
	msg := nl.NewIfInfomsg(unix.AF_UNSPEC)
	msg.Index = 1
	return packet(unix.NETLINK_ROUTE, unix.RTM_NEWLINK, msg,
		nl.NewRtAttr(unix.IFLA_IFNAME, nl.ZeroTerminated("lo")),
		nl.NewRtAttr(unix.IFLA_MTU, nl.Uint32Attr(65536)))
}

func TestDecodeLink(t *testing.T) {
	msg, err := nlmsg.Decode(linkPacket())
	rtx.Must(err, "Decode")
	if msg.Family != nlenum.NETLINK_ROUTE {
		t.Error(msg.Family)
	}
	if rt, ok := msg.Header.Type.Route(); !ok || rt != nlenum.RTM_NEWLINK {
		t.Error(msg.Header.Type)
	}
	if msg.Header.Length != 16+16+8+8 {
		t.Error("Wrong length", msg.Header.Length)
	}
	if msg.Body.Kind != nlmsg.Link || msg.Body.Link == nil {
		t.Fatalf("%+v", msg.Body)
	}
	if msg.Body.Link.Index != 1 || msg.Body.AttributeCount() != 2 {
		t.Errorf("%+v", msg.Body.Link)
	}
	if msg.Body.Addr != nil || msg.Body.Route != nil || msg.Body.Neigh != nil || msg.Body.TC != nil || msg.Body.Err != nil {
		t.Error("Only the link body should be set")
	}
}

func TestDecodeTagging(t *testing.T) {
	badProto := nl.NewRtMsg()
	badProto.Protocol = 5
	addr := nl.NewIfAddrmsg(unix.AF_INET6)
	tc := &nl.TcMsg{}
	tc.Ifindex = 2
	tests := []struct {
		name string
		buf  []byte
		want nlmsg.BodyKind
	}{
		{"link", linkPacket(), nlmsg.Link},
		{"setlink", packet(unix.NETLINK_ROUTE, unix.RTM_SETLINK, nl.NewIfInfomsg(unix.AF_UNSPEC)), nlmsg.Link},
		{"addr", packet(unix.NETLINK_ROUTE, unix.RTM_DELADDR, addr), nlmsg.Addr},
		{"route", packet(unix.NETLINK_ROUTE, unix.RTM_GETROUTE, nl.NewRtMsg()), nlmsg.Route},
		{"neigh", packet(unix.NETLINK_ROUTE, unix.RTM_NEWNEIGH, &vnl.Ndmsg{Family: unix.AF_INET, Type: unix.RTN_UNICAST}), nlmsg.Neigh},
		{"qdisc", packet(unix.NETLINK_ROUTE, unix.RTM_NEWQDISC, tc), nlmsg.TC},
		{"tclass", packet(unix.NETLINK_ROUTE, unix.RTM_DELTCLASS, tc), nlmsg.TC},
		{"tfilter", packet(unix.NETLINK_ROUTE, unix.RTM_GETTFILTER, tc), nlmsg.TC},
		{"rule", packet(unix.NETLINK_ROUTE, unix.RTM_NEWRULE, rawData(make([]byte, 12))), nlmsg.Unsupported},
		{"prefix", packet(unix.NETLINK_ROUTE, unix.RTM_NEWPREFIX, rawData(make([]byte, 12))), nlmsg.Unsupported},
		{"generic", genericPacket, nlmsg.Unsupported},
		{"raw-route", packet(unix.NETLINK_ROUTE, 200), nlmsg.Unsupported},
		{"done", packet(unix.NETLINK_ROUTE, unix.NLMSG_DONE, rawData(make([]byte, 4))), nlmsg.None},
		{"error-in-generic", packet(unix.NETLINK_GENERIC, unix.NLMSG_ERROR, rawData(make([]byte, 20))), nlmsg.None},
		{"short-link", packet(unix.NETLINK_ROUTE, unix.RTM_NEWLINK, rawData(make([]byte, 4))), nlmsg.Malformed},
		{"bad-protocol", packet(unix.NETLINK_ROUTE, unix.RTM_NEWROUTE, badProto), nlmsg.Malformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := nlmsg.Decode(tt.buf)
			rtx.Must(err, "Decode")
			if msg.Body.Kind != tt.want {
				t.Errorf("got %v, want %v (%v)", msg.Body.Kind, tt.want, msg.Body.Err)
			}
			if (msg.Body.Kind == nlmsg.Malformed) != (msg.Body.Err != nil) {
				t.Error("Err must be set exactly for Malformed bodies", msg.Body.Err)
			}
		})
	}
}

func TestDecodeMalformedKeepsError(t *testing.T) {
	badProto := nl.NewRtMsg()
	badProto.Protocol = 5
	msg, err := nlmsg.Decode(packet(unix.NETLINK_ROUTE, unix.RTM_NEWROUTE, badProto))
	rtx.Must(err, "Decode")
	if !errors.Is(msg.Body.Err, netlink.ErrUnknownValue) {
		t.Error("Expected ErrUnknownValue, got", msg.Body.Err)
	}

	// Claimed length runs past the captured bytes.
	buf := linkPacket()
	msg, err = nlmsg.Decode(buf[:len(buf)-2])
	rtx.Must(err, "Decode")
	if msg.Body.Kind != nlmsg.Malformed || !errors.Is(msg.Body.Err, cursor.ErrShortRead) {
		t.Errorf("%+v", msg.Body)
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	badLength := linkPacket()
	cursor.Native.PutUint32(badLength[16:], 8)
	tests := []struct {
		name string
		buf  []byte
		want error
	}{
		{"empty", nil, cursor.ErrShortRead},
		{"cooked-only", cooked(unix.NETLINK_ROUTE), cursor.ErrShortRead},
		{"unknown-family", append(cooked(17), genericPacket[16:]...), netlink.ErrUnknownFamily},
		{"short-nlmsg_len", badLength, netlink.ErrHeaderLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := nlmsg.Decode(tt.buf)
			if msg != nil || !errors.Is(err, tt.want) {
				t.Errorf("got %v %v, want %v", msg, err, tt.want)
			}
		})
	}
}

func TestDecodeStopsAtLength(t *testing.T) {
	buf := append(linkPacket(), 8, 0, byte(unix.IFLA_MTU), 0, 1, 2, 3, 4)
	msg, err := nlmsg.Decode(buf)
	rtx.Must(err, "Decode")
	if msg.Body.Kind != nlmsg.Link || msg.Body.AttributeCount() != 2 {
		t.Errorf("Trailing bytes were decoded: %+v", msg.Body)
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	for _, buf := range [][]byte{linkPacket(), genericPacket} {
		a, err := nlmsg.Decode(buf)
		rtx.Must(err, "Decode")
		b, err := nlmsg.Decode(buf)
		rtx.Must(err, "Decode")
		if diff := deep.Equal(a, b); diff != nil {
			t.Error(diff)
		}
	}
}

func TestDecodeOwnsData(t *testing.T) {
	buf := linkPacket()
	msg, err := nlmsg.Decode(buf)
	rtx.Must(err, "Decode")
	for i := range buf {
		buf[i] = 0
	}
	if name, _ := rtnetlink.LinkValue(msg.Body.Link.Attributes[0]); name != "lo" {
		t.Error("Attribute payload aliases the input", name)
	}
}

func TestBodyJSON(t *testing.T) {
	badProto := nl.NewRtMsg()
	badProto.Protocol = 5
	msg, err := nlmsg.Decode(packet(unix.NETLINK_ROUTE, unix.RTM_NEWROUTE, badProto))
	rtx.Must(err, "Decode")
	b, err := json.Marshal(msg)
	rtx.Must(err, "Marshal")
	s := string(b)
	for _, want := range []string{`"Kind":"Malformed"`, `"Error":"rtm_protocol`, `"Family":"NETLINK_ROUTE"`} {
		if !strings.Contains(s, want) {
			t.Errorf("%s does not contain %s", s, want)
		}
	}
}

type sliceSource struct {
	pkts [][]byte
	err  error
}

func (s *sliceSource) Next() ([]byte, error) {
	if len(s.pkts) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	p := s.pkts[0]
	s.pkts = s.pkts[1:]
	return p, nil
}

func packetSizeCount() uint64 {
	m := &dto.Metric{}
	rtx.Must(metrics.PacketSizeHistogram.Write(m), "Could not read histogram")
	return m.GetHistogram().GetSampleCount()
}

func TestReader(t *testing.T) {
	links := testutil.ToFloat64(metrics.MessageCount.WithLabelValues("Link"))
	headers := testutil.ToFloat64(metrics.ErrorCount.WithLabelValues("header"))
	sizes := packetSizeCount()

	src := &sliceSource{pkts: [][]byte{linkPacket(), genericPacket[:20], genericPacket, linkPacket()}}
	r := nlmsg.NewReader(src)

	msg, err := r.Next()
	rtx.Must(err, "first")
	if msg.Body.Kind != nlmsg.Link || r.Index() != 0 {
		t.Error(msg.Body.Kind, r.Index())
	}
	_, err = r.Next()
	var pe *nlmsg.PacketError
	if !errors.As(err, &pe) || pe.Index != 1 || !errors.Is(err, cursor.ErrShortRead) {
		t.Error("Expected a PacketError for packet 1, got", err)
	}
	msg, err = r.Next()
	rtx.Must(err, "third")
	if msg.Family != nlenum.NETLINK_GENERIC || r.Index() != 2 {
		t.Error(msg.Family, r.Index())
	}
	_, err = r.Next()
	rtx.Must(err, "fourth")
	if _, err = r.Next(); err != io.EOF {
		t.Error("Expected EOF, got", err)
	}

	if got := testutil.ToFloat64(metrics.MessageCount.WithLabelValues("Link")); got != links+2 {
		t.Error("Link count", links, got)
	}
	if got := testutil.ToFloat64(metrics.ErrorCount.WithLabelValues("header")); got != headers+1 {
		t.Error("Header error count", headers, got)
	}
	if got := packetSizeCount(); got != sizes+4 {
		t.Error("Every packet should be observed", sizes, got)
	}
}

func TestReaderFamily(t *testing.T) {
	src := &sliceSource{
		pkts: [][]byte{genericPacket, linkPacket(), genericPacket},
		err:  errors.New("source failed"),
	}
	r := nlmsg.NewReader(src)
	r.SetFamily(nlenum.NETLINK_GENERIC)
	count := 0
	_, err := r.Next()
	for ; err == nil; _, err = r.Next() {
		count++
	}
	if count != 2 {
		t.Error("Expected 2 generic messages, got", count)
	}
	if err.Error() != "source failed" {
		t.Error(err)
	}
	if r.Index() != 2 {
		t.Error("Wrong index", r.Index())
	}
}
