// Package capture reads netlink packets from pcap and pcapng capture files,
// such as those recorded on an nlmon interface.
package capture

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/pkg/errors"

	"github.com/m-lab/nl-dump/metrics"
	"github.com/m-lab/nl-dump/zstd"
)

// LinkTypeNetlink is LINKTYPE_NETLINK, which gopacket does not name.  Its
// packets start with the same cooked header as LinkTypeLinuxSLL.
const LinkTypeNetlink layers.LinkType = 253

// ErrLinkType is returned for captures that do not hold cooked netlink packets.
var ErrLinkType = errors.New("unsupported capture link type")

var ngMagic = []byte{0x0a, 0x0d, 0x0d, 0x0a}

type packetReader interface {
	ReadPacketData() ([]byte, gopacket.CaptureInfo, error)
	LinkType() layers.LinkType
}

// Reader returns the packets of one capture.
type Reader struct {
	pr     packetReader
	ci     gopacket.CaptureInfo
	closer io.Closer
}

// NewReader reads a pcap or pcapng stream from r.  The format is chosen from
// the leading magic number.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(ngMagic))
	if err != nil {
		return nil, errors.Wrap(err, "capture magic")
	}
	var pr packetReader
	if bytes.Equal(magic, ngMagic) {
		pr, err = pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions)
	} else {
		pr, err = pcapgo.NewReader(br)
	}
	if err != nil {
		return nil, err
	}
	switch lt := pr.LinkType(); lt {
	case layers.LinkTypeLinuxSLL, LinkTypeNetlink:
	default:
		return nil, errors.Wrapf(ErrLinkType, "%d", lt)
	}
	return &Reader{pr: pr}, nil
}

// Open opens a capture file.  Files ending in .zst are decompressed with an
// external zstd process.
func Open(path string) (*Reader, error) {
	var f io.ReadCloser
	var err error
	if strings.HasSuffix(path, ".zst") {
		f, err = zstd.NewReader(path)
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		return nil, err
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, path)
	}
	metrics.FileCount.Inc()
	r.closer = f
	return r, nil
}

// Next returns the next packet, or io.EOF after the last one.
func (r *Reader) Next() ([]byte, error) {
	data, ci, err := r.pr.ReadPacketData()
	if err != nil {
		return nil, err
	}
	r.ci = ci
	if ci.CaptureLength < ci.Length {
		metrics.ErrorCount.WithLabelValues("snaplen").Inc()
	}
	return data, nil
}

// CaptureInfo describes the packet most recently returned by Next.
func (r *Reader) CaptureInfo() gopacket.CaptureInfo {
	return r.ci
}

// LinkType returns the capture's link type.
func (r *Reader) LinkType() layers.LinkType {
	return r.pr.LinkType()
}

// Close releases the underlying file, if Open created it.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
