package nlmsg

import (
	"fmt"
	"io"

	"github.com/m-lab/nl-dump/metrics"
	"github.com/m-lab/nl-dump/nlenum"
)

// Source produces captured packets.  Next returns io.EOF after the last one.
type Source interface {
	Next() ([]byte, error)
}

// PacketError reports a packet whose headers could not be decoded.  Reading
// may continue after it.
type PacketError struct {
	Index int
	Err   error
}

func (e *PacketError) Error() string {
	return fmt.Sprintf("packet %d: %v", e.Index, e.Err)
}

// Unwrap returns the decode failure.
func (e *PacketError) Unwrap() error {
	return e.Err
}

// Reader decodes a stream of packets.
type Reader struct {
	src    Source
	family *nlenum.Family
	next   int
	last   int
}

// NewReader returns a Reader over src.
func NewReader(src Source) *Reader {
	return &Reader{src: src, last: -1}
}

// SetFamily restricts the Reader to messages of one netlink family.  Packets
// of other families are skipped silently.
func (r *Reader) SetFamily(f nlenum.Family) {
	r.family = &f
}

// Index returns the zero based position in the source of the packet most
// recently returned by Next.
func (r *Reader) Index() int {
	return r.last
}

// Next returns the next message.  Header failures are returned as
// *PacketError, and io.EOF marks the end of the source.
func (r *Reader) Next() (*NlMsg, error) {
	for {
		buf, err := r.src.Next()
		if err != nil {
			if err != io.EOF {
				metrics.ErrorCount.WithLabelValues("source").Inc()
			}
			return nil, err
		}
		r.last = r.next
		r.next++
		metrics.PacketSizeHistogram.Observe(float64(len(buf)))

		msg, err := Decode(buf)
		if err != nil {
			metrics.ErrorCount.WithLabelValues("header").Inc()
			return nil, &PacketError{Index: r.last, Err: err}
		}
		if r.family != nil && msg.Family != *r.family {
			continue
		}
		kind := msg.Body.Kind.String()
		metrics.MessageCount.WithLabelValues(kind).Inc()
		if msg.Body.Kind == Malformed {
			metrics.ErrorCount.WithLabelValues("body").Inc()
		} else {
			metrics.AttributeCountHistogram.WithLabelValues(kind).Observe(float64(msg.Body.AttributeCount()))
		}
		return msg, nil
	}
}
