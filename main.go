// nl-dump decodes netlink messages captured on an nlmon interface.
//
// For a capture to decode, try
//   sudo ip link add nlmon0 type nlmon && sudo ip link set nlmon0 up
//   sudo tcpdump -i nlmon0 -w nlmon.pcap
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"sort"

	"github.com/m-lab/go/flagx"
	"github.com/m-lab/go/prometheusx"
	"github.com/m-lab/go/rtx"

	"github.com/m-lab/nl-dump/capture"
	"github.com/m-lab/nl-dump/nlenum"
	"github.com/m-lab/nl-dump/nlmsg"
)

func init() {
	// Always prepend the filename and line number.
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

var (
	format  = flag.String("format", "text", "Output format: text, json or csv")
	family  = flag.String("netlink_family", "", "Only decode messages of this netlink family, e.g. ROUTE.  Empty means all families")
	summary = flag.Bool("summary", false, "Log the number of messages of each body kind at exit")

	// Variables to enable mocking for testing.
	logFatal           = log.Fatal
	output   io.Writer = os.Stdout
	stdin    io.Reader = os.Stdin
)

// packetReader is satisfied by *capture.Reader.
type packetReader interface {
	Next() ([]byte, error)
	Close() error
}

// fileSource reads the packets of several captures in order.
type fileSource struct {
	readers []packetReader
}

func (s *fileSource) Next() ([]byte, error) {
	for len(s.readers) > 0 {
		p, err := s.readers[0].Next()
		if err != io.EOF {
			return p, err
		}
		if err := s.readers[0].Close(); err != nil {
			log.Println("Close error:", err)
		}
		s.readers = s.readers[1:]
	}
	return nil, io.EOF
}

func (s *fileSource) Close() {
	for _, r := range s.readers {
		if err := r.Close(); err != nil {
			log.Println("Close error:", err)
		}
	}
}

func openAll(paths []string) *fileSource {
	src := &fileSource{}
	if len(paths) == 0 {
		r, err := capture.NewReader(stdin)
		rtx.Must(err, "Could not read capture from stdin")
		src.readers = append(src.readers, r)
		return src
	}
	for _, p := range paths {
		r, err := capture.Open(p)
		rtx.Must(err, "Could not open %q", p)
		src.readers = append(src.readers, r)
	}
	return src
}

func main() {
	flag.Parse()
	rtx.Must(flagx.ArgsFromEnv(flag.CommandLine), "Could not get args from environment")

	promSrv := prometheusx.MustServeMetrics()
	defer promSrv.Close()

	p, err := newPrinter(*format, output)
	if err != nil {
		logFatal(err)
		return
	}

	src := openAll(flag.Args())
	defer src.Close()
	rdr := nlmsg.NewReader(src)
	if *family != "" {
		f, ok := nlenum.FamilyTable.Parse(*family)
		if !ok {
			logFatal("Unknown netlink family ", *family)
			return
		}
		rdr.SetFamily(f)
	}

	counts := map[string]int{}
	for {
		msg, err := rdr.Next()
		if err == io.EOF {
			break
		}
		if _, ok := err.(*nlmsg.PacketError); ok {
			log.Println(err)
			counts["HeaderError"]++
			continue
		}
		rtx.Must(err, "Could not read packet")
		counts[msg.Body.Kind.String()]++
		rtx.Must(p.Print(rdr.Index(), msg), "Could not write message %d", rdr.Index())
	}
	rtx.Must(p.Flush(), "Could not flush output")

	if *summary {
		kinds := make([]string, 0, len(counts))
		for k := range counts {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			log.Printf("%-12s %d\n", k, counts[k])
		}
	}
}
