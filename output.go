package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/m-lab/nl-dump/netlink"
	"github.com/m-lab/nl-dump/nlmsg"
	"github.com/m-lab/nl-dump/rtnetlink"
)

type printer interface {
	Print(index int, msg *nlmsg.NlMsg) error
	Flush() error
}

func newPrinter(format string, w io.Writer) (printer, error) {
	switch format {
	case "text":
		return &textPrinter{w: w}, nil
	case "json":
		return &jsonPrinter{enc: json.NewEncoder(w)}, nil
	case "csv":
		return &csvPrinter{w: w}, nil
	}
	return nil, errors.Errorf("unknown output format %q", format)
}

type textPrinter struct {
	w io.Writer
}

func (p *textPrinter) Print(index int, msg *nlmsg.NlMsg) error {
	h := &msg.Header
	_, err := fmt.Fprintf(p.w, "%d %s %s len=%d flags=%s seq=%d pid=%d\n",
		index, msg.Family, h.Type, h.Length, h.FlagsString(), h.Sequence, h.PortID)
	if err != nil {
		return err
	}
	line, values := describe(&msg.Body)
	if _, err := fmt.Fprintf(p.w, "  %s\n", line); err != nil {
		return err
	}
	for _, v := range values {
		if v.Err != nil {
			_, err = fmt.Fprintf(p.w, "    %s: %v\n", v.Kind, v.Err)
		} else {
			_, err = fmt.Fprintf(p.w, "    %s: %s\n", v.Kind, render(v.Value))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *textPrinter) Flush() error {
	return nil
}

// describe summarizes the fixed part of a body and interprets its attributes.
func describe(b *nlmsg.Body) (string, []rtnetlink.AttrValue) {
	switch b.Kind {
	case nlmsg.Malformed:
		return fmt.Sprintf("Malformed: %v", b.Err), nil
	case nlmsg.Link:
		m := b.Link
		return fmt.Sprintf("Link family=%d type=%d index=%d flags=%s change=%#x",
			m.Family, m.Type, m.Index, m.Flags, m.Change), m.Values()
	case nlmsg.Addr:
		m := b.Addr
		return fmt.Sprintf("Addr family=%d prefixlen=%d flags=%s scope=%s index=%d",
			m.Family, m.PrefixLen, m.Flags, m.Scope, m.Index), m.Values()
	case nlmsg.Route:
		m := b.Route
		return fmt.Sprintf("Route family=%d dst_len=%d src_len=%d tos=%d table=%s protocol=%s scope=%s type=%s flags=%s",
			m.Family, m.DstLen, m.SrcLen, m.Tos, m.Table, m.Protocol, m.Scope, m.Type, m.Flags), m.Values()
	case nlmsg.Neigh:
		m := b.Neigh
		line := fmt.Sprintf("Neigh family=%d index=%d state=%s flags=%s type=%s",
			m.Family, m.Index, m.State, m.Flags, m.Type)
		if ci := m.CacheInfo; ci != nil {
			line += fmt.Sprintf(" confirmed=%d used=%d updated=%d refcnt=%d",
				ci.Confirmed, ci.Used, ci.Updated, ci.RefCnt)
		}
		return line, m.Values()
	case nlmsg.TC:
		m := b.TC
		return fmt.Sprintf("TC family=%d index=%d handle=%#x parent=%#x info=%#x",
			m.Family, m.Index, m.Handle, m.Parent, m.Info), m.Values()
	}
	return b.Kind.String(), nil
}

func render(v interface{}) string {
	switch v := v.(type) {
	case []byte:
		return hex.EncodeToString(v)
	case string:
		return fmt.Sprintf("%q", v)
	case []netlink.NestedAttribute:
		parts := make([]string, len(v))
		for i, a := range v {
			parts[i] = fmt.Sprintf("%d:%s", a.Type, hex.EncodeToString(a.Payload))
		}
		return "{" + strings.Join(parts, " ") + "}"
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%+v", v)
}

type jsonPrinter struct {
	enc *json.Encoder
}

type jsonMessage struct {
	Index int
	*nlmsg.NlMsg
}

func (p *jsonPrinter) Print(index int, msg *nlmsg.NlMsg) error {
	return p.enc.Encode(jsonMessage{Index: index, NlMsg: msg})
}

func (p *jsonPrinter) Flush() error {
	return nil
}

// row is the csv summary of one message.
type row struct {
	Index    int    `csv:"index"`
	Family   string `csv:"family"`
	Type     string `csv:"type"`
	Flags    string `csv:"flags"`
	Sequence uint32 `csv:"seq"`
	PortID   uint32 `csv:"pid"`
	Body     string `csv:"body"`
	Attrs    int    `csv:"attrs"`
	Error    string `csv:"error"`
}

type csvPrinter struct {
	w    io.Writer
	rows []*row
}

func (p *csvPrinter) Print(index int, msg *nlmsg.NlMsg) error {
	r := &row{
		Index:    index,
		Family:   msg.Family.String(),
		Type:     msg.Header.Type.String(),
		Flags:    msg.Header.FlagsString(),
		Sequence: msg.Header.Sequence,
		PortID:   msg.Header.PortID,
		Body:     msg.Body.Kind.String(),
		Attrs:    msg.Body.AttributeCount(),
	}
	if msg.Body.Err != nil {
		r.Error = msg.Body.Err.Error()
	}
	p.rows = append(p.rows, r)
	return nil
}

func (p *csvPrinter) Flush() error {
	return gocsv.Marshal(p.rows, p.w)
}
