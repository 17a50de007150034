package netlink

import (
	mnl "github.com/mdlayher/netlink"
	"github.com/pkg/errors"
)

// NestedAttribute is one member of a nested attribute list.  Its type is not
// resolved against a table, since nested type spaces depend on the parent
// attribute and on the link or qdisc kind.
type NestedAttribute struct {
	Type    uint16
	Nested  bool `json:",omitempty"`
	Payload []byte
}

// DecodeNested decodes one level of attributes from a nested payload.  Call it
// again on a member's Payload to descend further.
func DecodeNested(b []byte) ([]NestedAttribute, error) {
	ad, err := mnl.NewAttributeDecoder(b)
	if err != nil {
		return nil, errors.Wrap(err, "nested attributes")
	}
	var out []NestedAttribute
	for ad.Next() {
		out = append(out, NestedAttribute{
			Type:    ad.Type(),
			Nested:  ad.TypeFlags()&mnl.Nested != 0,
			Payload: ad.Bytes(),
		})
	}
	if err := ad.Err(); err != nil {
		return nil, errors.Wrap(err, "nested attributes")
	}
	return out, nil
}
