package packet

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node is the serializable form of a decoded packet tree.
type Node struct {
	Version    uint8  `json:"version" yaml:"version"`
	Type       uint8  `json:"type" yaml:"type"`
	Kind       string `json:"kind" yaml:"kind"`
	Value      *int64 `json:"value,omitempty" yaml:"value,omitempty"`
	LengthType *uint8 `json:"length_type,omitempty" yaml:"length_type,omitempty"`
	Offset     int    `json:"offset" yaml:"offset"`
	Bits       int    `json:"bits" yaml:"bits"`
	Children   []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

func ToNode(p *Packet) Node {
	n := Node{
		Version: p.Version,
		Type:    p.TypeID,
		Kind:    p.KindName(),
		Offset:  p.Offset,
		Bits:    p.BitLen,
	}
	if p.IsLiteral() {
		v := p.Value
		n.Value = &v
		return n
	}
	lt := uint8(p.LengthType)
	n.LengthType = &lt
	n.Children = make([]Node, 0, len(p.Children))
	for _, child := range p.Children {
		n.Children = append(n.Children, ToNode(child))
	}
	return n
}

func WriteJSON(w io.Writer, p *Packet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToNode(p))
}

func WriteYAML(w io.Writer, p *Packet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToNode(p)); err != nil {
		return err
	}
	return enc.Close()
}

// WriteText renders one line per packet, indented by depth:
//
//	v6 literal 2021 @0+21
func WriteText(w io.Writer, p *Packet) error {
	var err error
	Walk(p, func(n *Packet, depth int) bool {
		if err != nil {
			return false
		}
		indent := strings.Repeat("  ", depth)
		if n.IsLiteral() {
			_, err = fmt.Fprintf(w, "%sv%d literal %d @%d+%d\n", indent, n.Version, n.Value, n.Offset, n.BitLen)
		} else {
			_, err = fmt.Fprintf(w, "%sv%d %s (%d) @%d+%d\n", indent, n.Version, n.Kind, len(n.Children), n.Offset, n.BitLen)
		}
		return err == nil
	})
	return err
}
