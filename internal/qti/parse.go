package qti

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// xmlNode is the minimal document tree the parsers work against. It keeps
// attributes, child order, concatenated character data and the raw inner
// markup of each element, so choice content can be carried back into the
// model verbatim.
type xmlNode struct {
	Name     string
	Attrs    map[string]string
	Children []*xmlNode
	Text     string
	Inner    string
}

var errNoRootElement = errors.New("qti: document has no root element")

// parseXML decodes an XML document into an xmlNode tree. Structural failure
// (unbalanced tags, bad attribute syntax, empty input) returns an error;
// nothing here panics on malformed input.
func parseXML(doc string) (*xmlNode, error) {
	dec := xml.NewDecoder(strings.NewReader(doc))

	var root *xmlNode
	var stack []*xmlNode
	var innerStarts []int64

	for {
		pos := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &xmlNode{
				Name:  t.Name.Local,
				Attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				node.Attrs[a.Name.Local] = a.Value
			}
			stack = append(stack, node)
			innerStarts = append(innerStarts, dec.InputOffset())

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.New("qti: unbalanced end element")
			}
			node := stack[len(stack)-1]
			start := innerStarts[len(innerStarts)-1]
			stack = stack[:len(stack)-1]
			innerStarts = innerStarts[:len(innerStarts)-1]

			if start < pos {
				node.Inner = doc[start:pos]
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			} else if root == nil {
				root = node
			}

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if len(stack) != 0 {
		return nil, errors.New("qti: unclosed element")
	}
	if root == nil {
		return nil, errNoRootElement
	}
	return root, nil
}

// find returns the first descendant (or the node itself) with the given
// local name, depth-first in document order.
func (n *xmlNode) find(name string) *xmlNode {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.find(name); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every descendant with the given local name in document
// order. The node itself is not considered.
func (n *xmlNode) findAll(name string) []*xmlNode {
	var out []*xmlNode
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
		out = append(out, c.findAll(name)...)
	}
	return out
}

func (n *xmlNode) attr(name string) string {
	return n.Attrs[name]
}

func (n *xmlNode) attrOr(name, fallback string) string {
	if v, ok := n.Attrs[name]; ok && v != "" {
		return v
	}
	return fallback
}

func (n *xmlNode) trimmedText() string {
	return strings.TrimSpace(n.Text)
}
