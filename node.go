package mdui

import (
	"fmt"

	"github.com/a-h/templ"
)

// Attr is a single attribute on a Node.
type Attr struct {
	Name  string
	Value any
}

// Attrs is an open set of extra attributes passed through to a node.
type Attrs map[string]any

// Raw is child content rendered without escaping. Use it for style and
// script bodies.
type Raw string

// Slottable is implemented by children that can be assigned to a named slot
// of their parent.
type Slottable interface {
	GetAttribute(name string) (any, bool)
	SetAttribute(name string, value any)
}

// Node is one HTML or custom element.
//
// Nodes are built once by Build (usually through a constructor) and are not
// changed afterwards, except for the slot attribute a parent component may
// assign through SetAttribute.
type Node struct {
	tag      string
	attrs    []Attr
	children []any
}

var _ Slottable = (*Node)(nil)

// Build constructs a node from a tag, ordered children and attributes.
//
// Attributes valued false or nil are dropped and true is kept as a presence
// attribute. A repeated attribute name keeps its first position and takes
// the last value. Children are flattened (see package docs) and nil entries
// skipped. Build never fails; an empty tag is reported when rendering.
func Build(tag string, children []any, attrs []Attr) *Node {
	n := &Node{tag: tag}
	for _, a := range attrs {
		n.SetAttribute(a.Name, a.Value)
	}
	n.children = appendChildren(nil, children)
	return n
}

// Tag returns the element tag name.
func (n *Node) Tag() string {
	if n == nil {
		return ""
	}
	return n.tag
}

// GetAttribute returns the value of the named attribute.
func (n *Node) GetAttribute(name string) (any, bool) {
	if n == nil {
		return nil, false
	}
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// SetAttribute sets an attribute in place. Setting false or nil removes it.
func (n *Node) SetAttribute(name string, value any) {
	if n == nil || name == "" {
		return
	}
	drop := isEmptyValue(value)
	for i, a := range n.attrs {
		if a.Name != name {
			continue
		}
		if drop {
			n.attrs = append(n.attrs[:i:i], n.attrs[i+1:]...)
		} else {
			n.attrs[i].Value = value
		}
		return
	}
	if !drop {
		n.attrs = append(n.attrs, Attr{Name: name, Value: value})
	}
}

// Attrs returns a copy of the node's attributes in render order.
func (n *Node) Attrs() []Attr {
	if n == nil || len(n.attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// Children returns a copy of the node's children.
func (n *Node) Children() []any {
	if n == nil {
		return nil
	}
	out := make([]any, len(n.children))
	copy(out, n.children)
	return out
}

// With returns a new node with children appended. The receiver is left
// unchanged; existing children are shared, not copied.
//
//	mdui.TopAppBar(mdui.TopAppBarProps{Title: "Inbox"}).With(
//	    mdui.ButtonIcon(mdui.ButtonIconProps{Icon: "search"}),
//	)
func (n *Node) With(children ...any) *Node {
	if n == nil {
		return nil
	}
	out := &Node{tag: n.tag, attrs: n.Attrs()}
	out.children = appendChildren(n.Children(), children)
	return out
}

// Clone returns a deep copy of the node. Child nodes are cloned; strings,
// Raw values and other templ components are shared.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{tag: n.tag, attrs: n.Attrs()}
	if n.children != nil {
		out.children = make([]any, len(n.children))
		for i, c := range n.children {
			if child, ok := c.(*Node); ok {
				out.children[i] = child.Clone()
				continue
			}
			out.children[i] = c
		}
	}
	return out
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	b, ok := v.(bool)
	return ok && !b
}

// appendChildren flattens src onto dst.
func appendChildren(dst, src []any) []any {
	for _, c := range src {
		switch v := c.(type) {
		case nil:
		case *Node:
			if v != nil {
				dst = append(dst, v)
			}
		case string, Raw:
			dst = append(dst, v)
		case []any:
			dst = appendChildren(dst, v)
		case []*Node:
			for _, child := range v {
				if child != nil {
					dst = append(dst, child)
				}
			}
		case []string:
			for _, s := range v {
				dst = append(dst, s)
			}
		case templ.Component:
			dst = append(dst, v)
		default:
			dst = append(dst, fmt.Sprint(v))
		}
	}
	return dst
}
