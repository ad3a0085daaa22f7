package mdui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pthm/mdui/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new fragment encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

var (
	_ encoding.Encodable = (*Node)(nil)
	_ encoding.Decodable = (*Node)(nil)
)

// EncodeMap reduces the tree to msgpack-friendly values. Children that are
// neither nodes nor text are rendered and kept as Raw HTML.
func (n *Node) EncodeMap() map[string]any {
	attrs := make([]any, 0, len(n.attrs))
	for _, a := range n.attrs {
		attrs = append(attrs, []any{a.Name, wireValue(a.Value)})
	}

	children := make([]any, 0, len(n.children))
	for _, c := range n.children {
		switch v := c.(type) {
		case *Node:
			children = append(children, v.EncodeMap())
		case string:
			children = append(children, v)
		case Raw:
			children = append(children, map[string]any{"r": string(v)})
		case templ.Component:
			// Whatever rendered before a failure is kept. EncodeFragment
			// resolves components first and reports the error instead.
			var buf bytes.Buffer
			_ = v.Render(context.Background(), &buf)
			children = append(children, map[string]any{"r": buf.String()})
		}
	}

	return map[string]any{"t": n.tag, "a": attrs, "c": children}
}

// wireValue keeps scalar values and reduces anything else to its text.
func wireValue(v any) any {
	switch v.(type) {
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v
	default:
		return formatValue(v)
	}
}

// DecodeMap rebuilds the node from the output of EncodeMap.
func (n *Node) DecodeMap(m map[string]any) error {
	tag, ok := m["t"].(string)
	if !ok || tag == "" {
		return fmt.Errorf("%w: missing tag", encoding.ErrInvalidFormat)
	}
	n.tag = tag
	n.attrs = nil
	n.children = nil

	attrs, _ := m["a"].([]any)
	for _, raw := range attrs {
		pair, ok := raw.([]any)
		if !ok || len(pair) != 2 {
			return fmt.Errorf("%w: bad attribute on <%s>", encoding.ErrInvalidFormat, tag)
		}
		name, ok := pair[0].(string)
		if !ok {
			return fmt.Errorf("%w: bad attribute name on <%s>", encoding.ErrInvalidFormat, tag)
		}
		n.SetAttribute(name, pair[1])
	}

	children, _ := m["c"].([]any)
	for _, raw := range children {
		switch v := raw.(type) {
		case string:
			n.children = append(n.children, v)
		case map[string]any:
			if r, ok := v["r"].(string); ok {
				n.children = append(n.children, Raw(r))
				continue
			}
			child := &Node{}
			if err := child.DecodeMap(v); err != nil {
				return err
			}
			n.children = append(n.children, child)
		default:
			return fmt.Errorf("%w: bad child of <%s>", encoding.ErrInvalidFormat, tag)
		}
	}
	return nil
}

// EncodeFragment turns a node tree into a token for a later request.
// Sensitive trees are encrypted; others are signed but readable.
//
//	token, err := mdui.EncodeFragment(enc, dialog, false)
//	mdui.Lazy("/fragment?t="+token, placeholder)
func EncodeFragment(enc *Encoder, n *Node, sensitive bool) (string, error) {
	if n == nil {
		return "", ErrEmptyTag
	}
	resolved, err := resolveComponents(context.Background(), n)
	if err != nil {
		return "", err
	}
	return enc.Encode(resolved, sensitive)
}

// resolveComponents returns a copy of n with every child that is not a node
// or text rendered to Raw HTML.
func resolveComponents(ctx context.Context, n *Node) (*Node, error) {
	out := &Node{tag: n.tag, attrs: n.Attrs()}
	if n.children == nil {
		return out, nil
	}
	out.children = make([]any, 0, len(n.children))
	for _, c := range n.children {
		switch v := c.(type) {
		case *Node:
			child, err := resolveComponents(ctx, v)
			if err != nil {
				return nil, err
			}
			out.children = append(out.children, child)
		case string, Raw:
			out.children = append(out.children, v)
		case templ.Component:
			var buf bytes.Buffer
			if err := v.Render(ctx, &buf); err != nil {
				return nil, fmt.Errorf("mdui: render fragment child of <%s>: %w", n.tag, err)
			}
			out.children = append(out.children, Raw(buf.String()))
		}
	}
	return out, nil
}

// DecodeFragment rebuilds a node tree from a token made by EncodeFragment.
func DecodeFragment(enc *Encoder, token string, sensitive bool) (*Node, error) {
	n := &Node{}
	if err := enc.Decode(token, sensitive, n); err != nil {
		return nil, wrapEncodingError(err)
	}
	return n, nil
}

// FragmentHandler serves the tree carried in the "t" query parameter.
// Invalid or tampered tokens get 400 Bad Request.
func FragmentHandler(enc *Encoder, sensitive bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n, err := DecodeFragment(enc, r.URL.Query().Get("t"), sensitive)
		if err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		body, err := HTMLWithContext(r.Context(), n)
		if err != nil {
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, body)
	})
}

// wrapEncodingError maps encoding package errors onto mdui sentinels.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
