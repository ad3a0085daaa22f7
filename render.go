package mdui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

var _ templ.Component = (*Node)(nil)

// voidElements cannot have children or a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// Render writes the node as HTML. It implements templ.Component.
//
// An html root is preceded by a doctype. Attribute values and string
// children are escaped; Raw children are written as they are.
func (n *Node) Render(ctx context.Context, w io.Writer) error {
	if n == nil {
		return nil
	}
	if n.tag == "html" {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
	}
	return n.render(ctx, w)
}

func (n *Node) render(ctx context.Context, w io.Writer) error {
	if n.tag == "" {
		return ErrEmptyTag
	}
	if !validName(n.tag) {
		return fmt.Errorf("%w: %q", ErrInvalidTag, n.tag)
	}

	var buf bytes.Buffer
	buf.WriteByte('<')
	buf.WriteString(n.tag)
	for _, a := range n.attrs {
		if isEmptyValue(a.Value) || !validName(a.Name) {
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(templ.EscapeString(a.Name))
		if b, ok := a.Value.(bool); ok && b {
			continue
		}
		buf.WriteString(`="`)
		buf.WriteString(templ.EscapeString(formatValue(a.Value)))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	if voidElements[n.tag] {
		return nil
	}

	for _, c := range n.children {
		if err := renderChild(ctx, w, c); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+n.tag+">")
	return err
}

func renderChild(ctx context.Context, w io.Writer, c any) error {
	switch v := c.(type) {
	case *Node:
		return v.render(ctx, w)
	case string:
		_, err := io.WriteString(w, templ.EscapeString(v))
		return err
	case Raw:
		_, err := io.WriteString(w, string(v))
		return err
	case templ.Component:
		return v.Render(ctx, w)
	default:
		return fmt.Errorf("mdui: unsupported child %T", c)
	}
}

// validName reports whether s can be written as a tag or attribute name.
// Names that could end the name early or open another attribute are refused.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r <= 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			return false
		}
		switch r {
		case '"', '\'', '<', '>', '/', '=', '`':
			return false
		}
	}
	return true
}

// formatValue converts an attribute value to its wire text.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// HTML renders a component to a string.
func HTML(component templ.Component) (string, error) {
	return HTMLWithContext(context.Background(), component)
}

// HTMLWithContext renders a component to a string using ctx.
func HTMLWithContext(ctx context.Context, component templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    mdui.Render(w, r, mdui.Page(mdui.PageProps{Title: "Home"}, body))
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
//
// HTMX sends HX-Request: true on all requests. Use this to render a
// fragment for HTMX and a full page for direct browser requests.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
