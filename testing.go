package mdui

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// TestResult holds rendered output for assertions in tests.
//
// The HTML is parsed on demand so element queries see the same tree a
// browser would build.
type TestResult struct {
	HTML       string
	StatusCode int
	Headers    http.Header

	doc *html.Node
}

// TestRender renders a component and returns testable output.
//
//	result, err := mdui.TestRender(mdui.Card(mdui.CardProps{Title: "T"}))
//	if result.Count("mdui-card") != 1 {
//	    t.Fatal("missing card")
//	}
func TestRender(component templ.Component) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), component)
}

// TestRenderWithContext renders a component with a custom context.
func TestRenderWithContext(ctx context.Context, component templ.Component) (*TestResult, error) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestRequest sends a request to h and records the response.
//
//	result, err := mdui.NewTestRequest(http.MethodGet, "/fragment?t="+token).
//	    WithHeader("HX-Request", "true").
//	    Execute(handler)
type TestRequest struct {
	method  string
	url     string
	headers map[string]string
	ctx     context.Context
}

// NewTestRequest creates a new test request builder.
func NewTestRequest(method, url string) *TestRequest {
	return &TestRequest{
		method:  method,
		url:     url,
		headers: make(map[string]string),
		ctx:     context.Background(),
	}
}

// WithHeader adds a header to the request.
func (b *TestRequest) WithHeader(key, value string) *TestRequest {
	b.headers[key] = value
	return b
}

// WithContext sets the context for the request.
func (b *TestRequest) WithContext(ctx context.Context) *TestRequest {
	b.ctx = ctx
	return b
}

// Execute runs the request against h.
func (b *TestRequest) Execute(h http.Handler) (*TestResult, error) {
	req := httptest.NewRequest(b.method, b.url, nil)
	req = req.WithContext(b.ctx)
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// Count returns how many elements with tag the document holds.
func (r *TestResult) Count(tag string) int {
	return len(r.Find(tag))
}

// Find returns the elements with tag in document order.
func (r *TestResult) Find(tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(r.parse())
	return out
}

// Attr returns an attribute of the first element with tag. Presence-only
// attributes report an empty value and true.
func (r *TestResult) Attr(tag, name string) (string, bool) {
	nodes := r.Find(tag)
	if len(nodes) == 0 {
		return "", false
	}
	return NodeAttr(nodes[0], name)
}

// Text returns the text content of the first element with tag.
func (r *TestResult) Text(tag string) string {
	nodes := r.Find(tag)
	if len(nodes) == 0 {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(nodes[0])
	return sb.String()
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// NodeAttr returns the named attribute of a parsed element.
func NodeAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (r *TestResult) parse() *html.Node {
	if r.doc != nil {
		return r.doc
	}
	doc, err := html.Parse(strings.NewReader(r.HTML))
	if err != nil {
		doc = &html.Node{Type: html.DocumentNode}
	}
	r.doc = doc
	return doc
}
