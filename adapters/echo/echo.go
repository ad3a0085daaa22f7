// Package mduiecho provides Echo framework integration for mdui.
//
// Serve fragment tokens from an Echo instance or group:
//
//	e := echo.New()
//	enc := mduiecho.Mount(e)
//	token, _ := mdui.EncodeFragment(enc, card, false)
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	enc := mduiecho.MountGroup(g, mduiecho.WithSensitive())
package mduiecho

import (
	"crypto/rand"
	"fmt"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/mdui"
)

// DefaultPath is where Mount serves fragment tokens.
const DefaultPath = "/_mdui/fragment"

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key       []byte
	path      string
	sensitive bool
}

// WithKey sets the signing key for fragment tokens.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithPath sets the route fragment tokens are served from.
// Defaults to DefaultPath.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithSensitive makes the mounted handler expect encrypted tokens.
func WithSensitive() Option {
	return func(o *options) {
		o.sensitive = true
	}
}

// Mount creates an encoder and serves its fragment tokens on an Echo
// instance. Use the returned encoder to make tokens for the same route.
//
//	e := echo.New()
//	enc := mduiecho.Mount(e, mduiecho.WithKey(key))
func Mount(e *echo.Echo, opts ...Option) *mdui.Encoder {
	enc, o := newEncoder(opts)
	e.GET(o.path, echo.WrapHandler(mdui.FragmentHandler(enc, o.sensitive)))
	return enc
}

// MountGroup serves fragment tokens on an Echo group, so fragment requests
// share the group's middleware (auth, logging, etc.).
func MountGroup(g *echo.Group, opts ...Option) *mdui.Encoder {
	enc, o := newEncoder(opts)
	g.GET(o.path, echo.WrapHandler(mdui.FragmentHandler(enc, o.sensitive)))
	return enc
}

func newEncoder(opts []Option) (*mdui.Encoder, *options) {
	o := &options{path: DefaultPath}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("mduiecho: failed to generate random key: %v", err))
		}
	}

	enc, err := mdui.NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("mduiecho: failed to create encoder: %v", err))
	}
	return enc, o
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return mduiecho.Render(c, mdui.Page(mdui.PageProps{Title: "Home"}, body))
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}

// RenderWithFlashes renders component followed by flashes as an
// out-of-band snackbar swap. Non-HTMX requests get the component only.
func RenderWithFlashes(c echo.Context, component templ.Component, flashes ...mdui.Flash) error {
	if !mdui.IsHTMX(c.Request()) || len(flashes) == 0 {
		return Render(c, component)
	}
	return Render(c, templ.Join(component, mdui.FlashesOOB(flashes)))
}
