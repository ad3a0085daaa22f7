package mduiecho

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pthm/mdui"
)

func fragmentURL(t *testing.T, enc *mdui.Encoder, path string, sensitive bool) string {
	t.Helper()
	token, err := mdui.EncodeFragment(enc, mdui.Badge(mdui.BadgeProps{Content: "5"}), sensitive)
	if err != nil {
		t.Fatalf("EncodeFragment: %v", err)
	}
	return path + "?t=" + token
}

func TestMount(t *testing.T) {
	e := echo.New()
	enc := Mount(e)
	if enc == nil {
		t.Fatal("Mount returned nil encoder")
	}

	req := httptest.NewRequest(http.MethodGet, fragmentURL(t, enc, DefaultPath, false), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); body != "<mdui-badge>5</mdui-badge>" {
		t.Errorf("body = %q", body)
	}
}

func TestMountWithKey(t *testing.T) {
	key := []byte("shared-key")

	e := echo.New()
	Mount(e, WithKey(key))

	other, err := mdui.NewEncoder(key)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, fragmentURL(t, other, DefaultPath, false), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("token from an encoder with the same key: status = %d", rec.Code)
	}
}

func TestMountWithPathAndSensitive(t *testing.T) {
	e := echo.New()
	enc := Mount(e, WithPath("/f"), WithSensitive())

	req := httptest.NewRequest(http.MethodGet, fragmentURL(t, enc, "/f", true), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("encrypted token status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, fragmentURL(t, enc, "/f", false), nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("signed token on sensitive route status = %d, want 400", rec.Code)
	}
}

func TestMountGroup(t *testing.T) {
	e := echo.New()
	called := false
	g := e.Group("/app", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			called = true
			return next(c)
		}
	})
	enc := MountGroup(g)

	req := httptest.NewRequest(http.MethodGet, fragmentURL(t, enc, "/app"+DefaultPath, false), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Error("group middleware should run for fragment requests")
	}
}

func TestTamperedToken(t *testing.T) {
	e := echo.New()
	enc := Mount(e)

	req := httptest.NewRequest(http.MethodGet, fragmentURL(t, enc, DefaultPath, false)+"x", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRender(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return Render(c, mdui.Button(mdui.ButtonProps{Text: "Hi"}))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if body := rec.Body.String(); body != `<mdui-button variant="filled">Hi</mdui-button>` {
		t.Errorf("body = %q", body)
	}
}

func TestRenderWithFlashes(t *testing.T) {
	e := echo.New()
	e.POST("/save", func(c echo.Context) error {
		return RenderWithFlashes(c, mdui.Div(nil, "saved"), mdui.Flash{Level: mdui.FlashSuccess, Message: "Saved"})
	})

	req := httptest.NewRequest(http.MethodPost, "/save", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.HasPrefix(body, "<div>saved</div>") {
		t.Errorf("component should render first: %s", body)
	}
	if !strings.Contains(body, `hx-swap-oob="beforeend"`) || !strings.Contains(body, "Saved") {
		t.Errorf("missing flash swap: %s", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/save", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if body := rec.Body.String(); body != "<div>saved</div>" {
		t.Errorf("non-HTMX body = %q", body)
	}
}
