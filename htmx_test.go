package mdui

import (
	"net/http"
	"reflect"
	"testing"
)

func TestHX(t *testing.T) {
	tests := []struct {
		method string
		want   Attrs
	}{
		{"", Attrs{"hx-get": "/x"}},
		{http.MethodGet, Attrs{"hx-get": "/x"}},
		{http.MethodPost, Attrs{"hx-post": "/x"}},
		{http.MethodPut, Attrs{"hx-put": "/x"}},
		{http.MethodPatch, Attrs{"hx-patch": "/x"}},
		{http.MethodDelete, Attrs{"hx-delete": "/x"}},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			if got := HX(tt.method, "/x"); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("HX(%q) = %v, want %v", tt.method, got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	got := Merge(HX(http.MethodPost, "/save"), HXTarget("#out"), HXSwap(SwapInner), Attrs{"hx-target": "#other"}, nil)
	want := Attrs{"hx-post": "/save", "hx-target": "#other", "hx-swap": "innerHTML"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestHXVals(t *testing.T) {
	if HXVals(nil) != nil {
		t.Error("empty vals should give nil")
	}
	got := HXVals(map[string]string{"b": "2", "a": "1"})
	if got["hx-vals"] != `{"a":"1","b":"2"}` {
		t.Errorf("hx-vals = %v", got["hx-vals"])
	}
}

func TestHXOnButton(t *testing.T) {
	b := Button(ButtonProps{
		Text:  "Delete",
		Attrs: Merge(HX(http.MethodDelete, "/items/1"), HXSwap(SwapDelete), HXTrigger("click")),
	})
	want := `<mdui-button variant="filled" hx-delete="/items/1" hx-swap="delete" hx-trigger="click">Delete</mdui-button>`
	if got := render(t, b); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestLazyAndDefer(t *testing.T) {
	lazy := Lazy("/more", "Loading")
	want := `<div hx-get="/more" hx-trigger="intersect once" hx-swap="outerHTML">Loading</div>`
	if got := render(t, lazy); got != want {
		t.Errorf("Lazy = %s", got)
	}

	d := Defer("/stats", Progress(ProgressProps{}))
	want = `<div hx-get="/stats" hx-trigger="load" hx-swap="outerHTML"><mdui-linear-progress></mdui-linear-progress></div>`
	if got := render(t, d); got != want {
		t.Errorf("Defer = %s", got)
	}
}
