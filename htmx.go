package mdui

import (
	"encoding/json"
	"net/http"
	"sort"
)

// SwapMode defines HTMX swap strategies for how response HTML replaces the target.
//
// Each mode corresponds to an HTMX hx-swap value.
//
// See https://htmx.org/attributes/hx-swap/ for visual examples.
type SwapMode string

const (
	// SwapOuter replaces the entire element including its tag (outerHTML).
	SwapOuter SwapMode = "outerHTML"

	// SwapInner replaces only the element's contents, preserving the outer tag (innerHTML).
	SwapInner SwapMode = "innerHTML"

	// SwapBeforeEnd appends the response to the end of the target's contents.
	// Flash snackbars use this to stack in their container.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapAfterEnd inserts the response after the target element.
	SwapAfterEnd SwapMode = "afterend"

	// SwapBeforeBegin inserts the response before the target element.
	SwapBeforeBegin SwapMode = "beforebegin"

	// SwapAfterBegin prepends the response to the start of the target's contents.
	SwapAfterBegin SwapMode = "afterbegin"

	// SwapDelete removes the target element entirely.
	SwapDelete SwapMode = "delete"

	// SwapNone performs no swap - response is discarded.
	SwapNone SwapMode = "none"
)

// HX returns the request attribute for method and url: hx-get, hx-post,
// hx-put, hx-patch or hx-delete. An empty method means GET.
//
//	mdui.Button(mdui.ButtonProps{
//	    Text:  "Delete",
//	    Attrs: mdui.Merge(mdui.HX(http.MethodDelete, "/items/1"), mdui.HXSwap(mdui.SwapDelete)),
//	})
func HX(method, url string) Attrs {
	switch method {
	case http.MethodPost:
		return Attrs{"hx-post": url}
	case http.MethodPut:
		return Attrs{"hx-put": url}
	case http.MethodPatch:
		return Attrs{"hx-patch": url}
	case http.MethodDelete:
		return Attrs{"hx-delete": url}
	default:
		return Attrs{"hx-get": url}
	}
}

// HXTarget sets hx-target.
func HXTarget(selector string) Attrs {
	return Attrs{"hx-target": selector}
}

// HXSwap sets hx-swap.
func HXSwap(mode SwapMode) Attrs {
	return Attrs{"hx-swap": string(mode)}
}

// HXTrigger sets hx-trigger.
func HXTrigger(trigger string) Attrs {
	return Attrs{"hx-trigger": trigger}
}

// HXVals sets hx-vals to the JSON encoding of vals. Keys are written in
// sorted order.
func HXVals(vals map[string]string) Attrs {
	if len(vals) == 0 {
		return nil
	}
	data, _ := json.Marshal(vals)
	return Attrs{"hx-vals": string(data)}
}

// Merge combines attribute sets. Later sets win on duplicate keys.
func Merge(sets ...Attrs) Attrs {
	out := Attrs{}
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// Lazy returns a placeholder that loads url when scrolled into view and
// replaces itself with the response.
//
//	mdui.Lazy("/fragment?t="+token, mdui.Progress(mdui.ProgressProps{Circular: true}))
func Lazy(url string, placeholder any) *Node {
	return deferred(url, placeholder, "intersect once")
}

// Defer returns a placeholder that loads url once the page has loaded.
func Defer(url string, placeholder any) *Node {
	return deferred(url, placeholder, "load")
}

func deferred(url string, placeholder any, trigger string) *Node {
	return Build("div", []any{placeholder}, []Attr{
		{Name: "hx-get", Value: url},
		{Name: "hx-trigger", Value: trigger},
		{Name: "hx-swap", Value: string(SwapOuter)},
	})
}

// sortedKeys returns the keys of attrs in order.
func sortedKeys(attrs Attrs) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
