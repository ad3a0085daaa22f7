package mdui

import (
	"testing"
)

func TestFlashLevelConstants(t *testing.T) {
	// Ensure constants have expected values
	if FlashSuccess != "success" {
		t.Errorf("FlashSuccess = %q, want %q", FlashSuccess, "success")
	}
	if FlashError != "error" {
		t.Errorf("FlashError = %q, want %q", FlashError, "error")
	}
	if FlashWarning != "warning" {
		t.Errorf("FlashWarning = %q, want %q", FlashWarning, "warning")
	}
	if FlashInfo != "info" {
		t.Errorf("FlashInfo = %q, want %q", FlashInfo, "info")
	}
}

func TestFlashesOOBEmpty(t *testing.T) {
	if n := FlashesOOB(nil); n != nil {
		t.Errorf("FlashesOOB(nil) = %v, want nil", n)
	}
	if n := FlashesOOB([]Flash{}); n != nil {
		t.Errorf("FlashesOOB([]) = %v, want nil", n)
	}
}

func TestFlashesOOBSingle(t *testing.T) {
	got := render(t, FlashesOOB([]Flash{
		{Level: FlashSuccess, Message: "Item saved successfully"},
	}))

	want := `<div id="snackbars" hx-swap-oob="beforeend">` +
		`<mdui-snackbar open closeable auto-close-delay="3000" data-level="success">Item saved successfully</mdui-snackbar>` +
		`</div>`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestFlashesOOBMultiple(t *testing.T) {
	res, err := TestRender(FlashesOOB([]Flash{
		{Level: FlashSuccess, Message: "First"},
		{Level: FlashError, Message: "Second"},
		{Level: FlashWarning, Message: "Third <b>"},
	}))
	if err != nil {
		t.Fatal(err)
	}

	snackbars := res.Find("mdui-snackbar")
	if len(snackbars) != 3 {
		t.Fatalf("got %d snackbars, want 3", len(snackbars))
	}
	for i, level := range []string{FlashSuccess, FlashError, FlashWarning} {
		if v, _ := NodeAttr(snackbars[i], "data-level"); v != level {
			t.Errorf("snackbar %d level = %q, want %q", i, v, level)
		}
	}
	if !res.HTMLContains("Third &lt;b&gt;") {
		t.Error("message should be escaped")
	}
}

func TestSnackbarContainer(t *testing.T) {
	if got := render(t, SnackbarContainer()); got != `<div id="snackbars"></div>` {
		t.Errorf("got %s", got)
	}
}
