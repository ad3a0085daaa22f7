package mdui

// Flash levels for snackbar notifications.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// SnackbarContainerID is the id targeted by flash snackbars.
const SnackbarContainerID = "snackbars"

// Flash represents a one-time notification message.
//
// Flashes render as open mdui-snackbar elements inside an out-of-band swap
// that appends to the #snackbars container. MDUI closes each snackbar after
// its auto-close delay.
type Flash struct {
	Level   string // success, error, warning, info
	Message string
}

// FlashesOOB renders flashes as an out-of-band swap for an HTMX response.
// It returns nil when there is nothing to show.
//
//	mdui.Render(w, r, templ.Join(fragment, mdui.FlashesOOB(flashes)))
func FlashesOOB(flashes []Flash) *Node {
	if len(flashes) == 0 {
		return nil
	}

	kids := make([]any, 0, len(flashes))
	for _, f := range flashes {
		kids = append(kids, Snackbar(SnackbarProps{
			Message:   f.Message,
			Open:      true,
			Closeable: true,
			Attrs: Attrs{
				"data-level":       f.Level,
				"auto-close-delay": 3000,
			},
		}))
	}
	return Build("div", kids, []Attr{
		{Name: "id", Value: SnackbarContainerID},
		{Name: "hx-swap-oob", Value: string(SwapBeforeEnd)},
	})
}

// SnackbarContainer returns the empty container flash snackbars are
// appended to. Place it once near the end of the page body.
func SnackbarContainer() *Node {
	return Build("div", nil, []Attr{{Name: "id", Value: SnackbarContainerID}})
}
