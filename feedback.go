package mdui

// DialogProps configures Dialog.
type DialogProps struct {
	// Headline and Description are wrapped in divs assigned to the
	// headline and description slots.
	Headline    any
	Description any

	Icon                string
	Open                bool
	Fullscreen          bool
	CloseOnEsc          bool
	CloseOnOverlayClick bool
	Attrs               Attrs
}

// Dialog renders an mdui-dialog. Children follow the headline and
// description; put actions in a Div with slot "action".
func Dialog(p DialogProps, children ...any) *Node {
	var attrs attrList
	attrs.set("open", p.Open)
	attrs.str("icon", p.Icon)
	attrs.set("fullscreen", p.Fullscreen)
	attrs.set("close-on-esc", p.CloseOnEsc)
	attrs.set("close-on-overlay-click", p.CloseOnOverlayClick)
	attrs.extra(p.Attrs)

	var kids []any
	if isSet(p.Headline) {
		kids = append(kids, wrapSlot(p.Headline, SlotHeadline))
	}
	if isSet(p.Description) {
		kids = append(kids, wrapSlot(p.Description, SlotDescription))
	}
	kids = append(kids, children...)
	return Build("mdui-dialog", kids, attrs)
}

// SnackbarProps configures Snackbar.
type SnackbarProps struct {
	Message    string
	ActionText string
	Placement  string
	Open       bool
	Closeable  bool
	Attrs      Attrs
}

// Snackbar renders an mdui-snackbar holding Message. ActionText adds an
// mdui-button in the action slot.
func Snackbar(p SnackbarProps) *Node {
	var attrs attrList
	attrs.set("open", p.Open)
	attrs.str("placement", p.Placement)
	attrs.set("closeable", p.Closeable)
	attrs.extra(p.Attrs)

	kids := []any{p.Message}
	if p.ActionText != "" {
		kids = append(kids, Build("mdui-button", []any{p.ActionText}, []Attr{{Name: "slot", Value: SlotAction}}))
	}
	return Build("mdui-snackbar", kids, attrs)
}

// TooltipProps configures Tooltip.
type TooltipProps struct {
	Content   string
	Placement string
	Attrs     Attrs
}

// Tooltip renders an mdui-tooltip with Content as its first child,
// followed by the children it describes.
func Tooltip(p TooltipProps, children ...any) *Node {
	var attrs attrList
	attrs.str("placement", p.Placement)
	attrs.extra(p.Attrs)

	kids := make([]any, 0, len(children)+1)
	kids = append(kids, p.Content)
	kids = append(kids, children...)
	return Build("mdui-tooltip", kids, attrs)
}

// ProgressProps configures Progress.
type ProgressProps struct {
	// Value is left unset for an indeterminate indicator.
	Value *float64
	Max   *float64

	// Circular selects mdui-circular-progress over the linear bar.
	Circular bool
	Attrs    Attrs
}

// Progress renders an mdui-linear-progress, or an mdui-circular-progress
// when Circular is set.
func Progress(p ProgressProps) *Node {
	var attrs attrList
	attrs.num("value", p.Value)
	attrs.num("max", p.Max)
	attrs.extra(p.Attrs)

	tag := "mdui-linear-progress"
	if p.Circular {
		tag = "mdui-circular-progress"
	}
	return Build(tag, nil, attrs)
}

// BadgeProps configures Badge.
type BadgeProps struct {
	Content string
	Variant string // "small" or "large"
	Attrs   Attrs
}

// Badge renders an mdui-badge.
func Badge(p BadgeProps) *Node {
	var attrs attrList
	attrs.str("variant", p.Variant)
	attrs.extra(p.Attrs)
	return Build("mdui-badge", []any{p.Content}, attrs)
}
