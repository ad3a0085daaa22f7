package mdui

// Button variants.
const (
	ButtonFilled   = "filled"
	ButtonElevated = "elevated"
	ButtonTonal    = "tonal"
	ButtonOutlined = "outlined"
	ButtonText     = "text"
)

// ButtonProps configures Button.
type ButtonProps struct {
	Text    string
	Variant string // default "filled"

	// Icon and EndIcon are icon names rendered by MDUI itself.
	Icon    string
	EndIcon string

	// IconSlot and EndIconSlot are pre-built icon children. They take
	// precedence over Icon and EndIcon.
	IconSlot    any
	EndIconSlot any

	Href      string
	Disabled  bool
	Loading   bool
	FullWidth bool
	Attrs     Attrs
}

// Button renders an mdui-button.
//
// Children are ordered icon slot, Text, extra children, end icon slot.
//
//	mdui.Button(mdui.ButtonProps{Text: "Next", Icon: "arrow_back", EndIcon: "arrow_forward"})
func Button(p ButtonProps, children ...any) *Node {
	var attrs attrList
	attrs.set("variant", orDefault(p.Variant, ButtonFilled))

	var kids []any
	if isSet(p.IconSlot) {
		kids = append(kids, slotted(p.IconSlot, SlotIcon))
	} else {
		attrs.str("icon", p.Icon)
	}
	if p.Text != "" {
		kids = append(kids, p.Text)
	}
	kids = append(kids, children...)
	if isSet(p.EndIconSlot) {
		kids = append(kids, slotted(p.EndIconSlot, SlotEndIcon))
	} else {
		attrs.str("end-icon", p.EndIcon)
	}

	attrs.str("href", p.Href)
	attrs.set("disabled", p.Disabled)
	attrs.set("loading", p.Loading)
	attrs.set("full-width", p.FullWidth)
	attrs.extra(p.Attrs)
	return Build("mdui-button", kids, attrs)
}

// ButtonIcon variants.
const (
	ButtonIconStandard = "standard"
	ButtonIconFilled   = "filled"
	ButtonIconTonal    = "tonal"
	ButtonIconOutlined = "outlined"
)

// ButtonIconProps configures ButtonIcon.
type ButtonIconProps struct {
	Icon       string
	Variant    string // default "standard"
	Href       string
	Selectable bool
	Selected   bool
	Disabled   bool
	Loading    bool
	Attrs      Attrs
}

// ButtonIcon renders an mdui-button-icon.
func ButtonIcon(p ButtonIconProps, children ...any) *Node {
	var attrs attrList
	attrs.str("icon", p.Icon)
	attrs.set("variant", orDefault(p.Variant, ButtonIconStandard))
	attrs.set("selectable", p.Selectable)
	attrs.set("selected", p.Selected)
	attrs.set("disabled", p.Disabled)
	attrs.set("loading", p.Loading)
	attrs.str("href", p.Href)
	attrs.extra(p.Attrs)
	return Build("mdui-button-icon", children, attrs)
}

// Fab variants.
const (
	FabPrimary   = "primary"
	FabSurface   = "surface"
	FabSecondary = "secondary"
	FabTertiary  = "tertiary"
)

// FabProps configures Fab.
type FabProps struct {
	Icon     string
	Text     string
	Variant  string // default "primary"
	Size     string
	Extended bool
	Attrs    Attrs
}

// Fab renders an mdui-fab (floating action button).
func Fab(p FabProps) *Node {
	var attrs attrList
	attrs.str("icon", p.Icon)
	attrs.set("variant", orDefault(p.Variant, FabPrimary))
	attrs.str("size", p.Size)
	attrs.set("extended", p.Extended)
	attrs.extra(p.Attrs)

	var kids []any
	if p.Text != "" {
		kids = append(kids, p.Text)
	}
	return Build("mdui-fab", kids, attrs)
}

// SegmentedButtonProps configures SegmentedButton.
type SegmentedButtonProps struct {
	Value    string
	Text     string
	Icon     string
	Disabled bool
	Attrs    Attrs
}

// SegmentedButton renders an mdui-segmented-button.
func SegmentedButton(p SegmentedButtonProps) *Node {
	var attrs attrList
	attrs.str("value", p.Value)
	attrs.str("icon", p.Icon)
	attrs.set("disabled", p.Disabled)
	attrs.extra(p.Attrs)

	var kids []any
	if p.Text != "" {
		kids = append(kids, p.Text)
	}
	return Build("mdui-segmented-button", kids, attrs)
}

// SegmentedButtonGroupProps configures SegmentedButtonGroup.
type SegmentedButtonGroupProps struct {
	Label     string
	Value     string
	Selects   string // "single" or "multiple"
	FullWidth bool
	Options   []Option
	Attrs     Attrs
}

// SegmentedButtonGroup renders an mdui-segmented-button-group with one
// mdui-segmented-button per option, in order.
func SegmentedButtonGroup(p SegmentedButtonGroupProps, children ...any) *Node {
	var attrs attrList
	attrs.str("label", p.Label)
	attrs.str("value", p.Value)
	attrs.str("selects", p.Selects)
	attrs.set("full-width", p.FullWidth)
	attrs.extra(p.Attrs)

	kids := make([]any, 0, len(p.Options)+len(children))
	for _, opt := range p.Options {
		kids = append(kids, SegmentedButton(SegmentedButtonProps{
			Value:    opt.value(),
			Text:     opt.text(),
			Icon:     opt.Icon,
			Disabled: opt.Disabled,
			Attrs:    opt.Attrs,
		}))
	}
	kids = append(kids, children...)
	return Build("mdui-segmented-button-group", kids, attrs)
}
