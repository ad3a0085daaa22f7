package mdui

import "strings"

// Icon variants. Each selects a Material icon font class.
const (
	IconOutlined = "outlined"
	IconRounded  = "rounded"
	IconSharp    = "sharp"
	IconFilled   = "filled"
)

// iconClasses maps a variant to the font class it adds and the marker that
// means a font class is already present.
var iconClasses = map[string]struct{ marker, class string }{
	IconOutlined: {"material-symbols", "material-symbols-outlined"},
	IconRounded:  {"material-symbols", "material-symbols-rounded"},
	IconSharp:    {"material-symbols", "material-symbols-sharp"},
	IconFilled:   {"material-icons", "material-icons"},
}

// IconProps configures Icon.
type IconProps struct {
	Name    string
	Variant string // default "outlined"
	Attrs   Attrs
}

// Icon renders an mdui-icon.
//
// The variant's font class is appended to any class given in Attrs. It is
// not added when the class already contains the variant's marker
// ("material-symbols" or "material-icons"), so re-wrapping stays stable.
func Icon(p IconProps) *Node {
	var attrs attrList
	attrs.set("name", p.Name)
	attrs.extra(p.Attrs)

	if ic, ok := iconClasses[orDefault(p.Variant, IconOutlined)]; ok {
		existing := attrs.classOf()
		if !strings.Contains(existing, ic.marker) {
			attrs.set("class", strings.TrimSpace(existing+" "+ic.class))
		}
	}
	return Build("mdui-icon", nil, attrs)
}

// AvatarProps configures Avatar.
type AvatarProps struct {
	Src   string
	Label string
	Icon  string
	Fit   string
	Attrs Attrs
}

// Avatar renders an mdui-avatar.
func Avatar(p AvatarProps, children ...any) *Node {
	var attrs attrList
	attrs.str("src", p.Src)
	attrs.str("label", p.Label)
	attrs.str("icon", p.Icon)
	attrs.str("fit", p.Fit)
	attrs.extra(p.Attrs)
	return Build("mdui-avatar", children, attrs)
}

// Chip variants.
const (
	ChipAssist     = "assist"
	ChipFilter     = "filter"
	ChipInput      = "input"
	ChipSuggestion = "suggestion"
)

// ChipProps configures Chip.
type ChipProps struct {
	Text       string
	Icon       string
	EndIcon    string
	Variant    string
	Selectable bool
	Selected   bool
	Deletable  bool
	Disabled   bool
	Attrs      Attrs
}

// Chip renders an mdui-chip.
func Chip(p ChipProps) *Node {
	var attrs attrList
	attrs.str("icon", p.Icon)
	attrs.str("end-icon", p.EndIcon)
	attrs.str("variant", p.Variant)
	attrs.set("selectable", p.Selectable)
	attrs.set("selected", p.Selected)
	attrs.set("deletable", p.Deletable)
	attrs.set("disabled", p.Disabled)
	attrs.extra(p.Attrs)
	return Build("mdui-chip", []any{p.Text}, attrs)
}
