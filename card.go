package mdui

// Div renders a plain div. It is handy for grouping children into a slot:
//
//	mdui.Div(mdui.Attrs{"slot": "end"}, searchButton, mdui.ThemeToggle(mdui.ThemeToggleProps{}))
func Div(attrs Attrs, children ...any) *Node {
	var l attrList
	l.extra(attrs)
	return Build("div", children, l)
}

// Card variants.
const (
	CardElevated = "elevated"
	CardFilled   = "filled"
	CardOutlined = "outlined"
)

// CardProps configures Card.
type CardProps struct {
	// Title and Subtitle are strings or nodes, each wrapped in a div
	// assigned to the header and subheader slots.
	Title    any
	Subtitle any

	// Content is a child or a []any of children placed after the
	// header and subheader.
	Content any

	Variant   string // default "elevated"
	Clickable bool
	Disabled  bool
	Href      string
	Attrs     Attrs
}

// Card renders an mdui-card. Children are ordered header, subheader,
// Content, then extra children.
func Card(p CardProps, children ...any) *Node {
	var attrs attrList
	attrs.set("variant", orDefault(p.Variant, CardElevated))
	attrs.set("clickable", p.Clickable)
	attrs.set("disabled", p.Disabled)
	attrs.str("href", p.Href)
	attrs.extra(p.Attrs)

	var kids []any
	if isSet(p.Title) {
		kids = append(kids, wrapSlot(p.Title, SlotHeader))
	}
	if isSet(p.Subtitle) {
		kids = append(kids, wrapSlot(p.Subtitle, SlotSubheader))
	}
	if isSet(p.Content) {
		kids = append(kids, p.Content)
	}
	kids = append(kids, children...)
	return Build("mdui-card", kids, attrs)
}
