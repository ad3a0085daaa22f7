package mdui

// List renders an mdui-list around items.
func List(attrs Attrs, items ...any) *Node {
	var l attrList
	l.extra(attrs)
	return Build("mdui-list", items, l)
}

// ListSubheader renders an mdui-list-subheader.
func ListSubheader(attrs Attrs, children ...any) *Node {
	var l attrList
	l.extra(attrs)
	return Build("mdui-list-subheader", children, l)
}

// ListItemProps configures ListItem.
type ListItemProps struct {
	Headline        string
	Description     string
	Icon            string
	EndIcon         string
	HeadlineLine    string
	DescriptionLine string
	Href            string
	Target          string
	Disabled        bool
	NonClickable    bool
	Rounded         bool
	Active          bool
	Attrs           Attrs
}

// ListItem renders an mdui-list-item.
func ListItem(p ListItemProps, children ...any) *Node {
	var attrs attrList
	attrs.str("icon", p.Icon)
	attrs.str("end-icon", p.EndIcon)
	attrs.str("headline", p.Headline)
	attrs.str("description", p.Description)
	attrs.str("headline-line", p.HeadlineLine)
	attrs.str("description-line", p.DescriptionLine)
	attrs.str("href", p.Href)
	attrs.str("target", p.Target)
	attrs.set("disabled", p.Disabled)
	attrs.set("nonclickable", p.NonClickable)
	attrs.set("rounded", p.Rounded)
	attrs.set("active", p.Active)
	attrs.extra(p.Attrs)
	return Build("mdui-list-item", children, attrs)
}

// DividerProps configures Divider.
type DividerProps struct {
	Vertical bool
	Inset    bool
	Middle   bool
	Attrs    Attrs
}

// Divider renders an mdui-divider.
func Divider(p DividerProps) *Node {
	var attrs attrList
	attrs.set("vertical", p.Vertical)
	attrs.set("inset", p.Inset)
	attrs.set("middle", p.Middle)
	attrs.extra(p.Attrs)
	return Build("mdui-divider", nil, attrs)
}
