package mdui

// NavigationBar renders an mdui-navigation-bar around items.
func NavigationBar(attrs Attrs, items ...any) *Node {
	var l attrList
	l.extra(attrs)
	return Build("mdui-navigation-bar", items, l)
}

// NavigationDrawer renders an mdui-navigation-drawer around items.
func NavigationDrawer(attrs Attrs, items ...any) *Node {
	var l attrList
	l.extra(attrs)
	return Build("mdui-navigation-drawer", items, l)
}

// NavigationRail renders an mdui-navigation-rail around items.
func NavigationRail(attrs Attrs, items ...any) *Node {
	var l attrList
	l.extra(attrs)
	return Build("mdui-navigation-rail", items, l)
}

// NavigationItemProps configures NavigationBarItem and NavigationRailItem.
type NavigationItemProps struct {
	Icon       string
	ActiveIcon string
	Label      string
	Href       string
	Value      string
	Attrs      Attrs
}

func (p NavigationItemProps) attrs() attrList {
	var l attrList
	l.str("icon", p.Icon)
	l.str("active-icon", p.ActiveIcon)
	l.str("label", p.Label)
	l.str("href", p.Href)
	l.str("value", p.Value)
	l.extra(p.Attrs)
	return l
}

// NavigationBarItem renders an mdui-navigation-bar-item.
func NavigationBarItem(p NavigationItemProps, children ...any) *Node {
	return Build("mdui-navigation-bar-item", children, p.attrs())
}

// NavigationRailItem renders an mdui-navigation-rail-item.
func NavigationRailItem(p NavigationItemProps, children ...any) *Node {
	return Build("mdui-navigation-rail-item", children, p.attrs())
}

// TopAppBarTitle renders an mdui-top-app-bar-title.
func TopAppBarTitle(title any) *Node {
	return Build("mdui-top-app-bar-title", []any{title}, nil)
}

// TopAppBarProps configures TopAppBar.
type TopAppBarProps struct {
	// Title, when set, renders as the first child inside an
	// mdui-top-app-bar-title.
	Title   any
	Variant string // "center-aligned", "small", "medium" or "large"
	Attrs   Attrs
}

// TopAppBar renders an mdui-top-app-bar. Assign leading and trailing
// children to the start and end slots yourself:
//
//	mdui.TopAppBar(mdui.TopAppBarProps{Title: "My App"},
//	    mdui.ButtonIcon(mdui.ButtonIconProps{Icon: "menu", Attrs: mdui.Attrs{"slot": "start"}}),
//	    mdui.Div(mdui.Attrs{"slot": "end"}, mdui.ThemeToggle(mdui.ThemeToggleProps{})),
//	)
func TopAppBar(p TopAppBarProps, children ...any) *Node {
	var attrs attrList
	attrs.str("variant", p.Variant)
	attrs.extra(p.Attrs)

	var kids []any
	if isSet(p.Title) {
		kids = append(kids, TopAppBarTitle(p.Title))
	}
	kids = append(kids, children...)
	return Build("mdui-top-app-bar", kids, attrs)
}
