package mdui

// TabsProps configures Tabs.
type TabsProps struct {
	Value     string
	Variant   string // "primary" or "secondary"
	Placement string
	FullWidth bool
	Attrs     Attrs
}

// Tabs renders an mdui-tabs container. Put Tab children first and TabPanel
// children after them.
func Tabs(p TabsProps, children ...any) *Node {
	var attrs attrList
	attrs.str("value", p.Value)
	attrs.str("variant", p.Variant)
	attrs.str("placement", p.Placement)
	attrs.set("full-width", p.FullWidth)
	attrs.extra(p.Attrs)
	return Build("mdui-tabs", children, attrs)
}

// TabProps configures Tab.
type TabProps struct {
	Label  string
	Value  string
	Icon   string
	Inline bool
	Attrs  Attrs
}

// Tab renders an mdui-tab with Label as its content.
func Tab(p TabProps) *Node {
	var attrs attrList
	attrs.set("value", p.Value)
	attrs.str("icon", p.Icon)
	attrs.set("inline", p.Inline)
	attrs.extra(p.Attrs)
	return Build("mdui-tab", []any{p.Label}, attrs)
}

// TabPanelProps configures TabPanel.
type TabPanelProps struct {
	Value string
	Attrs Attrs
}

// TabPanel renders an mdui-tab-panel around content.
func TabPanel(p TabPanelProps, content ...any) *Node {
	var attrs attrList
	attrs.set("value", p.Value)
	attrs.extra(p.Attrs)
	return Build("mdui-tab-panel", content, attrs)
}
