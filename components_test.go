package mdui

import (
	"reflect"
	"testing"
)

func TestConstructorTags(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		tag  string
	}{
		{"Button", Button(ButtonProps{}), "mdui-button"},
		{"ButtonIcon", ButtonIcon(ButtonIconProps{}), "mdui-button-icon"},
		{"Fab", Fab(FabProps{}), "mdui-fab"},
		{"SegmentedButton", SegmentedButton(SegmentedButtonProps{}), "mdui-segmented-button"},
		{"SegmentedButtonGroup", SegmentedButtonGroup(SegmentedButtonGroupProps{}), "mdui-segmented-button-group"},
		{"Div", Div(nil), "div"},
		{"Card", Card(CardProps{}), "mdui-card"},
		{"TextField", TextField(TextFieldProps{}), "mdui-text-field"},
		{"Select", Select(SelectProps{}), "mdui-select"},
		{"MenuItem", MenuItem(MenuItemProps{}), "mdui-menu-item"},
		{"Slider", Slider(SliderProps{}), "mdui-slider"},
		{"RangeSlider", RangeSlider(RangeSliderProps{}), "mdui-range-slider"},
		{"Checkbox", Checkbox(CheckboxProps{}), "mdui-checkbox"},
		{"Radio", Radio(RadioProps{}), "mdui-radio"},
		{"RadioGroup", RadioGroup(RadioGroupProps{}), "mdui-radio-group"},
		{"Switch", Switch(SwitchProps{}), "mdui-switch"},
		{"Dialog", Dialog(DialogProps{}), "mdui-dialog"},
		{"Snackbar", Snackbar(SnackbarProps{}), "mdui-snackbar"},
		{"Tooltip", Tooltip(TooltipProps{}), "mdui-tooltip"},
		{"Progress", Progress(ProgressProps{}), "mdui-linear-progress"},
		{"Progress circular", Progress(ProgressProps{Circular: true}), "mdui-circular-progress"},
		{"Badge", Badge(BadgeProps{}), "mdui-badge"},
		{"NavigationBar", NavigationBar(nil), "mdui-navigation-bar"},
		{"NavigationBarItem", NavigationBarItem(NavigationItemProps{}), "mdui-navigation-bar-item"},
		{"NavigationDrawer", NavigationDrawer(nil), "mdui-navigation-drawer"},
		{"NavigationRail", NavigationRail(nil), "mdui-navigation-rail"},
		{"NavigationRailItem", NavigationRailItem(NavigationItemProps{}), "mdui-navigation-rail-item"},
		{"TopAppBar", TopAppBar(TopAppBarProps{}), "mdui-top-app-bar"},
		{"TopAppBarTitle", TopAppBarTitle("x"), "mdui-top-app-bar-title"},
		{"List", List(nil), "mdui-list"},
		{"ListSubheader", ListSubheader(nil), "mdui-list-subheader"},
		{"ListItem", ListItem(ListItemProps{}), "mdui-list-item"},
		{"Divider", Divider(DividerProps{}), "mdui-divider"},
		{"Icon", Icon(IconProps{}), "mdui-icon"},
		{"Avatar", Avatar(AvatarProps{}), "mdui-avatar"},
		{"Chip", Chip(ChipProps{}), "mdui-chip"},
		{"Tabs", Tabs(TabsProps{}), "mdui-tabs"},
		{"Tab", Tab(TabProps{}), "mdui-tab"},
		{"TabPanel", TabPanel(TabPanelProps{}), "mdui-tab-panel"},
		{"ThemeToggle", ThemeToggle(ThemeToggleProps{}), "mdui-button-icon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Tag(); got != tt.tag {
				t.Errorf("Tag() = %q, want %q", got, tt.tag)
			}
		})
	}
}

func TestConstructorOutput(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "button defaults to filled",
			node: Button(ButtonProps{Text: "Go"}),
			want: `<mdui-button variant="filled">Go</mdui-button>`,
		},
		{
			name: "button icon shorthand",
			node: Button(ButtonProps{Text: "Next", Icon: "arrow_back", EndIcon: "arrow_forward"}),
			want: `<mdui-button variant="filled" icon="arrow_back" end-icon="arrow_forward">Next</mdui-button>`,
		},
		{
			name: "explicit field wins and extras are sorted",
			node: Button(ButtonProps{
				Variant: ButtonTonal,
				Attrs:   Attrs{"variant": "text", "data-x": "1", "aria-label": "go"},
			}),
			want: `<mdui-button variant="tonal" aria-label="go" data-x="1"></mdui-button>`,
		},
		{
			name: "unset boolean leaves key to attrs",
			node: Button(ButtonProps{Attrs: Attrs{"disabled": true}}),
			want: `<mdui-button variant="filled" disabled></mdui-button>`,
		},
		{
			name: "fab extended",
			node: Fab(FabProps{Icon: "add", Text: "Create", Extended: true}),
			want: `<mdui-fab icon="add" variant="primary" extended>Create</mdui-fab>`,
		},
		{
			name: "segmented group options",
			node: SegmentedButtonGroup(SegmentedButtonGroupProps{
				FullWidth: true,
				Options:   []Option{{Text: "Day", Value: "d"}},
			}),
			want: `<mdui-segmented-button-group full-width><mdui-segmented-button value="d">Day</mdui-segmented-button></mdui-segmented-button-group>`,
		},
		{
			name: "card child order",
			node: Card(CardProps{Title: "T", Subtitle: "S", Content: "body"}, "extra"),
			want: `<mdui-card variant="elevated"><div slot="header">T</div><div slot="subheader">S</div>bodyextra</mdui-card>`,
		},
		{
			name: "text field type default",
			node: TextField(TextFieldProps{Label: "Name", Required: true}),
			want: `<mdui-text-field label="Name" type="text" required></mdui-text-field>`,
		},
		{
			name: "select options",
			node: Select(SelectProps{
				Label:   "Country",
				Options: []Option{{Text: "USA", Value: "us"}, {Text: "UK"}},
			}),
			want: `<mdui-select label="Country" variant="outlined"><mdui-menu-item value="us">USA</mdui-menu-item><mdui-menu-item value="UK">UK</mdui-menu-item></mdui-select>`,
		},
		{
			name: "select non-outlined variant renders filled",
			node: Select(SelectProps{Variant: "bogus"}),
			want: `<mdui-select variant="filled"></mdui-select>`,
		},
		{
			name: "slider defaults",
			node: Slider(SliderProps{}),
			want: `<mdui-slider value="0" min="0" max="100"></mdui-slider>`,
		},
		{
			name: "slider max override",
			node: Slider(SliderProps{Value: 3, Max: Ptr(10.0), Step: Ptr(0.5)}),
			want: `<mdui-slider value="3" min="0" max="10" step="0.5"></mdui-slider>`,
		},
		{
			name: "range slider defaults",
			node: RangeSlider(RangeSliderProps{}),
			want: `<mdui-range-slider min="0" max="100" step="1" value="50"></mdui-range-slider>`,
		},
		{
			name: "range slider tickmarks",
			node: RangeSlider(RangeSliderProps{Tickmarks: true}),
			want: `<mdui-range-slider min="0" max="100" tickmarks step="1" value="50"></mdui-range-slider>`,
		},
		{
			name: "checkbox with label",
			node: Checkbox(CheckboxProps{Label: "Accept", Checked: true}),
			want: `<label><mdui-checkbox checked></mdui-checkbox> Accept</label>`,
		},
		{
			name: "dialog slots",
			node: Dialog(DialogProps{Headline: "H", Description: "D", Open: true, CloseOnEsc: true}),
			want: `<mdui-dialog open close-on-esc><div slot="headline">H</div><div slot="description">D</div></mdui-dialog>`,
		},
		{
			name: "snackbar action",
			node: Snackbar(SnackbarProps{Message: "Saved", ActionText: "Undo"}),
			want: `<mdui-snackbar>Saved<mdui-button slot="action">Undo</mdui-button></mdui-snackbar>`,
		},
		{
			name: "tooltip content first",
			node: Tooltip(TooltipProps{Content: "Help"}, Button(ButtonProps{Text: "?"})),
			want: `<mdui-tooltip>Help<mdui-button variant="filled">?</mdui-button></mdui-tooltip>`,
		},
		{
			name: "progress value",
			node: Progress(ProgressProps{Value: Ptr(0.5), Circular: true}),
			want: `<mdui-circular-progress value="0.5"></mdui-circular-progress>`,
		},
		{
			name: "top app bar title",
			node: TopAppBar(TopAppBarProps{Title: "App"}),
			want: `<mdui-top-app-bar><mdui-top-app-bar-title>App</mdui-top-app-bar-title></mdui-top-app-bar>`,
		},
		{
			name: "list item wire names",
			node: ListItem(ListItemProps{Headline: "H", EndIcon: "chevron_right", HeadlineLine: "1", NonClickable: true}),
			want: `<mdui-list-item end-icon="chevron_right" headline="H" headline-line="1" nonclickable></mdui-list-item>`,
		},
		{
			name: "tab",
			node: Tab(TabProps{Label: "One", Value: "1"}),
			want: `<mdui-tab value="1">One</mdui-tab>`,
		},
		{
			name: "icon variant class",
			node: Icon(IconProps{Name: "home", Variant: IconFilled}),
			want: `<mdui-icon name="home" class="material-icons"></mdui-icon>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.node); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestButtonIconSlot(t *testing.T) {
	icon := Icon(IconProps{Name: "send"})
	end := Icon(IconProps{Name: "chevron_right"})
	b := Button(ButtonProps{Text: "Send", Icon: "ignored", IconSlot: icon, EndIconSlot: end})

	if v, _ := icon.GetAttribute("slot"); v != SlotIcon {
		t.Errorf("icon slot = %v, want %q", v, SlotIcon)
	}
	if v, _ := end.GetAttribute("slot"); v != SlotEndIcon {
		t.Errorf("end icon slot = %v, want %q", v, SlotEndIcon)
	}
	if _, ok := b.GetAttribute("icon"); ok {
		t.Error("slot child should win over the icon attribute")
	}

	kids := b.Children()
	if len(kids) != 3 || kids[0] != icon || kids[1] != "Send" || kids[2] != end {
		t.Errorf("children = %v", kids)
	}
}

func TestButtonStringSlotUnchanged(t *testing.T) {
	b := Button(ButtonProps{IconSlot: "*"})
	kids := b.Children()
	if len(kids) != 1 || kids[0] != "*" {
		t.Errorf("children = %v", kids)
	}
	if _, ok := b.GetAttribute("icon"); ok {
		t.Error("icon attribute should not be set")
	}
}

func TestIconClass(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		class   any
		want    string
	}{
		{"default outlined", "", nil, "material-symbols-outlined"},
		{"appended to user class", IconRounded, "big", "big material-symbols-rounded"},
		{"marker already present", IconSharp, "material-symbols-rounded", "material-symbols-rounded"},
		{"filled", IconFilled, "x", "x material-icons"},
		{"filled marker present", IconFilled, "material-icons", "material-icons"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attrs Attrs
			if tt.class != nil {
				attrs = Attrs{"class": tt.class}
			}
			n := Icon(IconProps{Name: "home", Variant: tt.variant, Attrs: attrs})
			if v, _ := n.GetAttribute("class"); v != tt.want {
				t.Errorf("class = %v, want %q", v, tt.want)
			}
		})
	}
}

func TestIconStable(t *testing.T) {
	first := Icon(IconProps{Name: "home"})
	class, _ := first.GetAttribute("class")
	second := Icon(IconProps{Name: "home", Attrs: Attrs{"class": class}})
	if got, _ := second.GetAttribute("class"); got != class {
		t.Errorf("re-wrapped class = %v, want %v", got, class)
	}
}

func TestConstructorsAreDeterministic(t *testing.T) {
	builders := map[string]func() *Node{
		"button": func() *Node {
			return Button(ButtonProps{Text: "x", Attrs: Attrs{"b": 1, "a": 2, "c": true}})
		},
		"select": func() *Node {
			return Select(SelectProps{Options: []Option{{Text: "a"}, {Text: "b"}}, Attrs: Attrs{"z": "1", "y": "2"}})
		},
		"card": func() *Node {
			return Card(CardProps{Title: "t", Content: []any{"a", "b"}})
		},
		"theme toggle": func() *Node {
			return ThemeToggle(ThemeToggleProps{})
		},
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			if a, b := build(), build(); !reflect.DeepEqual(a, b) {
				t.Errorf("two builds differ:\n%s\n%s", render(t, a), render(t, b))
			}
		})

		t.Run(name+" builds share nothing", func(t *testing.T) {
			a, b := build(), build()
			want := render(t, b)

			a.SetAttribute("data-changed", "1")
			for _, c := range a.Children() {
				if child, ok := c.(*Node); ok {
					child.SetAttribute("data-changed", "1")
				}
			}

			if got := render(t, b); got != want {
				t.Errorf("second build changed:\n got %s\nwant %s", got, want)
			}
			if got := render(t, build()); got != want {
				t.Errorf("later build changed:\n got %s\nwant %s", got, want)
			}
		})
	}
}

func TestThemeToggle(t *testing.T) {
	res, err := TestRender(ThemeToggle(ThemeToggleProps{}))
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := res.Attr("mdui-button-icon", "onclick"); v != "toggleTheme()" {
		t.Errorf("onclick = %q", v)
	}
	if v, _ := res.Attr("mdui-button-icon", "variant"); v != ButtonText {
		t.Errorf("variant = %q", v)
	}

	icons := res.Find("mdui-icon")
	if len(icons) != 2 {
		t.Fatalf("got %d icons, want 2", len(icons))
	}
	if id, _ := NodeAttr(icons[0], "id"); id != ThemeIconDarkID {
		t.Errorf("first icon id = %q, want %q", id, ThemeIconDarkID)
	}
	if name, _ := NodeAttr(icons[0], "name"); name != "dark_mode" {
		t.Errorf("first icon name = %q", name)
	}
	if id, _ := NodeAttr(icons[1], "id"); id != ThemeIconLightID {
		t.Errorf("second icon id = %q, want %q", id, ThemeIconLightID)
	}
}

func TestNavigationItems(t *testing.T) {
	bar := NavigationBar(Attrs{"value": "home"},
		NavigationBarItem(NavigationItemProps{Icon: "home", Value: "home"}, "Home"),
		NavigationBarItem(NavigationItemProps{Icon: "search", ActiveIcon: "search", Value: "search"}, "Search"),
	)

	res, err := TestRender(bar)
	if err != nil {
		t.Fatal(err)
	}
	if n := res.Count("mdui-navigation-bar-item"); n != 2 {
		t.Errorf("got %d items, want 2", n)
	}
	if v, _ := res.Attr("mdui-navigation-bar", "value"); v != "home" {
		t.Errorf("value = %q", v)
	}
}
