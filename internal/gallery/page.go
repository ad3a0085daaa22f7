// Package gallery serves a demo page that renders every mdui constructor.
package gallery

import (
	"net/http"

	"github.com/pthm/mdui"
)

// HTMXScript is the HTMX build the gallery page loads.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// Page builds the gallery document. lazy is the URL of a fragment loaded
// when its placeholder scrolls into view; empty skips the section.
func Page(cfg mdui.Config, lazy string) *mdui.Node {
	return mdui.Page(mdui.PageProps{
		Title:  "mdui gallery",
		Config: &cfg,
		Head: []any{
			mdui.Build("script", nil, []mdui.Attr{{Name: "src", Value: HTMXScript}}),
		},
	},
		header(),
		mdui.Build("main", []any{
			section("Buttons", buttons()),
			section("Cards", cards()),
			section("Forms", forms()),
			section("Feedback", feedback()),
			section("Lists", lists()),
			section("Navigation", navigation()),
			section("Display", display()),
			section("Tabs", tabs()),
			lazySection(lazy),
		}, []mdui.Attr{{Name: "class", Value: "pa3"}}),
		mdui.SnackbarContainer(),
	)
}

func section(title string, children ...any) *mdui.Node {
	return mdui.Build("section", []any{
		mdui.Build("h2", []any{title}, nil),
		children,
	}, []mdui.Attr{{Name: "id", Value: title}})
}

func header() *mdui.Node {
	return mdui.TopAppBar(mdui.TopAppBarProps{Title: "mdui gallery"},
		mdui.ButtonIcon(mdui.ButtonIconProps{Icon: "menu", Attrs: mdui.Attrs{"slot": mdui.SlotStart}}),
		mdui.Div(mdui.Attrs{"slot": mdui.SlotEnd},
			mdui.ButtonIcon(mdui.ButtonIconProps{Icon: "search"}),
			mdui.ThemeToggle(mdui.ThemeToggleProps{}),
		),
	)
}

func buttons() []any {
	return []any{
		mdui.Button(mdui.ButtonProps{Text: "Filled"}),
		mdui.Button(mdui.ButtonProps{Text: "Tonal", Variant: mdui.ButtonTonal}),
		mdui.Button(mdui.ButtonProps{Text: "Outlined", Variant: mdui.ButtonOutlined, Icon: "download"}),
		mdui.Button(mdui.ButtonProps{
			Text:        "Send",
			Variant:     mdui.ButtonElevated,
			IconSlot:    mdui.Icon(mdui.IconProps{Name: "send", Variant: mdui.IconRounded}),
			EndIconSlot: mdui.Icon(mdui.IconProps{Name: "arrow_forward"}),
		}),
		mdui.Button(mdui.ButtonProps{
			Text:    "Notify",
			Variant: mdui.ButtonText,
			Attrs: mdui.Merge(
				mdui.HX(http.MethodPost, "/notify"),
				mdui.HXVals(map[string]string{"level": mdui.FlashSuccess, "message": "Saved"}),
				mdui.HXSwap(mdui.SwapNone),
			),
		}),
		mdui.ButtonIcon(mdui.ButtonIconProps{Icon: "favorite", Variant: mdui.ButtonIconFilled, Selectable: true}),
		mdui.Fab(mdui.FabProps{Icon: "add"}),
		mdui.Fab(mdui.FabProps{Icon: "edit", Text: "Compose", Extended: true, Variant: mdui.FabSecondary}),
		mdui.SegmentedButtonGroup(mdui.SegmentedButtonGroupProps{
			Value:   "week",
			Selects: "single",
			Options: []mdui.Option{
				{Text: "Day", Value: "day"},
				{Text: "Week", Value: "week"},
				{Text: "Month", Value: "month", Icon: "calendar_month"},
			},
		}),
	}
}

func cards() []any {
	return []any{
		mdui.Card(mdui.CardProps{
			Title:    "Elevated",
			Subtitle: "Default variant",
			Content:  mdui.Build("p", []any{"Cards group related content."}, nil),
		}),
		mdui.Card(mdui.CardProps{Title: "Outlined", Variant: mdui.CardOutlined, Clickable: true}),
		mdui.Card(mdui.CardProps{Title: "Filled", Variant: mdui.CardFilled, Href: "#Cards"}),
	}
}

func forms() []any {
	return []any{
		mdui.TextField(mdui.TextFieldProps{Label: "Name", Name: "name", Clearable: true}),
		mdui.TextField(mdui.TextFieldProps{Label: "Email", Type: "email", Variant: mdui.FieldOutlined, Helper: "We never share it"}),
		mdui.Select(mdui.SelectProps{
			Label: "Country",
			Value: "uk",
			Options: []mdui.Option{
				{Text: "United States", Value: "us"},
				{Text: "United Kingdom", Value: "uk"},
				{Text: "France", Value: "fr"},
			},
		}),
		mdui.Slider(mdui.SliderProps{Value: 30}),
		mdui.RangeSlider(mdui.RangeSliderProps{Tickmarks: true, Step: mdui.Ptr(10.0)}),
		mdui.Checkbox(mdui.CheckboxProps{Label: "Subscribe", Checked: true}),
		mdui.RadioGroup(mdui.RadioGroupProps{Name: "size", Value: "m"},
			mdui.Radio(mdui.RadioProps{Value: "s", Label: "Small"}),
			mdui.Radio(mdui.RadioProps{Value: "m", Label: "Medium"}),
			mdui.Radio(mdui.RadioProps{Value: "l", Label: "Large"}),
		),
		mdui.Switch(mdui.SwitchProps{Name: "wifi", Checked: true}),
	}
}

func feedback() []any {
	return []any{
		mdui.Dialog(mdui.DialogProps{
			Headline:            "Discard draft?",
			Description:         "The draft will be lost.",
			CloseOnEsc:          true,
			CloseOnOverlayClick: true,
			Attrs:               mdui.Attrs{"id": "discard"},
		},
			mdui.Div(mdui.Attrs{"slot": mdui.SlotAction},
				mdui.Button(mdui.ButtonProps{Text: "Cancel", Variant: mdui.ButtonText}),
				mdui.Button(mdui.ButtonProps{Text: "Discard", Variant: mdui.ButtonText}),
			),
		),
		mdui.Button(mdui.ButtonProps{
			Text:    "Open dialog",
			Variant: mdui.ButtonOutlined,
			Attrs:   mdui.Attrs{"onclick": "document.getElementById('discard').open = true"},
		}),
		mdui.Snackbar(mdui.SnackbarProps{Message: "Photo archived", ActionText: "Undo", Attrs: mdui.Attrs{"id": "archived"}}),
		mdui.Tooltip(mdui.TooltipProps{Content: "Add to favorites"},
			mdui.ButtonIcon(mdui.ButtonIconProps{Icon: "star"}),
		),
		mdui.Progress(mdui.ProgressProps{}),
		mdui.Progress(mdui.ProgressProps{Value: mdui.Ptr(0.4)}),
		mdui.Progress(mdui.ProgressProps{Circular: true}),
		mdui.Badge(mdui.BadgeProps{Content: "12", Variant: "large"}),
	}
}

func lists() []any {
	return []any{
		mdui.List(nil,
			mdui.ListSubheader(nil, "Inbox"),
			mdui.ListItem(mdui.ListItemProps{Headline: "Ada", Description: "Lunch tomorrow?", Icon: "person", Active: true}),
			mdui.Divider(mdui.DividerProps{Inset: true}),
			mdui.ListItem(mdui.ListItemProps{
				Headline:        "Grace",
				Description:     "Compiler notes and a very long description that wraps",
				DescriptionLine: "2",
				EndIcon:         "chevron_right",
			}),
			mdui.ListItem(mdui.ListItemProps{Headline: "Read only", NonClickable: true}),
		),
	}
}

func navigation() []any {
	return []any{
		mdui.NavigationBar(mdui.Attrs{"value": "home", "style": "position: relative"},
			mdui.NavigationBarItem(mdui.NavigationItemProps{Icon: "home", Value: "home"}, "Home"),
			mdui.NavigationBarItem(mdui.NavigationItemProps{Icon: "search", Value: "search"}, "Search"),
		),
		mdui.NavigationRail(mdui.Attrs{"value": "mail", "style": "position: relative; height: 200px"},
			mdui.NavigationRailItem(mdui.NavigationItemProps{Icon: "mail", Value: "mail"}, "Mail"),
			mdui.NavigationRailItem(mdui.NavigationItemProps{Icon: "chat", ActiveIcon: "chat_bubble", Value: "chat"}, "Chat"),
		),
		mdui.NavigationDrawer(mdui.Attrs{"modal": true, "close-on-esc": true, "id": "drawer"},
			mdui.List(nil, mdui.ListItem(mdui.ListItemProps{Headline: "Settings", Icon: "settings"})),
		),
	}
}

func display() []any {
	return []any{
		mdui.Icon(mdui.IconProps{Name: "home"}),
		mdui.Icon(mdui.IconProps{Name: "home", Variant: mdui.IconRounded}),
		mdui.Icon(mdui.IconProps{Name: "home", Variant: mdui.IconSharp}),
		mdui.Icon(mdui.IconProps{Name: "home", Variant: mdui.IconFilled}),
		mdui.Avatar(mdui.AvatarProps{Icon: "person"}),
		mdui.Avatar(mdui.AvatarProps{Label: "AL"}),
		mdui.Chip(mdui.ChipProps{Text: "Filter", Variant: mdui.ChipFilter, Selectable: true}),
		mdui.Chip(mdui.ChipProps{Text: "Remove me", Variant: mdui.ChipInput, Deletable: true, Icon: "label"}),
	}
}

func tabs() []any {
	return []any{
		mdui.Tabs(mdui.TabsProps{Value: "one", FullWidth: true},
			mdui.Tab(mdui.TabProps{Label: "One", Value: "one"}),
			mdui.Tab(mdui.TabProps{Label: "Two", Value: "two", Icon: "star"}),
			mdui.TabPanel(mdui.TabPanelProps{Value: "one"}, "First panel"),
			mdui.TabPanel(mdui.TabPanelProps{Value: "two"}, "Second panel"),
		),
	}
}

func lazySection(url string) any {
	if url == "" {
		return nil
	}
	return section("Lazy", mdui.Lazy(url, mdui.Progress(mdui.ProgressProps{Circular: true})))
}

// LazyCard is the tree the gallery ships inside its fragment token.
func LazyCard() *mdui.Node {
	return mdui.Card(mdui.CardProps{
		Title:    "Loaded later",
		Subtitle: "Decoded from a signed token",
		Variant:  mdui.CardOutlined,
	})
}
