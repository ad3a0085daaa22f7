// Package mdui provides typed Go constructors for MDUI (Material Design UI)
// custom elements, for use in server-rendered HTML built with templ.
//
// Every constructor returns a *Node that maps 1:1 to an MDUI web component
// tag (mdui-button, mdui-card, ...). Nodes implement templ.Component, so
// they can be rendered directly or embedded in templ templates:
//
//	@mdui.Button(mdui.ButtonProps{Text: "Save", Icon: "save"})
//
// # Element Builder
//
// All nodes are produced by Build, which takes a tag, ordered children and
// an ordered attribute list. Attributes valued false or nil are dropped;
// true renders as a presence attribute:
//
//	mdui.Build("mdui-chip", []any{"Tag"}, []mdui.Attr{{Name: "selected", Value: true}})
//	// <mdui-chip selected>Tag</mdui-chip>
//
// Children may be *Node, string (escaped), Raw (unescaped) or any
// templ.Component. Slices of those are flattened and nil entries skipped.
//
// # Props
//
// Each constructor takes a Props struct. Zero values mean "unset" and fall
// back to the component's default (ButtonProps.Variant defaults to
// "filled", CardProps.Variant to "elevated", ...). Every Props struct has
// an Attrs field for attributes the constructor has no named field for:
//
//	mdui.Card(mdui.CardProps{
//	    Title:    "Profile",
//	    Subtitle: "Public details",
//	    Attrs:    mdui.Attrs{"id": "profile", "class": "pa3"},
//	})
//
// Named fields always win over the same key in Attrs. Extra keys render
// after named ones in sorted order so output is stable.
//
// Option names do not translate mechanically to attribute names. Each
// constructor spells out its wire names: ButtonProps.EndIcon renders as
// end-icon, ListItemProps.NonClickable as nonclickable.
//
// # Slots
//
// Some components accept pre-built children for a named slot. The child's
// slot attribute is set in place and nothing else about it changes:
//
//	mdui.Button(mdui.ButtonProps{
//	    Text:     "Download",
//	    IconSlot: mdui.Icon(mdui.IconProps{Name: "downloading"}),
//	})
//
// When both a slot child and the shorthand name are given (IconSlot and
// Icon), the slot child wins and the shorthand is ignored. Only values that
// implement Slottable are modified; strings are appended as they are.
//
// # Head assets
//
// Headers returns the stylesheet, script and style nodes a page needs for
// MDUI, the Material icon fonts and the theme toggle. Page assembles a full
// document around them.
//
// # HTMX
//
// HX, HXTarget, HXSwap and friends return Attrs for hx-* attributes. Lazy
// and Defer build placeholders that load their content after render.
// FragmentHandler serves node trees carried in signed tokens produced by
// EncodeFragment.
package mdui
