package mdui

import "fmt"

// Slot names used by the catalog.
const (
	SlotIcon        = "icon"
	SlotEndIcon     = "end-icon"
	SlotHeader      = "header"
	SlotSubheader   = "subheader"
	SlotHeadline    = "headline"
	SlotDescription = "description"
	SlotAction      = "action"
	SlotStart       = "start"
	SlotEnd         = "end"
)

// Ptr returns a pointer to v. Use it for numeric props whose default is
// not zero:
//
//	mdui.Slider(mdui.SliderProps{Max: mdui.Ptr(10.0)})
func Ptr[T any](v T) *T {
	return &v
}

// attrList collects a constructor's attributes in wire order.
type attrList []Attr

// set records name=v, replacing an earlier value in place. False and nil
// are not recorded, so an unset named field leaves the key free for Attrs.
func (l *attrList) set(name string, v any) {
	if isEmptyValue(v) {
		return
	}
	for i := range *l {
		if (*l)[i].Name == name {
			(*l)[i].Value = v
			return
		}
	}
	*l = append(*l, Attr{Name: name, Value: v})
}

// str records a string attribute only when it is not empty.
func (l *attrList) str(name, v string) {
	if v != "" {
		l.set(name, v)
	}
}

// num records a numeric attribute only when it is set.
func (l *attrList) num(name string, v *float64) {
	if v != nil {
		l.set(name, *v)
	}
}

func (l attrList) get(name string) (any, bool) {
	for _, a := range l {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// extra appends passthrough attributes that no named field set, in sorted
// key order.
func (l *attrList) extra(attrs Attrs) {
	if len(attrs) == 0 {
		return
	}
	for _, k := range sortedKeys(attrs) {
		if _, ok := l.get(k); ok {
			continue
		}
		l.set(k, attrs[k])
	}
}

// classOf returns the class attribute as text.
func (l attrList) classOf() string {
	v, ok := l.get("class")
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func numOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// isSet reports whether a slot or content value was supplied.
func isSet(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case *Node:
		return x != nil
	case string:
		return x != ""
	default:
		return true
	}
}

// slotted assigns child to slot. Only Slottable children are modified;
// strings and other content pass through unchanged.
func slotted(child any, slot string) any {
	if s, ok := child.(Slottable); ok && isSet(child) {
		s.SetAttribute("slot", slot)
	}
	return child
}

// wrapSlot wraps content in a div assigned to slot.
func wrapSlot(content any, slot string) *Node {
	return Build("div", []any{content}, []Attr{{Name: "slot", Value: slot}})
}
