package mdui

// Option is one choice of a Select or SegmentedButtonGroup. A missing
// Value falls back to Text and a missing Text to Value.
type Option struct {
	Text     string
	Value    string
	Icon     string
	Disabled bool
	Attrs    Attrs
}

func (o Option) value() string { return orDefault(o.Value, o.Text) }
func (o Option) text() string  { return orDefault(o.Text, o.Value) }

// Text field variants. Select shares them.
const (
	FieldFilled   = "filled"
	FieldOutlined = "outlined"
)

// TextFieldProps configures TextField.
type TextFieldProps struct {
	Label       string
	Value       string
	Type        string // default "text"
	Name        string
	Placeholder string
	Helper      string
	Variant     string
	Required    bool
	Disabled    bool
	Readonly    bool
	Clearable   bool
	Attrs       Attrs
}

// TextField renders an mdui-text-field.
func TextField(p TextFieldProps) *Node {
	var attrs attrList
	attrs.str("label", p.Label)
	attrs.str("value", p.Value)
	attrs.set("type", orDefault(p.Type, "text"))
	attrs.str("name", p.Name)
	attrs.str("placeholder", p.Placeholder)
	attrs.str("helper", p.Helper)
	attrs.str("variant", p.Variant)
	attrs.set("required", p.Required)
	attrs.set("disabled", p.Disabled)
	attrs.set("readonly", p.Readonly)
	attrs.set("clearable", p.Clearable)
	attrs.extra(p.Attrs)
	return Build("mdui-text-field", nil, attrs)
}

// SelectProps configures Select.
type SelectProps struct {
	Label    string
	Value    string
	Name     string
	Variant  string // "outlined" (default); any other value renders "filled"
	Multiple bool
	Required bool
	Disabled bool
	Options  []Option
	Attrs    Attrs
}

// Select renders an mdui-select with one mdui-menu-item per option.
//
//	mdui.Select(mdui.SelectProps{
//	    Label:   "Country",
//	    Options: []mdui.Option{{Text: "USA", Value: "us"}, {Text: "UK", Value: "uk"}},
//	})
func Select(p SelectProps, children ...any) *Node {
	var attrs attrList
	attrs.str("label", p.Label)
	attrs.str("value", p.Value)
	attrs.str("name", p.Name)
	attrs.set("multiple", p.Multiple)
	if p.Variant == "" || p.Variant == FieldOutlined {
		attrs.set("variant", FieldOutlined)
	} else {
		attrs.set("variant", FieldFilled)
	}
	attrs.set("required", p.Required)
	attrs.set("disabled", p.Disabled)
	attrs.extra(p.Attrs)

	kids := make([]any, 0, len(p.Options)+len(children))
	for _, opt := range p.Options {
		kids = append(kids, MenuItem(MenuItemProps{
			Text:     opt.text(),
			Value:    opt.value(),
			Icon:     opt.Icon,
			Disabled: opt.Disabled,
			Attrs:    opt.Attrs,
		}))
	}
	kids = append(kids, children...)
	return Build("mdui-select", kids, attrs)
}

// MenuItemProps configures MenuItem.
type MenuItemProps struct {
	Text     string
	Value    string
	Icon     string
	EndIcon  string
	Href     string
	Disabled bool
	Attrs    Attrs
}

// MenuItem renders an mdui-menu-item.
func MenuItem(p MenuItemProps, children ...any) *Node {
	var attrs attrList
	attrs.set("value", p.Value)
	attrs.str("icon", p.Icon)
	attrs.str("end-icon", p.EndIcon)
	attrs.str("href", p.Href)
	attrs.set("disabled", p.Disabled)
	attrs.extra(p.Attrs)

	kids := make([]any, 0, len(children)+1)
	kids = append(kids, p.Text)
	kids = append(kids, children...)
	return Build("mdui-menu-item", kids, attrs)
}

// SliderProps configures Slider. Max defaults to 100.
type SliderProps struct {
	Value     float64
	Min       float64
	Max       *float64
	Step      *float64
	Name      string
	Tickmarks bool
	Disabled  bool
	Attrs     Attrs
}

// Slider renders an mdui-slider. Value, min and max are always present.
func Slider(p SliderProps) *Node {
	var attrs attrList
	attrs.set("value", p.Value)
	attrs.set("min", p.Min)
	attrs.set("max", numOr(p.Max, 100))
	attrs.num("step", p.Step)
	attrs.str("name", p.Name)
	attrs.set("tickmarks", p.Tickmarks)
	attrs.set("disabled", p.Disabled)
	attrs.extra(p.Attrs)
	return Build("mdui-slider", nil, attrs)
}

// RangeSliderProps configures RangeSlider.
type RangeSliderProps struct {
	Min       float64
	Max       *float64 // default 100
	Step      *float64 // default 1
	Value     *float64 // default 50
	Tickmarks bool
	Disabled  bool
	Attrs     Attrs
}

// RangeSlider renders an mdui-range-slider.
func RangeSlider(p RangeSliderProps) *Node {
	var attrs attrList
	attrs.set("min", p.Min)
	attrs.set("max", numOr(p.Max, 100))
	attrs.set("tickmarks", p.Tickmarks)
	attrs.set("step", numOr(p.Step, 1))
	attrs.set("value", numOr(p.Value, 50))
	attrs.set("disabled", p.Disabled)
	attrs.extra(p.Attrs)
	return Build("mdui-range-slider", nil, attrs)
}

// CheckboxProps configures Checkbox.
type CheckboxProps struct {
	Label    string
	Name     string
	Value    string
	Checked  bool
	Disabled bool
	Attrs    Attrs
}

// Checkbox renders an mdui-checkbox. With a Label, the checkbox is wrapped
// in a label element followed by the label text.
func Checkbox(p CheckboxProps) *Node {
	var attrs attrList
	attrs.str("name", p.Name)
	attrs.str("value", p.Value)
	attrs.set("checked", p.Checked)
	attrs.set("disabled", p.Disabled)
	attrs.extra(p.Attrs)

	checkbox := Build("mdui-checkbox", nil, attrs)
	if p.Label == "" {
		return checkbox
	}
	return Build("label", []any{checkbox, " ", p.Label}, nil)
}

// RadioProps configures Radio.
type RadioProps struct {
	Name     string
	Value    string
	Label    string
	Checked  bool
	Disabled bool
	Attrs    Attrs
}

// Radio renders an mdui-radio.
func Radio(p RadioProps) *Node {
	var attrs attrList
	attrs.str("name", p.Name)
	attrs.str("value", p.Value)
	attrs.set("checked", p.Checked)
	attrs.set("disabled", p.Disabled)
	attrs.extra(p.Attrs)

	var kids []any
	if p.Label != "" {
		kids = append(kids, p.Label)
	}
	return Build("mdui-radio", kids, attrs)
}

// RadioGroupProps configures RadioGroup.
type RadioGroupProps struct {
	Name     string
	Value    string
	Required bool
	Disabled bool
	Attrs    Attrs
}

// RadioGroup renders an mdui-radio-group around radios.
func RadioGroup(p RadioGroupProps, radios ...any) *Node {
	var attrs attrList
	attrs.str("name", p.Name)
	attrs.str("value", p.Value)
	attrs.set("required", p.Required)
	attrs.set("disabled", p.Disabled)
	attrs.extra(p.Attrs)
	return Build("mdui-radio-group", radios, attrs)
}

// SwitchProps configures Switch.
type SwitchProps struct {
	Name     string
	Value    string
	Checked  bool
	Disabled bool
	Attrs    Attrs
}

// Switch renders an mdui-switch.
func Switch(p SwitchProps) *Node {
	var attrs attrList
	attrs.str("name", p.Name)
	attrs.str("value", p.Value)
	attrs.set("checked", p.Checked)
	attrs.set("disabled", p.Disabled)
	attrs.extra(p.Attrs)
	return Build("mdui-switch", nil, attrs)
}
