package mdui

// PageProps configures Page.
type PageProps struct {
	Title string
	Lang  string // default "en"

	// Config selects the head assets. Nil uses DefaultConfig.
	Config *Config

	// Head holds extra head children placed after the MDUI assets.
	Head []any

	Attrs Attrs // attributes for the body element
}

// Page assembles a full HTML document: charset and viewport meta, title,
// the Headers for Config, any extra head children, then body.
func Page(p PageProps, body ...any) *Node {
	cfg := DefaultConfig()
	if p.Config != nil {
		cfg = *p.Config
	}

	head := []any{
		Build("meta", nil, []Attr{{Name: "charset", Value: "utf-8"}}),
		Build("meta", nil, []Attr{
			{Name: "name", Value: "viewport"},
			{Name: "content", Value: "width=device-width, initial-scale=1"},
		}),
	}
	if p.Title != "" {
		head = append(head, Build("title", []any{p.Title}, nil))
	}
	head = append(head, Headers(cfg))
	head = append(head, p.Head...)

	var bodyAttrs attrList
	bodyAttrs.extra(p.Attrs)

	return Build("html", []any{
		Build("head", head, nil),
		Build("body", body, bodyAttrs),
	}, []Attr{{Name: "lang", Value: orDefault(p.Lang, "en")}})
}
