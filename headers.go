package mdui

import "strings"

// Version is the MDUI release the CDN links point at.
const Version = "2.0.3"

// Asset URLs included by Headers.
const (
	CDNCSS                   = "https://unpkg.com/mdui@" + Version + "/mdui.css"
	CDNJS                    = "https://unpkg.com/mdui@" + Version + "/mdui.global.js"
	MaterialIconsCSS         = "https://fonts.googleapis.com/icon?family=Material+Icons"
	MaterialIconsOutlinedCSS = "https://fonts.googleapis.com/css2?family=Material+Symbols+Outlined:opsz,wght,FILL,GRAD@24,400,0,0"
	MaterialIconsRoundedCSS  = "https://fonts.googleapis.com/css2?family=Material+Symbols+Rounded:opsz,wght,FILL,GRAD@24,400,0,0"
	MaterialIconsSharpCSS    = "https://fonts.googleapis.com/css2?family=Material+Symbols+Sharp:opsz,wght,FILL,GRAD@24,400,0,0"
	OpenSansFontCSS          = "https://fonts.googleapis.com/css2?family=Open+Sans:wght@300;400;500;600;700&display=swap"
	TachyonsCSS              = "https://unpkg.com/tachyons@4.12.0/css/tachyons.min.css"
)

// Theme values for Config.Theme. They become the CSS color-scheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Icon font selections for Config.Icons. IconsAll includes every font; the
// others reuse the Icon variant names.
const IconsAll = "all"

// FontOpenSans is the only Config.Font value that adds a font link.
const FontOpenSans = "open-sans"

// Config selects the head assets produced by Headers.
type Config struct {
	Theme    string // light, dark or auto (default)
	Tachyons bool

	// PrimaryLightColor and PrimaryDarkColor are color channel lists
	// such as "103, 80, 164", written to the MDUI primary color custom
	// properties.
	PrimaryLightColor string
	PrimaryDarkColor  string

	Icons string // all (default), outlined, rounded, sharp or filled
	Font  string // open-sans adds the Open Sans stylesheet
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeAuto,
		Icons: IconsAll,
		Font:  FontOpenSans,
	}
}

// Headers returns the head nodes for a page using MDUI, in a fixed order:
// MDUI stylesheet and script, optional Tachyons and Open Sans stylesheets,
// the selected icon fonts, a style block, then the theme script.
//
//	mdui.Page(mdui.PageProps{Title: "Home", Config: &cfg}, body...)
//
// The result only depends on cfg.
func Headers(cfg Config) []*Node {
	nodes := []*Node{
		stylesheet(CDNCSS),
		Build("script", nil, []Attr{{Name: "src", Value: CDNJS}}),
	}
	if cfg.Tachyons {
		nodes = append(nodes, stylesheet(TachyonsCSS))
	}
	if cfg.Font == FontOpenSans {
		nodes = append(nodes, stylesheet(OpenSansFontCSS))
	}
	for _, href := range iconFonts(orDefault(cfg.Icons, IconsAll)) {
		nodes = append(nodes, stylesheet(href))
	}
	nodes = append(nodes, Build("style", []any{Raw(headStyle(cfg))}, nil))
	nodes = append(nodes, ThemeScript())
	return nodes
}

func stylesheet(href string) *Node {
	return Build("link", nil, []Attr{{Name: "rel", Value: "stylesheet"}, {Name: "href", Value: href}})
}

func iconFonts(icons string) []string {
	switch icons {
	case IconsAll:
		return []string{MaterialIconsCSS, MaterialIconsOutlinedCSS, MaterialIconsRoundedCSS, MaterialIconsSharpCSS}
	case IconOutlined:
		return []string{MaterialIconsOutlinedCSS}
	case IconRounded:
		return []string{MaterialIconsRoundedCSS}
	case IconSharp:
		return []string{MaterialIconsSharpCSS}
	case IconFilled:
		return []string{MaterialIconsCSS}
	default:
		return nil
	}
}

func headStyle(cfg Config) string {
	var sb strings.Builder
	sb.WriteString("\nhtml, body {\n  color-scheme: ")
	sb.WriteString(orDefault(cfg.Theme, ThemeAuto))
	sb.WriteString(";\n  font-family: 'Open Sans', 'Roboto', sans-serif;\n}\n")

	if cfg.PrimaryLightColor != "" || cfg.PrimaryDarkColor != "" {
		sb.WriteString(":root {\n")
		if cfg.PrimaryLightColor != "" {
			sb.WriteString("  --mdui-color-primary-light: " + cfg.PrimaryLightColor + ";\n")
		}
		if cfg.PrimaryDarkColor != "" {
			sb.WriteString("  --mdui-color-primary-dark: " + cfg.PrimaryDarkColor + ";\n")
		}
		sb.WriteString("}\n")
	}

	sb.WriteString(".mdui-theme-dark #" + ThemeIconLightID + " { display: none; }\n")
	sb.WriteString(".mdui-theme-dark #" + ThemeIconDarkID + " { display: inline-flex; }\n")
	return sb.String()
}
