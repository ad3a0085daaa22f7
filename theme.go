package mdui

// Theme toggle element ids. The style block from Headers shows one icon or
// the other depending on the mdui-theme-dark class.
const (
	ThemeIconDarkID  = "theme-icon-dark"
	ThemeIconLightID = "theme-icon-light"
)

// ThemeToggleProps configures ThemeToggle.
type ThemeToggleProps struct {
	IconLight string // default "light_mode"
	IconDark  string // default "dark_mode"
	Variant   string // default "text"
	OnClick   string // default "toggleTheme()"
	Attrs     Attrs
}

// ThemeToggle renders an mdui-button-icon that calls the toggleTheme
// function installed by ThemeScript. It holds two icons, dark first, which
// the Headers style block switches between.
func ThemeToggle(p ThemeToggleProps) *Node {
	var attrs attrList
	attrs.set("onclick", orDefault(p.OnClick, "toggleTheme()"))
	attrs.set("variant", orDefault(p.Variant, ButtonText))
	attrs.extra(p.Attrs)

	dark := Icon(IconProps{
		Name:  orDefault(p.IconDark, "dark_mode"),
		Attrs: Attrs{"id": ThemeIconDarkID, "class": "dn"},
	})
	light := Icon(IconProps{
		Name:  orDefault(p.IconLight, "light_mode"),
		Attrs: Attrs{"id": ThemeIconLightID},
	})
	return Build("mdui-button-icon", []any{dark, light}, attrs)
}

// ThemeScript returns the inline script that restores the saved theme on
// load and defines toggleTheme.
func ThemeScript() *Node {
	return Build("script", []any{Raw(themeScript)}, nil)
}

const themeScript = `
function toggleTheme() {
  const html = document.documentElement;
  const current = html.getAttribute('class')?.includes('mdui-theme-dark') ? 'dark' : 'light';
  const next = current === 'light' ? 'dark' : 'light';
  if (next === 'dark') {
    html.classList.add('mdui-theme-dark');
  } else {
    html.classList.remove('mdui-theme-dark');
  }
  localStorage.setItem('theme', next);
}

function initTheme() {
  const html = document.documentElement;
  const savedTheme = localStorage.getItem('theme');
  const prefersDark = window.matchMedia('(prefers-color-scheme: dark)').matches;
  if (savedTheme === 'dark' || (!savedTheme && prefersDark)) {
    html.classList.add('mdui-theme-dark');
  }
}

initTheme();
`
