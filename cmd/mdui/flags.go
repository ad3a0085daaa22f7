package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pthm/mdui/internal/config"
)

// assetFlags are the head asset options shared by headers and gallery.
// Flags the user sets override values from --config.
type assetFlags struct {
	configPath   string
	theme        string
	icons        string
	font         string
	tachyons     bool
	primaryLight string
	primaryDark  string
}

func (f *assetFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fs.StringVar(&f.theme, "theme", "", "color scheme: light, dark or auto")
	fs.StringVar(&f.icons, "icons", "", "icon fonts: all, outlined, rounded, sharp or filled")
	fs.StringVar(&f.font, "font", "", "page font; open-sans adds its stylesheet")
	fs.BoolVar(&f.tachyons, "tachyons", false, "include the Tachyons stylesheet")
	fs.StringVar(&f.primaryLight, "primary-light", "", `light primary color channels, e.g. "103, 80, 164"`)
	fs.StringVar(&f.primaryDark, "primary-dark", "", `dark primary color channels, e.g. "208, 188, 255"`)
}

// resolve loads the config file, if any, applies changed flags on top and
// validates the result.
func (f *assetFlags) resolve(cmd *cobra.Command) (*config.File, error) {
	file := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		file = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("theme") {
		file.Theme = f.theme
	}
	if fs.Changed("icons") {
		file.Icons = f.icons
	}
	if fs.Changed("font") {
		file.Font = f.font
	}
	if fs.Changed("tachyons") {
		file.Tachyons = f.tachyons
	}
	if fs.Changed("primary-light") {
		file.PrimaryLightColor = f.primaryLight
	}
	if fs.Changed("primary-dark") {
		file.PrimaryDarkColor = f.primaryDark
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file, nil
}
