// Package config loads the YAML file that selects the head assets for the
// mdui CLI and gallery server.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pthm/mdui"
)

// File is the on-disk configuration.
//
//	theme: dark
//	tachyons: true
//	primary_light_color: "103, 80, 164"
//	icons: outlined
//	font: open-sans
type File struct {
	Theme             string `yaml:"theme" validate:"omitempty,oneof=light dark auto"`
	Tachyons          bool   `yaml:"tachyons"`
	PrimaryLightColor string `yaml:"primary_light_color" validate:"omitempty,channels"`
	PrimaryDarkColor  string `yaml:"primary_dark_color" validate:"omitempty,channels"`
	Icons             string `yaml:"icons" validate:"omitempty,oneof=all outlined rounded sharp filled"`
	Font              string `yaml:"font" validate:"omitempty,max=64,excludesall=<>\"'"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Path   string
	Fields []string
}

func (e *ValidationError) Error() string {
	where := "config"
	if e.Path != "" {
		where = e.Path
	}
	return fmt.Sprintf("%s: invalid %s", where, strings.Join(e.Fields, ", "))
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			return name
		})
		_ = v.RegisterValidation("channels", func(fl validator.FieldLevel) bool {
			return isChannelList(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// isChannelList reports whether s is three comma separated 0-255 values,
// the form MDUI expects for its color custom properties.
func isChannelList(s string) bool {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// Default returns the file equivalent of mdui.DefaultConfig.
func Default() *File {
	d := mdui.DefaultConfig()
	return &File{Theme: d.Theme, Icons: d.Icons, Font: d.Font}
}

// Load reads and validates the file at path. Fields the file leaves out
// keep their default values.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data)
	var verr *ValidationError
	if errors.As(err, &verr) {
		verr.Path = path
	}
	return f, err
}

// Parse decodes and validates YAML configuration.
func Parse(data []byte) (*File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks every field and reports all failures at once.
func (f *File) Validate() error {
	err := validatorInstance().Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

// MDUI converts the file into the library configuration.
func (f *File) MDUI() mdui.Config {
	return mdui.Config{
		Theme:             f.Theme,
		Tachyons:          f.Tachyons,
		PrimaryLightColor: f.PrimaryLightColor,
		PrimaryDarkColor:  f.PrimaryDarkColor,
		Icons:             f.Icons,
		Font:              f.Font,
	}
}
