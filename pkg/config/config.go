// Package config loads the chat window configuration from YAML.
package config

import (
	_ "embed"
	"os"
	"strings"

	"github.com/go-go-golems/chatbox/pkg/chatbox"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

// Configuration is everything a host hands to a chat window.
type Configuration struct {
	Title     string `yaml:"title" validate:"required"`
	Subtitle  string `yaml:"subtitle" validate:"required"`
	AvatarSrc string `yaml:"avatar_src" validate:"required"`
	LocalUser string `yaml:"local_user" validate:"required"`

	Width     Dimension `yaml:"width"`
	Height    Dimension `yaml:"height"`
	MinWidth  int       `yaml:"min_width"`
	MinHeight int       `yaml:"min_height"`
	MaxWidth  int       `yaml:"max_width"`
	MaxHeight int       `yaml:"max_height"`

	TimeLayout      string           `yaml:"time_layout" validate:"required"`
	AutoClosePicker bool             `yaml:"auto_close_picker"`
	Messages        []chatbox.Record `yaml:"messages" validate:"dive"`
}

// Default returns a configuration with every optional field filled in. The
// header fields and the local user have no default and must be supplied.
func Default() Configuration {
	return Configuration{
		Width:      Full,
		Height:     Full,
		MinWidth:   30,
		MinHeight:  10,
		MaxWidth:   5000,
		MaxHeight:  1000,
		TimeLayout: chatbox.DefaultTimeLayout,
	}
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Configuration, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, errors.Wrap(err, "failed to parse chat configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, errors.Wrapf(err, "failed to read chat configuration %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Configuration{}, errors.Wrapf(err, "invalid chat configuration %s", path)
	}
	return cfg, nil
}

// LoadDemo returns the built-in sample conversation.
func LoadDemo() (Configuration, error) {
	return Parse(demoYAML)
}

// Validate checks required fields and the frame bounds.
func (c Configuration) Validate() error {
	var msgs []string

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errors.Wrap(err, "failed to validate chat configuration")
		}
		for _, fe := range verrs {
			msgs = append(msgs, describe(fe))
		}
	}
	if err := c.Bounds().Validate(); err != nil {
		msgs = append(msgs, err.Error())
	}

	if len(msgs) == 0 {
		return nil
	}
	return errors.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Configuration.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	default:
		return field + " failed " + fe.Tag()
	}
}

// Bounds returns the frame limits.
func (c Configuration) Bounds() chatbox.Bounds {
	return chatbox.Bounds{
		MinWidth:  c.MinWidth,
		MinHeight: c.MinHeight,
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
	}
}
