package cmds

import (
	"github.com/go-go-golems/chatbox/pkg/config"
	"github.com/go-go-golems/glazed/pkg/cmds/fields"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

func configFlag() *fields.Definition {
	return fields.New(
		"chat-config",
		fields.TypeString,
		fields.WithDefault(""),
		fields.WithHelp("Chat configuration YAML file (defaults to the built-in demo conversation)"),
	)
}

func loadConfiguration(path string) (config.Configuration, error) {
	if path == "" {
		log.Debug().Msg("No chat configuration given, using demo conversation")
		return config.LoadDemo()
	}
	return config.Load(path)
}

// applyOverrides layers command-line values over a loaded configuration.
// Empty values keep what the file says.
func applyOverrides(cfg config.Configuration, width, height, localUser string) (config.Configuration, error) {
	if width != "" {
		d, err := config.ParseDimension(width)
		if err != nil {
			return config.Configuration{}, errors.Wrap(err, "--width")
		}
		cfg.Width = d
	}
	if height != "" {
		d, err := config.ParseDimension(height)
		if err != nil {
			return config.Configuration{}, errors.Wrap(err, "--height")
		}
		cfg.Height = d
	}
	if localUser != "" {
		cfg.LocalUser = localUser
	}
	if err := cfg.Validate(); err != nil {
		return config.Configuration{}, err
	}
	return cfg, nil
}
