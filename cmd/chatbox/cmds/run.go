package cmds

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-go-golems/chatbox/pkg/ui"
	"github.com/go-go-golems/glazed/pkg/cmds"
	"github.com/go-go-golems/glazed/pkg/cmds/fields"
	"github.com/go-go-golems/glazed/pkg/cmds/values"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

type RunSettings struct {
	ChatConfig      string `glazed:"chat-config"`
	Width           string `glazed:"width"`
	Height          string `glazed:"height"`
	LocalUser       string `glazed:"local-user"`
	AutoClosePicker bool   `glazed:"auto-close-picker"`
}

type RunCommand struct {
	*cmds.CommandDescription
}

var _ cmds.BareCommand = &RunCommand{}

func NewRunCommand() (*RunCommand, error) {
	return &RunCommand{
		CommandDescription: cmds.NewCommandDescription(
			"run",
			cmds.WithShort("Open the chat window"),
			cmds.WithLong("Open the chat window in the alternate screen. Drag the border to resize, ctrl+e opens the emoji picker."),
			cmds.WithFlags(
				configFlag(),
				fields.New(
					"width",
					fields.TypeString,
					fields.WithDefault(""),
					fields.WithHelp("Initial width in cells or percent of the terminal, e.g. 60 or 80%"),
				),
				fields.New(
					"height",
					fields.TypeString,
					fields.WithDefault(""),
					fields.WithHelp("Initial height in cells or percent of the terminal"),
				),
				fields.New(
					"local-user",
					fields.TypeString,
					fields.WithDefault(""),
					fields.WithHelp("Sender name used for messages typed in this window"),
				),
				fields.New(
					"auto-close-picker",
					fields.TypeBool,
					fields.WithDefault(false),
					fields.WithHelp("Close the emoji picker after each selection"),
				),
			),
		),
	}, nil
}

func (c *RunCommand) Run(ctx context.Context, parsedLayers *values.Values) error {
	s := &RunSettings{}
	if err := parsedLayers.DecodeSectionInto(values.DefaultSlug, s); err != nil {
		return errors.Wrap(err, "failed to initialize settings")
	}

	cfg, err := loadConfiguration(s.ChatConfig)
	if err != nil {
		return err
	}
	cfg, err = applyOverrides(cfg, s.Width, s.Height, s.LocalUser)
	if err != nil {
		return err
	}
	if s.AutoClosePicker {
		cfg.AutoClosePicker = true
	}

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("chatbox run needs an interactive terminal on stdout")
	}

	var opts []ui.Option
	if w, h, err := term.GetSize(int(fd)); err == nil {
		opts = append(opts, ui.WithTerminalSize(w, h))
	} else {
		log.Debug().Err(err).Msg("Could not read terminal size, waiting for first resize event")
	}

	log.Debug().
		Str("title", cfg.Title).
		Str("localUser", cfg.LocalUser).
		Int("messages", len(cfg.Messages)).
		Msg("Starting chat window")

	p := tea.NewProgram(
		ui.NewModel(cfg, opts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return errors.Wrap(err, "chat window failed")
	}
	return nil
}
