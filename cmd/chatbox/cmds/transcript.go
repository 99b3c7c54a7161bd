package cmds

import (
	"context"

	"github.com/go-go-golems/chatbox/pkg/chatbox"
	"github.com/go-go-golems/chatbox/pkg/ui"
	"github.com/go-go-golems/glazed/pkg/cli"
	"github.com/go-go-golems/glazed/pkg/cmds"
	"github.com/go-go-golems/glazed/pkg/cmds/values"
	"github.com/go-go-golems/glazed/pkg/middlewares"
	"github.com/go-go-golems/glazed/pkg/settings"
	"github.com/go-go-golems/glazed/pkg/types"
	"github.com/pkg/errors"
)

type TranscriptSettings struct {
	ChatConfig string `glazed:"chat-config"`
}

// TranscriptCommand prints the seed conversation of a configuration as rows.
type TranscriptCommand struct {
	*cmds.CommandDescription
}

var _ cmds.GlazeCommand = &TranscriptCommand{}

func NewTranscriptCommand() (*TranscriptCommand, error) {
	glazedSection, err := settings.NewGlazedSection()
	if err != nil {
		return nil, err
	}
	commandSettingsSection, err := cli.NewCommandSettingsSection()
	if err != nil {
		return nil, err
	}

	return &TranscriptCommand{
		CommandDescription: cmds.NewCommandDescription(
			"transcript",
			cmds.WithShort("Print the configured conversation"),
			cmds.WithLong("Print the seed messages of a chat configuration, one row per message. Bodies are shown as the window renders them."),
			cmds.WithFlags(configFlag()),
			cmds.WithSections(glazedSection, commandSettingsSection),
		),
	}, nil
}

func (c *TranscriptCommand) RunIntoGlazeProcessor(
	ctx context.Context,
	parsedLayers *values.Values,
	gp middlewares.Processor,
) error {
	s := &TranscriptSettings{}
	if err := parsedLayers.DecodeSectionInto(values.DefaultSlug, s); err != nil {
		return errors.Wrap(err, "failed to initialize settings")
	}

	cfg, err := loadConfiguration(s.ChatConfig)
	if err != nil {
		return err
	}

	tr := chatbox.NewTranscript(cfg.LocalUser,
		chatbox.WithTimeLayout(cfg.TimeLayout),
		chatbox.WithSeed(cfg.Messages),
	)
	for _, row := range transcriptRows(tr) {
		if err := gp.AddRow(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

func transcriptRows(tr chatbox.Transcript) []types.Row {
	msgs := tr.Messages()
	rows := make([]types.Row, 0, len(msgs))
	for i, m := range msgs {
		rows = append(rows, types.NewRow(
			types.MRP("index", i),
			types.MRP("id", m.ID.String()),
			types.MRP("sender", ui.SanitizeLine(m.Sender)),
			types.MRP("self", m.Self),
			types.MRP("time", ui.SanitizeLine(m.Time)),
			types.MRP("body", ui.PlainBody(m.Body)),
		))
	}
	return rows
}
