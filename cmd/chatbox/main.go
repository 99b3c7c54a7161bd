package main

import (
	clay "github.com/go-go-golems/clay/pkg"
	"github.com/go-go-golems/glazed/pkg/cli"
	"github.com/go-go-golems/glazed/pkg/cmds/logging"
	"github.com/go-go-golems/glazed/pkg/help"
	help_cmd "github.com/go-go-golems/glazed/pkg/help/cmd"
	"github.com/spf13/cobra"

	chatbox_cmds "github.com/go-go-golems/chatbox/cmd/chatbox/cmds"
)

var rootCmd = &cobra.Command{
	Use:   "chatbox",
	Short: "A resizable terminal chat window with an emoji picker",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitLoggerFromCobra(cmd)
	},
}

func main() {
	if err := clay.InitGlazed("chatbox", rootCmd); err != nil {
		cobra.CheckErr(err)
	}

	helpSystem := help.NewHelpSystem()
	help_cmd.SetupCobraRootCommand(helpSystem, rootCmd)

	runCmd, err := chatbox_cmds.NewRunCommand()
	cobra.CheckErr(err)
	cobraRunCmd, err := cli.BuildCobraCommand(runCmd)
	cobra.CheckErr(err)
	rootCmd.AddCommand(cobraRunCmd)

	transcriptCmd, err := chatbox_cmds.NewTranscriptCommand()
	cobra.CheckErr(err)
	cobraTranscriptCmd, err := cli.BuildCobraCommand(transcriptCmd)
	cobra.CheckErr(err)
	rootCmd.AddCommand(cobraTranscriptCmd)

	cobra.CheckErr(rootCmd.Execute())
}
