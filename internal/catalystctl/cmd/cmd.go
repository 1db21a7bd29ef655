// Package cmd assembles the catalystctl command tree.
package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/openearth/catalyst/internal/catalystctl/cmd/chat"
)

// NewCatalystCtlCommand creates the catalystctl root command.
func NewCatalystCtlCommand() *cobra.Command {
	cmds := &cobra.Command{
		Use:   "catalystctl",
		Short: "catalystctl talks to CityCatalyst data through an LLM",
		Long: heredoc.Doc(`
			catalystctl is the conversational client for the CityCatalyst Global
			API tool host. It connects to one or more MCP tool hosts, advertises
			their tools to an LLM, and lets the model look up emissions, city
			boundaries and datasource metadata while answering your questions.
		`),
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	cmds.AddCommand(chat.NewCmdChat())

	return cmds
}
