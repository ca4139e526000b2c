package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <proposal-id>",
	Short: "render the proposal page as html to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database := provideDatabase()
		defer database.Close()

		proposalz := provideProposalService(provideProposalStore(database))
		return proposalz.RenderPage(cmd.Context(), os.Stdout, args[0])
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
