package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/docarchive-cli/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a document with its metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openArchive()
		if err != nil {
			return err
		}
		d, ok := a.Get(args[0])
		if !ok {
			return fmt.Errorf("document not found: %s", args[0])
		}
		render.Document(cmd.OutOrStdout(), d)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
