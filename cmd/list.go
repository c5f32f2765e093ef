package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/docarchive-cli/internal/render"
)

var (
	listCategories bool
	listAuthors    bool
	listDates      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents, categories, authors or the date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 0
		for _, b := range []bool{listCategories, listAuthors, listDates} {
			if b {
				n++
			}
		}
		if n > 1 {
			return fmt.Errorf("specify at most one of --categories, --authors or --dates")
		}
		a, err := openArchive()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		switch {
		case listCategories:
			render.Vocabulary(out, "Categories", a.GetCategories())
		case listAuthors:
			render.Vocabulary(out, "Authors", a.GetAuthors())
		case listDates:
			r, ok := a.GetDateRange()
			render.Dates(out, r, ok)
		default:
			render.Documents(out, a.GetAll())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listCategories, "categories", false, "list indexed categories")
	listCmd.Flags().BoolVar(&listAuthors, "authors", false, "list indexed authors")
	listCmd.Flags().BoolVar(&listDates, "dates", false, "show earliest and latest creation day")
}
