package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/docarchive-cli/internal/render"
	"github.com/KaramelBytes/docarchive-cli/internal/retrieval"
)

var (
	searchCategory string
	searchAuthor   string
	searchFrom     string
	searchTo       string
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Find documents containing every query word",
	Long: `Search matches documents whose title, content, tags or keywords contain all query words.
Words shorter than three characters only match tags and keywords. Results can be narrowed
by category, author and an inclusive creation-day range (YYYY-MM-DD, UTC).`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := retrieval.Filters{
			Category: strings.TrimSpace(searchCategory),
			Author:   strings.TrimSpace(searchAuthor),
		}
		if searchFrom != "" || searchTo != "" {
			if searchFrom == "" || searchTo == "" {
				return fmt.Errorf("--from and --to must be given together")
			}
			r, err := retrieval.ParseDateRange(searchFrom, searchTo)
			if err != nil {
				return err
			}
			f.DateRange = &r
		}
		a, err := openArchive()
		if err != nil {
			return err
		}
		render.Documents(cmd.OutOrStdout(), a.Search(strings.Join(args, " "), f))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "only documents in this category")
	searchCmd.Flags().StringVarP(&searchAuthor, "author", "a", "", "only documents by this author")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "earliest creation day (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "latest creation day (YYYY-MM-DD)")
}
