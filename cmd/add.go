package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/docarchive-cli/internal/document"
	"github.com/KaramelBytes/docarchive-cli/internal/meta"
	"github.com/KaramelBytes/docarchive-cli/internal/parser"
	"github.com/KaramelBytes/docarchive-cli/internal/summarizer"
)

var (
	addTitle     string
	addAuthor    string
	addCategory  string
	addTags      []string
	addKeywords  []string
	addDesc      string
	addSummarize bool
	addRatio     float64
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Add a document to the archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parser.ParseFile(args[0])
		if err != nil {
			return fmt.Errorf("parse document: %w", err)
		}
		title := strings.TrimSpace(addTitle)
		if title == "" {
			title = parsed.Title
		}
		author := strings.TrimSpace(addAuthor)
		if author == "" {
			author = cfg.DefaultAuthor
		}
		if author == "" {
			return fmt.Errorf("--author is required (or set default_author)")
		}

		draft := &document.MetadataDraft{
			Tags:        trimAll(addTags),
			Author:      author,
			Category:    strings.TrimSpace(addCategory),
			Keywords:    trimAll(addKeywords),
			Description: strings.TrimSpace(addDesc),
		}
		if draft.Category == "" && cfg.AutoCategory {
			draft.Category = meta.TopCategory(parsed.Text, title)
		}
		if cfg.AutoMeta {
			meta.Generate(title, parsed.Text).Apply(draft)
		} else {
			draft.SetReadingTime(meta.ReadingTime(parsed.Text))
		}

		var summary string
		if addSummarize {
			ratio := cfg.SummaryRatio
			if cmd.Flags().Changed("ratio") {
				ratio = addRatio
			}
			if err := summarizer.ValidateRatio(ratio); err != nil {
				return err
			}
			summary = summarizer.GenerateSummary(parsed.Text, ratio)
		}

		a, err := openArchive()
		if err != nil {
			return err
		}
		d := a.Add(document.New(document.NewID(), title, parsed.Text, draft.Build(), summary))
		if err := saveArchive(a); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Document added: %s (%s, %s)\n", d.ID, d.Title, d.Metadata.Category)
		return nil
	},
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "document title (default: first heading or file name)")
	addCmd.Flags().StringVarP(&addAuthor, "author", "a", "", "document author")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "document category (default: suggested from text)")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "comma separated tags")
	addCmd.Flags().StringSliceVar(&addKeywords, "keywords", nil, "comma separated keywords (default: derived from text)")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "short description (default: first sentence)")
	addCmd.Flags().BoolVar(&addSummarize, "summarize", false, "store an extractive summary with the document")
	addCmd.Flags().Float64Var(&addRatio, "ratio", 0.3, "summary ratio between 0.20 and 0.50")
}
