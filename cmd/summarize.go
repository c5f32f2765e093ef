package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/docarchive-cli/internal/parser"
	"github.com/KaramelBytes/docarchive-cli/internal/render"
	"github.com/KaramelBytes/docarchive-cli/internal/summarizer"
)

var sumRatio float64

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file|-]",
	Short: "Print an extractive summary of a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ratio := cfg.SummaryRatio
		if cmd.Flags().Changed("ratio") {
			ratio = sumRatio
		}
		if err := summarizer.ValidateRatio(ratio); err != nil {
			return err
		}

		var text string
		if len(args) == 0 || args[0] == "-" {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			parsed, err := parser.ParseBytes("stdin.txt", b)
			if err != nil {
				return err
			}
			text = parsed.Text
		} else {
			parsed, err := parser.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse document: %w", err)
			}
			text = parsed.Text
		}
		render.Summary(cmd.OutOrStdout(), text, summarizer.GenerateSummary(text, ratio))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().Float64Var(&sumRatio, "ratio", 0.3, "summary ratio between 0.20 and 0.50")
}
