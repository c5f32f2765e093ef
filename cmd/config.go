package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/docarchive-cli/internal/config"
	"github.com/KaramelBytes/docarchive-cli/internal/summarizer"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set DocArchive configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "archive_dir: %s\n", cfg.ArchiveDir)
		fmt.Fprintf(out, "summary_ratio: %.2f\n", cfg.SummaryRatio)
		if cfg.DefaultAuthor != "" {
			fmt.Fprintf(out, "default_author: %s\n", cfg.DefaultAuthor)
		}
		fmt.Fprintf(out, "auto_meta: %t\n", cfg.AutoMeta)
		fmt.Fprintf(out, "auto_category: %t\n", cfg.AutoCategory)
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "archive_dir":
			dir, err := cfgpkg.ExpandHome(val)
			if err != nil {
				return err
			}
			cfg.ArchiveDir = dir
		case "summary_ratio":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for summary_ratio: %w", err)
			}
			if err := summarizer.ValidateRatio(f); err != nil {
				return err
			}
			cfg.SummaryRatio = f
		case "default_author":
			cfg.DefaultAuthor = strings.TrimSpace(val)
		case "auto_meta", "auto_category":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for %s: %v", key, val)
			}
			if key == "auto_meta" {
				cfg.AutoMeta = b
			} else {
				cfg.AutoCategory = b
			}
		case "log_level":
			switch v := strings.ToLower(val); v {
			case "debug", "info", "warn", "error":
				cfg.LogLevel = v
			default:
				return fmt.Errorf("invalid log_level: %s (use debug, info, warn or error)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
