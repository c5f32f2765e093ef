package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/docarchive-cli/internal/archive"
	cfgpkg "github.com/KaramelBytes/docarchive-cli/internal/config"
)

var (
	// Global flags
	cfgFile        string
	debug          bool
	flagArchiveDir string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "docarchive",
	Short: "DocArchive CLI: file, search and summarize documents",
	Long: `DocArchive keeps an archive of text documents with tags, keywords, categories and authors.
Documents are searched with an inverted index (all query words must match) and can be
summarized with a sentence-ranking extractive summarizer.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.docarchive/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagArchiveDir, "archive-dir", "", "archive directory (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands that need the archive fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{SummaryRatio: 0.3, AutoMeta: true, AutoCategory: true, LogLevel: "info"}
	}
	cfg = c
	if rootCmd.PersistentFlags().Changed("archive-dir") && flagArchiveDir != "" {
		dir, err := cfgpkg.ExpandHome(flagArchiveDir)
		if err == nil {
			cfg.ArchiveDir = dir
		}
	}
	slog.SetDefault(newLogger(cfg.LogLevel, debug))
}

func newLogger(level string, debug bool) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// openArchive restores the archive from the configured directory.
func openArchive() (*archive.Archive, error) {
	dir, err := archiveDir()
	if err != nil {
		return nil, err
	}
	a, err := archive.Open(dir, archive.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	return a, nil
}

// saveArchive writes a snapshot of a to the configured directory.
func saveArchive(a *archive.Archive) error {
	dir, err := archiveDir()
	if err != nil {
		return err
	}
	if err := archive.SnapshotOf(a).Save(dir); err != nil {
		return fmt.Errorf("save archive: %w", err)
	}
	return nil
}

func archiveDir() (string, error) {
	if cfg == nil || cfg.ArchiveDir == "" {
		return "", fmt.Errorf("archive directory not configured")
	}
	return cfg.ArchiveDir, nil
}
