package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix = "DOCARCHIVE"
	homeDir   = ".docarchive"
)

// Global configuration structure.
type Global struct {
	ArchiveDir    string  `mapstructure:"archive_dir" yaml:"archive_dir"`
	SummaryRatio  float64 `mapstructure:"summary_ratio" yaml:"summary_ratio"`
	DefaultAuthor string  `mapstructure:"default_author" yaml:"default_author"`
	// Derive keywords, description and reading time when adding documents
	AutoMeta bool `mapstructure:"auto_meta" yaml:"auto_meta"`
	// Suggest a category from the text when none is given
	AutoCategory bool   `mapstructure:"auto_category" yaml:"auto_category"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.docarchive/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. A .env file in the working
// directory is loaded first without overriding variables already set.
func Load(cfgFile string) (*Global, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("archive_dir", "")
	v.SetDefault("summary_ratio", 0.3)
	v.SetDefault("default_author", "")
	v.SetDefault("auto_meta", true)
	v.SetDefault("auto_category", true)
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	dir, err := ExpandHome(c.ArchiveDir)
	if err != nil {
		return nil, err
	}
	c.ArchiveDir = dir
	if c.ArchiveDir == "" {
		root, err := defaultDir()
		if err != nil {
			return nil, err
		}
		c.ArchiveDir = filepath.Join(root, "archive")
	}
	return &c, nil
}

// ExpandHome resolves a leading ~ to the user's home directory.
func ExpandHome(dir string) (string, error) {
	if !strings.HasPrefix(dir, "~") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir = strings.TrimPrefix(dir, "~")
	dir = strings.TrimPrefix(dir, string(os.PathSeparator))
	dir = strings.TrimPrefix(dir, "/")
	return filepath.Clean(filepath.Join(home, dir)), nil
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, homeDir), nil
}

// isNotFound treats both viper's search miss and a missing explicit file
// as "no config".
func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
