// Command nodeedit is a TUI editor for node graphs, with export and
// theme inspection subcommands.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.3.0"

// Config holds persistent editor settings.
type Config struct {
	Theme        string `toml:"theme"`         // path to a theme file, empty for the built-in dark palette
	ExportWidth  int    `toml:"export_width"`  // default export canvas width
	ExportHeight int    `toml:"export_height"` // default export canvas height
	FileType     string `toml:"file_type"`     // "png" or "svg"
	LastDir      string `toml:"last_dir"`
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	cwd, _ := os.Getwd()
	return Config{
		ExportWidth:  800,
		ExportHeight: 600,
		FileType:     "png",
		LastDir:      cwd,
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nodeedit.toml"
	}
	return filepath.Join(home, ".nodeedit.toml")
}

// LoadConfig loads configuration, falling back to defaults on any
// problem so a broken config never blocks the editor.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(ConfigPath(), &cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.FileType != "png" && cfg.FileType != "svg" {
		cfg.FileType = "png"
	}
	return cfg
}

// SaveConfig saves configuration.
func SaveConfig(cfg Config) error {
	f, err := os.Create(ConfigPath())
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// LogPath is where editor diagnostics go; the TUI owns the terminal.
func LogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nodeedit.log"
	}
	return filepath.Join(home, ".nodeedit.log")
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{LogPath()}
	cfg.ErrorOutputPaths = []string{LogPath()}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	root := &cobra.Command{
		Use:     "nodeedit",
		Short:   "Edit, export and inspect node graph files",
		Version: version,
	}

	root.AddCommand(newEditCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newThemesCmd())

	if err := root.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}
