// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-editor CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/deskkit/internal/config"
	"github.com/pdiddy/deskkit/internal/logging"
	"github.com/pdiddy/deskkit/internal/pdfdoc"
	"github.com/pdiddy/deskkit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfg types.Config
	log = zerolog.Nop()
)

// rootCmd is the base command for the pdf-editor CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf-editor",
	Short: "Merge, split, stamp, and edit text in PDF files",
	Long: `pdf-editor performs small edits on PDF files. Each edit is a subcommand:
merge, split, add-text, blocks, and edit. The interactive subcommand asks
for inputs in the terminal; gui opens the desktop window.

Outputs are written to a temporary file and renamed into place, so a
failed run never leaves a partial output behind.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deskkit.yaml or ~/.config/deskkit/deskkit.yaml)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	v, err := config.New(cfgFile)
	if err != nil {
		return err
	}
	if cfg, err = config.Load(v); err != nil {
		return err
	}
	if log, err = logging.New(cfg.Log, os.Stderr); err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		log.Debug().Str("file", used).Msg("using config file")
	}
	return nil
}

// newEditor returns an editor using the loaded PDF settings.
func newEditor() *pdfdoc.Editor {
	return pdfdoc.New(cfg.PDF, log)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
