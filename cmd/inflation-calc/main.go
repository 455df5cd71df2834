// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the inflation-calc CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/deskkit/internal/config"
	"github.com/pdiddy/deskkit/internal/logging"
	"github.com/pdiddy/deskkit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfg types.Config
	log = zerolog.Nop()
)

// rootCmd is the base command for the inflation-calc CLI.
var rootCmd = &cobra.Command{
	Use:   "inflation-calc",
	Short: "Estimate what an item cost in a past year",
	Long: `inflation-calc discounts a current price backward through annual US
inflation rates (1924 to 2023) to estimate what the item cost in a past
year. Use calc for one answer, rates to see the table, interactive for
prompts in the terminal, or gui for the desktop window.`,
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

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
