// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/deskkit/internal/command"
	"github.com/pdiddy/deskkit/internal/prompt"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Ask for a price and a year in the terminal",
	Long: `Interactive asks for the current price and the target year, then prints
the estimate. An empty answer cancels.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := command.NewRegistry(command.InflationActions(cfg.Inflation.CurrentYear)...)
		if err != nil {
			return err
		}
		p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
		return reg.Run(cmd.Context(), "calculate", p)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
