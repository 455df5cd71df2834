// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deskkit/internal/inflation"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the annual inflation rate table",
	RunE: func(cmd *cobra.Command, args []string) error {
		writeRates(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}

func writeRates(w io.Writer) {
	fmt.Fprintf(w, "%-6s %8s\n", "Year", "Rate")
	for _, y := range inflation.Years() {
		r, _ := inflation.Rate(y)
		fmt.Fprintf(w, "%-6d %7.2f%%\n", y, r*100)
	}
}
