// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge -o OUTPUT INPUT...",
	Short: "Concatenate PDFs in argument order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		res, err := newEditor().Merge(cmd.Context(), args, output)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "PDFs merged into %s (%d pages from %d files)\n", res.Output, res.Pages, res.Inputs)
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringP("output", "o", "", "merged PDF to write")
	_ = mergeCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(mergeCmd)
}
