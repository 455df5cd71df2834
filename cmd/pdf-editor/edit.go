// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deskkit/internal/pdfdoc"
)

var editCmd = &cobra.Command{
	Use:   "edit INPUT --blocks FILE -o OUTPUT",
	Short: "Apply edited text blocks to a PDF",
	Long: `Edit compares the blocks in FILE with the blocks extracted from INPUT
and stamps each changed text at its block's origin. Blocks must keep the
order and count that blocks exported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blocksFile, _ := cmd.Flags().GetString("blocks")
		output, _ := cmd.Flags().GetString("output")

		revised, err := pdfdoc.ReadBlockSetFile(blocksFile)
		if err != nil {
			return err
		}
		ed := newEditor()
		original, err := ed.ExtractBlocks(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		n, err := ed.ApplyEdits(cmd.Context(), args[0], output, original, revised.Blocks)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Edited PDF saved as %s (%d blocks changed)\n", output, n)
		return nil
	},
}

func init() {
	editCmd.Flags().String("blocks", "", "YAML file written by blocks and edited")
	editCmd.Flags().StringP("output", "o", "", "PDF to write")
	_ = editCmd.MarkFlagRequired("blocks")
	_ = editCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(editCmd)
}
