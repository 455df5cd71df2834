// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deskkit/internal/pdfdoc"
	"github.com/pdiddy/deskkit/pkg/types"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks INPUT",
	Short: "Export the text blocks of a PDF as YAML",
	Long: `Blocks lists every text block of INPUT with its page, text, and
bounding box. Edit the text fields and pass the file to edit --blocks to
apply the changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		blocks, err := newEditor().ExtractBlocks(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		set := types.BlockSet{Source: args[0], Blocks: blocks}

		if output == "" {
			return pdfdoc.WriteBlockSet(cmd.OutOrStdout(), set)
		}
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer f.Close()
		if err := pdfdoc.WriteBlockSet(f, set); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%d blocks written to %s\n", len(blocks), output)
		return nil
	},
}

func init() {
	blocksCmd.Flags().StringP("output", "o", "", "YAML file to write (default stdout)")

	rootCmd.AddCommand(blocksCmd)
}
