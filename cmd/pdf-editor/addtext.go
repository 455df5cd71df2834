// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deskkit/internal/pdfdoc"
)

var addTextCmd = &cobra.Command{
	Use:   "add-text INPUT -o OUTPUT --text TEXT",
	Short: "Stamp a line of text on one page",
	Long: `Add-text places TEXT on one page, inset from the page edges by
pdf.edge_offset points. --horizontal accepts left; anything else means
right, with the text right-aligned to the edge. --vertical accepts top or
bottom; anything else means middle.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		text, _ := cmd.Flags().GetString("text")
		page, _ := cmd.Flags().GetInt("page")
		h, _ := cmd.Flags().GetString("horizontal")
		v, _ := cmd.Flags().GetString("vertical")

		stamp := pdfdoc.Stamp{
			Text:       text,
			Page:       page,
			Horizontal: pdfdoc.ParseHorizontal(h),
			Vertical:   pdfdoc.ParseVertical(v),
		}
		if err := newEditor().AddText(cmd.Context(), args[0], output, stamp); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Text added to %s\n", output)
		return nil
	},
}

func init() {
	addTextCmd.Flags().StringP("output", "o", "", "PDF to write")
	addTextCmd.Flags().String("text", "", "text to add")
	addTextCmd.Flags().Int("page", 1, "1-based page number")
	addTextCmd.Flags().String("horizontal", "left", "left or right")
	addTextCmd.Flags().String("vertical", "top", "top, middle, or bottom")
	_ = addTextCmd.MarkFlagRequired("output")
	_ = addTextCmd.MarkFlagRequired("text")

	rootCmd.AddCommand(addTextCmd)
}
