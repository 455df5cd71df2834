// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pdiddy/deskkit/internal/pdfdoc"
)

var splitCmd = &cobra.Command{
	Use:   "split INPUT",
	Short: "Write every page of a PDF to its own file",
	Long: `Split writes page N of INPUT to <prefix>_N.pdf in the output directory.
The prefix is pdf.split_prefix from the config ("page" by default).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out-dir")
		quiet, _ := cmd.Flags().GetBool("quiet")

		var opts pdfdoc.SplitOptions
		if !quiet {
			opts.OnPage = pageProgress(cmd.ErrOrStderr())
		}
		res, err := newEditor().Split(cmd.Context(), args[0], outDir, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "PDF split into individual pages in %s (%d files)\n", res.OutDir, res.Pages())
		return nil
	},
}

func init() {
	splitCmd.Flags().String("out-dir", ".", "directory for the page files")
	splitCmd.Flags().BoolP("quiet", "q", false, "do not show progress")

	rootCmd.AddCommand(splitCmd)
}

// pageProgress returns a split callback that draws a progress bar on w,
// created once the page total is known.
func pageProgress(w io.Writer) func(page, total int) {
	var bar *progressbar.ProgressBar
	return func(page, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(30),
				progressbar.OptionSetDescription("Splitting"),
				progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
			)
		}
		_ = bar.Set(page)
	}
}
