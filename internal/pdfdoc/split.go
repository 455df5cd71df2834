// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// SplitResult lists the single-page documents written by Split, in page
// order.
type SplitResult struct {
	OutDir string
	Files  []string
}

// Pages returns the number of files written.
func (r SplitResult) Pages() int {
	return len(r.Files)
}

// SplitOptions tunes a split run.
type SplitOptions struct {
	// OnPage, when set, is called after each page file is written with the
	// 1-indexed page number and the page count.
	OnPage func(page, total int)
}

// Split writes every page of input to its own document in outDir, named
// <prefix>_<N>.pdf with N counting from 1. Files written before a failure
// are left in place and reported in the result.
func (e *Editor) Split(ctx context.Context, input, outDir string, opts SplitOptions) (SplitResult, error) {
	result := SplitResult{OutDir: outDir}

	data, err := readPDF(input)
	if err != nil {
		return result, err
	}
	total, err := pageCount(data)
	if err != nil {
		return result, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return result, fmt.Errorf("creating %s: %w", outDir, err)
	}

	for page := 1; page <= total; page++ {
		if err := canceled(ctx); err != nil {
			return result, err
		}

		name := filepath.Join(outDir, SplitFileName(e.cfg.SplitPrefix, page))
		err := writeAtomicFunc(name, func(w io.Writer) error {
			return api.Trim(bytes.NewReader(data), w, []string{strconv.Itoa(page)}, newConfiguration())
		})
		if err != nil {
			return result, fmt.Errorf("extracting page %d of %s: %w", page, input, err)
		}
		result.Files = append(result.Files, name)
		e.log.Debug().Int("page", page).Str("file", name).Msg("wrote page")

		if opts.OnPage != nil {
			opts.OnPage(page, total)
		}
	}

	e.log.Info().Int("pages", total).Str("out_dir", outDir).Msg("split document")
	return result, nil
}

// SplitFileName returns the file name Split uses for a 1-indexed page.
func SplitFileName(prefix string, page int) string {
	return fmt.Sprintf("%s_%d.pdf", prefix, page)
}
