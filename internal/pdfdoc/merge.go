// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// MergeResult describes a completed merge.
type MergeResult struct {
	Output string
	Inputs int
	Pages  int
}

// Merge concatenates inputs, in order, into output. The merged document is
// built in a temporary file beside output and moved into place only once
// pdfcpu has finished, so a failed merge leaves nothing at output.
func (e *Editor) Merge(ctx context.Context, inputs []string, output string) (MergeResult, error) {
	if len(inputs) == 0 {
		return MergeResult{}, ErrNoInputs
	}

	total := 0
	for _, in := range inputs {
		if err := canceled(ctx); err != nil {
			return MergeResult{}, err
		}
		n, err := e.PageCount(in)
		if err != nil {
			return MergeResult{}, fmt.Errorf("merge input %s: %w", in, err)
		}
		total += n
	}

	if len(inputs) == 1 {
		data, err := readPDF(inputs[0])
		if err != nil {
			return MergeResult{}, err
		}
		if err := writeAtomic(output, data); err != nil {
			return MergeResult{}, err
		}
		return MergeResult{Output: output, Inputs: 1, Pages: total}, nil
	}

	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return MergeResult{}, fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".deskkit-merge-*.pdf")
	if err != nil {
		return MergeResult{}, fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	if err := api.MergeCreateFile(inputs, tmpName, false, newConfiguration()); err != nil {
		return MergeResult{}, fmt.Errorf("merging %d documents: %w", len(inputs), err)
	}
	if err := os.Rename(tmpName, output); err != nil {
		return MergeResult{}, fmt.Errorf("moving merged document to %s: %w", output, err)
	}

	e.log.Info().Int("inputs", len(inputs)).Int("pages", total).Str("output", output).Msg("merged documents")
	return MergeResult{Output: output, Inputs: len(inputs), Pages: total}, nil
}
