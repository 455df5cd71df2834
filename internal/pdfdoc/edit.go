// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/deskkit/pkg/types"
)

// Edit is a revised text block that differs from what was extracted.
type Edit struct {
	Index int
	Block types.TextBlock
}

// Changes pairs original and revised blocks by position and returns the
// revisions worth writing: non-empty after trimming and different from the
// original. Both slices must come from the same extraction.
func Changes(original, revised []types.TextBlock) ([]Edit, error) {
	if len(original) != len(revised) {
		return nil, fmt.Errorf("revised %d block(s), extracted %d", len(revised), len(original))
	}
	var edits []Edit
	for i := range revised {
		text := strings.TrimSpace(revised[i].Text)
		if text == "" || text == strings.TrimSpace(original[i].Text) {
			continue
		}
		b := original[i]
		b.Text = text
		edits = append(edits, Edit{Index: i, Block: b})
	}
	return edits, nil
}

// ApplyEdits writes input to output with every changed block's new text
// stamped at the block's origin. The extracted text is left in the content
// stream; the revision is drawn over it. Unchanged documents are copied
// byte for byte.
func (e *Editor) ApplyEdits(ctx context.Context, input, output string, original, revised []types.TextBlock) (int, error) {
	edits, err := Changes(original, revised)
	if err != nil {
		return 0, err
	}
	data, err := readPDF(input)
	if err != nil {
		return 0, err
	}
	n, err := pageCount(data)
	if err != nil {
		return 0, err
	}

	for _, ed := range edits {
		if err := canceled(ctx); err != nil {
			return 0, err
		}
		if err := checkPage(ed.Block.Page, n); err != nil {
			return 0, fmt.Errorf("block %d: %w", ed.Index+1, err)
		}
		p := Placement{
			Anchor: "bl",
			DX:     ed.Block.Origin.X,
			DY:     ed.Block.Origin.Y,
			Align:  "l",
		}
		data, err = e.stamp(data, ed.Block.Page, ed.Block.Text, p)
		if err != nil {
			return 0, fmt.Errorf("block %d: %w", ed.Index+1, err)
		}
	}

	if err := writeAtomic(output, data); err != nil {
		return 0, err
	}
	e.log.Info().Int("edits", len(edits)).Str("output", output).Msg("saved edited document")
	return len(edits), nil
}
