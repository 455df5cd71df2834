// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package desktop

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/pdiddy/deskkit/pkg/types"
)

// blockEditor pairs each text block with the entry that edits it.
type blockEditor struct {
	blocks  []types.TextBlock
	entries []*widget.Entry
}

func newBlockEditor(blocks []types.TextBlock) *blockEditor {
	e := &blockEditor{blocks: blocks, entries: make([]*widget.Entry, len(blocks))}
	for i, b := range blocks {
		entry := widget.NewMultiLineEntry()
		entry.SetText(b.Text)
		entry.Wrapping = fyne.TextWrapWord
		entry.SetMinRowsVisible(2)
		e.entries[i] = entry
	}
	return e
}

func (e *blockEditor) content() fyne.CanvasObject {
	box := container.NewVBox()
	for i, b := range e.blocks {
		label := widget.NewLabel(fmt.Sprintf("Page %d, block %d", b.Page, i+1))
		label.TextStyle = fyne.TextStyle{Bold: true}
		box.Add(label)
		box.Add(e.entries[i])
	}
	return box
}

// revised returns the blocks with each entry's current text.
func (e *blockEditor) revised() []types.TextBlock {
	out := make([]types.TextBlock, len(e.blocks))
	copy(out, e.blocks)
	for i, entry := range e.entries {
		out[i].Text = entry.Text
	}
	return out
}
