// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package command

import (
	"context"
	"fmt"

	"github.com/pdiddy/deskkit/internal/pdfdoc"
	"github.com/pdiddy/deskkit/pkg/types"
)

// Documents is the document work the PDF actions delegate to.
// *pdfdoc.Editor implements it.
type Documents interface {
	PageCount(path string) (int, error)
	Merge(ctx context.Context, inputs []string, output string) (pdfdoc.MergeResult, error)
	Split(ctx context.Context, input, outDir string, opts pdfdoc.SplitOptions) (pdfdoc.SplitResult, error)
	AddText(ctx context.Context, input, output string, s pdfdoc.Stamp) error
	ExtractBlocks(ctx context.Context, input string) ([]types.TextBlock, error)
	ApplyEdits(ctx context.Context, input, output string, original, revised []types.TextBlock) (int, error)
}

// PDFActions returns the PDF editor's actions in button order.
func PDFActions(docs Documents) []Action {
	return []Action{
		{Name: "merge", Label: "Merge PDFs", Handler: mergeHandler(docs)},
		{Name: "split", Label: "Split PDF", Handler: splitHandler(docs)},
		{Name: "add-text", Label: "Add Text to PDF", Handler: addTextHandler(docs)},
		{Name: "edit-text", Label: "Edit Text in PDF", Handler: editTextHandler(docs)},
	}
}

func mergeHandler(docs Documents) Handler {
	return func(ctx context.Context, p Prompter) error {
		files, ok, err := p.OpenFiles(ctx, "Select PDFs to merge")
		if err != nil || !ok || len(files) == 0 {
			return err
		}
		output, ok, err := p.SaveFile(ctx, "Save Merged PDF", "merged.pdf")
		if err != nil || !ok {
			return err
		}
		if _, err := docs.Merge(ctx, files, output); err != nil {
			return err
		}
		p.Info("Success", fmt.Sprintf("PDFs merged into %s", output))
		return nil
	}
}

func splitHandler(docs Documents) Handler {
	return func(ctx context.Context, p Prompter) error {
		input, ok, err := p.OpenFile(ctx, "Select PDF to split")
		if err != nil || !ok {
			return err
		}
		dir, ok, err := p.ChooseDir(ctx, "Select Output Folder")
		if err != nil || !ok {
			return err
		}
		if _, err := docs.Split(ctx, input, dir, pdfdoc.SplitOptions{}); err != nil {
			return err
		}
		p.Info("Success", fmt.Sprintf("PDF split into individual pages in %s", dir))
		return nil
	}
}

func addTextHandler(docs Documents) Handler {
	return func(ctx context.Context, p Prompter) error {
		input, ok, err := p.OpenFile(ctx, "Select PDF to add text")
		if err != nil || !ok {
			return err
		}
		output, ok, err := p.SaveFile(ctx, "Save PDF with Text", "stamped.pdf")
		if err != nil || !ok {
			return err
		}
		text, ok, err := p.AskString(ctx, "Input", "Enter the text to add:")
		if err != nil || !ok {
			return err
		}

		pages, err := docs.PageCount(input)
		if err != nil {
			return err
		}
		page, ok, err := p.AskInt(ctx, "Input", "Enter page number:", 1, pages)
		if err != nil || !ok {
			return err
		}
		h, ok, err := p.Choose(ctx, "Input", "Choose position (Left or Right):", []string{"Left", "Right"})
		if err != nil || !ok {
			return err
		}
		v, ok, err := p.Choose(ctx, "Input", "Choose position (Top, Middle, Bottom):", []string{"Top", "Middle", "Bottom"})
		if err != nil || !ok {
			return err
		}

		stamp := pdfdoc.Stamp{
			Text:       text,
			Page:       page,
			Horizontal: pdfdoc.ParseHorizontal(h),
			Vertical:   pdfdoc.ParseVertical(v),
		}
		if err := docs.AddText(ctx, input, output, stamp); err != nil {
			return err
		}
		p.Info("Success", fmt.Sprintf("Text added to %s", output))
		return nil
	}
}

func editTextHandler(docs Documents) Handler {
	return func(ctx context.Context, p Prompter) error {
		input, ok, err := p.OpenFile(ctx, "Select PDF to edit text")
		if err != nil || !ok {
			return err
		}
		output, ok, err := p.SaveFile(ctx, "Save Edited PDF", "edited.pdf")
		if err != nil || !ok {
			return err
		}

		blocks, err := docs.ExtractBlocks(ctx, input)
		if err != nil {
			return err
		}
		if len(blocks) == 0 {
			p.Info("Info", "No editable text found in PDF.")
			return nil
		}

		revised, ok, err := p.ReviseBlocks(ctx, blocks)
		if err != nil || !ok {
			return err
		}
		if _, err := docs.ApplyEdits(ctx, input, output, blocks, revised); err != nil {
			return err
		}
		p.Info("Success", fmt.Sprintf("Edited PDF saved as %s", output))
		return nil
	}
}
