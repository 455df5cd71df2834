// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package desktop

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/pdiddy/deskkit/internal/command"
	"github.com/pdiddy/deskkit/pkg/types"
)

// Dialogs is a command.Prompter backed by fyne dialogs on win. Its methods
// block, so they must be called off the UI goroutine.
type Dialogs struct {
	win fyne.Window
}

var _ command.Prompter = (*Dialogs)(nil)

// NewDialogs returns a Prompter that shows its dialogs over win.
func NewDialogs(win fyne.Window) *Dialogs {
	return &Dialogs{win: win}
}

type reply[T any] func(v T, ok bool, err error)

// await shows a dialog on the UI goroutine and waits for its first answer.
func await[T any](ctx context.Context, show func(answer reply[T])) (T, bool, error) {
	type result struct {
		v   T
		ok  bool
		err error
	}
	ch := make(chan result, 1)
	var once sync.Once
	answer := func(v T, ok bool, err error) {
		once.Do(func() { ch <- result{v, ok, err} })
	}

	fyne.Do(func() { show(answer) })

	select {
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	case r := <-ch:
		return r.v, r.ok, r.err
	}
}

func pdfFilter() storage.FileFilter {
	return storage.NewExtensionFileFilter([]string{".pdf"})
}

func (d *Dialogs) AskString(ctx context.Context, title, prompt string) (string, bool, error) {
	return await(ctx, func(answer reply[string]) {
		entry := widget.NewEntry()
		form := dialog.NewForm(title, "OK", "Cancel",
			[]*widget.FormItem{widget.NewFormItem(prompt, entry)},
			func(ok bool) {
				text := strings.TrimSpace(entry.Text)
				answer(text, ok && text != "", nil)
			}, d.win)
		form.Show()
		d.win.Canvas().Focus(entry)
	})
}

// intValidator accepts whole numbers in [min, max].
func intValidator(min, max int) fyne.StringValidator {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < min || n > max {
			return fmt.Errorf("enter a whole number from %d to %d", min, max)
		}
		return nil
	}
}

func floatValidator(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func (d *Dialogs) AskFloat(ctx context.Context, title, prompt string) (float64, bool, error) {
	return await(ctx, func(answer reply[float64]) {
		entry := widget.NewEntry()
		entry.Validator = floatValidator
		form := dialog.NewForm(title, "OK", "Cancel",
			[]*widget.FormItem{widget.NewFormItem(prompt, entry)},
			func(ok bool) {
				if !ok {
					answer(0, false, nil)
					return
				}
				n, err := strconv.ParseFloat(strings.TrimSpace(entry.Text), 64)
				answer(n, err == nil, nil)
			}, d.win)
		form.Show()
	})
}

func (d *Dialogs) AskInt(ctx context.Context, title, prompt string, min, max int) (int, bool, error) {
	return await(ctx, func(answer reply[int]) {
		entry := widget.NewEntry()
		entry.SetPlaceHolder(fmt.Sprintf("%d-%d", min, max))
		entry.Validator = intValidator(min, max)
		form := dialog.NewForm(title, "OK", "Cancel",
			[]*widget.FormItem{widget.NewFormItem(prompt, entry)},
			func(ok bool) {
				if !ok {
					answer(0, false, nil)
					return
				}
				n, err := strconv.Atoi(strings.TrimSpace(entry.Text))
				answer(n, err == nil, nil)
			}, d.win)
		form.Show()
	})
}

func (d *Dialogs) Choose(ctx context.Context, title, prompt string, options []string) (string, bool, error) {
	return await(ctx, func(answer reply[string]) {
		sel := widget.NewSelectEntry(options)
		if len(options) > 0 {
			sel.SetText(options[0])
		}
		form := dialog.NewForm(title, "OK", "Cancel",
			[]*widget.FormItem{widget.NewFormItem(prompt, sel)},
			func(ok bool) {
				text := strings.TrimSpace(sel.Text)
				answer(text, ok && text != "", nil)
			}, d.win)
		form.Show()
	})
}

func (d *Dialogs) OpenFile(ctx context.Context, title string) (string, bool, error) {
	return await(ctx, func(answer reply[string]) {
		open := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil || r == nil {
				answer("", false, err)
				return
			}
			path := r.URI().Path()
			r.Close()
			answer(path, true, nil)
		}, d.win)
		open.SetFilter(pdfFilter())
		open.Show()
	})
}

// OpenFiles asks for one PDF at a time until the user stops adding more.
// Cancelling the first pick cancels; cancelling a later one finishes.
func (d *Dialogs) OpenFiles(ctx context.Context, title string) ([]string, bool, error) {
	var paths []string
	for {
		path, ok, err := d.OpenFile(ctx, title)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return paths, len(paths) > 0, nil
		}
		paths = append(paths, path)

		more, _, err := await(ctx, func(answer reply[bool]) {
			dialog.ShowConfirm(title,
				fmt.Sprintf("%d PDF(s) chosen. Add another?", len(paths)),
				func(yes bool) { answer(yes, true, nil) }, d.win)
		})
		if err != nil {
			return nil, false, err
		}
		if !more {
			return paths, true, nil
		}
	}
}

// SaveFile returns the chosen path. The fyne save dialog creates the file;
// it is closed at once and later replaced by the finished document.
func (d *Dialogs) SaveFile(ctx context.Context, title, suggested string) (string, bool, error) {
	return await(ctx, func(answer reply[string]) {
		save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
			if err != nil || w == nil {
				answer("", false, err)
				return
			}
			path := w.URI().Path()
			w.Close()
			answer(path, true, nil)
		}, d.win)
		save.SetFilter(pdfFilter())
		save.SetFileName(suggested)
		save.Show()
	})
}

func (d *Dialogs) ChooseDir(ctx context.Context, title string) (string, bool, error) {
	return await(ctx, func(answer reply[string]) {
		folder := dialog.NewFolderOpen(func(l fyne.ListableURI, err error) {
			if err != nil || l == nil {
				answer("", false, err)
				return
			}
			answer(l.Path(), true, nil)
		}, d.win)
		folder.Show()
	})
}

// ReviseBlocks opens a separate editor window with one multi-line entry per
// block. Closing the window without saving cancels.
func (d *Dialogs) ReviseBlocks(ctx context.Context, blocks []types.TextBlock) ([]types.TextBlock, bool, error) {
	return await(ctx, func(answer reply[[]types.TextBlock]) {
		editor := newBlockEditor(blocks)
		win := fyne.CurrentApp().NewWindow("Edit Text Blocks")
		win.SetOnClosed(func() { answer(nil, false, nil) })

		save := widget.NewButton("Save Changes", func() {
			answer(editor.revised(), true, nil)
			win.Close()
		})
		save.Importance = widget.HighImportance

		win.SetContent(container.NewBorder(nil, save, nil, nil, container.NewVScroll(editor.content())))
		win.Resize(fyne.NewSize(600, 500))
		win.Show()
	})
}

func (d *Dialogs) Info(title, message string) {
	fyne.Do(func() { dialog.ShowInformation(title, message, d.win) })
}

func (d *Dialogs) Error(title string, err error) {
	fyne.Do(func() {
		dialog.ShowError(fmt.Errorf("%s: %w", title, err), d.win)
	})
}
