// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package desktop renders the tools' dispatch tables as fyne windows.
// Button taps run the matching action on a worker goroutine, one at a
// time; the action's prompts come back to the UI goroutine as dialogs.
package desktop

import (
	"context"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/pdiddy/deskkit/internal/command"
)

// Window is one tool window.
type Window struct {
	win     fyne.Window
	reg     *command.Registry
	dialogs *Dialogs
	log     zerolog.Logger

	busy    atomic.Bool
	buttons []*widget.Button
	status  *widget.Label
}

func newWindow(a fyne.App, title string, reg *command.Registry, log zerolog.Logger) *Window {
	win := a.NewWindow(title)
	return &Window{
		win:     win,
		reg:     reg,
		dialogs: NewDialogs(win),
		log:     log,
		status:  widget.NewLabel(""),
	}
}

// NewPDFWindow returns a window with one button per registered action.
func NewPDFWindow(a fyne.App, reg *command.Registry, log zerolog.Logger) *Window {
	w := newWindow(a, "PDF Editor", reg, log)

	box := container.NewVBox()
	for _, action := range reg.Actions() {
		name := action.Name
		b := widget.NewButton(action.Label, func() { w.start(name, w.dialogs) })
		w.buttons = append(w.buttons, b)
		box.Add(b)
	}
	box.Add(w.status)

	w.win.SetContent(container.NewPadded(box))
	w.win.Resize(fyne.NewSize(320, 240))
	return w
}

// NewInflationWindow returns the calculator window: a price entry, a year
// entry, and a button that runs the "calculate" action with their values.
func NewInflationWindow(a fyne.App, reg *command.Registry, log zerolog.Logger) *Window {
	w := newWindow(a, "Inflation Calculator", reg, log)

	price := widget.NewEntry()
	price.SetPlaceHolder("19.99")
	year := widget.NewEntry()
	year.SetPlaceHolder("1990")

	calc := widget.NewButton("Calculate", func() {
		w.start("calculate", command.Prefilled(w.dialogs, price.Text, year.Text))
	})
	calc.Importance = widget.HighImportance
	w.buttons = append(w.buttons, calc)

	form := widget.NewForm(
		widget.NewFormItem("Enter the current price of the item:", price),
		widget.NewFormItem("Enter the target year to find the price for:", year),
	)
	w.win.SetContent(container.NewPadded(container.NewVBox(form, calc, w.status)))
	w.win.Resize(fyne.NewSize(480, 200))
	return w
}

// start runs the named action unless another one is still running.
// It is called on the UI goroutine.
func (w *Window) start(name string, p command.Prompter) {
	if !w.busy.CompareAndSwap(false, true) {
		return
	}
	w.setBusy(true)

	go func() {
		defer func() {
			w.busy.Store(false)
			fyne.Do(func() { w.setBusy(false) })
		}()
		w.log.Debug().Str("action", name).Msg("running")
		if err := w.reg.Run(context.Background(), name, p); err != nil {
			w.log.Error().Err(err).Str("action", name).Msg("action failed")
		}
	}()
}

func (w *Window) setBusy(busy bool) {
	for _, b := range w.buttons {
		if busy {
			b.Disable()
		} else {
			b.Enable()
		}
	}
	if busy {
		w.status.SetText("Working...")
	} else {
		w.status.SetText("")
	}
}

// ShowAndRun shows the window and runs the app's event loop.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}
