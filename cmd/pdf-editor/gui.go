// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/pdiddy/deskkit/internal/command"
	"github.com/pdiddy/deskkit/internal/desktop"
	"github.com/pdiddy/deskkit/internal/logging"
)

const appID = "com.pdiddy.deskkit.pdf-editor"

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the editor window",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := command.NewRegistry(command.PDFActions(newEditor())...)
		if err != nil {
			return err
		}
		a := app.NewWithID(appID)
		desktop.NewPDFWindow(a, reg, logging.Component(log, "desktop")).ShowAndRun()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
