// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deskkit/internal/command"
	"github.com/pdiddy/deskkit/internal/prompt"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive [action]",
	Short: "Run editor actions with prompts in the terminal",
	Long: `Interactive runs one action (merge, split, add-text, edit-text) with
prompts in the terminal. Without an action it offers a menu and keeps
going until an empty answer. An empty answer to any prompt cancels the
current action.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := command.NewRegistry(command.PDFActions(newEditor())...)
		if err != nil {
			return err
		}
		p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
		if len(args) == 1 {
			return reg.Run(cmd.Context(), args[0], p)
		}
		return menu(cmd.Context(), reg, p)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// menu offers the registry's actions until the user answers with nothing.
// Failed actions are reported by the registry and the menu continues.
func menu(ctx context.Context, reg *command.Registry, p command.Prompter) error {
	actions := reg.Actions()
	options := make([]string, len(actions))
	for i, a := range actions {
		options[i] = strconv.Itoa(i+1) + ". " + a.Label
	}

	for {
		answer, ok, err := p.Choose(ctx, "PDF Editor", "Choose an action:", options)
		if err != nil || !ok {
			return err
		}
		name, found := pick(actions, answer)
		if !found {
			p.Error("PDF Editor", errors.New("no action matches "+strconv.Quote(answer)))
			continue
		}
		if err := reg.Run(ctx, name, p); err != nil && ctx.Err() != nil {
			return err
		}
	}
}

// pick matches an answer against action numbers, names, and labels.
func pick(actions []command.Action, answer string) (string, bool) {
	answer = strings.TrimSpace(answer)
	if n, err := strconv.Atoi(strings.TrimSuffix(answer, ".")); err == nil {
		if n >= 1 && n <= len(actions) {
			return actions[n-1].Name, true
		}
		return "", false
	}
	for _, a := range actions {
		if strings.EqualFold(answer, a.Name) || strings.EqualFold(answer, a.Label) {
			return a.Name, true
		}
	}
	return "", false
}
