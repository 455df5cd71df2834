// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package command holds the actions both tools expose and the dispatch
// table that maps action names to them. Handlers talk to the user only
// through a Prompter, so the same action runs behind a terminal or a
// desktop window.
package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/deskkit/pkg/types"
)

var (
	// ErrUnknownAction is returned by Run for a name that was never registered.
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvalidInput wraps answers that cannot be parsed.
	ErrInvalidInput = errors.New("invalid input")
)

// Prompter is the dialog surface handlers use. Every question returns ok
// false when the user cancels; handlers then stop without reporting.
type Prompter interface {
	// AskString asks for free-form text.
	AskString(ctx context.Context, title, prompt string) (string, bool, error)

	// AskFloat asks for a decimal number.
	AskFloat(ctx context.Context, title, prompt string) (float64, bool, error)

	// AskInt asks for a whole number in [min, max].
	AskInt(ctx context.Context, title, prompt string, min, max int) (int, bool, error)

	// Choose offers options but returns whatever the user answered; callers
	// decide how to read an answer that is not one of the options.
	Choose(ctx context.Context, title, prompt string, options []string) (string, bool, error)

	// OpenFile asks for one existing PDF.
	OpenFile(ctx context.Context, title string) (string, bool, error)

	// OpenFiles asks for one or more existing PDFs, in the order chosen.
	OpenFiles(ctx context.Context, title string) ([]string, bool, error)

	// SaveFile asks where to write a PDF.
	SaveFile(ctx context.Context, title, suggested string) (string, bool, error)

	// ChooseDir asks for a directory.
	ChooseDir(ctx context.Context, title string) (string, bool, error)

	// ReviseBlocks shows text blocks for editing and returns them revised,
	// same length and order.
	ReviseBlocks(ctx context.Context, blocks []types.TextBlock) ([]types.TextBlock, bool, error)

	// Info reports a result.
	Info(title, message string)

	// Error reports a failure.
	Error(title string, err error)
}

// Handler is one action: prompt, act, report.
type Handler func(ctx context.Context, p Prompter) error

// Action is a named handler with the label a front-end shows for it.
type Action struct {
	Name    string
	Label   string
	Handler Handler
}

// Registry is an ordered dispatch table of actions.
type Registry struct {
	actions []Action
	index   map[string]int
}

// NewRegistry returns a registry holding actions in the given order.
func NewRegistry(actions ...Action) (*Registry, error) {
	r := &Registry{index: make(map[string]int)}
	for _, a := range actions {
		if err := r.Register(a); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends an action. Names must be unique and handlers non-nil.
func (r *Registry) Register(a Action) error {
	if a.Name == "" || a.Handler == nil {
		return fmt.Errorf("action %q needs a name and a handler", a.Name)
	}
	if _, dup := r.index[a.Name]; dup {
		return fmt.Errorf("action %q registered twice", a.Name)
	}
	if a.Label == "" {
		a.Label = a.Name
	}
	r.index[a.Name] = len(r.actions)
	r.actions = append(r.actions, a)
	return nil
}

// Lookup returns the action registered under name.
func (r *Registry) Lookup(name string) (Action, bool) {
	i, ok := r.index[name]
	if !ok {
		return Action{}, false
	}
	return r.actions[i], true
}

// Actions returns the registered actions in registration order.
func (r *Registry) Actions() []Action {
	out := make([]Action, len(r.actions))
	copy(out, r.actions)
	return out
}

// Names returns the registered action names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.actions))
	for i, a := range r.actions {
		names[i] = a.Name
	}
	return names
}

// Run executes the named action. A handler error is shown through p and
// also returned.
func (r *Registry) Run(ctx context.Context, name string, p Prompter) error {
	a, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownAction, name)
	}
	if err := a.Handler(ctx, p); err != nil {
		p.Error(a.Label, err)
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	return nil
}
