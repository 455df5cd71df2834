// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package command

import (
	"context"

	"github.com/pdiddy/deskkit/pkg/types"
)

// scripted is a Prompter that answers from queues and records what it was
// asked to report.
type scripted struct {
	strs   []string
	floats []float64
	ints   []int
	files  []string
	multi  [][]string
	saves  []string
	dirs   []string
	revise func([]types.TextBlock) []types.TextBlock

	// cancel makes the named method answer with ok == false.
	cancel map[string]bool

	calls  []string
	infos  []string
	errors []error
}

func (s *scripted) canceled(method string) bool {
	s.calls = append(s.calls, method)
	return s.cancel[method]
}

func pop[T any](q *[]T) T {
	v := (*q)[0]
	*q = (*q)[1:]
	return v
}

func (s *scripted) AskString(ctx context.Context, title, prompt string) (string, bool, error) {
	if s.canceled("AskString") {
		return "", false, nil
	}
	return pop(&s.strs), true, nil
}

func (s *scripted) AskFloat(ctx context.Context, title, prompt string) (float64, bool, error) {
	if s.canceled("AskFloat") {
		return 0, false, nil
	}
	return pop(&s.floats), true, nil
}

func (s *scripted) AskInt(ctx context.Context, title, prompt string, min, max int) (int, bool, error) {
	if s.canceled("AskInt") {
		return 0, false, nil
	}
	return pop(&s.ints), true, nil
}

func (s *scripted) Choose(ctx context.Context, title, prompt string, options []string) (string, bool, error) {
	if s.canceled("Choose") {
		return "", false, nil
	}
	return pop(&s.strs), true, nil
}

func (s *scripted) OpenFile(ctx context.Context, title string) (string, bool, error) {
	if s.canceled("OpenFile") {
		return "", false, nil
	}
	return pop(&s.files), true, nil
}

func (s *scripted) OpenFiles(ctx context.Context, title string) ([]string, bool, error) {
	if s.canceled("OpenFiles") {
		return nil, false, nil
	}
	return pop(&s.multi), true, nil
}

func (s *scripted) SaveFile(ctx context.Context, title, suggested string) (string, bool, error) {
	if s.canceled("SaveFile") {
		return "", false, nil
	}
	return pop(&s.saves), true, nil
}

func (s *scripted) ChooseDir(ctx context.Context, title string) (string, bool, error) {
	if s.canceled("ChooseDir") {
		return "", false, nil
	}
	return pop(&s.dirs), true, nil
}

func (s *scripted) ReviseBlocks(ctx context.Context, blocks []types.TextBlock) ([]types.TextBlock, bool, error) {
	if s.canceled("ReviseBlocks") {
		return nil, false, nil
	}
	out := append([]types.TextBlock(nil), blocks...)
	if s.revise != nil {
		out = s.revise(out)
	}
	return out, true, nil
}

func (s *scripted) Info(title, message string) {
	s.infos = append(s.infos, message)
}

func (s *scripted) Error(title string, err error) {
	s.errors = append(s.errors, err)
}
