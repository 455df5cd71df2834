// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package command

import "context"

// prefilled answers AskString and AskFloat from a fixed list before
// deferring to the wrapped Prompter.
type prefilled struct {
	Prompter
	answers []string
}

// Prefilled returns a Prompter whose first len(answers) AskString and
// AskFloat calls are answered, in order, with answers. An answer given to
// AskFloat that is not a number fails with ErrInvalidInput. Front-ends
// whose inputs live in the window itself use it to feed those values to a
// handler.
func Prefilled(p Prompter, answers ...string) Prompter {
	return &prefilled{Prompter: p, answers: answers}
}

func (f *prefilled) AskString(ctx context.Context, title, prompt string) (string, bool, error) {
	if len(f.answers) == 0 {
		return f.Prompter.AskString(ctx, title, prompt)
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	return a, true, nil
}

func (f *prefilled) AskFloat(ctx context.Context, title, prompt string) (float64, bool, error) {
	if len(f.answers) == 0 {
		return f.Prompter.AskFloat(ctx, title, prompt)
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	n, err := ParseNumber(a)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
