// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt implements command.Prompter over a line-oriented terminal.
// An empty answer or end of input cancels the current action.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/deskkit/internal/command"
	"github.com/pdiddy/deskkit/pkg/types"
)

// Terminal asks questions on w and reads answers from r, one per line.
type Terminal struct {
	r *bufio.Reader
	w io.Writer
}

var _ command.Prompter = (*Terminal)(nil)

// New returns a Terminal over r and w, defaulting to stdin and stdout.
func New(r io.Reader, w io.Writer) *Terminal {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &Terminal{r: bufio.NewReader(r), w: w}
}

// readLine shows prompt and returns the trimmed answer. ok is false on an
// empty answer or at end of input.
func (t *Terminal) readLine(ctx context.Context, prompt string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if _, err := fmt.Fprint(t.w, formatPrompt(prompt)); err != nil {
		return "", false, fmt.Errorf("writing prompt: %w", err)
	}
	line, err := t.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(t.w)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false, nil
	}
	return line, true, nil
}

func (t *Terminal) heading(title string) {
	if title != "" {
		fmt.Fprintln(t.w, formatTitle(title))
	}
}

func (t *Terminal) AskString(ctx context.Context, title, prompt string) (string, bool, error) {
	t.heading(title)
	return t.readLine(ctx, prompt)
}

// AskInt asks again until the answer is a whole number in [min, max].
// AskFloat asks again until the answer is a number.
func (t *Terminal) AskFloat(ctx context.Context, title, prompt string) (float64, bool, error) {
	t.heading(title)
	for {
		line, ok, err := t.readLine(ctx, prompt)
		if err != nil || !ok {
			return 0, false, err
		}
		n, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return n, true, nil
		}
		fmt.Fprintln(t.w, formatError("Enter a number, such as 19.99."))
	}
}

func (t *Terminal) AskInt(ctx context.Context, title, prompt string, min, max int) (int, bool, error) {
	t.heading(title)
	for {
		line, ok, err := t.readLine(ctx, fmt.Sprintf("%s %s", prompt, formatHint(fmt.Sprintf("[%d-%d]", min, max))))
		if err != nil || !ok {
			return 0, false, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= min && n <= max {
			return n, true, nil
		}
		fmt.Fprintln(t.w, formatError(fmt.Sprintf("Enter a whole number from %d to %d.", min, max)))
	}
}

func (t *Terminal) Choose(ctx context.Context, title, prompt string, options []string) (string, bool, error) {
	t.heading(title)
	hint := ""
	if len(options) > 0 {
		hint = " " + formatHint("("+strings.Join(options, "/")+")")
	}
	return t.readLine(ctx, prompt+hint)
}

// OpenFile asks again until the answer names an existing regular file.
func (t *Terminal) OpenFile(ctx context.Context, title string) (string, bool, error) {
	t.heading(title)
	for {
		path, ok, err := t.readLine(ctx, "Path:")
		if err != nil || !ok {
			return "", false, err
		}
		if err := checkFile(path); err != nil {
			fmt.Fprintln(t.w, formatError(err.Error()))
			continue
		}
		return path, true, nil
	}
}

// OpenFiles reads comma-separated paths. Every path must exist.
func (t *Terminal) OpenFiles(ctx context.Context, title string) ([]string, bool, error) {
	t.heading(title)
	for {
		line, ok, err := t.readLine(ctx, "Paths "+formatHint("(comma-separated)")+":")
		if err != nil || !ok {
			return nil, false, err
		}
		paths := splitPaths(line)
		if len(paths) == 0 {
			return nil, false, nil
		}
		var bad error
		for _, p := range paths {
			if err := checkFile(p); err != nil {
				bad = err
				break
			}
		}
		if bad != nil {
			fmt.Fprintln(t.w, formatError(bad.Error()))
			continue
		}
		return paths, true, nil
	}
}

func (t *Terminal) SaveFile(ctx context.Context, title, suggested string) (string, bool, error) {
	t.heading(title)
	return t.readLine(ctx, "Save as "+formatHint("(e.g. "+suggested+")")+":")
}

func (t *Terminal) ChooseDir(ctx context.Context, title string) (string, bool, error) {
	t.heading(title)
	return t.readLine(ctx, "Folder:")
}

// ReviseBlocks shows each block and reads its replacement. An empty line
// keeps the block's text; end of input cancels.
func (t *Terminal) ReviseBlocks(ctx context.Context, blocks []types.TextBlock) ([]types.TextBlock, bool, error) {
	t.heading("Edit Text Blocks")
	fmt.Fprintln(t.w, formatHint("Press Enter to keep a block unchanged."))

	out := make([]types.TextBlock, len(blocks))
	copy(out, blocks)
	for i, b := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		label := fmt.Sprintf("Block %d of %d, page %d", i+1, len(blocks), b.Page)
		fmt.Fprintln(t.w, blockStyle.Render(formatHint(label)+"\n"+b.Text))
		fmt.Fprint(t.w, formatPrompt("New text:"))

		line, err := t.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, false, fmt.Errorf("reading answer: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(t.w)
			return nil, false, nil
		}
		if text := strings.TrimSpace(line); text != "" {
			out[i].Text = text
		}
	}
	return out, true, nil
}

func (t *Terminal) Info(title, message string) {
	t.heading(title)
	fmt.Fprintln(t.w, formatSuccess(message))
}

func (t *Terminal) Error(title string, err error) {
	t.heading(title)
	fmt.Fprintln(t.w, formatError(err.Error()))
}

func splitPaths(line string) []string {
	var paths []string
	for _, p := range strings.Split(line, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s does not exist", path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
