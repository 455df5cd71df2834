// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deskkit/internal/command"
	"github.com/pdiddy/deskkit/pkg/types"
)

func newTerminal(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n"), 0o644))
	return path
}

func TestAskString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"answer", "19.99\n", "19.99", true},
		{"trimmed", "  1990  \n", "1990", true},
		{"no trailing newline", "42", "42", true},
		{"empty cancels", "\n", "", false},
		{"blank cancels", "   \n", "", false},
		{"eof cancels", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, out := newTerminal(tt.input)
			got, ok, err := term.AskString(context.Background(), "Calculator", "Price:")
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Calculator")
			assert.Contains(t, out.String(), "Price:")
		})
	}
}

func TestAskString_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	term, _ := newTerminal("answer\n")
	_, ok, err := term.AskString(ctx, "", "Price:")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAskFloat(t *testing.T) {
	t.Run("decimal", func(t *testing.T) {
		term, _ := newTerminal("19.99\n")
		n, ok, err := term.AskFloat(context.Background(), "", "Price:")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.InDelta(t, 19.99, n, 1e-9)
	})

	t.Run("asks again until a number", func(t *testing.T) {
		term, out := newTerminal("ten\n$5\n5\n")
		n, ok, err := term.AskFloat(context.Background(), "", "Price:")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 5.0, n)
		assert.Equal(t, 2, strings.Count(out.String(), "Enter a number, such as 19.99."))
	})

	t.Run("empty cancels", func(t *testing.T) {
		term, _ := newTerminal("\n")
		_, ok, err := term.AskFloat(context.Background(), "", "Price:")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAskInt(t *testing.T) {
	t.Run("in range", func(t *testing.T) {
		term, _ := newTerminal("3\n")
		n, ok, err := term.AskInt(context.Background(), "", "Page:", 1, 5)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 3, n)
	})

	t.Run("asks again until valid", func(t *testing.T) {
		term, out := newTerminal("zero\n9\n0\n5\n")
		n, ok, err := term.AskInt(context.Background(), "", "Page:", 1, 5)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 5, n)
		assert.Equal(t, 3, strings.Count(out.String(), "Enter a whole number from 1 to 5."))
	})

	t.Run("empty cancels", func(t *testing.T) {
		term, _ := newTerminal("\n")
		_, ok, err := term.AskInt(context.Background(), "", "Page:", 1, 5)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestChoose(t *testing.T) {
	term, out := newTerminal("sideways\n")
	got, ok, err := term.Choose(context.Background(), "", "Position:", []string{"Left", "Right"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sideways", got, "answers outside the options are returned as typed")
	assert.Contains(t, out.String(), "Left/Right")
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "a.pdf")

	term, out := newTerminal(filepath.Join(dir, "missing.pdf") + "\n" + dir + "\n" + path + "\n")
	got, ok, err := term.OpenFile(context.Background(), "Select PDF")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, path, got)
	assert.Contains(t, out.String(), "does not exist")
	assert.Contains(t, out.String(), "is a directory")
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.pdf")
	b := touch(t, dir, "b c.pdf")

	t.Run("keeps order", func(t *testing.T) {
		term, _ := newTerminal(b + ", " + a + "\n")
		got, ok, err := term.OpenFiles(context.Background(), "Select PDFs")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{b, a}, got)
	})

	t.Run("rejects missing path", func(t *testing.T) {
		term, out := newTerminal(a + "," + filepath.Join(dir, "nope.pdf") + "\n" + a + "\n")
		got, ok, err := term.OpenFiles(context.Background(), "Select PDFs")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{a}, got)
		assert.Contains(t, out.String(), "nope.pdf does not exist")
	})

	t.Run("only separators cancels", func(t *testing.T) {
		term, _ := newTerminal(" , ,\n")
		_, ok, err := term.OpenFiles(context.Background(), "Select PDFs")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSaveFileAndChooseDir(t *testing.T) {
	term, out := newTerminal("out.pdf\n/tmp/pages\n")
	path, ok, err := term.SaveFile(context.Background(), "Save", "merged.pdf")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "out.pdf", path)
	assert.Contains(t, out.String(), "merged.pdf")

	dir, ok, err := term.ChooseDir(context.Background(), "Output")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/tmp/pages", dir)
}

func TestReviseBlocks(t *testing.T) {
	blocks := []types.TextBlock{
		{Page: 1, Text: "Draft"},
		{Page: 1, Text: "Keep me"},
		{Page: 2, Text: "Old footer"},
	}

	t.Run("replaces answered blocks", func(t *testing.T) {
		term, out := newTerminal("Final\n\nNew footer\n")
		got, ok, err := term.ReviseBlocks(context.Background(), blocks)
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 3)
		assert.Equal(t, "Final", got[0].Text)
		assert.Equal(t, "Keep me", got[1].Text)
		assert.Equal(t, "New footer", got[2].Text)
		assert.Equal(t, "Draft", blocks[0].Text, "input is not modified")
		assert.Contains(t, out.String(), "Block 3 of 3, page 2")
	})

	t.Run("last line without newline", func(t *testing.T) {
		term, _ := newTerminal("\n\nEnd")
		got, ok, err := term.ReviseBlocks(context.Background(), blocks)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "End", got[2].Text)
	})

	t.Run("eof cancels", func(t *testing.T) {
		term, _ := newTerminal("Final\n")
		got, ok, err := term.ReviseBlocks(context.Background(), blocks)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	})
}

func TestInfoAndError(t *testing.T) {
	term, out := newTerminal("")
	term.Info("Success", "PDFs merged into out.pdf")
	term.Error("Merge PDFs", errors.New("no such file"))
	assert.Contains(t, out.String(), "Success")
	assert.Contains(t, out.String(), "PDFs merged into out.pdf")
	assert.Contains(t, out.String(), "Merge PDFs")
	assert.Contains(t, out.String(), "no such file")
}

func TestTerminal_DrivesRegistry(t *testing.T) {
	r, err := command.NewRegistry(command.InflationActions(2023)...)
	require.NoError(t, err)

	term, out := newTerminal("100\n2022\n")
	require.NoError(t, r.Run(context.Background(), "calculate", term))
	assert.Contains(t, out.String(), "The estimated price of the item in 2022 is: $")
}
