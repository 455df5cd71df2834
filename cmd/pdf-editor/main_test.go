// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deskkit/internal/command"
	"github.com/pdiddy/deskkit/internal/pdfdoc"
	"github.com/pdiddy/deskkit/internal/prompt"
	"github.com/pdiddy/deskkit/internal/testutil"
	"github.com/pdiddy/deskkit/pkg/types"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func pages(t *testing.T, path string) int {
	t.Helper()
	n, err := pdfdoc.New(types.DefaultConfig().PDF, zerolog.Nop()).PageCount(path)
	require.NoError(t, err)
	return n
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WritePDF(t, dir, "a.pdf", "A1")
	b := testutil.WritePDF(t, dir, "b.pdf", "B1", "B2")
	out := filepath.Join(dir, "merged.pdf")

	stdout, err := execute(t, "merge", "-o", out, a, b)
	require.NoError(t, err)
	assert.Contains(t, stdout, "PDFs merged into "+out)
	assert.Equal(t, 3, pages(t, out))
}

func TestSplitCommand(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WritePDF(t, dir, "in.pdf", "1", "2")
	outDir := filepath.Join(dir, "pages")

	stdout, err := execute(t, "split", in, "--out-dir", outDir, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(2 files)")
	assert.FileExists(t, filepath.Join(outDir, "page_1.pdf"))
	assert.FileExists(t, filepath.Join(outDir, "page_2.pdf"))
}

func TestAddTextCommand(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WritePDF(t, dir, "in.pdf", "1", "2")
	out := filepath.Join(dir, "out.pdf")

	stdout, err := execute(t, "add-text", in, "-o", out, "--text", "CONFIDENTIAL",
		"--page", "2", "--horizontal", "right", "--vertical", "bottom")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Text added to "+out)
	assert.Equal(t, 2, pages(t, out))
}

func TestAddTextCommand_PageOutOfRange(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WritePDF(t, dir, "in.pdf", "1")
	out := filepath.Join(dir, "out.pdf")

	_, err := execute(t, "add-text", in, "-o", out, "--text", "x", "--page", "3")
	assert.ErrorIs(t, err, pdfdoc.ErrPageOutOfRange)
	assert.NoFileExists(t, out)
}

func TestBlocksAndEditCommands(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WritePDF(t, dir, "in.pdf", "Draft", "Appendix")
	blocksFile := filepath.Join(dir, "blocks.yaml")
	out := filepath.Join(dir, "edited.pdf")

	_, err := execute(t, "blocks", in, "-o", blocksFile)
	require.NoError(t, err)

	set, err := pdfdoc.ReadBlockSetFile(blocksFile)
	require.NoError(t, err)
	require.Len(t, set.Blocks, 2)
	assert.Equal(t, "Draft", set.Blocks[0].Text)

	set.Blocks[0].Text = "Final"
	f, err := os.Create(blocksFile)
	require.NoError(t, err)
	require.NoError(t, pdfdoc.WriteBlockSet(f, set))
	require.NoError(t, f.Close())

	stdout, err := execute(t, "edit", in, "--blocks", blocksFile, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "(1 blocks changed)")
	assert.Equal(t, 2, pages(t, out))
}

func TestBlocksCommand_Stdout(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WritePDF(t, dir, "in.pdf", "Hello")

	stdout, err := execute(t, "blocks", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "text: Hello")
}

func TestPick(t *testing.T) {
	actions := command.PDFActions(pdfdoc.New(types.DefaultConfig().PDF, zerolog.Nop()))
	tests := []struct {
		answer string
		want   string
		found  bool
	}{
		{"1", "merge", true},
		{"2.", "split", true},
		{"add-text", "add-text", true},
		{"edit text in pdf", "edit-text", true},
		{"5", "", false},
		{"rotate", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got, found := pick(actions, tt.answer)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMenu(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WritePDF(t, dir, "in.pdf", "1", "2", "3")
	outDir := filepath.Join(dir, "pages")

	reg, err := command.NewRegistry(command.PDFActions(pdfdoc.New(types.DefaultConfig().PDF, zerolog.Nop()))...)
	require.NoError(t, err)

	input := strings.Join([]string{"rotate", "2", in, outDir, ""}, "\n")
	var out bytes.Buffer
	require.NoError(t, menu(context.Background(), reg, prompt.New(strings.NewReader(input), &out)))

	assert.Contains(t, out.String(), `no action matches "rotate"`)
	assert.Contains(t, out.String(), "PDF split into individual pages in "+outDir)
	assert.FileExists(t, filepath.Join(outDir, "page_3.pdf"))
}
