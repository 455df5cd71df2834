// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deskkit/internal/inflation"
)

func TestWriteCalc(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeCalc(&out, 100, 2022, 2023, false))
	assert.Equal(t, "The estimated price of the item in 2022 is: $92.59\n", out.String())
}

func TestWriteCalc_Breakdown(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeCalc(&out, 100, 2020, 2023, true))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// header, 2020..2022, the current year, the result line
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[1], "2020"))
	assert.True(t, strings.HasPrefix(lines[4], "2023"))
	assert.Contains(t, lines[4], "100.00")
	assert.True(t, strings.HasPrefix(lines[5], "The estimated price of the item in 2020 is: $"))
}

func TestWriteCalc_OutOfRange(t *testing.T) {
	var out bytes.Buffer
	err := writeCalc(&out, 100, 2030, 2023, false)
	assert.ErrorIs(t, err, inflation.ErrOutOfRange)
	assert.Empty(t, out.String())
}

func TestWriteRates(t *testing.T) {
	var out bytes.Buffer
	writeRates(&out)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(inflation.Years())+1)
	assert.True(t, strings.HasPrefix(lines[1], "1924"))
}

func TestRootCommand_Calc(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"calc", "--price", "100", "--year", "2022"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "$92.59")
}
