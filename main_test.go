package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultRunOutput = `Statistics Calculator
=====================

=== Statistics Results ===
Data: 1, 2, 3, 4, 5

Mean: 3.00
Median: 3.00
Mode: 1, 2, 3, 4, 5 (frequency: 1)
========================


=== Statistics Results ===
Data: 1, 2, 2, 3, 3, 3, 4, 4, 5

Mean: 2.78
Median: 3.00
Mode: 3 (frequency: 3)
========================


=== Statistics Results ===
Data: 10, 20, 30, 40

Mean: 25.00
Median: 25.00
Mode: 10, 20, 30, 40 (frequency: 1)
========================


=== Statistics Results ===
Data: 5, 5, 5, 2, 2, 1

Mean: 3.33
Median: 3.50
Mode: 5 (frequency: 3)
========================

`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunDefaultOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, Config{Format: FormatText}, discardLogger()))
	assert.Equal(t, defaultRunOutput, buf.String())
}

func TestRunExtended(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, Config{Format: FormatText, Extended: true}, discardLogger()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, defaultRunOutput))
	assert.Contains(t, out, "Mode: 1, 2, 3 (frequency: 2)")
	assert.Contains(t, out, "Mode: 9 (frequency: 2)")
	assert.Equal(t, 6, strings.Count(out, "=== Statistics Results ==="))
}

func TestRunUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, Config{Format: "csv"}, discardLogger())
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Empty(t, buf.String())
}

func TestRunVerboseLogsDiagnostics(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run(&out, Config{Format: FormatText}, newLogger(&logs, true)))

	assert.Equal(t, 4, strings.Count(logs.String(), "computed statistics"))
	assert.Contains(t, logs.String(), "dataset=single-mode")
	assert.Equal(t, defaultRunOutput, out.String())
}

func TestRootCommandDefault(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, defaultRunOutput, out.String())
	assert.Empty(t, errOut.String())
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"1", "2", "3"})

	require.Error(t, cmd.Execute())
}

func TestRootCommandFormatFlag(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"name": "basic"`)
	assert.NotContains(t, out.String(), bannerTitle)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "statcalc dev\n", out.String())
}
