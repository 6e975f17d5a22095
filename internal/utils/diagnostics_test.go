package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDiagnostics(level DiagnosticLevel) (*DiagnosticSystem, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	d := NewDiagnosticSystem(level)
	d.SetOutput(&out, &errOut)
	d.Plain()
	return d, &out, &errOut
}

func TestDiagnosticLevels(t *testing.T) {
	d, out, errOut := newTestDiagnostics(DiagnosticInfo)

	d.Error("broken %d", 1)
	d.Warn("careful")
	d.Info("hello %s", "world")
	d.Verbose("hidden")
	d.Debug("hidden too")

	assert.Equal(t, "[ERROR] broken 1\n", errOut.String())
	assert.Equal(t, "[WARN] careful\n[INFO] hello world\n", out.String())
}

func TestQuietDiagnosticsOnlyShowErrors(t *testing.T) {
	d, out, errOut := newTestDiagnostics(DiagnosticError)

	d.Info("skipped")
	d.Summary("Done", []Stat{{"Files", 1}})
	d.StartProgress("step")
	d.EndProgress(true, "")
	d.Error("shown")

	assert.Empty(t, out.String())
	assert.Equal(t, "[ERROR] shown\n", errOut.String())
}

func TestProgressAndSummary(t *testing.T) {
	d, out, _ := newTestDiagnostics(DiagnosticInfo)

	d.StartProgress("Scanning")
	d.EndProgress(true, "3 packages")
	d.StartProgress("Writing")
	d.EndProgress(false, "")
	d.EndProgress(true, "ignored without a step")
	d.Indent()
	d.List("pkg/%s", "store")
	d.Unindent()
	d.Unindent()
	d.Summary("Generation Complete!", []Stat{{"Packages processed", 2}, {"Providers found", 5}})

	expected := "✓ Scanning (3 packages)\n" +
		"✗ Writing\n" +
		"  - pkg/store\n" +
		"\nGeneration Complete!\n" +
		"   Packages processed: 2\n" +
		"   Providers found: 5\n\n"
	assert.Equal(t, expected, out.String())
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "1")
	assert.False(t, shouldUseColors())

	t.Setenv("NO_COLOR", "")
	assert.True(t, shouldUseColors())

	t.Setenv("FORCE_COLOR", "")
	t.Setenv("TERM", "dumb")
	assert.False(t, shouldUseColors())
}
