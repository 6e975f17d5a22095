package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/toyz/argon/internal/errors"
)

// DiagnosticReporter prints failed runs with their locations and hints
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
	header  *color.Color
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     os.Stderr,
		header:  color.New(color.FgRed, color.Bold),
	}
}

// SetOutput redirects the report
func (r *DiagnosticReporter) SetOutput(out io.Writer) {
	r.out = out
}

// Plain turns off colors in the report
func (r *DiagnosticReporter) Plain() {
	r.header.DisableColor()
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	if err == nil {
		return
	}
	r.header.Fprintf(r.out, "\nERROR: Code Generation Failed\n")
	fmt.Fprintf(r.out, "=============================\n\n")

	var multi *errors.MultipleErrors
	if stderrors.As(err, &multi) && multi.Count() > 1 {
		for i, item := range multi.Errors {
			fmt.Fprintf(r.out, "[%d/%d]\n", i+1, multi.Count())
			r.reportOne(item)
		}
		return
	}
	r.reportOne(err)
}

func (r *DiagnosticReporter) reportOne(err error) {
	var argonErr errors.ArgonError
	if !stderrors.As(err, &argonErr) {
		fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())
		return
	}

	typeName := argonErr.ErrorCode().String()
	fmt.Fprintf(r.out, "Type: %s\n", typeName)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(typeName)+6))
	fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())

	if loc := argonErr.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.out, "Location: %s\n\n", loc)
	}

	if context := argonErr.Context(); len(context) > 0 && r.verbose {
		r.printContext(context)
	}

	if suggestions := argonErr.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	if r.verbose {
		r.printErrorChain(argonErr.Unwrap())
	}
}

func (r *DiagnosticReporter) printContext(context []errors.Detail) {
	fmt.Fprintf(r.out, "Context:\n")
	for _, detail := range context {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(detail.Key), detail.Value)
	}
	fmt.Fprintf(r.out, "\n")
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		lines := strings.Split(suggestion, "\n")
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, lines[0])
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(r.out, "      %s\n", line)
			}
		}
	}
	fmt.Fprintf(r.out, "\n")
}

func (r *DiagnosticReporter) printErrorChain(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(r.out, "Error Chain:\n")
	for level := 1; err != nil; level++ {
		fmt.Fprintf(r.out, "   %d. %s\n", level, err.Error())
		err = stderrors.Unwrap(err)
	}
	fmt.Fprintf(r.out, "\n")
}
