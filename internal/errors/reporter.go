package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// Position is a 1-based location in STIR text
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// CompilerError is a diagnostic produced while reading or running STIR
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0101
	Message     string       // Primary error message
	Position    Position     // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

func (e CompilerError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %s: %s", e.Position, e.Level, e.Message)
	}
	return fmt.Sprintf("%s: %s[%s]: %s", e.Position, e.Level, e.Code, e.Message)
}

// Suggestion is a hint attached to a diagnostic
type Suggestion struct {
	Message     string // Description of the suggestion
	Replacement string // Suggested replacement text (optional)
}

// ErrorReporter renders diagnostics against the text they point into
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a reporter for one document
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders err as
//
//	error[E0101]: message
//	    --> file.stir:3:6
//	     │
//	   3 │ CALL __function_9
//	     │      ^^^^^^^^^^^^
//	     help: try: did you mean '__function_8'?
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var out strings.Builder

	levelColor := levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if err.Code != "" {
		fmt.Fprintf(&out, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&out, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}

	filename := err.Position.Filename
	if filename == "" {
		filename = er.filename
	}

	width := gutterWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)
	bar := dim("│")

	fmt.Fprintf(&out, "%s %s %s:%d:%d\n", indent, dim("-->"), filename, err.Position.Line, err.Position.Column)

	if line, ok := er.line(err.Position.Line); ok {
		fmt.Fprintf(&out, "%s %s\n", indent, bar)
		fmt.Fprintf(&out, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, err.Position.Line)), bar, line)
		fmt.Fprintf(&out, "%s %s %s\n", indent, bar, marker(err.Position.Column, err.Length, levelColor))
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	for i, s := range err.Suggestions {
		if i == 0 {
			fmt.Fprintf(&out, "%s %s %s: %s\n", indent, cyan("help"), cyan("try"), s.Message)
		} else {
			fmt.Fprintf(&out, "%s %s %s\n", indent, cyan("    "), s.Message)
		}
		if s.Replacement != "" {
			fmt.Fprintf(&out, "%s %s %s\n", indent, cyan("│"), cyan(s.Replacement))
		}
	}

	blue := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		fmt.Fprintf(&out, "%s %s %s %s\n", indent, bar, blue("note:"), note)
	}

	if err.HelpText != "" {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&out, "%s %s %s %s\n", indent, bar, green("help:"), err.HelpText)
	}

	out.WriteString("\n")
	return out.String()
}

// FormatErrors renders every diagnostic in order
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	var out strings.Builder
	for _, err := range errs {
		out.WriteString(er.FormatError(err))
	}
	return out.String()
}

func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

func levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func marker(column, length int, paint func(...interface{}) string) string {
	if length <= 0 {
		length = 1
	}
	return strings.Repeat(" ", max(0, column-1)) + paint(strings.Repeat("^", length))
}

// gutterWidth is the width of the line number column, at least 3
func gutterWidth(line int) int {
	return max(3, len(fmt.Sprintf("%d", line)))
}
