package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"stir/internal/errors"
)

// ConvertCompilerErrors transforms builder diagnostics into LSP diagnostics.
// The result is never nil so an empty list clears earlier diagnostics.
func ConvertCompilerErrors(errs []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))

	for _, err := range errs {
		line := zeroBased(err.Position.Line)
		start := zeroBased(err.Position.Column)

		length := err.Length
		if length <= 0 {
			length = 1
		}

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: start},
				End:   protocol.Position{Line: line, Character: start + uint32(length)},
			},
			Severity: ptrSeverity(severity(err.Level)),
			Source:   ptrString("stir"),
			Message:  message(err),
		}
		if err.Code != "" {
			diagnostic.Code = &protocol.IntegerOrString{Value: err.Code}
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// message folds suggestions, notes and help into the diagnostic text, since
// editors show only the message inline.
func message(err errors.CompilerError) string {
	var sb strings.Builder
	sb.WriteString(err.Message)
	for _, s := range err.Suggestions {
		sb.WriteString("\nhelp: ")
		sb.WriteString(s.Message)
	}
	for _, note := range err.Notes {
		sb.WriteString("\nnote: ")
		sb.WriteString(note)
	}
	if err.HelpText != "" {
		sb.WriteString("\nhelp: ")
		sb.WriteString(err.HelpText)
	}
	return sb.String()
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	case errors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func zeroBased(n int) uint32 {
	if n <= 1 {
		return 0
	}
	return uint32(n - 1)
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}
