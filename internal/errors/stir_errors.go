package errors

import (
	"fmt"
	"strings"
)

// ErrorBuilder provides a fluent interface for creating diagnostics
type ErrorBuilder struct {
	err CompilerError
}

// NewError starts an error-level diagnostic
func NewError(code, message string, pos Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *ErrorBuilder) WithReplacement(message, replacement string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message, Replacement: replacement})
	return b
}

func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed diagnostic
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// SyntaxError wraps a grammar error
func SyntaxError(message string, pos Position) CompilerError {
	return NewError(ErrorSyntax, message, pos).Build()
}

// UndefinedFunction reports a CALL to a name no FUNCTION defines
func UndefinedFunction(name string, pos Position, similarNames []string) CompilerError {
	builder := NewError(ErrorUndefinedFunction, fmt.Sprintf("function '%s' is not defined", name), pos).
		WithLength(len(name))

	switch len(similarNames) {
	case 0:
		builder = builder.WithNote("CALL can only reach a FUNCTION defined in the same document")
	case 1:
		builder = builder.WithReplacement(fmt.Sprintf("did you mean '%s'?", similarNames[0]), "CALL "+similarNames[0])
	default:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similarNames, "', '")))
	}

	return builder.Build()
}

// RecursiveCall reports a function reaching a call to itself
func RecursiveCall(name string, pos Position, chain []string) CompilerError {
	return NewError(ErrorRecursiveCall, fmt.Sprintf("function '%s' calls itself", name), pos).
		WithLength(len(name)).
		WithNote("call chain: " + strings.Join(chain, " -> ")).
		WithHelp("blocks must form a DAG; cycles are never interpreted").
		Build()
}

// DuplicateFunction reports a second FUNCTION with an existing name
func DuplicateFunction(name string, pos, first Position) CompilerError {
	return NewError(ErrorDuplicateFunction, fmt.Sprintf("function '%s' is defined more than once", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("first defined at %s", first)).
		Build()
}

// DuplicateEntry reports a second ENTRY marker
func DuplicateEntry(pos, first Position) CompilerError {
	return NewError(ErrorDuplicateEntry, "recipe already has an entry point", pos).
		WithLength(len("ENTRY")).
		WithNote(fmt.Sprintf("entry point set at %s", first)).
		WithSuggestion("remove one of the ENTRY markers").
		Build()
}

// NoEntry reports a recipe that cannot be fried
func NoEntry(pos Position) CompilerError {
	return NewError(ErrorNoEntry, "recipe has no entry point", pos).
		WithHelp("prefix the block to run with ENTRY").
		Build()
}

// TranslateFailure reports a block that could not be lowered
func TranslateFailure(label string, cause error, pos Position) CompilerError {
	return NewError(ErrorTranslate, fmt.Sprintf("cannot translate %s", label), pos).
		WithNote(cause.Error()).
		Build()
}
