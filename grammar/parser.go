package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(StirLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ParseString parses STIR text. Syntax errors are participle.Error values.
func ParseString(filename, source string) (*Program, error) {
	return parser.ParseString(filename, source)
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// ErrorPosition extracts the location and message of a syntax error. Other
// errors report the zero position and their own text.
func ErrorPosition(err error) (lexer.Position, string) {
	if pe, ok := err.(participle.Error); ok {
		return pe.Position(), pe.Message()
	}
	return lexer.Position{}, err.Error()
}
