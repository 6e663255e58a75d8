package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// StirLexer tokenizes the text blocks render through Output.
var StirLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},

		// Keywords (before identifiers, so a word like IF never reads as text)
		{"Keyword", `\b(?:IF|ELSE|LOOP|FUNCTION|RETURN|CALL|ENTRY|true|false)\b`, nil},

		// Numbers as strconv.FormatFloat renders them, NaN and infinities included
		{"Number", `[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?|NaN\b|[-+]Inf\b`, nil},

		// Labels and single-word text
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Punctuation
		{"Punctuation", `[{}()\[\],]`, nil},
	},
})
